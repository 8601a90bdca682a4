// argp parses command line arguments against a declared option schema.
//
// It wraps go-getoptions: a Parser prints usage when the help token shows up
// anywhere in the arguments, otherwise it hands the arguments to the option
// parser. Bad input never escapes as an error or a panic, it is logged and
// reported through Outcome so the caller only has to decide whether to stop.
package argp

import (
	"io"
)

// DefaultHelpToken is the argument that triggers help when present.
const DefaultHelpToken = "-h"

// DefaultFooter closes every help text.
const DefaultFooter = "\nPlease report issues at https://github.com/cusbg/prankweb/issues"

// Logger is the leveled sink parse failures are reported to.
type Logger interface {
	Info(format string, v ...any)
	Error(format string, v ...any)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Parser parses the arguments of a single command.
type Parser struct {
	command string
	header  string
	log     Logger
	out     io.Writer

	// HelpToken is matched literally against every argument.
	HelpToken string

	// Footer is printed after the option list in help.
	Footer string

	// Bundling lets short flags be grouped, -vd is -v -d. Long options then
	// need two dashes.
	Bundling bool
}

// NewParser returns a parser for command. header is printed above the option
// list in help, help itself goes to out and parse failures to log. A nil log
// discards messages.
func NewParser(command, header string, log Logger, out io.Writer) *Parser {
	if log == nil {
		log = nopLogger{}
	}
	if out == nil {
		out = io.Discard
	}
	return &Parser{
		command:   command,
		header:    header,
		log:       log,
		out:       out,
		HelpToken: DefaultHelpToken,
		Footer:    DefaultFooter,
	}
}

// Parse parses args against options. When the help token is present, help
// is printed and nothing else happens. When the option parser rejects the
// arguments, one error line and one info line with the reason are logged.
//
// Parse panics if options itself is malformed, e.g. a name declared twice.
func (p *Parser) Parse(options Options, args []string) Outcome {
	options.validate(p.HelpToken)

	if p.helpRequested(args) {
		p.PrintHelp(options)
		return Outcome{Reason: HelpRequested}
	}

	opt, bindings := options.getopt(p.command, p.Bundling)
	remaining, err := opt.Parse(hideStdin(args))
	if err != nil {
		p.log.Error("Invalid command line arguments.")
		p.log.Info("reason: %s", err)
		return Outcome{Reason: InvalidArguments, Err: err}
	}
	for _, b := range bindings {
		b.called = opt.Called(b.name)
		b.value = showStdin(b.value)
		for i := range b.values {
			b.values[i] = showStdin(b.values[i])
		}
	}
	for i := range remaining {
		remaining[i] = showStdin(remaining[i])
	}
	return Outcome{Reason: Parsed, Args: newParsedArguments(bindings, remaining)}
}

// stdinToken stands in for a lone "-" while go-getoptions parses, which
// would take it for an option. A NUL can never be part of a real argument.
const stdinToken = "\x00-"

// hideStdin returns a copy of args with every "-" before "--" replaced by
// stdinToken, so it lands in the remaining arguments or as an option value.
func hideStdin(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)
	for i, a := range out {
		if a == "--" {
			break
		}
		if a == "-" {
			out[i] = stdinToken
		}
	}
	return out
}

func showStdin(s string) string {
	if s == stdinToken {
		return "-"
	}
	return s
}

func (p *Parser) helpRequested(args []string) bool {
	if p.HelpToken == "" {
		return false
	}
	for _, a := range args {
		if a == p.HelpToken {
			return true
		}
	}
	return false
}

// PrintHelp writes the help text for options to the parser's output.
func (p *Parser) PrintHelp(options Options) {
	RenderHelp(p.out, options, p.command, p.header, p.Footer)
}

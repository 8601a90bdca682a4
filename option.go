package argp

import (
	"fmt"

	"github.com/DavidGamba/go-getoptions"
)

// OptionSpec declares a single command line option.
type OptionSpec struct {
	Short       string // -o
	Long        string // --output, optional
	Description string

	// HasValue marks the option as taking an argument, otherwise it is a
	// presence flag.
	HasValue bool

	// ArgName is the value placeholder shown in help, "arg" when empty.
	ArgName string

	// Required makes the parse fail when the option is not given.
	Required bool

	// Repeatable lets a value option be given more than once, every value
	// is kept in order.
	Repeatable bool
}

// Key is the name the option is stored under in ParsedArguments: the short
// name, or the long name for options without one.
func (s OptionSpec) Key() string {
	if s.Short != "" {
		return s.Short
	}
	return s.Long
}

func (s OptionSpec) argName() string {
	if s.ArgName == "" {
		return "arg"
	}
	return s.ArgName
}

// Options is an option schema. Help lists the options sorted by name, so
// declaration order has no effect.
type Options []OptionSpec

// validate panics on schemas that can never be parsed correctly. These are
// programming errors of the caller, not user input errors.
func (o Options) validate(helpToken string) {
	seen := make(map[string]bool, len(o)*2)
	for i, s := range o {
		if s.Short == "" && s.Long == "" {
			panic(fmt.Sprintf("argp: option %d has no name", i))
		}
		for _, name := range []string{s.Short, s.Long} {
			if name == "" {
				continue
			}
			if seen[name] {
				panic(fmt.Sprintf("argp: option %q declared twice", name))
			}
			seen[name] = true
			if helpToken != "" && ("-"+name == helpToken || "--"+name == helpToken) {
				panic(fmt.Sprintf("argp: option %q shadows help token %q", name, helpToken))
			}
		}
		if !s.HasValue && (s.Repeatable || s.ArgName != "") {
			panic(fmt.Sprintf("argp: option %q takes no value", s.Key()))
		}
	}
}

// binding ties an OptionSpec to the variables go-getoptions writes into.
type binding struct {
	spec   OptionSpec
	name   string // name registered with getoptions
	called bool
	flag   bool
	value  string
	values []string
}

// getopt builds a fresh go-getoptions parser for the schema. A new parser is
// built for every call so nothing leaks between parses.
func (o Options) getopt(command string, bundling bool) (*getoptions.GetOpt, []*binding) {
	opt := getoptions.New()
	opt.Self(command, "")
	if bundling {
		// bundle short options together e.g: -vo out.txt
		opt.SetMode(getoptions.Bundling)
	}
	opt.SetUnknownMode(getoptions.Fail)

	bindings := make([]*binding, 0, len(o))
	for _, s := range o {
		b := &binding{spec: s, name: s.Long}
		fns := []getoptions.ModifyFn{opt.Description(s.Description)}
		if b.name == "" {
			b.name = s.Short
		} else if s.Short != "" {
			fns = append(fns, opt.Alias(s.Short))
		}
		if s.Required {
			fns = append(fns, opt.Required())
		}

		switch {
		case !s.HasValue:
			opt.BoolVar(&b.flag, b.name, false, fns...)
		case s.Repeatable:
			fns = append(fns, opt.ArgName(s.argName()))
			opt.StringSliceVar(&b.values, b.name, 1, 1, fns...)
		default:
			fns = append(fns, opt.ArgName(s.argName()))
			opt.StringVar(&b.value, b.name, "", fns...)
		}
		bindings = append(bindings, b)
	}
	return opt, bindings
}

package argp

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type logLine struct {
	level string
	msg   string
}

type recordLogger struct {
	lines []logLine
}

func (r *recordLogger) Info(format string, v ...any) {
	r.lines = append(r.lines, logLine{"info", fmt.Sprintf(format, v...)})
}

func (r *recordLogger) Error(format string, v ...any) {
	r.lines = append(r.lines, logLine{"error", fmt.Sprintf(format, v...)})
}

func (r *recordLogger) count(level string) int {
	n := 0
	for _, l := range r.lines {
		if l.level == level {
			n++
		}
	}
	return n
}

var verboseOutput = Options{
	{Short: "v", Description: "verbose"},
	{Short: "o", HasValue: true, Description: "output path"},
}

func newTestParser() (*Parser, *recordLogger, *bytes.Buffer) {
	var out bytes.Buffer
	log := &recordLogger{}
	return NewParser("protein-utils", "Compute protein features.", log, &out), log, &out
}

func TestParseValid(t *testing.T) {
	tests := []struct {
		name       string
		options    Options
		args       []string
		entries    map[string][]string
		positional []string
	}{
		{
			name:    "flag and value",
			options: verboseOutput,
			args:    []string{"-o", "result.txt", "-v"},
			entries: map[string][]string{"v": nil, "o": {"result.txt"}},
		}, {
			name:    "empty args",
			options: verboseOutput,
			args:    []string{},
			entries: map[string][]string{},
		}, {
			name:       "positionals keep their order",
			options:    verboseOutput,
			args:       []string{"in.fasta", "-v", "db.fasta", "work"},
			entries:    map[string][]string{"v": nil},
			positional: []string{"in.fasta", "db.fasta", "work"},
		}, {
			name:       "lone dash is a positional",
			options:    verboseOutput,
			args:       []string{"pos", "-", "-v", "last"},
			entries:    map[string][]string{"v": nil},
			positional: []string{"pos", "-", "last"},
		}, {
			name:    "lone dash as option value",
			options: verboseOutput,
			args:    []string{"-o", "-", "-v"},
			entries: map[string][]string{"v": nil, "o": {"-"}},
		}, {
			name:       "lone dash after double dash",
			options:    verboseOutput,
			args:       []string{"-v", "--", "-"},
			entries:    map[string][]string{"v": nil},
			positional: []string{"-"},
		}, {
			name: "long names stored under short key",
			options: Options{
				{Short: "o", Long: "output", HasValue: true, ArgName: "file", Description: "output path"},
				{Long: "msa", Description: "input is an msa"},
			},
			args:    []string{"--output", "out.txt", "--msa"},
			entries: map[string][]string{"o": {"out.txt"}, "msa": nil},
		}, {
			name: "repeatable value",
			options: Options{
				{Short: "D", HasValue: true, Repeatable: true, Description: "define"},
			},
			args:    []string{"-D", "a=1", "-D", "b=2"},
			entries: map[string][]string{"D": {"a=1", "b=2"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, log, out := newTestParser()
			res := p.Parse(tt.options, tt.args)
			if !res.OK() {
				t.Fatalf("parse failed: reason %s, err %v", res.Reason, res.Err)
			}
			if diff := cmp.Diff(tt.entries, res.Args.Entries()); diff != "" {
				t.Errorf("entries mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.positional, res.Args.Positional(), cmpEmpty); diff != "" {
				t.Errorf("positional mismatch (-want +got):\n%s", diff)
			}
			if len(log.lines) != 0 {
				t.Errorf("unexpected log lines %v", log.lines)
			}
			if out.Len() != 0 {
				t.Errorf("unexpected help output %q", out.String())
			}
		})
	}
}

// nil and empty positional lists are the same thing
var cmpEmpty = cmp.Comparer(func(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
})

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name    string
		options Options
		args    []string
		reason  string
	}{
		{
			name:    "unknown flag",
			options: verboseOutput,
			args:    []string{"-x"},
			reason:  "x",
		}, {
			name:    "missing value",
			options: verboseOutput,
			args:    []string{"-v", "-o"},
			reason:  "o",
		}, {
			name: "missing required option",
			options: Options{
				{Short: "f", Long: "fasta", HasValue: true, Required: true, Description: "fasta file"},
			},
			args:   []string{},
			reason: "fasta",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, log, out := newTestParser()
			res := p.Parse(tt.options, tt.args)
			if res.OK() || res.Args != nil {
				t.Fatalf("expected absence outcome, got %+v", res)
			}
			if res.Reason != InvalidArguments {
				t.Errorf("reason mismatch: expected %s, got %s", InvalidArguments, res.Reason)
			}
			if res.Err == nil {
				t.Errorf("expected underlying error")
			}
			if len(log.lines) != 2 || log.count("error") != 1 || log.count("info") != 1 {
				t.Fatalf("expected one error and one info line, got %v", log.lines)
			}
			if log.lines[0].level != "error" || log.lines[0].msg != "Invalid command line arguments." {
				t.Errorf("unexpected error line %+v", log.lines[0])
			}
			info := log.lines[1].msg
			if !strings.HasPrefix(info, "reason: ") || !strings.Contains(info, tt.reason) {
				t.Errorf("info line %q does not carry the reason", info)
			}
			if out.Len() != 0 {
				t.Errorf("help printed on invalid arguments: %q", out.String())
			}
		})
	}
}

func TestParseHelp(t *testing.T) {
	for _, args := range [][]string{
		{"-h"},
		{"-v", "-h"},
		{"-x", "-h"}, // the option grammar is never consulted
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			p, log, out := newTestParser()
			res := p.Parse(verboseOutput, args)
			if res.OK() || res.Args != nil {
				t.Fatalf("expected absence outcome, got %+v", res)
			}
			if res.Reason != HelpRequested {
				t.Errorf("reason mismatch: expected %s, got %s", HelpRequested, res.Reason)
			}
			if len(log.lines) != 0 {
				t.Errorf("help request logged %v", log.lines)
			}
			help := out.String()
			for _, want := range []string{"protein-utils", "Compute protein features.", "-v", "verbose", "-o", "output path", "https://github.com/cusbg/prankweb/issues"} {
				if !strings.Contains(help, want) {
					t.Errorf("help text missing %q:\n%s", want, help)
				}
			}
		})
	}
}

func TestCustomHelpToken(t *testing.T) {
	p, _, out := newTestParser()
	p.HelpToken = "--help"

	// -h is now an ordinary unknown option
	if res := p.Parse(verboseOutput, []string{"-h"}); res.Reason != InvalidArguments {
		t.Errorf("expected -h to be invalid, got %s", res.Reason)
	}
	if res := p.Parse(verboseOutput, []string{"--help"}); res.Reason != HelpRequested {
		t.Errorf("expected help, got %s", res.Reason)
	}
	if out.Len() == 0 {
		t.Errorf("no help printed")
	}
}

func TestParseIdempotent(t *testing.T) {
	p, _, _ := newTestParser()
	args := []string{"-o", "result.txt", "pos", "-v"}

	first := p.Parse(verboseOutput, args)
	second := p.Parse(verboseOutput, args)
	if !first.OK() || !second.OK() {
		t.Fatalf("parse failed: %v %v", first.Err, second.Err)
	}
	if diff := cmp.Diff(first.Args.Entries(), second.Args.Entries()); diff != "" {
		t.Errorf("entries differ between calls:\n%s", diff)
	}
	if diff := cmp.Diff(first.Args.Positional(), second.Args.Positional()); diff != "" {
		t.Errorf("positionals differ between calls:\n%s", diff)
	}

	// a later parse without -v must not see the flag from before
	third := p.Parse(verboseOutput, []string{"-o", "x"})
	if third.Args.Has("v") {
		t.Errorf("flag leaked from previous parse")
	}
}

func TestArgsNotMutated(t *testing.T) {
	p, _, _ := newTestParser()
	args := []string{"-v", "pos", "-", "-o", "out"}
	orig := append([]string{}, args...)
	p.Parse(verboseOutput, args)
	if diff := cmp.Diff(orig, args); diff != "" {
		t.Errorf("args mutated:\n%s", diff)
	}
}

func TestNilLogger(t *testing.T) {
	p := NewParser("cmd", "", nil, nil)
	if res := p.Parse(verboseOutput, []string{"-x"}); res.Reason != InvalidArguments {
		t.Errorf("expected invalid arguments, got %s", res.Reason)
	}
	if res := p.Parse(verboseOutput, []string{"-h"}); res.Reason != HelpRequested {
		t.Errorf("expected help, got %s", res.Reason)
	}
}

func TestMalformedSchemaPanics(t *testing.T) {
	tests := []struct {
		name    string
		options Options
	}{
		{"no name", Options{{Description: "nameless"}}},
		{"duplicate short", Options{{Short: "v"}, {Short: "v", Long: "version"}}},
		{"long equals short", Options{{Short: "o"}, {Long: "o"}}},
		{"shadows help", Options{{Short: "h", Description: "host"}}},
		{"flag with arg name", Options{{Short: "v", ArgName: "level"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic")
				}
			}()
			p, _, _ := newTestParser()
			p.Parse(tt.options, nil)
		})
	}
}

func TestReasonString(t *testing.T) {
	for r, want := range map[Reason]string{
		Parsed:           "parsed",
		HelpRequested:    "help requested",
		InvalidArguments: "invalid arguments",
		Reason(9):        "unknown",
	} {
		if got := r.String(); got != want {
			t.Errorf("Reason(%d).String() = %q, want %q", int(r), got, want)
		}
	}
}

package argp

import (
	"io"
	"sort"

	"github.com/davecgh/go-spew/spew"
)

// Reason tells why a parse did or did not produce arguments.
type Reason int

const (
	Parsed Reason = iota
	HelpRequested
	InvalidArguments
)

func (r Reason) String() string {
	switch r {
	case Parsed:
		return "parsed"
	case HelpRequested:
		return "help requested"
	case InvalidArguments:
		return "invalid arguments"
	}
	return "unknown"
}

// Outcome is the result of Parser.Parse. Args is only set when Reason is
// Parsed, Err only when Reason is InvalidArguments.
type Outcome struct {
	Args   *ParsedArguments
	Reason Reason
	Err    error
}

// OK reports whether the caller should proceed. Help requests and invalid
// arguments both mean stop.
func (o Outcome) OK() bool {
	return o.Reason == Parsed && o.Args != nil
}

// ParsedArguments holds the options found on the command line and the
// positional arguments left over. Flags are present with no values.
type ParsedArguments struct {
	entries    map[string][]string
	aliases    map[string]string
	positional []string
}

func newParsedArguments(bindings []*binding, remaining []string) *ParsedArguments {
	p := &ParsedArguments{
		entries:    make(map[string][]string),
		aliases:    make(map[string]string),
		positional: append([]string{}, remaining...),
	}
	for _, b := range bindings {
		key := b.spec.Key()
		if b.spec.Short != "" && b.spec.Long != "" {
			p.aliases[b.spec.Long] = key
		}
		switch {
		case !b.spec.HasValue:
			if b.flag {
				p.entries[key] = nil
			}
		case b.spec.Repeatable:
			if len(b.values) > 0 {
				p.entries[key] = append([]string{}, b.values...)
			}
		default:
			if b.called {
				p.entries[key] = []string{b.value}
			}
		}
	}
	return p
}

func (p *ParsedArguments) key(name string) string {
	if k, ok := p.aliases[name]; ok {
		return k
	}
	return name
}

// Has reports whether the option was given, by short or long name.
func (p *ParsedArguments) Has(name string) bool {
	_, ok := p.entries[p.key(name)]
	return ok
}

// Value returns the value given for a value option. An option given more
// than once yields its last value.
func (p *ParsedArguments) Value(name string) (string, bool) {
	v := p.entries[p.key(name)]
	if len(v) == 0 {
		return "", false
	}
	return v[len(v)-1], true
}

// Values returns every value given for the option, in command line order.
func (p *ParsedArguments) Values(name string) []string {
	v := p.entries[p.key(name)]
	if v == nil {
		return nil
	}
	return append([]string{}, v...)
}

// Positional returns the arguments not consumed by options, in order.
func (p *ParsedArguments) Positional() []string {
	return append([]string{}, p.positional...)
}

// Names returns the keys of the options given, sorted.
func (p *ParsedArguments) Names() []string {
	names := make([]string, 0, len(p.entries))
	for k := range p.entries {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Entries returns a copy of the option map. Flags map to a nil slice.
func (p *ParsedArguments) Entries() map[string][]string {
	m := make(map[string][]string, len(p.entries))
	for k, v := range p.entries {
		if v == nil {
			m[k] = nil
			continue
		}
		m[k] = append([]string{}, v...)
	}
	return m
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Dump writes a debug representation of the arguments to w.
func (p *ParsedArguments) Dump(w io.Writer) {
	dumpConfig.Fdump(w, struct {
		Options    map[string][]string
		Positional []string
	}{p.entries, p.positional})
}

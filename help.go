package argp

import (
	"fmt"
	"io"
	"strings"

	"github.com/DavidGamba/go-getoptions"
	"github.com/mitchellh/go-wordwrap"

	"github.com/Joe-Degs/argp/internal/term"
)

const defaultWidth = 80

// RenderHelp writes usage for command to w: the synopsis, header, one entry
// per option and the footer. Header and footer are wrapped to the width of
// the terminal, or 80 columns when w is not one.
func RenderHelp(w io.Writer, options Options, command, header, footer string) {
	opt, _ := options.getopt(command, false)
	width := uint(term.Width(w, defaultWidth))

	var b strings.Builder
	section(&b, opt.Help(getoptions.HelpSynopsis))
	if header != "" {
		section(&b, wordwrap.WrapString(header, width))
	}
	if len(options) > 0 {
		section(&b, opt.Help(getoptions.HelpOptionList))
	}
	if footer != "" {
		section(&b, wordwrap.WrapString(footer, width))
	}
	fmt.Fprint(w, b.String())
}

// section appends s followed by exactly one blank line.
func section(b *strings.Builder, s string) {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return
	}
	b.WriteString(s)
	b.WriteString("\n\n")
}

// Package logger is a small leveled logger writing timestamped lines. Info
// lines go to the out writer and error lines to the err writer.
package logger

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/Joe-Degs/argp/internal/term"
)

const (
	reset  = "\033[0m"
	ared   = "\033[31m"
	agreen = "\033[32m"

	timeFormat = "2006-01-02 15-04-05.000000 "
)

// Logger satisfies argp.Logger.
type Logger struct {
	*log.Logger
	prefix   string
	writeErr bool
	out, err io.Writer

	// color the level labels, on when both writers are terminals
	color bool

	// Verbose enables the Verbose method
	Verbose bool

	// now is swapped out in tests
	now func() time.Time
}

// New returns a logger with prefix naming the component that logs.
func New(prefix string, out, err io.Writer) *Logger {
	l := &Logger{
		prefix: prefix,
		out:    out,
		err:    err,
		color:  term.IsTerminal(out) && term.IsTerminal(err),
		now:    time.Now,
	}
	l.Logger = log.New(l, prefix, 0)
	return l
}

func (l *Logger) Write(b []byte) (int, error) {
	t := l.now().Format(timeFormat)
	if l.writeErr {
		return l.err.Write(append([]byte(t), b...))
	}
	return l.out.Write(append([]byte(t), b...))
}

func (l *Logger) label(code, s string) string {
	if !l.color {
		return s
	}
	return fmt.Sprintf("%s%s%s", code, s, reset)
}

func (l *Logger) Info(format string, v ...any) {
	l.SetPrefix(fmt.Sprintf("[ %s ]  %s: ", l.label(agreen, "INFO"), l.prefix))
	defer l.SetPrefix(l.prefix)
	l.Printf(format, v...)
}

func (l *Logger) Error(format string, v ...any) {
	l.writeErr = true
	l.SetPrefix(fmt.Sprintf("[ %s ] %s: ", l.label(ared, "ERROR"), l.prefix))
	defer func() {
		l.SetPrefix(l.prefix)
		l.writeErr = false
	}()
	l.Printf(format, v...)
}

// Verbosef logs at info level only when Verbose is set.
func (l *Logger) Verbosef(format string, v ...any) {
	if l.Verbose {
		l.Info(format, v...)
	}
}

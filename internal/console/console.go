// Package console renders user-facing output. Failures go to stderr in
// red when stderr is an interactive terminal, plain otherwise so piped
// output stays clean.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

// Printer writes status lines to Out and failures to Err.
type Printer struct {
	Out io.Writer
	Err io.Writer

	color bool
}

// NewPrinter returns a Printer bound to stdout/stderr, coloring errors
// only when stderr is a terminal.
func NewPrinter() *Printer {
	return New(os.Stdout, os.Stderr, term.IsTerminal(int(os.Stderr.Fd())))
}

// New returns a Printer with explicit writers and color behavior.
func New(out, errOut io.Writer, color bool) *Printer {
	return &Printer{Out: out, Err: errOut, color: color}
}

// Error writes the error message on its own line.
func (p *Printer) Error(err error) {
	msg := err.Error()
	if p.color {
		msg = errorStyle.Render(msg)
	}
	fmt.Fprintln(p.Err, msg)
}

// Errorf formats and writes a failure line.
func (p *Printer) Errorf(format string, args ...any) {
	p.Error(fmt.Errorf(format, args...))
}

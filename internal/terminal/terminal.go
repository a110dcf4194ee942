// Package terminal probes the size of the controlling terminal.
package terminal

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// Prober reports the terminal size in character cells. ok is false when no
// terminal is attached.
type Prober interface {
	Size() (columns, rows int, ok bool)
}

// ProberFunc adapts a function to the Prober interface.
type ProberFunc func() (columns, rows int, ok bool)

// Size calls f.
func (f ProberFunc) Size() (int, int, bool) { return f() }

// Fixed is a Prober that always reports the same size.
type Fixed struct {
	Columns int
	Rows    int
}

// Size returns the fixed size; ok is false for a zero column count.
func (f Fixed) Size() (int, int, bool) {
	return f.Columns, f.Rows, f.Columns > 0
}

// None is a Prober for contexts without a terminal, such as the MCP server.
var None Prober = Fixed{}

// Stdout probes the terminal attached to stdout, then stderr, then falls
// back to the COLUMNS and LINES environment variables.
var Stdout Prober = ProberFunc(func() (int, int, bool) {
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		fd := int(f.Fd())
		if !term.IsTerminal(fd) {
			continue
		}
		if w, h, err := term.GetSize(fd); err == nil && w > 0 {
			return w, h, true
		}
	}
	return FromEnv()
})

// FromEnv reads COLUMNS and LINES.
func FromEnv() (columns, rows int, ok bool) {
	columns, _ = strconv.Atoi(os.Getenv("COLUMNS"))
	rows, _ = strconv.Atoi(os.Getenv("LINES"))
	if columns <= 0 {
		return 0, 0, false
	}
	if rows < 0 {
		rows = 0
	}
	return columns, rows, true
}

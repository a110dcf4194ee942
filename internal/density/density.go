// Package density holds the character tables that stand in for brightness
// levels and the mapping from a luminosity value to a table index.
//
// A Table is ordered from darkest (index 0) to lightest (last index). Entries
// are grapheme clusters rather than bytes or runes, so a custom table such as
// "é·" is two characters even when the accent is a combining mark.
package density

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rivo/uniseg"
)

// ErrInvalidDensityTable is returned when a table would have no characters.
var ErrInvalidDensityTable = errors.New("density table must contain at least one character")

// Preset names one of the built-in tables.
type Preset int

const (
	// Custom marks a Spec that carries its own characters.
	Custom Preset = iota
	Short
	Medium
	Long
)

const (
	shortChars  = `Ñ@#W$9876543210?!abc;:+=-,._ `
	mediumChars = `$@B%8&WM#*oahkbdpqwmZO0QLCJUYXzcvunxrjft/\|()1{}[]?-_+~<>i!lI;:,"^` + "`" + `'. `
	longChars   = `¶@ØÆMåBNÊßÔR#8Q&mÃ0À$GXZA5ñk2S%±3Fz¢yÝCJf1t7ªLc¿+?(r/¤²!*;"^:,'.` + "` "
)

// String returns the canonical keyword for p.
func (p Preset) String() string {
	switch p {
	case Short:
		return "short"
	case Medium:
		return "medium"
	case Long:
		return "long"
	default:
		return "custom"
	}
}

// Chars returns the characters of a built-in preset. Custom yields "".
func (p Preset) Chars() string {
	switch p {
	case Short:
		return shortChars
	case Medium:
		return mediumChars
	case Long:
		return longChars
	default:
		return ""
	}
}

// Presets lists the built-in tables in order of increasing length.
func Presets() []Preset {
	return []Preset{Short, Medium, Long}
}

// Spec is a resolved density selection: either a preset or a custom string.
type Spec struct {
	Preset Preset
	Custom string
}

// Parse resolves a user supplied density argument once, at configuration
// time. The keywords short|s|0, medium|m|1 and long|l|2 select presets, an
// empty string selects the default preset and anything else is taken
// verbatim as a custom table.
func Parse(arg string) Spec {
	switch arg {
	case "", "short", "s", "0":
		return Spec{Preset: Short}
	case "medium", "m", "1":
		return Spec{Preset: Medium}
	case "long", "l", "2":
		return Spec{Preset: Long}
	default:
		return Spec{Preset: Custom, Custom: arg}
	}
}

// Table builds the character table s selects.
func (s Spec) Table() (Table, error) {
	if s.Preset == Custom {
		return New(s.Custom)
	}
	return New(s.Preset.Chars())
}

// String returns the keyword or the custom characters.
func (s Spec) String() string {
	if s.Preset == Custom {
		return s.Custom
	}
	return s.Preset.String()
}

// Table is an immutable, non-empty sequence of characters ordered from dark
// to light. It is safe to share between goroutines.
type Table struct {
	chars []string
}

// New splits chars into grapheme clusters and returns the resulting table.
func New(chars string) (Table, error) {
	if chars == "" {
		return Table{}, ErrInvalidDensityTable
	}
	var out []string
	g := uniseg.NewGraphemes(chars)
	for g.Next() {
		out = append(out, g.Str())
	}
	if len(out) == 0 {
		return Table{}, ErrInvalidDensityTable
	}
	return Table{chars: out}, nil
}

// MustNew is like New but panics on an empty table. Intended for tests and
// package level tables.
func MustNew(chars string) Table {
	t, err := New(chars)
	if err != nil {
		panic(fmt.Sprintf("density.MustNew(%q): %v", chars, err))
	}
	return t
}

// Len returns the number of characters in the table.
func (t Table) Len() int {
	return len(t.chars)
}

// At returns the character at index i.
func (t Table) At(i int) string {
	return t.chars[i]
}

// Validate reports ErrInvalidDensityTable for a zero Table.
func (t Table) Validate() error {
	if len(t.chars) == 0 {
		return ErrInvalidDensityTable
	}
	return nil
}

// Reverse returns the table with its order flipped, so bright areas pick the
// characters that were meant for dark ones.
func (t Table) Reverse() Table {
	out := make([]string, len(t.chars))
	for i, c := range t.chars {
		out[len(t.chars)-1-i] = c
	}
	return Table{chars: out}
}

// Lookup returns the character representing the given luminosity.
func (t Table) Lookup(luminosity float64) string {
	return t.chars[Index(luminosity, len(t.chars))]
}

// String joins the table back into a single string.
func (t Table) String() string {
	return strings.Join(t.chars, "")
}

// Index rescales a luminosity in [0, 255] onto [0, n], floors it and clamps
// the result to a valid index in [0, n-1]. A luminosity of exactly 255 maps
// to the last index. Out of range and NaN inputs clamp to the nearest end.
func Index(luminosity float64, n int) int {
	if n <= 1 || math.IsNaN(luminosity) || luminosity <= 0 {
		return 0
	}
	idx := math.Floor(luminosity / 255 * float64(n))
	if idx >= float64(n-1) {
		return n - 1
	}
	return int(idx)
}

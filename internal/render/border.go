package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	borderHorizontal  = "═"
	borderVertical    = "║"
	borderTopLeft     = "╔"
	borderTopRight    = "╗"
	borderBottomLeft  = "╚"
	borderBottomRight = "╝"
)

// Wrap frames rows with a box-drawing border. The top and bottom rows are
// width+2 cells wide; each content row gets a vertical bar on both sides.
// Rows are not padded, so width should be their display width.
func Wrap(rows []string, width int) []string {
	if width < 0 {
		width = 0
	}
	line := strings.Repeat(borderHorizontal, width)
	out := make([]string, 0, len(rows)+2)
	out = append(out, borderTopLeft+line+borderTopRight)
	for _, r := range rows {
		out = append(out, borderVertical+r+borderVertical)
	}
	out = append(out, borderBottomLeft+line+borderBottomRight)
	return out
}

// DisplayWidth returns the widest terminal cell width among rows. Escape
// sequences are ignored and wide glyphs count as two cells.
func DisplayWidth(rows []string) int {
	w := 0
	for _, r := range rows {
		if n := runewidth.StringWidth(StripANSI(r)); n > w {
			w = n
		}
	}
	return w
}

// JoinRows joins rows into a newline-terminated block.
func JoinRows(rows []string) string {
	if len(rows) == 0 {
		return ""
	}
	return strings.Join(rows, "\n") + "\n"
}

package render

import (
	"strconv"
	"strings"

	"github.com/ironsheep/image-ascii/internal/imaging"
)

const (
	esc   = "\x1b["
	reset = esc + "0m"
)

// Foreground returns the truecolor escape that sets the glyph color.
func Foreground(c imaging.RGBColor) string {
	return sgr(38, c)
}

// BackgroundColor returns the truecolor escape that sets the cell background.
func BackgroundColor(c imaging.RGBColor) string {
	return sgr(48, c)
}

func sgr(code int, c imaging.RGBColor) string {
	var sb strings.Builder
	writeSGR(&sb, code, c)
	return sb.String()
}

func writeSGR(sb *strings.Builder, code int, c imaging.RGBColor) {
	sb.WriteString(esc)
	sb.WriteString(strconv.Itoa(code))
	sb.WriteString(";2;")
	sb.WriteString(strconv.Itoa(int(c.R)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.G)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.B)))
	sb.WriteByte('m')
}

// writeANSI appends ESC[38;2;R;G;Bm<char>ESC[0m, or the 48 (background)
// variant, for one cell.
func writeANSI(sb *strings.Builder, cell Cell, background bool) {
	code := 38
	if background {
		code = 48
	}
	writeSGR(sb, code, cell.Color)
	sb.WriteString(cell.Char)
	sb.WriteString(reset)
}

// StripANSI removes SGR escape sequences, leaving the printable text.
func StripANSI(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for {
		i := strings.Index(s, esc)
		if i < 0 {
			sb.WriteString(s)
			return sb.String()
		}
		sb.WriteString(s[:i])
		s = s[i+len(esc):]
		j := strings.IndexByte(s, 'm')
		if j < 0 {
			return sb.String()
		}
		s = s[j+1:]
	}
}

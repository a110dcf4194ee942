package render

import (
	"html"
	"strings"
)

// HTML renders the cell grid as a standalone page. Each cell becomes a span
// colored with its sampled color, either as text color or as background.
func HTML(cells [][]Cell, background bool) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	sb.WriteString("<style>pre{font-family:monospace;line-height:1;background:#000;color:#fff}</style>\n")
	sb.WriteString("</head>\n<body>\n<pre>\n")
	prop := "color"
	if background {
		prop = "background-color"
	}
	for _, row := range cells {
		for _, c := range row {
			sb.WriteString(`<span style="`)
			sb.WriteString(prop)
			sb.WriteByte(':')
			sb.WriteString(c.Color.Hex())
			sb.WriteString(`">`)
			sb.WriteString(html.EscapeString(c.Char))
			sb.WriteString("</span>")
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("</pre>\n</body>\n</html>\n")
	return sb.String()
}

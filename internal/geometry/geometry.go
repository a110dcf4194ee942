// Package geometry resolves how a source image is cut into character tiles.
//
// Tile sizes and counts use truncating integer division on purpose: pixels on
// the right and bottom edges that do not fill a whole tile are dropped rather
// than padded.
package geometry

import (
	"fmt"
	"math"
)

const (
	// DefaultScale compensates for terminal cells being taller than wide.
	DefaultScale = 0.43

	// DefaultMinSize and DefaultMaxSize bound an explicit total size.
	DefaultMinSize = 80
	DefaultMaxSize = 200
)

// Geometry is the tile grid laid over the source image.
type Geometry struct {
	TileWidth  int `json:"tile_width"`
	TileHeight int `json:"tile_height"`
	Columns    int `json:"columns"`
	Rows       int `json:"rows"`
}

// Fits reports whether the grid lies inside a width x height source.
func (g Geometry) Fits(width, height int) bool {
	return g.TileWidth > 0 && g.TileHeight > 0 && g.Columns > 0 && g.Rows > 0 &&
		g.Columns*g.TileWidth <= width && g.Rows*g.TileHeight <= height
}

// DegenerateGeometryError reports a request that would produce an empty tile
// or an empty grid. Callers decide whether to re-request with a smaller size
// or give up.
type DegenerateGeometryError struct {
	SourceWidth  int
	SourceHeight int
	Geometry     Geometry
}

func (e *DegenerateGeometryError) Error() string {
	g := e.Geometry
	return fmt.Sprintf("degenerate geometry for %dx%d source: tile %dx%d, grid %dx%d",
		e.SourceWidth, e.SourceHeight, g.TileWidth, g.TileHeight, g.Columns, g.Rows)
}

// Kind selects how a Target is interpreted.
type Kind int

const (
	KindSize Kind = iota
	KindWidth
	KindHeight
	KindWidthHeight
	KindFitTerminal
)

func (k Kind) String() string {
	switch k {
	case KindSize:
		return "size"
	case KindWidth:
		return "width"
	case KindHeight:
		return "height"
	case KindWidthHeight:
		return "width+height"
	case KindFitTerminal:
		return "fit-terminal"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Target describes the requested output size. Build one with Size, Width,
// Height, WidthHeight or FitTerminal.
type Target struct {
	Kind   Kind
	Width  int
	Height int
}

// Size requests n columns, clamped to the resolver's Range.
func Size(n int) Target { return Target{Kind: KindSize, Width: n} }

// Width requests n columns without clamping.
func Width(n int) Target { return Target{Kind: KindWidth, Width: n} }

// Height requests n rows and derives the columns from the aspect scale.
func Height(n int) Target { return Target{Kind: KindHeight, Height: n} }

// WidthHeight requests an exact grid without aspect correction.
func WidthHeight(w, h int) Target { return Target{Kind: KindWidthHeight, Width: w, Height: h} }

// FitTerminal fits the grid into a terminal of the given size. A zero column
// count means no terminal was found.
func FitTerminal(columns, rows int) Target {
	return Target{Kind: KindFitTerminal, Width: columns, Height: rows}
}

func (t Target) String() string {
	switch t.Kind {
	case KindHeight:
		return fmt.Sprintf("%s(%d)", t.Kind, t.Height)
	case KindWidthHeight, KindFitTerminal:
		return fmt.Sprintf("%s(%dx%d)", t.Kind, t.Width, t.Height)
	default:
		return fmt.Sprintf("%s(%d)", t.Kind, t.Width)
	}
}

// Range bounds the column count of a KindSize target.
type Range struct {
	Min int
	Max int
}

// Clamp limits n to [r.Min, r.Max].
func (r Range) Clamp(n int) int {
	if n < r.Min {
		return r.Min
	}
	if n > r.Max {
		return r.Max
	}
	return n
}

// Resolver turns a Target into a Geometry. The zero value is not usable;
// start from NewResolver.
type Resolver struct {
	Range Range
	Scale float64
}

// NewResolver returns a resolver with the default range and aspect scale.
func NewResolver() Resolver {
	return Resolver{
		Range: Range{Min: DefaultMinSize, Max: DefaultMaxSize},
		Scale: DefaultScale,
	}
}

// Resolve computes the tile grid for a width x height source.
func (r Resolver) Resolve(width, height int, target Target) (Geometry, error) {
	if width <= 0 || height <= 0 {
		return Geometry{}, fmt.Errorf("invalid source dimensions %dx%d", width, height)
	}
	if r.Scale <= 0 || math.IsNaN(r.Scale) || math.IsInf(r.Scale, 0) {
		return Geometry{}, fmt.Errorf("invalid aspect scale %v", r.Scale)
	}

	var g Geometry
	switch target.Kind {
	case KindSize:
		g = r.byColumns(width, height, r.Range.Clamp(target.Width))
	case KindWidth:
		g = r.byColumns(width, height, target.Width)
	case KindHeight:
		g = r.byRows(width, height, target.Height)
	case KindWidthHeight:
		g = exact(width, height, target.Width, target.Height)
	case KindFitTerminal:
		g = r.fitTerminal(width, height, target.Width, target.Height)
	default:
		return Geometry{}, fmt.Errorf("unknown target kind %v", target.Kind)
	}

	if !g.Fits(width, height) {
		return Geometry{}, &DegenerateGeometryError{SourceWidth: width, SourceHeight: height, Geometry: g}
	}
	return g, nil
}

// byColumns never upscales: the column count is capped at the source width.
func (r Resolver) byColumns(width, height, columns int) Geometry {
	if columns > width {
		columns = width
	}
	if columns <= 0 {
		return Geometry{}
	}
	tw := width / columns
	th := int(math.Floor(float64(tw) / r.Scale))
	g := Geometry{TileWidth: tw, TileHeight: th, Columns: columns}
	if th > 0 {
		g.Rows = height / th
	}
	return g
}

func (r Resolver) byRows(width, height, rows int) Geometry {
	if rows > height {
		rows = height
	}
	if rows <= 0 {
		return Geometry{}
	}
	th := height / rows
	tw := int(math.Floor(float64(th) * r.Scale))
	g := Geometry{TileWidth: tw, TileHeight: th, Rows: rows}
	if tw > 0 {
		g.Columns = width / tw
	}
	return g
}

func exact(width, height, columns, rows int) Geometry {
	if columns <= 0 || rows <= 0 {
		return Geometry{Columns: columns, Rows: rows}
	}
	return Geometry{
		TileWidth:  width / columns,
		TileHeight: height / rows,
		Columns:    columns,
		Rows:       rows,
	}
}

func (r Resolver) fitTerminal(width, height, columns, rows int) Geometry {
	if columns <= 0 {
		return r.byColumns(width, height, r.Range.Min)
	}
	g := r.byColumns(width, height, columns)
	if rows <= 0 || g.Rows <= rows {
		return g
	}

	// Too tall for the terminal: size tiles from the row budget instead,
	// rounding the tile height up so the row count cannot overshoot.
	th := (height + rows - 1) / rows
	tw := int(math.Floor(float64(th) * r.Scale))
	if tw < 1 {
		tw = 1
	}
	g = Geometry{TileWidth: tw, TileHeight: th, Columns: width / tw, Rows: height / th}
	if g.Columns > columns {
		g.Columns = columns
	}
	return g
}

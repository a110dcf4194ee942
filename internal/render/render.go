// Package render walks the tile grid of a prepared image and assembles the
// text views of the result: plain characters, truecolor escapes and HTML.
package render

import (
	"fmt"
	"image"
	"log/slog"
	"runtime"
	"runtime/debug"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/image-ascii/internal/density"
	"github.com/ironsheep/image-ascii/internal/geometry"
	"github.com/ironsheep/image-ascii/internal/imaging"
)

// Options toggle the transforms and output flavours of a render.
type Options struct {
	FlipHorizontal bool
	FlipVertical   bool
	// Invert reverses the density table before lookup. Sampled colors are
	// left alone.
	Invert bool
	// Threads is a parallelism hint, clamped to [1, NumCPU] and to the row count.
	Threads int
	// Monochrome makes the color view identical to the plain view.
	Monochrome bool
	// Background colors the cell background instead of the glyph.
	Background bool
}

// Cell is one rendered grid position.
type Cell struct {
	Char  string           `json:"char"`
	Color imaging.RGBColor `json:"color"`
}

// Result holds the cell grid and its two text projections. Rows are in
// output order, flips already applied. Plain and Color terminate every row
// with "\n".
type Result struct {
	Cells [][]Cell
	Plain string
	Color string
}

// Rows returns the plain view split into rows, without newlines.
func (r *Result) Rows() []string {
	return splitRows(r.Plain)
}

// ColorRows returns the color view split into rows, without newlines.
func (r *Result) ColorRows() []string {
	return splitRows(r.Color)
}

func splitRows(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// WorkerPanicError wraps a panic raised while rendering a chunk of rows.
type WorkerPanicError struct {
	FirstRow int
	Value    any
	Stack    []byte
}

func (e *WorkerPanicError) Error() string {
	return fmt.Sprintf("render worker for rows starting at %d panicked: %v", e.FirstRow, e.Value)
}

type renderedRow struct {
	index int
	cells []Cell
	plain string
	color string
}

// Render converts img into text using geom and table. The image and table
// are only read, so they are shared by all workers without locking.
//
// Configuration problems are reported before any tile is processed; a
// failure in any worker discards the whole result.
func Render(img *image.NRGBA, geom geometry.Geometry, table density.Table, opts Options) (*Result, error) {
	if img == nil {
		return nil, fmt.Errorf("nil image")
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	b := img.Rect
	if !geom.Fits(b.Dx(), b.Dy()) {
		return nil, &geometry.DegenerateGeometryError{SourceWidth: b.Dx(), SourceHeight: b.Dy(), Geometry: geom}
	}
	if opts.Invert {
		table = table.Reverse()
	}

	threads := clampThreads(opts.Threads, geom.Rows)
	chunks := partition(geom.Rows, threads)
	slog.Debug("rendering",
		"columns", geom.Columns, "rows", geom.Rows,
		"tile_width", geom.TileWidth, "tile_height", geom.TileHeight,
		"threads", threads, "density", table.Len())

	w := rowWorker{img: img, geom: geom, table: table, opts: opts}
	parts := make([][]renderedRow, len(chunks))

	var g errgroup.Group
	for i, c := range chunks {
		i, c := i, c
		g.Go(func() (err error) {
			defer func() {
				if v := recover(); v != nil {
					err = &WorkerPanicError{FirstRow: c.start, Value: v, Stack: debug.Stack()}
				}
			}()
			out := make([]renderedRow, 0, c.end-c.start)
			for row := c.start; row < c.end; row++ {
				r, err := w.render(row)
				if err != nil {
					return err
				}
				out = append(out, r)
			}
			parts[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Place rows by index so the output never depends on completion order.
	rows := make([]renderedRow, geom.Rows)
	for _, part := range parts {
		for _, r := range part {
			rows[r.index] = r
		}
	}

	res := &Result{Cells: make([][]Cell, geom.Rows)}
	var plain, color strings.Builder
	for i, r := range rows {
		res.Cells[i] = r.cells
		plain.WriteString(r.plain)
		plain.WriteByte('\n')
		color.WriteString(r.color)
		color.WriteByte('\n')
	}
	res.Plain = plain.String()
	res.Color = color.String()
	if opts.Monochrome {
		res.Color = res.Plain
	}
	return res, nil
}

type rowWorker struct {
	img   *image.NRGBA
	geom  geometry.Geometry
	table density.Table
	opts  Options
}

// render produces output row index. Flips only change which tiles are
// visited; tile boundaries stay those of the geometry.
func (w rowWorker) render(index int) (renderedRow, error) {
	g := w.geom
	srcRow := index
	if w.opts.FlipVertical {
		srcRow = g.Rows - 1 - index
	}

	cells := make([]Cell, g.Columns)
	var plain, color strings.Builder
	for i := 0; i < g.Columns; i++ {
		col := i
		if w.opts.FlipHorizontal {
			col = g.Columns - 1 - i
		}
		x := w.img.Rect.Min.X + col*g.TileWidth
		y := w.img.Rect.Min.Y + srcRow*g.TileHeight
		sample, err := imaging.Reduce(w.img, image.Rect(x, y, x+g.TileWidth, y+g.TileHeight))
		if err != nil {
			return renderedRow{}, err
		}

		cell := Cell{Char: w.table.Lookup(sample.Luminosity), Color: sample.Color()}
		cells[i] = cell
		plain.WriteString(cell.Char)
		if !w.opts.Monochrome {
			writeANSI(&color, cell, w.opts.Background)
		}
	}
	return renderedRow{index: index, cells: cells, plain: plain.String(), color: color.String()}, nil
}

func clampThreads(threads, rows int) int {
	if n := runtime.NumCPU(); threads > n {
		threads = n
	}
	if threads > rows {
		threads = rows
	}
	if threads < 1 {
		threads = 1
	}
	return threads
}

type chunk struct {
	start, end int
}

// partition splits [0, rows) into n contiguous chunks whose sizes differ by
// at most one.
func partition(rows, n int) []chunk {
	if n < 1 {
		n = 1
	}
	chunks := make([]chunk, 0, n)
	size, rest := rows/n, rows%n
	start := 0
	for i := 0; i < n; i++ {
		end := start + size
		if i < rest {
			end++
		}
		if end > start {
			chunks = append(chunks, chunk{start: start, end: end})
		}
		start = end
	}
	return chunks
}

// Package convert is the entry point of the text-art pipeline: it resolves
// the density table and tile geometry for an image, renders it and applies
// the optional border.
package convert

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/ironsheep/image-ascii/internal/density"
	"github.com/ironsheep/image-ascii/internal/geometry"
	"github.com/ironsheep/image-ascii/internal/imaging"
	"github.com/ironsheep/image-ascii/internal/render"
	"github.com/ironsheep/image-ascii/internal/terminal"
)

// Options describes one conversion. Zero values mean "not set".
type Options struct {
	// Size is a total column count, clamped to [80, 200].
	Size int `json:"size,omitempty"`
	// Width and Height request exact columns and/or rows.
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
	// FitTerminal sizes the output to the terminal. It is also the default
	// when no size is given.
	FitTerminal bool `json:"fit_terminal,omitempty"`

	// Density is a preset keyword (short, medium, long, s, m, l, 0, 1, 2)
	// or a custom table, dark to light. Empty selects the short preset.
	Density string `json:"density,omitempty"`
	// Scale is the character cell aspect correction; 0 selects 0.43.
	Scale float64 `json:"scale,omitempty"`

	FlipHorizontal bool `json:"flip_x,omitempty"`
	FlipVertical   bool `json:"flip_y,omitempty"`
	Invert         bool `json:"invert,omitempty"`
	NoColor        bool `json:"no_color,omitempty"`
	Background     bool `json:"background,omitempty"`
	Border         bool `json:"border,omitempty"`
	Threads        int  `json:"threads,omitempty"`

	Region      *imaging.Region     `json:"region,omitempty"`
	Adjustments imaging.Adjustments `json:"adjustments,omitempty"`
}

// Target picks the geometry target from the size related options. fit is
// consulted only when the target is FitTerminal.
func (o Options) Target(fit terminal.Prober) geometry.Target {
	switch {
	case o.Width > 0 && o.Height > 0:
		return geometry.WidthHeight(o.Width, o.Height)
	case o.Width > 0:
		return geometry.Width(o.Width)
	case o.Height > 0:
		return geometry.Height(o.Height)
	case o.Size > 0 && !o.FitTerminal:
		return geometry.Size(o.Size)
	}
	if fit == nil {
		fit = terminal.None
	}
	if w, h, ok := fit.Size(); ok {
		return geometry.FitTerminal(w, h)
	}
	if o.Size > 0 {
		return geometry.Size(o.Size)
	}
	return geometry.FitTerminal(0, 0)
}

// Result is the outcome of a conversion.
type Result struct {
	// Plain holds the characters only, one newline-terminated row per line.
	Plain string `json:"plain_text"`
	// Color holds the same rows with a truecolor escape around each
	// character, or equals Plain when color is off.
	Color string `json:"color_text,omitempty"`
	// Cells is the grid both views are projected from, without border.
	Cells [][]render.Cell `json:"-"`

	Geometry geometry.Geometry `json:"geometry"`
	Density  string            `json:"density"`
	// BytesHint is the number of bytes writing Plain to a file produces.
	BytesHint int `json:"bytes_hint"`
}

// HTML renders the cell grid as a standalone HTML page.
func (r *Result) HTML(background bool) string {
	return render.HTML(r.Cells, background)
}

// Converter carries the collaborators of a conversion.
type Converter struct {
	Terminal terminal.Prober
	Resolver geometry.Resolver
}

// New returns a Converter probing the real terminal.
func New() *Converter {
	return &Converter{
		Terminal: terminal.Stdout,
		Resolver: geometry.NewResolver(),
	}
}

// Convert runs the pipeline with a Converter from New.
func Convert(img image.Image, opts Options) (*Result, error) {
	return New().Convert(img, opts)
}

// Convert turns img into text. Table and geometry errors are returned before
// any pixel work starts; no partial result is ever returned.
func (c *Converter) Convert(img image.Image, opts Options) (*Result, error) {
	start := time.Now()

	spec := density.Parse(opts.Density)
	table, err := spec.Table()
	if err != nil {
		return nil, err
	}

	prepared, err := imaging.Prepare(img, opts.Region, opts.Adjustments)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare image: %w", err)
	}

	resolver := c.Resolver
	if opts.Scale != 0 {
		resolver.Scale = opts.Scale
	}
	target := opts.Target(c.Terminal)
	b := prepared.Bounds()
	geom, err := resolver.Resolve(b.Dx(), b.Dy(), target)
	if err != nil {
		return nil, err
	}
	slog.Debug("resolved geometry",
		"source", fmt.Sprintf("%dx%d", b.Dx(), b.Dy()),
		"target", target.String(), "scale", resolver.Scale,
		"columns", geom.Columns, "rows", geom.Rows)

	res, err := render.Render(prepared, geom, table, render.Options{
		FlipHorizontal: opts.FlipHorizontal,
		FlipVertical:   opts.FlipVertical,
		Invert:         opts.Invert,
		Threads:        opts.Threads,
		Monochrome:     opts.NoColor,
		Background:     opts.Background,
	})
	if err != nil {
		return nil, err
	}

	out := &Result{
		Plain:    res.Plain,
		Color:    res.Color,
		Cells:    res.Cells,
		Geometry: geom,
		Density:  spec.String(),
	}
	if opts.Border {
		plainRows := res.Rows()
		width := render.DisplayWidth(plainRows)
		out.Plain = render.JoinRows(render.Wrap(plainRows, width))
		if opts.NoColor {
			out.Color = out.Plain
		} else {
			out.Color = render.JoinRows(render.Wrap(res.ColorRows(), width))
		}
	}
	out.BytesHint = len(out.Plain)

	slog.Debug("converted image", "bytes", out.BytesHint, "elapsed", time.Since(start))
	return out, nil
}

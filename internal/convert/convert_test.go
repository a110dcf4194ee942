package convert

import (
	"errors"
	"image"
	"image/color"
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/image-ascii/internal/geometry"
	"github.com/ironsheep/image-ascii/internal/imaging"
	"github.com/ironsheep/image-ascii/internal/render"
	"github.com/ironsheep/image-ascii/internal/terminal"
)

func noiseImage(width, height int, seed int64) *image.RGBA {
	rng := rand.New(rand.NewSource(seed))
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256)), 255})
		}
	}
	return img
}

func converter(prober terminal.Prober) *Converter {
	return &Converter{Terminal: prober, Resolver: geometry.NewResolver()}
}

func assertGrid(t *testing.T, text string, rows, columns int) {
	t.Helper()
	assert.True(t, strings.HasSuffix(text, "\n"))
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	require.Len(t, lines, rows)
	for i, l := range lines {
		assert.Equal(t, columns, utf8.RuneCountInString(l), "row %d", i)
	}
}

func TestConvert_Scenario160x100(t *testing.T) {
	res, err := converter(terminal.None).Convert(noiseImage(160, 100, 1), Options{Size: 80})
	require.NoError(t, err)

	assert.Equal(t, geometry.Geometry{TileWidth: 2, TileHeight: 4, Columns: 80, Rows: 25}, res.Geometry)
	assertGrid(t, res.Plain, 25, 80)
	assert.Equal(t, "short", res.Density)
	assert.Equal(t, len(res.Plain), res.BytesHint)
	assert.Equal(t, res.Plain, render.StripANSI(res.Color))
}

func TestConvert_DefaultTarget(t *testing.T) {
	img := noiseImage(160, 100, 2)

	// No terminal: fall back to the default size.
	res, err := converter(terminal.None).Convert(img, Options{})
	require.NoError(t, err)
	assert.Equal(t, 80, res.Geometry.Columns)

	// With a terminal the output fits it.
	res, err = converter(terminal.Fixed{Columns: 100, Rows: 50}).Convert(img, Options{})
	require.NoError(t, err)
	assert.Equal(t, geometry.Geometry{TileWidth: 1, TileHeight: 2, Columns: 100, Rows: 50}, res.Geometry)

	res, err = converter(terminal.Fixed{Columns: 80, Rows: 24}).Convert(img, Options{FitTerminal: true, Size: 120})
	require.NoError(t, err)
	assert.LessOrEqual(t, res.Geometry.Rows, 24)
	assert.LessOrEqual(t, res.Geometry.Columns, 80)
}

func TestOptionsTarget(t *testing.T) {
	term := terminal.Fixed{Columns: 90, Rows: 30}
	tests := []struct {
		name string
		opts Options
		want geometry.Target
	}{
		{"width and height", Options{Width: 10, Height: 5, Size: 100}, geometry.WidthHeight(10, 5)},
		{"width", Options{Width: 10}, geometry.Width(10)},
		{"height", Options{Height: 7}, geometry.Height(7)},
		{"size", Options{Size: 150}, geometry.Size(150)},
		{"default fits terminal", Options{}, geometry.FitTerminal(90, 30)},
		{"fit overrides size", Options{Size: 150, FitTerminal: true}, geometry.FitTerminal(90, 30)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.Target(term))
		})
	}

	assert.Equal(t, geometry.Size(150), Options{Size: 150, FitTerminal: true}.Target(nil))
	assert.Equal(t, geometry.FitTerminal(0, 0), Options{}.Target(terminal.None))
}

func TestConvert_Border(t *testing.T) {
	img := noiseImage(160, 100, 3)
	c := converter(terminal.None)

	plain, err := c.Convert(img, Options{Size: 80})
	require.NoError(t, err)
	framed, err := c.Convert(img, Options{Size: 80, Border: true})
	require.NoError(t, err)

	assertGrid(t, framed.Plain, 27, 82)
	lines := strings.Split(strings.TrimSuffix(framed.Plain, "\n"), "\n")
	assert.Equal(t, "╔"+strings.Repeat("═", 80)+"╗", lines[0])
	assert.Equal(t, "╚"+strings.Repeat("═", 80)+"╝", lines[len(lines)-1])
	inner := plain.Plain[:len(plain.Plain)-1]
	for i, row := range strings.Split(inner, "\n") {
		assert.Equal(t, "║"+row+"║", lines[i+1])
	}

	assert.Equal(t, framed.Plain, render.StripANSI(framed.Color))
	assert.Equal(t, plain.Cells, framed.Cells, "border does not touch the cell grid")
	assert.Equal(t, len(framed.Plain), framed.BytesHint)
}

func TestConvert_NoColor(t *testing.T) {
	img := noiseImage(90, 90, 4)
	for _, border := range []bool{false, true} {
		res, err := converter(terminal.None).Convert(img, Options{Size: 80, NoColor: true, Border: border})
		require.NoError(t, err)
		assert.Equal(t, res.Plain, res.Color)
		assert.NotContains(t, res.Color, "\x1b[")
	}
}

func TestConvert_Background(t *testing.T) {
	res, err := converter(terminal.None).Convert(noiseImage(90, 90, 5), Options{Width: 10, Background: true})
	require.NoError(t, err)
	assert.Contains(t, res.Color, "\x1b[48;2;")
	assert.NotContains(t, res.Color, "\x1b[38;2;")
}

func TestConvert_InvertMatchesReversedTable(t *testing.T) {
	img := noiseImage(120, 120, 6)
	c := converter(terminal.None)

	inverted, err := c.Convert(img, Options{Size: 80, Density: "AB", Invert: true})
	require.NoError(t, err)
	reversed, err := c.Convert(img, Options{Size: 80, Density: "BA"})
	require.NoError(t, err)
	assert.Equal(t, reversed.Plain, inverted.Plain)
}

func TestConvert_Presets(t *testing.T) {
	img := noiseImage(100, 100, 7)
	for _, arg := range []string{"short", "m", "2", "M0123-."} {
		res, err := converter(terminal.None).Convert(img, Options{Size: 80, Density: arg})
		require.NoError(t, err, arg)
		assert.NotEmpty(t, res.Plain)
	}
}

func TestConvert_ThreadCountInvariance(t *testing.T) {
	img := noiseImage(250, 180, 8)
	c := converter(terminal.None)

	want, err := c.Convert(img, Options{Size: 120, Threads: 1, FlipVertical: true})
	require.NoError(t, err)
	for _, threads := range []int{2, 5, 16} {
		got, err := c.Convert(img, Options{Size: 120, Threads: threads, FlipVertical: true})
		require.NoError(t, err)
		assert.Equal(t, want.Plain, got.Plain, "threads=%d", threads)
	}
}

func TestConvert_Region(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			if x >= 100 {
				img.Set(x, y, color.White)
			} else {
				img.Set(x, y, color.Black)
			}
		}
	}

	res, err := converter(terminal.None).Convert(img, Options{
		Width:   10,
		Density: "AB",
		Region:  &imaging.Region{Quadrant: "right-half"},
	})
	require.NoError(t, err)
	assert.NotContains(t, res.Plain, "A")
	assert.Equal(t, 10, res.Geometry.Columns)
}

func TestConvert_Errors(t *testing.T) {
	img := noiseImage(40, 40, 9)
	c := converter(terminal.None)

	_, err := c.Convert(img, Options{Width: 100, Height: 10})
	var dge *geometry.DegenerateGeometryError
	assert.True(t, errors.As(err, &dge), "got %v", err)

	_, err = c.Convert(img, Options{Size: 80, Scale: -1})
	assert.Error(t, err)

	_, err = c.Convert(img, Options{Size: 80, Region: &imaging.Region{X1: 0, Y1: 0, X2: 99, Y2: 99}})
	assert.Error(t, err)

	_, err = c.Convert(img, Options{Size: 80, Adjustments: imaging.Adjustments{Brightness: 9}})
	assert.Error(t, err)
}

func TestResult_HTML(t *testing.T) {
	res, err := converter(terminal.None).Convert(noiseImage(20, 20, 10), Options{Width: 4})
	require.NoError(t, err)
	page := res.HTML(false)
	assert.Equal(t, res.Geometry.Columns*res.Geometry.Rows, strings.Count(page, "<span"))
}

package imaging

import (
	"fmt"
	"image"
	"math"
)

// TileSample is the reduction of one tile: the average luminosity and the
// average color of its pixels. Values are on the 0-255 scale.
type TileSample struct {
	Luminosity float64
	R          float64
	G          float64
	B          float64
}

// Color floors the averaged channels into an RGBColor.
func (s TileSample) Color() RGBColor {
	return RGBColor{
		R: floorChannel(s.R),
		G: floorChannel(s.G),
		B: floorChannel(s.B),
	}
}

func floorChannel(v float64) uint8 {
	v = math.Floor(v)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// EmptyTileError means a tile covered no pixels. Geometry guarantees at
// least one pixel per tile, so seeing this indicates a geometry bug.
type EmptyTileError struct {
	Rect image.Rectangle
}

func (e *EmptyTileError) Error() string {
	return fmt.Sprintf("tile %v contains no pixels", e.Rect)
}

// Reduce averages the pixels of img inside rect in a single pass.
//
// Channels are read straight from the non-premultiplied Pix buffer; alpha is
// ignored. The rectangle is clipped to the image bounds first, and a tile
// that ends up empty yields an *EmptyTileError.
func Reduce(img *image.NRGBA, rect image.Rectangle) (TileSample, error) {
	rect = rect.Intersect(img.Rect)
	if rect.Empty() {
		return TileSample{}, &EmptyTileError{Rect: rect}
	}

	var r, g, b, lum float64
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		i := img.PixOffset(rect.Min.X, y)
		end := i + rect.Dx()*4
		for ; i < end; i += 4 {
			pr := float64(img.Pix[i])
			pg := float64(img.Pix[i+1])
			pb := float64(img.Pix[i+2])
			r += pr
			g += pg
			b += pb
			lum += Luminance(pr, pg, pb)
		}
	}

	n := float64(rect.Dx() * rect.Dy())
	return TileSample{
		Luminosity: lum / n,
		R:          r / n,
		G:          g / n,
		B:          b / n,
	}, nil
}

package imaging

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
)

// Region represents a rectangular region within an image.
//
// Coordinates follow the standard image convention:
//   - (X1, Y1) is the top-left corner (inclusive)
//   - (X2, Y2) is the bottom-right corner (exclusive)
//   - Width = X2 - X1, Height = Y2 - Y1
//
// A Region with a non-empty Quadrant names a part of the image instead of
// giving coordinates; see Quadrants for the accepted names.
type Region struct {
	X1       int    `json:"x1,omitempty"`
	Y1       int    `json:"y1,omitempty"`
	X2       int    `json:"x2,omitempty"`
	Y2       int    `json:"y2,omitempty"`
	Quadrant string `json:"quadrant,omitempty"`
}

// Quadrants lists the named regions understood by Region.Rect.
var Quadrants = []string{
	"top-left", "top-right", "bottom-left", "bottom-right",
	"top-half", "bottom-half", "left-half", "right-half", "center",
}

// ParseRegion reads either "x1,y1,x2,y2" or one of the Quadrants names.
func ParseRegion(s string) (*Region, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty region")
	}
	for _, q := range Quadrants {
		if s == q {
			return &Region{Quadrant: q}, nil
		}
	}

	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("invalid region %q: want x1,y1,x2,y2 or one of %s", s, strings.Join(Quadrants, ", "))
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid region %q: %w", s, err)
		}
		v[i] = n
	}
	return &Region{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}, nil
}

// Rect resolves the region against the given image bounds.
func (r Region) Rect(bounds image.Rectangle) (image.Rectangle, error) {
	if r.Quadrant == "" {
		rect := image.Rect(r.X1, r.Y1, r.X2, r.Y2)
		if r.X1 < bounds.Min.X || r.Y1 < bounds.Min.Y || r.X2 > bounds.Max.X || r.Y2 > bounds.Max.Y {
			return image.Rectangle{}, fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
				r.X1, r.Y1, r.X2, r.Y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
		}
		if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
			return image.Rectangle{}, fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
		}
		return rect, nil
	}

	w := bounds.Dx()
	h := bounds.Dy()
	midX := w / 2
	midY := h / 2

	var x1, y1, x2, y2 int
	switch r.Quadrant {
	case "top-left":
		x1, y1, x2, y2 = 0, 0, midX, midY
	case "top-right":
		x1, y1, x2, y2 = midX, 0, w, midY
	case "bottom-left":
		x1, y1, x2, y2 = 0, midY, midX, h
	case "bottom-right":
		x1, y1, x2, y2 = midX, midY, w, h
	case "top-half":
		x1, y1, x2, y2 = 0, 0, w, midY
	case "bottom-half":
		x1, y1, x2, y2 = 0, midY, w, h
	case "left-half":
		x1, y1, x2, y2 = 0, 0, midX, h
	case "right-half":
		x1, y1, x2, y2 = midX, 0, w, h
	case "center":
		// Center 50% of the image
		qW := w / 4
		qH := h / 4
		x1, y1, x2, y2 = qW, qH, w-qW, h-qH
	default:
		return image.Rectangle{}, fmt.Errorf("unknown region: %s", r.Quadrant)
	}

	rect := image.Rect(x1, y1, x2, y2).Add(bounds.Min)
	if rect.Empty() {
		return image.Rectangle{}, fmt.Errorf("region %s of a %dx%d image is empty", r.Quadrant, w, h)
	}
	return rect, nil
}

// Crop extracts the region from img. The result is an *image.NRGBA whose
// bounds start at (0,0).
func Crop(img image.Image, region Region) (*image.NRGBA, error) {
	rect, err := region.Rect(img.Bounds())
	if err != nil {
		return nil, err
	}
	return imaging.Crop(img, rect), nil
}

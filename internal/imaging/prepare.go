package imaging

import (
	"fmt"
	"image"
	"math"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/disintegration/imaging"
)

// Adjustments are optional tonal corrections applied before tiling. Zero
// values leave the image untouched.
type Adjustments struct {
	// Brightness shifts lightness, in [-1, 1].
	Brightness float64 `json:"brightness,omitempty"`
	// Contrast scales contrast, in [-1, 1].
	Contrast float64 `json:"contrast,omitempty"`
	// Gamma applies gamma correction; 0 and 1 mean none.
	Gamma float64 `json:"gamma,omitempty"`
}

// IsZero reports whether no adjustment is requested.
func (a Adjustments) IsZero() bool {
	return a.Brightness == 0 && a.Contrast == 0 && (a.Gamma == 0 || a.Gamma == 1)
}

// Validate checks the adjustment ranges.
func (a Adjustments) Validate() error {
	if a.Brightness < -1 || a.Brightness > 1 || math.IsNaN(a.Brightness) {
		return fmt.Errorf("brightness %v outside [-1, 1]", a.Brightness)
	}
	if a.Contrast < -1 || a.Contrast > 1 || math.IsNaN(a.Contrast) {
		return fmt.Errorf("contrast %v outside [-1, 1]", a.Contrast)
	}
	if a.Gamma < 0 || math.IsNaN(a.Gamma) || math.IsInf(a.Gamma, 0) {
		return fmt.Errorf("gamma %v must be positive", a.Gamma)
	}
	return nil
}

// Prepare turns a decoded image into the read-only pixel grid the renderer
// tiles: an optional region crop, optional tonal adjustments, then a
// conversion to *image.NRGBA with bounds starting at (0,0).
//
// When img is already such an NRGBA and nothing else is requested, it is
// returned as is without copying.
func Prepare(img image.Image, region *Region, adj Adjustments) (*image.NRGBA, error) {
	if img == nil {
		return nil, fmt.Errorf("nil image")
	}
	if err := adj.Validate(); err != nil {
		return nil, err
	}

	src := img
	if region != nil {
		cropped, err := Crop(img, *region)
		if err != nil {
			return nil, err
		}
		src = cropped
	}

	if !adj.IsZero() {
		if adj.Brightness != 0 {
			src = adjust.Brightness(src, adj.Brightness)
		}
		if adj.Contrast != 0 {
			src = adjust.Contrast(src, adj.Contrast)
		}
		if adj.Gamma != 0 && adj.Gamma != 1 {
			src = adjust.Gamma(src, adj.Gamma)
		}
	}

	if n, ok := src.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n, nil
	}
	return imaging.Clone(src), nil
}

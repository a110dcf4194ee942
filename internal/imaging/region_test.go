package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestParseRegion(t *testing.T) {
	r, err := ParseRegion("10, 20,30,40")
	if err != nil {
		t.Fatalf("ParseRegion failed: %v", err)
	}
	if *r != (Region{X1: 10, Y1: 20, X2: 30, Y2: 40}) {
		t.Errorf("ParseRegion: got %+v", *r)
	}

	for _, q := range Quadrants {
		r, err := ParseRegion(q)
		if err != nil {
			t.Fatalf("ParseRegion(%q) failed: %v", q, err)
		}
		if r.Quadrant != q {
			t.Errorf("Quadrant: got %q, want %q", r.Quadrant, q)
		}
	}

	for _, bad := range []string{"", "1,2,3", "a,b,c,d", "middle"} {
		if _, err := ParseRegion(bad); err == nil {
			t.Errorf("ParseRegion(%q) should fail", bad)
		}
	}
}

func TestCrop(t *testing.T) {
	img := createPatternImage(100, 100)

	result, err := Crop(img, Region{X1: 0, Y1: 0, X2: 50, Y2: 50})
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}

	b := result.Bounds()
	if b.Min != (image.Point{}) || b.Dx() != 50 || b.Dy() != 50 {
		t.Errorf("bounds: got %v, want (0,0)-(50,50)", b)
	}

	// Top-left quadrant of the pattern is red
	if c := result.NRGBAAt(25, 25); c != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("cropped image color: got %v, want red", c)
	}
}

func TestCrop_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name           string
		x1, y1, x2, y2 int
	}{
		{"x1 negative", -1, 0, 50, 50},
		{"y1 negative", 0, -1, 50, 50},
		{"x2 too large", 0, 0, 101, 50},
		{"y2 too large", 0, 0, 50, 101},
		{"all out of bounds", -1, -1, 200, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Crop(img, Region{X1: tt.x1, Y1: tt.y1, X2: tt.x2, Y2: tt.y2})
			if err == nil {
				t.Error("Crop should fail for out-of-bounds coordinates")
			}
		})
	}
}

func TestCrop_InvalidRegion(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name           string
		x1, y1, x2, y2 int
	}{
		{"x1 >= x2", 50, 0, 50, 50},
		{"x1 > x2", 60, 0, 50, 50},
		{"y1 >= y2", 0, 50, 50, 50},
		{"zero area", 50, 50, 50, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Crop(img, Region{X1: tt.x1, Y1: tt.y1, X2: tt.x2, Y2: tt.y2})
			if err == nil {
				t.Error("Crop should fail for invalid region")
			}
		})
	}
}

func TestCrop_Quadrants(t *testing.T) {
	img := createPatternImage(100, 100)

	tests := []struct {
		region       string
		wantW, wantH int
		corner       color.NRGBA
	}{
		{"top-left", 50, 50, color.NRGBA{255, 0, 0, 255}},
		{"top-right", 50, 50, color.NRGBA{0, 255, 0, 255}},
		{"bottom-left", 50, 50, color.NRGBA{0, 0, 255, 255}},
		{"bottom-right", 50, 50, color.NRGBA{255, 255, 255, 255}},
		{"top-half", 100, 50, color.NRGBA{255, 0, 0, 255}},
		{"bottom-half", 100, 50, color.NRGBA{0, 0, 255, 255}},
		{"left-half", 50, 100, color.NRGBA{255, 0, 0, 255}},
		{"right-half", 50, 100, color.NRGBA{0, 255, 0, 255}},
		{"center", 50, 50, color.NRGBA{255, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.region, func(t *testing.T) {
			result, err := Crop(img, Region{Quadrant: tt.region})
			if err != nil {
				t.Fatalf("Crop failed: %v", err)
			}
			b := result.Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("dimensions: got %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
			if c := result.NRGBAAt(0, 0); c != tt.corner {
				t.Errorf("top-left pixel: got %v, want %v", c, tt.corner)
			}
		})
	}

	if _, err := Crop(img, Region{Quadrant: "middle"}); err == nil {
		t.Error("Crop should fail for unknown quadrant")
	}
}

func TestCrop_QuadrantOfTinyImage(t *testing.T) {
	img := createInMemoryImage(1, 1, color.White)
	if _, err := Crop(img, Region{Quadrant: "top-left"}); err == nil {
		t.Error("Crop should fail when the quadrant is empty")
	}
}

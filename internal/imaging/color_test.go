package imaging

import (
	"image"
	"image/color"
	"math"
	"testing"
)

// createInMemoryImage creates a solid color image for testing
func createInMemoryImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createPatternImage creates an image with different colors in each quadrant
func createPatternImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.NRGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.NRGBA{0, 255, 0, 255} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.NRGBA{0, 0, 255, 255} // Blue bottom-left
			} else {
				c = color.NRGBA{255, 255, 255, 255} // White bottom-right
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestRGBColor_Hex(t *testing.T) {
	tests := []struct {
		c    RGBColor
		want string
	}{
		{RGBColor{0, 0, 0}, "#000000"},
		{RGBColor{255, 255, 255}, "#ffffff"},
		{RGBColor{255, 0, 0}, "#ff0000"},
		{RGBColor{18, 52, 86}, "#123456"},
	}

	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("Hex(%v): got %s, want %s", tt.c, got, tt.want)
		}
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#123456")
	if err != nil {
		t.Fatalf("ParseHex failed: %v", err)
	}
	if c != (RGBColor{18, 52, 86}) {
		t.Errorf("ParseHex: got %v, want {18 52 86}", c)
	}

	if _, err := ParseHex("not-a-color"); err == nil {
		t.Error("ParseHex should fail for invalid input")
	}
}

func TestLuminance(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    float64
	}{
		{"black", 0, 0, 0, 0},
		{"white", 255, 255, 255, 255},
		{"red", 255, 0, 0, 53.55},
		{"green", 0, 255, 0, 183.6},
		{"blue", 0, 0, 255, 17.85},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Luminance(tt.r, tt.g, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Luminance: got %v, want %v", got, tt.want)
			}
		})
	}

	if got := (RGBColor{255, 0, 0}).Luminance(); math.Abs(got-53.55) > 1e-9 {
		t.Errorf("RGBColor.Luminance: got %v, want 53.55", got)
	}
}

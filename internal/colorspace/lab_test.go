package colorspace

import (
	"testing"

	"github.com/davesmith10/fabricpbr/internal/ir"
)

func absDiff(a, b byte) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

func TestLuminanceKnownValues(t *testing.T) {
	cases := []struct {
		name    string
		r, g, b byte
		want    byte
	}{
		{"black", 0, 0, 0, 0},
		{"white", 255, 255, 255, 255},
		{"red", 255, 0, 0, 76},
		{"green", 0, 255, 0, 150},
		{"blue", 0, 0, 255, 29},
		{"mid-gray", 128, 128, 128, 128},
	}

	img := ir.NewRGB(len(cases), 1)
	for i, c := range cases {
		off := i * 3
		img.Pix[off], img.Pix[off+1], img.Pix[off+2] = c.r, c.g, c.b
	}

	gray := Luminance(img)
	for i, c := range cases {
		if gray.Pix[i] != c.want {
			t.Errorf("%s: luma = %d, want %d", c.name, gray.Pix[i], c.want)
		}
	}
}

func TestSplitMergeLabRoundTrip(t *testing.T) {
	colors := [][3]byte{
		{0, 0, 0}, {255, 255, 255}, {128, 128, 128},
		{200, 30, 40}, {30, 200, 40}, {40, 30, 200},
		{180, 160, 120}, {90, 110, 130},
	}
	img := ir.NewRGB(len(colors), 1)
	for i, c := range colors {
		copy(img.Pix[i*3:], c[:])
	}

	light, a, b := SplitLab(img)
	back := MergeLab(light, a, b)

	// The lightness channel is quantized to 8 bits, so the round trip may
	// shift each channel slightly.
	const tolerance = 4
	for i := range img.Pix {
		if d := absDiff(img.Pix[i], back.Pix[i]); d > tolerance {
			t.Errorf("byte %d: round trip %d → %d (diff %d > %d)",
				i, img.Pix[i], back.Pix[i], d, tolerance)
		}
	}
}

func TestSplitLabUniformImage(t *testing.T) {
	img := ir.NewRGB(16, 16)
	for i := 0; i < len(img.Pix); i += 3 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2] = 120, 130, 140
	}

	light, _, _ := SplitLab(img)
	first := light.Pix[0]
	for i, v := range light.Pix {
		if v != first {
			t.Fatalf("lightness at %d = %d, want uniform %d", i, v, first)
		}
	}
}

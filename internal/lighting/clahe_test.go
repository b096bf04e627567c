package lighting

import (
	"bytes"
	"testing"

	"github.com/davesmith10/fabricpbr/internal/ir"
)

func grayImage(t *testing.T, w, h int, fill func(x, y int) byte) *ir.PixelImage {
	t.Helper()
	img := ir.NewGray(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Pix[y*w+x] = fill(x, y)
		}
	}
	return img
}

func TestEqualizePreservesDimensions(t *testing.T) {
	img := grayImage(t, 100, 52, func(x, y int) byte { return byte((x*31 + y*17) % 256) })
	out := Equalize(img)
	if out.Width != 100 || out.Height != 52 {
		t.Fatalf("output is %dx%d, want 100x52", out.Width, out.Height)
	}
	if len(out.Pix) != len(img.Pix) {
		t.Fatalf("output buffer is %d bytes, want %d", len(out.Pix), len(img.Pix))
	}
}

func TestEqualizeUniformStaysUniform(t *testing.T) {
	img := grayImage(t, 96, 96, func(x, y int) byte { return 128 })
	out := Equalize(img)
	first := out.Pix[0]
	for i, v := range out.Pix {
		if v != first {
			t.Fatalf("pixel %d = %d, want uniform %d", i, v, first)
		}
	}
	t.Logf("uniform 128 maps to %d", first)
}

func TestEqualizeStretchesLowContrast(t *testing.T) {
	// Alternating narrow-range columns: every tile sees the same two values.
	img := grayImage(t, 128, 128, func(x, y int) byte {
		if x%2 == 0 {
			return 120
		}
		return 136
	})
	out := Equalize(img)

	inMin, inMax := minMax(img.Pix)
	outMin, outMax := minMax(out.Pix)
	if int(outMax)-int(outMin) <= int(inMax)-int(inMin) {
		t.Errorf("contrast not stretched: input range [%d,%d], output range [%d,%d]",
			inMin, inMax, outMin, outMax)
	}
	t.Logf("range %d..%d → %d..%d", inMin, inMax, outMin, outMax)
}

func TestEqualizeTinyImageIsNoOp(t *testing.T) {
	img := grayImage(t, 7, 7, func(x, y int) byte { return byte(x * y * 5) })
	out := Equalize(img)
	if !bytes.Equal(img.Pix, out.Pix) {
		t.Error("image smaller than the tile grid should pass through unchanged")
	}
}

func TestEqualizeDeterministic(t *testing.T) {
	img := grayImage(t, 64, 64, func(x, y int) byte { return byte((x*x + y*3) % 256) })
	a := Equalize(img)
	b := Equalize(img)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("two runs over the same input differ")
	}
}

func TestNormalizePreservesDimensionsAndChroma(t *testing.T) {
	img := ir.NewRGB(40, 24)
	for i := 0; i < len(img.Pix); i += 3 {
		img.Pix[i] = byte(i % 256)
		img.Pix[i+1] = byte((i / 3) % 256)
		img.Pix[i+2] = 200
	}
	out := Normalize(img)
	if out.Width != 40 || out.Height != 24 || out.Channels != 3 {
		t.Fatalf("output is %dx%dx%d, want 40x24x3", out.Width, out.Height, out.Channels)
	}
}

func minMax(pix []byte) (byte, byte) {
	lo, hi := pix[0], pix[0]
	for _, v := range pix {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

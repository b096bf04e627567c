package colorspace

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/davesmith10/fabricpbr/internal/ir"
)

// SplitLab converts an RGB image to CIE L*a*b* and splits it into a
// lightness channel quantized to 8 bits (L* 0..1 mapped to 0..255) plus
// float chroma planes. The chroma planes are kept at full precision so a
// split/merge round trip only loses what the lightness quantization costs.
func SplitLab(img *ir.PixelImage) (light *ir.PixelImage, chromaA, chromaB []float64) {
	light = ir.NewGray(img.Width, img.Height)
	chromaA = make([]float64, img.Width*img.Height)
	chromaB = make([]float64, img.Width*img.Height)

	off := 0
	for i := range chromaA {
		c := colorful.Color{
			R: float64(img.Pix[off]) / 255,
			G: float64(img.Pix[off+1]) / 255,
			B: float64(img.Pix[off+2]) / 255,
		}
		l, a, b := c.Lab()
		light.Pix[i] = clampByte(math.Round(l * 255))
		chromaA[i] = a
		chromaB[i] = b
		off += 3
	}
	return light, chromaA, chromaB
}

// MergeLab recombines a lightness channel with chroma planes and converts
// back to the working RGB representation. Out-of-gamut results are clamped.
func MergeLab(light *ir.PixelImage, chromaA, chromaB []float64) *ir.PixelImage {
	out := ir.NewRGB(light.Width, light.Height)
	off := 0
	for i := range chromaA {
		l := float64(light.Pix[i]) / 255
		c := colorful.Lab(l, chromaA[i], chromaB[i]).Clamped()
		r, g, b := c.RGB255()
		out.Pix[off] = r
		out.Pix[off+1] = g
		out.Pix[off+2] = b
		off += 3
	}
	return out
}

func clampByte(v float64) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

package colorspace

import (
	"math"

	"github.com/davesmith10/fabricpbr/internal/ir"
)

// Rec. 601 luma weights.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// Luminance collapses a 3-channel image to a single perceptual luma channel.
func Luminance(img *ir.PixelImage) *ir.PixelImage {
	gray := ir.NewGray(img.Width, img.Height)
	off := 0
	for i := range gray.Pix {
		y := lumaR*float64(img.Pix[off]) + lumaG*float64(img.Pix[off+1]) + lumaB*float64(img.Pix[off+2])
		gray.Pix[i] = clampByte(math.Round(y))
		off += 3
	}
	return gray
}

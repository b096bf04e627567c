package texture

import (
	"github.com/davesmith10/fabricpbr/internal/ir"
)

// BlendDivisor sets the edge band width for tiling: band = dimension / 8,
// i.e. a 12.5% cross-fade on each edge.
const BlendDivisor = 8

// Tile cross-fades opposing edge bands so the texture wraps seamlessly when
// repeated on a plane. The horizontal pass runs first; the vertical pass
// blends on the horizontally blended result. Both are pure transforms: the
// two band updates of a pass read the pre-blend input, never each other.
// An axis shorter than BlendDivisor pixels is left alone.
func Tile(img *ir.PixelImage) *ir.PixelImage {
	return blendVertical(blendHorizontal(img))
}

func blendHorizontal(src *ir.PixelImage) *ir.PixelImage {
	out := src.Clone()
	band := src.Width / BlendDivisor
	if band == 0 {
		return out
	}

	ch := src.Channels
	for y := 0; y < src.Height; y++ {
		for x := 0; x < band; x++ {
			alpha := float64(x) / float64(band)
			leftOff := src.Offset(x, y)
			rightOff := src.Offset(src.Width-band+x, y)
			for c := 0; c < ch; c++ {
				left := float64(src.Pix[leftOff+c])
				right := float64(src.Pix[rightOff+c])
				out.Pix[leftOff+c] = byte(alpha*left + (1-alpha)*right)
				out.Pix[rightOff+c] = byte((1-alpha)*right + alpha*left)
			}
		}
	}
	return out
}

func blendVertical(src *ir.PixelImage) *ir.PixelImage {
	out := src.Clone()
	band := src.Height / BlendDivisor
	if band == 0 {
		return out
	}

	ch := src.Channels
	for y := 0; y < band; y++ {
		alpha := float64(y) / float64(band)
		for x := 0; x < src.Width; x++ {
			topOff := src.Offset(x, y)
			bottomOff := src.Offset(x, src.Height-band+y)
			for c := 0; c < ch; c++ {
				top := float64(src.Pix[topOff+c])
				bottom := float64(src.Pix[bottomOff+c])
				out.Pix[topOff+c] = byte(alpha*top + (1-alpha)*bottom)
				out.Pix[bottomOff+c] = byte((1-alpha)*bottom + alpha*top)
			}
		}
	}
	return out
}

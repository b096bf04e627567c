package texture

import (
	"math"

	"github.com/davesmith10/fabricpbr/internal/colorspace"
	"github.com/davesmith10/fabricpbr/internal/ir"
)

// DefaultNormalStrength scales the luminance gradients before the normal
// field is normalized. Empirical value carried over from the original
// pipeline tuning; override via pipeline.Config.
const DefaultNormalStrength = 2.0

// normalEpsilon floors the vector length on flat regions so normalization
// never divides by zero.
const normalEpsilon = 1e-6

// NormalMap derives a tangent-space normal map from the luminance gradients
// of a diffuse texture. Gradients come from 3x3 Sobel kernels over [0,1]
// luminance with wrapped borders, so a seamless diffuse yields a seamless
// normal map. The per-pixel vector (-Gx*strength, -Gy*strength, 1) is
// normalized to unit length and encoded as round((c+1)*127.5) with
// channel assignment R=X, G=Y, B=Z.
func NormalMap(img *ir.PixelImage, strength float64) *ir.PixelImage {
	w, h := img.Width, img.Height
	gray := colorspace.Luminance(img)

	lum := make([]float64, w*h)
	for i, v := range gray.Pix {
		lum[i] = float64(v) / 255
	}

	at := func(x, y int) float64 {
		x = (x + w) % w
		y = (y + h) % h
		return lum[y*w+x]
	}

	out := ir.NewRGB(w, h)
	off := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			tl, tc, tr := at(x-1, y-1), at(x, y-1), at(x+1, y-1)
			ml, mr := at(x-1, y), at(x+1, y)
			bl, bc, br := at(x-1, y+1), at(x, y+1), at(x+1, y+1)

			gx := (tr + 2*mr + br) - (tl + 2*ml + bl)
			gy := (bl + 2*bc + br) - (tl + 2*tc + tr)

			nx := -gx * strength
			ny := -gy * strength
			nz := 1.0

			length := math.Sqrt(nx*nx + ny*ny + nz*nz)
			if length < normalEpsilon {
				length = normalEpsilon
			}

			out.Pix[off] = encodeComponent(nx / length)
			out.Pix[off+1] = encodeComponent(ny / length)
			out.Pix[off+2] = encodeComponent(nz / length)
			off += 3
		}
	}
	return out
}

// encodeComponent maps a unit-vector component in [-1, 1] to an 8-bit
// channel value.
func encodeComponent(c float64) byte {
	v := math.Round((c + 1) * 127.5)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

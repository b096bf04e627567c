package texture

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/davesmith10/fabricpbr/internal/colorspace"
	"github.com/davesmith10/fabricpbr/internal/ir"
)

// DefaultRoughnessScale divides the luminance variance in the scalar
// roughness heuristic: roughness = clamp(1 - variance/scale, 0, 1).
// Empirical, not photometrically calibrated; override via pipeline.Config.
const DefaultRoughnessScale = 2000.0

// gaussTaps is the separable 5-tap binomial smoothing kernel [1 4 6 4 1]/16.
var gaussTaps = [5]float64{1.0 / 16, 4.0 / 16, 6.0 / 16, 4.0 / 16, 1.0 / 16}

// RoughnessMap derives a gray PBR roughness map from high-frequency
// luminance detail: absolute Laplacian response, min-max normalized to the
// full 8-bit range, inverted so busy weave reads as shiny and flat regions
// as matte, then smoothed with a 5x5 Gaussian to suppress single-pixel
// noise. Kernels use wrapped borders, matching the tiled input. The single
// channel is replicated into all three output channels.
func RoughnessMap(img *ir.PixelImage) *ir.PixelImage {
	w, h := img.Width, img.Height
	gray := colorspace.Luminance(img)

	at := func(x, y int) float64 {
		x = (x + w) % w
		y = (y + h) % h
		return float64(gray.Pix[y*w+x])
	}

	// High-frequency energy: |Laplacian|.
	energy := make([]float64, w*h)
	minE, maxE := math.Inf(1), math.Inf(-1)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			lap := at(x-1, y) + at(x+1, y) + at(x, y-1) + at(x, y+1) - 4*at(x, y)
			e := math.Abs(lap)
			energy[y*w+x] = e
			if e < minE {
				minE = e
			}
			if e > maxE {
				maxE = e
			}
		}
	}

	// Min-max normalize to 0..255 and invert. A flat field has no spread to
	// normalize; it maps straight to maximum roughness.
	inverted := make([]float64, w*h)
	if span := maxE - minE; span > 0 {
		for i, e := range energy {
			inverted[i] = 255 - math.Round((e-minE)/span*255)
		}
	} else {
		for i := range inverted {
			inverted[i] = 255
		}
	}

	smoothed := gaussianSmooth(inverted, w, h)

	out := ir.NewRGB(w, h)
	off := 0
	for _, v := range smoothed {
		b := clampByte(math.Round(v))
		out.Pix[off] = b
		out.Pix[off+1] = b
		out.Pix[off+2] = b
		off += 3
	}
	return out
}

// EstimateRoughness maps the global luminance variance of a texture to a
// [0,1] roughness scalar: more visible weave detail implies a shinier
// material class, so higher variance lowers the estimate. This is a coarse
// heuristic, not a photometric measurement.
func EstimateRoughness(img *ir.PixelImage, scale float64) float64 {
	gray := colorspace.Luminance(img)
	samples := make([]float64, len(gray.Pix))
	for i, v := range gray.Pix {
		samples[i] = float64(v)
	}
	variance := stat.PopVariance(samples, nil)

	r := 1 - variance/scale
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

// gaussianSmooth runs the separable 5-tap kernel horizontally then
// vertically with wrapped borders.
func gaussianSmooth(src []float64, w, h int) []float64 {
	tmp := make([]float64, len(src))
	for y := 0; y < h; y++ {
		rowOff := y * w
		for x := 0; x < w; x++ {
			var sum float64
			for k := -2; k <= 2; k++ {
				sum += gaussTaps[k+2] * src[rowOff+(x+k+w)%w]
			}
			tmp[rowOff+x] = sum
		}
	}

	dst := make([]float64, len(src))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float64
			for k := -2; k <= 2; k++ {
				sum += gaussTaps[k+2] * tmp[((y+k+h)%h)*w+x]
			}
			dst[y*w+x] = sum
		}
	}
	return dst
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

// Package lighting evens out uneven illumination in fabric photos so the
// derived texture maps do not bake the photographer's lamp into the material.
package lighting

import (
	"github.com/davesmith10/fabricpbr/internal/colorspace"
	"github.com/davesmith10/fabricpbr/internal/ir"
)

// Normalize converts the photo to CIE L*a*b*, equalizes the lightness
// channel with CLAHE and recombines with the untouched chroma channels.
// Output dimensions match the input.
func Normalize(img *ir.PixelImage) *ir.PixelImage {
	light, chromaA, chromaB := colorspace.SplitLab(img)
	equalized := Equalize(light)
	return colorspace.MergeLab(equalized, chromaA, chromaB)
}

// Package texture holds the map-synthesis stages: framing, seamless tiling,
// and the normal/roughness maps derived from the tiled diffuse.
package texture

import (
	"github.com/disintegration/imaging"

	"github.com/davesmith10/fabricpbr/internal/ir"
)

// CropSquare crops to the centered square of side min(width, height).
// The offset into the larger dimension is (larger - size) / 2, floored.
func CropSquare(img *ir.PixelImage) *ir.PixelImage {
	size := img.Width
	if img.Height < size {
		size = img.Height
	}
	startX := (img.Width - size) / 2
	startY := (img.Height - size) / 2

	out := ir.NewRGB(size, size)
	rowBytes := size * 3
	for y := 0; y < size; y++ {
		srcOff := img.Offset(startX, startY+y)
		copy(out.Pix[y*rowBytes:(y+1)*rowBytes], img.Pix[srcOff:srcOff+rowBytes])
	}
	return out
}

// Resample scales the image to size×size with a 3-lobe Lanczos filter.
func Resample(img *ir.PixelImage, size int) *ir.PixelImage {
	return ir.FromImage(imaging.Resize(img.ToNRGBA(), size, size, imaging.Lanczos))
}

// Frame center-crops to a square and resamples to the working resolution.
func Frame(img *ir.PixelImage, size int) *ir.PixelImage {
	return Resample(CropSquare(img), size)
}

// Thumbnail downsamples with an area-averaging box filter.
func Thumbnail(img *ir.PixelImage, size int) *ir.PixelImage {
	return ir.FromImage(imaging.Resize(img.ToNRGBA(), size, size, imaging.Box))
}

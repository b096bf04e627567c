package ir

import (
	"image"
	"image/color"
)

// PixelImage is the intermediate representation passed between pipeline
// stages. Pixels are stored as interleaved channel bytes in row-major order:
// R,G,B for color maps, a single luminance byte for gray maps
// (len = Width * Height * Channels).
type PixelImage struct {
	Width    int
	Height   int
	Channels int
	Pix      []byte
}

// NewRGB allocates a 3-channel image of the given size.
func NewRGB(width, height int) *PixelImage {
	return &PixelImage{
		Width:    width,
		Height:   height,
		Channels: 3,
		Pix:      make([]byte, width*height*3),
	}
}

// NewGray allocates a 1-channel image of the given size.
func NewGray(width, height int) *PixelImage {
	return &PixelImage{
		Width:    width,
		Height:   height,
		Channels: 1,
		Pix:      make([]byte, width*height),
	}
}

// Offset returns the buffer index of the first channel of pixel (x, y).
func (p *PixelImage) Offset(x, y int) int {
	return (y*p.Width + x) * p.Channels
}

// Clone returns a deep copy sharing no buffer with the receiver.
func (p *PixelImage) Clone() *PixelImage {
	pix := make([]byte, len(p.Pix))
	copy(pix, p.Pix)
	return &PixelImage{
		Width:    p.Width,
		Height:   p.Height,
		Channels: p.Channels,
		Pix:      pix,
	}
}

// FromImage converts a decoded image to the interleaved RGB representation,
// dropping any alpha. Channel order is fixed to RGB here and converted back
// only when encoding output.
func FromImage(src image.Image) *PixelImage {
	b := src.Bounds()
	p := NewRGB(b.Dx(), b.Dy())

	if n, ok := src.(*image.NRGBA); ok {
		for y := 0; y < p.Height; y++ {
			srcOff := n.PixOffset(b.Min.X, b.Min.Y+y)
			dstOff := y * p.Width * 3
			for x := 0; x < p.Width; x++ {
				p.Pix[dstOff] = n.Pix[srcOff]
				p.Pix[dstOff+1] = n.Pix[srcOff+1]
				p.Pix[dstOff+2] = n.Pix[srcOff+2]
				srcOff += 4
				dstOff += 3
			}
		}
		return p
	}

	off := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			p.Pix[off] = c.R
			p.Pix[off+1] = c.G
			p.Pix[off+2] = c.B
			off += 3
		}
	}
	return p
}

// ToNRGBA converts a 3-channel image to *image.NRGBA with opaque alpha,
// for handoff to the resampling and encoding boundary.
func (p *PixelImage) ToNRGBA() *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, p.Width, p.Height))
	srcOff := 0
	for y := 0; y < p.Height; y++ {
		dstOff := y * dst.Stride
		for x := 0; x < p.Width; x++ {
			dst.Pix[dstOff] = p.Pix[srcOff]
			dst.Pix[dstOff+1] = p.Pix[srcOff+1]
			dst.Pix[dstOff+2] = p.Pix[srcOff+2]
			dst.Pix[dstOff+3] = 255
			srcOff += 3
			dstOff += 4
		}
	}
	return dst
}

package ir

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func TestNewRGBBufferInvariant(t *testing.T) {
	p := NewRGB(7, 5)
	if want := 7 * 5 * 3; len(p.Pix) != want {
		t.Fatalf("buffer is %d bytes, want %d", len(p.Pix), want)
	}
	if p.Channels != 3 {
		t.Errorf("channels = %d, want 3", p.Channels)
	}

	g := NewGray(7, 5)
	if want := 7 * 5; len(g.Pix) != want {
		t.Fatalf("gray buffer is %d bytes, want %d", len(g.Pix), want)
	}
}

func TestOffset(t *testing.T) {
	p := NewRGB(10, 4)
	if got := p.Offset(3, 2); got != (2*10+3)*3 {
		t.Errorf("Offset(3,2) = %d, want %d", got, (2*10+3)*3)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	p := NewRGB(4, 4)
	p.Pix[0] = 42
	c := p.Clone()
	c.Pix[0] = 99
	if p.Pix[0] != 42 {
		t.Error("mutating a clone changed the original buffer")
	}
	if !bytes.Equal(p.Pix[1:], c.Pix[1:]) {
		t.Error("clone does not match original outside the mutated byte")
	}
}

func TestFromImageNRGBAFastPathMatchesGeneric(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 6, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			src.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 40), G: uint8(y * 60), B: uint8(x + y), A: 255,
			})
		}
	}

	fast := FromImage(src)

	// Force the generic path by hiding the concrete type.
	var generic image.Image = subImage{src}
	slow := FromImage(generic)

	if !bytes.Equal(fast.Pix, slow.Pix) {
		t.Error("NRGBA fast path and generic path disagree")
	}
}

// subImage wraps an image so FromImage cannot type-assert *image.NRGBA.
type subImage struct{ *image.NRGBA }

func TestToNRGBARoundTrip(t *testing.T) {
	p := NewRGB(3, 2)
	for i := range p.Pix {
		p.Pix[i] = byte(i * 17)
	}
	back := FromImage(p.ToNRGBA())
	if !bytes.Equal(p.Pix, back.Pix) {
		t.Error("ToNRGBA/FromImage round trip altered pixels")
	}
}

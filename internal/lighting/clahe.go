package lighting

import (
	"math"

	"github.com/davesmith10/fabricpbr/internal/ir"
)

const (
	// GridSize is the number of equalization tiles along each axis.
	GridSize = 8
	// ClipLimit bounds each histogram bin at this multiple of the uniform
	// bin height before the excess is redistributed.
	ClipLimit = 2.0
)

// Equalize applies contrast-limited adaptive histogram equalization to a
// single-channel image: a per-tile clipped-histogram CDF remapping,
// bilinearly interpolated between neighboring tile mappings so tile
// boundaries do not show as blocks. Images smaller than the tile grid are
// returned unchanged.
func Equalize(gray *ir.PixelImage) *ir.PixelImage {
	w, h := gray.Width, gray.Height
	if w < GridSize || h < GridSize {
		return gray.Clone()
	}

	luts := buildTileLUTs(gray)
	out := ir.NewGray(w, h)

	tileW := float64(w) / GridSize
	tileH := float64(h) / GridSize

	for y := 0; y < h; y++ {
		py := (float64(y)+0.5)/tileH - 0.5
		ty0 := int(math.Floor(py))
		fy := py - float64(ty0)
		ty1 := clampTile(ty0 + 1)
		ty0 = clampTile(ty0)

		rowOff := y * w
		for x := 0; x < w; x++ {
			px := (float64(x)+0.5)/tileW - 0.5
			tx0 := int(math.Floor(px))
			fx := px - float64(tx0)
			tx1 := clampTile(tx0 + 1)
			tx0 = clampTile(tx0)

			v := gray.Pix[rowOff+x]
			top := (1-fx)*float64(luts[ty0*GridSize+tx0][v]) + fx*float64(luts[ty0*GridSize+tx1][v])
			bottom := (1-fx)*float64(luts[ty1*GridSize+tx0][v]) + fx*float64(luts[ty1*GridSize+tx1][v])
			out.Pix[rowOff+x] = byte(math.Round((1-fy)*top + fy*bottom))
		}
	}
	return out
}

// buildTileLUTs computes one clipped-CDF remapping table per grid tile.
func buildTileLUTs(gray *ir.PixelImage) [][256]uint8 {
	w, h := gray.Width, gray.Height
	luts := make([][256]uint8, GridSize*GridSize)

	for ty := 0; ty < GridSize; ty++ {
		y0, y1 := ty*h/GridSize, (ty+1)*h/GridSize
		for tx := 0; tx < GridSize; tx++ {
			x0, x1 := tx*w/GridSize, (tx+1)*w/GridSize

			var hist [256]int
			for y := y0; y < y1; y++ {
				rowOff := y * w
				for x := x0; x < x1; x++ {
					hist[gray.Pix[rowOff+x]]++
				}
			}

			area := (y1 - y0) * (x1 - x0)
			clip := int(ClipLimit * float64(area) / 256)
			if clip < 1 {
				clip = 1
			}

			excess := 0
			for i := range hist {
				if hist[i] > clip {
					excess += hist[i] - clip
					hist[i] = clip
				}
			}

			// Redistribute the clipped mass evenly; the remainder goes to
			// the lowest bins so the result stays deterministic.
			bonus, rem := excess/256, excess%256
			for i := range hist {
				hist[i] += bonus
				if i < rem {
					hist[i]++
				}
			}

			scale := 255 / float64(area)
			cdf := 0
			lut := &luts[ty*GridSize+tx]
			for i := range hist {
				cdf += hist[i]
				v := math.Round(float64(cdf) * scale)
				if v > 255 {
					v = 255
				}
				lut[i] = uint8(v)
			}
		}
	}
	return luts
}

func clampTile(i int) int {
	if i < 0 {
		return 0
	}
	if i > GridSize-1 {
		return GridSize - 1
	}
	return i
}

package mosaic

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Apply returns a copy of base with the interior of the selection rectangle
// block-pixelated. selMin/selMax are the normalized selection corners already
// mapped to image space; radius controls block granularity (diameter is
// 2*radius+1). The base image is never mutated.
//
// The block grid is anchored at the image origin, not at the selection, so
// moving the selection never phase-shifts block boundaries. Each block is
// filled with the color of its center pixel at local offset (radius, radius).
// Center pixels themselves are never overwritten, which keeps every block's
// representative sample readable from the output buffer regardless of visit
// order. Blocks whose center falls outside the image are left untouched.
//
// The interior test is strict on all four edges: pixels exactly on the
// selection boundary keep their original color.
func Apply(base image.Image, selMin, selMax Point, radius int) *image.NRGBA {
	out := imaging.Clone(base)
	radius = ClampRadius(radius)
	diameter := 2*radius + 1

	b := out.Bounds()
	width, height := b.Dx(), b.Dy()
	cache := newBlockCache(width, height, diameter)

	for y := 0; y < height; y++ {
		fy := float64(y)
		if fy <= selMin.Y || fy >= selMax.Y {
			continue
		}
		my := y % diameter
		for x := 0; x < width; x++ {
			fx := float64(x)
			if fx <= selMin.X || fx >= selMax.X {
				continue
			}
			if x%diameter == radius && my == radius {
				continue // block center, keep the sample intact
			}
			cx := x - x%diameter + radius
			cy := y - my + radius
			if cx >= width || cy >= height {
				continue // partial edge block, no center to sample
			}
			c := cache.sample(out, cx, cy)
			i := out.PixOffset(x, y)
			out.Pix[i+0] = c.R
			out.Pix[i+1] = c.G
			out.Pix[i+2] = c.B
			out.Pix[i+3] = c.A
		}
	}
	return out
}

// blockCache memoizes one representative color per block for a single Apply
// call. It is a flat arena indexed by block row/column rather than a map
// keyed by center coordinates, so lookups are a multiply and an add.
type blockCache struct {
	cols     int
	diameter int
	colors   []color.NRGBA
	seen     []bool
}

func newBlockCache(width, height, diameter int) *blockCache {
	cols := (width + diameter - 1) / diameter
	rows := (height + diameter - 1) / diameter
	return &blockCache{
		cols:     cols,
		diameter: diameter,
		colors:   make([]color.NRGBA, cols*rows),
		seen:     make([]bool, cols*rows),
	}
}

// sample returns the memoized color of the block containing center (cx, cy),
// reading it from img on first access. Centers are never overwritten by
// Apply, so a late first read still observes the original color.
func (c *blockCache) sample(img *image.NRGBA, cx, cy int) color.NRGBA {
	i := (cy/c.diameter)*c.cols + cx/c.diameter
	if !c.seen[i] {
		c.colors[i] = img.NRGBAAt(cx, cy)
		c.seen[i] = true
	}
	return c.colors[i]
}

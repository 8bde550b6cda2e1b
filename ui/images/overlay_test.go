package images

import (
	"image"
	"image/color"
	"testing"

	"github.com/soocke/mosaic-pix-go/domain/mosaic"
)

func TestStrokeRect_PreservesSizeAndSource(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 50, 40))
	out := StrokeRect(src, mosaic.Pt(5, 5), mosaic.Pt(20, 15), color.NRGBA{R: 255, A: 255})
	if out == nil {
		t.Fatalf("nil overlay output")
	}
	if out.Bounds().Dx() != 50 || out.Bounds().Dy() != 40 {
		t.Fatalf("overlay changed dimensions: %v", out.Bounds())
	}
	// Source must stay black.
	if src.NRGBAAt(5, 5) != (color.NRGBA{}) {
		t.Fatalf("source image was mutated")
	}
}

func TestStrokeRect_DrawsOnEdge(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 30, 30))
	out := StrokeRect(src, mosaic.Pt(10, 10), mosaic.Pt(20, 20), color.NRGBA{R: 255, A: 255})
	// Somewhere along the stroked edge red must dominate.
	found := false
	for x := 9; x <= 21 && !found; x++ {
		for y := 9; y <= 11; y++ {
			r, _, _, _ := out.At(x, y).RGBA()
			if r > 0x7fff {
				found = true
				break
			}
		}
	}
	if !found {
		t.Fatalf("no stroke pixels found along the rectangle edge")
	}
}

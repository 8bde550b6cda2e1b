package images

import (
	"bytes"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// EncodePNG encodes an image to PNG bytes for Tk photo consumption. Errors
// are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// FitToBox scales src down so it fits within maxW x maxH while preserving
// aspect ratio. Images already within the box are returned at their original
// size. The aspect-preserving guarantee is what lets a single scalar ratio
// map display coordinates back to image coordinates.
func FitToBox(src image.Image, maxW, maxH int) *image.NRGBA {
	if src == nil {
		return nil
	}
	if maxW < 1 {
		maxW = 1
	}
	if maxH < 1 {
		maxH = 1
	}
	b := src.Bounds()
	if b.Dx() <= maxW && b.Dy() <= maxH {
		return imaging.Clone(src)
	}
	return imaging.Fit(src, maxW, maxH, imaging.Lanczos)
}

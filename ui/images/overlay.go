package images

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/soocke/mosaic-pix-go/domain/mosaic"
)

// StrokeRect returns a copy of src with the rectangle spanned by min/max
// (display-space coordinates) stroked in c. Used to draw the live selection
// rubber band over the scaled preview; the source image is not modified.
func StrokeRect(src image.Image, min, max mosaic.Point, c color.Color) image.Image {
	if src == nil {
		return nil
	}
	dc := gg.NewContextForImage(src)
	dc.SetColor(c)
	dc.SetLineWidth(1)
	dc.DrawRectangle(min.X, min.Y, max.X-min.X, max.Y-min.Y)
	dc.Stroke()
	return dc.Image()
}

package mosaic

// DisplayRatio returns the scalar converting display-space coordinates to
// image-space coordinates: imageWidth / displayedWidth.
//
// A single scalar serves both axes under the assumption that the display
// widget preserves the image aspect ratio. If a host layout ever letterboxes
// or stretches the widget, vertical coordinates distort silently; this is an
// accepted simplification of the display pipeline, which always scales
// proportionally (see ui/images.FitToBox).
func DisplayRatio(imageWidth int, displayedWidth float64) float64 {
	return float64(imageWidth) / displayedWidth
}

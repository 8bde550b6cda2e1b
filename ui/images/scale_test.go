package images

import (
	"image"
	"testing"
)

func TestFitToBox_DownscalesPreservingAspect(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 800, 600))
	dst := FitToBox(src, 400, 400)
	if dst.Bounds().Dx() != 400 || dst.Bounds().Dy() != 300 {
		t.Fatalf("got %dx%d, want 400x300", dst.Bounds().Dx(), dst.Bounds().Dy())
	}
}

func TestFitToBox_SmallImageKeepsSize(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 100, 80))
	dst := FitToBox(src, 400, 300)
	if dst.Bounds().Dx() != 100 || dst.Bounds().Dy() != 80 {
		t.Fatalf("small image resized to %dx%d", dst.Bounds().Dx(), dst.Bounds().Dy())
	}
}

func TestFitToBox_HeightBound(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 600, 1200))
	dst := FitToBox(src, 400, 300)
	if dst.Bounds().Dy() != 300 || dst.Bounds().Dx() != 150 {
		t.Fatalf("got %dx%d, want 150x300", dst.Bounds().Dx(), dst.Bounds().Dy())
	}
}

func TestEncodePNG_NonEmpty(t *testing.T) {
	if b := EncodePNG(image.NewNRGBA(image.Rect(0, 0, 4, 4))); len(b) == 0 {
		t.Fatalf("expected PNG bytes")
	}
	if b := EncodePNG(nil); b != nil {
		t.Fatalf("nil image should yield nil bytes")
	}
}

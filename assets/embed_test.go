package assets

import "testing"

func TestPlaceholderImage_Decodes(t *testing.T) {
	img, err := PlaceholderImage()
	if err != nil {
		t.Fatalf("placeholder decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() < 100 || b.Dy() < 100 {
		t.Fatalf("placeholder suspiciously small: %v", b)
	}
}

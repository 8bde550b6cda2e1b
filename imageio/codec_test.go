package imageio

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestSaveOpen_PNGRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := solid(8, 6, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	path, err := Save(src, dir, "out.png")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if got.Bounds().Dx() != 8 || got.Bounds().Dy() != 6 {
		t.Fatalf("round-trip size %v", got.Bounds())
	}
	if got.NRGBAAt(3, 3) != src.NRGBAAt(3, 3) {
		t.Fatalf("round-trip pixel %v, want %v", got.NRGBAAt(3, 3), src.NRGBAAt(3, 3))
	}
}

func TestSave_CollisionAddsPrefix(t *testing.T) {
	dir := t.TempDir()
	img := solid(4, 4, color.NRGBA{R: 1, G: 2, B: 3, A: 255})

	first, err := Save(img, dir, "pic.png")
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	if filepath.Base(first) != "pic.png" {
		t.Fatalf("first save wrote %q", first)
	}

	second, err := Save(img, dir, "pic.png")
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if filepath.Base(second) != "mosaic_pic.png" {
		t.Fatalf("collision save wrote %q, want mosaic_pic.png", second)
	}
	if _, err := os.Stat(first); err != nil {
		t.Fatalf("original file disturbed: %v", err)
	}
}

func TestOpen_UnreadableFileWrapsErrDecode(t *testing.T) {
	dir := t.TempDir()
	bogus := filepath.Join(dir, "not-an-image.png")
	if err := os.WriteFile(bogus, []byte("plain text"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if _, err := Open(bogus); !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
	if _, err := Open(filepath.Join(dir, "missing.png")); !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode for missing file, got %v", err)
	}
}

func TestSave_UnsupportedExtensionWrapsErrEncode(t *testing.T) {
	dir := t.TempDir()
	img := solid(2, 2, color.NRGBA{A: 255})
	if _, err := Save(img, dir, "pic.xyz"); !errors.Is(err, ErrEncode) {
		t.Fatalf("expected ErrEncode for unknown extension, got %v", err)
	}
}

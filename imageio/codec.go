// Package imageio wraps the raster file codec boundary: decode on open,
// encode on save with the output format inferred from the destination file
// extension.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	// Decode-only WebP support; imaging handles PNG/JPEG/GIF/TIFF/BMP.
	_ "golang.org/x/image/webp"
)

var (
	// ErrDecode marks an unreadable or unsupported input file. No partial
	// state is created; the caller keeps its prior image.
	ErrDecode = errors.New("image decode failed")
	// ErrEncode marks an unwritable destination or unsupported output
	// format. The in-memory image is unaffected.
	ErrEncode = errors.New("image encode failed")
)

// collisionPrefix disambiguates the output filename when the destination
// already holds a file with the same name.
const collisionPrefix = "mosaic_"

// Open decodes the image at path into an NRGBA buffer. JPEG EXIF orientation
// is applied during decode.
func Open(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	return imaging.Clone(img), nil
}

// Save encodes img into dir under name, choosing the format from the file
// extension. If dir/name already exists the file is written under the
// collision prefix instead so an existing file is never overwritten. Returns
// the path actually written.
func Save(img image.Image, dir, name string) (string, error) {
	dest := filepath.Join(dir, name)
	if _, err := os.Stat(dest); err == nil {
		dest = filepath.Join(dir, collisionPrefix+name)
	}
	if err := imaging.Save(img, dest); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrEncode, dest, err)
	}
	return dest, nil
}

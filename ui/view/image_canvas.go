package view

import (
	"image"

	"github.com/soocke/mosaic-pix-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ImageCanvas shows the scaled document image and translates pointer drags
// into widget-relative coordinates for the presenter.
type ImageCanvas interface {
	ShowImage(img image.Image)
	ShowPlaceholder(pngBytes []byte)
	SetDragHandlers(onStart, onMove, onStop func(x, y float64))
}

type imageCanvas struct {
	label     *LabelWidget
	prevPhoto *Img // last Tk photo instance; deleted before each swap
	dispW     int
	dispH     int

	onStart func(x, y float64)
	onMove  func(x, y float64)
	onStop  func(x, y float64)
}

// NewImageCanvas creates the display label at the given grid row showing the
// placeholder bytes until an image is opened.
func NewImageCanvas(row int, placeholderPNG []byte) ImageCanvas {
	photo := NewPhoto(Data(placeholderPNG))
	label := Label(Image(photo), Borderwidth(1), Relief("sunken"))
	Grid(label, Row(row), Column(0), Columnspan(5), Padx("0.4m"), Pady("0.4m"))
	c := &imageCanvas{label: label, prevPhoto: photo}

	Bind(label, "<ButtonPress-1>", Command(func(e *Event) { c.forward(c.onStart, e) }))
	Bind(label, "<B1-Motion>", Command(func(e *Event) { c.forward(c.onMove, e) }))
	Bind(label, "<ButtonRelease-1>", Command(func(e *Event) { c.forward(c.onStop, e) }))
	return c
}

// ShowImage swaps the displayed photo. The previous photo is deleted first so
// stale encoded bytes never linger in Tk's image store.
func (c *imageCanvas) ShowImage(img image.Image) {
	if c == nil || c.label == nil || img == nil {
		return
	}
	b := img.Bounds()
	c.dispW, c.dispH = b.Dx(), b.Dy()
	pngBytes := images.EncodePNG(img)
	if c.prevPhoto != nil {
		c.prevPhoto.Delete()
	}
	newPhoto := NewPhoto(Data(pngBytes))
	c.prevPhoto = newPhoto
	c.label.Configure(Image(newPhoto))
}

// ShowPlaceholder restores the pre-open placeholder artwork.
func (c *imageCanvas) ShowPlaceholder(pngBytes []byte) {
	if c == nil || c.label == nil || len(pngBytes) == 0 {
		return
	}
	c.dispW, c.dispH = 0, 0
	if c.prevPhoto != nil {
		c.prevPhoto.Delete()
	}
	c.prevPhoto = NewPhoto(Data(pngBytes))
	c.label.Configure(Image(c.prevPhoto))
}

// SetDragHandlers installs the pointer callbacks.
func (c *imageCanvas) SetDragHandlers(onStart, onMove, onStop func(x, y float64)) {
	if c == nil {
		return
	}
	c.onStart, c.onMove, c.onStop = onStart, onMove, onStop
}

// forward clamps the event position to the displayed image area and invokes
// the handler. Drags that wander past the widget edge stick to the border,
// matching the interaction-area clamp the coordinate mapper assumes.
func (c *imageCanvas) forward(fn func(x, y float64), e *Event) {
	if fn == nil || e == nil || c.dispW <= 0 || c.dispH <= 0 {
		return
	}
	x, y := e.X, e.Y
	if x < 0 {
		x = 0
	}
	if x > c.dispW {
		x = c.dispW
	}
	if y < 0 {
		y = 0
	}
	if y > c.dispH {
		y = c.dispH
	}
	fn(float64(x), float64(y))
}

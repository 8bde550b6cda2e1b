package editor

import (
	"image"
	"log/slog"

	"github.com/soocke/mosaic-pix-go/domain/mosaic"
)

// Editor sequences the selection model and the mosaic engine against the two
// image buffers of a session: the committed image (last user-accepted state,
// the only state ever saved) and the preview (derived, uncommitted mosaic).
//
// All methods must be called from the UI thread; the editor is synchronous by
// design because every user event is handled to completion before the next
// one arrives. No other component may write the buffers.
type Editor struct {
	logger *slog.Logger

	committed *image.NRGBA
	preview   *image.NRGBA
	sel       mosaic.Selection
	radius    int
	state     State
	listeners []StateListener
}

// New returns an editor with no image loaded. radius is clamped to the valid
// range.
func New(logger *slog.Logger, radius int) *Editor {
	return &Editor{logger: logger, radius: mosaic.ClampRadius(radius), state: StateIdle}
}

// Load installs a freshly decoded image as the committed state and resets
// selection and preview.
func (e *Editor) Load(img *image.NRGBA) {
	e.committed = img
	e.preview = nil
	e.sel.Clear()
	e.transition(StateIdle)
	if e.logger != nil && img != nil {
		b := img.Bounds()
		e.logger.Info("image loaded", "width", b.Dx(), "height", b.Dy())
	}
}

// BeginSelection starts a drag at the display-space point p. Any pending
// preview is discarded so that the next recompute derives from the committed
// image, never from a stale preview.
func (e *Editor) BeginSelection(p mosaic.Point) {
	if e.committed == nil {
		return
	}
	e.preview = nil
	e.sel.Begin(p)
	e.transition(StateSelecting)
}

// UpdateSelection moves the drag end point. No image recompute happens here.
func (e *Editor) UpdateSelection(p mosaic.Point) {
	if e.state != StateSelecting {
		return
	}
	e.sel.Update(p)
}

// FinishSelection ends the drag: the normalized display-space rectangle is
// mapped to image space with ratio and the mosaic engine runs against the
// committed image, producing a new preview. Re-running with an unchanged
// rectangle reproduces the same preview from the same base.
func (e *Editor) FinishSelection(ratio float64) {
	if e.state != StateSelecting || e.committed == nil {
		return
	}
	min, max := e.sel.Normalized()
	e.preview = mosaic.Apply(e.committed, min.Scale(ratio), max.Scale(ratio), e.radius)
	e.transition(StatePreviewing)
}

// Confirm promotes the preview to committed and clears the selection. No-op
// unless a preview exists.
func (e *Editor) Confirm() {
	if e.state != StatePreviewing || e.preview == nil {
		return
	}
	e.committed = e.preview
	e.preview = nil
	e.sel.Clear()
	e.transition(StateIdle)
	if e.logger != nil {
		e.logger.Info("mosaic confirmed", "radius", e.radius)
	}
}

// Committed returns the last user-accepted image. Save paths must persist
// exactly this value, unaffected by any pending preview.
func (e *Editor) Committed() *image.NRGBA { return e.committed }

// Preview returns the pending mosaic result, or nil when none is active.
func (e *Editor) Preview() *image.NRGBA { return e.preview }

// Displayed returns the image the UI should render: the preview while one
// exists, otherwise the committed image.
func (e *Editor) Displayed() *image.NRGBA {
	if e.preview != nil {
		return e.preview
	}
	return e.committed
}

// Size returns the committed image dimensions, or zeros when nothing is
// loaded.
func (e *Editor) Size() (w, h int) {
	if e.committed == nil {
		return 0, 0
	}
	b := e.committed.Bounds()
	return b.Dx(), b.Dy()
}

// Loaded reports whether an image has been opened.
func (e *Editor) Loaded() bool { return e.committed != nil }

// Selection exposes the current selection for overlay rendering.
func (e *Editor) Selection() *mosaic.Selection { return &e.sel }

// Radius returns the current block radius.
func (e *Editor) Radius() int { return e.radius }

// SetRadius updates the block radius, clamped to the valid range. It affects
// the next FinishSelection only; an existing preview is not recomputed.
func (e *Editor) SetRadius(r int) { e.radius = mosaic.ClampRadius(r) }

// State returns the current edit state.
func (e *Editor) State() State { return e.state }

// AddListener registers a transition listener.
func (e *Editor) AddListener(l StateListener) {
	e.listeners = append(e.listeners, l)
}

func (e *Editor) transition(next State) {
	prev := e.state
	if prev == next {
		return
	}
	e.state = next
	if e.logger != nil {
		e.logger.Debug("edit state transition", "from", prev.String(), "to", next.String())
	}
	for _, l := range e.listeners {
		l(prev, next)
	}
}

// Ensure contract satisfaction
var _ Contract = (*Editor)(nil)

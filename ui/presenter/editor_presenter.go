package presenter

import (
	"image"
	"image/color"
	"log/slog"

	"github.com/soocke/mosaic-pix-go/config"
	"github.com/soocke/mosaic-pix-go/domain/editor"
	"github.com/soocke/mosaic-pix-go/domain/mosaic"
	"github.com/soocke/mosaic-pix-go/ui/images"
)

// EditorContract narrows the editor surface this presenter drives.
type EditorContract interface {
	editor.SelectionOps
	editor.ImageSource
	editor.RadiusOps
	editor.StateSource
	Selection() *mosaic.Selection
}

// CanvasView receives the composed display image (scaled, with the selection
// stroke already applied).
type CanvasView interface {
	ShowImage(img image.Image)
}

// InfoView receives image metadata for the status row.
type InfoView interface {
	SetImageInfo(w, h int, ratio float64)
}

// EditorPresenter owns presentation logic for the drag/preview/confirm cycle:
// it maps pointer events into editor calls and recomposes the display image
// after every change.
type EditorPresenter struct {
	ed      EditorContract
	canvas  CanvasView
	info    InfoView
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger
	stroke  color.Color

	// Width of the currently displayed (scaled) image; the basis for the
	// display-to-image coordinate ratio.
	dispW int
	dispH int
}

func NewEditorPresenter(ed EditorContract, canvas CanvasView, info InfoView, cfg *config.Config, cfgPath string, stroke color.Color, logger *slog.Logger) *EditorPresenter {
	return &EditorPresenter{ed: ed, canvas: canvas, info: info, cfg: cfg, cfgPath: cfgPath, stroke: stroke, logger: logger}
}

// DragStart begins a selection at the display-space point (x, y).
func (p *EditorPresenter) DragStart(x, y float64) {
	if p == nil || p.ed == nil || !p.ed.Loaded() {
		return
	}
	p.ed.BeginSelection(mosaic.Pt(x, y))
	p.Refresh()
}

// DragMove extends the selection. The rectangle is restroked but no mosaic is
// recomputed.
func (p *EditorPresenter) DragMove(x, y float64) {
	if p == nil || p.ed == nil || p.ed.State() != editor.StateSelecting {
		return
	}
	p.ed.UpdateSelection(mosaic.Pt(x, y))
	p.Refresh()
}

// DragStop finishes the selection and derives the preview from the committed
// image.
func (p *EditorPresenter) DragStop(x, y float64) {
	if p == nil || p.ed == nil || p.ed.State() != editor.StateSelecting {
		return
	}
	p.ed.UpdateSelection(mosaic.Pt(x, y))
	w, _ := p.ed.Size()
	if p.dispW <= 0 {
		return
	}
	p.ed.FinishSelection(mosaic.DisplayRatio(w, float64(p.dispW)))
	p.Refresh()
}

// Confirm promotes the pending preview.
func (p *EditorPresenter) Confirm() {
	if p == nil || p.ed == nil {
		return
	}
	p.ed.Confirm()
	p.Refresh()
}

// SetRadius updates the block radius and persists it.
func (p *EditorPresenter) SetRadius(r int) {
	if p == nil || p.ed == nil {
		return
	}
	p.ed.SetRadius(r)
	if p.cfg != nil {
		p.cfg.Radius = p.ed.Radius()
		if p.cfgPath != "" {
			if err := p.cfg.Save(p.cfgPath); err != nil && p.logger != nil {
				p.logger.Error("config save failed", "error", err)
			}
		}
	}
}

// Radius returns the effective (clamped) radius.
func (p *EditorPresenter) Radius() int {
	if p == nil || p.ed == nil {
		return mosaic.MinRadius
	}
	return p.ed.Radius()
}

// DisplaySize returns the size of the currently displayed scaled image.
func (p *EditorPresenter) DisplaySize() (w, h int) { return p.dispW, p.dispH }

// Refresh recomposes the display image from the editor state: the displayed
// buffer is scaled into the preview box and the active selection rectangle is
// stroked on top. Stale display bytes never survive an image change because
// the whole composition is rebuilt here.
func (p *EditorPresenter) Refresh() {
	if p == nil || p.ed == nil || p.canvas == nil || !p.ed.Loaded() {
		return
	}
	maxW, maxH := 720, 480
	if p.cfg != nil {
		maxW, maxH = p.cfg.PreviewMaxW, p.cfg.PreviewMaxH
	}
	scaled := images.FitToBox(p.ed.Displayed(), maxW, maxH)
	p.dispW, p.dispH = scaled.Bounds().Dx(), scaled.Bounds().Dy()

	var composed image.Image = scaled
	if sel := p.ed.Selection(); sel != nil && sel.Active() {
		min, max := sel.Normalized()
		composed = images.StrokeRect(scaled, min, max, p.stroke)
	}
	p.canvas.ShowImage(composed)

	if p.info != nil {
		w, h := p.ed.Size()
		p.info.SetImageInfo(w, h, mosaic.DisplayRatio(w, float64(p.dispW)))
	}
}

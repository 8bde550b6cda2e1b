package view

import (
	"image"
	"log/slog"

	"github.com/soocke/mosaic-pix-go/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for
// presenters.
type RootView struct {
	cfg    *config.Config
	logger *slog.Logger

	// Subviews
	Toolbar Toolbar
	Canvas  ImageCanvas
	Status  StatusBar
}

// UI abstracts the subset of view operations needed by presenters, enabling
// decoupling from the concrete RootView implementation.
type UI interface {
	ShowImage(img image.Image)
	SetImageInfo(w, h int, ratio float64)
	SetStatusText(text string)
	SetStateLabel(text string)
	SetConfirmEnabled(enabled bool)
	SetTitle(title string)
}

func NewRootView(cfg *config.Config, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, logger: logger}
}

// Handlers carries the user-action callbacks the shell provides to Build.
type Handlers struct {
	OnOpen    func()
	OnConfirm func()
	OnSave    func()
	OnExit    func()
	OnRadius  func(r int)
	OnDrag    func(x, y float64)
	OnDragTo  func(x, y float64)
	OnDrop    func(x, y float64)
}

// Build constructs the layout: toolbar, image canvas with the placeholder
// artwork, status row.
func (rv *RootView) Build(placeholderPNG []byte, h Handlers) {
	if rv == nil {
		return
	}
	radius := 5
	if rv.cfg != nil {
		radius = rv.cfg.Radius
	}
	rv.Toolbar = NewToolbar(0, radius, h.OnOpen, h.OnConfirm, h.OnSave, h.OnExit, h.OnRadius, rv.logger)
	rv.Canvas = NewImageCanvas(1, placeholderPNG)
	rv.Canvas.SetDragHandlers(h.OnDrag, h.OnDragTo, h.OnDrop)
	rv.Status = NewStatusBar(2)
}

// ShowImage proxies to the canvas.
func (rv *RootView) ShowImage(img image.Image) {
	if rv != nil && rv.Canvas != nil {
		rv.Canvas.ShowImage(img)
	}
}

// SetImageInfo proxies to the status bar.
func (rv *RootView) SetImageInfo(w, h int, ratio float64) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetImageInfo(w, h, ratio)
	}
}

// SetStatusText proxies to the status bar.
func (rv *RootView) SetStatusText(text string) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetStatusText(text)
	}
}

// SetStateLabel proxies to the status bar.
func (rv *RootView) SetStateLabel(text string) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetStateLabel(text)
	}
}

// SetConfirmEnabled proxies to the toolbar.
func (rv *RootView) SetConfirmEnabled(enabled bool) {
	if rv != nil && rv.Toolbar != nil {
		rv.Toolbar.SetConfirmEnabled(enabled)
	}
}

// SetTitle updates the window title.
func (rv *RootView) SetTitle(title string) {
	if rv != nil {
		App.WmTitle(title)
	}
}

// PickOpenFile shows the file-open dialog and returns the chosen path, ""
// when cancelled.
func (rv *RootView) PickOpenFile(initialDir string) string {
	opts := []Opt{Title("Open Image")}
	if initialDir != "" {
		opts = append(opts, Initialdir(initialDir))
	}
	paths := GetOpenFile(opts...)
	if len(paths) == 0 {
		return ""
	}
	return paths[0]
}

// PickSaveDir shows the directory chooser for saving and returns the chosen
// directory, "" when cancelled.
func (rv *RootView) PickSaveDir(initialDir string) string {
	opts := []Opt{Title("Choose Save Folder")}
	if initialDir != "" {
		opts = append(opts, Initialdir(initialDir))
	}
	return ChooseDirectory(opts...)
}

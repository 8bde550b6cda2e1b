package app

import (
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/mosaic-pix-go/assets"
	"github.com/soocke/mosaic-pix-go/config"
	"github.com/soocke/mosaic-pix-go/debug"
	"github.com/soocke/mosaic-pix-go/domain/editor"
	"github.com/soocke/mosaic-pix-go/ui/theme"
	"github.com/soocke/mosaic-pix-go/ui/view"
)

type app struct {
	title     string
	cfg       *config.Config
	cfgPath   string
	logger    *slog.Logger
	container *AppContainer
}

// NewApp prepares the main window. Widgets are built in Start.
func NewApp(title string, cfg *config.Config, cfgPath string, logger *slog.Logger) *app {
	a := &app{title: title, cfg: cfg, cfgPath: cfgPath, logger: logger}
	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	return a
}

// Start builds the UI, wires the presenters and enters the Tk event loop.
// Every user interaction is handled to completion on this single thread.
func (a *app) Start() {
	theme.InitStyles()

	c := BuildContainer(a.cfg, a.cfgPath, a.logger)
	a.container = c

	c.RootView.Build(assets.PlaceholderPNG, view.Handlers{
		OnOpen:    a.openImage,
		OnConfirm: a.confirmMosaic,
		OnSave:    a.saveImage,
		OnExit:    a.exitHandler,
		OnRadius:  c.EditorPresenter.SetRadius,
		OnDrag:    c.EditorPresenter.DragStart,
		OnDragTo:  c.EditorPresenter.DragMove,
		OnDrop:    c.EditorPresenter.DragStop,
	})

	if a.cfg != nil && a.cfg.Debug {
		debug.StartStatsLogger(2*time.Second, a.logger)
	}

	App.Wait()
}

// openImage runs the file dialog and loads the chosen image as the new
// committed state. Cancelled dialogs and decode failures leave the current
// document untouched.
func (a *app) openImage() {
	c := a.container
	path := c.RootView.PickOpenFile(c.DocumentPresenter.OpenDir())
	if path == "" {
		return
	}
	c.DocumentPresenter.OpenPath(path)
}

// confirmMosaic promotes the pending preview and flags unsaved changes.
func (a *app) confirmMosaic() {
	c := a.container
	if c.Editor.State() != editor.StatePreviewing {
		return
	}
	c.EditorPresenter.Confirm()
	c.DocumentPresenter.MarkEdited()
}

// saveImage persists the committed image into a user-chosen folder.
func (a *app) saveImage() {
	c := a.container
	if !c.Editor.Loaded() {
		return
	}
	dir := c.RootView.PickSaveDir(c.DocumentPresenter.SaveDir())
	if dir == "" {
		return
	}
	c.DocumentPresenter.SaveTo(dir)
}

func (a *app) exitHandler() {
	Destroy(App)
}

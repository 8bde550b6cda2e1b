package app

import (
	"log/slog"

	"github.com/soocke/mosaic-pix-go/config"
	"github.com/soocke/mosaic-pix-go/domain/editor"
	"github.com/soocke/mosaic-pix-go/ui/model"
	"github.com/soocke/mosaic-pix-go/ui/presenter"
	"github.com/soocke/mosaic-pix-go/ui/theme"
	"github.com/soocke/mosaic-pix-go/ui/view"
)

// AppContainer assembles the editor core, models, presenters and the root
// view.
type AppContainer struct {
	Config   *config.Config
	Logger   *slog.Logger
	Document *model.DocumentModel
	Editor   *editor.Editor
	RootView *view.RootView
	UI       view.UI

	// Presenters
	EditorPresenter   *presenter.EditorPresenter
	DocumentPresenter *presenter.DocumentPresenter
	StatePresenter    *presenter.StatePresenter
}

// BuildContainer constructs all components. No widgets are created here; the
// app shell calls RootView.Build once Tk is ready.
func BuildContainer(cfg *config.Config, cfgPath string, logger *slog.Logger) *AppContainer {
	c := &AppContainer{Config: cfg, Logger: logger}
	c.Document = model.NewDocumentModel()

	radius := 5
	if cfg != nil {
		radius = cfg.Radius
	}
	c.Editor = editor.New(logger, radius)

	c.RootView = view.NewRootView(cfg, logger)
	c.UI = c.RootView

	c.EditorPresenter = presenter.NewEditorPresenter(
		c.Editor, c.RootView, c.RootView, cfg, cfgPath, theme.SelectionStroke(), logger)
	c.DocumentPresenter = presenter.NewDocumentPresenter(
		c.Editor, c.Document, c.RootView, c.EditorPresenter, cfg, cfgPath, logger)
	c.StatePresenter = presenter.NewStatePresenter(c.RootView)
	c.Editor.AddListener(c.StatePresenter.OnState)
	return c
}

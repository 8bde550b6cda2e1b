package presenter

import (
	"image"
	"log/slog"
	"path/filepath"

	"github.com/soocke/mosaic-pix-go/config"
	"github.com/soocke/mosaic-pix-go/imageio"
	"github.com/soocke/mosaic-pix-go/ui/model"
)

// Opener decodes an image file. Defaults to imageio.Open.
type Opener func(path string) (*image.NRGBA, error)

// Saver encodes an image into dir under name and returns the written path.
// Defaults to imageio.Save.
type Saver func(img image.Image, dir, name string) (string, error)

// DocumentEditor is the editor surface the document presenter needs.
type DocumentEditor interface {
	Load(img *image.NRGBA)
	Committed() *image.NRGBA
	Loaded() bool
}

// StatusView receives user-facing status text and the window title.
type StatusView interface {
	SetStatusText(text string)
	SetTitle(title string)
}

// Refresher re-renders the display after the document changes.
type Refresher interface{ Refresh() }

// DocumentPresenter owns open/save flows and file identity. All I/O failures
// are non-fatal: the editor buffers are left untouched and the failure is
// reported through the status view.
type DocumentPresenter struct {
	ed      DocumentEditor
	doc     *model.DocumentModel
	view    StatusView
	refresh Refresher
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	open Opener
	save Saver
}

func NewDocumentPresenter(ed DocumentEditor, doc *model.DocumentModel, view StatusView, refresh Refresher, cfg *config.Config, cfgPath string, logger *slog.Logger) *DocumentPresenter {
	return &DocumentPresenter{
		ed: ed, doc: doc, view: view, refresh: refresh,
		cfg: cfg, cfgPath: cfgPath, logger: logger,
		open: imageio.Open, save: imageio.Save,
	}
}

// OpenPath decodes the file at path and installs it as the committed image.
// On decode failure the previous document stays loaded.
func (p *DocumentPresenter) OpenPath(path string) {
	if p == nil || p.ed == nil || path == "" {
		return
	}
	img, err := p.open(path)
	if err != nil {
		if p.logger != nil {
			p.logger.Error("open failed", "path", path, "error", err)
		}
		p.setStatus("Could not open " + filepath.Base(path))
		return
	}
	p.ed.Load(img)
	if p.doc != nil {
		p.doc.SetOpened(path)
	}
	if p.cfg != nil {
		p.cfg.LastOpenDir = filepath.Dir(path)
		p.persistConfig()
	}
	p.setStatus("Opened " + filepath.Base(path))
	p.updateTitle()
	if p.refresh != nil {
		p.refresh.Refresh()
	}
}

// SaveTo persists the committed image into dir under the document's own file
// name. A pending, unconfirmed preview is never exported. Collisions are
// resolved by the codec with a fixed filename prefix.
func (p *DocumentPresenter) SaveTo(dir string) {
	if p == nil || p.ed == nil || dir == "" || !p.ed.Loaded() || p.doc == nil || !p.doc.Loaded() {
		return
	}
	path, err := p.save(p.ed.Committed(), dir, p.doc.Name())
	if err != nil {
		if p.logger != nil {
			p.logger.Error("save failed", "dir", dir, "error", err)
		}
		p.setStatus("Save failed, image kept in memory")
		return
	}
	p.doc.MarkSaved()
	if p.cfg != nil {
		p.cfg.LastSaveDir = dir
		p.persistConfig()
	}
	if p.logger != nil {
		p.logger.Info("image saved", "path", path)
	}
	p.setStatus("Saved " + filepath.Base(path))
	p.updateTitle()
}

// MarkEdited flags unsaved committed changes (called after a confirm).
func (p *DocumentPresenter) MarkEdited() {
	if p == nil || p.doc == nil {
		return
	}
	p.doc.MarkDirty()
	p.updateTitle()
}

// OpenDir returns the directory the open dialog should start in.
func (p *DocumentPresenter) OpenDir() string {
	if p != nil && p.cfg != nil {
		return p.cfg.LastOpenDir
	}
	return ""
}

// SaveDir returns the directory the save dialog should start in.
func (p *DocumentPresenter) SaveDir() string {
	if p != nil && p.cfg != nil && p.cfg.LastSaveDir != "" {
		return p.cfg.LastSaveDir
	}
	if p != nil && p.doc != nil {
		return p.doc.Dir()
	}
	return ""
}

func (p *DocumentPresenter) setStatus(text string) {
	if p.view != nil {
		p.view.SetStatusText(text)
	}
}

func (p *DocumentPresenter) updateTitle() {
	if p.view == nil || p.doc == nil {
		return
	}
	title := "Mosaic Pix"
	if p.doc.Loaded() {
		title += " - " + p.doc.Name()
		if p.doc.Dirty() {
			title += " *"
		}
	}
	p.view.SetTitle(title)
}

func (p *DocumentPresenter) persistConfig() {
	if p.cfg == nil || p.cfgPath == "" {
		return
	}
	if err := p.cfg.Save(p.cfgPath); err != nil && p.logger != nil {
		p.logger.Error("config save failed", "error", err)
	}
}

package presenter

import (
	"image"
	"image/color"
	"log/slog"
	"testing"

	"github.com/soocke/mosaic-pix-go/config"
	"github.com/soocke/mosaic-pix-go/domain/editor"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

type mockCanvas struct {
	shown int
	last  image.Image
}

func (c *mockCanvas) ShowImage(img image.Image) { c.shown++; c.last = img }

type mockInfo struct {
	w, h  int
	ratio float64
	calls int
}

func (v *mockInfo) SetImageInfo(w, h int, ratio float64) { v.w, v.h, v.ratio = w, h, ratio; v.calls++ }

func loadedEditor(w, h int) *editor.Editor {
	ed := editor.New(discardLogger, 3)
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), A: 255})
		}
	}
	ed.Load(img)
	return ed
}

func newTestPresenter(w, h int) (*EditorPresenter, *mockCanvas, *mockInfo, *editor.Editor) {
	ed := loadedEditor(w, h)
	canvas := &mockCanvas{}
	info := &mockInfo{}
	cfg := config.DefaultConfig()
	cfg.PreviewMaxW, cfg.PreviewMaxH = 100, 100
	p := NewEditorPresenter(ed, canvas, info, cfg, "", color.NRGBA{R: 255, A: 255}, discardLogger)
	return p, canvas, info, ed
}

func TestEditorPresenter_RefreshScalesAndReportsRatio(t *testing.T) {
	p, canvas, info, _ := newTestPresenter(400, 200)
	p.Refresh()
	if canvas.shown != 1 || canvas.last == nil {
		t.Fatalf("expected one composed image, got %d", canvas.shown)
	}
	dw, dh := p.DisplaySize()
	if dw != 100 || dh != 50 {
		t.Fatalf("display size %dx%d, want 100x50", dw, dh)
	}
	if info.w != 400 || info.h != 200 || info.ratio != 4 {
		t.Fatalf("info %dx%d ratio %v, want 400x200 ratio 4", info.w, info.h, info.ratio)
	}
}

func TestEditorPresenter_DragCycleProducesPreview(t *testing.T) {
	p, _, _, ed := newTestPresenter(400, 200)
	p.Refresh() // establish display size
	p.DragStart(10, 10)
	if ed.State() != editor.StateSelecting {
		t.Fatalf("drag start did not reach the editor")
	}
	p.DragMove(30, 25)
	if ed.Preview() != nil {
		t.Fatalf("drag move must not build a preview")
	}
	p.DragStop(40, 30)
	if ed.State() != editor.StatePreviewing || ed.Preview() == nil {
		t.Fatalf("drag stop should derive a preview, state=%v", ed.State())
	}
}

func TestEditorPresenter_DragIgnoredWithoutImage(t *testing.T) {
	ed := editor.New(discardLogger, 3)
	canvas := &mockCanvas{}
	p := NewEditorPresenter(ed, canvas, nil, config.DefaultConfig(), "", color.NRGBA{A: 255}, discardLogger)
	p.DragStart(5, 5)
	p.DragStop(9, 9)
	if canvas.shown != 0 || ed.State() != editor.StateIdle {
		t.Fatalf("presenter acted without a loaded image")
	}
}

func TestEditorPresenter_ConfirmClearsSelectionOverlay(t *testing.T) {
	p, _, _, ed := newTestPresenter(200, 200)
	p.Refresh()
	p.DragStart(10, 10)
	p.DragStop(60, 60)
	p.Confirm()
	if ed.State() != editor.StateIdle || ed.Preview() != nil {
		t.Fatalf("confirm did not promote the preview")
	}
	if ed.Selection().Active() {
		t.Fatalf("selection should be cleared after confirm")
	}
}

func TestEditorPresenter_SetRadiusClampsAndStores(t *testing.T) {
	p, _, _, ed := newTestPresenter(50, 50)
	p.SetRadius(50)
	if ed.Radius() != 20 || p.Radius() != 20 {
		t.Fatalf("radius not clamped: editor=%d presenter=%d", ed.Radius(), p.Radius())
	}
}

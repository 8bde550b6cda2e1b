package presenter

import (
	"testing"

	"github.com/soocke/mosaic-pix-go/domain/editor"
)

type mockStateView struct {
	label   string
	confirm bool
}

func (v *mockStateView) SetStateLabel(text string)      { v.label = text }
func (v *mockStateView) SetConfirmEnabled(enabled bool) { v.confirm = enabled }

func TestStatePresenter_ReflectsTransitions(t *testing.T) {
	view := &mockStateView{}
	p := NewStatePresenter(view)

	p.OnState(editor.StateIdle, editor.StateSelecting)
	if view.label != "State: selecting" || view.confirm {
		t.Fatalf("selecting: label=%q confirm=%v", view.label, view.confirm)
	}

	p.OnState(editor.StateSelecting, editor.StatePreviewing)
	if view.label != "State: previewing" || !view.confirm {
		t.Fatalf("previewing should enable confirm: label=%q confirm=%v", view.label, view.confirm)
	}

	p.OnState(editor.StatePreviewing, editor.StateIdle)
	if view.label != "State: idle" || view.confirm {
		t.Fatalf("idle should disable confirm: label=%q confirm=%v", view.label, view.confirm)
	}
}

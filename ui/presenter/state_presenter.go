package presenter

import (
	"github.com/soocke/mosaic-pix-go/domain/editor"
)

// StateLabelView displays the current edit state and toggles the confirm
// control.
type StateLabelView interface {
	SetStateLabel(text string)
	SetConfirmEnabled(enabled bool)
}

// StatePresenter reflects editor transitions onto the view. Register OnState
// as an editor listener; transitions arrive synchronously on the UI thread.
type StatePresenter struct {
	view StateLabelView
}

func NewStatePresenter(view StateLabelView) *StatePresenter {
	return &StatePresenter{view: view}
}

// OnState updates the state label and gates the confirm control: confirm only
// makes sense while a preview exists.
func (p *StatePresenter) OnState(prev, next editor.State) {
	if p == nil || p.view == nil {
		return
	}
	p.view.SetStateLabel("State: " + next.String())
	p.view.SetConfirmEnabled(next == editor.StatePreviewing)
}

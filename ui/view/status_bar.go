package view

import (
	"fmt"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// StatusBar shows image dimensions, the display ratio and transient status
// text.
type StatusBar interface {
	SetImageInfo(w, h int, ratio float64)
	SetStatusText(text string)
	SetStateLabel(text string)
}

type statusBar struct {
	sizeLbl   *LabelWidget
	ratioLbl  *LabelWidget
	stateLbl  *LabelWidget
	statusLbl *LabelWidget
}

// NewStatusBar creates the status labels at the given grid row.
func NewStatusBar(row int) StatusBar {
	s := &statusBar{
		sizeLbl:   Label(Width(18), Anchor("w")),
		ratioLbl:  Label(Width(14), Anchor("w")),
		stateLbl:  Label(Txt("State: idle"), Borderwidth(1), Relief("ridge")),
		statusLbl: Label(Anchor("w")),
	}
	Grid(s.sizeLbl, Row(row), Column(0), Sticky("w"), Padx("0.2m"))
	Grid(s.ratioLbl, Row(row), Column(1), Sticky("w"), Padx("0.2m"))
	Grid(s.stateLbl, Row(row), Column(2), Sticky("w"), Padx("0.2m"))
	Grid(s.statusLbl, Row(row), Column(3), Columnspan(2), Sticky("we"), Padx("0.2m"))
	s.sizeLbl.Configure(Txt("Size: -"))
	s.ratioLbl.Configure(Txt("Ratio: -"))
	return s
}

// SetImageInfo shows committed image dimensions and the display ratio.
func (s *statusBar) SetImageInfo(w, h int, ratio float64) {
	if s == nil {
		return
	}
	if s.sizeLbl != nil {
		s.sizeLbl.Configure(Txt(fmt.Sprintf("Size: %d x %d", w, h)))
	}
	if s.ratioLbl != nil {
		s.ratioLbl.Configure(Txt(fmt.Sprintf("Ratio: %.3f", ratio)))
	}
}

// SetStatusText shows transient user-facing text (open/save outcomes).
func (s *statusBar) SetStatusText(text string) {
	if s == nil || s.statusLbl == nil {
		return
	}
	s.statusLbl.Configure(Txt(text))
}

// SetStateLabel shows the edit state.
func (s *statusBar) SetStateLabel(text string) {
	if s == nil || s.stateLbl == nil {
		return
	}
	s.stateLbl.Configure(Txt(text))
}

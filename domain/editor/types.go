package editor

import (
	"image"

	"github.com/soocke/mosaic-pix-go/domain/mosaic"
)

// State enumerates the finite states of the edit cycle.
type State int

const (
	// StateIdle: no active selection, no preview.
	StateIdle State = iota
	// StateSelecting: a drag is in progress; the rectangle mutates but no
	// image is recomputed yet.
	StateSelecting
	// StatePreviewing: the drag finished and a mosaic preview derived from
	// the committed image is held alongside it.
	StatePreviewing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSelecting:
		return "selecting"
	case StatePreviewing:
		return "previewing"
	default:
		return "unknown"
	}
}

// StateListener is called on each successful state transition.
type StateListener func(prev, next State)

// Interface slices for consumers (presenters).
type StateSource interface{ State() State }

type SelectionOps interface {
	BeginSelection(p mosaic.Point)
	UpdateSelection(p mosaic.Point)
	FinishSelection(ratio float64)
	Confirm()
}

type ImageSource interface {
	Committed() *image.NRGBA
	Preview() *image.NRGBA
	Displayed() *image.NRGBA
	Size() (w, h int)
	Loaded() bool
}

type RadiusOps interface {
	Radius() int
	SetRadius(r int)
}

// Contract aggregates the full editor surface for DI.
type Contract interface {
	StateSource
	SelectionOps
	ImageSource
	RadiusOps
	Load(img *image.NRGBA)
	Selection() *mosaic.Selection
	AddListener(l StateListener)
}

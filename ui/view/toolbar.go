package view

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/soocke/mosaic-pix-go/domain/mosaic"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Toolbar owns the action buttons and the radius entry.
type Toolbar interface {
	SetConfirmEnabled(enabled bool)
	SetRadiusShown(r int)
}

type toolbar struct {
	logger     *slog.Logger
	radiusText *TextWidget
	confirmBtn *ButtonWidget
	onRadius   func(r int)
}

// NewToolbar builds the button row at the given grid row. onRadius receives
// the parsed, clamped radius whenever the user applies a new value.
func NewToolbar(row int, radius int, onOpen, onConfirm, onSave, onExit func(), onRadius func(r int), logger *slog.Logger) Toolbar {
	v := &toolbar{logger: logger, onRadius: onRadius}

	frame := Frame()
	Grid(frame, Row(row), Column(0), Columnspan(5), Sticky("we"), Padx("0.3m"), Pady("0.3m"))

	openBtn := Button(Txt("Open Image"), Command(onOpen))
	Grid(openBtn, In(frame), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	lbl := Label(Txt(fmt.Sprintf("Radius (%d-%d)", mosaic.MinRadius, mosaic.MaxRadius)), Anchor("w"))
	Grid(lbl, In(frame), Row(0), Column(1), Sticky("w"), Padx("0.4m"))
	v.radiusText = Text(Height(1), Width(4))
	Grid(v.radiusText, In(frame), Row(0), Column(2), Sticky("w"), Padx("0.2m"))
	v.SetRadiusShown(radius)
	applyBtn := Button(Txt("Apply"), Command(func() { v.applyRadius() }))
	Grid(applyBtn, In(frame), Row(0), Column(3), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	v.confirmBtn = Button(Txt("Confirm Mosaic"), Command(onConfirm))
	Grid(v.confirmBtn, In(frame), Row(0), Column(4), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	v.SetConfirmEnabled(false)

	saveBtn := Button(Txt("Save"), Command(onSave))
	Grid(saveBtn, In(frame), Row(0), Column(5), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	exitBtn := Button(Txt("Exit"), Command(onExit))
	Grid(exitBtn, In(frame), Row(0), Column(6), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	return v
}

// SetConfirmEnabled gates the confirm button; it is only active while a
// preview exists.
func (v *toolbar) SetConfirmEnabled(enabled bool) {
	if v == nil || v.confirmBtn == nil {
		return
	}
	state := "disabled"
	if enabled {
		state = "normal"
	}
	v.confirmBtn.Configure(State(state))
}

// SetRadiusShown rewrites the radius entry.
func (v *toolbar) SetRadiusShown(r int) {
	if v == nil || v.radiusText == nil {
		return
	}
	v.radiusText.Delete("1.0", END)
	v.radiusText.Insert("1.0", strconv.Itoa(r))
}

func (v *toolbar) applyRadius() {
	if v == nil || v.radiusText == nil || v.onRadius == nil {
		return
	}
	raw := strings.TrimSpace(strings.Join(v.radiusText.Get("1.0", END), ""))
	r, err := strconv.Atoi(raw)
	if err != nil {
		if v.logger != nil {
			v.logger.Warn("invalid radius input", "value", raw)
		}
		return
	}
	r = mosaic.ClampRadius(r)
	v.SetRadiusShown(r)
	v.onRadius(r)
}

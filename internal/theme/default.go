package theme

import (
	"git.lost.host/meutraa/chrzl/internal/game"
	"git.lost.host/meutraa/chrzl/internal/graphics"
)

type DefaultTheme struct{}

const (
	tapSym  = "⬤"
	dragSym = "◆"
	holdSym = "⬢"
	bodySym = "│"
	barSym  = "-"
)

var laneColors = []graphics.Color{
	{R: 236, G: 30, B: 0},   // red
	{R: 0, G: 118, B: 236},  // blue
	{R: 236, G: 195, B: 0},  // yellow
	{R: 0, G: 236, B: 128},  // green
	{R: 106, G: 0, B: 236},  // purple
	{R: 236, G: 128, B: 0},  // orange
	{R: 173, G: 236, B: 236},
	{R: 236, G: 0, B: 106},
}

func (t *DefaultTheme) NoteSymbol(lane int, kind game.Kind) string {
	switch kind {
	case game.Drag:
		return dragSym
	case game.Hold:
		return holdSym
	}
	return tapSym
}

func (t *DefaultTheme) NoteColor(lane int, kind game.Kind) graphics.Color {
	if lane < 0 || len(laneColors) == 0 {
		return graphics.Color{R: 255, G: 255, B: 255}
	}
	return laneColors[lane%len(laneColors)]
}

func (t *DefaultTheme) FadedNoteColor(lane int, kind game.Kind, fade float64) graphics.Color {
	if fade < 0 {
		fade = 0
	} else if fade > 1 {
		fade = 1
	}
	return t.NoteColor(lane, kind).Lerp(graphics.Color{}, fade)
}

func (t *DefaultTheme) HoldBodySymbol() string {
	return bodySym
}

func (t *DefaultTheme) HitBarSymbol(lane int) string {
	return barSym
}

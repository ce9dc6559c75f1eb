package theme

import (
	"git.lost.host/meutraa/chrzl/internal/game"
	"git.lost.host/meutraa/chrzl/internal/graphics"
)

type Theme interface {
	NoteSymbol(lane int, kind game.Kind) string
	NoteColor(lane int, kind game.Kind) graphics.Color
	// FadedNoteColor dims the note color by fade in [0, 1], used for
	// notes past the hit bar on their way out of the window.
	FadedNoteColor(lane int, kind game.Kind, fade float64) graphics.Color
	HoldBodySymbol() string
	HitBarSymbol(lane int) string
}

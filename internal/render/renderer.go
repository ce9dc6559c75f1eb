package render

import (
	"time"

	"git.lost.host/meutraa/chrzl/internal/graphics"
)

type Renderer interface {
	Init() error
	Deinit() error
	Size() (rows, columns int)
	AddDecoration(row, column int, content string, frames int)
	RenderLoop(delay time.Duration, render func(delta time.Duration) bool)
	Fill(row, column int, message string)
	FillColor(row, column int, c graphics.Color, message string)
}

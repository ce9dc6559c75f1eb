package parser

import "git.lost.host/meutraa/chrzl/internal/game"

type Parser interface {
	Parse(file string) (*game.Chart, error)
}

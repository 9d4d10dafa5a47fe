package parser

import "git.lost.host/meutraa/lanes/internal/game"

type Parser interface {
	// Parse reads a chart file and checks that its audio can be opened.
	// A keyCount of zero or less uses the key count declared by the chart.
	Parse(file string, keyCount int) (*game.Chart, error)
}

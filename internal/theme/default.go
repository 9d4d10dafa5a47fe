package theme

import (
	"fmt"
	"image/color"

	"git.lost.host/meutraa/lanes/internal/game"
	"git.lost.host/meutraa/lanes/internal/play"
)

type DefaultTheme struct {
}

func (t *DefaultTheme) RenderNote(lane, keyCount int, state play.NoteState) string {
	return paint(noteColor(lane, keyCount, state), noteSym)
}

func (t *DefaultTheme) RenderHold(lane, keyCount int, state play.NoteState) string {
	return paint(noteColor(lane, keyCount, state), holdSym)
}

func (t *DefaultTheme) RenderHitField(lane int, held bool) string {
	if held {
		return heldSym
	}
	return barSym
}

func (t *DefaultTheme) RenderJudgement(tier game.Tier) string {
	c, ok := tierColors[tier]
	if !ok {
		return "          "
	}
	return paint(c, fmt.Sprintf("%10v", tier))
}

func paint(c color.RGBA, s string) string {
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, s)
}

const (
	noteSym = "⬤"
	holdSym = "┃"
	barSym  = "-"
	heldSym = "="
)

var (
	laneColors = [...]color.RGBA{
		{236, 236, 236, 255}, // white
		{0, 118, 236, 255},   // blue
	}
	centreColor = color.RGBA{236, 195, 0, 255}
	missColor   = color.RGBA{236, 30, 0, 255}
	brokenColor = color.RGBA{106, 106, 106, 255}
	holdColor   = color.RGBA{0, 236, 128, 255}
	tierColors  = map[game.Tier]color.RGBA{
		game.Perfect: {173, 236, 236, 255},
		game.Great:   {0, 236, 128, 255},
		game.Good:    {236, 195, 0, 255},
		game.Ok:      {236, 128, 0, 255},
		game.Miss:    missColor,
	}
)

// Lanes alternate outwards from the centre, an odd centre lane stands out.
func noteColor(lane, keyCount int, state play.NoteState) color.RGBA {
	switch state {
	case play.Missed:
		return missColor
	case play.Broken:
		return brokenColor
	case play.Holding:
		return holdColor
	}
	if keyCount%2 == 1 && lane == keyCount/2 {
		return centreColor
	}
	d := lane
	if lane >= keyCount/2 {
		d = keyCount - 1 - lane
	}
	return laneColors[d%2]
}

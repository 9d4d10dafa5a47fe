package theme

import (
	"git.lost.host/meutraa/lanes/internal/game"
	"git.lost.host/meutraa/lanes/internal/play"
)

type Theme interface {
	RenderNote(lane, keyCount int, state play.NoteState) string
	RenderHold(lane, keyCount int, state play.NoteState) string
	RenderHitField(lane int, held bool) string
	RenderJudgement(tier game.Tier) string
}

package theme

import (
	"strings"
	"testing"

	"git.lost.host/meutraa/lanes/internal/game"
	"git.lost.host/meutraa/lanes/internal/play"
)

type colorTest struct {
	Lane     int
	KeyCount int
	State    play.NoteState
}

var colorTests = map[colorTest]string{
	{0, 4, play.Pending}: "236;236;236",
	{1, 4, play.Pending}: "0;118;236",
	{2, 4, play.Pending}: "0;118;236",
	{3, 4, play.Pending}: "236;236;236",
	{3, 7, play.Pending}: "236;195;0",
	{2, 7, play.Pending}: "236;236;236",
	{4, 7, play.Pending}: "236;236;236",
	{0, 4, play.Missed}:  "236;30;0",
	{0, 4, play.Broken}:  "106;106;106",
	{0, 4, play.Holding}: "0;236;128",
}

func TestNoteColors(t *testing.T) {
	theme := &DefaultTheme{}
	for test, rgb := range colorTests {
		s := theme.RenderNote(test.Lane, test.KeyCount, test.State)
		if !strings.Contains(s, rgb) || !strings.Contains(s, noteSym) {
			t.Log("test    ", test)
			t.Log("rendered", s)
			t.Log("expected", rgb)
			t.Fail()
		}
	}
}

func TestRenderJudgement(t *testing.T) {
	theme := &DefaultTheme{}
	for _, tier := range game.Tiers {
		s := theme.RenderJudgement(tier)
		if !strings.Contains(s, tier.String()) {
			t.Log(tier, s)
			t.Fail()
		}
	}
	if s := theme.RenderJudgement(game.Unjudged); strings.TrimSpace(s) != "" {
		t.Log(s)
		t.Fail()
	}
}

func TestRenderHitField(t *testing.T) {
	theme := &DefaultTheme{}
	if theme.RenderHitField(0, false) == theme.RenderHitField(0, true) {
		t.Fail()
	}
}

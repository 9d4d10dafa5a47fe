package play

import (
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
	"git.lost.host/meutraa/lanes/internal/score"
)

// FinishDelay is how long after the end of the song the session finishes.
const FinishDelay = 2 * time.Second

// HitSounder plays the one shot sound of a successful judgement.
type HitSounder interface {
	PlayHit()
}

// Session is the state of one play of a chart. It is only mutated by Update,
// which is called once per frame.
type Session struct {
	Chart *game.Chart
	Notes []*game.Note
	Clock *Clock

	Score    int64
	Combo    int
	MaxCombo int
	Counts   game.HitCounts
	Finished bool

	// The most recent judgement, for display
	Last       game.Tier
	LastAt     time.Duration
	LastOffset time.Duration // Positive when late

	// Every input that was applied, in order
	Inputs []game.Input

	duration time.Duration
	held     []bool
	sound    HitSounder
}

func NewSession(chart *game.Chart, sound HitSounder) *Session {
	return &Session{
		Chart:    chart,
		Notes:    chart.CopyNotes(),
		Clock:    NewClock(nil),
		Inputs:   []game.Input{},
		duration: chart.Length(),
		held:     make([]bool, chart.KeyCount),
		sound:    sound,
	}
}

// SetDuration sets the length of the music. The session never finishes
// before the last note has ended.
func (s *Session) SetDuration(d time.Duration) {
	if end := s.Chart.Length(); d < end {
		d = end
	}
	s.duration = d
}

func (s *Session) Duration() time.Duration {
	return s.duration
}

// Held reports whether the key of a lane is down.
func (s *Session) Held(lane int) bool {
	return lane >= 0 && lane < len(s.held) && s.held[lane]
}

func (s *Session) Result() score.Result {
	return score.NewResult(s.Score, s.MaxCombo, s.Counts)
}

package play

import (
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
	"git.lost.host/meutraa/lanes/internal/score"
)

type NoteState uint8

const (
	Pending NoteState = iota
	Holding
	Hit
	Completed
	Broken
	Missed
)

func State(n *game.Note) NoteState {
	if !n.Long {
		switch {
		case n.Hit:
			return Hit
		case n.Missed:
			return Missed
		}
		return Pending
	}
	switch {
	case n.Missed:
		return Missed
	case n.HoldBroken:
		return Broken
	case n.Completed && n.TailJudgement == game.Miss:
		return Missed
	case n.Completed:
		return Completed
	case n.HeadHit:
		return Holding
	}
	return Pending
}

// NoteView is a note as seen from the hit line at a point in time.
type NoteView struct {
	Lane        int
	Long        bool
	Distance    time.Duration // Time until the head reaches the hit line
	EndDistance time.Duration // Time until the tail reaches the hit line
	State       NoteState
}

// Snapshot is a read only copy of what a frontend needs to draw a frame.
type Snapshot struct {
	Now        time.Duration
	KeyCount   int
	Held       []bool
	Notes      []NoteView
	Score      int64
	Combo      int
	MaxCombo   int
	Last       game.Tier
	LastAt     time.Duration
	LastOffset time.Duration
	Counts     game.HitCounts
	Finished   bool
}

// Snapshot captures the notes that reach the hit line within ahead of now,
// plus those that have only just passed it.
func (s *Session) Snapshot(now, ahead time.Duration) Snapshot {
	snap := Snapshot{
		Now:        now,
		KeyCount:   len(s.held),
		Held:       append([]bool(nil), s.held...),
		Notes:      []NoteView{},
		Score:      s.Score,
		Combo:      s.Combo,
		MaxCombo:   s.MaxCombo,
		Last:       s.Last,
		LastAt:     s.LastAt,
		LastOffset: s.LastOffset,
		Counts:     s.Counts,
		Finished:   s.Finished,
	}
	for _, n := range s.Notes {
		d := n.Time - now
		de := n.TimeEnd - now
		if d > ahead || de < -score.OkWindow {
			continue
		}
		snap.Notes = append(snap.Notes, NoteView{
			Lane:        n.Lane,
			Long:        n.Long,
			Distance:    d,
			EndDistance: de,
			State:       State(n),
		})
	}
	return snap
}

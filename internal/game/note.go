package game

import (
	"time"
)

// LongNoteThreshold is the shortest hold that is played as a long note.
// Anything shorter is a tap, which keeps short sliders fair.
const LongNoteThreshold = 150 * time.Millisecond

type Note struct {
	Lane    int           // The chart column
	Time    time.Duration // The time the note should be hit
	TimeEnd time.Duration // The time the note should be released, equal to Time for taps
	Long    bool

	// This is state

	// Tap notes
	Hit    bool
	Missed bool // Also set when the head of a long note is missed

	// Long notes
	HeadHit            bool
	HoldBroken         bool
	Completed          bool // The tail has been resolved, one way or another
	HeadJudgement      Tier
	TailJudgement      Tier
	SliderSoundPlaying bool
}

func NewNote(lane int, start, end time.Duration) *Note {
	if end < start {
		end = start
	}
	return &Note{
		Lane:    lane,
		Time:    start,
		TimeEnd: end,
		Long:    end-start >= LongNoteThreshold,
	}
}

func (n *Note) Duration() time.Duration {
	return n.TimeEnd - n.Time
}

// Resolved reports whether the note reached a terminal state.
// Resolved notes are never evaluated again.
func (n *Note) Resolved() bool {
	if n.Long {
		return n.Missed || n.Completed || n.HoldBroken
	}
	return n.Hit || n.Missed
}

// Holding reports whether the head was hit and the tail is still open.
func (n *Note) Holding() bool {
	return n.Long && n.HeadHit && !n.Completed && !n.HoldBroken
}

// Reset clears all judgement state, leaving the timing intact.
func (n *Note) Reset() {
	*n = Note{Lane: n.Lane, Time: n.Time, TimeEnd: n.TimeEnd, Long: n.Long}
}

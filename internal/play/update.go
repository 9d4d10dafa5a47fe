package play

import (
	"log"
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
	"git.lost.host/meutraa/lanes/internal/score"
)

func abs(x time.Duration) time.Duration {
	if x < 0 {
		return -x
	}
	return x
}

// Update applies the inputs of one frame at song time now, then resolves
// broken holds and missed notes. Notes that are already resolved are never
// looked at again, so calling Update twice with the same now and no inputs
// changes nothing.
func (s *Session) Update(inputs []game.Input, now time.Duration) {
	if s.Finished {
		return
	}

	for _, input := range inputs {
		if !s.record(input, now) || input.Paused {
			continue
		}
		switch input.Action {
		case game.Press:
			s.press(input.Lane, now)
		case game.Release:
			s.release(input.Lane, now)
		}
	}

	s.checkHolds(now)
	s.sweep(now)

	if now >= s.duration+FinishDelay {
		s.Finished = true
	}
}

// Hold applies key transitions seen while the game is paused. The lanes are
// held or let go, but nothing is judged until the next Update.
func (s *Session) Hold(inputs []game.Input, now time.Duration) {
	if s.Finished {
		return
	}
	for _, input := range inputs {
		input.Paused = true
		s.record(input, now)
	}
}

// record stamps an input, keeps it and moves its key.
func (s *Session) record(input game.Input, now time.Duration) bool {
	if input.Lane < 0 || input.Lane >= len(s.held) {
		log.Println("input for unknown lane", input.Lane)
		return false
	}
	input.Time = now
	s.Inputs = append(s.Inputs, input)
	s.held[input.Lane] = input.Action == game.Press
	return true
}

func (s *Session) hit(tier game.Tier, offset, now time.Duration) {
	s.Combo++
	if s.Combo > s.MaxCombo {
		s.MaxCombo = s.Combo
	}
	s.Score += tier.Value()
	s.Counts.Add(tier, 1)
	s.Last = tier
	s.LastAt = now
	s.LastOffset = offset
	if nil != s.sound {
		s.sound.PlayHit()
	}
}

func (s *Session) miss(count int, now time.Duration) {
	s.Combo = 0
	s.Counts.Miss += count
	s.Last = game.Miss
	s.LastAt = now
}

// The closest note wins, the earliest one if several are equally close.
func (s *Session) press(lane int, now time.Duration) {
	var closestNote *game.Note
	distance := score.OkWindow

	for _, note := range s.Notes {
		if note.Lane != lane || note.Resolved() || note.HeadHit {
			continue
		}
		if d := abs(note.Time - now); d < distance {
			distance = d
			closestNote = note
		}
	}
	if nil == closestNote {
		return
	}

	offset := now - closestNote.Time
	tier := score.Judge(offset)
	if closestNote.Long {
		closestNote.HeadHit = true
		closestNote.HeadJudgement = tier
	} else {
		closestNote.Hit = true
	}
	s.hit(tier, offset, now)
}

func (s *Session) release(lane int, now time.Duration) {
	for _, note := range s.Notes {
		if note.Lane != lane || !note.Holding() {
			continue
		}
		if abs(note.TimeEnd-now) >= score.OkWindow {
			continue
		}
		offset := now - note.TimeEnd
		tier := score.Judge(offset)
		note.TailJudgement = tier
		note.Completed = true
		s.hit(tier, offset, now)
		return
	}
}

// Letting go of a long note before its end breaks it
func (s *Session) checkHolds(now time.Duration) {
	for _, note := range s.Notes {
		if !note.Holding() || now < note.Time || now >= note.TimeEnd {
			continue
		}
		if s.held[note.Lane] {
			continue
		}
		note.HoldBroken = true
		note.Completed = true
		note.TailJudgement = game.Miss
		s.miss(1, now)
	}
}

func (s *Session) sweep(now time.Duration) {
	for _, note := range s.Notes {
		if note.Resolved() {
			continue
		}
		switch {
		case !note.Long:
			if note.Time-now < -score.OkWindow {
				note.Missed = true
				s.miss(1, now)
			}
		case !note.HeadHit:
			// The head and the tail are both forfeited
			if note.Time-now < -score.OkWindow {
				note.Missed = true
				note.HeadJudgement = game.Miss
				note.TailJudgement = game.Miss
				s.miss(2, now)
			}
		default:
			if note.TimeEnd-now < -score.OkWindow {
				note.TailJudgement = game.Miss
				note.Completed = true
				s.miss(1, now)
			}
		}
	}
}

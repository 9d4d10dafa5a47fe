package play

import (
	"sort"
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
	"git.lost.host/meutraa/lanes/internal/score"
)

// Replay judges recorded inputs against a fresh copy of the chart.
//
// Instead of stepping frame by frame, the session is only updated at the
// times its state can change: at every input, at the start and end of every
// note, and just past every miss deadline. Frames are not recorded, so a miss
// that was resolved in the same frame as a hit may land on the other side
// of it. The score and counts always match, the combo may not.
func Replay(chart *game.Chart, inputs []game.Input) *Session {
	s := NewSession(chart, nil)

	ins := append([]game.Input(nil), inputs...)
	sort.SliceStable(ins, func(a, b int) bool { return ins[a].Time < ins[b].Time })

	late := score.OkWindow + 1
	times := make([]time.Duration, 0, len(ins)+4*len(s.Notes)+1)
	for _, input := range ins {
		times = append(times, input.Time)
	}
	for _, n := range s.Notes {
		times = append(times, n.Time, n.Time+late, n.TimeEnd, n.TimeEnd+late)
	}
	times = append(times, chart.Length()+late)
	sort.Slice(times, func(a, b int) bool { return times[a] < times[b] })

	i := 0
	for j, t := range times {
		if j > 0 && times[j-1] == t {
			continue
		}
		start := i
		for i < len(ins) && ins[i].Time == t {
			i++
		}
		s.Update(ins[start:i], t)
	}
	return s
}

// Rescore recomputes a stored play from its inputs, keeping the max combo
// that was recorded when it was played.
func Rescore(chart *game.Chart, h score.History) score.Result {
	r := Replay(chart, h.Inputs).Result()
	r.MaxCombo = h.Result.MaxCombo
	return r
}

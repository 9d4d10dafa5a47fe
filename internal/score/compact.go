package score

import (
	"sort"
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
)

// InputsCompact is the stored form of the inputs of a single lane.
type InputsCompact struct {
	Index    int
	Presses  []time.Duration
	Releases []time.Duration
	Paused   []int `json:",omitempty"` // Positions in the lane's sequence
}

func compactInputs(inputs []game.Input) []InputsCompact {
	colCount := 0
	for _, i := range inputs {
		if i.Lane >= colCount {
			colCount = i.Lane + 1
		}
	}
	ins := make([]InputsCompact, colCount)
	for index := range ins {
		ins[index] = InputsCompact{Index: index, Presses: []time.Duration{}, Releases: []time.Duration{}}
	}
	for _, i := range inputs {
		if i.Lane < 0 {
			continue
		}
		lane := &ins[i.Lane]
		if i.Paused {
			lane.Paused = append(lane.Paused, len(lane.Presses)+len(lane.Releases))
		}
		if i.Action == game.Release {
			lane.Releases = append(lane.Releases, i.Time)
		} else {
			lane.Presses = append(lane.Presses, i.Time)
		}
	}
	return ins
}

// Inputs are ordered by time. Lanes alternate between presses and releases,
// so a press and a release of one lane at the same time are ordered by
// whether the lane was held at that point.
func uncompactInputs(inputs []InputsCompact) []game.Input {
	ins := []game.Input{}
	for _, i := range inputs {
		paused := map[int]bool{}
		for _, n := range i.Paused {
			paused[n] = true
		}
		held := false
		p, r := 0, 0
		for p < len(i.Presses) || r < len(i.Releases) {
			n := p + r
			press := r >= len(i.Releases) ||
				(p < len(i.Presses) && (i.Presses[p] < i.Releases[r] || (i.Presses[p] == i.Releases[r] && !held)))
			if press {
				ins = append(ins, game.Input{Lane: i.Index, Action: game.Press, Time: i.Presses[p], Paused: paused[n]})
				p++
			} else {
				ins = append(ins, game.Input{Lane: i.Index, Action: game.Release, Time: i.Releases[r], Paused: paused[n]})
				r++
			}
			held = press
		}
	}
	sort.SliceStable(ins, func(a, b int) bool { return ins[a].Time < ins[b].Time })
	return ins
}

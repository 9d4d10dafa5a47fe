package score

import (
	"testing"
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
)

type compactTest struct {
	Inputs  []game.Input
	Compact []InputsCompact
}

var compactTests = []compactTest{
	{Inputs: []game.Input{}, Compact: []InputsCompact{}},
	{
		Inputs: []game.Input{
			{Lane: 0, Action: game.Press, Time: 100},
			{Lane: 3, Action: game.Press, Time: 200},
			{Lane: 0, Action: game.Release, Time: 250},
		},
		Compact: []InputsCompact{
			{Index: 0, Presses: []time.Duration{100}, Releases: []time.Duration{250}},
			{Index: 1, Presses: []time.Duration{}, Releases: []time.Duration{}},
			{Index: 2, Presses: []time.Duration{}, Releases: []time.Duration{}},
			{Index: 3, Presses: []time.Duration{200}, Releases: []time.Duration{}},
		},
	},
	{
		Inputs: []game.Input{
			{Lane: 1, Action: game.Press, Time: 1},
			{Lane: 1, Action: game.Release, Time: 2},
			{Lane: 1, Action: game.Press, Time: 2},
			{Lane: 1, Action: game.Release, Time: 3},
		},
		Compact: []InputsCompact{
			{Index: 0, Presses: []time.Duration{}, Releases: []time.Duration{}},
			{Index: 1, Presses: []time.Duration{1, 2}, Releases: []time.Duration{2, 3}},
		},
	},
	{
		Inputs: []game.Input{
			{Lane: 0, Action: game.Press, Time: 5},
			{Lane: 0, Action: game.Release, Time: 5},
		},
		Compact: []InputsCompact{
			{Index: 0, Presses: []time.Duration{5}, Releases: []time.Duration{5}},
		},
	},
	{
		// Let go and pressed again while paused
		Inputs: []game.Input{
			{Lane: 0, Action: game.Press, Time: 10},
			{Lane: 0, Action: game.Release, Time: 40, Paused: true},
			{Lane: 0, Action: game.Press, Time: 40, Paused: true},
			{Lane: 0, Action: game.Release, Time: 90},
		},
		Compact: []InputsCompact{
			{Index: 0, Presses: []time.Duration{10, 40}, Releases: []time.Duration{40, 90}, Paused: []int{1, 2}},
		},
	},
}

func equalInts(p, q []int) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

func equalDurations(p, q []time.Duration) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

func TestCompactInputs(t *testing.T) {
	equal := func(p, q []InputsCompact) bool {
		if len(p) != len(q) {
			return false
		}
		for i := 0; i < len(p); i++ {
			pi, qi := p[i], q[i]
			if pi.Index != qi.Index || !equalDurations(pi.Presses, qi.Presses) || !equalDurations(pi.Releases, qi.Releases) || !equalInts(pi.Paused, qi.Paused) {
				return false
			}
		}
		return true
	}

	for _, test := range compactTests {
		out := compactInputs(test.Inputs)
		if !equal(out, test.Compact) {
			t.Log("out     ", out)
			t.Log("expected", test.Compact)
			t.Fail()
		}
	}
}

func TestUncompactInputs(t *testing.T) {
	equal := func(p, q []game.Input) bool {
		if len(p) != len(q) {
			return false
		}
		for i := 0; i < len(p); i++ {
			if p[i] != q[i] {
				return false
			}
		}
		return true
	}

	for _, test := range compactTests {
		out := uncompactInputs(test.Compact)
		if !equal(out, test.Inputs) {
			t.Log("in      ", test.Compact)
			t.Log("out     ", out)
			t.Log("expected", test.Inputs)
			t.Fail()
		}
	}
}

package score

import (
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
)

type Window struct {
	Tier game.Tier
	Time time.Duration // Inclusive upper bound of the absolute offset
}

// Windows are checked in order, the first one that contains the offset wins.
var Windows = []Window{
	{Tier: game.Perfect, Time: 40 * time.Millisecond},
	{Tier: game.Great, Time: 75 * time.Millisecond},
	{Tier: game.Good, Time: 110 * time.Millisecond},
	{Tier: game.Ok, Time: 135 * time.Millisecond},
}

// OkWindow is the widest window. Notes further away than this cannot be hit.
var OkWindow = Windows[len(Windows)-1].Time

func abs(x time.Duration) time.Duration {
	if x < 0 {
		return -x
	}
	return x
}

// Judge classifies an absolute timing offset.
func Judge(offset time.Duration) game.Tier {
	offset = abs(offset)
	for _, w := range Windows {
		if offset <= w.Time {
			return w.Tier
		}
	}
	return game.Miss
}

// Accuracy is the weighted judgement score as a percentage of the best
// possible score for the same number of judgements.
func Accuracy(c game.HitCounts) float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	weighted := game.Perfect.Value()*int64(c.Perfect) +
		game.Great.Value()*int64(c.Great) +
		game.Good.Value()*int64(c.Good) +
		game.Ok.Value()*int64(c.Ok)
	return float64(weighted) / float64(game.Perfect.Value()*int64(total)) * 100
}

type Grade string

const (
	SS Grade = "SS"
	S  Grade = "S"
	A  Grade = "A"
	B  Grade = "B"
	C  Grade = "C"
	D  Grade = "D"
)

func GradeFor(accuracy float64, misses int) Grade {
	switch {
	case accuracy >= 100 && misses == 0:
		return SS
	case accuracy >= 95 && misses == 0:
		return S
	case accuracy >= 90:
		return A
	case accuracy >= 80:
		return B
	case accuracy >= 70:
		return C
	}
	return D
}

type Result struct {
	Score    int64
	MaxCombo int
	Counts   game.HitCounts
	Accuracy float64
	Grade    Grade
}

func NewResult(score int64, maxCombo int, counts game.HitCounts) Result {
	accuracy := Accuracy(counts)
	return Result{
		Score:    score,
		MaxCombo: maxCombo,
		Counts:   counts,
		Accuracy: accuracy,
		Grade:    GradeFor(accuracy, counts.Miss),
	}
}

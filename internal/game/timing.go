package game

import "sort"

const (
	DefaultBeatLength = 500.0
	DefaultVelocity   = 1.0
)

// TimingPoint is a resolved timing point. Times and beat lengths are in
// milliseconds, as they are written in the chart.
type TimingPoint struct {
	Time       float64
	BeatLength float64
	Velocity   float64
}

type TimingPoints []TimingPoint

// NewTimingPoint resolves an encoded timing point value. A positive value is
// a beat length, a negative one a velocity multiplier of -100/value relative
// to the previous beat length.
func NewTimingPoint(time, value, previousBeatLength float64) TimingPoint {
	if value > 0 {
		return TimingPoint{Time: time, BeatLength: value, Velocity: 1}
	}
	tp := TimingPoint{Time: time, BeatLength: previousBeatLength, Velocity: DefaultVelocity}
	if value < 0 {
		tp.Velocity = -100.0 / value
	}
	return tp
}

// At returns the beat length and velocity active at t milliseconds.
func (tps TimingPoints) At(t float64) (float64, float64) {
	// Last point with Time <= t
	i := sort.Search(len(tps), func(i int) bool { return tps[i].Time > t })
	if i == 0 {
		return DefaultBeatLength, DefaultVelocity
	}
	tp := tps[i-1]
	return tp.BeatLength, tp.Velocity
}

func (tps TimingPoints) Sort() {
	sort.SliceStable(tps, func(i, j int) bool { return tps[i].Time < tps[j].Time })
}

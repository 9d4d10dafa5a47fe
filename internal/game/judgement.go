package game

import "strings"

// Tier is the classification of a single judgement event.
// The zero value means nothing was judged yet.
type Tier uint8

const (
	Unjudged Tier = iota
	Perfect
	Great
	Good
	Ok
	Miss
)

var tierNames = [...]string{
	Unjudged: "",
	Perfect:  "PERFECT",
	Great:    "GREAT",
	Good:     "GOOD",
	Ok:       "OK",
	Miss:     "MISS",
}

var tierValues = [...]int64{
	Perfect: 300,
	Great:   200,
	Good:    100,
	Ok:      50,
	Miss:    0,
}

// Tiers lists every judged tier, best first.
var Tiers = []Tier{Perfect, Great, Good, Ok, Miss}

func (t Tier) String() string {
	if int(t) < len(tierNames) {
		return tierNames[t]
	}
	return "UNKNOWN"
}

// Value is the score awarded for a judgement of this tier.
func (t Tier) Value() int64 {
	if int(t) < len(tierValues) {
		return tierValues[t]
	}
	return 0
}

func ParseTier(s string) (Tier, bool) {
	for i, name := range tierNames {
		if i != int(Unjudged) && strings.EqualFold(name, s) {
			return Tier(i), true
		}
	}
	return Unjudged, false
}

type HitCounts struct {
	Perfect int
	Great   int
	Good    int
	Ok      int
	Miss    int
}

func (c *HitCounts) Add(t Tier, n int) {
	switch t {
	case Perfect:
		c.Perfect += n
	case Great:
		c.Great += n
	case Good:
		c.Good += n
	case Ok:
		c.Ok += n
	case Miss:
		c.Miss += n
	}
}

func (c HitCounts) Get(t Tier) int {
	switch t {
	case Perfect:
		return c.Perfect
	case Great:
		return c.Great
	case Good:
		return c.Good
	case Ok:
		return c.Ok
	case Miss:
		return c.Miss
	}
	return 0
}

func (c HitCounts) Total() int {
	return c.Perfect + c.Great + c.Good + c.Ok + c.Miss
}

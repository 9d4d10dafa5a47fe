package game

import "time"

type Action uint8

const (
	Press Action = iota
	Release
)

func (a Action) String() string {
	if a == Release {
		return "release"
	}
	return "press"
}

// Input is a single lane key transition, stamped with the frame time it was
// observed at.
type Input struct {
	Lane   int
	Action Action
	Time   time.Duration
	Paused bool // Seen while paused, it moves the key but judges nothing
}

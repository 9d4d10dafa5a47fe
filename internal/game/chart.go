package game

import "time"

type Metadata struct {
	Title   string
	Artist  string
	Creator string
	Version string
}

type Chart struct {
	Metadata         Metadata
	AudioFile        string
	Background       string // Empty when there is no usable background image
	SliderMultiplier float64
	KeyCount         int
	TimingPoints     TimingPoints
	Notes            []*Note
	Sum              string // Hash of the chart source, used to key scores

	NoteCount int64
	HoldCount int64
}

// Length is the time at which the last note ends.
func (c *Chart) Length() time.Duration {
	var end time.Duration
	for _, n := range c.Notes {
		if n.TimeEnd > end {
			end = n.TimeEnd
		}
	}
	return end
}

// CopyNotes returns fresh, unjudged copies of the chart notes.
func (c *Chart) CopyNotes() []*Note {
	nn := make([]*Note, len(c.Notes))
	for i, n := range c.Notes {
		nnn := *n
		nnn.Reset()
		nn[i] = &nnn
	}
	return nn
}

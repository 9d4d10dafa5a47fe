package audio

import (
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
)

// Syncer keeps the slider loop of every long note in step with its hold
// state. It is driven once per frame after the notes were judged.
type Syncer struct {
	player Player
	loops  map[*game.Note]Handle
}

func NewSyncer(player Player) *Syncer {
	if nil == player {
		player = NopPlayer{}
	}
	return &Syncer{player: player, loops: map[*game.Note]Handle{}}
}

func wantsLoop(n *game.Note, now time.Duration) bool {
	return n.Holding() && now >= n.Time && now < n.TimeEnd
}

func (s *Syncer) Sync(notes []*game.Note, now time.Duration) {
	for _, n := range notes {
		if !n.Long {
			continue
		}
		desired := wantsLoop(n, now)
		if desired && !n.SliderSoundPlaying {
			s.loops[n] = s.player.StartLoop(n.Lane)
			n.SliderSoundPlaying = true
		} else if !desired && n.SliderSoundPlaying {
			if h, ok := s.loops[n]; ok {
				s.player.StopLoop(h)
				delete(s.loops, n)
			}
			n.SliderSoundPlaying = false
		}
	}
}

// StopAll silences every loop, whatever the notes think is playing. Loops
// that are still wanted start again on the next Sync.
func (s *Syncer) StopAll(notes []*game.Note) {
	s.player.StopAll()
	for _, n := range notes {
		n.SliderSoundPlaying = false
	}
	s.loops = map[*game.Note]Handle{}
}

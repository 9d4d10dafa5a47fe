package audio

// Handle identifies a playing loop.
type Handle int

// Player is the sound effect side of the game. Every call returns
// immediately, failures are logged and played as silence.
type Player interface {
	PlayHit()
	StartLoop(lane int) Handle
	StopLoop(h Handle)
	StopAll()
}

// NopPlayer plays nothing.
type NopPlayer struct{}

func (NopPlayer) PlayHit()             {}
func (NopPlayer) StartLoop(int) Handle { return 0 }
func (NopPlayer) StopLoop(Handle)      {}
func (NopPlayer) StopAll()             {}

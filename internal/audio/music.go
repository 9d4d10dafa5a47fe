package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
)

// Music is the song of a chart.
type Music struct {
	streamer beep.StreamSeekCloser
	ctrl     *beep.Ctrl
	Format   beep.Format
}

func decode(path string, f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		return vorbis.Decode(f)
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	}
	return nil, beep.Format{}, fmt.Errorf("unsupported audio format %v", filepath.Ext(path))
}

// OpenMusic decodes the song and initialises the speaker at its sample rate.
// The song starts paused.
func OpenMusic(path string) (*Music, error) {
	f, err := os.Open(path)
	if nil != err {
		return nil, fmt.Errorf("unable to open audio: %w", err)
	}
	streamer, format, err := decode(path, f)
	if nil != err {
		f.Close()
		return nil, fmt.Errorf("unable to decode audio: %w", err)
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/60)); nil != err {
		streamer.Close()
		return nil, fmt.Errorf("unable to open audio device: %w", err)
	}

	m := &Music{
		streamer: streamer,
		ctrl:     &beep.Ctrl{Streamer: streamer, Paused: true},
		Format:   format,
	}
	speaker.Play(m.ctrl)
	return m, nil
}

func (m *Music) Duration() time.Duration {
	return m.Format.SampleRate.D(m.streamer.Len())
}

func (m *Music) SetPaused(paused bool) {
	speaker.Lock()
	m.ctrl.Paused = paused
	speaker.Unlock()
}

// Play starts the song after delay, without blocking.
func (m *Music) Play(delay time.Duration) {
	time.AfterFunc(delay, func() {
		m.SetPaused(false)
	})
}

func (m *Music) Close() error {
	speaker.Lock()
	m.ctrl.Streamer = nil
	speaker.Unlock()
	return m.streamer.Close()
}

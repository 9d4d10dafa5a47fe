package audio

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

const resampleQuality = 4

// BeepPlayer plays wav samples through the beep speaker. The speaker must be
// initialised before any sound is played, OpenMusic does that.
type BeepPlayer struct {
	hit    *beep.Buffer
	slider *beep.Buffer

	mu    sync.Mutex
	next  Handle
	loops map[Handle]*beep.Ctrl
}

// NewBeepPlayer loads the hit and slider samples, resampled to rate.
// Samples that can not be loaded are logged and stay silent.
func NewBeepPlayer(rate beep.SampleRate, hitSound, sliderSound string) *BeepPlayer {
	p := &BeepPlayer{loops: map[Handle]*beep.Ctrl{}}

	var err error
	if p.hit, err = loadSample(hitSound, rate); nil != err {
		log.Println("hit sounds will be silent:", err)
	}
	if p.slider, err = loadSample(sliderSound, rate); nil != err {
		log.Println("slider sounds will be silent:", err)
	}
	return p
}

func loadSample(path string, rate beep.SampleRate) (*beep.Buffer, error) {
	if path == "" {
		return nil, fmt.Errorf("no sample configured")
	}
	f, err := os.Open(path)
	if nil != err {
		return nil, fmt.Errorf("unable to open sample: %w", err)
	}
	streamer, format, err := wav.Decode(f)
	if nil != err {
		f.Close()
		return nil, fmt.Errorf("unable to decode sample %v: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != rate {
		s = beep.Resample(resampleQuality, format.SampleRate, rate, streamer)
	}
	buffer := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: format.NumChannels, Precision: format.Precision})
	buffer.Append(s)
	return buffer, nil
}

func (p *BeepPlayer) PlayHit() {
	if nil == p.hit {
		return
	}
	speaker.Play(p.hit.Streamer(0, p.hit.Len()))
}

func (p *BeepPlayer) StartLoop(lane int) Handle {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.next++
	h := p.next
	if nil == p.slider || p.slider.Len() == 0 {
		return h
	}

	ctrl := &beep.Ctrl{Streamer: beep.Loop(-1, p.slider.Streamer(0, p.slider.Len()))}
	p.loops[h] = ctrl
	speaker.Play(ctrl)
	return h
}

func (p *BeepPlayer) StopLoop(h Handle) {
	p.mu.Lock()
	ctrl, ok := p.loops[h]
	delete(p.loops, h)
	p.mu.Unlock()

	if ok {
		stop(ctrl)
	}
}

func (p *BeepPlayer) StopAll() {
	p.mu.Lock()
	loops := p.loops
	p.loops = map[Handle]*beep.Ctrl{}
	p.mu.Unlock()

	for _, ctrl := range loops {
		stop(ctrl)
	}
}

// A nil streamer is drained by the speaker on its next read
func stop(ctrl *beep.Ctrl) {
	speaker.Lock()
	ctrl.Streamer = nil
	speaker.Unlock()
}

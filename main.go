package main

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"time"

	"git.lost.host/meutraa/lanes/internal/audio"
	"git.lost.host/meutraa/lanes/internal/config"
	"git.lost.host/meutraa/lanes/internal/game"
	"git.lost.host/meutraa/lanes/internal/input"
	"git.lost.host/meutraa/lanes/internal/parser"
	"git.lost.host/meutraa/lanes/internal/play"
	"git.lost.host/meutraa/lanes/internal/render"
	"git.lost.host/meutraa/lanes/internal/score"
	"git.lost.host/meutraa/lanes/internal/theme"
	"github.com/eiannone/keyboard"
)

func main() {
	if err := run(os.Args[1:]); nil != err {
		log.SetOutput(os.Stderr)
		log.Fatalln(err)
	}
}

func run(args []string) error {
	opts, err := config.Parse(args)
	if nil != err {
		return err
	}

	// The terminal belongs to the playfield while playing
	logFile, err := os.OpenFile(opts.Log, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if nil != err {
		return fmt.Errorf("unable to open log file: %w", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	for _, dir := range parser.ImportArchives(opts.Import, opts.Beatmaps) {
		fmt.Println("Imported", dir)
	}

	keyChannel, err := keyboard.GetKeys(128)
	if nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}
	defer func() {
		if err := keyboard.Close(); nil != err {
			log.Println("unable to close keyboard", err)
		}
	}()

	chartFile, err := selectChart(opts.Chart, keyChannel)
	if nil != err {
		return err
	}

	// Ensure our Default implementations are used as interfaces
	var psr parser.Parser = &parser.DefaultParser{}
	chart, err := psr.Parse(chartFile, opts.KeyCount)
	if nil != err {
		return err
	}
	bindings, err := opts.Bindings(chart.KeyCount)
	if nil != err {
		return err
	}

	log.Printf("Opening %v (%v)\n", chart.AudioFile, chartFile)
	music, err := audio.OpenMusic(chart.AudioFile)
	if nil != err {
		return err
	}
	defer music.Close()

	var player audio.Player = audio.NewBeepPlayer(music.Format.SampleRate, opts.HitSound, opts.SliderSound)
	session := play.NewSession(chart, player)
	session.SetDuration(music.Duration())

	var store *score.Store
	if store, err = score.Open(opts.Database); nil != err {
		log.Println("scores will not be saved:", err)
	} else {
		defer store.Close()
	}
	var best *score.History
	if nil != store {
		if h, ok := store.Best(chart); ok {
			best = &h
		}
	}

	events := make(chan *input.Event, 128)
	if opts.Device != "" {
		device, err := input.ReadInput(opts.Device, events)
		if nil != err {
			return err
		}
		defer device.Close()
	}

	quit, err := playChart(opts, session, music, player, bindings, keyChannel, events)
	if nil != err {
		return err
	}
	if quit {
		return nil
	}

	result := session.Result()
	if nil != store {
		store.Save(chart, result, session.Inputs, time.Now())
	}
	printResults(os.Stdout, chart, session, best)
	<-keyChannel
	return nil
}

// playChart runs the frame loop until the song finishes or the player quits.
func playChart(
	opts *config.Options,
	session *play.Session,
	music *audio.Music,
	player audio.Player,
	bindings input.Bindings,
	keyChannel <-chan keyboard.KeyEvent,
	events <-chan *input.Event,
) (bool, error) {
	var r render.Renderer = render.NewDefaultRenderer(os.Stdout, int(os.Stdout.Fd()))
	var th theme.Theme = &theme.DefaultTheme{}
	field := &render.Playfield{
		Renderer:    r,
		Theme:       th,
		Spacing:     opts.ColumnSpacing,
		BarRow:      opts.BarRow,
		ScrollSpeed: opts.ScrollSpeed,
		Reverse:     opts.Reverse,
	}
	syncer := audio.NewSyncer(player)

	if err := r.Init(); nil != err {
		return false, err
	}
	defer func() {
		// Restore the terminal state
		if err := r.Deinit(); nil != err {
			log.Println("unable to restore terminal", err)
		}
	}()
	defer syncer.StopAll(session.Notes)

	session.Clock.Start(opts.Delay)
	music.Play(opts.Delay)

	quit := false
	inputs := []game.Input{}
	r.RenderLoop(opts.FramePeriod, func(time.Time) bool {
		now := session.Clock.Now() + opts.Offset
		inputs = inputs[:0]

		for len(keyChannel) > 0 {
			key := <-keyChannel
			if nil != key.Err {
				log.Println("keyboard error", key.Err)
				continue
			}
			switch key.Key {
			case keyboard.KeyEsc, keyboard.KeyCtrlC:
				quit = true
				return false
			case keyboard.KeyEnter:
				togglePause(session, music, syncer, r, now)
				continue
			}
			if opts.Device != "" || session.Clock.Paused() {
				continue
			}
			inputs = append(inputs, terminalInputs(bindings, key)...)
		}
		for len(events) > 0 {
			if in, ok := bindings.Input(<-events); ok {
				inputs = append(inputs, in)
			}
		}

		// Keys still move while paused so holds break on resume
		if session.Clock.Paused() {
			session.Hold(inputs, now)
			return true
		}

		session.Update(inputs, now)
		syncer.Sync(session.Notes, now)
		snap := session.Snapshot(now, field.Ahead())
		field.Draw(&snap)

		return !session.Finished
	})
	return quit, nil
}

var pausedColor = color.RGBA{236, 195, 0, 255}

func togglePause(session *play.Session, music *audio.Music, syncer *audio.Syncer, r render.Renderer, now time.Duration) {
	// The music starts by itself once the delay is over
	if now < 0 {
		return
	}
	if session.Clock.Pause() {
		music.SetPaused(true)
		syncer.StopAll(session.Notes)
		r.FillColor(1, 1, pausedColor, "PAUSED")
		return
	}
	session.Clock.Resume()
	music.SetPaused(false)
	r.Fill(1, 1, "      ")
}

// terminalInputs turns a key from the terminal into lane inputs. A terminal
// only reports presses, so each one is released straight away.
func terminalInputs(bindings input.Bindings, key keyboard.KeyEvent) []game.Input {
	r := key.Rune
	if key.Key == keyboard.KeySpace {
		r = ' '
	}
	k, ok := input.KeyForRune(r)
	if !ok {
		return nil
	}
	lane := bindings.Lane(k)
	if lane < 0 {
		return nil
	}
	return []game.Input{
		{Lane: lane, Action: game.Press},
		{Lane: lane, Action: game.Release},
	}
}

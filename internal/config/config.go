package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"git.lost.host/meutraa/lanes/internal/input"
	"gopkg.in/alecthomas/kingpin.v2"
)

const Version = "0.3.0"

// MaxKeys is the widest chart the parser will produce.
const MaxKeys = 18

var defaultBindings = map[int]string{
	1:  "space",
	2:  "f,j",
	3:  "f,space,j",
	4:  "d,f,j,k",
	5:  "d,f,space,j,k",
	6:  "s,d,f,j,k,l",
	7:  "s,d,f,space,j,k,l",
	8:  "a,s,d,f,j,k,l,semicolon",
	9:  "a,s,d,f,space,j,k,l,semicolon",
	10: "a,s,d,f,v,n,j,k,l,semicolon",
}

type Options struct {
	Chart         string // .osu file or beatmap directory
	Beatmaps      string
	Import        []string
	KeyCount      int // 0 uses the chart's
	Offset        time.Duration
	Delay         time.Duration
	FramePeriod   time.Duration
	ScrollSpeed   time.Duration // Time covered by one row
	Reverse       bool
	ColumnSpacing uint
	BarRow        uint
	Device        string // evdev device, empty reads the terminal
	Database      string
	HitSound      string
	SliderSound   string
	Log           string

	overrides map[string]string
	bindings  map[int]input.Bindings
}

func Parse(args []string) (*Options, error) {
	o := &Options{}
	app := kingpin.New("lanes", "Lane based rhythm game for osu!mania charts")
	app.Version(Version)
	app.Arg("chart", ".osu chart or beatmap directory").Required().StringVar(&o.Chart)
	app.Flag("beatmaps", "Directory archives are imported into").Default("beatmaps").Short('b').StringVar(&o.Beatmaps)
	app.Flag("import", ".osz archive to import before playing").Short('i').ExistingFilesVar(&o.Import)
	app.Flag("keys", "Key count, 0 uses the chart's").Default("0").Short('k').IntVar(&o.KeyCount)
	app.Flag("offset", "Global offset").Default("0ms").Short('o').DurationVar(&o.Offset)
	app.Flag("delay", "Start delay").Default("1.5s").Short('d').DurationVar(&o.Delay)
	app.Flag("frame-period", "Frame period").Default("4ms").Short('p').DurationVar(&o.FramePeriod)
	app.Flag("scroll-speed", "Time per row, lower is faster").Default("25ms").Short('s').DurationVar(&o.ScrollSpeed)
	app.Flag("reverse", "Notes scroll downwards").Short('r').BoolVar(&o.Reverse)
	app.Flag("spacing", "Columns between keys").Default("6").Short('S').UintVar(&o.ColumnSpacing)
	app.Flag("bar-row", "Console row to render hit bar").Default("4").UintVar(&o.BarRow)
	app.Flag("device", "Keyboard event device, such as /dev/input/event3").StringVar(&o.Device)
	app.Flag("db", "Score database").Default("lanes.db").StringVar(&o.Database)
	app.Flag("hit-sound", "Hit sound sample").Default("hit.wav").StringVar(&o.HitSound)
	app.Flag("slider-sound", "Looping long note sample").Default("slider.wav").StringVar(&o.SliderSound)
	app.Flag("log", "Log file").Default("lanes.log").StringVar(&o.Log)
	app.Flag("bind", "Key bindings for a key count, such as 4=d,f,j,k").StringMapVar(&o.overrides)

	if _, err := app.Parse(args); nil != err {
		return nil, err
	}
	if err := o.validate(); nil != err {
		return nil, err
	}
	return o, nil
}

func (o *Options) validate() error {
	if o.KeyCount < 0 || o.KeyCount > MaxKeys {
		return fmt.Errorf("key count must be between 0 and %d", MaxKeys)
	}
	if o.ScrollSpeed <= 0 {
		return errors.New("scroll speed must be positive")
	}
	if o.FramePeriod <= 0 {
		return errors.New("frame period must be positive")
	}

	o.bindings = map[int]input.Bindings{}
	for k, v := range defaultBindings {
		o.bindings[k], _ = input.ParseBindings(v)
	}
	for count, v := range o.overrides {
		k, err := strconv.Atoi(count)
		if nil != err || k < 1 || k > MaxKeys {
			return fmt.Errorf("invalid key count %q in bindings", count)
		}
		b, err := input.ParseBindings(v)
		if nil != err {
			return fmt.Errorf("unable to parse %dk bindings: %w", k, err)
		}
		if len(b) != k {
			return fmt.Errorf("%dk bindings need %d keys, got %d", k, k, len(b))
		}
		o.bindings[k] = b
	}
	return nil
}

// Bindings returns the lane keys for a key count.
func (o *Options) Bindings(keyCount int) (input.Bindings, error) {
	b, ok := o.bindings[keyCount]
	if !ok {
		return nil, fmt.Errorf("no key bindings for %dk, set them with --bind", keyCount)
	}
	return b, nil
}

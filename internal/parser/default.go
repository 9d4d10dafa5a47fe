package parser

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
)

const (
	DefaultSliderMultiplier = 1.4
	DefaultKeyCount         = 4
	MaxKeyCount             = 18

	// Hit object type bits
	typeSlider = 1 << 1
	typeHold   = 1 << 7

	playfieldWidth = 512.0
)

type DefaultParser struct{}

func (p *DefaultParser) Parse(file string, keyCount int) (*game.Chart, error) {
	data, err := ioutil.ReadFile(file)
	if nil != err {
		return nil, fmt.Errorf("unable to read chart: %w", err)
	}

	chart := p.parse(string(data), keyCount, filepath.Dir(file))

	if chart.AudioFile == "" {
		return nil, fmt.Errorf("chart %v does not reference an audio file", file)
	}
	f, err := os.Open(chart.AudioFile)
	if nil != err {
		return nil, fmt.Errorf("unable to open audio: %w", err)
	}
	f.Close()

	return chart, nil
}

// ParseReader parses chart text without touching the filesystem. Audio and
// background paths are left as written in the chart.
func (p *DefaultParser) ParseReader(r io.Reader, keyCount int) (*game.Chart, error) {
	data, err := ioutil.ReadAll(r)
	if nil != err {
		return nil, fmt.Errorf("unable to read chart: %w", err)
	}
	return p.parse(string(data), keyCount, ""), nil
}

func hash(data string) string {
	sum := sha256.Sum256([]byte(data))
	return base64.StdEncoding.EncodeToString(sum[:])
}

func parseFloat(s string, def float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if nil != err || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if nil != err {
		return def
	}
	return i
}

func splitKeyVal(line string) (string, string) {
	kv := strings.SplitN(line, ":", 2)
	if len(kv) < 2 {
		return strings.TrimSpace(kv[0]), ""
	}
	return strings.TrimSpace(kv[0]), strings.TrimSpace(kv[1])
}

func ms(v float64) time.Duration {
	return time.Duration(math.Round(v * float64(time.Millisecond)))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

type hitObject struct {
	fields []string
}

func (p *DefaultParser) parse(data string, keyCount int, dir string) *game.Chart {
	str := strings.ReplaceAll(data, "\r", "")

	chart := &game.Chart{
		SliderMultiplier: DefaultSliderMultiplier,
		Sum:              hash(data),
	}
	chartKeys := 0
	background := ""
	objects := []hitObject{}
	section := ""

	for _, line := range strings.Split(str, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			section = line
			continue
		}

		switch section {
		case "[General]":
			if k, v := splitKeyVal(line); k == "AudioFilename" {
				chart.AudioFile = v
			}
		case "[Metadata]":
			k, v := splitKeyVal(line)
			switch k {
			case "Title":
				chart.Metadata.Title = v
			case "Artist":
				chart.Metadata.Artist = v
			case "Creator":
				chart.Metadata.Creator = v
			case "Version":
				chart.Metadata.Version = v
			}
		case "[Difficulty]":
			k, v := splitKeyVal(line)
			switch k {
			case "SliderMultiplier":
				chart.SliderMultiplier = parseFloat(v, DefaultSliderMultiplier)
			case "CircleSize":
				chartKeys = int(parseFloat(v, 0))
			}
		case "[Events]":
			if background == "" && strings.HasPrefix(line, "0,0,\"") {
				rest := line[len("0,0,\""):]
				if end := strings.Index(rest, "\""); end >= 0 {
					background = rest[:end]
				}
			}
		case "[TimingPoints]":
			ps := strings.Split(line, ",")
			if len(ps) < 2 {
				continue
			}
			previous := game.DefaultBeatLength
			if n := len(chart.TimingPoints); n > 0 {
				previous = chart.TimingPoints[n-1].BeatLength
			}
			chart.TimingPoints = append(chart.TimingPoints, game.NewTimingPoint(
				parseFloat(ps[0], 0),
				parseFloat(ps[1], game.DefaultBeatLength),
				previous,
			))
		case "[HitObjects]":
			objects = append(objects, hitObject{fields: strings.Split(line, ",")})
		}
	}

	chart.TimingPoints.Sort()

	if keyCount <= 0 {
		keyCount = chartKeys
		if keyCount <= 0 {
			keyCount = DefaultKeyCount
		}
	}
	chart.KeyCount = clamp(keyCount, 1, MaxKeyCount)

	if dir != "" {
		if chart.AudioFile != "" {
			chart.AudioFile = filepath.Join(dir, chart.AudioFile)
		}
		if background != "" {
			chart.Background = p.background(filepath.Join(dir, background))
		}
	} else {
		chart.Background = background
	}

	skipped := 0
	for _, object := range objects {
		note := p.note(chart, object.fields)
		if nil == note {
			skipped++
			continue
		}
		chart.Notes = append(chart.Notes, note)
		if note.Long {
			chart.HoldCount++
		} else {
			chart.NoteCount++
		}
	}
	if skipped > 0 {
		log.Printf("skipped %v malformed hit objects\n", skipped)
	}

	return chart
}

// Only formats the frontend can decode are kept
func (p *DefaultParser) background(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg":
	case "":
		log.Println("background image has no extension, skipping", path)
		return ""
	default:
		log.Println("background image format not supported, skipping", path)
		return ""
	}
	if _, err := os.Stat(path); nil != err {
		log.Println("background image not found", path)
		return ""
	}
	return path
}

// x,y,time,type,hitSound,objectParams,hitSample
func (p *DefaultParser) note(chart *game.Chart, ps []string) *game.Note {
	if len(ps) < 4 {
		return nil
	}

	x := parseFloat(ps[0], 0)
	start := parseFloat(ps[2], 0)
	kind := parseInt(ps[3], 0)

	lane := clamp(int(math.Floor(x*float64(chart.KeyCount)/playfieldWidth)), 0, chart.KeyCount-1)

	end := start
	if kind&typeHold != 0 && len(ps) > 5 {
		// endTime:hitSample
		end = parseFloat(strings.SplitN(ps[5], ":", 2)[0], 0)
	} else if kind&typeSlider != 0 && len(ps) >= 8 {
		// curve|points,slides,length
		slides := parseFloat(ps[6], 1)
		length := parseFloat(ps[7], 0)
		beatLength, velocity := chart.TimingPoints.At(start)
		end = start + p.sliderDuration(chart.SliderMultiplier, velocity, beatLength, length, slides)
	}

	return game.NewNote(lane, ms(start), ms(end))
}

func (p *DefaultParser) sliderDuration(multiplier, velocity, beatLength, length, slides float64) float64 {
	base := multiplier * 100 * velocity
	if base == 0 {
		return 0
	}
	duration := (length / base) * beatLength * slides
	if math.IsNaN(duration) || math.IsInf(duration, 0) {
		return 0
	}
	return duration
}

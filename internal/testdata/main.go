// Package testdata holds chart fixtures shared by the package tests.
package testdata

import (
	"io/ioutil"
	"path/filepath"
)

// Chart is a small 4 key chart. It has one uninherited and one inherited
// timing point, a tap on every lane, a hold note and a slider.
const Chart = `osu file format v14

[General]
AudioFilename: audio.mp3
AudioLeadIn: 0
Mode: 3

[Metadata]
Title:Fixture
Artist:Nobody
Creator:meutraa
Version:Normal

[Difficulty]
HPDrainRate:8
CircleSize:4
OverallDifficulty:8
SliderMultiplier:1.4

[Events]
//Background and Video events
0,0,"bg.jpg",0,0

[TimingPoints]
0,500,4,2,0,100,1,0
4000,-50,4,2,0,100,0,0

[HitObjects]
64,192,1000,1,0,0:0:0:0:
192,192,1500,1,0,0:0:0:0:
320,192,2000,1,0,0:0:0:0:
448,192,2500,1,0,0:0:0:0:
64,192,3000,128,0,4000:0:0:0:0:
192,192,4500,2,0,B|200:200,1,140
`

// Write puts the chart and an empty audio file into dir and returns the
// chart path.
func Write(dir, chart string) (string, error) {
	p := filepath.Join(dir, "chart.osu")
	if err := ioutil.WriteFile(p, []byte(chart), 0o644); nil != err {
		return "", err
	}
	if err := ioutil.WriteFile(filepath.Join(dir, "audio.mp3"), nil, 0o644); nil != err {
		return "", err
	}
	return p, nil
}

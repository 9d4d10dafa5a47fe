package config

import (
	"reflect"
	"testing"
	"time"

	"git.lost.host/meutraa/lanes/internal/input"
)

func TestDefaults(t *testing.T) {
	o, err := Parse([]string{"song.osu"})
	if nil != err {
		t.Fatal(err)
	}
	if o.Chart != "song.osu" || o.KeyCount != 0 || o.Delay != 1500*time.Millisecond ||
		o.ScrollSpeed != 25*time.Millisecond || o.Reverse || o.Device != "" ||
		o.Database != "lanes.db" || o.HitSound != "hit.wav" || o.SliderSound != "slider.wav" {
		t.Log(o)
		t.Fail()
	}
	b, err := o.Bindings(4)
	if nil != err || !reflect.DeepEqual(b, input.Bindings{input.KeyD, input.KeyF, input.KeyJ, input.KeyK}) {
		t.Log(b, err)
		t.Fail()
	}
}

func TestDefaultBindingsValid(t *testing.T) {
	for k, v := range defaultBindings {
		b, err := input.ParseBindings(v)
		if nil != err || len(b) != k {
			t.Log(k, v, b, err)
			t.Fail()
		}
	}
}

func TestFlags(t *testing.T) {
	o, err := Parse([]string{
		"--keys", "7", "--offset=-20ms", "--reverse", "-s", "10ms",
		"--device", "/dev/input/event3", "--bind", "7=a,s,d,space,j,k,l",
		"--bind", "2=left,right", "maps",
	})
	if nil != err {
		t.Fatal(err)
	}
	if o.KeyCount != 7 || o.Offset != -20*time.Millisecond || !o.Reverse ||
		o.ScrollSpeed != 10*time.Millisecond || o.Device != "/dev/input/event3" || o.Chart != "maps" {
		t.Log(o)
		t.Fail()
	}
	b, err := o.Bindings(7)
	if nil != err || b.String() != "a,s,d,space,j,k,l" {
		t.Log(b, err)
		t.Fail()
	}
	b, err = o.Bindings(2)
	if nil != err || b.String() != "left,right" {
		t.Log(b, err)
		t.Fail()
	}
}

var invalidArgs = map[string][]string{
	"no chart":        {},
	"too many keys":   {"--keys", "19", "a.osu"},
	"negative keys":   {"--keys=-1", "a.osu"},
	"zero scroll":     {"--scroll-speed", "0s", "a.osu"},
	"zero frame":      {"--frame-period", "0s", "a.osu"},
	"unknown key":     {"--bind", "2=f,hyper", "a.osu"},
	"wrong length":    {"--bind", "4=d,f,j", "a.osu"},
	"bad count":       {"--bind", "four=d,f,j,k", "a.osu"},
	"duplicate key":   {"--bind", "2=f,f", "a.osu"},
	"missing archive": {"--import", "/no/such/archive.osz", "a.osu"},
}

func TestInvalid(t *testing.T) {
	for name, args := range invalidArgs {
		if _, err := Parse(args); nil == err {
			t.Log("expected error for", name, args)
			t.Fail()
		}
	}
}

func TestNoBindings(t *testing.T) {
	o, err := Parse([]string{"a.osu"})
	if nil != err {
		t.Fatal(err)
	}
	if _, err := o.Bindings(18); nil == err {
		t.Fail()
	}
}

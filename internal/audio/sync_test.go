package audio

import (
	"reflect"
	"testing"
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
)

type command struct {
	Name   string
	Lane   int
	Handle Handle
}

type recorder struct {
	next     Handle
	commands []command
}

func (r *recorder) PlayHit() {
	r.commands = append(r.commands, command{Name: "hit"})
}

func (r *recorder) StartLoop(lane int) Handle {
	r.next++
	r.commands = append(r.commands, command{Name: "start", Lane: lane, Handle: r.next})
	return r.next
}

func (r *recorder) StopLoop(h Handle) {
	r.commands = append(r.commands, command{Name: "stop", Handle: h})
}

func (r *recorder) StopAll() {
	r.commands = append(r.commands, command{Name: "stopall"})
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

func TestSyncStartsAndStops(t *testing.T) {
	r := &recorder{}
	s := NewSyncer(r)
	n := game.NewNote(2, ms(1000), ms(2000))
	tap := game.NewNote(1, ms(1000), ms(1000))
	notes := []*game.Note{n, tap}

	s.Sync(notes, ms(900))
	n.HeadHit = true
	tap.Hit = true
	s.Sync(notes, ms(990))
	s.Sync(notes, ms(1000))
	s.Sync(notes, ms(1500))
	if !n.SliderSoundPlaying {
		t.Fatal("loop not playing")
	}
	n.Completed = true
	s.Sync(notes, ms(1990))
	s.Sync(notes, ms(2100))

	expected := []command{
		{Name: "start", Lane: 2, Handle: 1},
		{Name: "stop", Handle: 1},
	}
	if !reflect.DeepEqual(r.commands, expected) || n.SliderSoundPlaying {
		t.Log(r.commands)
		t.Fail()
	}
}

func TestSyncStopsAtEnd(t *testing.T) {
	r := &recorder{}
	s := NewSyncer(r)
	n := game.NewNote(0, ms(1000), ms(2000))
	n.HeadHit = true
	notes := []*game.Note{n}

	s.Sync(notes, ms(1999))
	s.Sync(notes, ms(2000))
	expected := []command{
		{Name: "start", Lane: 0, Handle: 1},
		{Name: "stop", Handle: 1},
	}
	if !reflect.DeepEqual(r.commands, expected) {
		t.Log(r.commands)
		t.Fail()
	}
}

func TestSyncBrokenHold(t *testing.T) {
	r := &recorder{}
	s := NewSyncer(r)
	a := game.NewNote(0, ms(1000), ms(2000))
	b := game.NewNote(1, ms(1000), ms(3000))
	a.HeadHit, b.HeadHit = true, true
	notes := []*game.Note{a, b}

	s.Sync(notes, ms(1100))
	b.HoldBroken = true
	b.Completed = true
	s.Sync(notes, ms(1200))
	s.Sync(notes, ms(1300))

	expected := []command{
		{Name: "start", Lane: 0, Handle: 1},
		{Name: "start", Lane: 1, Handle: 2},
		{Name: "stop", Handle: 2},
	}
	if !reflect.DeepEqual(r.commands, expected) {
		t.Log(r.commands)
		t.Fail()
	}
}

func TestStopAll(t *testing.T) {
	r := &recorder{}
	s := NewSyncer(r)
	n := game.NewNote(0, ms(1000), ms(2000))
	n.HeadHit = true
	notes := []*game.Note{n}

	// Stop all is sent even when nothing plays
	s.StopAll(notes)
	s.Sync(notes, ms(1100))
	s.StopAll(notes)
	if n.SliderSoundPlaying {
		t.Fatal("flag not cleared")
	}
	// Still held after a resume, so the loop comes back
	s.Sync(notes, ms(1200))

	expected := []command{
		{Name: "stopall"},
		{Name: "start", Lane: 0, Handle: 1},
		{Name: "stopall"},
		{Name: "start", Lane: 0, Handle: 2},
	}
	if !reflect.DeepEqual(r.commands, expected) {
		t.Log(r.commands)
		t.Fail()
	}
}

func TestNilPlayer(t *testing.T) {
	s := NewSyncer(nil)
	n := game.NewNote(0, ms(1000), ms(2000))
	n.HeadHit = true
	s.Sync([]*game.Note{n}, ms(1500))
	s.StopAll([]*game.Note{n})
}

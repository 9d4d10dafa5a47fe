package input

import (
	"fmt"
	"strings"

	"git.lost.host/meutraa/lanes/internal/game"
)

// Key is a physical key that can be bound to a lane.
type Key uint8

const (
	KeyNone Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeySpace
	KeySemicolon
	KeyApostrophe
	KeyComma
	KeyDot
	KeySlash
	KeyLeftBrace
	KeyRightBrace
	KeyLeftShift
	KeyRightShift
	KeyLeftCtrl
	KeyLeftAlt
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEsc
	KeyEnter
	keyCount
)

type keyInfo struct {
	name string
	code uint16 // linux/input-event-codes.h
	r    rune   // What the terminal reports, 0 if it can not
}

// The one place key names live, both for parsing and printing
var keyTable = [keyCount]keyInfo{
	KeyNone:       {"none", 0, 0},
	KeyA:          {"a", 30, 'a'},
	KeyB:          {"b", 48, 'b'},
	KeyC:          {"c", 46, 'c'},
	KeyD:          {"d", 32, 'd'},
	KeyE:          {"e", 18, 'e'},
	KeyF:          {"f", 33, 'f'},
	KeyG:          {"g", 34, 'g'},
	KeyH:          {"h", 35, 'h'},
	KeyI:          {"i", 23, 'i'},
	KeyJ:          {"j", 36, 'j'},
	KeyK:          {"k", 37, 'k'},
	KeyL:          {"l", 38, 'l'},
	KeyM:          {"m", 50, 'm'},
	KeyN:          {"n", 49, 'n'},
	KeyO:          {"o", 24, 'o'},
	KeyP:          {"p", 25, 'p'},
	KeyQ:          {"q", 16, 'q'},
	KeyR:          {"r", 19, 'r'},
	KeyS:          {"s", 31, 's'},
	KeyT:          {"t", 20, 't'},
	KeyU:          {"u", 22, 'u'},
	KeyV:          {"v", 47, 'v'},
	KeyW:          {"w", 17, 'w'},
	KeyX:          {"x", 45, 'x'},
	KeyY:          {"y", 21, 'y'},
	KeyZ:          {"z", 44, 'z'},
	Key0:          {"0", 11, '0'},
	Key1:          {"1", 2, '1'},
	Key2:          {"2", 3, '2'},
	Key3:          {"3", 4, '3'},
	Key4:          {"4", 5, '4'},
	Key5:          {"5", 6, '5'},
	Key6:          {"6", 7, '6'},
	Key7:          {"7", 8, '7'},
	Key8:          {"8", 9, '8'},
	Key9:          {"9", 10, '9'},
	KeySpace:      {"space", 57, ' '},
	KeySemicolon:  {"semicolon", 39, ';'},
	KeyApostrophe: {"apostrophe", 40, '\''},
	KeyComma:      {"comma", 51, ','},
	KeyDot:        {"dot", 52, '.'},
	KeySlash:      {"slash", 53, '/'},
	KeyLeftBrace:  {"leftbrace", 26, '['},
	KeyRightBrace: {"rightbrace", 27, ']'},
	KeyLeftShift:  {"leftshift", 42, 0},
	KeyRightShift: {"rightshift", 54, 0},
	KeyLeftCtrl:   {"leftctrl", 29, 0},
	KeyLeftAlt:    {"leftalt", 56, 0},
	KeyUp:         {"up", 103, 0},
	KeyDown:       {"down", 108, 0},
	KeyLeft:       {"left", 105, 0},
	KeyRight:      {"right", 106, 0},
	KeyEsc:        {"esc", 1, 0},
	KeyEnter:      {"enter", 28, 0},
}

var (
	keysByName = map[string]Key{}
	keysByCode = map[uint16]Key{}
	keysByRune = map[rune]Key{}
)

func init() {
	for i, info := range keyTable {
		k := Key(i)
		keysByName[info.name] = k
		if k == KeyNone {
			continue
		}
		keysByCode[info.code] = k
		if info.r != 0 {
			keysByRune[info.r] = k
		}
	}
}

func (k Key) String() string {
	if k < keyCount {
		return keyTable[k].name
	}
	return fmt.Sprintf("key(%d)", uint8(k))
}

// Code is the evdev key code.
func (k Key) Code() uint16 {
	if k < keyCount {
		return keyTable[k].code
	}
	return 0
}

// Rune is the character a terminal reports for the key, or 0.
func (k Key) Rune() rune {
	if k < keyCount {
		return keyTable[k].r
	}
	return 0
}

func ParseKey(name string) (Key, error) {
	k, ok := keysByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok || k == KeyNone {
		return KeyNone, fmt.Errorf("unknown key %q", name)
	}
	return k, nil
}

func KeyForCode(code uint16) (Key, bool) {
	k, ok := keysByCode[code]
	return k, ok
}

func KeyForRune(r rune) (Key, bool) {
	k, ok := keysByRune[r]
	return k, ok
}

// Bindings maps each lane, by index, to a key.
type Bindings []Key

// ParseBindings reads a comma separated list of key names.
func ParseBindings(s string) (Bindings, error) {
	b := Bindings{}
	seen := map[Key]bool{}
	for _, name := range strings.Split(s, ",") {
		k, err := ParseKey(name)
		if nil != err {
			return nil, err
		}
		if seen[k] {
			return nil, fmt.Errorf("key %v is bound twice", k)
		}
		seen[k] = true
		b = append(b, k)
	}
	return b, nil
}

func (b Bindings) String() string {
	names := make([]string, len(b))
	for i, k := range b {
		names[i] = k.String()
	}
	return strings.Join(names, ",")
}

// Lane returns the lane a key is bound to, or -1.
func (b Bindings) Lane(k Key) int {
	for i, c := range b {
		if k == c {
			return i
		}
	}
	return -1
}

// Input translates a device event into a lane input.
func (b Bindings) Input(ev *Event) (game.Input, bool) {
	if !ev.Pressed && !ev.Released {
		return game.Input{}, false
	}
	k, ok := KeyForCode(ev.Code)
	if !ok {
		return game.Input{}, false
	}
	lane := b.Lane(k)
	if lane < 0 {
		return game.Input{}, false
	}
	action := game.Press
	if ev.Released {
		action = game.Release
	}
	return game.Input{Lane: lane, Action: action}, true
}

//go:build !linux
// +build !linux

package input

import (
	"errors"
	"io"
)

func ReadInput(kbd string, events chan<- *Event) (io.Closer, error) {
	return nil, errors.New("input devices are only supported on linux")
}

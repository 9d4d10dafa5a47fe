//go:build linux
// +build linux

package input

import (
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"syscall"
	"time"
)

const evKey = 0x01

type keyEvent struct {
	Time  syscall.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// device stops its reader goroutine when closed, even one that is blocked
// on a full channel.
type device struct {
	file   *os.File
	done   chan struct{}
	exited chan struct{}
	once   sync.Once
}

func (d *device) Close() error {
	var err error
	d.once.Do(func() {
		close(d.done)
		err = d.file.Close()
	})
	return err
}

// ReadInput streams key events from an evdev device, such as
// /dev/input/event3, until the returned closer is closed.
func ReadInput(kbd string, events chan<- *Event) (io.Closer, error) {
	file, err := os.Open(kbd)
	if err != nil {
		return nil, fmt.Errorf("unable to open input device: %w", err)
	}
	d := &device{file: file, done: make(chan struct{}), exited: make(chan struct{})}
	go func() {
		defer close(d.exited)
		var ev keyEvent
		for {
			err := binary.Read(file, binary.LittleEndian, &ev)
			if nil != err {
				select {
				case <-d.done:
				default:
					log.Println(err, "unable to read keyboard input")
				}
				return
			}
			if ev.Type != evKey {
				continue
			}
			// Value 2 is key repeat
			select {
			case events <- &Event{
				Pressed:  ev.Value == 1,
				Released: ev.Value == 0,
				Code:     ev.Code,
				Time:     time.Unix(int64(ev.Time.Sec), int64(ev.Time.Usec)*1000),
			}:
			case <-d.done:
				return
			}
		}
	}()
	return d, nil
}

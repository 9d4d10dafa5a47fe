package render

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"
)

const (
	fallbackColumns = 80
	fallbackRows    = 24
)

type DefaultRenderer struct {
	out          io.Writer
	fd           int // -1 when out is not a terminal
	buffer       strings.Builder
	restoreState *term.State
	decorations  []*decoration
}

type decoration struct {
	X, Y    uint16
	Content string
	Frames  int // remaining frames until removed
}

func NewDefaultRenderer(out io.Writer, fd int) *DefaultRenderer {
	if fd >= 0 && !term.IsTerminal(fd) {
		fd = -1
	}
	return &DefaultRenderer{out: out, fd: fd}
}

func (r *DefaultRenderer) Init() error {
	if r.fd >= 0 {
		state, err := term.MakeRaw(r.fd)
		if nil != err {
			return fmt.Errorf("unable to make terminal raw: %w", err)
		}
		r.restoreState = state
	}

	_, err := fmt.Fprintf(r.out, "%s%s%s",
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[J",      // Clear the screen
	)
	return err
}

func (r *DefaultRenderer) Deinit() error {
	fmt.Fprintf(r.out, "%s%s",
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	)
	if nil == r.restoreState {
		return nil
	}
	err := term.Restore(r.fd, r.restoreState)
	r.restoreState = nil
	return err
}

func (r *DefaultRenderer) Size() (int, int) {
	if r.fd < 0 {
		return fallbackColumns, fallbackRows
	}
	w, h, err := term.GetSize(r.fd)
	if nil != err || w <= 0 || h <= 0 {
		return fallbackColumns, fallbackRows
	}
	return w, h
}

func (r *DefaultRenderer) AddDecoration(col, row uint16, content string, frames int) {
	r.decorations = append(r.decorations, &decoration{
		X:       col,
		Y:       row,
		Content: content,
		Frames:  frames,
	})
	r.Fill(row, col, content)
}

func (r *DefaultRenderer) tickDecorations() {
	nd := make([]*decoration, 0, len(r.decorations))
	for _, d := range r.decorations {
		if d.Frames == 0 {
			r.Fill(d.Y, d.X, strings.Repeat(" ", len([]rune(d.Content))))
			continue
		}
		nd = append(nd, d)
		d.Frames--
	}
	r.decorations = nd
}

// RenderLoop calls render once per period, flushing after each call,
// until it returns false.
func (r *DefaultRenderer) RenderLoop(period time.Duration, render func(now time.Time) bool) {
	for {
		now := time.Now()
		deadline := now.Add(period)

		cont := render(now)
		r.Flush()
		if !cont {
			return
		}

		time.Sleep(time.Until(deadline))
	}
}

func (r *DefaultRenderer) Fill(row, column uint16, message string) {
	r.moveTo(row, column)
	r.buffer.WriteString(message)
}

func (r *DefaultRenderer) FillColor(row, column uint16, c color.RGBA, message string) {
	r.moveTo(row, column)
	r.buffer.WriteString("\033[38;2;")
	r.writeInts(uint16(c.R), uint16(c.G), uint16(c.B))
	r.buffer.WriteByte('m')
	r.buffer.WriteString(message)
	r.buffer.WriteString("\033[0m")
}

func (r *DefaultRenderer) moveTo(row, column uint16) {
	r.buffer.WriteString("\033[")
	r.writeInts(row, column)
	r.buffer.WriteByte('H')
}

func (r *DefaultRenderer) writeInts(values ...uint16) {
	for i, v := range values {
		if i > 0 {
			r.buffer.WriteByte(';')
		}
		r.buffer.WriteString(strconv.FormatUint(uint64(v), 10))
	}
}

func (r *DefaultRenderer) Flush() error {
	r.tickDecorations()
	_, err := io.WriteString(r.out, r.buffer.String())
	r.buffer.Reset()
	return err
}

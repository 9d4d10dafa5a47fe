package render

import (
	"fmt"
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
	"git.lost.host/meutraa/lanes/internal/play"
	"git.lost.host/meutraa/lanes/internal/score"
	"git.lost.host/meutraa/lanes/internal/theme"
	"github.com/dustin/go-humanize"
)

// JudgementShown is how long the last judgement stays on screen.
const JudgementShown = 500 * time.Millisecond

// Playfield draws snapshots of a session as scrolling lanes.
type Playfield struct {
	Renderer    Renderer
	Theme       theme.Theme
	Spacing     uint
	BarRow      uint
	ScrollSpeed time.Duration // Time covered by one row
	Reverse     bool

	drawn []cell
}

type cell struct {
	row, col uint16
}

// Ahead is how far into the future the screen reaches.
func (p *Playfield) Ahead() time.Duration {
	_, h := p.Renderer.Size()
	return time.Duration(h) * p.ScrollSpeed
}

func (p *Playfield) column(lane, keyCount int) int {
	w, _ := p.Renderer.Size()
	width := (keyCount - 1) * int(p.Spacing)
	return (w-width)/2 + 1 + lane*int(p.Spacing)
}

func (p *Playfield) barRow() int {
	_, h := p.Renderer.Size()
	if p.Reverse {
		return h + 1 - int(p.BarRow)
	}
	return int(p.BarRow)
}

// row is where something distance away from the hit line is drawn.
func (p *Playfield) row(distance time.Duration) int {
	rows := int(distance / p.ScrollSpeed)
	if p.Reverse {
		return p.barRow() - rows
	}
	return p.barRow() + rows
}

func (p *Playfield) visible(row int) bool {
	_, h := p.Renderer.Size()
	return row >= 1 && row <= h
}

// clamp keeps a row at most one past either edge of the screen.
func (p *Playfield) clamp(row int) int {
	_, h := p.Renderer.Size()
	if row < 0 {
		return 0
	}
	if row > h+1 {
		return h + 1
	}
	return row
}

func (p *Playfield) put(row, col int, content string) {
	if !p.visible(row) || col < 1 {
		return
	}
	p.Renderer.Fill(uint16(row), uint16(col), content)
	p.drawn = append(p.drawn, cell{uint16(row), uint16(col)})
}

func (p *Playfield) clear() {
	for _, c := range p.drawn {
		p.Renderer.Fill(c.row, c.col, " ")
	}
	p.drawn = p.drawn[:0]
}

func (p *Playfield) Draw(s *play.Snapshot) {
	p.clear()

	bar := p.barRow()
	for lane := 0; lane < s.KeyCount; lane++ {
		held := lane < len(s.Held) && s.Held[lane]
		p.put(bar, p.column(lane, s.KeyCount), p.Theme.RenderHitField(lane, held))
	}

	for _, n := range s.Notes {
		col := p.column(n.Lane, s.KeyCount)
		switch n.State {
		case play.Hit, play.Completed:
			continue
		}
		head := n.Distance
		if n.State == play.Holding && head < 0 {
			head = 0
		}
		if n.Long {
			step := 1
			if p.Reverse {
				step = -1
			}
			from, to := p.clamp(p.row(head)), p.clamp(p.row(n.EndDistance))
			for r := from + step; r != to+step; r += step {
				if r == bar {
					continue
				}
				p.put(r, col, p.Theme.RenderHold(n.Lane, s.KeyCount, n.State))
			}
		}
		p.put(p.row(head), col, p.Theme.RenderNote(n.Lane, s.KeyCount, n.State))
	}

	p.hud(s)
}

func (p *Playfield) hud(s *play.Snapshot) {
	col := p.column(s.KeyCount-1, s.KeyCount) + int(p.Spacing) + 2
	row := p.barRow()
	if p.Reverse {
		row -= 4
	}
	p.Renderer.Fill(uint16(row), uint16(col), fmt.Sprintf("%12v", humanize.Comma(s.Score)))
	p.Renderer.Fill(uint16(row+1), uint16(col), fmt.Sprintf("%11dx", s.Combo))
	p.Renderer.Fill(uint16(row+2), uint16(col), fmt.Sprintf("%11.2f%%", score.Accuracy(s.Counts)))

	judgement := p.Theme.RenderJudgement(game.Unjudged)
	timing := ""
	if s.Last != game.Unjudged && s.Now-s.LastAt < JudgementShown {
		judgement = p.Theme.RenderJudgement(s.Last)
		if s.Last != game.Miss {
			timing = fmt.Sprintf("%+dms", s.LastOffset.Milliseconds())
		}
	}
	p.Renderer.Fill(uint16(row+3), uint16(col), "  "+judgement)
	p.Renderer.Fill(uint16(row+4), uint16(col), fmt.Sprintf("%12v", timing))
}

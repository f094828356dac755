package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/swarmpong/internal/game"
)

// World units per terminal cell. Cells are roughly twice as tall as wide, so
// the vertical scale doubles to keep the playfield square-ish on screen.
const (
	CellWidth  = 10.0
	CellHeight = 20.0
)

const PaddleChar = '█' // █

// densityRamp maps balls-per-cell to a glyph. With 100k balls a cell can hold
// thousands, so single-glyph-per-ball rendering is not an option.
var densityRamp = []struct {
	min   int
	ch    rune
	color tcell.Color
}{
	{1, '·', tcell.ColorGray},
	{2, '•', tcell.ColorSilver},
	{5, '●', tcell.ColorWhite},
	{20, '█', tcell.ColorYellow},
}

// WorldSize maps a terminal size in cells to playfield dimensions, reserving
// the scoreboard row at the top and the status row at the bottom.
func WorldSize(cols, rows int) (width, height float64) {
	fieldRows := rows - 2
	if fieldRows < 1 {
		fieldRows = 1
	}
	return float64(cols) * CellWidth, float64(fieldRows) * CellHeight
}

// Renderer draws the playfield, paddles, scoreboard and status line.
type Renderer struct {
	screen *Screen
	counts []int // balls per cell, reused across frames
	cols   int
	rows   int
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// RenderGame draws one frame of the simulation.
func (r *Renderer) RenderGame(w *game.World) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	fieldRows := screenH - 2
	if fieldRows < 1 || screenW < 1 {
		r.screen.Show()
		return
	}
	if r.cols != screenW || r.rows != fieldRows {
		r.cols, r.rows = screenW, fieldRows
		r.counts = make([]int, screenW*fieldRows)
	}
	for i := range r.counts {
		r.counts[i] = 0
	}

	width, height := w.Size()
	scaleX := float64(screenW) / width
	scaleY := float64(fieldRows) / height

	// Center dashed line
	centerX := screenW / 2
	lineStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	for y := 1; y < screenH-1; y += 2 {
		r.screen.SetCell(centerX, y, lineStyle, '|')
	}

	// Bin balls into cells, then draw the density glyphs.
	w.Balls(func(x, y float64) {
		cx := int((x + width/2) * scaleX)
		cy := int((y + height/2) * scaleY)
		if cx < 0 || cx >= r.cols || cy < 0 || cy >= r.rows {
			return
		}
		r.counts[cy*r.cols+cx]++
	})

	for cy := 0; cy < r.rows; cy++ {
		for cx := 0; cx < r.cols; cx++ {
			n := r.counts[cy*r.cols+cx]
			if n == 0 {
				continue
			}
			glyph := densityRamp[0]
			for _, d := range densityRamp {
				if n >= d.min {
					glyph = d
				}
			}
			style := tcell.StyleDefault.Foreground(glyph.color)
			r.screen.SetCell(cx, cy+1, style, glyph.ch)
		}
	}

	// Paddles
	r.renderPaddle(w, game.SidePlayer, scaleX, scaleY, tcell.ColorGreen)
	r.renderPaddle(w, game.SideOpponent, scaleX, scaleY, tcell.ColorRed)

	r.renderScoreboard(w, screenW)
	r.renderStatus(w, screenW, screenH)

	r.screen.Show()
}

func (r *Renderer) renderPaddle(w *game.World, side game.Side, scaleX, scaleY float64, color tcell.Color) {
	width, height := w.Size()
	x, y, _, ph := w.PaddleRect(side)

	cx := int((x + width/2) * scaleX)
	if cx < 0 {
		cx = 0
	}
	if cx >= r.cols {
		cx = r.cols - 1
	}

	top := int((y - ph/2 + height/2) * scaleY)
	bottom := int((y + ph/2 + height/2) * scaleY)
	if bottom <= top {
		bottom = top + 1 // at least one cell tall
	}
	if top < 0 {
		top = 0
	}
	if bottom > r.rows {
		bottom = r.rows
	}

	style := tcell.StyleDefault.Foreground(color)
	r.screen.DrawVerticalLine(cx, top+1, bottom, style, PaddleChar)
}

// renderScoreboard draws both score counters on the top row.
func (r *Renderer) renderScoreboard(w *game.World, screenW int) {
	barStyle := tcell.StyleDefault.Background(tcell.ColorDarkBlue).Foreground(tcell.ColorWhite)
	r.screen.FillRect(0, 0, screenW, 1, barStyle, ' ')

	left := fmt.Sprintf("YOU %s", w.Score(game.SidePlayer).Text)
	right := fmt.Sprintf("%s BOT", w.Score(game.SideOpponent).Text)

	centerX := screenW / 2
	r.screen.DrawText(centerX-len(left)-2, 0, left, barStyle.Bold(true))
	r.screen.SetCell(centerX, 0, barStyle, '|')
	r.screen.DrawText(centerX+3, 0, right, barStyle.Bold(true))
}

// renderStatus draws the live-ball count and launch countdown on the bottom row.
func (r *Renderer) renderStatus(w *game.World, screenW, screenH int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)

	status := fmt.Sprintf("tick: %d   balls: %d", w.Tick(), w.BallCount())
	if remaining := w.LaunchCountdown(); remaining > 0 {
		status += fmt.Sprintf("   launch in %.1fs", remaining.Seconds())
	}
	r.screen.DrawText(1, screenH-1, status, style)

	quitText := "w/s or arrows to move, 'q' to quit"
	r.screen.DrawText(screenW-len(quitText)-1, screenH-1, quitText, style)
}

package model

import (
	"github.com/gdamore/tcell/v2"
)

var (
	aliveStyle  = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	deadStyle   = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	statusStyle = tcell.StyleDefault.Reverse(true)
)

// ScreenRenderer draws cells on a tcell screen, reserving the last row for status
type ScreenRenderer struct {
	screen tcell.Screen
}

func NewScreenRenderer(screen tcell.Screen) *ScreenRenderer {
	return &ScreenRenderer{screen: screen}
}

// Viewport sizes vp to the screen, keeping its origin
func (r *ScreenRenderer) Viewport(vp Viewport) Viewport {
	w, h := r.screen.Size()
	k := vp.CellScale()
	vp.Width = w / (2 * k)
	vp.Height = max(h-1, 0) / k
	return vp
}

// Draw paints the viewport and the status line, then shows the screen
func (r *ScreenRenderer) Draw(cells CellSet, vp Viewport, status string) {
	r.screen.Clear()
	k := vp.CellScale()
	for y := range vp.Height {
		for x := range vp.Width {
			style := deadStyle
			if cells.Contains(Coord{X: vp.Origin.X + x, Y: vp.Origin.Y + y}) {
				style = aliveStyle
			}
			r.fill(x*2*k, y*k, 2*k, k, style)
		}
	}

	w, _ := r.screen.Size()
	statusRow := vp.Height * k
	col := 0
	for _, ch := range status {
		if col >= w {
			break
		}
		r.screen.SetContent(col, statusRow, ch, nil, statusStyle)
		col++
	}
	for ; col < w; col++ {
		r.screen.SetContent(col, statusRow, ' ', nil, statusStyle)
	}
	r.screen.Show()
}

func (r *ScreenRenderer) fill(col, row, w, h int, style tcell.Style) {
	for dy := range h {
		for dx := range w {
			r.screen.SetContent(col+dx, row+dy, ' ', nil, style)
		}
	}
}

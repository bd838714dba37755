package model

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	macosClearCmd = "clear"
)

// MaxScale is the largest zoom factor a viewport accepts
const MaxScale = 8

// Viewport is the window of the plane a renderer shows.
// Each cell is Scale rows tall and 2*Scale columns wide; a Scale below 1 counts as 1.
type Viewport struct {
	Origin Coord
	Width  int
	Height int
	Scale  int
}

// CellScale returns the effective zoom factor
func (v Viewport) CellScale() int {
	return min(max(v.Scale, 1), MaxScale)
}

// Zoom changes the zoom factor by delta, clamped to [1, MaxScale]
func (v Viewport) Zoom(delta int) Viewport {
	v.Scale = min(max(v.CellScale()+delta, 1), MaxScale)
	return v
}

// Contains reports whether c is inside the viewport
func (v Viewport) Contains(c Coord) bool {
	return c.X >= v.Origin.X && c.X < v.Origin.X+v.Width &&
		c.Y >= v.Origin.Y && c.Y < v.Origin.Y+v.Height
}

// CellAt maps a terminal column/row to the cell drawn there
func (v Viewport) CellAt(col, row int) Coord {
	k := v.CellScale()
	return Coord{X: v.Origin.X + floorDiv(col, 2*k), Y: v.Origin.Y + floorDiv(row, k)}
}

// Pan moves the viewport origin by d cells
func (v Viewport) Pan(d Coord) Viewport {
	v.Origin = v.Origin.Add(d)
	return v
}

// Center returns the cell in the middle of the viewport
func (v Viewport) Center() Coord {
	return Coord{X: v.Origin.X + v.Width/2, Y: v.Origin.Y + v.Height/2}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct{}

// Frame renders the viewport's cells as text, one line per row
func (r *TerminalRenderer) Frame(cells CellSet, vp Viewport) string {
	var b strings.Builder
	for y := range vp.Height {
		for x := range vp.Width {
			if cells.Contains(Coord{X: vp.Origin.X + x, Y: vp.Origin.Y + y}) {
				b.WriteString(gridPosBlock)
			} else {
				b.WriteString(gridPosEmpty)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Display renders the viewport to the terminal
func (r *TerminalRenderer) Display(cells CellSet, vp Viewport) {
	fmt.Print(r.Frame(cells, vp))
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	var cmd *exec.Cmd
	cmd = exec.Command(macosClearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}

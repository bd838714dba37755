package model

import "fmt"

// Coord identifies one cell on the unbounded plane
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns c translated by d. Overflow at the int extremes wraps.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// less orders coordinates row-major, Y first
func (c Coord) less(o Coord) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.X < o.X
}

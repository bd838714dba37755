package model

import (
	"slices"
)

// CellSet is the sparse set of live cells. Absence means dead.
type CellSet struct {
	m map[Coord]struct{}
}

// NewCellSet creates a set holding the given coordinates
func NewCellSet(coords ...Coord) CellSet {
	s := CellSet{m: make(map[Coord]struct{}, len(coords))}
	for _, c := range coords {
		s.m[c] = struct{}{}
	}
	return s
}

func newCellSetSize(hint int) CellSet {
	return CellSet{m: make(map[Coord]struct{}, hint)}
}

// Insert marks c alive
func (s *CellSet) Insert(c Coord) {
	if s.m == nil {
		s.m = make(map[Coord]struct{})
	}
	s.m[c] = struct{}{}
}

// Remove marks c dead
func (s *CellSet) Remove(c Coord) {
	delete(s.m, c)
}

// Toggle flips c and returns its new liveness
func (s *CellSet) Toggle(c Coord) bool {
	if s.Contains(c) {
		s.Remove(c)
		return false
	}
	s.Insert(c)
	return true
}

// Contains reports whether c is alive
func (s CellSet) Contains(c Coord) bool {
	_, ok := s.m[c]
	return ok
}

// Len returns the population
func (s CellSet) Len() int {
	return len(s.m)
}

// Clear removes every cell, keeping the allocated map
func (s *CellSet) Clear() {
	clear(s.m)
}

// Each calls fn for every live cell in unspecified order
func (s CellSet) Each(fn func(Coord)) {
	for c := range s.m {
		fn(c)
	}
}

// Coords returns the live cells sorted row-major
func (s CellSet) Coords() []Coord {
	out := make([]Coord, 0, len(s.m))
	for c := range s.m {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b Coord) int {
		switch {
		case a.less(b):
			return -1
		case b.less(a):
			return 1
		}
		return 0
	})
	return out
}

// Clone returns an independent copy
func (s CellSet) Clone() CellSet {
	out := newCellSetSize(len(s.m))
	for c := range s.m {
		out.m[c] = struct{}{}
	}
	return out
}

// Equal reports whether both sets hold the same cells
func (s CellSet) Equal(o CellSet) bool {
	if len(s.m) != len(o.m) {
		return false
	}
	for c := range s.m {
		if !o.Contains(c) {
			return false
		}
	}
	return true
}

// Bounds returns the inclusive bounding box of the live cells; ok is false when empty
func (s CellSet) Bounds() (minC, maxC Coord, ok bool) {
	for c := range s.m {
		if !ok {
			minC, maxC, ok = c, c, true
			continue
		}
		minC.X = min(minC.X, c.X)
		minC.Y = min(minC.Y, c.Y)
		maxC.X = max(maxC.X, c.X)
		maxC.Y = max(maxC.Y, c.Y)
	}
	return
}

// BoundingBoxSize returns the area of the bounding box
func (s CellSet) BoundingBoxSize() int {
	minC, maxC, ok := s.Bounds()
	if !ok {
		return 0
	}
	return (maxC.X - minC.X + 1) * (maxC.Y - minC.Y + 1)
}

package model

import (
	"sort"

	"github.com/pkg/errors"
)

// ErrUnknownPattern is returned by LookupPattern for unregistered names.
var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern is a named shape given as offsets from an anchor cell
type Pattern struct {
	Name    string
	Offsets []Coord
}

var (
	// Glider travels one cell diagonally (+1,+1) every four generations
	Glider = Pattern{Name: "glider", Offsets: []Coord{{0, 0}, {2, 0}, {1, 1}, {2, 1}, {1, 2}}}
	// Blinker is a period-2 oscillator
	Blinker = Pattern{Name: "blinker", Offsets: []Coord{{0, 0}, {1, 0}, {2, 0}}}
	// Block is the 2x2 still life
	Block      = Pattern{Name: "block", Offsets: []Coord{{0, 0}, {1, 0}, {0, 1}, {1, 1}}}
	RPentomino = Pattern{Name: "r-pentomino", Offsets: []Coord{{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}}}
	// LWSS is the lightweight spaceship, moving left
	LWSS = Pattern{Name: "lwss", Offsets: []Coord{
		{1, 0}, {4, 0},
		{0, 1},
		{0, 2}, {4, 2},
		{0, 3}, {1, 3}, {2, 3}, {3, 3},
	}}
)

var patterns = map[string]Pattern{}

func init() {
	for _, p := range []Pattern{Glider, Blinker, Block, RPentomino, LWSS} {
		patterns[p.Name] = p
	}
}

// LookupPattern returns the built-in pattern registered under name
func LookupPattern(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return Pattern{}, errors.Wrapf(ErrUnknownPattern, "[LookupPattern] %q", name)
	}
	return p, nil
}

// PatternNames lists the built-in pattern names, sorted
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Spawn inserts p anchored at anchor. Cells already alive are left alone.
func Spawn(p Pattern, anchor Coord, cells *CellSet) {
	for _, d := range p.Offsets {
		c := anchor.Add(d)
		if !cells.Contains(c) {
			cells.Insert(c)
		}
	}
}

// SpawnGlider spawns the canonical glider at anchor
func SpawnGlider(anchor Coord, cells *CellSet) {
	Spawn(Glider, anchor, cells)
}

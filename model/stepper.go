package model

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/sparse-gol/rules"
)

// minParallelCandidates is the candidate count below which StepParallel runs sequentially
const minParallelCandidates = 256

// Step computes the next generation of cells under rs.
// rs must already be valid; cells is only read.
func Step(cells CellSet, rs rules.RuleSet) CellSet {
	s := Stepper{rules: rs}
	return s.Step(cells)
}

// Stepper advances a CellSet one generation at a time under a fixed RuleSet
type Stepper struct {
	rules   rules.RuleSet
	pool    *SetPool
	workers int

	// swapped in tests to observe which candidates get counted
	countNeighbors func(Coord, CellSet) int
}

// NewStepper validates rs and returns a Stepper.
// pool may be nil; workers <= 0 means runtime.NumCPU().
func NewStepper(rs rules.RuleSet, pool *SetPool, workers int) (*Stepper, error) {
	if err := rs.Validate(); err != nil {
		return nil, errors.Wrap(err, "[NewStepper] refusing to build stepper")
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Stepper{
		rules:          rs,
		pool:           pool,
		workers:        workers,
		countNeighbors: CountLiveNeighbors,
	}, nil
}

// Rules returns the active rule set
func (s *Stepper) Rules() rules.RuleSet {
	return s.rules
}

// SetRules replaces the rule set wholesale between generations
func (s *Stepper) SetRules(rs rules.RuleSet) error {
	if err := rs.Validate(); err != nil {
		return errors.Wrap(err, "[SetRules] keeping previous rule set")
	}
	s.rules = rs
	return nil
}

/*
Step computes the next generation.

Only the closed Moore neighborhood of each live cell can be alive next
generation, so those are the only candidates. Each candidate is evaluated once:
the checked set remembers it even when it dies.
*/
func (s *Stepper) Step(cells CellSet) CellSet {
	checked := s.scratch()
	defer s.release(checked)

	next := newCellSetSize(cells.Len())
	for c := range cells.m {
		s.evaluate(c, cells, checked, &next)
		for _, d := range MooreOffsets {
			s.evaluate(c.Add(d), cells, checked, &next)
		}
	}
	return next
}

func (s *Stepper) evaluate(n Coord, cells CellSet, checked, next *CellSet) {
	if checked.Contains(n) {
		return
	}
	checked.Insert(n)
	if s.rules.NextState(s.count(n, cells), cells.Contains(n)) {
		next.Insert(n)
	}
}

// StepParallel computes the same generation as Step, splitting the
// deduplicated candidates across worker goroutines.
func (s *Stepper) StepParallel(cells CellSet) CellSet {
	candidates := s.candidates(cells)
	if len(candidates) < minParallelCandidates || s.workers <= 1 {
		return s.evaluateAll(candidates, cells)
	}

	var (
		eg            errgroup.Group
		numWorkers    = s.workers
		perWorker     = (len(candidates) + numWorkers - 1) / numWorkers // Ceiling division
		workerResults = make([][]Coord, numWorkers)
	)

	for i := range numWorkers {
		var (
			start = i * perWorker
			end   = min(start+perWorker, len(candidates))
		)
		if start >= len(candidates) {
			break
		}

		eg.Go(func() error {
			var alive []Coord
			for _, n := range candidates[start:end] {
				if s.rules.NextState(s.count(n, cells), cells.Contains(n)) {
					alive = append(alive, n)
				}
			}
			workerResults[i] = alive
			return nil
		})
	}

	// workers never fail
	_ = eg.Wait()

	next := newCellSetSize(cells.Len())
	for _, alive := range workerResults {
		for _, n := range alive {
			next.m[n] = struct{}{}
		}
	}
	return next
}

// candidates returns every cell within one step of a live cell, each once
func (s *Stepper) candidates(cells CellSet) []Coord {
	checked := s.scratch()
	defer s.release(checked)

	out := make([]Coord, 0, cells.Len()*3)
	add := func(n Coord) {
		if checked.Contains(n) {
			return
		}
		checked.Insert(n)
		out = append(out, n)
	}
	for c := range cells.m {
		add(c)
		for _, d := range MooreOffsets {
			add(c.Add(d))
		}
	}
	return out
}

func (s *Stepper) evaluateAll(candidates []Coord, cells CellSet) CellSet {
	next := newCellSetSize(cells.Len())
	for _, n := range candidates {
		if s.rules.NextState(s.count(n, cells), cells.Contains(n)) {
			next.m[n] = struct{}{}
		}
	}
	return next
}

func (s *Stepper) count(n Coord, cells CellSet) int {
	if s.countNeighbors == nil {
		return CountLiveNeighbors(n, cells)
	}
	return s.countNeighbors(n, cells)
}

func (s *Stepper) scratch() *CellSet {
	if s.pool != nil {
		return s.pool.Get()
	}
	set := NewCellSet()
	return &set
}

func (s *Stepper) release(set *CellSet) {
	SetToPool(set, s.pool)
}

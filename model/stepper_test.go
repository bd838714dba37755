package model

import (
	"sync"
	"testing"

	"github.com/sheikhrachel/sparse-gol/rules"
)

func translate(p Pattern, anchor Coord) CellSet {
	out := NewCellSet()
	for _, d := range p.Offsets {
		out.Insert(anchor.Add(d))
	}
	return out
}

func TestStepEmptyIsFixpoint(t *testing.T) {
	next := Step(NewCellSet(), rules.Default())
	if next.Len() != 0 {
		t.Fatalf("expected empty generation, got %v", next.Coords())
	}

	var zero CellSet
	if Step(zero, rules.Default()).Len() != 0 {
		t.Fatal("zero-value set should step to empty")
	}
}

func TestStepBlockStillLife(t *testing.T) {
	block := NewCellSet(Coord{0, 0}, Coord{1, 0}, Coord{0, 1}, Coord{1, 1})
	next := Step(block, rules.Default())
	if !next.Equal(block) {
		t.Fatalf("block changed: got %v", next.Coords())
	}
}

func TestStepBlinkerOscillates(t *testing.T) {
	horizontal := NewCellSet(Coord{0, 0}, Coord{1, 0}, Coord{2, 0})
	vertical := NewCellSet(Coord{1, -1}, Coord{1, 0}, Coord{1, 1})

	first := Step(horizontal, rules.Default())
	if !first.Equal(vertical) {
		t.Fatalf("after one step got %v, want %v", first.Coords(), vertical.Coords())
	}
	second := Step(first, rules.Default())
	if !second.Equal(horizontal) {
		t.Fatalf("after two steps got %v, want %v", second.Coords(), horizontal.Coords())
	}
}

func TestStepGliderTranslates(t *testing.T) {
	cells := NewCellSet()
	Spawn(Glider, Coord{10, 10}, &cells)

	for range 4 {
		cells = Step(cells, rules.Default())
	}

	want := translate(Glider, Coord{11, 11})
	if !cells.Equal(want) {
		t.Fatalf("glider after 4 steps = %v, want %v", cells.Coords(), want.Coords())
	}
}

func TestStepLWSSTranslates(t *testing.T) {
	cells := translate(LWSS, Coord{20, 0})
	for range 4 {
		cells = Step(cells, rules.Default())
	}
	if want := translate(LWSS, Coord{18, 0}); !cells.Equal(want) {
		t.Fatalf("lwss after 4 steps = %v, want %v", cells.Coords(), want.Coords())
	}
}

func TestStepNegativeCoordinates(t *testing.T) {
	horizontal := NewCellSet(Coord{-1000, -5}, Coord{-999, -5}, Coord{-998, -5})
	want := NewCellSet(Coord{-999, -6}, Coord{-999, -5}, Coord{-999, -4})
	if got := Step(horizontal, rules.Default()); !got.Equal(want) {
		t.Fatalf("got %v, want %v", got.Coords(), want.Coords())
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	cells := NewCellSet(Coord{0, 0}, Coord{1, 0}, Coord{2, 0})
	before := cells.Clone()
	Step(cells, rules.Default())
	if !cells.Equal(before) {
		t.Fatalf("input mutated: %v", cells.Coords())
	}
}

func TestStepIsDeterministic(t *testing.T) {
	cells := translate(RPentomino, Coord{0, 0})
	for range 20 {
		a := Step(cells, rules.Default())
		b := Step(cells, rules.Default())
		if !a.Equal(b) {
			t.Fatal("repeated steps disagree")
		}
		cells = a
	}
}

func TestStepCustomRules(t *testing.T) {
	// survival on 0..8 with no birth: every live cell persists, nothing is born
	rs, err := rules.New(rules.Range{Start: 0, End: 0}, rules.Range{Start: 0, End: 9},
		rules.Range{Start: 9, End: 9}, rules.Range{Start: 9, End: 10})
	if err != nil {
		t.Fatal(err)
	}
	cells := translate(RPentomino, Coord{3, 3})
	if got := Step(cells, rs); !got.Equal(cells) {
		t.Fatalf("got %v, want unchanged %v", got.Coords(), cells.Coords())
	}
}

func TestStepCountsEachCandidateOnce(t *testing.T) {
	stepper, err := NewStepper(rules.Default(), nil, 1)
	if err != nil {
		t.Fatal(err)
	}

	seen := map[Coord]int{}
	stepper.countNeighbors = func(c Coord, cells CellSet) int {
		seen[c]++
		return CountLiveNeighbors(c, cells)
	}

	// the block's live cells share most of their neighborhoods
	block := NewCellSet(Coord{0, 0}, Coord{1, 0}, Coord{0, 1}, Coord{1, 1})
	next := stepper.Step(block)
	if !next.Equal(block) {
		t.Fatalf("block changed: %v", next.Coords())
	}

	// 4x4 closed neighborhood union
	if len(seen) != 16 {
		t.Fatalf("evaluated %d distinct candidates, want 16", len(seen))
	}
	for c, n := range seen {
		if n != 1 {
			t.Errorf("candidate %s counted %d times", c, n)
		}
	}
}

func TestStepParallelMatchesStep(t *testing.T) {
	stepper, err := NewStepper(rules.Default(), NewSetPool(), 4)
	if err != nil {
		t.Fatal(err)
	}

	cells := NewCellSet()
	Randomize(&cells, Viewport{Origin: Coord{-30, -20}, Width: 60, Height: 40}, 0.3, NewRNG(7))

	for gen := range 10 {
		seq := stepper.Step(cells)
		par := stepper.StepParallel(cells)
		if !seq.Equal(par) {
			t.Fatalf("generation %d: parallel result differs from sequential", gen)
		}
		cells = seq
	}
}

func TestStepParallelCountsEachCandidateOnce(t *testing.T) {
	stepper, err := NewStepper(rules.Default(), nil, 8)
	if err != nil {
		t.Fatal(err)
	}

	var mu sync.Mutex
	seen := map[Coord]int{}
	stepper.countNeighbors = func(c Coord, cells CellSet) int {
		mu.Lock()
		seen[c]++
		mu.Unlock()
		return CountLiveNeighbors(c, cells)
	}

	cells := NewCellSet()
	Randomize(&cells, Viewport{Width: 40, Height: 40}, 0.5, NewRNG(3))
	stepper.StepParallel(cells)

	if len(seen) < minParallelCandidates {
		t.Fatalf("only %d candidates, parallel path not exercised", len(seen))
	}
	for c, n := range seen {
		if n != 1 {
			t.Fatalf("candidate %s counted %d times", c, n)
		}
	}
}

func TestNewStepperRejectsInvalidRules(t *testing.T) {
	if _, err := NewStepper(rules.RuleSet{}, nil, 0); err == nil {
		t.Fatal("expected error for invalid rule set")
	}
}

func TestSetRulesKeepsPreviousOnError(t *testing.T) {
	stepper, err := NewStepper(rules.Default(), nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err = stepper.SetRules(rules.RuleSet{}); err == nil {
		t.Fatal("expected error")
	}
	if stepper.Rules() != rules.Default() {
		t.Fatalf("rules changed to %s", stepper.Rules())
	}
}

func TestCountLiveNeighbors(t *testing.T) {
	cells := NewCellSet()
	for _, d := range MooreOffsets {
		cells.Insert(d)
	}
	cells.Insert(Coord{0, 0})

	if got := CountLiveNeighbors(Coord{0, 0}, cells); got != 8 {
		t.Fatalf("center: got %d, want 8", got)
	}
	if got := CountLiveNeighbors(Coord{5, 5}, cells); got != 0 {
		t.Fatalf("far away: got %d, want 0", got)
	}
	if got := CountLiveNeighbors(Coord{2, 0}, cells); got != 3 {
		t.Fatalf("edge: got %d, want 3", got)
	}
}

func BenchmarkStep(b *testing.B) {
	cells := NewCellSet()
	Randomize(&cells, Viewport{Width: 200, Height: 200}, 0.3, NewRNG(1))
	stepper, _ := NewStepper(rules.Default(), NewSetPool(), 0)

	b.Run("sequential", func(b *testing.B) {
		for range b.N {
			stepper.Step(cells)
		}
	})
	b.Run("parallel", func(b *testing.B) {
		for range b.N {
			stepper.StepParallel(cells)
		}
	})
}

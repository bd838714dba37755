package rules

import (
	"fmt"

	"github.com/pkg/errors"
)

// Domain is the exclusive upper bound of every neighbor-count range.
const Domain = 10

// ErrInvalidRuleSet is returned when the four ranges do not partition [0, Domain).
var ErrInvalidRuleSet = errors.New("invalid rule set")

// Range is a half-open interval [Start, End) of neighbor counts
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Contains reports whether n lies in [Start, End)
func (r Range) Contains(n int) bool {
	return n >= r.Start && n < r.End
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

/*
RuleSet decides a cell's fate from its live-neighbor count.

The four ranges must contiguously partition [0, Domain) in order:
underpopulation kills, same keeps the current state, alive makes or keeps the
cell alive, overpopulation kills.
*/
type RuleSet struct {
	Underpopulation Range
	Same            Range
	Alive           Range
	Overpopulation  Range
}

// New builds a RuleSet and validates it
func New(underpopulation, same, alive, overpopulation Range) (RuleSet, error) {
	rs := RuleSet{
		Underpopulation: underpopulation,
		Same:            same,
		Alive:           alive,
		Overpopulation:  overpopulation,
	}
	if err := rs.Validate(); err != nil {
		return RuleSet{}, err
	}
	return rs, nil
}

// Default returns the classic B3/S23 configuration
func Default() RuleSet {
	return RuleSet{
		Underpopulation: Range{Start: 0, End: 2},
		Same:            Range{Start: 2, End: 3},
		Alive:           Range{Start: 3, End: 4},
		Overpopulation:  Range{Start: 4, End: Domain},
	}
}

// IsValid reports whether the ranges partition [0, Domain) in order
func (rs RuleSet) IsValid() bool {
	return rs.Validate() == nil
}

// Validate is IsValid with the first broken boundary described in the error
func (rs RuleSet) Validate() error {
	switch {
	case rs.Underpopulation.Start != 0:
		return errors.Wrapf(ErrInvalidRuleSet, "underpopulation must start at 0, got %d", rs.Underpopulation.Start)
	case rs.Underpopulation.End != rs.Same.Start:
		return errors.Wrapf(ErrInvalidRuleSet, "same must start at %d, got %d", rs.Underpopulation.End, rs.Same.Start)
	case rs.Same.End != rs.Alive.Start:
		return errors.Wrapf(ErrInvalidRuleSet, "alive must start at %d, got %d", rs.Same.End, rs.Alive.Start)
	case rs.Alive.End != rs.Overpopulation.Start:
		return errors.Wrapf(ErrInvalidRuleSet, "overpopulation must start at %d, got %d", rs.Alive.End, rs.Overpopulation.Start)
	case rs.Overpopulation.End != Domain:
		return errors.Wrapf(ErrInvalidRuleSet, "overpopulation must end at %d, got %d", Domain, rs.Overpopulation.End)
	}
	return nil
}

// NextState reports whether a cell is alive in the next generation
func (rs RuleSet) NextState(neighbors int, alive bool) bool {
	return rs.Alive.Contains(neighbors) || (alive && rs.Same.Contains(neighbors))
}

func (rs RuleSet) String() string {
	return fmt.Sprintf("under%s same%s alive%s over%s",
		rs.Underpopulation, rs.Same, rs.Alive, rs.Overpopulation)
}

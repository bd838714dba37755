package rules

// Conway is the classic rule set, validated at package init.
var Conway = Default()

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return Conway.NextState(neighbors, alive)
}

func init() {
	if err := Conway.Validate(); err != nil {
		panic(err)
	}
}

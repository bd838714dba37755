package model

// MooreOffsets are the eight 8-connected neighbor offsets
var MooreOffsets = [8]Coord{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// CountLiveNeighbors counts the live cells in c's Moore neighborhood, c excluded
func CountLiveNeighbors(c Coord, cells CellSet) int {
	count := 0
	for _, d := range MooreOffsets {
		if cells.Contains(c.Add(d)) {
			count++
		}
	}
	return count
}

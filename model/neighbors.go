package model

// compass offsets in enumeration order: E, W, N, S, NW, SW, NE, SE
var neighborOffsets = [8]Coord{
	{Row: 0, Col: 1},
	{Row: 0, Col: -1},
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: -1, Col: -1},
	{Row: 1, Col: -1},
	{Row: -1, Col: 1},
	{Row: 1, Col: 1},
}

// ValidNeighbors returns the in-bounds neighbors of (row, col) on a size x size grid.
// Corners have 3, other edge cells 5 and interior cells 8. There is no wraparound.
func ValidNeighbors(row, col, size int) []Coord {
	neighbors := make([]Coord, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		nr, nc := row+off.Row, col+off.Col
		if nr < 0 || nr >= size || nc < 0 || nc >= size {
			continue
		}
		neighbors = append(neighbors, Coord{Row: nr, Col: nc})
	}
	return neighbors
}

// CountNeighborsAlive counts living cells among the valid neighbors of (row, col)
func CountNeighborsAlive(g *Grid, row, col int) int {
	count := 0
	for _, n := range ValidNeighbors(row, col, g.size) {
		if g.cells[g.index(n.Row, n.Col)] == Alive {
			count++
		}
	}
	return count
}

package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Precedence:
  - neighbors <= 1 or neighbors >= 4: dead (under/overpopulation)
  - neighbors == 3 and the cell is dead: alive (birth)
  - otherwise the cell keeps its current state
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	switch {
	case neighbors <= 1 || neighbors >= 4:
		return false
	case neighbors == 3 && !alive:
		return true
	default:
		return alive
	}
}

package gol

// nextState applies B3/S23 to one cell.
//
//	alive, < 2 neighbours   -> dies (under-population)
//	alive, 2 or 3           -> lives on
//	alive, > 3              -> dies (over-population)
//	dead, exactly 3         -> becomes alive (reproduction)
func nextState(alive bool, liveNeighbours int) bool {
	if alive {
		return liveNeighbours == 2 || liveNeighbours == 3
	}
	return liveNeighbours == 3
}

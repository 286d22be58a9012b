package core

// NextState applies Conway's rule (B3/S23) to a cell with the given state
// and live neighbour count.
func NextState(state uint8, neighbors int) uint8 {
	switch {
	case state == Alive && (neighbors == 2 || neighbors == 3):
		return Alive
	case state == Dead && neighbors == 3:
		return Alive
	default:
		return Dead
	}
}

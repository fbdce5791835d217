package entity

// Line is three cells that win when held by one player.
type Line [3]Coords

// Lines are the 8 canonical lines: rows, columns, then the two diagonals.
var Lines = [8]Line{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// SameCells compares lines as coordinate sets, ignoring order.
func (that Line) SameCells(other Line) bool {
	for _, c := range that {
		if !other.Contains(c) {
			return false
		}
	}

	for _, c := range other {
		if !that.Contains(c) {
			return false
		}
	}

	return true
}

func (that Line) Contains(c Coords) bool {
	for _, member := range that {
		if member == c {
			return true
		}
	}

	return false
}

package tictactoe

import (
	"github.com/rocketscienceinc/twisted-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/twisted-tictactoe/internal/entity"
)

// ShiftEvery is how many filled cells, counted from the last shift, trigger a board shift.
const ShiftEvery = 5

// LandingCell - resolves where a mark aimed at target actually goes.
// Under Gravity the row is ignored and the mark drops to the lowest empty row of the column.
func LandingCell(board *entity.Board, target entity.Coords, twists entity.TwistConfig) (entity.Coords, error) {
	if !target.Valid() {
		return target, apperror.ErrInvalidCell
	}

	if !twists.Gravity {
		return target, nil
	}

	row, ok := board.LowestEmptyRow(target.Col)
	if !ok {
		return target, apperror.ErrColumnFull
	}

	return entity.Coords{Row: row, Col: target.Col}, nil
}

// PlaceMark - writes player's mark and, under Evolve, bumps the cell level.
// Both writes happen together or not at all. levels must be non-nil when Evolve is on.
// Returns the cell the mark landed on.
func PlaceMark(
	board *entity.Board, target entity.Coords, player entity.Mark, twists entity.TwistConfig, levels entity.EvolveLevels,
) (entity.Coords, error) {
	landing, err := LandingCell(board, target, twists)
	if err != nil {
		return landing, err
	}

	if board.At(landing) != entity.EmptyCell {
		return landing, apperror.ErrCellOccupied
	}

	if twists.Evolve {
		level := levels[landing]
		if level >= entity.MaxEvolveLevel {
			return landing, apperror.ErrMaxLevelReached
		}

		levels[landing] = level + 1
	}

	board.Set(landing, player)

	return landing, nil
}

// RemoveMark - clears a cell and its evolve level. Ownership rules are the caller's job.
func RemoveMark(board *entity.Board, target entity.Coords, levels entity.EvolveLevels) {
	board.Set(target, entity.EmptyCell)
	delete(levels, target)
}

// SwapMarks - exchanges the marks and evolve levels of two cells.
func SwapMarks(board *entity.Board, a, b entity.Coords, levels entity.EvolveLevels) error {
	if !a.Valid() || !b.Valid() {
		return apperror.ErrInvalidCell
	}

	if a == b {
		return apperror.ErrInvalidSwap
	}

	markA, markB := board.At(a), board.At(b)
	board.Set(a, markB)
	board.Set(b, markA)

	levelA, okA := levels[a]
	levelB, okB := levels[b]
	delete(levels, a)
	delete(levels, b)

	if okB {
		levels[a] = levelB
	}

	if okA {
		levels[b] = levelA
	}

	return nil
}

// ShiftBoard - moves every row up by one. Row 0 is discarded and the last row becomes empty.
func ShiftBoard(board *entity.Board, levels entity.EvolveLevels) {
	var shifted entity.Board
	for row := 1; row < entity.Size; row++ {
		shifted[row-1] = board[row]
	}

	*board = shifted

	moved := make(entity.EvolveLevels, len(levels))
	for c, level := range levels {
		if c.Row > 0 {
			moved[entity.Coords{Row: c.Row - 1, Col: c.Col}] = level
		}
	}

	clear(levels)
	for c, level := range moved {
		levels[c] = level
	}
}

// ShouldShift reports whether the board shift fires for the given filled-cell count.
func ShouldShift(filledCells, lastShiftMark int) bool {
	return filledCells > 0 && (filledCells-lastShiftMark)%ShiftEvery == 0
}

package entity

import (
	"encoding/json"
	"fmt"
)

// Size is the side length of the board.
const Size = 3

type Mark string

const (
	EmptyCell Mark = ""
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
)

// Opponent returns the other player's mark. EmptyCell has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

// Coords addresses a cell by zero-based row and column.
type Coords struct {
	Row int
	Col int
}

func (that Coords) Valid() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

// String renders one-based coordinates, the way players read the board.
func (that Coords) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row+1, that.Col+1)
}

type coordsJSON struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Coords) MarshalJSON() ([]byte, error) {
	return json.Marshal(coordsJSON{Row: that.Row, Col: that.Col})
}

func (that *Coords) UnmarshalJSON(data []byte) error {
	var raw coordsJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal coords: %w", err)
	}

	that.Row, that.Col = raw.Row, raw.Col

	return nil
}

// Board is the 3x3 grid, row-major. It is a value type: assignment copies it.
type Board [Size][Size]Mark

func (that *Board) At(c Coords) Mark {
	return that[c.Row][c.Col]
}

func (that *Board) Set(c Coords, mark Mark) {
	that[c.Row][c.Col] = mark
}

func (that *Board) FilledCells() int {
	filled := 0
	for _, row := range that {
		for _, cell := range row {
			if cell != EmptyCell {
				filled++
			}
		}
	}

	return filled
}

func (that *Board) IsFull() bool {
	return that.FilledCells() == Size*Size
}

// LowestEmptyRow - finds where a mark dropped into col would land.
func (that *Board) LowestEmptyRow(col int) (int, bool) {
	for row := Size - 1; row >= 0; row-- {
		if that[row][col] == EmptyCell {
			return row, true
		}
	}

	return 0, false
}

// AllCoords lists every cell in row-major order.
func AllCoords() []Coords {
	coords := make([]Coords, 0, Size*Size)
	for row := range Size {
		for col := range Size {
			coords = append(coords, Coords{Row: row, Col: col})
		}
	}

	return coords
}

package entity

import (
	"encoding/json"
	"fmt"
)

// MaxEvolveLevel caps how far a single cell can evolve.
const MaxEvolveLevel = 3

// EvolveLevels maps occupied cells to their evolution level. Only populated under the Evolve twist.
type EvolveLevels map[Coords]int

func (that EvolveLevels) Clone() EvolveLevels {
	clone := make(EvolveLevels, len(that))
	for c, level := range that {
		clone[c] = level
	}

	return clone
}

func (that EvolveLevels) Level(c Coords) int {
	return that[c]
}

type levelJSON struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Level int `json:"level"`
}

// MarshalJSON writes the levels as a row-major list of {row, col, level}.
func (that EvolveLevels) MarshalJSON() ([]byte, error) {
	if that == nil {
		return []byte("null"), nil
	}

	list := make([]levelJSON, 0, len(that))

	for _, c := range AllCoords() {
		if level, ok := that[c]; ok {
			list = append(list, levelJSON{Row: c.Row, Col: c.Col, Level: level})
		}
	}

	return json.Marshal(list)
}

func (that *EvolveLevels) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var list []levelJSON
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("failed to unmarshal evolve levels: %w", err)
	}

	levels := make(EvolveLevels, len(list))

	for _, item := range list {
		c := Coords{Row: item.Row, Col: item.Col}
		if !c.Valid() {
			return fmt.Errorf("evolve level outside the board at %s", c)
		}

		levels[c] = item.Level
	}

	*that = levels

	return nil
}

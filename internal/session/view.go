package session

import (
	"strconv"

	"github.com/rocketscienceinc/twisted-tictactoe/internal/entity"
)

// CellView is one cell as the player to move is allowed to see it.
type CellView struct {
	Mark  entity.Mark `json:"mark"`
	Level int         `json:"level,omitempty"`
	Text  string      `json:"text"`
}

// View is the read-only projection of a session handed to presentation layers.
type View struct {
	Phase            Phase                                  `json:"phase"`
	State            State                                  `json:"state"`
	Board            [entity.Size][entity.Size]CellView     `json:"board"`
	Message          string                                 `json:"message"`
	CurrentPlayer    entity.Mark                            `json:"current_player"`
	Outcome          entity.Outcome                         `json:"outcome"`
	Twists           entity.TwistConfig                     `json:"twists"`
	Mode             entity.GameMode                        `json:"mode"`
	Difficulty       entity.Difficulty                      `json:"difficulty,omitempty"`
	Abilities        map[entity.Mark]entity.AbilityCounters `json:"abilities,omitempty"`
	ArmedAbility     entity.AbilityType                     `json:"armed_ability,omitempty"`
	SwapFirst        *entity.Coords                         `json:"swap_first,omitempty"`
	UndoMode         bool                                   `json:"undo_mode"`
	LineBlocked      bool                                   `json:"line_blocked"`
	RemainingSeconds *int                                   `json:"remaining_seconds,omitempty"`
	HistoryDepth     int                                    `json:"history_depth"`
}

// View - builds the projection for the current state. Under Memory Challenge the
// opponent's marks are blanked unless the board is revealed.
func (that *GameSession) View() View {
	view := View{
		Phase:         that.phase,
		State:         that.State(),
		Message:       that.message,
		CurrentPlayer: that.current,
		Outcome:       that.outcome,
		Twists:        that.twists,
		Mode:          that.mode,
		Difficulty:    that.difficulty,
		ArmedAbility:  that.ability,
		UndoMode:      that.undoMode,
		LineBlocked:   that.blocked != nil,
		HistoryDepth:  len(that.history),
	}

	if that.swapFirst != nil {
		first := *that.swapFirst
		view.SwapFirst = &first
	}

	if that.twists.Abilities && that.phase != PhaseConfiguring {
		view.Abilities = map[entity.Mark]entity.AbilityCounters{
			entity.PlayerX: that.charges[entity.PlayerX].Clone(),
			entity.PlayerO: that.charges[entity.PlayerO].Clone(),
		}
	}

	if that.twists.SuddenDeath && that.phase == PhaseInProgress {
		left := int(that.RemainingTime(that.now()).Seconds())
		view.RemainingSeconds = &left
	}

	for _, c := range entity.AllCoords() {
		view.Board[c.Row][c.Col] = that.cellView(c)
	}

	return view
}

func (that *GameSession) cellView(c entity.Coords) CellView {
	mark := that.board.At(c)

	if that.hidden(mark) {
		return CellView{}
	}

	cell := CellView{Mark: mark, Text: string(mark)}

	if that.twists.Evolve && mark != entity.EmptyCell {
		if level, ok := that.levels[c]; ok {
			cell.Level = level
			cell.Text += strconv.Itoa(level)
		}
	}

	return cell
}

func (that *GameSession) hidden(mark entity.Mark) bool {
	if !that.twists.MemoryChallenge || that.revealAll || that.phase != PhaseInProgress {
		return false
	}

	return mark != that.current
}

package session

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/twisted-tictactoe/internal/bot"
	"github.com/rocketscienceinc/twisted-tictactoe/internal/entity"
)

// Snapshot is the complete serialisable state of a session.
type Snapshot struct {
	Twists        entity.TwistConfig                     `json:"twists"`
	Mode          entity.GameMode                        `json:"mode"`
	Difficulty    entity.Difficulty                      `json:"difficulty,omitempty"`
	Phase         Phase                                  `json:"phase"`
	Board         entity.Board                           `json:"board"`
	Levels        entity.EvolveLevels                    `json:"levels,omitempty"`
	Current       entity.Mark                            `json:"current"`
	UndoMode      bool                                   `json:"undo_mode"`
	Ability       entity.AbilityType                     `json:"ability,omitempty"`
	SwapFirst     *entity.Coords                         `json:"swap_first,omitempty"`
	Charges       map[entity.Mark]entity.AbilityCounters `json:"charges"`
	Blocked       *entity.Line                           `json:"blocked,omitempty"`
	TurnStart     time.Time                              `json:"turn_start"`
	LastShiftMark int                                    `json:"last_shift_mark"`
	History       []HistoryEntry                         `json:"history,omitempty"`
	RevealAll     bool                                   `json:"reveal_all"`
	Outcome       entity.Outcome                         `json:"outcome"`
	Message       string                                 `json:"message"`
}

// Snapshot - copies the session state. The copy shares nothing with the session.
func (that *GameSession) Snapshot() Snapshot {
	snap := Snapshot{
		Twists:        that.twists,
		Mode:          that.mode,
		Difficulty:    that.difficulty,
		Phase:         that.phase,
		Board:         that.board,
		Levels:        that.levels.Clone(),
		Current:       that.current,
		UndoMode:      that.undoMode,
		Ability:       that.ability,
		Charges:       make(map[entity.Mark]entity.AbilityCounters, len(that.charges)),
		TurnStart:     that.turnStart,
		LastShiftMark: that.lastShiftMark,
		RevealAll:     that.revealAll,
		Outcome:       that.outcome,
		Message:       that.message,
	}

	if that.swapFirst != nil {
		first := *that.swapFirst
		snap.SwapFirst = &first
	}

	if that.blocked != nil {
		line := *that.blocked
		snap.Blocked = &line
	}

	for player, counters := range that.charges {
		snap.Charges[player] = counters.Clone()
	}

	for _, entry := range that.history {
		snap.History = append(snap.History, HistoryEntry{Board: entry.Board, Levels: entry.Levels.Clone()})
	}

	return snap
}

// Restore - rebuilds a session from a snapshot. The bot is recreated from the stored
// difficulty.
func Restore(snap Snapshot, opts ...Option) (*GameSession, error) {
	that := New(opts...)

	that.twists = snap.Twists.WithDefaults(that.turnTimeLimit)
	that.mode = snap.Mode
	that.difficulty = snap.Difficulty
	that.phase = snap.Phase
	that.board = snap.Board
	that.levels = snap.Levels.Clone()
	that.current = snap.Current
	that.undoMode = snap.UndoMode
	that.ability = snap.Ability
	that.turnStart = snap.TurnStart
	that.lastShiftMark = snap.LastShiftMark
	that.revealAll = snap.RevealAll
	that.outcome = snap.Outcome
	that.message = snap.Message

	if that.levels == nil {
		that.levels = entity.EvolveLevels{}
	}

	if that.mode == "" {
		that.mode = entity.ModeHuman
	}

	if that.current == entity.EmptyCell {
		that.current = entity.PlayerX
	}

	if snap.SwapFirst != nil {
		first := *snap.SwapFirst
		that.swapFirst = &first
	}

	if snap.Blocked != nil {
		line := *snap.Blocked
		that.blocked = &line
	}

	for _, player := range []entity.Mark{entity.PlayerX, entity.PlayerO} {
		if counters, ok := snap.Charges[player]; ok {
			that.charges[player] = counters.Clone()
		}
	}

	for _, entry := range snap.History {
		that.history = append(that.history, HistoryEntry{Board: entry.Board, Levels: entry.Levels.Clone()})
	}

	if that.mode == entity.ModeBot {
		strategy, err := bot.New(that.difficulty, BotMark, that.rng)
		if err != nil {
			return nil, fmt.Errorf("failed to restore bot: %w", err)
		}

		that.bot = strategy
	}

	return that, nil
}

package session

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/rocketscienceinc/twisted-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/twisted-tictactoe/internal/bot"
	"github.com/rocketscienceinc/twisted-tictactoe/internal/entity"
)

type Phase string

const (
	PhaseConfiguring Phase = "configuring"
	PhaseInProgress  Phase = "in_progress"
	PhaseOver        Phase = "over"
)

type State string

const (
	StateConfiguring             State = "configuring"
	StateAwaitingMove            State = "awaiting_move"
	StateAbilityArmed            State = "ability_armed"
	StateSwapAwaitingSecondClick State = "swap_awaiting_second_click"
	StateGameOver                State = "game_over"
)

// BotMark is the mark the automated opponent plays. The human always plays X and moves first.
const BotMark = entity.PlayerO

// HistoryEntry is the board as it was right before a mutating action.
type HistoryEntry struct {
	Board  entity.Board        `json:"board"`
	Levels entity.EvolveLevels `json:"levels,omitempty"`
}

// GameSession owns one game and every piece of state the rules need.
// It is not safe for concurrent use: one caller mutates it at a time.
type GameSession struct {
	logger        *slog.Logger
	now           func() time.Time
	rng           *rand.Rand
	turnTimeLimit time.Duration

	twists     entity.TwistConfig
	mode       entity.GameMode
	difficulty entity.Difficulty
	bot        bot.Strategy

	phase         Phase
	board         entity.Board
	levels        entity.EvolveLevels
	current       entity.Mark
	undoMode      bool
	ability       entity.AbilityType
	swapFirst     *entity.Coords
	charges       map[entity.Mark]entity.AbilityCounters
	blocked       *entity.Line
	turnStart     time.Time
	lastShiftMark int
	history       []HistoryEntry
	revealAll     bool
	outcome       entity.Outcome
	message       string
	notices       []string
}

type Option func(*GameSession)

func WithLogger(logger *slog.Logger) Option {
	return func(that *GameSession) {
		if logger != nil {
			that.logger = logger
		}
	}
}

// WithClock replaces time.Now, mainly for Sudden Death tests.
func WithClock(now func() time.Time) Option {
	return func(that *GameSession) {
		if now != nil {
			that.now = now
		}
	}
}

// WithRand fixes the source used for Block and the basic bot.
func WithRand(rng *rand.Rand) Option {
	return func(that *GameSession) {
		if rng != nil {
			that.rng = rng
		}
	}
}

// WithTurnTimeLimit sets the Sudden Death limit used when twists do not carry one.
func WithTurnTimeLimit(limit time.Duration) Option {
	return func(that *GameSession) {
		if limit > 0 {
			that.turnTimeLimit = limit
		}
	}
}

// New creates a session in the configuration phase with every twist off.
func New(opts ...Option) *GameSession {
	that := &GameSession{
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:           time.Now,
		rng:           rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), //nolint: gosec // game randomness
		turnTimeLimit: entity.DefaultTurnTimeLimit,
	}

	for _, opt := range opts {
		opt(that)
	}

	that.logger = that.logger.With("component", "session")
	that.twists = entity.TwistConfig{}.WithDefaults(that.turnTimeLimit)
	that.reinitialize()

	return that
}

// ConfigureTwists - sets the rule modifications. Only allowed before the game starts.
func (that *GameSession) ConfigureTwists(twists entity.TwistConfig) (View, error) {
	that.begin()

	if that.phase != PhaseConfiguring {
		return that.reject(apperror.ErrGameAlreadyStarted)
	}

	that.twists = twists.WithDefaults(that.turnTimeLimit)
	that.message = "Select game mode and twists."

	return that.View(), nil
}

// StartGame - leaves configuration and starts the first round.
// difficulty is only used in bot mode.
func (that *GameSession) StartGame(mode entity.GameMode, difficulty entity.Difficulty) (View, error) {
	that.begin()

	if that.phase != PhaseConfiguring {
		return that.reject(apperror.ErrGameAlreadyStarted)
	}

	if _, err := entity.ParseMode(string(mode)); err != nil {
		return that.reject(err)
	}

	if mode == entity.ModeBot {
		strategy, err := bot.New(difficulty, BotMark, that.rng)
		if err != nil {
			return that.reject(err)
		}

		that.bot = strategy
		that.difficulty = difficulty
	}

	that.mode = mode
	that.resetRound()

	if that.twists.Standard() {
		that.notices = append(that.notices, "You haven't selected any twists. Playing a standard Tic-Tac-Toe game.")
	}

	that.message = that.compose(turnMessage(that.current))
	that.logger.Info("game started", "mode", mode, "difficulty", that.difficulty, "twists", that.twists)

	return that.View(), nil
}

// ResetGame - plays again with the same twists, mode and difficulty.
func (that *GameSession) ResetGame() (View, error) {
	that.begin()

	if that.phase == PhaseConfiguring {
		return that.reject(apperror.ErrGameNotActive)
	}

	that.resetRound()
	that.message = turnMessage(that.current)
	that.logger.Debug("game reset")

	return that.View(), nil
}

// ChangeTwists - abandons the game and returns to configuration. The previous twists are
// kept as the starting point for the next ConfigureTwists call.
func (that *GameSession) ChangeTwists() (View, error) {
	that.begin()
	that.reinitialize()
	that.logger.Debug("returned to twist selection")

	return that.View(), nil
}

func (that *GameSession) Twists() entity.TwistConfig {
	return that.twists
}

func (that *GameSession) Phase() Phase {
	return that.phase
}

// Board returns a copy of the authoritative board.
func (that *GameSession) Board() entity.Board {
	return that.board
}

func (that *GameSession) EvolveLevels() entity.EvolveLevels {
	return that.levels.Clone()
}

func (that *GameSession) CurrentPlayer() entity.Mark {
	return that.current
}

func (that *GameSession) Outcome() entity.Outcome {
	return that.outcome
}

// BlockedLine returns the line currently nullified by Block, if any.
func (that *GameSession) BlockedLine() (entity.Line, bool) {
	if that.blocked == nil {
		return entity.Line{}, false
	}

	return *that.blocked, true
}

func (that *GameSession) Charges(player entity.Mark) entity.AbilityCounters {
	return that.charges[player].Clone()
}

func (that *GameSession) History() []HistoryEntry {
	return append([]HistoryEntry(nil), that.history...)
}

func (that *GameSession) State() State {
	switch that.phase {
	case PhaseConfiguring:
		return StateConfiguring
	case PhaseOver:
		return StateGameOver
	}

	switch {
	case that.ability == entity.AbilitySwap && that.swapFirst != nil:
		return StateSwapAwaitingSecondClick
	case that.ability != entity.AbilityNone:
		return StateAbilityArmed
	default:
		return StateAwaitingMove
	}
}

// reinitialize wipes everything but the twists and the injected collaborators.
func (that *GameSession) reinitialize() {
	that.phase = PhaseConfiguring
	that.mode = entity.ModeHuman
	that.difficulty = ""
	that.bot = nil
	that.clearRound()
	that.message = "Select game mode and twists."
}

func (that *GameSession) resetRound() {
	that.clearRound()
	that.phase = PhaseInProgress
	// a fresh game shows every mark until the first turn passes
	that.revealAll = true
}

func (that *GameSession) clearRound() {
	that.board = entity.Board{}
	that.levels = entity.EvolveLevels{}
	that.current = entity.PlayerX
	that.undoMode = false
	that.ability = entity.AbilityNone
	that.swapFirst = nil
	that.charges = map[entity.Mark]entity.AbilityCounters{
		entity.PlayerX: entity.NewAbilityCounters(),
		entity.PlayerO: entity.NewAbilityCounters(),
	}
	that.blocked = nil
	that.turnStart = that.now()
	that.lastShiftMark = 0
	that.history = nil
	that.revealAll = false
	that.outcome = entity.InProgress()
}

// begin starts a public operation: notices from the previous call are dropped.
func (that *GameSession) begin() {
	that.notices = that.notices[:0]
}

// reject reports a recoverable failure without touching game state.
func (that *GameSession) reject(err error) (View, error) {
	that.message = apperror.Message(err)
	that.logger.Debug("action rejected", "player", that.current, "error", err)

	return that.View(), err
}

func (that *GameSession) requireActive() error {
	if that.phase != PhaseInProgress {
		return apperror.ErrGameNotActive
	}

	return nil
}

func (that *GameSession) botEnabled() bool {
	return that.mode == entity.ModeBot && that.bot != nil
}

func (that *GameSession) pushHistory() {
	that.history = append(that.history, HistoryEntry{Board: that.board, Levels: that.levels.Clone()})
}

func (that *GameSession) compose(head string) string {
	for _, notice := range that.notices {
		head += "\n" + notice
	}

	return head
}

func turnMessage(player entity.Mark) string {
	return fmt.Sprintf("Player %s's turn.", player)
}

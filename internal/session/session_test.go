package session

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/rocketscienceinc/twisted-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/twisted-tictactoe/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

func at(row, col int) entity.Coords {
	return entity.Coords{Row: row, Col: col}
}

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

// started returns a human vs human session that is already in progress.
func started(t *testing.T, twists entity.TwistConfig, opts ...Option) *GameSession {
	t.Helper()

	opts = append([]Option{WithRand(seeded())}, opts...)
	s := New(opts...)

	_, err := s.ConfigureTwists(twists)
	require.NoError(t, err)

	_, err = s.StartGame(entity.ModeHuman, "")
	require.NoError(t, err)

	return s
}

func play(t *testing.T, s *GameSession, cells ...entity.Coords) View {
	t.Helper()

	var view View

	for _, c := range cells {
		var err error

		view, err = s.AttemptMove(c)
		require.NoError(t, err, "move %s", c)
	}

	return view
}

func TestNew(t *testing.T) {
	s := New()

	view := s.View()
	assert.Equal(t, PhaseConfiguring, view.Phase)
	assert.Equal(t, StateConfiguring, view.State)
	assert.True(t, s.Twists().Standard())
	assert.Equal(t, entity.DefaultTurnTimeLimit, s.Twists().TurnTimeLimit)
}

func TestStartGame(t *testing.T) {
	t.Run("Standard game announces the missing twists", func(t *testing.T) {
		s := New()

		view, err := s.StartGame(entity.ModeHuman, "")
		require.NoError(t, err)

		assert.Equal(t, PhaseInProgress, view.Phase)
		assert.Equal(t, StateAwaitingMove, view.State)
		assert.Equal(t, x, view.CurrentPlayer)
		assert.Equal(t, entity.InProgress(), view.Outcome)
		assert.Contains(t, view.Message, "Player X's turn.")
		assert.Contains(t, view.Message, "Playing a standard Tic-Tac-Toe game.")
	})

	t.Run("Unknown mode is rejected", func(t *testing.T) {
		s := New()

		_, err := s.StartGame("solo", "")
		require.ErrorIs(t, err, apperror.ErrUnknownMode)
		assert.Equal(t, PhaseConfiguring, s.Phase())
	})

	t.Run("Bot mode needs a known difficulty", func(t *testing.T) {
		s := New()

		_, err := s.StartGame(entity.ModeBot, "impossible")
		require.ErrorIs(t, err, apperror.ErrUnknownDifficulty)
		assert.Equal(t, PhaseConfiguring, s.Phase())
	})

	t.Run("Cannot start twice", func(t *testing.T) {
		s := started(t, entity.TwistConfig{})

		_, err := s.StartGame(entity.ModeHuman, "")
		require.ErrorIs(t, err, apperror.ErrGameAlreadyStarted)
	})
}

func TestConfigureTwists(t *testing.T) {
	t.Run("Turn limit falls back to the session default", func(t *testing.T) {
		s := New(WithTurnTimeLimit(3 * time.Second))

		_, err := s.ConfigureTwists(entity.TwistConfig{SuddenDeath: true})
		require.NoError(t, err)

		assert.Equal(t, 3*time.Second, s.Twists().TurnTimeLimit)
	})

	t.Run("Rejected once the game is running", func(t *testing.T) {
		s := started(t, entity.TwistConfig{})

		view, err := s.ConfigureTwists(entity.TwistConfig{Gravity: true})
		require.ErrorIs(t, err, apperror.ErrGameAlreadyStarted)

		assert.False(t, s.Twists().Gravity)
		assert.Equal(t, "Twists can only be changed before the game starts.", view.Message)
	})
}

func TestStandardGame(t *testing.T) {
	// Given: a standard game
	s := started(t, entity.TwistConfig{})

	// When: X completes the top row
	view := play(t, s, at(0, 0), at(1, 0), at(0, 1), at(1, 1), at(0, 2))

	// Then: X wins and the game is over
	assert.Equal(t, entity.Win(x), view.Outcome)
	assert.Equal(t, PhaseOver, view.Phase)
	assert.Equal(t, StateGameOver, view.State)
	assert.Equal(t, "Player X wins!", view.Message)

	// And: further clicks are rejected without touching the board
	board := s.Board()
	view, err := s.AttemptMove(at(2, 2))
	require.ErrorIs(t, err, apperror.ErrGameNotActive)
	assert.Equal(t, board, s.Board())
	assert.Equal(t, "Game is not active. Start a new game.", view.Message)
}

func TestDraw(t *testing.T) {
	s := started(t, entity.TwistConfig{})

	// X O X / X O O / O X X
	view := play(t, s,
		at(0, 0), at(0, 1), at(0, 2),
		at(1, 1), at(1, 0), at(1, 2),
		at(2, 1), at(2, 0), at(2, 2),
	)

	assert.Equal(t, entity.Draw(), view.Outcome)
	assert.Equal(t, "It's a draw!", view.Message)
}

func TestAttemptMove(t *testing.T) {
	t.Run("Occupied cell keeps the turn", func(t *testing.T) {
		s := started(t, entity.TwistConfig{})
		play(t, s, at(1, 1))

		view, err := s.AttemptMove(at(1, 1))
		require.ErrorIs(t, err, apperror.ErrCellOccupied)

		assert.Equal(t, o, view.CurrentPlayer)
		assert.Equal(t, "This spot is already taken! Choose an empty one.", view.Message)
		assert.Equal(t, 1, view.HistoryDepth)
	})

	t.Run("Off-board cell is rejected", func(t *testing.T) {
		s := started(t, entity.TwistConfig{})

		_, err := s.AttemptMove(at(3, 0))
		require.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Not allowed before the game starts", func(t *testing.T) {
		s := New()

		_, err := s.AttemptMove(at(0, 0))
		require.ErrorIs(t, err, apperror.ErrGameNotActive)
	})

	t.Run("Gravity fills a column bottom up", func(t *testing.T) {
		// Given: a Gravity game
		s := started(t, entity.TwistConfig{Gravity: true})

		// When: the top of column 1 is clicked three times
		play(t, s, at(0, 1), at(0, 1), at(0, 1))

		// Then: the marks stacked from the bottom
		board := s.Board()
		assert.Equal(t, x, board.At(at(2, 1)))
		assert.Equal(t, o, board.At(at(1, 1)))
		assert.Equal(t, x, board.At(at(0, 1)))

		// And: a fourth click is rejected and O keeps the turn
		view, err := s.AttemptMove(at(0, 1))
		require.ErrorIs(t, err, apperror.ErrColumnFull)
		assert.Equal(t, o, view.CurrentPlayer)
		assert.Equal(t, "Column is full! Try another.", view.Message)
	})

	t.Run("Evolve shows levels next to marks", func(t *testing.T) {
		s := started(t, entity.TwistConfig{Evolve: true})

		view := play(t, s, at(0, 0), at(1, 1))

		assert.Equal(t, 1, s.EvolveLevels().Level(at(0, 0)))
		assert.Equal(t, "X1", view.Board[0][0].Text)
		assert.Equal(t, 1, view.Board[1][1].Level)
		assert.Equal(t, "O1", view.Board[1][1].Text)

		_, err := s.AttemptMove(at(0, 0))
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
	})
}

func TestToggleUndo(t *testing.T) {
	t.Run("Removes an own mark and passes the turn", func(t *testing.T) {
		// Given: X and O have each placed a mark
		s := started(t, entity.TwistConfig{Undo: true})
		play(t, s, at(0, 0), at(1, 1), at(2, 2))

		// When: O switches to undo mode
		view, err := s.ToggleUndo()
		require.NoError(t, err)
		assert.True(t, view.UndoMode)

		// Then: X's mark cannot be removed
		_, err = s.AttemptMove(at(0, 0))
		require.ErrorIs(t, err, apperror.ErrNotYourMark)

		// And: O's own mark can
		view, err = s.AttemptMove(at(1, 1))
		require.NoError(t, err)

		board := s.Board()
		assert.Equal(t, e, board.At(at(1, 1)))
		assert.Equal(t, x, view.CurrentPlayer)
		assert.Contains(t, view.Message, "Mark removed!")
	})

	t.Run("Toggling back restores placement", func(t *testing.T) {
		s := started(t, entity.TwistConfig{Undo: true})

		_, err := s.ToggleUndo()
		require.NoError(t, err)

		view, err := s.ToggleUndo()
		require.NoError(t, err)

		assert.False(t, view.UndoMode)
		assert.Equal(t, "Player X's turn.", view.Message)
	})

	t.Run("Requires the Undo twist", func(t *testing.T) {
		s := started(t, entity.TwistConfig{})

		_, err := s.ToggleUndo()
		require.ErrorIs(t, err, apperror.ErrTwistDisabled)
	})

	t.Run("Rejected while an ability is armed", func(t *testing.T) {
		s := started(t, entity.TwistConfig{Undo: true, Abilities: true})

		_, err := s.ActivateAbility(entity.AbilityRemove)
		require.NoError(t, err)

		_, err = s.ToggleUndo()
		require.ErrorIs(t, err, apperror.ErrAbilityInProgress)
	})
}

func TestSuddenDeath(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	now := start
	clock := func() time.Time { return now }

	s := started(t, entity.TwistConfig{SuddenDeath: true, TurnTimeLimit: 10 * time.Second}, WithClock(clock))

	t.Run("Still in time", func(t *testing.T) {
		now = start.Add(4 * time.Second)

		view, err := s.CheckTimeout(now)
		require.NoError(t, err)

		assert.Equal(t, PhaseInProgress, view.Phase)
		require.NotNil(t, view.RemainingSeconds)
		assert.Equal(t, 6, *view.RemainingSeconds)
	})

	t.Run("A move restarts the clock", func(t *testing.T) {
		now = start.Add(8 * time.Second)
		play(t, s, at(1, 1))

		now = start.Add(15 * time.Second)
		_, expired := s.TimedOut(now)
		assert.False(t, expired)
	})

	t.Run("Running out of time loses", func(t *testing.T) {
		now = start.Add(18 * time.Second)

		view, err := s.CheckTimeout(now)
		require.NoError(t, err)

		assert.Equal(t, entity.Win(x), view.Outcome)
		assert.Equal(t, "Player O ran out of time! Player X wins!", view.Message)
		assert.Nil(t, view.RemainingSeconds)
	})

	t.Run("No-op without Sudden Death", func(t *testing.T) {
		plain := started(t, entity.TwistConfig{})

		view, err := plain.CheckTimeout(time.Now().Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, PhaseInProgress, view.Phase)
	})
}

func TestBoardShift(t *testing.T) {
	// Given: a Board Shift game
	s := started(t, entity.TwistConfig{BoardShift: true})

	// When: the fifth mark lands
	view := play(t, s, at(2, 0), at(2, 1), at(2, 2), at(1, 0), at(1, 1))

	// Then: every row moved up and the bottom row is empty
	assert.Equal(t, entity.Board{
		{o, x, e},
		{x, o, x},
		{e, e, e},
	}, s.Board())
	assert.Equal(t, o, view.CurrentPlayer)
	assert.Equal(t, "Player O's turn.\nBoard has shifted!", view.Message)

	// And: the next shift waits for five more marks
	view = play(t, s, at(2, 0))
	assert.NotContains(t, view.Message, "Board has shifted!")
}

func TestBotMode(t *testing.T) {
	t.Run("Bot answers every human move", func(t *testing.T) {
		s := New(WithRand(seeded()))

		_, err := s.StartGame(entity.ModeBot, entity.DifficultyBasic)
		require.NoError(t, err)

		view := play(t, s, at(1, 1))

		board := s.Board()
		assert.Equal(t, 2, board.FilledCells())
		assert.Equal(t, x, view.CurrentPlayer)
		assert.Equal(t, 2, view.HistoryDepth)
		assert.Equal(t, entity.DifficultyBasic, view.Difficulty)
	})

	t.Run("Smart bot answers the centre with a corner", func(t *testing.T) {
		s := New(WithRand(seeded()))

		_, err := s.StartGame(entity.ModeBot, entity.DifficultySmart)
		require.NoError(t, err)

		view := play(t, s, at(1, 1))

		board := s.Board()
		assert.Equal(t, o, board.At(at(0, 0)))
		assert.Equal(t, x, view.CurrentPlayer)
	})
}

func TestResetGame(t *testing.T) {
	s := started(t, entity.TwistConfig{Gravity: true, Abilities: true})
	play(t, s, at(0, 0), at(0, 1))

	_, err := s.ActivateAbility(entity.AbilityBlock)
	require.NoError(t, err)

	view, err := s.ResetGame()
	require.NoError(t, err)

	assert.Equal(t, entity.Board{}, s.Board())
	assert.Equal(t, x, view.CurrentPlayer)
	assert.False(t, view.LineBlocked)
	assert.Equal(t, 0, view.HistoryDepth)
	assert.Equal(t, entity.NewAbilityCounters(), view.Abilities[x])
	assert.True(t, s.Twists().Gravity)
	assert.Equal(t, PhaseInProgress, view.Phase)
}

func TestChangeTwists(t *testing.T) {
	s := started(t, entity.TwistConfig{Evolve: true})
	play(t, s, at(0, 0))

	view, err := s.ChangeTwists()
	require.NoError(t, err)

	assert.Equal(t, PhaseConfiguring, view.Phase)
	assert.Equal(t, entity.Board{}, s.Board())

	_, err = s.ConfigureTwists(entity.TwistConfig{Gravity: true})
	require.NoError(t, err)

	_, err = s.StartGame(entity.ModeHuman, "")
	require.NoError(t, err)
	assert.True(t, s.Twists().Gravity)
	assert.False(t, s.Twists().Evolve)
}

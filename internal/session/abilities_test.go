package session

import (
	"testing"

	"github.com/rocketscienceinc/twisted-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/twisted-tictactoe/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restored builds an in-progress human game from a board, with X to move.
func restored(t *testing.T, twists entity.TwistConfig, board entity.Board, blocked *entity.Line) *GameSession {
	t.Helper()

	s, err := Restore(Snapshot{
		Twists:  twists,
		Mode:    entity.ModeHuman,
		Phase:   PhaseInProgress,
		Board:   board,
		Current: x,
		Charges: map[entity.Mark]entity.AbilityCounters{
			x: entity.NewAbilityCounters(),
			o: entity.NewAbilityCounters(),
		},
		Blocked: blocked,
		Outcome: entity.InProgress(),
	}, WithRand(seeded()))
	require.NoError(t, err)

	return s
}

func TestActivateAbility(t *testing.T) {
	abilities := entity.TwistConfig{Abilities: true}

	t.Run("Requires the Abilities twist", func(t *testing.T) {
		s := started(t, entity.TwistConfig{})

		_, err := s.ActivateAbility(entity.AbilitySwap)
		require.ErrorIs(t, err, apperror.ErrTwistDisabled)
	})

	t.Run("Unknown ability", func(t *testing.T) {
		s := started(t, abilities)

		_, err := s.ActivateAbility("teleport")
		require.ErrorIs(t, err, apperror.ErrUnknownAbility)
	})

	t.Run("Arming twice is rejected", func(t *testing.T) {
		s := started(t, abilities)

		view, err := s.ActivateAbility(entity.AbilitySwap)
		require.NoError(t, err)
		assert.Equal(t, StateAbilityArmed, view.State)
		assert.Equal(t, "Ability Mode: Click on the board to use 'Swap' ability!", view.Message)

		_, err = s.ActivateAbility(entity.AbilityRemove)
		require.ErrorIs(t, err, apperror.ErrAbilityInProgress)
		assert.Equal(t, entity.AbilitySwap, s.View().ArmedAbility)
	})
}

func TestBlock(t *testing.T) {
	t.Run("Spends the charge and passes the turn", func(t *testing.T) {
		// Given: an Abilities game
		s := started(t, entity.TwistConfig{Abilities: true})

		// When: X uses Block
		view, err := s.ActivateAbility(entity.AbilityBlock)
		require.NoError(t, err)

		// Then: a line is blocked and O moves next
		assert.True(t, view.LineBlocked)
		assert.Equal(t, o, view.CurrentPlayer)
		assert.Equal(t, 0, view.Abilities[x][entity.AbilityBlock])
		assert.Equal(t, 1, view.Abilities[o][entity.AbilityBlock])
		assert.Contains(t, view.Message, "Player X blocked a random line for the next turn!")

		// And: X cannot block again
		play(t, s, at(0, 0))

		view, err = s.ActivateAbility(entity.AbilityBlock)
		require.ErrorIs(t, err, apperror.ErrNoAbilityChargesLeft)
		assert.Equal(t, x, view.CurrentPlayer)
		assert.Equal(t, "You don't have any uses left for this ability!", view.Message)
	})

	t.Run("Blocked line does not win and is consumed", func(t *testing.T) {
		// Given: the top row is blocked and X can complete it
		top := entity.Lines[0]
		s := restored(t, entity.TwistConfig{Abilities: true}, entity.Board{
			{x, x, e},
			{o, o, e},
			{e, e, e},
		}, &top)

		// When: X completes the blocked row
		view := play(t, s, at(0, 2))

		// Then: no win, and the block is gone
		assert.Equal(t, entity.InProgress(), view.Outcome)
		assert.False(t, view.LineBlocked)
		assert.Equal(t, "Player O's turn.\nPlayer X's winning line was blocked!", view.Message)

		// And: O's middle row still wins
		view = play(t, s, at(1, 2))
		assert.Equal(t, entity.Win(o), view.Outcome)
	})

	t.Run("Bot answers a Block", func(t *testing.T) {
		s := New(WithRand(seeded()))

		_, err := s.ConfigureTwists(entity.TwistConfig{Abilities: true})
		require.NoError(t, err)

		_, err = s.StartGame(entity.ModeBot, entity.DifficultyBasic)
		require.NoError(t, err)

		view, err := s.ActivateAbility(entity.AbilityBlock)
		require.NoError(t, err)

		board := s.Board()
		assert.Equal(t, 1, board.FilledCells())
		assert.Equal(t, x, view.CurrentPlayer)
	})
}

func TestSwap(t *testing.T) {
	t.Run("Exchanges two cells", func(t *testing.T) {
		s := started(t, entity.TwistConfig{Abilities: true, Evolve: true})
		play(t, s, at(0, 0), at(1, 1))

		_, err := s.ActivateAbility(entity.AbilitySwap)
		require.NoError(t, err)

		view, err := s.AttemptMove(at(0, 0))
		require.NoError(t, err)
		assert.Equal(t, StateSwapAwaitingSecondClick, view.State)
		assert.Equal(t, at(0, 0), *view.SwapFirst)
		assert.Equal(t, "Swap: Select second cell to swap with (1,1).", view.Message)

		view, err = s.AttemptMove(at(1, 1))
		require.NoError(t, err)

		board := s.Board()
		assert.Equal(t, o, board.At(at(0, 0)))
		assert.Equal(t, x, board.At(at(1, 1)))
		assert.Equal(t, 1, s.EvolveLevels().Level(at(0, 0)))
		assert.Equal(t, o, view.CurrentPlayer)
		assert.Equal(t, StateAwaitingMove, view.State)
		assert.Equal(t, 0, view.Abilities[x][entity.AbilitySwap])
		assert.Contains(t, view.Message, "Marks swapped!")
	})

	t.Run("Same cell twice keeps the charge", func(t *testing.T) {
		s := started(t, entity.TwistConfig{Abilities: true})

		_, err := s.ActivateAbility(entity.AbilitySwap)
		require.NoError(t, err)
		play(t, s, at(2, 2))

		view, err := s.AttemptMove(at(2, 2))
		require.ErrorIs(t, err, apperror.ErrInvalidSwap)

		assert.Equal(t, StateAwaitingMove, view.State)
		assert.Equal(t, x, view.CurrentPlayer)
		assert.Equal(t, 1, view.Abilities[x][entity.AbilitySwap])
		assert.Equal(t, "Cannot swap a cell with itself!", view.Message)
	})

	t.Run("A swap can win the game", func(t *testing.T) {
		s := restored(t, entity.TwistConfig{Abilities: true}, entity.Board{
			{x, x, o},
			{o, e, x},
			{e, o, e},
		}, nil)

		_, err := s.ActivateAbility(entity.AbilitySwap)
		require.NoError(t, err)

		view := play(t, s, at(0, 2), at(1, 2))

		assert.Equal(t, entity.Win(x), view.Outcome)
		assert.Equal(t, "Player X wins!\nMarks swapped!", view.Message)
	})
}

func TestRemove(t *testing.T) {
	t.Run("Removes an opponent mark", func(t *testing.T) {
		s := started(t, entity.TwistConfig{Abilities: true})
		play(t, s, at(0, 0), at(1, 1))

		_, err := s.ActivateAbility(entity.AbilityRemove)
		require.NoError(t, err)

		view, err := s.AttemptMove(at(1, 1))
		require.NoError(t, err)

		board := s.Board()
		assert.Equal(t, e, board.At(at(1, 1)))
		assert.Equal(t, o, view.CurrentPlayer)
		assert.Equal(t, 0, view.Abilities[x][entity.AbilityRemove])
		assert.Equal(t, 3, view.HistoryDepth)
		assert.Contains(t, view.Message, "Mark of player O at (2,2) removed!")
	})

	t.Run("Empty cell keeps the charge and the turn", func(t *testing.T) {
		s := started(t, entity.TwistConfig{Abilities: true})

		_, err := s.ActivateAbility(entity.AbilityRemove)
		require.NoError(t, err)

		view, err := s.AttemptMove(at(1, 1))
		require.ErrorIs(t, err, apperror.ErrEmptyCellRemoval)

		assert.Equal(t, x, view.CurrentPlayer)
		assert.Equal(t, entity.AbilityNone, view.ArmedAbility)
		assert.Equal(t, 1, view.Abilities[x][entity.AbilityRemove])
	})
}

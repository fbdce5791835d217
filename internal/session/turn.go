package session

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/twisted-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/twisted-tictactoe/internal/entity"
	"github.com/rocketscienceinc/twisted-tictactoe/internal/tictactoe"
)

// AttemptMove - handles a click on target for the player to move.
//
// Depending on the current state the click resolves an armed ability, removes one of the
// player's own marks in undo mode, or places a mark. In bot mode the bot answers before
// this returns.
func (that *GameSession) AttemptMove(target entity.Coords) (View, error) {
	that.begin()

	if err := that.requireActive(); err != nil {
		return that.reject(err)
	}

	if !target.Valid() {
		return that.reject(apperror.ErrInvalidCell)
	}

	if that.twists.MemoryChallenge {
		that.revealAll = true
	}

	var err error

	switch {
	case that.ability != entity.AbilityNone:
		err = that.useAbilityAt(target)
	case that.twists.Undo && that.undoMode:
		err = that.undoAt(target)
	default:
		err = that.placeAt(target)
	}

	if err != nil {
		return that.reject(err)
	}

	that.playBotTurn()

	return that.View(), nil
}

// ToggleUndo - switches between placing marks and removing your own marks.
func (that *GameSession) ToggleUndo() (View, error) {
	that.begin()

	if err := that.requireActive(); err != nil {
		return that.reject(err)
	}

	if !that.twists.Undo {
		return that.reject(apperror.ErrTwistDisabled)
	}

	if that.ability != entity.AbilityNone {
		return that.reject(apperror.ErrAbilityInProgress)
	}

	that.undoMode = !that.undoMode

	if that.twists.MemoryChallenge {
		that.revealAll = false
	}

	if that.undoMode {
		that.message = "Undo Mode Active: Click on your mark to remove it."
	} else {
		that.message = turnMessage(that.current)
	}

	return that.View(), nil
}

// TimedOut reports the outcome a Sudden Death timeout would produce at now.
// It does not change the session.
func (that *GameSession) TimedOut(now time.Time) (entity.Outcome, bool) {
	if that.phase != PhaseInProgress || !that.twists.SuddenDeath {
		return entity.Outcome{}, false
	}

	if now.Sub(that.turnStart) < that.twists.TurnTimeLimit {
		return entity.Outcome{}, false
	}

	return entity.Win(that.current.Opponent()), true
}

// CheckTimeout - ends the game when the player to move has used up the turn time limit.
// Does nothing when Sudden Death is off or the game is not running.
func (that *GameSession) CheckTimeout(now time.Time) (View, error) {
	that.begin()

	outcome, expired := that.TimedOut(now)
	if !expired {
		return that.View(), nil
	}

	loser := that.current
	that.endGame(outcome, fmt.Sprintf("Player %s ran out of time! Player %s wins!", loser, outcome.Winner))
	that.logger.Info("turn timed out", "player", loser, "limit", that.twists.TurnTimeLimit)

	return that.View(), nil
}

// RemainingTime is the Sudden Death time left for the player to move, never negative.
func (that *GameSession) RemainingTime(now time.Time) time.Duration {
	return max(0, that.twists.TurnTimeLimit-now.Sub(that.turnStart))
}

func (that *GameSession) placeAt(target entity.Coords) error {
	before := HistoryEntry{Board: that.board, Levels: that.levels.Clone()}

	landing, err := tictactoe.PlaceMark(&that.board, target, that.current, that.twists, that.levels)
	if err != nil {
		return err
	}

	that.history = append(that.history, before)
	that.logger.Debug("mark placed", "player", that.current, "cell", landing)

	that.afterPlacement()

	return nil
}

func (that *GameSession) undoAt(target entity.Coords) error {
	if that.board.At(target) != that.current {
		return apperror.ErrNotYourMark
	}

	that.pushHistory()
	tictactoe.RemoveMark(&that.board, target, that.levels)
	that.notices = append(that.notices, "Mark removed!")
	that.logger.Debug("mark undone", "player", that.current, "cell", target)

	if !that.settle(that.current) {
		that.endTurn()
	}

	return nil
}

// afterPlacement evaluates the mover only: a placement cannot complete an opponent line.
func (that *GameSession) afterPlacement() {
	mover := that.current

	result := that.evaluate(mover)

	switch result.Verdict {
	case tictactoe.VerdictWin:
		that.endGame(entity.Win(mover), fmt.Sprintf("Player %s wins!", mover))
	case tictactoe.VerdictDraw:
		that.endGame(entity.Draw(), "It's a draw!")
	default:
		that.endTurn()
	}
}

// settle checks both players after an action that may have completed a line for either
// of them, first first. Reports whether the game ended.
func (that *GameSession) settle(first entity.Mark) bool {
	for _, player := range []entity.Mark{first, first.Opponent()} {
		if that.evaluate(player).IsWin() {
			that.endGame(entity.Win(player), fmt.Sprintf("Player %s wins!", player))

			return true
		}
	}

	if that.board.IsFull() {
		that.endGame(entity.Draw(), "It's a draw!")

		return true
	}

	return false
}

func (that *GameSession) evaluate(player entity.Mark) tictactoe.Evaluation {
	result := tictactoe.Evaluate(&that.board, that.levels, player, that.twists, that.blocked, true)

	if result.BlockedLineConsumed {
		that.blocked = nil
		that.notices = append(that.notices, fmt.Sprintf("Player %s's winning line was blocked!", player))
		that.logger.Info("blocked line consumed", "player", player)
	}

	return result
}

// endTurn hands the move to the opponent and applies Board Shift when it is due.
func (that *GameSession) endTurn() {
	if that.twists.MemoryChallenge {
		that.revealAll = false
	}

	that.current = that.current.Opponent()
	that.turnStart = that.now()

	if that.twists.BoardShift {
		filled := that.board.FilledCells()

		if tictactoe.ShouldShift(filled, that.lastShiftMark) {
			that.lastShiftMark = filled
			tictactoe.ShiftBoard(&that.board, that.levels)
			that.notices = append(that.notices, "Board has shifted!")
			that.logger.Debug("board shifted", "filled", filled)

			if that.settle(that.current.Opponent()) {
				return
			}
		}
	}

	that.message = that.compose(turnMessage(that.current))
}

func (that *GameSession) endGame(outcome entity.Outcome, message string) {
	that.phase = PhaseOver
	that.outcome = outcome
	that.ability = entity.AbilityNone
	that.swapFirst = nil
	that.undoMode = false
	that.revealAll = true
	that.message = that.compose(message)

	that.logger.Info("game over", "status", outcome.Status, "winner", outcome.Winner)
}

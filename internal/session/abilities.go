package session

import (
	"fmt"

	"github.com/rocketscienceinc/twisted-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/twisted-tictactoe/internal/entity"
	"github.com/rocketscienceinc/twisted-tictactoe/internal/tictactoe"
)

// ActivateAbility - arms Swap or Remove for the next click, or resolves Block at once.
func (that *GameSession) ActivateAbility(ability entity.AbilityType) (View, error) {
	that.begin()

	if err := that.requireActive(); err != nil {
		return that.reject(err)
	}

	if !that.twists.Abilities {
		return that.reject(apperror.ErrTwistDisabled)
	}

	if _, err := entity.ParseAbility(string(ability)); err != nil {
		return that.reject(err)
	}

	if that.ability != entity.AbilityNone {
		return that.reject(apperror.ErrAbilityInProgress)
	}

	if that.charges[that.current][ability] <= 0 {
		return that.reject(apperror.ErrNoAbilityChargesLeft)
	}

	if that.twists.MemoryChallenge {
		that.revealAll = true
	}

	that.undoMode = false

	if ability == entity.AbilityBlock {
		that.useBlock()
		that.playBotTurn()

		return that.View(), nil
	}

	that.ability = ability
	that.message = fmt.Sprintf("Ability Mode: Click on the board to use '%s' ability!", ability.Title())
	that.logger.Debug("ability armed", "player", that.current, "ability", ability)

	return that.View(), nil
}

// useBlock nullifies one random line for the opponent. The block persists until a
// matching winning line is found and discarded.
func (that *GameSession) useBlock() {
	player := that.current

	// charge availability was checked by the caller
	_ = that.charges[player].Spend(entity.AbilityBlock)

	line := entity.Lines[that.rng.IntN(len(entity.Lines))]
	that.blocked = &line

	that.notices = append(that.notices, fmt.Sprintf("Player %s blocked a random line for the next turn!", player))
	that.logger.Debug("line blocked", "player", player, "line", line)

	that.endTurn()
}

func (that *GameSession) useAbilityAt(target entity.Coords) error {
	switch that.ability {
	case entity.AbilityRemove:
		return that.removeAt(target)
	case entity.AbilitySwap:
		return that.swapAt(target)
	default:
		that.clearAbility()

		return apperror.ErrUnknownAbility
	}
}

func (that *GameSession) removeAt(target entity.Coords) error {
	owner := that.board.At(target)
	if owner == entity.EmptyCell {
		that.clearAbility()

		return apperror.ErrEmptyCellRemoval
	}

	that.pushHistory()
	tictactoe.RemoveMark(&that.board, target, that.levels)
	_ = that.charges[that.current].Spend(entity.AbilityRemove)
	that.clearAbility()

	that.notices = append(that.notices, fmt.Sprintf("Mark of player %s at %s removed!", owner, target))
	that.logger.Debug("mark removed", "player", that.current, "cell", target, "owner", owner)

	if !that.settle(that.current) {
		that.endTurn()
	}

	return nil
}

func (that *GameSession) swapAt(target entity.Coords) error {
	if that.swapFirst == nil {
		first := target
		that.swapFirst = &first
		that.message = fmt.Sprintf("Swap: Select second cell to swap with %s.", target)

		return nil
	}

	first := *that.swapFirst
	if first == target {
		that.clearAbility()

		return apperror.ErrInvalidSwap
	}

	that.pushHistory()

	if err := tictactoe.SwapMarks(&that.board, first, target, that.levels); err != nil {
		that.history = that.history[:len(that.history)-1]
		that.clearAbility()

		return err
	}

	_ = that.charges[that.current].Spend(entity.AbilitySwap)
	that.clearAbility()

	that.notices = append(that.notices, "Marks swapped!")
	that.logger.Debug("marks swapped", "player", that.current, "first", first, "second", target)

	if !that.settle(that.current) {
		that.endTurn()
	}

	return nil
}

func (that *GameSession) clearAbility() {
	that.ability = entity.AbilityNone
	that.swapFirst = nil

	if that.twists.MemoryChallenge {
		that.revealAll = false
	}
}

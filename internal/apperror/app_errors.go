package apperror

import "errors"

var (
	ErrCellOccupied         = errors.New("cell is already occupied")
	ErrColumnFull           = errors.New("column is full")
	ErrMaxLevelReached      = errors.New("cell has reached max evolution level")
	ErrNotYourMark          = errors.New("cell does not hold your mark")
	ErrInvalidSwap          = errors.New("cannot swap a cell with itself")
	ErrEmptyCellRemoval     = errors.New("cannot remove an empty cell")
	ErrNoAbilityChargesLeft = errors.New("no ability charges left")
	ErrGameNotActive        = errors.New("game is not active")

	ErrInvalidCell        = errors.New("invalid cell coordinates")
	ErrTwistDisabled      = errors.New("twist is not enabled")
	ErrAbilityInProgress  = errors.New("another ability is in progress")
	ErrGameAlreadyStarted = errors.New("game is already started")
	ErrUnknownAbility     = errors.New("unknown ability")
	ErrUnknownDifficulty  = errors.New("unknown bot difficulty")
	ErrUnknownMode        = errors.New("unknown game mode")
	ErrSessionNotFound    = errors.New("session not found")
)

var messages = []struct {
	err error
	msg string
}{
	{ErrCellOccupied, "This spot is already taken! Choose an empty one."},
	{ErrColumnFull, "Column is full! Try another."},
	{ErrMaxLevelReached, "This spot has reached max evolution level!"},
	{ErrNotYourMark, "You can only undo your own marks in undo mode!"},
	{ErrInvalidSwap, "Cannot swap a cell with itself!"},
	{ErrEmptyCellRemoval, "Cannot remove an empty spot!"},
	{ErrNoAbilityChargesLeft, "You don't have any uses left for this ability!"},
	{ErrGameNotActive, "Game is not active. Start a new game."},
	{ErrInvalidCell, "That cell is not on the board."},
	{ErrTwistDisabled, "That twist is not enabled for this game."},
	{ErrAbilityInProgress, "Finish the ability you already started."},
	{ErrGameAlreadyStarted, "Twists can only be changed before the game starts."},
}

// Message returns the user-facing text for a recoverable error.
func Message(err error) string {
	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}

	return err.Error()
}

var recoverable = []error{
	ErrCellOccupied, ErrColumnFull, ErrMaxLevelReached, ErrNotYourMark, ErrInvalidSwap,
	ErrEmptyCellRemoval, ErrNoAbilityChargesLeft, ErrGameNotActive, ErrInvalidCell,
	ErrTwistDisabled, ErrAbilityInProgress, ErrGameAlreadyStarted, ErrUnknownAbility,
	ErrUnknownDifficulty, ErrUnknownMode, ErrSessionNotFound,
}

// IsRecoverable reports whether err is a rule rejection the player can act on, as
// opposed to an infrastructure failure.
func IsRecoverable(err error) bool {
	for _, target := range recoverable {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

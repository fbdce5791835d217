package entity

import (
	"fmt"

	"github.com/rocketscienceinc/twisted-tictactoe/internal/apperror"
)

type GameMode string

const (
	ModeHuman GameMode = "human"
	ModeBot   GameMode = "bot"
)

func ParseMode(name string) (GameMode, error) {
	switch mode := GameMode(name); mode {
	case ModeHuman, ModeBot:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownMode, name)
	}
}

type Difficulty string

const (
	DifficultyBasic Difficulty = "basic"
	DifficultySmart Difficulty = "smart"
)

func ParseDifficulty(name string) (Difficulty, error) {
	switch difficulty := Difficulty(name); difficulty {
	case DifficultyBasic, DifficultySmart:
		return difficulty, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, name)
	}
}

type OutcomeStatus string

const (
	StatusInProgress OutcomeStatus = "in_progress"
	StatusWin        OutcomeStatus = "win"
	StatusDraw       OutcomeStatus = "draw"
)

type Outcome struct {
	Status OutcomeStatus `json:"status"`
	Winner Mark          `json:"winner,omitempty"`
}

func InProgress() Outcome {
	return Outcome{Status: StatusInProgress}
}

func Win(player Mark) Outcome {
	return Outcome{Status: StatusWin, Winner: player}
}

func Draw() Outcome {
	return Outcome{Status: StatusDraw}
}

func (that Outcome) IsFinished() bool {
	return that.Status == StatusWin || that.Status == StatusDraw
}

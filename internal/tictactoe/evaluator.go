package tictactoe

import "github.com/rocketscienceinc/twisted-tictactoe/internal/entity"

type Verdict string

const (
	VerdictNoWin Verdict = "no_win"
	VerdictWin   Verdict = "win"
	VerdictDraw  Verdict = "draw"
)

// Evaluation is the result of checking one player's position.
type Evaluation struct {
	Verdict Verdict
	Lines   []entity.Line

	// BlockedLineConsumed is set when a winning line matched the blocked line and was
	// discarded. Only reported for authoritative evaluations; the caller clears its block.
	BlockedLineConsumed bool
}

func (that Evaluation) IsWin() bool {
	return that.Verdict == VerdictWin
}

// Evaluate - checks whether player holds a winning line, or the board is drawn.
//
// Under Evolve a line counts only if every cell in it has a level above zero. Under
// Abilities a winning line equal to blocked is discarded, but only when authoritative is
// true: hypothetical boards explored by the bot ignore the block and never consume it.
func Evaluate(
	board *entity.Board,
	levels entity.EvolveLevels,
	player entity.Mark,
	twists entity.TwistConfig,
	blocked *entity.Line,
	authoritative bool,
) Evaluation {
	var result Evaluation

	for _, line := range WinningLines(board, levels, player, twists) {
		if authoritative && twists.Abilities && blocked != nil && line.SameCells(*blocked) {
			result.BlockedLineConsumed = true
			continue
		}

		result.Lines = append(result.Lines, line)
	}

	switch {
	case len(result.Lines) > 0:
		result.Verdict = VerdictWin
	case board.IsFull():
		result.Verdict = VerdictDraw
	default:
		result.Verdict = VerdictNoWin
	}

	return result
}

// WinningLines lists the canonical lines fully held by player, before any block is applied.
func WinningLines(board *entity.Board, levels entity.EvolveLevels, player entity.Mark, twists entity.TwistConfig) []entity.Line {
	var lines []entity.Line

	for _, line := range entity.Lines {
		if !holds(board, line, player) {
			continue
		}

		if twists.Evolve && !evolved(levels, line) {
			continue
		}

		lines = append(lines, line)
	}

	return lines
}

func holds(board *entity.Board, line entity.Line, player entity.Mark) bool {
	if player == entity.EmptyCell {
		return false
	}

	for _, c := range line {
		if board.At(c) != player {
			return false
		}
	}

	return true
}

func evolved(levels entity.EvolveLevels, line entity.Line) bool {
	for _, c := range line {
		if levels[c] <= 0 {
			return false
		}
	}

	return true
}

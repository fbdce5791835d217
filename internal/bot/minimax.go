package bot

import (
	"math/rand/v2"

	"github.com/rocketscienceinc/twisted-tictactoe/internal/entity"
	"github.com/rocketscienceinc/twisted-tictactoe/internal/tictactoe"
)

// SearchHorizon is the depth at which minimax stops and scores the position as neutral.
const SearchHorizon = 5

var cells = entity.AllCoords()

const (
	scoreWin  = 1
	scoreLoss = -1
	scoreDraw = 0
)

// Minimax - scores a position from me's point of view.
// board is taken by value and every child gets its own copy of levels, so callers' state
// is never touched. Moves go through tictactoe.PlaceMark, so Gravity and the Evolve cap
// apply exactly as they do for real placements. Board shift and blocked lines are not simulated.
func Minimax(board entity.Board, levels entity.EvolveLevels, depth int, maximizing bool, twists entity.TwistConfig, me entity.Mark) int {
	opponent := me.Opponent()

	if tictactoe.Evaluate(&board, levels, me, twists, nil, false).IsWin() {
		return scoreWin
	}

	if tictactoe.Evaluate(&board, levels, opponent, twists, nil, false).IsWin() {
		return scoreLoss
	}

	if board.IsFull() {
		return scoreDraw
	}

	if depth >= SearchHorizon {
		return scoreDraw
	}

	mover := opponent
	if maximizing {
		mover = me
	}

	best, found := 0, false
	for _, child := range children(board, levels, twists, mover) {
		score := Minimax(child.board, child.levels, depth+1, !maximizing, twists, me)

		switch {
		case !found:
			best = score
		case maximizing && score > best:
			best = score
		case !maximizing && score < best:
			best = score
		}

		found = true
	}

	if !found {
		return scoreDraw
	}

	return best
}

// ChooseSmartMove - runs minimax once per legal move and keeps the best.
// Ties keep the earliest move in row-major order. Falls back to RandomMove when nothing is legal.
func ChooseSmartMove(board entity.Board, levels entity.EvolveLevels, twists entity.TwistConfig, me entity.Mark, rng *rand.Rand) (entity.Coords, error) {
	var (
		move      entity.Coords
		bestScore int
		found     bool
	)

	for _, child := range children(board, levels, twists, me) {
		score := Minimax(child.board, child.levels, 0, false, twists, me)
		if !found || score > bestScore {
			move, bestScore, found = child.move, score, true
		}
	}

	if !found {
		return RandomMove(&board, levels, twists, rng)
	}

	return move, nil
}

type position struct {
	move   entity.Coords
	board  entity.Board
	levels entity.EvolveLevels
}

// children expands every legal placement for mover, in row-major order of the clicked cell.
// Clicks that land on the same cell (Gravity) produce one child.
func children(board entity.Board, levels entity.EvolveLevels, twists entity.TwistConfig, mover entity.Mark) []position {
	result := make([]position, 0, entity.Size*entity.Size)
	var seen [entity.Size][entity.Size]bool

	for _, target := range cells {
		child := position{board: board}
		if twists.Evolve {
			child.levels = levels.Clone()
		}

		landing, err := tictactoe.PlaceMark(&child.board, target, mover, twists, child.levels)
		if err != nil || seen[landing.Row][landing.Col] {
			continue
		}

		seen[landing.Row][landing.Col] = true
		child.move = landing
		result = append(result, child)
	}

	return result
}

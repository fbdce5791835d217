package bot

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/twisted-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/twisted-tictactoe/internal/entity"
	"github.com/rocketscienceinc/twisted-tictactoe/internal/tictactoe"
)

var ErrNoAvailableMoves = errors.New("no available moves")

// Strategy picks the bot's next placement. Implementations work on copies only.
type Strategy interface {
	ChooseMove(board entity.Board, levels entity.EvolveLevels, twists entity.TwistConfig) (entity.Coords, error)
}

// New creates the strategy for a difficulty tier, playing as mark.
func New(difficulty entity.Difficulty, mark entity.Mark, rng *rand.Rand) (Strategy, error) {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint: gosec // game randomness
	}

	switch difficulty {
	case entity.DifficultyBasic:
		return &basicBot{rng: rng}, nil
	case entity.DifficultySmart:
		return &smartBot{mark: mark, rng: rng}, nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, difficulty)
	}
}

type basicBot struct {
	rng *rand.Rand
}

func (that *basicBot) ChooseMove(board entity.Board, levels entity.EvolveLevels, twists entity.TwistConfig) (entity.Coords, error) {
	return RandomMove(&board, levels, twists, that.rng)
}

type smartBot struct {
	mark entity.Mark
	rng  *rand.Rand
}

func (that *smartBot) ChooseMove(board entity.Board, levels entity.EvolveLevels, twists entity.TwistConfig) (entity.Coords, error) {
	return ChooseSmartMove(board, levels, twists, that.mark, that.rng)
}

// LegalMoves lists the cells a placement could land on, in row-major order.
// Under Gravity there is at most one per column.
func LegalMoves(board *entity.Board, levels entity.EvolveLevels, twists entity.TwistConfig) []entity.Coords {
	moves := make([]entity.Coords, 0, entity.Size*entity.Size)
	seen := make(map[entity.Coords]bool, entity.Size*entity.Size)

	for _, target := range entity.AllCoords() {
		landing, err := tictactoe.LandingCell(board, target, twists)
		if err != nil || seen[landing] {
			continue
		}

		seen[landing] = true

		if board.At(landing) != entity.EmptyCell {
			continue
		}

		if twists.Evolve && levels[landing] >= entity.MaxEvolveLevel {
			continue
		}

		moves = append(moves, landing)
	}

	return moves
}

// RandomMove - picks uniformly among the legal landing cells.
func RandomMove(board *entity.Board, levels entity.EvolveLevels, twists entity.TwistConfig, rng *rand.Rand) (entity.Coords, error) {
	moves := LegalMoves(board, levels, twists)
	if len(moves) == 0 {
		return entity.Coords{}, ErrNoAvailableMoves
	}

	return moves[rng.IntN(len(moves))], nil
}

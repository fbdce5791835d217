package usecase

import (
	"context"

	"github.com/rocketscienceinc/twisted-tictactoe/internal/entity"
	"github.com/rocketscienceinc/twisted-tictactoe/internal/session"
)

// GameUseCase is everything the transports can do with a stored session.
// Rule violations come back as apperror sentinels together with a view that carries the
// user-facing message; any other error means the session could not be loaded or saved.
type GameUseCase interface {
	CreateSession(ctx context.Context) (string, session.View, error)
	GetSession(ctx context.Context, id string) (session.View, error)
	DeleteSession(ctx context.Context, id string) error

	ConfigureTwists(ctx context.Context, id string, twists entity.TwistConfig) (session.View, error)
	StartGame(ctx context.Context, id string, mode entity.GameMode, difficulty entity.Difficulty) (session.View, error)
	ResetGame(ctx context.Context, id string) (session.View, error)
	ChangeTwists(ctx context.Context, id string) (session.View, error)

	AttemptMove(ctx context.Context, id string, target entity.Coords) (session.View, error)
	ActivateAbility(ctx context.Context, id string, ability entity.AbilityType) (session.View, error)
	ToggleUndo(ctx context.Context, id string) (session.View, error)
	CheckTimeout(ctx context.Context, id string) (session.View, error)
}

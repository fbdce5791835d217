package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/twisted-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/twisted-tictactoe/internal/entity"
	"github.com/rocketscienceinc/twisted-tictactoe/internal/session"
)

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, id string, snap session.Snapshot) error
	GetByID(ctx context.Context, id string) (session.Snapshot, error)
	DeleteByID(ctx context.Context, id string) error
}

type GameManager struct {
	logger      *slog.Logger
	sessionRepo sessionRepo
	options     []session.Option
	now         func() time.Time

	locks sync.Map
}

// NewGameManager - options are applied to every session the manager creates or loads.
func NewGameManager(logger *slog.Logger, sessionRepo sessionRepo, options ...session.Option) *GameManager {
	return &GameManager{
		logger:      logger.With("component", "game_manager"),
		sessionRepo: sessionRepo,
		options:     append([]session.Option{session.WithLogger(logger)}, options...),
		now:         time.Now,
	}
}

// WithClock replaces the clock used for Sudden Death checks.
func (that *GameManager) WithClock(now func() time.Time) *GameManager {
	that.now = now
	that.options = append(that.options, session.WithClock(now))

	return that
}

func (that *GameManager) CreateSession(ctx context.Context) (string, session.View, error) {
	id := uuid.NewString()
	s := session.New(that.options...)

	if err := that.sessionRepo.CreateOrUpdate(ctx, id, s.Snapshot()); err != nil {
		return "", session.View{}, fmt.Errorf("failed to create session: %w", err)
	}

	that.logger.Info("session created", "session_id", id)

	return id, s.View(), nil
}

func (that *GameManager) GetSession(ctx context.Context, id string) (session.View, error) {
	s, err := that.load(ctx, id)
	if err != nil {
		return session.View{}, err
	}

	return s.View(), nil
}

func (that *GameManager) DeleteSession(ctx context.Context, id string) error {
	lock := that.lock(id)
	defer lock.Unlock()

	if err := that.sessionRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	that.locks.Delete(id)
	that.logger.Info("session deleted", "session_id", id)

	return nil
}

func (that *GameManager) ConfigureTwists(ctx context.Context, id string, twists entity.TwistConfig) (session.View, error) {
	return that.apply(ctx, id, func(s *session.GameSession) (session.View, error) {
		return s.ConfigureTwists(twists)
	})
}

func (that *GameManager) StartGame(
	ctx context.Context, id string, mode entity.GameMode, difficulty entity.Difficulty,
) (session.View, error) {
	return that.apply(ctx, id, func(s *session.GameSession) (session.View, error) {
		return s.StartGame(mode, difficulty)
	})
}

func (that *GameManager) ResetGame(ctx context.Context, id string) (session.View, error) {
	return that.apply(ctx, id, (*session.GameSession).ResetGame)
}

func (that *GameManager) ChangeTwists(ctx context.Context, id string) (session.View, error) {
	return that.apply(ctx, id, (*session.GameSession).ChangeTwists)
}

func (that *GameManager) AttemptMove(ctx context.Context, id string, target entity.Coords) (session.View, error) {
	return that.apply(ctx, id, func(s *session.GameSession) (session.View, error) {
		return s.AttemptMove(target)
	})
}

func (that *GameManager) ActivateAbility(ctx context.Context, id string, ability entity.AbilityType) (session.View, error) {
	return that.apply(ctx, id, func(s *session.GameSession) (session.View, error) {
		return s.ActivateAbility(ability)
	})
}

func (that *GameManager) ToggleUndo(ctx context.Context, id string) (session.View, error) {
	return that.apply(ctx, id, (*session.GameSession).ToggleUndo)
}

// CheckTimeout - only writes the session back when the timeout actually ended the game.
func (that *GameManager) CheckTimeout(ctx context.Context, id string) (session.View, error) {
	lock := that.lock(id)
	defer lock.Unlock()

	s, err := that.load(ctx, id)
	if err != nil {
		return session.View{}, err
	}

	now := that.now()
	if _, expired := s.TimedOut(now); !expired {
		return s.View(), nil
	}

	view, err := s.CheckTimeout(now)
	if err != nil {
		return view, err
	}

	if err = that.save(ctx, id, s); err != nil {
		return session.View{}, err
	}

	return view, nil
}

// apply runs one operation as load, act, save under the session lock. The session is
// saved even when the operation was rejected: a rejection can still change the message,
// the memory reveal flag or an armed ability.
func (that *GameManager) apply(
	ctx context.Context, id string, op func(*session.GameSession) (session.View, error),
) (session.View, error) {
	lock := that.lock(id)
	defer lock.Unlock()

	s, err := that.load(ctx, id)
	if err != nil {
		return session.View{}, err
	}

	view, opErr := op(s)

	if err = that.save(ctx, id, s); err != nil {
		return session.View{}, err
	}

	if opErr != nil {
		that.logger.Debug("operation rejected", "session_id", id, "error", opErr)
	}

	return view, opErr
}

func (that *GameManager) load(ctx context.Context, id string) (*session.GameSession, error) {
	snap, err := that.sessionRepo.GetByID(ctx, id)
	if errors.Is(err, apperror.ErrSessionNotFound) {
		// expired or deleted sessions leave no lock behind
		that.locks.Delete(id)

		return nil, apperror.ErrSessionNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	s, err := session.Restore(snap, that.options...)
	if err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}

	return s, nil
}

func (that *GameManager) save(ctx context.Context, id string, s *session.GameSession) error {
	if err := that.sessionRepo.CreateOrUpdate(ctx, id, s.Snapshot()); err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}

	return nil
}

// lock serialises operations on one session; different sessions never wait on each other.
func (that *GameManager) lock(id string) *sync.Mutex {
	value, _ := that.locks.LoadOrStore(id, &sync.Mutex{})
	lock := value.(*sync.Mutex) //nolint:forcetypeassert // only *sync.Mutex is stored

	lock.Lock()

	return lock
}

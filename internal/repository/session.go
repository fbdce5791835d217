package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/twisted-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/twisted-tictactoe/internal/session"
)

const sessionKeyPrefix = "session:"

type SessionRepository interface {
	CreateOrUpdate(ctx context.Context, id string, snap session.Snapshot) error
	GetByID(ctx context.Context, id string) (session.Snapshot, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbSession struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionRepository stores snapshots as JSON. Every write refreshes the ttl, so idle
// sessions expire on their own; ttl 0 keeps them forever.
func NewSessionRepository(client *redis.Client, ttl time.Duration) SessionRepository {
	return &dbSession{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbSession) CreateOrUpdate(ctx context.Context, id string, snap session.Snapshot) error {
	sessionJSON, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("could not marshal session: %w", err)
	}

	err = that.client.Set(ctx, sessionKeyPrefix+id, sessionJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}

	return nil
}

func (that *dbSession) GetByID(ctx context.Context, id string) (session.Snapshot, error) {
	response, err := that.client.Get(ctx, sessionKeyPrefix+id).Bytes()

	if errors.Is(err, redis.Nil) {
		return session.Snapshot{}, apperror.ErrSessionNotFound
	}

	if err != nil {
		return session.Snapshot{}, fmt.Errorf("failed to get session by id: %w", err)
	}

	var snap session.Snapshot
	if err = json.Unmarshal(response, &snap); err != nil {
		return session.Snapshot{}, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return snap, nil
}

func (that *dbSession) DeleteByID(ctx context.Context, id string) error {
	if err := that.client.Del(ctx, sessionKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete session by id: %w", err)
	}

	return nil
}

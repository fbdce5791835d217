package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/rocketscienceinc/twisted-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/twisted-tictactoe/internal/session"
)

const maxCleanupInterval = time.Minute

type memorySession struct {
	entries *cache.Cache
}

// NewMemorySessionRepository keeps snapshots in process. Snapshots are stored encoded, so
// callers never share maps with the stored copy. A zero ttl keeps sessions until deleted.
func NewMemorySessionRepository(ttl time.Duration) SessionRepository {
	if ttl <= 0 {
		return &memorySession{entries: cache.New(cache.NoExpiration, 0)}
	}

	return &memorySession{entries: cache.New(ttl, min(ttl, maxCleanupInterval))}
}

func (that *memorySession) CreateOrUpdate(_ context.Context, id string, snap session.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("could not marshal session: %w", err)
	}

	that.entries.Set(id, data, cache.DefaultExpiration)

	return nil
}

func (that *memorySession) GetByID(_ context.Context, id string) (session.Snapshot, error) {
	value, ok := that.entries.Get(id)
	if !ok {
		return session.Snapshot{}, apperror.ErrSessionNotFound
	}

	data, ok := value.([]byte)
	if !ok {
		return session.Snapshot{}, fmt.Errorf("unexpected session entry type %T", value)
	}

	var snap session.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return session.Snapshot{}, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return snap, nil
}

func (that *memorySession) DeleteByID(_ context.Context, id string) error {
	that.entries.Delete(id)

	return nil
}

package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dkenzhe/lavka/internal/storage"
)

// KVRepository keeps the session under the "currentUser" slot.
type KVRepository struct {
	backend storage.Backend
}

func NewKVRepository(backend storage.Backend) *KVRepository {
	return &KVRepository{backend: backend}
}

func (r *KVRepository) Load(ctx context.Context) (*Session, error) {
	data, err := r.backend.Get(ctx, storage.KeyCurrentUser)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &s, nil
}

func (r *KVRepository) Save(ctx context.Context, s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := r.backend.Set(ctx, storage.KeyCurrentUser, data); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *KVRepository) Clear(ctx context.Context) error {
	if err := r.backend.Delete(ctx, storage.KeyCurrentUser); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

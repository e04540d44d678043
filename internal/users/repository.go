package users

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dkenzhe/lavka/internal/storage"
)

// Repository loads and saves the whole account collection. Implementations
// persist it as a single serialized blob; mutations are full rewrites.
type Repository interface {
	Load(ctx context.Context) ([]User, error)
	Save(ctx context.Context, users []User) error
}

// KVRepository keeps the collection under the "users" slot of a key/value
// backend, JSON-serialized.
type KVRepository struct {
	backend storage.Backend
}

func NewKVRepository(backend storage.Backend) *KVRepository {
	return &KVRepository{backend: backend}
}

func (r *KVRepository) Load(ctx context.Context) ([]User, error) {
	data, err := r.backend.Get(ctx, storage.KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	if data == nil {
		return []User{}, nil
	}

	var result []User
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return result, nil
}

func (r *KVRepository) Save(ctx context.Context, users []User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}
	if err := r.backend.Set(ctx, storage.KeyUsers, data); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	return nil
}

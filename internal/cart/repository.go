package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dkenzhe/lavka/internal/storage"
)

// Repository loads and saves the whole cart collection.
type Repository interface {
	Load(ctx context.Context) ([]Item, error)
	Save(ctx context.Context, items []Item) error
	Clear(ctx context.Context) error
}

// KVRepository keeps the cart under the "shoppingCart" slot.
type KVRepository struct {
	backend storage.Backend
}

func NewKVRepository(backend storage.Backend) *KVRepository {
	return &KVRepository{backend: backend}
}

func (r *KVRepository) Load(ctx context.Context) ([]Item, error) {
	data, err := r.backend.Get(ctx, storage.KeyCart)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if data == nil {
		return []Item{}, nil
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return items, nil
}

func (r *KVRepository) Save(ctx context.Context, items []Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := r.backend.Set(ctx, storage.KeyCart, data); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

func (r *KVRepository) Clear(ctx context.Context) error {
	if err := r.backend.Delete(ctx, storage.KeyCart); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

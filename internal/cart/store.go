// Package cart implements the shopping cart over the key/value store. The
// cart belongs to the machine, not to a user: it is kept outside the session
// and survives logout.
package cart

import (
	"context"

	"github.com/dkenzhe/lavka/internal/common"
	"github.com/dkenzhe/lavka/internal/logging"
	"github.com/dkenzhe/lavka/internal/session"
)

// Sessions is the login check Checkout consumes. Satisfied by
// session.Manager.
type Sessions interface {
	Current(ctx context.Context) (*session.Session, error)
}

// Store implements cart operations as full read-modify-write cycles on the
// cart blob.
type Store struct {
	repo     Repository
	sessions Sessions
	log      logging.Logger
}

func NewStore(repo Repository, sessions Sessions, log logging.Logger) *Store {
	return &Store{repo: repo, sessions: sessions, log: log}
}

// AddItem merges by product name, bumping the quantity of an existing line,
// or appends a new line with quantity 1 and a fresh id.
func (s *Store) AddItem(ctx context.Context, p Product) error {
	items, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	var maxID int64
	for i := range items {
		if items[i].ID > maxID {
			maxID = items[i].ID
		}
	}
	for i := range items {
		if items[i].Name == p.Name {
			items[i].Quantity++
			return s.repo.Save(ctx, items)
		}
	}

	items = append(items, Item{
		ID:          common.TimestampID(maxID),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Image:       p.Image,
		Quantity:    1,
	})
	return s.repo.Save(ctx, items)
}

// RemoveItem deletes the matching line. Removing an unknown id is a no-op.
func (s *Store) RemoveItem(ctx context.Context, id int64) error {
	items, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	filtered := items[:0]
	for _, item := range items {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}
	return s.repo.Save(ctx, filtered)
}

// ChangeQuantity adds delta to the line's quantity. A result of zero or less
// removes the line entirely; a non-positive quantity is never stored.
// Unknown ids are a no-op.
func (s *Store) ChangeQuantity(ctx context.Context, id int64, delta int) error {
	items, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ID == id {
			items[i].Quantity += delta
			if items[i].Quantity <= 0 {
				return s.RemoveItem(ctx, id)
			}
			return s.repo.Save(ctx, items)
		}
	}
	return nil
}

// Clear empties the cart unconditionally.
func (s *Store) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx)
}

// Items returns the cart lines in insertion order.
func (s *Store) Items(ctx context.Context) ([]Item, error) {
	return s.repo.Load(ctx)
}

// Totals computes the order summary.
func (s *Store) Totals(ctx context.Context) (Totals, error) {
	items, err := s.repo.Load(ctx)
	if err != nil {
		return Totals{}, err
	}

	t := Totals{Lines: len(items)}
	for _, item := range items {
		t.Units += item.Quantity
		t.Subtotal += item.Price * int64(item.Quantity)
	}
	return t, nil
}

// Checkout simulates placing the order: the cart must be non-empty and a
// session must be active; on success the cart is cleared and nothing else is
// persisted. On failure the cart is left untouched.
func (s *Store) Checkout(ctx context.Context) error {
	items, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return common.ErrEmptyCart
	}

	current, err := s.sessions.Current(ctx)
	if err != nil {
		return err
	}
	if current == nil {
		return common.ErrNotAuthenticated
	}

	if err := s.repo.Clear(ctx); err != nil {
		return err
	}
	s.log.Info(ctx, "order placed", "user_id", current.UserID, "lines", len(items))
	return nil
}

// Package storage provides the key/value backend the storefront keeps its
// state in. Every collection is one serialized blob under a fixed key and is
// always rewritten as a whole; there is no partial update.
package storage

import "context"

// Slot keys. One blob per slot.
const (
	KeyUsers       = "users"
	KeyCurrentUser = "currentUser"
	KeyCart        = "shoppingCart"
)

// Backend is the minimal key/value contract repositories are built on.
// Get returns (nil, nil) when the key is absent.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Package session manages the denormalized "who is logged in" record. The
// snapshot caches user fields rather than referencing them, so user-mutating
// operations must resync it explicitly or it goes stale.
package session

import (
	"context"
	"time"
)

// Session marks one user as currently authenticated on this machine. Its
// presence is the sole login signal the rest of the system consumes.
type Session struct {
	UserID    int64     `json:"userId"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	LoginTime time.Time `json:"loginTime"`
}

// Repository persists the single optional session record.
type Repository interface {
	Load(ctx context.Context) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Clear(ctx context.Context) error
}

// Manager is the session lifecycle facade used by every screen.
type Manager struct {
	repo Repository
}

func NewManager(repo Repository) *Manager {
	return &Manager{repo: repo}
}

// Start derives and persists the snapshot for the given user fields,
// replacing any previous session.
func (m *Manager) Start(ctx context.Context, userID int64, email, fullName string) error {
	return m.repo.Save(ctx, &Session{
		UserID:    userID,
		Email:     email,
		FullName:  fullName,
		LoginTime: time.Now(),
	})
}

// Current returns the active session, or nil when nobody is logged in.
func (m *Manager) Current(ctx context.Context) (*Session, error) {
	return m.repo.Load(ctx)
}

// End clears the session unconditionally. Ending an absent session is fine.
func (m *Manager) End(ctx context.Context) error {
	return m.repo.Clear(ctx)
}

// Resync refreshes the cached user fields when the underlying record
// changed. It is a no-op when no session is active or when it belongs to a
// different user. The login time is preserved.
func (m *Manager) Resync(ctx context.Context, userID int64, email, fullName string) error {
	current, err := m.repo.Load(ctx)
	if err != nil {
		return err
	}
	if current == nil || current.UserID != userID {
		return nil
	}

	current.Email = email
	current.FullName = fullName
	return m.repo.Save(ctx, current)
}

package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"
)

var ErrNoSession = errors.New("no active session")

// Store holds the server-side binding from an opaque token to a user id.
// The token carries no payload; it only enables the lookup.
type Store interface {
	Set(ctx context.Context, token, userID string, ttl time.Duration) error
	// Get returns ErrNoSession when the token is unknown or expired.
	Get(ctx context.Context, token string) (string, error)
	// Delete returns ErrNoSession when there was nothing to revoke.
	Delete(ctx context.Context, token string) error
}

type Manager struct {
	store Store
	ttl   time.Duration
}

func NewManager(store Store, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &Manager{store: store, ttl: ttl}
}

// Login issues a fresh opaque token bound to the user id.
func (m *Manager) Login(ctx context.Context, userID string) (string, error) {
	token, err := newToken()

	if err != nil {
		return "", err
	}

	err = m.store.Set(ctx, token, userID, m.ttl)

	if err != nil {
		return "", err
	}

	return token, nil
}

// Logout revokes the token. ErrNoSession if nothing was bound to it.
func (m *Manager) Logout(ctx context.Context, token string) error {
	if token == "" {
		return ErrNoSession
	}

	return m.store.Delete(ctx, token)
}

// UserID resolves the token to the bound user id without side effects.
func (m *Manager) UserID(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrNoSession
	}

	return m.store.Get(ctx, token)
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// 32 random bytes, hex encoded. Plenty of entropy for an unguessable
// capability; a uuid would advertise its format and carry less.
func newToken() (string, error) {
	buf := make([]byte, 32)

	_, err := rand.Read(buf)

	if err != nil {
		return "", err
	}

	return hex.EncodeToString(buf), nil
}

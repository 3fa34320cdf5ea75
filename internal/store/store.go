// Package store persists intake sessions.
//
// Two implementations exist: a Redis-backed store for production and an
// in-memory store used when Redis is disabled and in tests.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/runehealth/rune_backend/internal/intake"
)

// ErrNotFound is returned when no session exists for the given ID.
var ErrNotFound = errors.New("session not found")

// SessionStore is the persistence boundary for intake sessions.
type SessionStore interface {
	// Put writes the session, refreshing its TTL.
	Put(ctx context.Context, sess *intake.Session) error

	// Get loads the session or returns ErrNotFound.
	Get(ctx context.Context, id string) (*intake.Session, error)

	// Delete removes the session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error
}

// TTLFromMinutes converts the configured session lifetime to a duration,
// falling back to 30 minutes when unset.
func TTLFromMinutes(minutes int) time.Duration {
	if minutes <= 0 {
		minutes = 30
	}
	return time.Duration(minutes) * time.Minute
}

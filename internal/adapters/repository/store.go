// Package repository defines the active-session store interface and errors.
// It holds sessions only while a subject is arranging caps; completed or
// abandoned sessions are removed. Score results are never persisted here,
// that is a downstream collaborator's concern.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/airisvision/chromascreen/internal/domain/session"
)

// Store provides access to sessions awaiting an arrangement.
type Store interface {
	// Create registers a new session. Returns ErrDuplicateID if the id is
	// already present and ErrCapacity when the store is full.
	Create(ctx context.Context, s session.Session) error

	// Get returns the session with the given id, or ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (session.Session, error)

	// Delete removes a session. Returns ErrNotFound if it is unknown.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of sessions currently held.
	Count(ctx context.Context) int
}

package model

import (
	"context"

	"github.com/google/uuid"
)

// Gateway is the sole component permitted to issue database queries.
// Every request works on its own Store obtained from Session.
type Gateway interface {
	Session() Store
}

// Store is a request-scoped persistence session. Writes are staged with New,
// Update and Delete and applied atomically by Save.
type Store interface {
	// Get loads at most one row into dest. A missing row or an unregistered
	// entity type is ErrNotFound.
	Get(ctx context.Context, dest Entity, by Predicate) error
	// GetAll loads every row into dest, filtered by owner unless owner is uuid.Nil.
	// No rows is not an error.
	GetAll(ctx context.Context, dest Collection, owner uuid.UUID) error
	New(entity Entity)
	Update(entity Entity)
	Delete(entity Entity)
	// Save commits staged changes. On failure they are rolled back and discarded.
	Save(ctx context.Context) error
	// Rollback discards staged changes.
	Rollback()
	// Close releases the session.
	Close()
}

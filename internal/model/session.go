package model

import "github.com/google/uuid"

// IdentitySlot is the "current identity" slot of a server-side session.
type IdentitySlot interface {
	// UserID returns the authenticated user id, if any.
	UserID() (uuid.UUID, bool)
	// SetUserID binds the session to userID.
	SetUserID(userID uuid.UUID) error
	// Clear terminates the session. Clearing an empty session is not an error.
	Clear() error
}

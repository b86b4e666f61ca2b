// Package session binds authenticated users to cookie sessions.
package session

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"

	"github.com/dtroode/bookshelf-server/internal/model"
)

const userIDKey = "user_id"

// Config describes the session cookie.
type Config struct {
	CookieName   string
	CookieSecure bool
	Expiration   time.Duration
}

// Store opens per-request sessions. A nil storage keeps sessions in memory.
type Store struct {
	store *session.Store
}

func NewStore(cfg Config, storage fiber.Storage) *Store {
	return &Store{
		store: session.New(session.Config{
			Expiration:     cfg.Expiration,
			Storage:        storage,
			KeyLookup:      "cookie:" + cfg.CookieName,
			CookieSecure:   cfg.CookieSecure,
			CookieHTTPOnly: true,
			CookieSameSite: fiber.CookieSameSiteLaxMode,
		}),
	}
}

// Slot returns the identity slot of the request's session.
func (s *Store) Slot(c *fiber.Ctx) (model.IdentitySlot, error) {
	sess, err := s.store.Get(c)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return &Slot{sess: sess}, nil
}

var _ model.IdentitySlot = (*Slot)(nil)

// Slot is the identity stored in one session.
type Slot struct {
	sess *session.Session
}

func (s *Slot) UserID() (uuid.UUID, bool) {
	raw, ok := s.sess.Get(userIDKey).(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// SetUserID issues a new session id before binding it to userID.
func (s *Slot) SetUserID(userID uuid.UUID) error {
	if err := s.sess.Regenerate(); err != nil {
		return fmt.Errorf("failed to regenerate session: %w", err)
	}
	s.sess.Set(userIDKey, userID.String())
	if err := s.sess.Save(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *Slot) Clear() error {
	if err := s.sess.Destroy(); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}

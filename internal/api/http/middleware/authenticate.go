package middleware

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/dtroode/bookshelf-server/internal/logger"
	"github.com/dtroode/bookshelf-server/internal/model"
)

// SessionProvider opens the session of a request.
type SessionProvider interface {
	Slot(c *fiber.Ctx) (model.IdentitySlot, error)
}

// Authenticator resolves the user bound to a session.
type Authenticator interface {
	CurrentUser(ctx context.Context, slot model.IdentitySlot) (uuid.UUID, error)
}

// Authenticate rejects requests without a logged-in session and injects the
// user id into the request context.
type Authenticate struct {
	sessions       SessionProvider
	authenticator  Authenticator
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(sessions SessionProvider, authenticator Authenticator, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{
		sessions:       sessions,
		authenticator:  authenticator,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (m *Authenticate) Handle(c *fiber.Ctx) error {
	slot, err := m.sessions.Slot(c)
	if err != nil {
		m.logger.ErrorContext(c.UserContext(), "failed to load session",
			"path", c.Path(),
			"error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "An error occurred",
			"details": err.Error(),
		})
	}

	userID, err := m.authenticator.CurrentUser(c.UserContext(), slot)
	if errors.Is(err, model.ErrUnauthorized) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	if err != nil {
		m.logger.ErrorContext(c.UserContext(), "failed to resolve session user",
			"path", c.Path(),
			"error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "An error occurred",
			"details": err.Error(),
		})
	}

	c.SetUserContext(m.contextManager.SetUserIDToContext(c.UserContext(), userID))
	return c.Next()
}

package handler

import (
	"context"

	"github.com/dtroode/bookshelf-server/internal/logger"
	"github.com/dtroode/bookshelf-server/internal/model"
	"github.com/gofiber/fiber/v2"
)

// SessionProvider opens the session of a request.
type SessionProvider interface {
	Slot(c *fiber.Ctx) (model.IdentitySlot, error)
}

// AuthService defines login and logout operations.
type AuthService interface {
	Login(ctx context.Context, slot model.IdentitySlot, creds model.Credentials) (model.User, error)
	Logout(slot model.IdentitySlot) error
}

// Auth handles /login and /logout.
type Auth struct {
	authService AuthService
	sessions    SessionProvider
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, sessions SessionProvider, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		sessions:    sessions,
		logger:      logger,
	}
}

// Login verifies credentials and establishes a session.
func (h *Auth) Login(c *fiber.Ctx) error {
	fields, err := model.ParseFields(c.Body())
	if err != nil {
		return handleError(c, err, loginMessages)
	}
	creds, err := model.ParseCredentials(fields)
	if err != nil {
		return handleError(c, err, loginMessages)
	}

	slot, err := h.sessions.Slot(c)
	if err != nil {
		h.logger.ErrorContext(c.UserContext(), "Auth handler: failed to load session",
			"error", err.Error())
		return internalError(c, err)
	}

	user, err := h.authService.Login(c.UserContext(), slot, creds)
	if err != nil {
		h.logger.DebugContext(c.UserContext(), "Auth handler: login rejected",
			"email", creds.Email,
			"error", err.Error())
		return handleError(c, err, loginMessages)
	}

	return c.JSON(fiber.Map{
		"success": "User logged in successfully",
		"user":    user.Serialize(),
	})
}

// Logout ends the session, if any.
func (h *Auth) Logout(c *fiber.Ctx) error {
	slot, err := h.sessions.Slot(c)
	if err != nil {
		h.logger.ErrorContext(c.UserContext(), "Auth handler: failed to load session",
			"error", err.Error())
		return internalError(c, err)
	}

	if err := h.authService.Logout(slot); err != nil {
		return internalError(c, err)
	}

	return c.JSON(fiber.Map{"success": "Logout successfully"})
}

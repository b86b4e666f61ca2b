package handler

import (
	"context"

	"github.com/dtroode/bookshelf-server/internal/logger"
	"github.com/dtroode/bookshelf-server/internal/model"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UserService defines user account operations.
type UserService interface {
	List(ctx context.Context) (model.Users, error)
	Get(ctx context.Context, callerID, id uuid.UUID) (model.User, error)
	Create(ctx context.Context, fields model.Fields) (model.User, error)
	Update(ctx context.Context, callerID, id uuid.UUID, fields model.Fields) (model.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// User handles /users endpoints.
type User struct {
	userService    UserService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{
		userService:    userService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// List returns every user.
func (h *User) List(c *fiber.Ctx) error {
	users, err := h.userService.List(c.UserContext())
	if err != nil {
		return handleError(c, err, defaultMessages)
	}
	return c.JSON(users.Serialize())
}

// Get returns the caller's own account.
func (h *User) Get(c *fiber.Ctx) error {
	caller, err := callerID(c, h.contextManager)
	if err != nil {
		return handleError(c, err, defaultMessages)
	}
	// a malformed id can never name the caller
	id, err := pathID(c, model.ErrUnauthorized)
	if err != nil {
		return handleError(c, err, defaultMessages)
	}

	user, err := h.userService.Get(c.UserContext(), caller, id)
	if err != nil {
		return handleError(c, err, defaultMessages)
	}
	return c.JSON(user.Serialize())
}

// Create registers a user.
func (h *User) Create(c *fiber.Ctx) error {
	fields, err := model.ParseFields(c.Body())
	if err != nil {
		return handleError(c, err, defaultMessages)
	}

	user, err := h.userService.Create(c.UserContext(), fields)
	if err != nil {
		h.logger.ErrorContext(c.UserContext(), "User handler: create failed",
			"error", err.Error())
		return handleError(c, err, defaultMessages)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": "User created successfully",
		"user":    user.Serialize(),
	})
}

// Update overwrites fields of the caller's own account.
func (h *User) Update(c *fiber.Ctx) error {
	caller, err := callerID(c, h.contextManager)
	if err != nil {
		return handleError(c, err, defaultMessages)
	}
	id, err := pathID(c, model.ErrUnauthorized)
	if err != nil {
		return handleError(c, err, defaultMessages)
	}
	fields, err := model.ParseFields(c.Body())
	if err != nil {
		return handleError(c, err, defaultMessages)
	}

	user, err := h.userService.Update(c.UserContext(), caller, id, fields)
	if err != nil {
		h.logger.ErrorContext(c.UserContext(), "User handler: update failed",
			"user_id", id,
			"error", err.Error())
		return handleError(c, err, defaultMessages)
	}
	return c.JSON(user.Serialize())
}

// Delete removes a user by id.
func (h *User) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, model.ErrNotFound)
	if err != nil {
		return handleError(c, err, defaultMessages)
	}

	if err := h.userService.Delete(c.UserContext(), id); err != nil {
		return handleError(c, err, defaultMessages)
	}
	return c.JSON(fiber.Map{})
}

package handler

import (
	"errors"

	"github.com/dtroode/bookshelf-server/internal/model"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type messages struct {
	notFound     string
	unauthorized string
}

var (
	defaultMessages = messages{notFound: "Not found", unauthorized: "Unauthorized"}
	loginMessages   = messages{notFound: "User not found", unauthorized: "Invalid password"}
)

// handleError writes the response for err. Every error maps to a status.
func handleError(c *fiber.Ctx, err error, msgs messages) error {
	switch {
	case errors.Is(err, model.ErrBadRequest):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data not provided or not JSON"})
	case errors.Is(err, model.ErrAlreadyExists):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "User already exists"})
	case errors.Is(err, model.ErrInvalidData):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid data", "details": err.Error()})
	case errors.Is(err, model.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msgs.unauthorized})
	case errors.Is(err, model.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": msgs.notFound})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error", "details": err.Error()})
	}
}

// internalError reports a failure outside the database, such as session storage.
func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred", "details": err.Error()})
}

// callerID returns the authenticated user id or ErrUnauthorized.
func callerID(c *fiber.Ctx, cm model.ContextManager) (uuid.UUID, error) {
	id, ok := cm.GetUserIDFromContext(c.UserContext())
	if !ok {
		return uuid.Nil, model.ErrUnauthorized
	}
	return id, nil
}

// pathID parses the id route parameter, reporting onInvalid when it is not a UUID.
func pathID(c *fiber.Ctx, onInvalid error) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, onInvalid
	}
	return id, nil
}

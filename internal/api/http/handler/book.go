package handler

import (
	"context"

	"github.com/dtroode/bookshelf-server/internal/logger"
	"github.com/dtroode/bookshelf-server/internal/model"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// BookService defines operations on the caller's books.
type BookService interface {
	List(ctx context.Context, ownerID uuid.UUID) (model.Books, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (model.Book, error)
	Create(ctx context.Context, ownerID uuid.UUID, fields model.Fields) (model.Book, error)
	Replace(ctx context.Context, ownerID, id uuid.UUID, fields model.Fields) (model.Book, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// Book handles /books endpoints. Every route requires a session.
type Book struct {
	bookService    BookService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewBook creates a new Book handler.
func NewBook(bookService BookService, contextManager model.ContextManager, logger *logger.Logger) *Book {
	return &Book{
		bookService:    bookService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Book) List(c *fiber.Ctx) error {
	caller, err := callerID(c, h.contextManager)
	if err != nil {
		return handleError(c, err, defaultMessages)
	}

	books, err := h.bookService.List(c.UserContext(), caller)
	if err != nil {
		return handleError(c, err, defaultMessages)
	}
	return c.JSON(books.Serialize())
}

func (h *Book) Get(c *fiber.Ctx) error {
	caller, id, err := h.target(c)
	if err != nil {
		return handleError(c, err, defaultMessages)
	}

	book, err := h.bookService.Get(c.UserContext(), caller, id)
	if err != nil {
		return handleError(c, err, defaultMessages)
	}
	return c.JSON(book.Serialize())
}

func (h *Book) Create(c *fiber.Ctx) error {
	caller, err := callerID(c, h.contextManager)
	if err != nil {
		return handleError(c, err, defaultMessages)
	}
	fields, err := model.ParseFields(c.Body())
	if err != nil {
		return handleError(c, err, defaultMessages)
	}

	book, err := h.bookService.Create(c.UserContext(), caller, fields)
	if err != nil {
		h.logger.ErrorContext(c.UserContext(), "Book handler: create failed",
			"owner_id", caller,
			"error", err.Error())
		return handleError(c, err, defaultMessages)
	}
	return c.Status(fiber.StatusCreated).JSON(book.Serialize())
}

func (h *Book) Replace(c *fiber.Ctx) error {
	caller, id, err := h.target(c)
	if err != nil {
		return handleError(c, err, defaultMessages)
	}
	fields, err := model.ParseFields(c.Body())
	if err != nil {
		return handleError(c, err, defaultMessages)
	}

	book, err := h.bookService.Replace(c.UserContext(), caller, id, fields)
	if err != nil {
		h.logger.ErrorContext(c.UserContext(), "Book handler: replace failed",
			"book_id", id,
			"error", err.Error())
		return handleError(c, err, defaultMessages)
	}
	return c.JSON(book.Serialize())
}

func (h *Book) Delete(c *fiber.Ctx) error {
	caller, id, err := h.target(c)
	if err != nil {
		return handleError(c, err, defaultMessages)
	}

	if err := h.bookService.Delete(c.UserContext(), caller, id); err != nil {
		return handleError(c, err, defaultMessages)
	}
	return c.JSON(fiber.Map{})
}

// target returns the caller and the book id. A malformed id names no book.
func (h *Book) target(c *fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	caller, err := callerID(c, h.contextManager)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	id, err := pathID(c, model.ErrNotFound)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return caller, id, nil
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/bookshelf-server/internal/logger"
	"github.com/dtroode/bookshelf-server/internal/model"
	"github.com/google/uuid"
)

// Book manages books on behalf of their authors.
type Book struct {
	gateway model.Gateway
	logger  *logger.Logger
}

func NewBook(gateway model.Gateway, logger *logger.Logger) *Book {
	return &Book{
		gateway: gateway,
		logger:  logger,
	}
}

func (s *Book) List(ctx context.Context, ownerID uuid.UUID) (model.Books, error) {
	store := s.gateway.Session()
	defer store.Close()

	var books model.Books
	if err := store.GetAll(ctx, &books, ownerID); err != nil {
		s.logger.Error("Book service: failed to list books",
			"owner_id", ownerID,
			"error", err.Error())
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	if len(books) == 0 {
		return nil, model.ErrNotFound
	}

	return books, nil
}

func (s *Book) Get(ctx context.Context, ownerID, id uuid.UUID) (model.Book, error) {
	store := s.gateway.Session()
	defer store.Close()

	return s.owned(ctx, store, ownerID, id)
}

func (s *Book) Create(ctx context.Context, ownerID uuid.UUID, fields model.Fields) (model.Book, error) {
	book, err := model.NewBook(fields, ownerID)
	if err != nil {
		s.logger.Debug("Book service: rejected book input",
			"owner_id", ownerID,
			"error", err.Error())
		return model.Book{}, err
	}

	store := s.gateway.Session()
	defer store.Close()

	store.New(book)
	if err := store.Save(ctx); err != nil {
		s.logger.Error("Book service: failed to create book",
			"owner_id", ownerID,
			"error", err.Error())
		return model.Book{}, fmt.Errorf("failed to create book: %w", err)
	}

	s.logger.Info("Book service: book created",
		"book_id", book.ID,
		"owner_id", ownerID)

	return book, nil
}

func (s *Book) Replace(ctx context.Context, ownerID, id uuid.UUID, fields model.Fields) (model.Book, error) {
	store := s.gateway.Session()
	defer store.Close()

	book, err := s.owned(ctx, store, ownerID, id)
	if err != nil {
		return model.Book{}, err
	}

	if err := book.Replace(fields); err != nil {
		s.logger.Debug("Book service: rejected book input",
			"book_id", id,
			"error", err.Error())
		return model.Book{}, err
	}

	store.Update(book)
	if err := store.Save(ctx); err != nil {
		s.logger.Error("Book service: failed to replace book",
			"book_id", id,
			"error", err.Error())
		return model.Book{}, fmt.Errorf("failed to replace book: %w", err)
	}

	s.logger.Info("Book service: book replaced",
		"book_id", id)

	return book, nil
}

func (s *Book) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	store := s.gateway.Session()
	defer store.Close()

	book, err := s.owned(ctx, store, ownerID, id)
	if err != nil {
		return err
	}

	store.Delete(book)
	if err := store.Save(ctx); err != nil {
		s.logger.Error("Book service: failed to delete book",
			"book_id", id,
			"error", err.Error())
		return fmt.Errorf("failed to delete book: %w", err)
	}

	s.logger.Info("Book service: book deleted",
		"book_id", id)

	return nil
}

// owned loads a book and checks ownership. A missing book is reported before
// a foreign one.
func (s *Book) owned(ctx context.Context, store model.Store, ownerID, id uuid.UUID) (model.Book, error) {
	var book model.Book
	if err := store.Get(ctx, &book, model.ByID(id)); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Book{}, model.ErrNotFound
		}
		s.logger.Error("Book service: failed to get book",
			"book_id", id,
			"error", err.Error())
		return model.Book{}, fmt.Errorf("failed to get book: %w", err)
	}

	if !book.OwnedBy(ownerID) {
		s.logger.Info("Book service: access denied",
			"book_id", id,
			"caller_id", ownerID)
		return model.Book{}, model.ErrUnauthorized
	}

	return book, nil
}

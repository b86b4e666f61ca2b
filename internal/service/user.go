package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/bookshelf-server/internal/logger"
	"github.com/dtroode/bookshelf-server/internal/model"
	"github.com/google/uuid"
)

// User manages user accounts.
type User struct {
	gateway model.Gateway
	hasher  model.PasswordHasher
	logger  *logger.Logger
}

func NewUser(gateway model.Gateway, hasher model.PasswordHasher, logger *logger.Logger) *User {
	return &User{
		gateway: gateway,
		hasher:  hasher,
		logger:  logger,
	}
}

func (s *User) List(ctx context.Context) (model.Users, error) {
	store := s.gateway.Session()
	defer store.Close()

	var users model.Users
	if err := store.GetAll(ctx, &users, uuid.Nil); err != nil {
		s.logger.Error("User service: failed to list users",
			"error", err.Error())
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if len(users) == 0 {
		return nil, model.ErrNotFound
	}

	return users, nil
}

func (s *User) Get(ctx context.Context, callerID, id uuid.UUID) (model.User, error) {
	if callerID != id {
		s.logger.Info("User service: read denied",
			"caller_id", callerID,
			"user_id", id)
		return model.User{}, model.ErrUnauthorized
	}

	store := s.gateway.Session()
	defer store.Close()

	var user model.User
	if err := store.Get(ctx, &user, model.ByID(id)); err != nil {
		return model.User{}, s.lookupError(err, id)
	}

	return user, nil
}

func (s *User) Create(ctx context.Context, fields model.Fields) (model.User, error) {
	user, err := model.NewUser(fields, s.hasher)
	if err != nil {
		s.logger.Debug("User service: rejected user input",
			"error", err.Error())
		return model.User{}, err
	}

	store := s.gateway.Session()
	defer store.Close()

	store.New(user)
	if err := store.Save(ctx); err != nil {
		s.logger.Error("User service: failed to create user",
			"email", user.Email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User service: user created",
		"user_id", user.ID)

	return user, nil
}

func (s *User) Update(ctx context.Context, callerID, id uuid.UUID, fields model.Fields) (model.User, error) {
	if callerID != id {
		s.logger.Info("User service: update denied",
			"caller_id", callerID,
			"user_id", id)
		return model.User{}, model.ErrUnauthorized
	}

	store := s.gateway.Session()
	defer store.Close()

	var user model.User
	if err := store.Get(ctx, &user, model.ByID(id)); err != nil {
		return model.User{}, s.lookupError(err, id)
	}

	if err := user.Apply(fields, s.hasher); err != nil {
		s.logger.Debug("User service: rejected user input",
			"user_id", id,
			"error", err.Error())
		return model.User{}, err
	}

	store.Update(user)
	if err := store.Save(ctx); err != nil {
		s.logger.Error("User service: failed to update user",
			"user_id", id,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info("User service: user updated",
		"user_id", id)

	return user, nil
}

func (s *User) Delete(ctx context.Context, id uuid.UUID) error {
	store := s.gateway.Session()
	defer store.Close()

	var user model.User
	if err := store.Get(ctx, &user, model.ByID(id)); err != nil {
		return s.lookupError(err, id)
	}

	store.Delete(user)
	if err := store.Save(ctx); err != nil {
		s.logger.Error("User service: failed to delete user",
			"user_id", id,
			"error", err.Error())
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("User service: user deleted",
		"user_id", id)

	return nil
}

func (s *User) lookupError(err error, id uuid.UUID) error {
	if errors.Is(err, model.ErrNotFound) {
		return model.ErrNotFound
	}
	s.logger.Error("User service: failed to get user",
		"user_id", id,
		"error", err.Error())
	return fmt.Errorf("failed to get user: %w", err)
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/bookshelf-server/internal/logger"
	"github.com/dtroode/bookshelf-server/internal/model"
	"github.com/google/uuid"
)

// Auth binds users to sessions.
type Auth struct {
	gateway model.Gateway
	hasher  model.PasswordHasher
	logger  *logger.Logger
}

func NewAuth(gateway model.Gateway, hasher model.PasswordHasher, logger *logger.Logger) *Auth {
	return &Auth{
		gateway: gateway,
		hasher:  hasher,
		logger:  logger,
	}
}

func (a *Auth) Login(ctx context.Context, slot model.IdentitySlot, creds model.Credentials) (model.User, error) {
	a.logger.Debug("Auth service: login attempt",
		"email", creds.Email)

	store := a.gateway.Session()
	defer store.Close()

	var user model.User
	if err := store.Get(ctx, &user, model.ByEmail(creds.Email)); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			a.logger.Info("Auth service: unknown email",
				"email", creds.Email)
			return model.User{}, model.ErrNotFound
		}
		a.logger.Error("Auth service: failed to get user by email",
			"email", creds.Email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !user.CheckPassword(creds.Password, a.hasher) {
		a.logger.Info("Auth service: invalid password",
			"user_id", user.ID)
		return model.User{}, model.ErrUnauthorized
	}

	if err := slot.SetUserID(user.ID); err != nil {
		a.logger.Error("Auth service: failed to store session",
			"user_id", user.ID,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to store session: %w", err)
	}

	a.logger.Info("Auth service: user logged in",
		"user_id", user.ID)

	return user, nil
}

func (a *Auth) Logout(slot model.IdentitySlot) error {
	if err := slot.Clear(); err != nil {
		a.logger.Error("Auth service: failed to clear session",
			"error", err.Error())
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (a *Auth) CurrentUser(ctx context.Context, slot model.IdentitySlot) (uuid.UUID, error) {
	userID, ok := slot.UserID()
	if !ok {
		return uuid.Nil, model.ErrUnauthorized
	}

	store := a.gateway.Session()
	defer store.Close()

	var user model.User
	if err := store.Get(ctx, &user, model.ByID(userID)); err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			a.logger.Error("Auth service: failed to get session user",
				"user_id", userID,
				"error", err.Error())
			return uuid.Nil, fmt.Errorf("failed to get session user: %w", err)
		}

		a.logger.Info("Auth service: session user no longer exists",
			"user_id", userID)
		if err := slot.Clear(); err != nil {
			a.logger.Error("Auth service: failed to clear stale session",
				"user_id", userID,
				"error", err.Error())
		}
		return uuid.Nil, model.ErrUnauthorized
	}

	return user.ID, nil
}

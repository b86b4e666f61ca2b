package mocks

import (
	context "context"

	model "github.com/dtroode/bookshelf-server/internal/model"
	mock "github.com/stretchr/testify/mock"

	uuid "github.com/google/uuid"
)

// AuthService is a mock type for the AuthService type
type AuthService struct {
	mock.Mock
}

// CurrentUser provides a mock function with given fields: ctx, slot
func (_m *AuthService) CurrentUser(ctx context.Context, slot model.IdentitySlot) (uuid.UUID, error) {
	ret := _m.Called(ctx, slot)

	if len(ret) == 0 {
		panic("no return value specified for CurrentUser")
	}

	var r0 uuid.UUID
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.IdentitySlot) (uuid.UUID, error)); ok {
		return rf(ctx, slot)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(uuid.UUID)
	}
	r1 = ret.Error(1)

	return r0, r1
}

// Login provides a mock function with given fields: ctx, slot, creds
func (_m *AuthService) Login(ctx context.Context, slot model.IdentitySlot, creds model.Credentials) (model.User, error) {
	ret := _m.Called(ctx, slot, creds)

	if len(ret) == 0 {
		panic("no return value specified for Login")
	}

	var r0 model.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.IdentitySlot, model.Credentials) (model.User, error)); ok {
		return rf(ctx, slot, creds)
	}
	r0 = ret.Get(0).(model.User)
	r1 = ret.Error(1)

	return r0, r1
}

// Logout provides a mock function with given fields: slot
func (_m *AuthService) Logout(slot model.IdentitySlot) error {
	ret := _m.Called(slot)

	if len(ret) == 0 {
		panic("no return value specified for Logout")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(model.IdentitySlot) error); ok {
		r0 = rf(slot)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewAuthService creates a new instance of AuthService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewAuthService(t interface {
	mock.TestingT
	Cleanup(func())
}) *AuthService {
	mock := &AuthService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

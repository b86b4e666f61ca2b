package mocks

import (
	fiber "github.com/gofiber/fiber/v2"
	mock "github.com/stretchr/testify/mock"

	model "github.com/dtroode/bookshelf-server/internal/model"
)

// SessionProvider is a mock type for the SessionProvider type
type SessionProvider struct {
	mock.Mock
}

// Slot provides a mock function with given fields: c
func (_m *SessionProvider) Slot(c *fiber.Ctx) (model.IdentitySlot, error) {
	ret := _m.Called(c)

	if len(ret) == 0 {
		panic("no return value specified for Slot")
	}

	var r0 model.IdentitySlot
	var r1 error
	if rf, ok := ret.Get(0).(func(*fiber.Ctx) (model.IdentitySlot, error)); ok {
		return rf(c)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(model.IdentitySlot)
	}
	r1 = ret.Error(1)

	return r0, r1
}

// NewSessionProvider creates a new instance of SessionProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewSessionProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *SessionProvider {
	mock := &SessionProvider{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

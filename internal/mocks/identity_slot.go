package mocks

import (
	mock "github.com/stretchr/testify/mock"

	uuid "github.com/google/uuid"
)

// IdentitySlot is a mock type for the IdentitySlot type
type IdentitySlot struct {
	mock.Mock
}

// Clear provides a mock function with no fields
func (_m *IdentitySlot) Clear() error {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Clear")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// SetUserID provides a mock function with given fields: userID
func (_m *IdentitySlot) SetUserID(userID uuid.UUID) error {
	ret := _m.Called(userID)

	if len(ret) == 0 {
		panic("no return value specified for SetUserID")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(uuid.UUID) error); ok {
		r0 = rf(userID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// UserID provides a mock function with no fields
func (_m *IdentitySlot) UserID() (uuid.UUID, bool) {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for UserID")
	}

	var r0 uuid.UUID
	var r1 bool
	if rf, ok := ret.Get(0).(func() (uuid.UUID, bool)); ok {
		return rf()
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(uuid.UUID)
	}
	r1 = ret.Get(1).(bool)

	return r0, r1
}

// NewIdentitySlot creates a new instance of IdentitySlot. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewIdentitySlot(t interface {
	mock.TestingT
	Cleanup(func())
}) *IdentitySlot {
	mock := &IdentitySlot{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

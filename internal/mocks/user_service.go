package mocks

import (
	context "context"

	model "github.com/dtroode/bookshelf-server/internal/model"
	mock "github.com/stretchr/testify/mock"

	uuid "github.com/google/uuid"
)

// UserService is a mock type for the UserService type
type UserService struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, fields
func (_m *UserService) Create(ctx context.Context, fields model.Fields) (model.User, error) {
	ret := _m.Called(ctx, fields)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 model.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.Fields) (model.User, error)); ok {
		return rf(ctx, fields)
	}
	r0 = ret.Get(0).(model.User)
	r1 = ret.Error(1)

	return r0, r1
}

// Delete provides a mock function with given fields: ctx, id
func (_m *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Get provides a mock function with given fields: ctx, callerID, id
func (_m *UserService) Get(ctx context.Context, callerID uuid.UUID, id uuid.UUID) (model.User, error) {
	ret := _m.Called(ctx, callerID, id)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 model.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) (model.User, error)); ok {
		return rf(ctx, callerID, id)
	}
	r0 = ret.Get(0).(model.User)
	r1 = ret.Error(1)

	return r0, r1
}

// List provides a mock function with given fields: ctx
func (_m *UserService) List(ctx context.Context) (model.Users, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	var r0 model.Users
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (model.Users, error)); ok {
		return rf(ctx)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(model.Users)
	}
	r1 = ret.Error(1)

	return r0, r1
}

// Update provides a mock function with given fields: ctx, callerID, id, fields
func (_m *UserService) Update(ctx context.Context, callerID uuid.UUID, id uuid.UUID, fields model.Fields) (model.User, error) {
	ret := _m.Called(ctx, callerID, id, fields)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 model.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, model.Fields) (model.User, error)); ok {
		return rf(ctx, callerID, id, fields)
	}
	r0 = ret.Get(0).(model.User)
	r1 = ret.Error(1)

	return r0, r1
}

// NewUserService creates a new instance of UserService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewUserService(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserService {
	mock := &UserService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

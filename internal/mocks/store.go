package mocks

import (
	context "context"

	model "github.com/dtroode/bookshelf-server/internal/model"
	mock "github.com/stretchr/testify/mock"

	uuid "github.com/google/uuid"
)

// Store is a mock type for the Store type
type Store struct {
	mock.Mock
}

// Close provides a mock function with no fields
func (_m *Store) Close() {
	_m.Called()
}

// Delete provides a mock function with given fields: entity
func (_m *Store) Delete(entity model.Entity) {
	_m.Called(entity)
}

// Get provides a mock function with given fields: ctx, dest, by
func (_m *Store) Get(ctx context.Context, dest model.Entity, by model.Predicate) error {
	ret := _m.Called(ctx, dest, by)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, model.Entity, model.Predicate) error); ok {
		r0 = rf(ctx, dest, by)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// GetAll provides a mock function with given fields: ctx, dest, owner
func (_m *Store) GetAll(ctx context.Context, dest model.Collection, owner uuid.UUID) error {
	ret := _m.Called(ctx, dest, owner)

	if len(ret) == 0 {
		panic("no return value specified for GetAll")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, model.Collection, uuid.UUID) error); ok {
		r0 = rf(ctx, dest, owner)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// New provides a mock function with given fields: entity
func (_m *Store) New(entity model.Entity) {
	_m.Called(entity)
}

// Rollback provides a mock function with no fields
func (_m *Store) Rollback() {
	_m.Called()
}

// Save provides a mock function with given fields: ctx
func (_m *Store) Save(ctx context.Context) error {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Save")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Update provides a mock function with given fields: entity
func (_m *Store) Update(entity model.Entity) {
	_m.Called(entity)
}

// NewStore creates a new instance of Store. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *Store {
	mock := &Store{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

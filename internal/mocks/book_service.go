package mocks

import (
	context "context"

	model "github.com/dtroode/bookshelf-server/internal/model"
	mock "github.com/stretchr/testify/mock"

	uuid "github.com/google/uuid"
)

// BookService is a mock type for the BookService type
type BookService struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, ownerID, fields
func (_m *BookService) Create(ctx context.Context, ownerID uuid.UUID, fields model.Fields) (model.Book, error) {
	ret := _m.Called(ctx, ownerID, fields)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 model.Book
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, model.Fields) (model.Book, error)); ok {
		return rf(ctx, ownerID, fields)
	}
	r0 = ret.Get(0).(model.Book)
	r1 = ret.Error(1)

	return r0, r1
}

// Delete provides a mock function with given fields: ctx, ownerID, id
func (_m *BookService) Delete(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error {
	ret := _m.Called(ctx, ownerID, id)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) error); ok {
		r0 = rf(ctx, ownerID, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Get provides a mock function with given fields: ctx, ownerID, id
func (_m *BookService) Get(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (model.Book, error) {
	ret := _m.Called(ctx, ownerID, id)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 model.Book
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) (model.Book, error)); ok {
		return rf(ctx, ownerID, id)
	}
	r0 = ret.Get(0).(model.Book)
	r1 = ret.Error(1)

	return r0, r1
}

// List provides a mock function with given fields: ctx, ownerID
func (_m *BookService) List(ctx context.Context, ownerID uuid.UUID) (model.Books, error) {
	ret := _m.Called(ctx, ownerID)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	var r0 model.Books
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (model.Books, error)); ok {
		return rf(ctx, ownerID)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(model.Books)
	}
	r1 = ret.Error(1)

	return r0, r1
}

// Replace provides a mock function with given fields: ctx, ownerID, id, fields
func (_m *BookService) Replace(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, fields model.Fields) (model.Book, error) {
	ret := _m.Called(ctx, ownerID, id, fields)

	if len(ret) == 0 {
		panic("no return value specified for Replace")
	}

	var r0 model.Book
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, model.Fields) (model.Book, error)); ok {
		return rf(ctx, ownerID, id, fields)
	}
	r0 = ret.Get(0).(model.Book)
	r1 = ret.Error(1)

	return r0, r1
}

// NewBookService creates a new instance of BookService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewBookService(t interface {
	mock.TestingT
	Cleanup(func())
}) *BookService {
	mock := &BookService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

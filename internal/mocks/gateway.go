package mocks

import (
	model "github.com/dtroode/bookshelf-server/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// Gateway is a mock type for the Gateway type
type Gateway struct {
	mock.Mock
}

// Session provides a mock function with no fields
func (_m *Gateway) Session() model.Store {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Session")
	}

	var r0 model.Store
	if rf, ok := ret.Get(0).(func() model.Store); ok {
		r0 = rf()
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(model.Store)
	}

	return r0
}

// NewGateway creates a new instance of Gateway. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewGateway(t interface {
	mock.TestingT
	Cleanup(func())
}) *Gateway {
	mock := &Gateway{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

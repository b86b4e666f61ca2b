package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/bookshelf-server/internal/mocks"
	"github.com/dtroode/bookshelf-server/internal/model"
)

func newGateway(t *testing.T) (*mocks.Gateway, *mocks.Store) {
	t.Helper()
	gw := mocks.NewGateway(t)
	store := mocks.NewStore(t)
	gw.On("Session").Return(store).Maybe()
	store.On("Close").Return().Maybe()
	return gw, store
}

func fields(t *testing.T, v map[string]any) model.Fields {
	t.Helper()
	body, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := model.ParseFields(body)
	require.NoError(t, err)
	return f
}

func fillUser(u model.User) func(mock.Arguments) {
	return func(args mock.Arguments) {
		*args.Get(1).(*model.User) = u
	}
}

func fillBook(b model.Book) func(mock.Arguments) {
	return func(args mock.Arguments) {
		*args.Get(1).(*model.Book) = b
	}
}

package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHasher struct {
	err error
}

func (h fakeHasher) Hash(plain string) ([]byte, error) {
	if h.err != nil {
		return nil, h.err
	}
	return []byte("hashed:" + plain), nil
}

func (h fakeHasher) Verify(plain string, hash []byte) bool {
	return string(hash) == "hashed:"+plain
}

func mustFields(t *testing.T, body string) Fields {
	t.Helper()
	fields, err := ParseFields([]byte(body))
	require.NoError(t, err)
	return fields
}

func TestNewUser(t *testing.T) {
	t.Parallel()

	clientID := uuid.New()

	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{
			name: "valid user",
			body: `{"full_name":"John Doe","email":"john@example.com","address":"123 Main St","password":"password"}`,
		},
		{
			name: "client id is discarded",
			body: `{"id":"` + clientID.String() + `","full_name":"John","email":"j@x.com","address":"a","password":"p"}`,
		},
		{
			name:    "unknown field",
			body:    `{"full_name":"John","email":"j@x.com","address":"a","password":"p","role":"admin"}`,
			wantErr: ErrInvalidData,
		},
		{
			name:    "missing email",
			body:    `{"full_name":"John","address":"a","password":"p"}`,
			wantErr: ErrInvalidData,
		},
		{
			name:    "malformed email",
			body:    `{"full_name":"John","email":"nope","address":"a","password":"p"}`,
			wantErr: ErrInvalidData,
		},
		{
			name:    "wrong type",
			body:    `{"full_name":42,"email":"j@x.com","address":"a","password":"p"}`,
			wantErr: ErrInvalidData,
		},
		{
			name:    "missing password",
			body:    `{"full_name":"John","email":"j@x.com","address":"a"}`,
			wantErr: ErrInvalidData,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			user, err := NewUser(mustFields(t, tt.body), fakeHasher{})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, user.ID)
			assert.NotEqual(t, clientID, user.ID)
			assert.NotEmpty(t, user.Password)
			assert.False(t, user.CreatedAt.IsZero())
		})
	}
}

func TestNewUser_HashesPassword(t *testing.T) {
	t.Parallel()

	user, err := NewUser(mustFields(t, `{"full_name":"A","email":"a@x.com","address":"b","password":"p"}`), fakeHasher{})
	require.NoError(t, err)

	assert.NotEqual(t, "p", string(user.Password))
	assert.True(t, user.CheckPassword("p", fakeHasher{}))
	assert.False(t, user.CheckPassword("wrong", fakeHasher{}))
}

func TestNewUser_HasherError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, err := NewUser(mustFields(t, `{"full_name":"A","email":"a@x.com","address":"b","password":"p"}`), fakeHasher{err: boom})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrInvalidData)
}

func TestUser_Apply(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	base := User{ID: id, FullName: "A", Email: "a@x.com", Address: "addr", Password: []byte("hashed:old")}

	t.Run("partial update keeps other fields", func(t *testing.T) {
		t.Parallel()
		u := base
		require.NoError(t, u.Apply(mustFields(t, `{"address":"new"}`), fakeHasher{}))
		assert.Equal(t, "new", u.Address)
		assert.Equal(t, "A", u.FullName)
		assert.Equal(t, []byte("hashed:old"), u.Password)
	})

	t.Run("id is stripped", func(t *testing.T) {
		t.Parallel()
		u := base
		require.NoError(t, u.Apply(mustFields(t, `{"id":"`+uuid.NewString()+`","full_name":"B"}`), fakeHasher{}))
		assert.Equal(t, id, u.ID)
		assert.Equal(t, "B", u.FullName)
	})

	t.Run("password is re-hashed", func(t *testing.T) {
		t.Parallel()
		u := base
		require.NoError(t, u.Apply(mustFields(t, `{"password":"new"}`), fakeHasher{}))
		assert.True(t, u.CheckPassword("new", fakeHasher{}))
	})

	t.Run("unknown field leaves user untouched", func(t *testing.T) {
		t.Parallel()
		u := base
		err := u.Apply(mustFields(t, `{"full_name":"C","is_admin":true}`), fakeHasher{})
		assert.ErrorIs(t, err, ErrInvalidData)
		assert.Equal(t, "A", u.FullName)
	})

	t.Run("empty required field", func(t *testing.T) {
		t.Parallel()
		u := base
		err := u.Apply(mustFields(t, `{"email":""}`), fakeHasher{})
		assert.ErrorIs(t, err, ErrInvalidData)
	})
}

func TestUser_SerializeOmitsPassword(t *testing.T) {
	t.Parallel()

	user := User{ID: uuid.New(), FullName: "A", Email: "a@x.com", Address: "b", Password: []byte("secret-hash")}

	payload := user.Serialize()
	assert.NotContains(t, payload, "password")
	assert.Equal(t, user.ID.String(), payload["id"])

	raw, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "secret-hash")

	list := Users{user}.Serialize()
	require.Len(t, list, 1)
	assert.NotContains(t, list[0], "password")
}

func TestUser_EntityColumnsMatchValues(t *testing.T) {
	t.Parallel()

	u := User{ID: uuid.New()}
	assert.Equal(t, UsersTable, u.Table())
	assert.Equal(t, u.ID, u.Key())
	assert.Len(t, u.Values(), len(u.Columns()))
}

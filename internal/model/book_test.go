package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBook(t *testing.T) {
	t.Parallel()

	caller := uuid.New()
	other := uuid.New()

	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "valid book", body: `{"title":"The Great Book","publication_year":2022}`},
		{name: "author_id from client is ignored", body: `{"title":"T","publication_year":2022,"author_id":"` + other.String() + `"}`},
		{name: "id from client is ignored", body: `{"id":"` + other.String() + `","title":"T","publication_year":1999}`},
		{name: "text year", body: `{"title":"T","publication_year":"twenty"}`, wantErr: ErrInvalidData},
		{name: "fractional year", body: `{"title":"T","publication_year":2022.5}`, wantErr: ErrInvalidData},
		{name: "missing title", body: `{"publication_year":2022}`, wantErr: ErrInvalidData},
		{name: "null year", body: `{"title":"T","publication_year":null}`, wantErr: ErrInvalidData},
		{name: "unknown field", body: `{"title":"T","publication_year":2022,"isbn":"1"}`, wantErr: ErrInvalidData},
		{name: "year above int4", body: `{"title":"T","publication_year":3000000000}`, wantErr: ErrInvalidData},
		{name: "year below int4", body: `{"title":"T","publication_year":-3000000000}`, wantErr: ErrInvalidData},
		{name: "negative year", body: `{"title":"T","publication_year":-500}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			book, err := NewBook(mustFields(t, tt.body), caller)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, caller, book.AuthorID)
			assert.NotEqual(t, other, book.ID)
			assert.NotEqual(t, uuid.Nil, book.ID)
			assert.True(t, book.OwnedBy(caller))
			assert.False(t, book.OwnedBy(other))
		})
	}
}

func TestBook_Replace(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	id := uuid.New()

	book := Book{ID: id, Title: "Old", PublicationYear: 1900, AuthorID: owner}
	err := book.Replace(mustFields(t, `{"title":"New","publication_year":2000,"author_id":"`+uuid.NewString()+`"}`))
	require.NoError(t, err)
	assert.Equal(t, "New", book.Title)
	assert.Equal(t, 2000, book.PublicationYear)
	assert.Equal(t, owner, book.AuthorID)
	assert.Equal(t, id, book.ID)

	err = book.Replace(mustFields(t, `{"title":"Only title"}`))
	assert.ErrorIs(t, err, ErrInvalidData)
	assert.Equal(t, "New", book.Title)
}

func TestBook_Serialize(t *testing.T) {
	t.Parallel()

	book := Book{ID: uuid.New(), Title: "T", PublicationYear: 2022, AuthorID: uuid.New()}
	payload := book.Serialize()

	assert.Equal(t, book.ID.String(), payload["id"])
	assert.Equal(t, book.AuthorID.String(), payload["author_id"])
	assert.Equal(t, 2022, payload["publication_year"])
	assert.Len(t, book.Values(), len(book.Columns()))
	assert.Equal(t, BooksTable, Books{}.Table())
}

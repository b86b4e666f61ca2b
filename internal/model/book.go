package model

import (
	"time"

	"github.com/google/uuid"
)

// BooksTable is the table storing books.
const BooksTable = "books"

// Book represents a book owned by the user referenced by AuthorID.
type Book struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Title           string    `db:"title" json:"title"`
	PublicationYear int       `db:"publication_year" json:"publication_year"`
	AuthorID        uuid.UUID `db:"author_id" json:"author_id"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// Books is a collection of books.
type Books []Book

type bookInput struct {
	Title           *string `validate:"required,max=255"`
	PublicationYear *int    `validate:"required,min=-2147483648,max=2147483647"`
}

func (in *bookInput) setters() map[string]any {
	return map[string]any{
		"title":            &in.Title,
		"publication_year": &in.PublicationYear,
	}
}

func parseBookInput(fields Fields) (bookInput, error) {
	var in bookInput
	if err := fields.Without(FieldID, FieldAuthorID).decodeInto(in.setters()); err != nil {
		return bookInput{}, err
	}
	if err := validateStruct(in); err != nil {
		return bookInput{}, err
	}
	return in, nil
}

// NewBook builds a book owned by authorID. Client-supplied id and author_id are ignored.
func NewBook(fields Fields, authorID uuid.UUID) (Book, error) {
	in, err := parseBookInput(fields)
	if err != nil {
		return Book{}, err
	}

	now := time.Now().UTC()
	return Book{
		ID:              uuid.New(),
		Title:           *in.Title,
		PublicationYear: *in.PublicationYear,
		AuthorID:        authorID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// Replace overwrites every mutable field of the book. Both title and
// publication_year must be present.
func (b *Book) Replace(fields Fields) error {
	in, err := parseBookInput(fields)
	if err != nil {
		return err
	}

	b.Title = *in.Title
	b.PublicationYear = *in.PublicationYear
	b.UpdatedAt = time.Now().UTC()
	return nil
}

// OwnedBy reports whether userID is the book's author.
func (b Book) OwnedBy(userID uuid.UUID) bool {
	return b.AuthorID == userID
}

// Serialize returns the response representation of the book.
func (b Book) Serialize() map[string]any {
	return map[string]any{
		"id":               b.ID.String(),
		"title":            b.Title,
		"publication_year": b.PublicationYear,
		"author_id":        b.AuthorID.String(),
		"created_at":       b.CreatedAt,
		"updated_at":       b.UpdatedAt,
	}
}

func (b Book) Table() string  { return BooksTable }
func (b Book) Key() uuid.UUID { return b.ID }

func (b Book) Columns() []string {
	return []string{"id", "title", "publication_year", "author_id", "created_at", "updated_at"}
}

func (b Book) Values() []any {
	return []any{b.ID, b.Title, b.PublicationYear, b.AuthorID, b.CreatedAt, b.UpdatedAt}
}

func (Books) Table() string { return BooksTable }

// Serialize returns the response representation of every book.
func (bs Books) Serialize() []map[string]any {
	out := make([]map[string]any, 0, len(bs))
	for _, b := range bs {
		out = append(out, b.Serialize())
	}
	return out
}

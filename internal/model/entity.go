package model

import "github.com/google/uuid"

// Field names shared by all entities.
const (
	FieldID       = "id"
	FieldAuthorID = "author_id"
)

// Entity is a persistable record known to the gateway.
type Entity interface {
	// Table is the relational table backing the entity.
	Table() string
	// Key is the primary key value.
	Key() uuid.UUID
	// Columns lists persisted columns, in the order of Values.
	Columns() []string
	Values() []any
}

// Collection is a destination for multi-row reads.
type Collection interface {
	Table() string
}

// Predicate selects a single row by a key column.
type Predicate struct {
	Column string
	Value  any
}

// ByID selects a row by its primary key.
func ByID(id uuid.UUID) Predicate {
	return Predicate{Column: "id", Value: id}
}

// ByEmail selects a user row by its unique email.
func ByEmail(email string) Predicate {
	return Predicate{Column: "email", Value: email}
}

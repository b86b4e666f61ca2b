package postgres

import (
	"slices"

	"github.com/dtroode/bookshelf-server/internal/model"
)

// Table registers an entity type with the gateway.
type Table struct {
	Name string
	// Columns are selected on reads, in struct tag names.
	Columns []string
	// Lookups are the columns a single-row Get may filter on.
	Lookups []string
	// Owner is the column GetAll filters on. Empty means the table has no owner.
	Owner   string
	OrderBy string
}

var (
	UsersTable = Table{
		Name:    model.UsersTable,
		Columns: model.User{}.Columns(),
		Lookups: []string{"id", "email"},
		OrderBy: "created_at, id",
	}
	BooksTable = Table{
		Name:    model.BooksTable,
		Columns: model.Book{}.Columns(),
		Lookups: []string{"id"},
		Owner:   "author_id",
		OrderBy: "created_at, id",
	}
)

// DefaultTables is every table the application persists.
func DefaultTables() []Table {
	return []Table{UsersTable, BooksTable}
}

func (t Table) lookup(column string) bool {
	return slices.Contains(t.Lookups, column)
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/dtroode/bookshelf-server/internal/model"
)

var _ model.Store = (*Session)(nil)

type changeKind int

const (
	changeInsert changeKind = iota
	changeUpdate
	changeDelete
)

type change struct {
	kind   changeKind
	entity model.Entity
}

// Session stages writes and applies them in a single transaction on Save.
// Reads go straight to the pool. A Session is not safe for concurrent use.
type Session struct {
	db      *sqlx.DB
	tables  map[string]Table
	pending []change
}

func (s *Session) Get(ctx context.Context, dest model.Entity, by model.Predicate) error {
	t, ok := s.tables[dest.Table()]
	if !ok {
		return model.ErrNotFound
	}
	if !t.lookup(by.Column) {
		return fmt.Errorf("column %q cannot be used to look up %s", by.Column, t.Name)
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 LIMIT 1",
		strings.Join(t.Columns, ", "), t.Name, by.Column)

	if err := s.db.GetContext(ctx, dest, query, by.Value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ErrNotFound
		}
		return classify(err)
	}
	return nil
}

func (s *Session) GetAll(ctx context.Context, dest model.Collection, owner uuid.UUID) error {
	t, ok := s.tables[dest.Table()]
	if !ok {
		return model.ErrNotFound
	}

	var (
		b    strings.Builder
		args []any
	)
	fmt.Fprintf(&b, "SELECT %s FROM %s", strings.Join(t.Columns, ", "), t.Name)
	if owner != uuid.Nil {
		if t.Owner == "" {
			return fmt.Errorf("%s cannot be filtered by owner", t.Name)
		}
		fmt.Fprintf(&b, " WHERE %s = $1", t.Owner)
		args = append(args, owner)
	}
	if t.OrderBy != "" {
		fmt.Fprintf(&b, " ORDER BY %s", t.OrderBy)
	}

	if err := s.db.SelectContext(ctx, dest, b.String(), args...); err != nil {
		return classify(err)
	}
	return nil
}

func (s *Session) New(entity model.Entity) {
	s.pending = append(s.pending, change{kind: changeInsert, entity: entity})
}

func (s *Session) Update(entity model.Entity) {
	s.pending = append(s.pending, change{kind: changeUpdate, entity: entity})
}

func (s *Session) Delete(entity model.Entity) {
	s.pending = append(s.pending, change{kind: changeDelete, entity: entity})
}

func (s *Session) Save(ctx context.Context) error {
	if len(s.pending) == 0 {
		return nil
	}
	changes := s.pending
	s.pending = nil

	return withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		for _, c := range changes {
			if err := s.apply(ctx, tx, c); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Session) Rollback() {
	s.pending = nil
}

func (s *Session) Close() {
	s.Rollback()
}

func (s *Session) apply(ctx context.Context, tx *sqlx.Tx, c change) error {
	name := c.entity.Table()
	if _, ok := s.tables[name]; !ok {
		return fmt.Errorf("%w: table %s is not registered", model.ErrNotFound, name)
	}

	switch c.kind {
	case changeInsert:
		_, err := tx.ExecContext(ctx, insertQuery(name, c.entity.Columns()), c.entity.Values()...)
		if err != nil {
			return classify(err)
		}
		return nil
	case changeUpdate:
		query, args := updateQuery(name, c.entity)
		return execAffecting(ctx, tx, query, args...)
	case changeDelete:
		query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", name)
		return execAffecting(ctx, tx, query, c.entity.Key())
	}
	return fmt.Errorf("unknown change kind %d", c.kind)
}

func execAffecting(ctx context.Context, tx *sqlx.Tx, query string, args ...any) error {
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return classify(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return classify(err)
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func insertQuery(table string, columns []string) string {
	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
}

// updateQuery sets every column except id and created_at, keyed by id as $1.
func updateQuery(table string, entity model.Entity) (string, []any) {
	columns, values := entity.Columns(), entity.Values()

	sets := make([]string, 0, len(columns))
	args := []any{entity.Key()}
	for i, col := range columns {
		if col == "id" || col == "created_at" {
			continue
		}
		args = append(args, values[i])
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE id = $1", table, strings.Join(sets, ", ")), args
}

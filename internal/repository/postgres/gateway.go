package postgres

import (
	"github.com/jmoiron/sqlx"

	"github.com/dtroode/bookshelf-server/internal/model"
)

var _ model.Gateway = (*Gateway)(nil)

// Gateway hands out request-scoped sessions over a shared sqlx handle.
type Gateway struct {
	db     *sqlx.DB
	tables map[string]Table
}

func NewGateway(db *sqlx.DB, tables ...Table) *Gateway {
	registry := make(map[string]Table, len(tables))
	for _, t := range tables {
		registry[t.Name] = t
	}
	return &Gateway{
		db:     db,
		tables: registry,
	}
}

func (g *Gateway) Session() model.Store {
	return &Session{
		db:     g.db,
		tables: g.tables,
	}
}

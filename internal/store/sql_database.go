package store

import (
	"database/sql"

	"github.com/jmoliner/herdsync/internal/logger"
	"github.com/jmoliner/herdsync/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

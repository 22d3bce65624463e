// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/catalog-export/pkg/types"
)

// sqliteSink writes rows into a fresh SQLite database. The file is an
// export artifact like the CSV: any previous database at the path is
// removed so each run starts from an empty table.
type sqliteSink struct {
	db     *sql.DB
	stmt   *sql.Stmt
	closed bool
}

func newSQLiteSink(path string) (*sqliteSink, error) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("removing previous database: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(
		`CREATE TABLE datasets (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL
		)`,
	); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	stmt, err := db.Prepare(`INSERT INTO datasets (id, name, description) VALUES (?, ?, ?)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing insert: %w", err)
	}

	return &sqliteSink{db: db, stmt: stmt}, nil
}

func (s *sqliteSink) Write(row types.DatasetSummary) error {
	_, err := s.stmt.Exec(row.ID, row.Name, row.Description)
	return err
}

func (s *sqliteSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	stmtErr := s.stmt.Close()
	dbErr := s.db.Close()
	if stmtErr != nil {
		return stmtErr
	}
	return dbErr
}

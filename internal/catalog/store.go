// Package catalog reads and writes the sqlite command catalog.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cyberarsenal/cyberarsenal/internal/logging"
	"github.com/cyberarsenal/cyberarsenal/internal/recipe"
	_ "modernc.org/sqlite"
)

// Store is a sqlite-backed catalog.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the catalog database at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("catalog: open: %w", ErrEmptyPath)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("catalog: create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open db: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) init() error {
	if _, err := s.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("catalog: set busy timeout: %w", err)
	}
	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("catalog: create schema: %w", err)
	}
	return nil
}

// Rows returns every stored command in id order with its first types row,
// first args row and all examples in insertion order.
func (s *Store) Rows(ctx context.Context) ([]Row, error) {
	out, err := s.commandRows(ctx)
	if err != nil {
		return nil, err
	}
	index := make(map[int64]int, len(out))
	for i, r := range out {
		index[r.ID] = i
	}

	if err := s.eachValue(ctx, "SELECT command_id, type FROM command_types ORDER BY rowid", func(id int64, v string, first bool) {
		if i, ok := index[id]; ok && first {
			out[i].Categories = v
		}
	}); err != nil {
		return nil, err
	}
	if err := s.eachValue(ctx, "SELECT command_id, args FROM command_args ORDER BY rowid", func(id int64, v string, first bool) {
		if i, ok := index[id]; ok && first {
			out[i].RawArgs = v
		}
	}); err != nil {
		return nil, err
	}
	if err := s.eachValue(ctx, "SELECT command_id, example FROM command_examples ORDER BY rowid", func(id int64, v string, _ bool) {
		if i, ok := index[id]; ok {
			out[i].Examples = append(out[i].Examples, v)
		}
	}); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) commandRows(ctx context.Context) ([]Row, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, name_exe, short_desc, details FROM commands ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("catalog: query commands: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		var shortDesc, details sql.NullString
		if err := rows.Scan(&r.ID, &r.Name, &r.Executable, &shortDesc, &details); err != nil {
			return nil, fmt.Errorf("catalog: scan command: %w", err)
		}
		r.ShortDesc = shortDesc.String
		r.Details = details.String
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog: iterate commands: %w", err)
	}
	return out, nil
}

// eachValue runs a (command_id, value) query and calls fn per row. first is
// true for the first row seen for a command id.
func (s *Store) eachValue(ctx context.Context, query string, fn func(id int64, value string, first bool)) error {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("catalog: query %q: %w", query, err)
	}
	defer rows.Close()

	seen := make(map[int64]bool)
	for rows.Next() {
		var id sql.NullInt64
		var value sql.NullString
		if err := rows.Scan(&id, &value); err != nil {
			return fmt.Errorf("catalog: scan %q: %w", query, err)
		}
		if !id.Valid {
			continue
		}
		fn(id.Int64, value.String, !seen[id.Int64])
		seen[id.Int64] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("catalog: iterate %q: %w", query, err)
	}
	return nil
}

// Load reads all rows and parses them into commands with ids from 0.
func (s *Store) Load(ctx context.Context) ([]recipe.Command, error) {
	rows, err := s.Rows(ctx)
	if err != nil {
		return nil, err
	}
	cmds, _ := Commands(rows, 0)
	logging.Info("loaded catalog", "path", s.path, "commands", len(cmds))
	return cmds, nil
}

// Insert stores a single entry and returns its database id.
func (s *Store) Insert(ctx context.Context, e Entry) (int64, error) {
	var id int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		id, err = insertEntry(ctx, tx, e)
		return err
	})
	return id, err
}

// Import stores entries in a single transaction. With replace set the
// existing catalog is emptied first.
func (s *Store) Import(ctx context.Context, entries []Entry, replace bool) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if replace {
			for _, table := range []string{"command_examples", "command_args", "command_types", "commands"} {
				if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
					return fmt.Errorf("catalog: clear %s: %w", table, err)
				}
			}
		}
		for _, e := range entries {
			if _, err := insertEntry(ctx, tx, e); err != nil {
				return err
			}
		}
		logging.Info("imported catalog entries", "path", s.path, "entries", len(entries), "replace", replace)
		return nil
	})
}

func (s *Store) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("catalog: begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("catalog: commit: %w", err)
	}
	return nil
}

func insertEntry(ctx context.Context, tx *sql.Tx, e Entry) (int64, error) {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO commands (name, name_exe, short_desc, details) VALUES (?, ?, ?, ?)",
		e.Name, e.Executable, e.ShortDesc, e.Details)
	if err != nil {
		return 0, fmt.Errorf("catalog: insert %q: %w", e.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("catalog: insert %q: %w", e.Name, err)
	}

	if _, err := tx.ExecContext(ctx, "INSERT INTO command_types (command_id, type) VALUES (?, ?)", id, e.Types); err != nil {
		return 0, fmt.Errorf("catalog: insert types for %q: %w", e.Name, err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO command_args (command_id, args) VALUES (?, ?)", id, e.Args); err != nil {
		return 0, fmt.Errorf("catalog: insert args for %q: %w", e.Name, err)
	}
	for _, example := range e.Examples {
		if _, err := tx.ExecContext(ctx, "INSERT INTO command_examples (command_id, example) VALUES (?, ?)", id, example); err != nil {
			return 0, fmt.Errorf("catalog: insert example for %q: %w", e.Name, err)
		}
	}
	return id, nil
}

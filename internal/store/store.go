// Package store provides SQLite persistence for quote datasets. The
// text dataset stays the canonical interchange format; the database is
// what actually ships on a device image, because it survives partial
// writes and answers stats queries without a full parse.
package store

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/akerr/inkclock/internal/dataset"
)

// Store handles SQLite persistence. NOT an interface - concrete type.
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open creates a Store at the given database path, creating the schema
// if needed. Uses WAL mode for file-based databases.
func Open(dbPath string) (*Store, error) {
	connStr := dbPath
	if dbPath == ":memory:" {
		// Shared cache so all pooled connections see the same database.
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if dbPath != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return s, nil
}

func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS quotes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		time_key TEXT NOT NULL,
		quote TEXT NOT NULL,
		work TEXT NOT NULL DEFAULT '',
		author TEXT NOT NULL DEFAULT '',
		tag TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_quotes_time ON quotes(time_key);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// Import replaces the stored dataset with the contents of ix, returning
// the number of records written. Runs in one transaction so a failed
// import leaves the previous dataset intact.
func (s *Store) Import(ix *dataset.Index) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM quotes"); err != nil {
		return 0, err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO quotes (time_key, quote, work, author, tag)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	count := 0
	var insertErr error
	ix.Walk(func(key string, rec dataset.Record) {
		if insertErr != nil {
			return
		}
		if _, err := stmt.Exec(key, rec.Text, rec.Work, rec.Author, rec.Tag); err != nil {
			insertErr = err
			return
		}
		count++
	})
	if insertErr != nil {
		return 0, insertErr
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return count, nil
}

// LoadIndex reads the full dataset back as an in-memory index. Rowid
// order within a key preserves the original file order, which the
// hourly rotation depends on.
func (s *Store) LoadIndex() (*dataset.Index, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT time_key, quote, work, author, tag
		FROM quotes
		ORDER BY time_key, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ix := dataset.NewIndex()
	for rows.Next() {
		var key string
		var rec dataset.Record
		if err := rows.Scan(&key, &rec.Text, &rec.Work, &rec.Author, &rec.Tag); err != nil {
			return nil, err
		}
		// A bad row is dropped, same as a malformed dataset line.
		_ = ix.Add(key, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ix, nil
}

// Stats summarizes the stored dataset.
type Stats struct {
	Records int
	Slots   int
	ByTag   map[string]int
}

// Stats returns record and slot counts plus a per-tag breakdown.
func (s *Store) Stats() (Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{ByTag: make(map[string]int)}

	row := s.db.QueryRow("SELECT COUNT(*), COUNT(DISTINCT time_key) FROM quotes")
	if err := row.Scan(&st.Records, &st.Slots); err != nil {
		return st, err
	}

	rows, err := s.db.Query("SELECT tag, COUNT(*) FROM quotes GROUP BY tag")
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var tag string
		var n int
		if err := rows.Scan(&tag, &n); err != nil {
			return st, err
		}
		st.ByTag[tag] = n
	}
	return st, rows.Err()
}

// IsDatabase reports whether path looks like a quote database rather
// than a text dataset.
func IsDatabase(path string) bool {
	return strings.HasSuffix(path, ".db") || strings.HasSuffix(path, ".sqlite")
}

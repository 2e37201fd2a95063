// Package archive provides SQLite-based storage for named resource snapshots.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package archive

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database holding a library of snapshots.
type Store struct {
	db *sql.DB
}

// Entry describes one stored snapshot.
type Entry struct {
	Name      string
	Size      int
	UpdatedAt time.Time
}

// Open creates or opens a snapshot library at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("archive: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("archive: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("archive: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("archive: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("archive: migration failed: %w", err)
	}
	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS snapshots (
			name TEXT PRIMARY KEY,
			body TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_snapshots_updated ON snapshots(updated_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores a snapshot under the given name, overwriting any previous one.
func (s *Store) Save(name, body string) error {
	_, err := s.db.Exec(
		`INSERT INTO snapshots (name, body, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET body = excluded.body, updated_at = CURRENT_TIMESTAMP`,
		name, body,
	)
	if err != nil {
		return fmt.Errorf("archive: save %s: %w", name, err)
	}
	return nil
}

// Load returns the snapshot text stored under the given name.
func (s *Store) Load(name string) (string, error) {
	var body string
	err := s.db.QueryRow(`SELECT body FROM snapshots WHERE name = ?`, name).Scan(&body)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("archive: snapshot not found: %s", name)
	}
	if err != nil {
		return "", fmt.Errorf("archive: load %s: %w", name, err)
	}
	return body, nil
}

// List returns all stored snapshots, most recently updated first.
func (s *Store) List() ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT name, length(body), updated_at FROM snapshots ORDER BY updated_at DESC, name`,
	)
	if err != nil {
		return nil, fmt.Errorf("archive: list: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Name, &e.Size, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("archive: list: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Delete removes the snapshot stored under the given name.
func (s *Store) Delete(name string) error {
	res, err := s.db.Exec(`DELETE FROM snapshots WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("archive: delete %s: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("archive: delete %s: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("archive: snapshot not found: %s", name)
	}
	return nil
}

package state

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// Open opens (creating if necessary) the history database at path and
// runs pending migrations. Use ":memory:" for an in-memory store.
func Open(path string) (*SQLiteStore, error) {
	dsn := path
	if path != ":memory:" {
		dsn = fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	s := &SQLiteStore{db: db, path: path}
	if err := s.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// RecordConversion inserts a conversion record. ID and CreatedAt are
// assigned when the caller leaves them unset.
func (s *SQLiteStore) RecordConversion(c *Conversion) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(`
		INSERT INTO conversions (id, created_at, source, shape, delimiter, has_header, row_count, col_count, snippet)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.CreatedAt.Format(time.RFC3339Nano), c.Source, c.Shape, c.Delimiter,
		boolToInt(c.HasHeader), c.RowCount, c.ColCount, c.Snippet,
	)
	if err != nil {
		return fmt.Errorf("failed to record conversion: %w", err)
	}
	return nil
}

// ListConversions returns conversions newest first, up to limit (0 = all).
func (s *SQLiteStore) ListConversions(limit int) ([]*Conversion, error) {
	query := `
		SELECT id, created_at, source, shape, delimiter, has_header, row_count, col_count, snippet
		FROM conversions ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversions: %w", err)
	}
	defer rows.Close()

	var out []*Conversion
	for rows.Next() {
		var c Conversion
		var createdAt string
		var hasHeader int
		if err := rows.Scan(&c.ID, &createdAt, &c.Source, &c.Shape, &c.Delimiter,
			&hasHeader, &c.RowCount, &c.ColCount, &c.Snippet); err != nil {
			return nil, fmt.Errorf("failed to scan conversion: %w", err)
		}
		c.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		c.HasHeader = hasHeader != 0
		out = append(out, &c)
	}
	return out, rows.Err()
}

// Clear deletes all history, returning the number of rows removed.
func (s *SQLiteStore) Clear() (int64, error) {
	res, err := s.db.Exec("DELETE FROM conversions")
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}
	return res.RowsAffected()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

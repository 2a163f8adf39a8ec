// Package state persists conversion history in SQLite with database
// migrations. History is strictly best-effort: a missing or broken
// store must never fail a conversion.
package state

import "time"

// Conversion is one recorded text-to-code conversion.
type Conversion struct {
	ID        string
	CreatedAt time.Time
	// Source is where the input came from: clipboard, file, or stdin.
	Source string
	// Shape is the rendered output shape name.
	Shape string
	// Delimiter is the resolved field separator, empty for pre-split inputs.
	Delimiter string
	HasHeader bool
	RowCount  int
	ColCount  int
	// Snippet is the generated code text.
	Snippet string
}

// Store records and lists conversions.
type Store interface {
	// RecordConversion inserts a conversion, assigning ID and CreatedAt
	// when unset.
	RecordConversion(c *Conversion) error
	// ListConversions returns the most recent conversions, newest first.
	// A limit of 0 means no limit.
	ListConversions(limit int) ([]*Conversion, error)
	// Clear removes all history and returns the number of rows deleted.
	Clear() (int64, error)
	Close() error
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/clearform/sf86gen/pkg/formdata"
)

// ErrNotFound is returned when no draft carries the requested id.
var ErrNotFound = errors.New("store: draft not found")

// Draft is the listing row for one saved document.
type Draft struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Store wraps the sqlite draft database.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS drafts (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	document   TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
);`

// Open opens (or creates) the draft database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: ensure schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save upserts a draft and returns its id. An empty id creates a new draft.
func (s *Store) Save(ctx context.Context, id, name string, doc *formdata.Document) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("store: nil document")
	}
	raw, err := doc.ToJSON()
	if err != nil {
		return "", fmt.Errorf("store: encode draft: %w", err)
	}
	if id == "" {
		id = uuid.NewString()
	}
	if name == "" {
		name = "draft " + time.Now().Format("2006-01-02 15:04")
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO drafts (id, name, document, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name,
			document = excluded.document, updated_at = excluded.updated_at`,
		id, name, string(raw), time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("store: save draft %s: %w", id, err)
	}
	return id, nil
}

// Load returns the document saved under id.
func (s *Store) Load(ctx context.Context, id string) (*formdata.Document, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT document FROM drafts WHERE id = ?`, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("store: load draft %s: %w", id, err)
	}
	doc, err := formdata.FromJSON([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("store: decode draft %s: %w", id, err)
	}
	return doc, nil
}

// List returns every draft, newest first.
func (s *Store) List(ctx context.Context) ([]Draft, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, updated_at FROM drafts ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("store: list drafts: %w", err)
	}
	defer rows.Close()

	var out []Draft
	for rows.Next() {
		var d Draft
		if err := rows.Scan(&d.ID, &d.Name, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("store: scan draft row: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list drafts: %w", err)
	}
	return out, nil
}

// Delete removes a draft.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM drafts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("store: delete draft %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete draft %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

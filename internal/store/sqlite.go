// Package store persists the latest document snapshot per session. It is
// plain key-value storage: one row per session, overwritten on save.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"SharedSlate/internal/session"
	"SharedSlate/internal/state"
)

// SQLite stores snapshots in a single-file database.
type SQLite struct {
	db *sql.DB
}

// Open opens (creating if needed) the snapshot database at path.
func Open(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}
	if _, err := db.Exec(
		`CREATE TABLE IF NOT EXISTS snapshots (
			session_id TEXT NOT NULL PRIMARY KEY,
			revision   INTEGER NOT NULL,
			content    TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
	); err != nil {
		db.Close()
		return nil, fmt.Errorf("create snapshots table: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Load returns the stored snapshot for a session, session.ErrNotFound when
// none exists, or state.ErrCorruptSnapshot when the row fails to decode.
func (s *SQLite) Load(ctx context.Context, sessionID string) (state.Document, error) {
	var content string
	err := s.db.QueryRowContext(ctx,
		`SELECT content FROM snapshots WHERE session_id = $1`, sessionID,
	).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return state.Document{}, session.ErrNotFound
	}
	if err != nil {
		return state.Document{}, fmt.Errorf("load snapshot %q: %w", sessionID, err)
	}
	return state.UnmarshalSnapshot([]byte(content))
}

// Save upserts the snapshot row for a session.
func (s *SQLite) Save(ctx context.Context, sessionID string, doc state.Document) error {
	content, err := state.MarshalSnapshot(doc)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (session_id, revision, content, updated_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT(session_id) DO UPDATE SET
			revision = excluded.revision,
			content = excluded.content,
			updated_at = excluded.updated_at`,
		sessionID, doc.Revision, string(content), time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("save snapshot %q: %w", sessionID, err)
	}
	return nil
}

// Sessions lists the session ids with a stored snapshot.
func (s *SQLite) Sessions(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT session_id FROM snapshots ORDER BY session_id`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

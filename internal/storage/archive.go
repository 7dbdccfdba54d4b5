// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/morganforge/helmdesk-tui/internal/locale"
	"github.com/morganforge/helmdesk-tui/internal/model"
)

// Schema for the transcript archive.
const schema = `
CREATE TABLE IF NOT EXISTS chat_messages (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    message_id TEXT NOT NULL,
    session_id TEXT NOT NULL,
    sender TEXT NOT NULL,
    text TEXT NOT NULL,
    language TEXT NOT NULL,
    created_at INTEGER NOT NULL  -- Unix timestamp
);

CREATE INDEX IF NOT EXISTS idx_chat_messages_session ON chat_messages(session_id);
CREATE INDEX IF NOT EXISTS idx_chat_messages_created ON chat_messages(created_at);
`

// ErrClosed is returned when the archive is used after Close.
var ErrClosed = errors.New("archive is closed")

// Archive is the SQLite-backed transcript store.
type Archive struct {
	db *sql.DB
}

// Open opens (creating if needed) the archive database at path.
func Open(path string) (*Archive, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Archive{db: db}, nil
}

// SaveSession writes every message of a finished session in one
// transaction. Saving the same session twice replaces the earlier copy.
func (a *Archive) SaveSession(sessionID string, lang locale.Language, msgs []*model.Message) error {
	if a.db == nil {
		return ErrClosed
	}

	tx, err := a.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.Exec("DELETE FROM chat_messages WHERE session_id = ?", sessionID); err != nil {
		return fmt.Errorf("failed to clear previous copy: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO chat_messages (message_id, session_id, sender, text, language, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, m := range msgs {
		msgLang := m.Language
		if msgLang == "" {
			msgLang = lang
		}
		if _, err := stmt.Exec(m.ID, sessionID, string(m.Sender), m.Text, string(msgLang), m.Timestamp.Unix()); err != nil {
			return fmt.Errorf("failed to insert message: %w", err)
		}
	}

	return tx.Commit()
}

// Session reads one session's messages back, oldest first.
func (a *Archive) Session(sessionID string) ([]*model.Message, error) {
	if a.db == nil {
		return nil, ErrClosed
	}

	rows, err := a.db.Query(`
		SELECT message_id, sender, text, language, created_at
		FROM chat_messages
		WHERE session_id = ?
		ORDER BY id`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}
	defer rows.Close()

	var msgs []*model.Message
	for rows.Next() {
		var m model.Message
		var sender, language string
		var created int64
		if err := rows.Scan(&m.ID, &sender, &m.Text, &language, &created); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		m.Sender = model.Sender(sender)
		m.Language = locale.Language(language)
		m.Timestamp = time.Unix(created, 0)
		msgs = append(msgs, &m)
	}
	return msgs, rows.Err()
}

// Sessions lists the archived session IDs, most recent first.
func (a *Archive) Sessions() ([]string, error) {
	if a.db == nil {
		return nil, ErrClosed
	}

	rows, err := a.db.Query(`
		SELECT session_id
		FROM chat_messages
		GROUP BY session_id
		ORDER BY MAX(created_at) DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan session id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Close releases the database handle.
func (a *Archive) Close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}

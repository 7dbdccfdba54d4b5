// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides the local transcript archive.
//
// Finished conversations are written to a SQLite database under
// ~/.helmdesk so support staff can review them even when the remote log
// sink was unreachable for the whole session. Archival is best-effort and
// happens once, when the widget quits.
//
// # Usage
//
// Open the archive and save a session:
//
//	arc, err := storage.Open(path)
//	err = arc.SaveSession(sessionID, lang, messages)
//
// Read a session back:
//
//	msgs, err := arc.Session(sessionID)
package storage

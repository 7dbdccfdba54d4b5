// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides string helpers for the helmdesk widget.
//
// UNICODE: Rune- and width-aware truncation preserves multi-byte
// characters, preventing mid-character cuts that would corrupt UTF-8
// strings rendered into the terminal.
package util

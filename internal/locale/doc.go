// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package locale holds the static localization table for the helmdesk widget:
// per-language UI strings, canned topic replies, and quick-reply suggestion
// lists. It is pure data plus lookup; nothing in this package performs I/O.
package locale

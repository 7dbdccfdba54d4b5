// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package intent implements the deterministic response engine: it maps
// free-text input to a canned, localized reply plus quick-reply suggestions
// using ordered keyword matching. The engine is pure: no network, no state,
// no failure modes.
package intent

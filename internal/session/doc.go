// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session owns the conversation lifecycle: one session ID, one
// language, one append-only transcript, and the submit path that turns
// user input into a bot reply.
//
// Submit is deliberately defensive. The reply engine is pure and should
// never fail, but a support widget that crashes the host terminal is worse
// than one that apologizes, so the whole turn runs under a recover that
// converts any panic into a localized error reply.
package session

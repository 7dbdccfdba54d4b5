// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package remote implements the best-effort chat log sink.
//
// Every chat message may be mirrored to a remote HTTP endpoint for support
// staff to review later. Delivery is best-effort: a single attempt with a
// bounded timeout, no retries, no queueing. A failed send never affects the
// conversation; the caller only learns a classified error kind so that the
// connection manager can decide whether the link is worth trying again.
package remote

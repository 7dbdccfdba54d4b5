// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package log configures the process-wide structured logger.
//
// The widget owns the terminal, so log output goes to a file rather than
// stdout. Configure is idempotent: the first call wins, later calls are
// no-ops, and packages that log before main configures anything fall back
// to a sane default.
package log

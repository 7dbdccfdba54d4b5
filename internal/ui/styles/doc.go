// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the helmdesk widget.
//
// All colors use Lip Gloss AdaptiveColor for automatic light/dark detection,
// with an explicit override when the config forces a theme. The operator's
// accent color from the config is threaded through the brand, chip and
// status styles so the widget matches the booking site it embeds into.
package styles

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/morganforge/helmdesk-tui/internal/ui/styles"
	"github.com/morganforge/helmdesk-tui/internal/util"
)

// maxChipWidth keeps a single long suggestion from eating the whole row.
const maxChipWidth = 28

// Suggestions renders the numbered quick-reply chip row.
type Suggestions struct {
	Theme *styles.Theme
}

// Render draws the chips side by side, dropping chips that no longer fit
// the width. An empty list renders nothing.
func (s Suggestions) Render(width int, items []string) string {
	if len(items) == 0 || width <= 0 {
		return ""
	}

	var chips []string
	used := 0
	for i, item := range items {
		label := fmt.Sprintf("%s %s",
			s.Theme.ChipNumber.Render(fmt.Sprintf("%d", i+1)),
			util.TruncateWidth(item, maxChipWidth))
		chip := s.Theme.Chip.Render(label)

		w := lipgloss.Width(chip) + 1
		if used+w > width {
			break
		}
		used += w
		if len(chips) > 0 {
			chips = append(chips, " ")
		}
		chips = append(chips, chip)
	}
	if len(chips) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

// Pick resolves a number key press ("1"-based) to the chip text, or ""
// when the index is out of range.
func Pick(items []string, n int) string {
	if n < 1 || n > len(items) {
		return ""
	}
	return items[n-1]
}

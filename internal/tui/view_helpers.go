package tui

import (
	"fmt"
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────"

const usageBarWidth = 30

// usageBar renders a fixed-width bar for a 0-100 percentage.
func usageBar(pct float64) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	filled := int(pct / 100 * usageBarWidth)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", usageBarWidth-filled)
	return fmt.Sprintf("%s %5.1f%%", bar, pct)
}

func formatGB(v float64) string {
	return fmt.Sprintf("%.1f GB", v)
}

func valueOrDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

// fitText truncates on runes; localized product names are not plain ASCII.
func fitText(v string, max int) string {
	runes := []rune(v)
	if max <= 0 || len(runes) <= max {
		return v
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

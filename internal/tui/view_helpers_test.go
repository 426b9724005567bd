package tui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestFitText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{name: "fits", input: "Internet Fiber", max: 32, expected: "Internet Fiber"},
		{name: "no limit", input: "Internet Fiber", max: 0, expected: "Internet Fiber"},
		{name: "truncated", input: "Internet Fiber Unlimited", max: 10, expected: "Interne..."},
		{name: "tiny limit", input: "Internet", max: 2, expected: "In"},
		{name: "multibyte name", input: "Internet Fibre Illimité", max: 20, expected: "Internet Fibre Il..."},
		{name: "multibyte tiny limit", input: "Illimité", max: 3, expected: "Ill"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fitText(tt.input, tt.max)
			assert.Equal(t, tt.expected, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestUsageBar(t *testing.T) {
	empty := usageBar(0)
	full := usageBar(100)
	over := usageBar(250)

	assert.NotContains(t, empty, "█")
	assert.NotContains(t, full, "░")
	assert.Equal(t, usageBarWidth, strings.Count(full, "█"))
	assert.Contains(t, over, "100.0%")
}

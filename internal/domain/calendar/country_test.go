package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectCountry(t *testing.T) {
	tests := []struct {
		name        string
		description string
		expected    string
	}{
		{
			name:        "FED interest rate decision",
			description: "FED interest rate decision",
			expected:    "US",
		},
		{
			name:        "Central bank acronym anywhere in the text",
			description: "Minutes from the latest BOJ meeting",
			expected:    "JP",
		},
		{
			name:        "Parenthesized country marker",
			description: "GDP quarterly release (UK)",
			expected:    "UK",
		},
		{
			name:        "Earlier table entry wins over later ones",
			description: "FED speech ahead of ECB presser",
			expected:    "US",
		},
		{
			name:        "Bare CPI defaults to US",
			description: "CPI release",
			expected:    "US",
		},
		{
			name:        "Matching is case-sensitive",
			description: "fed meeting notes",
			expected:    "",
		},
		{
			name:        "Ordinary description has no country",
			description: "Team sync with product",
			expected:    "",
		},
		{
			name:        "Empty description",
			description: "",
			expected:    "",
		},
		{
			name:        "New Zealand dairy auction",
			description: "Dairy auction results overnight",
			expected:    "NZ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectCountry(tt.description))
		})
	}
}

package moderation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModerator_Censor(t *testing.T) {
	moderator, err := New([]string{"rude", "awful"}, '*')
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "masks a forbidden word",
			input:    "that was rude of you",
			expected: "that was **** of you",
		},
		{
			name:     "ignores casing",
			input:    "RUDE",
			expected: "****",
		},
		{
			name:     "catches words split by spacing",
			input:    "r u d e",
			expected: "*******",
		},
		{
			name:     "leaves clean text untouched",
			input:    "thank you for helping",
			expected: "thank you for helping",
		},
		{
			name:     "masks several occurrences",
			input:    "rude and awful",
			expected: "**** and *****",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, moderator.Censor(tt.input))
		})
	}
}

func TestModerator_Disabled(t *testing.T) {
	req := require.New(t)

	moderator, err := New(nil, '*')
	req.NoError(err)
	req.Nil(moderator)

	// A nil moderator passes text through unchanged.
	req.Equal("anything goes", moderator.Censor("anything goes"))
}

package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		terms    string
		chat     int
		limit    int
	}{
		{
			name:  "plain terms",
			input: "/find quarterly invoice",
			terms: "quarterly invoice",
			limit: defaultLimit,
		},
		{
			name:  "chat flag",
			input: "/find deploy --chat 12",
			terms: "deploy",
			chat:  12,
			limit: defaultLimit,
		},
		{
			name:  "limit flag",
			input: "/find deploy --limit 3",
			terms: "deploy",
			limit: 3,
		},
		{
			name:  "both flags any order",
			input: "/find --limit 5 rollout plan --chat 2",
			terms: "rollout plan",
			chat:  2,
			limit: 5,
		},
		{
			name:  "non positive limit ignored",
			input: "/find x --limit 0",
			terms: "x",
			limit: defaultLimit,
		},
		{
			name:  "empty input",
			input: "",
			terms: "",
			limit: defaultLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			q := ParseQuery(tt.input)
			req.Equal(tt.terms, q.Terms)
			req.Equal(tt.chat, q.Chat)
			req.Equal(tt.limit, q.Limit)
			req.Equal(tt.input, q.RawInput)
		})
	}
}

package search

import (
	"strconv"
	"strings"
)

// Query represents structured search parameters parsed from raw chat
// input. It decouples the "/find" syntax from the index engine.
type Query struct {
	RawInput string // the original input from the user
	Terms    string // the text to match against message content
	Chat     int    // target chat, 0 when unspecified
	Limit    int    // number of results
}

const defaultLimit = 10

// ParseQuery extracts command-line style arguments from raw input.
// Example: /find invoice --chat 12 --limit 5
func ParseQuery(input string) *Query {
	query := &Query{
		RawInput: input,
		Limit:    defaultLimit,
	}

	parts := strings.Fields(input)
	var textTerms []string

	for i := 0; i < len(parts); i++ {
		part := parts[i]

		// Handle flags like --chat 12 or --limit 5
		if strings.HasPrefix(part, "--") && i+1 < len(parts) {
			key := strings.TrimPrefix(part, "--")
			val := parts[i+1]

			if n, err := strconv.Atoi(val); err == nil {
				switch key {
				case "chat":
					query.Chat = n
				case "limit":
					if n > 0 {
						query.Limit = n
					}
				}
			}
			i++ // skip the value part in the next iteration
			continue
		}

		// Anything that is not a flag or a command is a search term
		if !strings.HasPrefix(part, "/") {
			textTerms = append(textTerms, part)
		}
	}

	query.Terms = strings.Join(textTerms, " ")
	return query
}

package mention

import (
	"strings"
	"unicode"

	"chat-dojo/domain"
)

// TokenExtractor matches whole "@handle" tokens. Trailing punctuation
// is tolerated ("@bob!", "@bob,") but a handle glued inside a longer
// token is not a mention.
type TokenExtractor struct {
	caseSensitive bool
}

func NewTokenExtractor(caseSensitive bool) TokenExtractor {
	return TokenExtractor{caseSensitive: caseSensitive}
}

func (e TokenExtractor) Extract(content string, candidates []domain.User) []domain.User {
	handles := make(map[string]struct{})
	for _, token := range strings.Fields(content) {
		if !strings.HasPrefix(token, "@") {
			continue
		}
		handle := strings.TrimRightFunc(strings.TrimPrefix(token, "@"), func(r rune) bool {
			return unicode.IsPunct(r) || unicode.IsSymbol(r)
		})
		if handle == "" {
			continue
		}
		if !e.caseSensitive {
			handle = strings.ToLower(handle)
		}
		handles[handle] = struct{}{}
	}

	var mentioned []domain.User
	for _, candidate := range candidates {
		handle := candidate.Handle
		if !e.caseSensitive {
			handle = strings.ToLower(handle)
		}
		if _, ok := handles[handle]; ok {
			mentioned = append(mentioned, candidate)
		}
	}
	return dedupe(mentioned)
}

// SubstringExtractor reports a mention whenever "@handle" appears
// anywhere in the content, case-insensitively. Looser than
// TokenExtractor: "@bobcat" also mentions @bob.
type SubstringExtractor struct{}

func NewSubstringExtractor() SubstringExtractor {
	return SubstringExtractor{}
}

func (SubstringExtractor) Extract(content string, candidates []domain.User) []domain.User {
	lowered := strings.ToLower(content)
	var mentioned []domain.User
	for _, candidate := range candidates {
		if strings.Contains(lowered, strings.ToLower(candidate.Mention())) {
			mentioned = append(mentioned, candidate)
		}
	}
	return dedupe(mentioned)
}

//go:generate go run go.uber.org/mock/mockgen -source=extractor.go -destination=../mocks/mock_extractor.go -package=mocks

// Package mention decides how "@handle" references are detected in
// message content. Implementations are interchangeable policies: the
// message service only depends on the Extractor interface.
package mention

import (
	"chat-dojo/domain"
)

// Extractor returns the candidates whose handle is referenced in the
// content. The result is deduplicated and carries no ordering or
// ranking semantics.
type Extractor interface {
	Extract(content string, candidates []domain.User) []domain.User
}

// dedupe keeps the first occurrence per user ID, preserving candidate
// order so results are stable across extractors.
func dedupe(users []domain.User) []domain.User {
	seen := make(map[string]struct{}, len(users))
	var out []domain.User
	for _, u := range users {
		if _, ok := seen[u.ID.String()]; ok {
			continue
		}
		seen[u.ID.String()] = struct{}{}
		out = append(out, u)
	}
	return out
}

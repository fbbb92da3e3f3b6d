package mention

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"

	"chat-dojo/domain"
	"chat-dojo/errors"
)

// AutomatonExtractor scans content in a single pass with an
// Aho-Corasick automaton built over normalized handles. Content is
// normalized the same way, so disguised mentions ("@B.o.b", "@b0b")
// still resolve, and a large user directory costs one scan per
// message instead of one per handle.
type AutomatonExtractor struct {
	matcher  *goahocorasick.Machine
	byHandle map[string][]domain.User
}

type textMapping struct {
	normalized []rune
	origIdx    []int
}

// NewAutomatonExtractor builds the automaton once, over the full user
// directory. Extract then intersects matches with the per-call
// candidate list.
func NewAutomatonExtractor(directory []domain.User) (AutomatonExtractor, error) {
	if len(directory) == 0 {
		return AutomatonExtractor{}, errors.ErrEmptyHandles
	}

	byHandle := make(map[string][]domain.User, len(directory))
	for _, u := range directory {
		key := string(normalizeRunes([]rune(u.Handle)))
		byHandle[key] = append(byHandle[key], u)
	}

	patterns := make([][]rune, 0, len(byHandle))
	for key := range byHandle {
		patterns = append(patterns, []rune(key))
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return AutomatonExtractor{}, err
	}
	return AutomatonExtractor{matcher: m, byHandle: byHandle}, nil
}

func (e AutomatonExtractor) Extract(content string, candidates []domain.User) []domain.User {
	mapping := normalize(content)
	if len(mapping.normalized) == 0 {
		return nil
	}

	allowed := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		allowed[c.ID.String()] = struct{}{}
	}

	origRunes := []rune(content)
	spans := e.matcher.MultiPatternSearch(mapping.normalized, false)

	var mentioned []domain.User
	for _, span := range spans {
		normStart := span.Pos
		normEnd := normStart + len(span.Word)
		if normStart < 0 || normEnd > len(mapping.origIdx) {
			continue
		}

		// A match only counts as a mention when the original text has
		// the sigil right before the matched handle.
		origStart := mapping.origIdx[normStart]
		if origStart == 0 || origRunes[origStart-1] != '@' {
			continue
		}

		for _, u := range e.byHandle[string(span.Word)] {
			if _, ok := allowed[u.ID.String()]; ok {
				mentioned = append(mentioned, u)
			}
		}
	}
	return dedupe(mentioned)
}

// normalize transforms the content into a searchable form and tracks
// original rune positions so matches can be anchored back to the
// sigil.
func normalize(input string) textMapping {
	origRunes := []rune(input)
	norm := make([]rune, 0, len(origRunes))
	origIdx := make([]int, 0, len(origRunes))

	for i, r := range origRunes {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		norm = append(norm, unicode.ToLower(clean))
		origIdx = append(origIdx, i)
	}
	return textMapping{normalized: norm, origIdx: origIdx}
}

func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		out = append(out, unicode.ToLower(clean))
	}
	return out
}

// simplifyRune maps common leet speak characters back to their
// standard alphabet counterparts. Unlike a profanity filter, '@' is
// left alone here: it is the mention sigil, not a disguised 'a'.
func simplifyRune(r rune) rune {
	switch r {
	case '4':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}

package presence

import (
	"sort"
	"strings"
	"unicode"
)

// Modes is a normalized set of mode letters: no sign, no duplicates, sorted.
type Modes string

func ParseModes(s string) Modes {
	seen := make(map[rune]struct{}, len(s))
	letters := make([]rune, 0, len(s))
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		letters = append(letters, r)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return Modes(letters)
}

func (m Modes) Has(letter rune) bool {
	return strings.ContainsRune(string(m), letter)
}

func (m Modes) With(letters string) Modes {
	return ParseModes(string(m) + letters)
}

func (m Modes) Without(letters string) Modes {
	return ParseModes(strings.Map(func(r rune) rune {
		if strings.ContainsRune(letters, r) {
			return -1
		}
		return r
	}, string(m)))
}

package presence

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"presence-lab/errors"
)

// CaseMapping decides which characters compare equal when nicknames and
// channel names are folded. RFC1459 treats []\~ as the upper case of {}|^.
type CaseMapping int

const (
	RFC1459 CaseMapping = iota
	ASCII
)

func ParseCaseMapping(s string) (CaseMapping, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rfc1459":
		return RFC1459, nil
	case "ascii":
		return ASCII, nil
	default:
		return RFC1459, fmt.Errorf("%w: %q", errors.ErrInvalidCaseMapping, s)
	}
}

func (c CaseMapping) String() string {
	if c == ASCII {
		return "ascii"
	}
	return "rfc1459"
}

// Fold returns the key under which s is stored and compared.
func (c CaseMapping) Fold(s string) string {
	return strings.Map(c.foldRune, s)
}

func (c CaseMapping) Equal(a, b string) bool {
	return c.Fold(a) == c.Fold(b)
}

func (c CaseMapping) foldRune(r rune) rune {
	switch {
	case r >= 'A' && r <= 'Z':
		return r + ('a' - 'A')
	case r >= utf8.RuneSelf:
		return unicode.ToLower(r)
	}
	if c == RFC1459 {
		switch r {
		case '[':
			return '{'
		case ']':
			return '}'
		case '\\':
			return '|'
		case '~':
			return '^'
		}
	}
	return r
}

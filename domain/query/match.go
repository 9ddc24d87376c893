package query

import (
	"strings"

	"presence-lab/domain/presence"

	"github.com/tidwall/match"
)

// Match reports whether the whole candidate matches pattern, where '*' stands
// for any run of characters and '?' for exactly one. Both sides are folded
// with the case mapping first, so the comparison ignores case. A backslash is
// an ordinary character.
func Match(candidate, pattern string, mapping presence.CaseMapping) bool {
	return match.Match(mapping.Fold(candidate), escaper.Replace(mapping.Fold(pattern)))
}

var escaper = strings.NewReplacer(`\`, `\\`)

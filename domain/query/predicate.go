package query

import (
	"presence-lab/domain/presence"

	"github.com/samber/lo"
)

// Satisfies is true when candidate carries every required flag.
// An empty requirement accepts everything.
func Satisfies(candidate, required presence.Flags) bool {
	return lo.EveryBy(lo.Keys(required), candidate.Has)
}

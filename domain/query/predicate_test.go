package query

import (
	"testing"

	"presence-lab/domain/presence"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

var vocabulary = []presence.Flag{presence.Secret, presence.Private, presence.Invisible}

// subsets returns every subset of the flag vocabulary.
func subsets() []presence.Flags {
	var all []presence.Flags
	for mask := 0; mask < 1<<len(vocabulary); mask++ {
		set := presence.NewFlags()
		for i, f := range vocabulary {
			if mask&(1<<i) != 0 {
				set[f] = struct{}{}
			}
		}
		all = append(all, set)
	}
	return all
}

func TestSatisfies_Empty_Requirement_Accepts_Everything(t *testing.T) {
	req := require.New(t)
	for _, candidate := range subsets() {
		req.True(Satisfies(candidate, nil))
		req.True(Satisfies(candidate, presence.NewFlags()))
	}
}

// A candidate missing a single required flag must be excluded, the old
// listing loop let it through.
func TestSatisfies_Requires_All_Flags(t *testing.T) {
	req := require.New(t)
	for _, candidate := range subsets() {
		for _, required := range subsets() {
			if len(required) < 2 {
				continue
			}
			expected := lo.EveryBy(lo.Keys(required), func(f presence.Flag) bool {
				_, ok := candidate[f]
				return ok
			})
			req.Equal(expected, Satisfies(candidate, required), "candidate=%v required=%v", candidate, required)
		}
	}
}

func TestSatisfies_Secret_Only_Channel_Fails_Secret_And_Private(t *testing.T) {
	req := require.New(t)
	secretOnly := presence.NewFlags(presence.Secret)
	req.False(Satisfies(secretOnly, presence.NewFlags(presence.Secret, presence.Private)))
	req.True(Satisfies(secretOnly, presence.NewFlags(presence.Secret)))
	req.True(Satisfies(presence.NewFlags(presence.Secret, presence.Private), presence.NewFlags(presence.Secret, presence.Private)))
}

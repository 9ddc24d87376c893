package presence

import "strings"

// Flag is a named boolean attribute usable as a listing filter.
type Flag string

const (
	Secret    Flag = "SECRET"
	Private   Flag = "PRIVATE"
	Invisible Flag = "INVISIBLE"
)

// ParseFlag recognizes a flag keyword regardless of case.
func ParseFlag(keyword string) (Flag, bool) {
	switch f := Flag(strings.ToUpper(strings.TrimSpace(keyword))); f {
	case Secret, Private, Invisible:
		return f, true
	default:
		return "", false
	}
}

type Flags map[Flag]struct{}

func NewFlags(flags ...Flag) Flags {
	set := make(Flags, len(flags))
	for _, f := range flags {
		set[f] = struct{}{}
	}
	return set
}

func (f Flags) Has(flag Flag) bool {
	_, ok := f[flag]
	return ok
}

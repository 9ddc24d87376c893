package presence

import (
	"strconv"
	"strings"
)

// Channel is an active channel. Users is filled in by the registry that hands
// the value out and is not part of the channel identity.
type Channel struct {
	Name  string
	Topic string
	Modes Modes
	Key   string
	Limit int
	Users int
}

func IsChannelName(name string) bool {
	return len(name) > 1 && (name[0] == '#' || name[0] == '&')
}

func (c Channel) Flags() Flags {
	flags := NewFlags()
	if c.Modes.Has('s') {
		flags[Secret] = struct{}{}
	}
	if c.Modes.Has('p') {
		flags[Private] = struct{}{}
	}
	return flags
}

// ModeString renders the mode letters followed by the key and limit
// parameters, e.g. "klnt hunter2 50".
func (c Channel) ModeString() string {
	var params []string
	for _, r := range string(c.Modes) {
		switch {
		case r == 'k' && c.Key != "":
			params = append(params, c.Key)
		case r == 'l' && c.Limit > 0:
			params = append(params, strconv.Itoa(c.Limit))
		}
	}
	if len(params) == 0 {
		return string(c.Modes)
	}
	return string(c.Modes) + " " + strings.Join(params, " ")
}

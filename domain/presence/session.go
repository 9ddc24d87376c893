// Package presence contains the live entities of the network: sessions,
// channels and the attributes they can be filtered on.
// No registry, transport or rendering logic should be added here.
package presence

import "github.com/google/uuid"

// Session is one connected client.
type Session struct {
	ID    uuid.UUID
	Nick  string
	Ident string
	Host  string
	VHost string // cloaked host shown instead of Host when set
	Modes Modes
}

func (s Session) DisplayedHost() string {
	if s.VHost != "" {
		return s.VHost
	}
	return s.Host
}

// Address is the ident@host part of the mask.
func (s Session) Address() string {
	return s.Ident + "@" + s.DisplayedHost()
}

// Mask is the nick!ident@host form patterns are matched against.
func (s Session) Mask() string {
	return s.Nick + "!" + s.Address()
}

func (s Session) Flags() Flags {
	flags := NewFlags()
	if s.Modes.Has('i') {
		flags[Invisible] = struct{}{}
	}
	return flags
}

//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"presence-lab/domain/presence"
)

// IDirectory is the read-only view of live sessions and channels a listing
// runs against. Lookups fold case, enumerations keep insertion order and
// relation walks keep join order.
type IDirectory interface {
	FindSession(nick string) (presence.Session, bool)
	FindChannel(name string) (presence.Channel, bool)
	Sessions() []presence.Session
	Channels() []presence.Channel
	ChannelsOf(session presence.Session) []presence.Channel
	MembersOf(channel presence.Channel) []presence.Session
}

// IRegistry owns the entities and their memberships.
// View holds the registry still for the duration of fn.
type IRegistry interface {
	View(fn func(dir IDirectory))
	Connect(session presence.Session) (presence.Session, error)
	Quit(nick string) error
	Open(channel presence.Channel) error
	Join(nick, channel string) error
	Part(nick, channel string) error
	SetTopic(channel, topic string) error
	SetChannelModes(channel string, modes presence.Modes) error
	SetUserModes(nick string, modes presence.Modes) error
}

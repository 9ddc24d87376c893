package runtime

import (
	"fmt"
	"log/slog"
	"sync"

	"presence-lab/contract"
	"presence-lab/domain/presence"
	"presence-lab/errors"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Registry owns the live sessions, channels and their memberships.
// Keys are folded with the configured case mapping, enumeration follows
// insertion order.
type Registry struct {
	mu       sync.RWMutex
	log      *slog.Logger
	mapping  presence.CaseMapping
	sessions map[string]presence.Session // folded nick -> session
	nicks    []string                    // folded nicks, connect order
	nickByID map[uuid.UUID]string
	channels map[string]presence.Channel // folded name -> channel
	names    []string                    // folded names, creation order
	members  membershipIndex
}

func NewRegistry(log *slog.Logger, mapping presence.CaseMapping) *Registry {
	return &Registry{
		log:      log,
		mapping:  mapping,
		sessions: make(map[string]presence.Session),
		nickByID: make(map[uuid.UUID]string),
		channels: make(map[string]presence.Channel),
		members:  newMembershipIndex(),
	}
}

// View runs fn with a directory over the registry. Mutations wait until fn
// returns, so a listing sees one consistent state.
func (r *Registry) View(fn func(dir contract.IDirectory)) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn(directory{r: r})
}

// Connect registers a session. A zero ID is replaced by a fresh one, a given
// ID must not belong to another session.
func (r *Registry) Connect(session presence.Session) (presence.Session, error) {
	if session.Nick == "" || presence.IsChannelName(session.Nick) {
		return presence.Session{}, fmt.Errorf("%w: %q", errors.ErrInvalidNick, session.Nick)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	key := r.mapping.Fold(session.Nick)
	if _, ok := r.sessions[key]; ok {
		return presence.Session{}, fmt.Errorf("%w: %s", errors.ErrNickInUse, session.Nick)
	}
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	} else if _, ok := r.nickByID[session.ID]; ok {
		return presence.Session{}, fmt.Errorf("%w: %s", errors.ErrSessionExists, session.ID.String())
	}
	r.sessions[key] = session
	r.nicks = append(r.nicks, key)
	r.nickByID[session.ID] = key
	r.log.Debug("Session connected", "nick", session.Nick, "id", session.ID.String())
	return session, nil
}

// Quit removes a session and its memberships. Channels left without members
// are destroyed.
func (r *Registry) Quit(nick string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := r.mapping.Fold(nick)
	session, ok := r.sessions[key]
	if !ok {
		return fmt.Errorf("%w: %s", errors.ErrUnknownSession, nick)
	}
	for _, channel := range r.members.channelsOf(session.ID) {
		r.leave(session.ID, channel)
	}
	delete(r.sessions, key)
	delete(r.nickByID, session.ID)
	r.nicks = lo.Without(r.nicks, key)
	r.log.Debug("Session quit", "nick", session.Nick)
	return nil
}

// Open creates an empty channel.
func (r *Registry) Open(channel presence.Channel) error {
	if !presence.IsChannelName(channel.Name) {
		return fmt.Errorf("%w: %q", errors.ErrInvalidChannelName, channel.Name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	key := r.mapping.Fold(channel.Name)
	if _, ok := r.channels[key]; ok {
		return fmt.Errorf("%w: %s", errors.ErrChannelExists, channel.Name)
	}
	r.create(key, channel)
	return nil
}

// Join adds the session to the channel, creating the channel when it does not
// exist yet. Joining a channel twice changes nothing.
func (r *Registry) Join(nick, channel string) error {
	if !presence.IsChannelName(channel) {
		return fmt.Errorf("%w: %q", errors.ErrInvalidChannelName, channel)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[r.mapping.Fold(nick)]
	if !ok {
		return fmt.Errorf("%w: %s", errors.ErrUnknownSession, nick)
	}
	key := r.mapping.Fold(channel)
	if _, ok := r.channels[key]; !ok {
		r.create(key, presence.Channel{Name: channel})
	}
	if r.members.add(session.ID, key) {
		r.log.Debug("Session joined", "nick", session.Nick, "channel", r.channels[key].Name)
	}
	return nil
}

// Part removes the session from the channel. The last member leaving destroys
// the channel.
func (r *Registry) Part(nick, channel string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[r.mapping.Fold(nick)]
	if !ok {
		return fmt.Errorf("%w: %s", errors.ErrUnknownSession, nick)
	}
	key := r.mapping.Fold(channel)
	if _, ok := r.channels[key]; !ok {
		return fmt.Errorf("%w: %s", errors.ErrUnknownChannel, channel)
	}
	if !lo.Contains(r.members.channelsOf(session.ID), key) {
		return fmt.Errorf("%w: %s on %s", errors.ErrNotOnChannel, nick, channel)
	}
	r.leave(session.ID, key)
	return nil
}

func (r *Registry) SetTopic(channel, topic string) error {
	return r.updateChannel(channel, func(c *presence.Channel) { c.Topic = topic })
}

func (r *Registry) SetChannelModes(channel string, modes presence.Modes) error {
	return r.updateChannel(channel, func(c *presence.Channel) { c.Modes = modes })
}

func (r *Registry) SetUserModes(nick string, modes presence.Modes) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := r.mapping.Fold(nick)
	session, ok := r.sessions[key]
	if !ok {
		return fmt.Errorf("%w: %s", errors.ErrUnknownSession, nick)
	}
	session.Modes = modes
	r.sessions[key] = session
	return nil
}

func (r *Registry) updateChannel(channel string, fn func(c *presence.Channel)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := r.mapping.Fold(channel)
	c, ok := r.channels[key]
	if !ok {
		return fmt.Errorf("%w: %s", errors.ErrUnknownChannel, channel)
	}
	fn(&c)
	r.channels[key] = c
	return nil
}

// create and leave expect the write lock to be held.
func (r *Registry) create(key string, channel presence.Channel) {
	channel.Users = 0
	r.channels[key] = channel
	r.names = append(r.names, key)
	r.log.Debug("Channel created", "channel", channel.Name)
}

func (r *Registry) leave(session uuid.UUID, key string) {
	if r.members.remove(session, key) > 0 {
		return
	}
	r.log.Debug("Channel destroyed", "channel", r.channels[key].Name)
	delete(r.channels, key)
	r.names = lo.Without(r.names, key)
}

// directory reads the registry without locking, View holds the read lock.
type directory struct {
	r *Registry
}

func (d directory) FindSession(nick string) (presence.Session, bool) {
	session, ok := d.r.sessions[d.r.mapping.Fold(nick)]
	return session, ok
}

func (d directory) FindChannel(name string) (presence.Channel, bool) {
	return d.channel(d.r.mapping.Fold(name))
}

func (d directory) Sessions() []presence.Session {
	return lo.Map(d.r.nicks, func(key string, _ int) presence.Session {
		return d.r.sessions[key]
	})
}

func (d directory) Channels() []presence.Channel {
	return lo.FilterMap(d.r.names, func(key string, _ int) (presence.Channel, bool) {
		return d.channel(key)
	})
}

func (d directory) ChannelsOf(session presence.Session) []presence.Channel {
	return lo.FilterMap(d.r.members.channelsOf(session.ID), func(key string, _ int) (presence.Channel, bool) {
		return d.channel(key)
	})
}

func (d directory) MembersOf(channel presence.Channel) []presence.Session {
	return lo.FilterMap(d.r.members.membersOf(d.r.mapping.Fold(channel.Name)), func(id uuid.UUID, _ int) (presence.Session, bool) {
		session, ok := d.r.sessions[d.r.nickByID[id]]
		return session, ok
	})
}

func (d directory) channel(key string) (presence.Channel, bool) {
	channel, ok := d.r.channels[key]
	if !ok {
		return presence.Channel{}, false
	}
	channel.Users = d.r.members.count(key)
	return channel, true
}

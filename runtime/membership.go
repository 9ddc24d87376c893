package runtime

import (
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// membershipIndex is the single source of truth for who is on which channel.
// Both directions are updated together so that a session is listed on a
// channel iff the channel is listed on the session. Channel keys are folded
// names, order is join order.
type membershipIndex struct {
	byChannel map[string][]uuid.UUID
	bySession map[uuid.UUID][]string
}

func newMembershipIndex() membershipIndex {
	return membershipIndex{
		byChannel: make(map[string][]uuid.UUID),
		bySession: make(map[uuid.UUID][]string),
	}
}

// add returns false when the session already is a member.
func (m membershipIndex) add(session uuid.UUID, channel string) bool {
	if lo.Contains(m.bySession[session], channel) {
		return false
	}
	m.bySession[session] = append(m.bySession[session], channel)
	m.byChannel[channel] = append(m.byChannel[channel], session)
	return true
}

// remove returns the number of members left on the channel.
func (m membershipIndex) remove(session uuid.UUID, channel string) int {
	if left := lo.Without(m.bySession[session], channel); len(left) > 0 {
		m.bySession[session] = left
	} else {
		delete(m.bySession, session)
	}

	members := lo.Without(m.byChannel[channel], session)
	if len(members) == 0 {
		delete(m.byChannel, channel)
		return 0
	}
	m.byChannel[channel] = members
	return len(members)
}

func (m membershipIndex) channelsOf(session uuid.UUID) []string {
	return m.bySession[session]
}

func (m membershipIndex) membersOf(channel string) []uuid.UUID {
	return m.byChannel[channel]
}

func (m membershipIndex) count(channel string) int {
	return len(m.byChannel[channel])
}

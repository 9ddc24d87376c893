package query

import (
	"log/slog"

	"presence-lab/contract"
	"presence-lab/domain/presence"

	"github.com/samber/lo"
)

var (
	channelColumns = []string{"Name", "Users", "Modes", "Topic"}
	sessionColumns = []string{"Nick", "Mask"}
)

type Engine struct {
	log     *slog.Logger
	mapping presence.CaseMapping
}

func NewEngine(log *slog.Logger, mapping presence.CaseMapping) *Engine {
	return &Engine{log: log, mapping: mapping}
}

// selection is the outcome of mode selection. In traversal mode exactly one
// of session or channel is the anchor, matching the opposite domain.
type selection struct {
	mode    Mode
	session presence.Session
	channel presence.Channel
}

// Run executes q against dir and always returns a header and footer.
// The directory must not change while Run is in progress.
func (e *Engine) Run(dir contract.IDirectory, q Query) Result {
	sel := e.selectMode(dir, q)

	var result Result
	switch q.Domain {
	case Channels:
		result = e.listChannels(dir, q, sel)
	default:
		result = e.listSessions(dir, q, sel)
	}
	result.Domain = q.Domain
	result.Mode = sel.mode

	e.log.Debug("Listing done",
		"domain", q.Domain.String(),
		"mode", sel.mode.String(),
		"pattern", q.Pattern,
		"rows", len(result.Rows))
	return result
}

// selectMode enters traversal mode only when the pattern is the exact key of
// an entity in the domain opposite to the one being listed.
func (e *Engine) selectMode(dir contract.IDirectory, q Query) selection {
	if q.Pattern == "" {
		return selection{mode: ScanMode}
	}
	switch q.Domain {
	case Channels:
		if session, ok := dir.FindSession(q.Pattern); ok {
			return selection{mode: TraversalMode, session: session}
		}
	case Sessions:
		if channel, ok := dir.FindChannel(q.Pattern); ok {
			return selection{mode: TraversalMode, channel: channel}
		}
	}
	return selection{mode: ScanMode}
}

func (e *Engine) listChannels(dir contract.IDirectory, q Query, sel selection) Result {
	header := Header{Title: "Channel list:", Columns: channelColumns}
	var source []presence.Channel
	if sel.mode == TraversalMode {
		header.Subject, header.Title = sel.session.Nick, "channel list:"
		source = dir.ChannelsOf(sel.session)
	} else {
		source = dir.Channels()
	}

	kept := keep(e, sel.mode, source, q, func(c presence.Channel) string { return c.Name })
	return Result{
		Header: header,
		Rows: lo.Map(kept, func(c presence.Channel, _ int) Row {
			return ChannelRow{Name: c.Name, Users: c.Users, Modes: c.ModeString(), Topic: c.Topic}
		}),
		Footer: "End of channel list.",
	}
}

func (e *Engine) listSessions(dir contract.IDirectory, q Query, sel selection) Result {
	header := Header{Title: "Users list:", Columns: sessionColumns}
	var source []presence.Session
	if sel.mode == TraversalMode {
		header.Subject, header.Title = sel.channel.Name, "users list:"
		source = dir.MembersOf(sel.channel)
	} else {
		source = dir.Sessions()
	}

	kept := keep(e, sel.mode, source, q, presence.Session.Mask)
	return Result{
		Header: header,
		Rows: lo.Map(kept, func(s presence.Session, _ int) Row {
			return SessionRow{Nick: s.Nick, Mask: s.Address()}
		}),
		Footer: "End of users list.",
	}
}

type flagged interface {
	Flags() presence.Flags
}

// keep applies the pattern (scan mode only) and the flag filter, preserving
// the order of source.
func keep[T flagged](e *Engine, mode Mode, source []T, q Query, canonical func(T) string) []T {
	return lo.Filter(source, func(item T, _ int) bool {
		if mode == ScanMode && q.Pattern != "" && !Match(canonical(item), q.Pattern, e.mapping) {
			return false
		}
		return Satisfies(item.Flags(), q.Filter)
	})
}

// Package query lists live sessions and channels for oper commands.
// A listing either scans a whole registry, filtering by wildcard pattern and
// flags, or walks the memberships of the session or channel the pattern names.
package query

import (
	"strconv"

	"presence-lab/domain/presence"
)

// Domain is the kind of entity a listing produces rows for.
type Domain int

const (
	Sessions Domain = iota
	Channels
)

func (d Domain) String() string {
	if d == Channels {
		return "channels"
	}
	return "sessions"
}

type Mode int

const (
	// ScanMode enumerates the whole registry of the listed domain.
	ScanMode Mode = iota
	// TraversalMode lists the entities related to the one the pattern names.
	TraversalMode
)

func (m Mode) String() string {
	if m == TraversalMode {
		return "traversal"
	}
	return "scan"
}

type Query struct {
	Domain  Domain
	Pattern string
	Filter  presence.Flags
}

// Header introduces a listing. Subject is the key of the traversed entity
// and stays empty for scans.
type Header struct {
	Subject string
	Title   string
	Columns []string
}

func (h Header) String() string {
	if h.Subject == "" {
		return h.Title
	}
	return h.Subject + " " + h.Title
}

type Row interface {
	Columns() []string
}

type ChannelRow struct {
	Name  string
	Users int
	Modes string
	Topic string
}

func (r ChannelRow) Columns() []string {
	return []string{r.Name, strconv.Itoa(r.Users), "+" + r.Modes, r.Topic}
}

type SessionRow struct {
	Nick string
	Mask string // ident@host
}

func (r SessionRow) Columns() []string {
	return []string{r.Nick, r.Mask}
}

// Result is a complete listing. Header and Footer are always set; no rows
// means nothing matched.
type Result struct {
	Domain Domain
	Mode   Mode
	Header Header
	Rows   []Row
	Footer string
}

package query

import (
	"log/slog"
	"testing"

	"presence-lab/domain/presence"
	"presence-lab/mocks"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// staticDirectory is a fixed snapshot: members lists nicks per channel in
// join order, memberships of a session follow channel order.
type staticDirectory struct {
	sessions []presence.Session
	channels []presence.Channel
	members  map[string][]string
}

func (d staticDirectory) FindSession(nick string) (presence.Session, bool) {
	return lo.Find(d.sessions, func(s presence.Session) bool { return presence.RFC1459.Equal(s.Nick, nick) })
}

func (d staticDirectory) FindChannel(name string) (presence.Channel, bool) {
	return lo.Find(d.Channels(), func(c presence.Channel) bool { return presence.RFC1459.Equal(c.Name, name) })
}

func (d staticDirectory) Sessions() []presence.Session {
	return d.sessions
}

func (d staticDirectory) Channels() []presence.Channel {
	return lo.Map(d.channels, func(c presence.Channel, _ int) presence.Channel {
		c.Users = len(d.members[c.Name])
		return c
	})
}

func (d staticDirectory) ChannelsOf(session presence.Session) []presence.Channel {
	return lo.Filter(d.Channels(), func(c presence.Channel, _ int) bool {
		return lo.Contains(d.members[c.Name], session.Nick)
	})
}

func (d staticDirectory) MembersOf(channel presence.Channel) []presence.Session {
	return lo.FilterMap(d.members[channel.Name], func(nick string, _ int) (presence.Session, bool) {
		return d.FindSession(nick)
	})
}

func newSession(nick, ident, host, modes string) presence.Session {
	return presence.Session{ID: uuid.New(), Nick: nick, Ident: ident, Host: host, Modes: presence.ParseModes(modes)}
}

// network: alice is on #a and #b, #a is secret, #c is secret and private.
func network() staticDirectory {
	return staticDirectory{
		sessions: []presence.Session{
			newSession("alice", "al", "home.example.org", ""),
			newSession("bob", "bobby", "10.0.0.2", "i"),
			newSession("carol", "c", "work.example.net", "iw"),
		},
		channels: []presence.Channel{
			{Name: "#a", Topic: "first", Modes: presence.ParseModes("nts")},
			{Name: "#b", Topic: "", Modes: presence.ParseModes("nt")},
			{Name: "#c", Topic: "hidden", Modes: presence.ParseModes("sp")},
		},
		members: map[string][]string{
			"#a": {"alice", "bob"},
			"#b": {"carol", "alice"},
			"#c": {"carol"},
		},
	}
}

func newEngine() *Engine {
	return NewEngine(logs.GetLoggerFromLevel(slog.LevelDebug), presence.RFC1459)
}

func rowKeys(rows []Row) []string {
	return lo.Map(rows, func(r Row, _ int) string { return r.Columns()[0] })
}

func TestEngine_Scan_Without_Pattern_Lists_Everything_In_Order(t *testing.T) {
	req := require.New(t)
	engine := newEngine()
	dir := network()

	channels := engine.Run(dir, Query{Domain: Channels})
	req.Equal(ScanMode, channels.Mode)
	req.Equal([]string{"#a", "#b", "#c"}, rowKeys(channels.Rows))

	sessions := engine.Run(dir, Query{Domain: Sessions})
	req.Equal(ScanMode, sessions.Mode)
	req.Equal([]string{"alice", "bob", "carol"}, rowKeys(sessions.Rows))
}

func TestEngine_Session_Name_Switches_To_Traversal(t *testing.T) {
	req := require.New(t)
	engine := newEngine()
	dir := network()

	// When listing channels with the nick of a session
	result := engine.Run(dir, Query{Domain: Channels, Pattern: "alice"})

	// Then only the channels alice is on are listed
	req.Equal(TraversalMode, result.Mode)
	req.Equal([]string{"#a", "#b"}, rowKeys(result.Rows))
	req.Equal("alice", result.Header.Subject)
	req.Equal("alice channel list:", result.Header.String())

	// And the global flag filter alone selects the secret channels
	secret := engine.Run(dir, Query{Domain: Channels, Filter: presence.NewFlags(presence.Secret)})
	req.Equal(ScanMode, secret.Mode)
	req.Equal([]string{"#a", "#c"}, rowKeys(secret.Rows))
}

func TestEngine_Traversal_Key_Is_Case_Insensitive_And_Not_A_Pattern(t *testing.T) {
	req := require.New(t)
	engine := newEngine()

	result := engine.Run(network(), Query{Domain: Channels, Pattern: "ALICE"})

	req.Equal(TraversalMode, result.Mode)
	// The subject is the session's own nick, not the typed key
	req.Equal("alice", result.Header.Subject)
	// "ALICE" as a pattern would match no channel name, the rows come from the relation
	req.Equal([]string{"#a", "#b"}, rowKeys(result.Rows))
}

func TestEngine_Traversal_Applies_Flag_Filter(t *testing.T) {
	req := require.New(t)
	engine := newEngine()

	result := engine.Run(network(), Query{Domain: Channels, Pattern: "alice", Filter: presence.NewFlags(presence.Secret)})

	req.Equal(TraversalMode, result.Mode)
	req.Equal([]string{"#a"}, rowKeys(result.Rows))
}

func TestEngine_Channel_Rows(t *testing.T) {
	req := require.New(t)
	engine := newEngine()

	result := engine.Run(network(), Query{Domain: Channels, Pattern: "#a"})

	req.Equal(ScanMode, result.Mode)
	req.Equal([]Row{ChannelRow{Name: "#a", Users: 2, Modes: "nst", Topic: "first"}}, result.Rows)
	req.Equal([]string{"#a", "2", "+nst", "first"}, result.Rows[0].Columns())
	req.Equal("Channel list:", result.Header.String())
	req.Equal([]string{"Name", "Users", "Modes", "Topic"}, result.Header.Columns)
	req.Equal("End of channel list.", result.Footer)
}

func TestEngine_Channel_Name_Lists_Members(t *testing.T) {
	req := require.New(t)
	engine := newEngine()

	result := engine.Run(network(), Query{Domain: Sessions, Pattern: "#B"})

	req.Equal(TraversalMode, result.Mode)
	req.Equal("#b users list:", result.Header.String())
	req.Equal([]Row{
		SessionRow{Nick: "carol", Mask: "c@work.example.net"},
		SessionRow{Nick: "alice", Mask: "al@home.example.org"},
	}, result.Rows)
	req.Equal("End of users list.", result.Footer)
}

func TestEngine_Session_Scan_Matches_Full_Mask(t *testing.T) {
	req := require.New(t)
	engine := newEngine()
	dir := network()

	req.Equal([]string{"alice", "carol"}, rowKeys(engine.Run(dir, Query{Domain: Sessions, Pattern: "*!*@*.example.*"}).Rows))
	req.Equal([]string{"bob"}, rowKeys(engine.Run(dir, Query{Domain: Sessions, Pattern: "*!bobby@*"}).Rows))
	// A bare nick is not a mask
	req.Empty(engine.Run(dir, Query{Domain: Sessions, Pattern: "alice"}).Rows)
}

// The old user listing only looked at the mode filter when a pattern was given.
func TestEngine_Session_Scan_Applies_Filter_Without_Pattern(t *testing.T) {
	req := require.New(t)
	engine := newEngine()

	result := engine.Run(network(), Query{Domain: Sessions, Filter: presence.NewFlags(presence.Invisible)})

	req.Equal([]string{"bob", "carol"}, rowKeys(result.Rows))
}

func TestEngine_Pattern_And_Filter_Combine(t *testing.T) {
	req := require.New(t)
	engine := newEngine()

	result := engine.Run(network(), Query{Domain: Sessions, Pattern: "*example.net", Filter: presence.NewFlags(presence.Invisible)})

	req.Equal([]string{"carol"}, rowKeys(result.Rows))
}

func TestEngine_Multi_Flag_Filter_Is_A_Conjunction(t *testing.T) {
	req := require.New(t)
	engine := newEngine()

	result := engine.Run(network(), Query{Domain: Channels, Filter: presence.NewFlags(presence.Secret, presence.Private)})

	// #a is only secret and must be excluded
	req.Equal([]string{"#c"}, rowKeys(result.Rows))
}

func TestEngine_Unknown_Key_Is_An_Empty_Scan(t *testing.T) {
	req := require.New(t)
	engine := newEngine()

	result := engine.Run(network(), Query{Domain: Channels, Pattern: "nobody"})

	req.Equal(ScanMode, result.Mode)
	req.Empty(result.Rows)
	req.Equal("Channel list:", result.Header.Title)
	req.Equal("End of channel list.", result.Footer)
}

func TestEngine_Empty_Registry(t *testing.T) {
	req := require.New(t)
	engine := newEngine()

	result := engine.Run(staticDirectory{}, Query{Domain: Sessions})

	req.Equal("Users list:", result.Header.String())
	req.Equal([]string{"Nick", "Mask"}, result.Header.Columns)
	req.Empty(result.Rows)
	req.Equal("End of users list.", result.Footer)
}

func TestEngine_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	engine := newEngine()
	dir := network()
	queries := []Query{
		{Domain: Channels},
		{Domain: Channels, Pattern: "alice"},
		{Domain: Channels, Pattern: "#*", Filter: presence.NewFlags(presence.Secret)},
		{Domain: Sessions, Pattern: "#a"},
		{Domain: Sessions, Pattern: "*", Filter: presence.NewFlags(presence.Invisible)},
	}

	for _, q := range queries {
		req.Equal(engine.Run(dir, q), engine.Run(dir, q))
	}
}

func TestEngine_Scan_Does_Not_Walk_Relations(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := mocks.NewMockIDirectory(ctrl)
	dir.EXPECT().Channels().Return([]presence.Channel{{Name: "#go"}, {Name: "#rust"}}).Times(1)
	dir.EXPECT().FindSession(gomock.Any()).Times(0)
	dir.EXPECT().ChannelsOf(gomock.Any()).Times(0)

	result := newEngine().Run(dir, Query{Domain: Channels})

	req.Equal(ScanMode, result.Mode)
	req.Equal([]string{"#go", "#rust"}, rowKeys(result.Rows))
}

func TestEngine_Traversal_Does_Not_Scan_The_Registry(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	channel := presence.Channel{Name: "#go", Users: 1}
	member := newSession("gopher", "g", "go.dev", "")

	dir := mocks.NewMockIDirectory(ctrl)
	dir.EXPECT().FindChannel("#GO").Return(channel, true).Times(1)
	dir.EXPECT().MembersOf(channel).Return([]presence.Session{member}).Times(1)
	dir.EXPECT().Sessions().Times(0)

	result := newEngine().Run(dir, Query{Domain: Sessions, Pattern: "#GO"})

	req.Equal(TraversalMode, result.Mode)
	req.Equal([]Row{SessionRow{Nick: "gopher", Mask: "g@go.dev"}}, result.Rows)
}

func TestEngine_Falls_Back_To_Scan_When_Key_Is_Unknown(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := mocks.NewMockIDirectory(ctrl)
	dir.EXPECT().FindChannel("*!*@*").Return(presence.Channel{}, false).Times(1)
	dir.EXPECT().Sessions().Return([]presence.Session{newSession("dave", "d", "h", "")}).Times(1)
	dir.EXPECT().MembersOf(gomock.Any()).Times(0)

	result := newEngine().Run(dir, Query{Domain: Sessions, Pattern: "*!*@*"})

	req.Equal(ScanMode, result.Mode)
	req.Equal([]string{"dave"}, rowKeys(result.Rows))
}

package services

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"presence-lab/contract"
	"presence-lab/domain/presence"
	"presence-lab/domain/query"
	"presence-lab/errors"

	"github.com/samber/lo"
)

type IOperService interface {
	ChanList(args []string) query.Result
	UserList(args []string) query.Result
	Dispatch(name string, args []string) (query.Result, error)
	Help(name string) (Help, error)
	Commands() []Help
}

// Help describes a command for the help listing.
type Help struct {
	Name        string
	Syntax      string
	Description string
	Text        string
}

type command struct {
	help      Help
	maxParams int
	run       func(args []string) query.Result
}

// Keywords accepted by each listing. SECRET asks for channels that are both
// +s and +p.
var (
	channelKeywords = map[presence.Flag]presence.Flags{
		presence.Secret: presence.NewFlags(presence.Secret, presence.Private),
	}
	sessionKeywords = map[presence.Flag]presence.Flags{
		presence.Invisible: presence.NewFlags(presence.Invisible),
	}
)

type OperService struct {
	log      *slog.Logger
	registry contract.IRegistry
	engine   *query.Engine
	commands map[string]command
}

func NewOperService(log *slog.Logger, registry contract.IRegistry, engine *query.Engine) *OperService {
	s := &OperService{log: log, registry: registry, engine: engine}
	s.commands = map[string]command{
		"chanlist": {
			maxParams: 2,
			run:       s.ChanList,
			help: Help{
				Name:        "chanlist",
				Syntax:      "CHANLIST [{pattern | nick} [SECRET]]",
				Description: "Lists all active channels",
				Text: "Lists every channel currently in use on the network, registered or not.\n" +
					"With a pattern, only channels whose name matches it are listed. With the\n" +
					"nickname of a connected user, only the channels that user is on are listed.\n" +
					"SECRET further restricts the list to channels with both mode +s and +p.",
			},
		},
		"userlist": {
			maxParams: 2,
			run:       s.UserList,
			help: Help{
				Name:        "userlist",
				Syntax:      "USERLIST [{pattern | channel} [INVISIBLE]]",
				Description: "Lists all connected users",
				Text: "Lists every user currently connected to the network, registered or not.\n" +
					"A pattern is matched against the full nick!user@host mask. With the name\n" +
					"of an active channel, only the users on that channel are listed.\n" +
					"INVISIBLE restricts the list to users with mode +i.",
			},
		},
	}
	return s
}

// ChanList takes an optional pattern or nickname and an optional SECRET
// keyword.
func (s *OperService) ChanList(args []string) query.Result {
	return s.run(query.Query{
		Domain:  query.Channels,
		Pattern: arg(args, 0),
		Filter:  filterFor(arg(args, 1), channelKeywords),
	})
}

// UserList takes an optional mask pattern or channel name and an optional
// INVISIBLE keyword.
func (s *OperService) UserList(args []string) query.Result {
	return s.run(query.Query{
		Domain:  query.Sessions,
		Pattern: arg(args, 0),
		Filter:  filterFor(arg(args, 1), sessionKeywords),
	})
}

func (s *OperService) Dispatch(name string, args []string) (query.Result, error) {
	cmd, ok := s.commands[strings.ToLower(name)]
	if !ok {
		return query.Result{}, fmt.Errorf("%w: %s", errors.ErrUnknownCommand, name)
	}
	if len(args) > cmd.maxParams {
		return query.Result{}, fmt.Errorf("%w: %s takes at most %d, got %d",
			errors.ErrTooManyParams, cmd.help.Name, cmd.maxParams, len(args))
	}
	s.log.Debug("Dispatching oper command", "command", cmd.help.Name, "args", args)
	return cmd.run(args), nil
}

func (s *OperService) Help(name string) (Help, error) {
	cmd, ok := s.commands[strings.ToLower(name)]
	if !ok {
		return Help{}, fmt.Errorf("%w: %s", errors.ErrUnknownCommand, name)
	}
	return cmd.help, nil
}

// Commands returns the help of every command sorted by name.
func (s *OperService) Commands() []Help {
	helps := lo.MapToSlice(s.commands, func(_ string, c command) Help { return c.help })
	sort.Slice(helps, func(i, j int) bool { return helps[i].Name < helps[j].Name })
	return helps
}

func (s *OperService) run(q query.Query) query.Result {
	var result query.Result
	s.registry.View(func(dir contract.IDirectory) {
		result = s.engine.Run(dir, q)
	})
	return result
}

func arg(args []string, i int) string {
	if i < len(args) {
		return strings.TrimSpace(args[i])
	}
	return ""
}

// filterFor turns a keyword into a flag filter. A keyword the listing does
// not know means no filter.
func filterFor(keyword string, keywords map[presence.Flag]presence.Flags) presence.Flags {
	flag, ok := presence.ParseFlag(keyword)
	if !ok {
		return nil
	}
	return keywords[flag]
}

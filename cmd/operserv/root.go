package main

import (
	"fmt"
	"io"
	"log/slog"

	"presence-lab/domain/query"
	"presence-lab/internal"
	"presence-lab/render"
	"presence-lab/repositories"
	"presence-lab/runtime"
	"presence-lab/services"

	"github.com/mama165/sdk-go/logs"
	"github.com/spf13/cobra"
)

type app struct {
	out      io.Writer
	snapshot string
	noColour bool
	log      *slog.Logger
	options  render.Options
	service  services.IOperService
}

func newRootCommand(out io.Writer) *cobra.Command {
	a := &app{out: out}
	root := &cobra.Command{
		Use:           "operserv",
		Short:         "List live sessions and channels of the network",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}
	root.PersistentFlags().StringVar(&a.snapshot, "snapshot", "", "snapshot file to seed the registry (default $SNAPSHOT_PATH)")
	root.PersistentFlags().BoolVar(&a.noColour, "no-colour", false, "disable highlighting")

	root.AddCommand(a.listCommand("chanlist", "[pattern|nick] [SECRET]"))
	root.AddCommand(a.listCommand("userlist", "[pattern|channel] [INVISIBLE]"))
	root.SetHelpCommand(a.helpCommand())
	return root
}

// init wires config, logger, registry and service once per invocation.
func (a *app) init() error {
	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	a.log = logs.GetLoggerFromString(config.LogLevel)
	mapping, err := config.Mapping()
	if err != nil {
		return err
	}
	a.options = render.Options{Colours: config.Colours && !a.noColour}

	registry := runtime.NewRegistry(a.log, mapping)
	path := a.snapshot
	if path == "" {
		path = config.SnapshotPath
	}
	if path == "" {
		a.log.Warn("No snapshot given, listing an empty network")
	} else {
		snapshot, err := repositories.NewSnapshotRepository(path, a.log).Load()
		if err != nil {
			return err
		}
		if err = snapshot.Seed(registry); err != nil {
			return fmt.Errorf("seeding registry: %w", err)
		}
	}

	a.service = services.NewOperService(a.log, registry, query.NewEngine(a.log, mapping))
	return nil
}

func (a *app) listCommand(name, usage string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " " + usage,
		Short: "Oper " + name,
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.service.Dispatch(name, args)
			if err != nil {
				return err
			}
			return render.Write(a.out, result, a.options)
		},
	}
}

func (a *app) helpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "help [command]",
		Short: "Describe the oper commands",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, h := range a.service.Commands() {
					fmt.Fprintf(a.out, "    %-10s %s\n", h.Name, h.Description)
				}
				return nil
			}
			h, err := a.service.Help(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Syntax: %s\n \n%s\n", h.Syntax, h.Text)
			return nil
		},
	}
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-nativeview/internal/config"
	"github.com/goliatone/go-nativeview/pkg/event"
)

// cli carries the state shared by every command of one invocation.
type cli struct {
	configPath string
	cfg        config.Config
	logger     *slog.Logger
	dispatcher event.Dispatcher
	closer     func() error
}

func newCLI() *cli {
	return &cli{dispatcher: event.Noop{}, logger: slog.New(slog.DiscardHandler)}
}

func (c *cli) command() *cobra.Command {
	root := &cobra.Command{
		Use:           "nativeview",
		Short:         "Render server-driven native view markup",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ./"+config.FileName+")")

	root.AddCommand(newRenderCmd(c))
	root.AddCommand(newPreviewCmd(c))
	root.AddCommand(newModifiersCmd(c))
	root.AddCommand(newConfigCmd(c))
	return root
}

func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	logger, err := cfg.Logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	c.logger = logger

	if cfg.NATS.URL == "" {
		return nil
	}
	opts := []event.NATSOption{event.WithSubjectPrefix(cfg.NATS.SubjectPrefix)}
	if cfg.Sessions.ID != "" {
		opts = append(opts, event.WithSession(cfg.Sessions.ID))
	}
	d, err := event.NewNATSDispatcher(cfg.NATS.URL, opts...)
	if err != nil {
		return fmt.Errorf("connect nats: %w", err)
	}
	c.dispatcher = d
	c.closer = func() error {
		if err := d.Flush(); err != nil {
			c.logger.Warn("nats flush failed", "err", err)
		}
		return d.Close()
	}
	c.logger.Debug("nats dispatcher connected", "url", cfg.NATS.URL, "prefix", cfg.NATS.SubjectPrefix)
	return nil
}

func (c *cli) teardown() {
	if c.closer == nil {
		return
	}
	if err := c.closer(); err != nil {
		c.logger.Warn("close dispatcher", "err", err)
	}
	c.closer = nil
}

// execute runs cmd and releases the dispatcher even when the command fails.
func (c *cli) execute(ctx context.Context, cmd *cobra.Command) error {
	defer c.teardown()
	return cmd.ExecuteContext(ctx)
}

func main() {
	c := newCLI()
	if err := c.execute(context.Background(), c.command()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

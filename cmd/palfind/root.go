package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// exitUsage is returned for any command error: bad flags, unreadable input
// or invalid grids.
const exitUsage = 1

// app carries the resolved settings shared by every subcommand.
type app struct {
	cfg    Config
	logger *slog.Logger
	out    io.Writer

	configPath string
	output     string
	logLevel   string
}

// newRootCmd builds the command tree. Each call returns an independent tree,
// which keeps tests free of shared flag state.
func newRootCmd() *cobra.Command {
	a := &app{cfg: DefaultConfig()}

	root := &cobra.Command{
		Use:           "palfind",
		Short:         "Find every distinct palindrome in strings and grids, wrap-around included",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML file with flag defaults")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", a.cfg.Output, "output format: text, json or yaml")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", a.cfg.LogLevel, "log level: debug, info, warn or error")

	root.AddCommand(newStringCmd(a), newGridCmd(a), newBenchCmd(a))

	return root
}

// init loads the config file, lets explicit flags win over it and sets up
// the logger on the command's error stream.
func (a *app) init(cmd *cobra.Command) error {
	if a.configPath != "" {
		cfg, err := LoadConfig(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	flags := cmd.Flags()
	if flags.Changed("output") || a.configPath == "" {
		a.cfg.Output = a.output
	}
	if flags.Changed("log-level") || a.configPath == "" {
		a.cfg.LogLevel = a.logLevel
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	level, err := parseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.out = cmd.OutOrStdout()
	a.logger.Debug("configuration resolved",
		slog.String("config", a.configPath),
		slog.String("output", a.cfg.Output),
		slog.String("log_level", a.cfg.LogLevel))

	return nil
}

// parseLevel maps a level name onto slog.Level.
func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, ErrBadConfig)
	}

	return l, nil
}

// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command pulsesim runs pulse circuit simulations.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/db47h/pulsesim"
	"github.com/db47h/pulsesim/internal/config"
	"github.com/db47h/pulsesim/internal/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pulsesim",
		Short: "Pulse circuit simulator",
		Long: `pulsesim simulates circuits of broadcasters, flip-flops and conjunctions.

Circuits are read from the file given as argument, or from standard input.
Each line describes a module and its destinations:

	broadcaster -> a, b
	%a -> inv
	&inv -> b, output`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("config", "", "Configuration file (YAML)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: error, warn, info, debug or trace")

	rootCmd.AddCommand(
		newVersionCmd(),
		newCountCmd(),
		newPeriodCmd(),
		newSolveCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			return output(cmd, map[string]string{"version": version}, func(w io.Writer) {
				fmt.Fprintf(w, "pulsesim version %s\n", version)
			})
		},
	}
}

// env is the common setup of simulation commands.
type env struct {
	cfg *config.Config
	log *slog.Logger
	g   *pulsesim.Graph
}

func setup(cmd *cobra.Command, args []string) (*env, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Logging.Level = lvl
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var r io.Reader = cmd.InOrStdin()
	name := "<stdin>"
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, errors.Wrap(err, "open circuit")
		}
		defer f.Close()
		r, name = f, args[0]
	}
	g, err := pulsesim.ParseGraph(r)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	g.PulseLimit = cfg.PulseLimit

	log := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())
	log.Debug("circuit loaded", "file", name, "modules", g.Len())
	return &env{cfg: cfg, log: log, g: g}, nil
}

// applyFlags overrides configuration settings with flags explicitly set on
// the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	fs := cmd.Flags()
	if fs.Changed("presses") {
		cfg.Presses, _ = fs.GetInt("presses")
	}
	if fs.Changed("bound") {
		cfg.Bound, _ = fs.GetInt("bound")
	}
	if fs.Changed("target") {
		cfg.Target, _ = fs.GetString("target")
	}
	if fs.Changed("watch") {
		cfg.Watch, _ = fs.GetStringSlice("watch")
	}
}

func addCountFlags(cmd *cobra.Command) {
	cmd.Flags().Int("presses", 1000, "Number of button presses")
}

func addPeriodFlags(cmd *cobra.Command) {
	cmd.Flags().Int("bound", 100000, "Maximum number of presses for period analysis")
	cmd.Flags().String("target", "rx", "Output line expected to receive a low pulse")
	cmd.Flags().StringSlice("watch", nil, "Feeder modules to watch (default: derived from target)")
}

func output(cmd *cobra.Command, v interface{}, text func(w io.Writer)) error {
	w := cmd.OutOrStdout()
	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(w)
	return nil
}

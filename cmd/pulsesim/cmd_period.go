// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/db47h/pulsesim"
	"github.com/db47h/pulsesim/internal/config"
	"github.com/spf13/cobra"
)

type feederPeriod struct {
	Feeder string `json:"feeder"`
	Period int    `json:"period"`
}

type periodResult struct {
	Target  string         `json:"target,omitempty"`
	Feeders []feederPeriod `json:"feeders"`
	Presses int            `json:"presses"`
}

func (r periodResult) print(w io.Writer) {
	for _, f := range r.Feeders {
		fmt.Fprintf(w, "%s: %d\n", f.Feeder, f.Period)
	}
	if r.Target != "" {
		fmt.Fprintf(w, "%s low after %d presses\n", r.Target, r.Presses)
	} else {
		fmt.Fprintf(w, "combined: %d\n", r.Presses)
	}
}

func runPeriod(g *pulsesim.Graph, cfg *config.Config, log *slog.Logger) (periodResult, error) {
	watch, target := cfg.Watch, ""
	if len(watch) == 0 {
		var err error
		if watch, err = g.WatchSet(cfg.Target); err != nil {
			return periodResult{}, err
		}
		target = cfg.Target
	}
	log.Debug("watching feeders", "feeders", watch)

	a := pulsesim.Analyzer{Bound: cfg.Bound, Logger: log}
	ps, err := a.Run(g, watch)
	if err != nil {
		return periodResult{}, err
	}
	n, err := pulsesim.CombinePeriods(ps)
	if err != nil {
		return periodResult{}, err
	}
	r := periodResult{Target: target, Presses: n}
	for _, p := range ps {
		r.Feeders = append(r.Feeders, feederPeriod{Feeder: p.Feeder, Period: p.Every})
	}
	return r, nil
}

func newPeriodCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "period [file]",
		Short: "Find the first press sending a low pulse to the target",
		Long: `Find the first press sending a low pulse to the target line by measuring
the period of each feeder module and combining them.

The feeders are the inputs of the conjunction driving the target, or the
modules given with --watch.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, args)
			if err != nil {
				return err
			}
			r, err := runPeriod(e.g, e.cfg, e.log)
			if err != nil {
				return err
			}
			return output(cmd, r, r.print)
		},
	}
	addPeriodFlags(cmd)
	return cmd
}

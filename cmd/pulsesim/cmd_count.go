// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/db47h/pulsesim"
	"github.com/spf13/cobra"
)

type countResult struct {
	Presses int `json:"presses"`
	Low     int `json:"low"`
	High    int `json:"high"`
	Product int `json:"product"`
}

func (r countResult) print(w io.Writer) {
	fmt.Fprintf(w, "presses: %d\nlow: %d\nhigh: %d\nproduct: %d\n", r.Presses, r.Low, r.High, r.Product)
}

func runCount(g *pulsesim.Graph, presses int) (countResult, error) {
	low, high, err := pulsesim.RunPresses(g, presses)
	if err != nil {
		return countResult{}, err
	}
	return countResult{Presses: presses, Low: low, High: high, Product: low * high}, nil
}

func newCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count [file]",
		Short: "Count low and high pulses over a number of presses",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, args)
			if err != nil {
				return err
			}
			r, err := runCount(e.g, e.cfg.Presses)
			if err != nil {
				return err
			}
			e.log.Info("pulse count", "presses", r.Presses, "low", r.Low, "high", r.High)
			return output(cmd, r, r.print)
		},
	}
	addCountFlags(cmd)
	return cmd
}

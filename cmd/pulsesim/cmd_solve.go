// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/spf13/cobra"
)

type solveResult struct {
	Count  *countResult  `json:"count,omitempty"`
	Period *periodResult `json:"period,omitempty"`
	Errors []string      `json:"errors,omitempty"`
}

func (r solveResult) print(w io.Writer) {
	if r.Count != nil {
		r.Count.print(w)
	}
	if r.Period != nil {
		r.Period.print(w)
	}
	for _, e := range r.Errors {
		fmt.Fprintf(w, "error: %s\n", e)
	}
}

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Run the pulse count and the period analysis",
		Long: `Run the pulse count and the period analysis concurrently, each on its own
copy of the circuit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, args)
			if err != nil {
				return err
			}

			var (
				wg         sync.WaitGroup
				r          solveResult
				cErr, pErr error
			)
			cg, pg := e.g.Clone(), e.g.Clone()
			wg.Add(2)
			go func() {
				defer wg.Done()
				c, err := runCount(cg, e.cfg.Presses)
				if cErr = err; err == nil {
					r.Count = &c
				}
			}()
			go func() {
				defer wg.Done()
				p, err := runPeriod(pg, e.cfg, e.log)
				if pErr = err; err == nil {
					r.Period = &p
				}
			}()
			wg.Wait()

			for _, err := range []error{cErr, pErr} {
				if err != nil {
					e.log.Warn("solve", "error", err)
					r.Errors = append(r.Errors, err.Error())
				}
			}
			if err := output(cmd, r, r.print); err != nil {
				return err
			}
			if cErr != nil && pErr != nil {
				return cErr
			}
			return nil
		},
	}
	addCountFlags(cmd)
	addPeriodFlags(cmd)
	return cmd
}

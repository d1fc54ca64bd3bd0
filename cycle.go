// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import (
	"log/slog"

	"github.com/db47h/pulsesim/internal/logging"
	"github.com/pkg/errors"
)

// A Period is the press interval between consecutive high emissions of a
// feeder module.
//
type Period struct {
	Feeder string
	Every  int
	Hits   []int // presses where the feeder emitted a high pulse
}

// An Analyzer measures the period of feeder modules by pressing the button
// and watching for high pulses they send.
//
// It only supports circuits where each feeder emits high pulses on a single
// fixed period, starting at the press equal to that period (i.e. on presses p,
// 2p, 3p, ...). This is checked, not assumed: any other pattern results in an
// *InconsistentPeriodError.
//
type Analyzer struct {
	// Bound is the maximum number of presses.
	Bound int
	// Samples, if at least 2, stops the analysis as soon as each feeder has
	// emitted that many high pulses. Gaps past that point are not checked.
	// By default, all presses up to Bound are run and every gap is checked.
	Samples int
	// Logger, if not nil, receives debug information.
	Logger *slog.Logger
}

// FindPeriods returns the periods of the feeders in watch, in the same
// order. It presses the button of g bound times and checks that every gap
// between high emissions of a feeder is the same. g should be in its initial
// state (see Graph.Reset and Graph.Clone).
//
func FindPeriods(g *Graph, watch []string, bound int) ([]Period, error) {
	a := Analyzer{Bound: bound}
	return a.Run(g, watch)
}

// Run runs the analysis on g. See FindPeriods.
//
func (a *Analyzer) Run(g *Graph, watch []string) ([]Period, error) {
	if a.Bound <= 0 {
		return nil, errors.Errorf("invalid press bound %d", a.Bound)
	}
	if len(watch) == 0 {
		return nil, errors.New("no feeder to watch")
	}
	for i, f := range watch {
		if g.Get(f) == nil {
			return nil, errors.Errorf("unknown feeder module %s", f)
		}
		if contains(watch[:i], f) {
			return nil, errors.Errorf("feeder %s watched twice", f)
		}
	}
	samples := a.Samples
	if samples < 2 {
		samples = 0
	}
	log := a.Logger
	if log == nil {
		log = logging.Discard()
	}

	hits := make([][]int, len(watch))
	done := 0
	sim := NewSimulator(g, log)
	for (samples == 0 || done < len(watch)) && sim.Presses() < a.Bound {
		t, err := sim.Press()
		if err != nil {
			return nil, err
		}
		for i, f := range watch {
			if (samples > 0 && len(hits[i]) >= samples) || !t.EmitsHigh(f) {
				continue
			}
			hits[i] = append(hits[i], sim.Presses())
			log.Debug("feeder high", "feeder", f, "press", sim.Presses())
			if len(hits[i]) == samples {
				done++
			}
		}
	}

	ps := make([]Period, len(watch))
	for i, f := range watch {
		p, err := period(f, hits[i], a.Bound)
		if err != nil {
			return nil, err
		}
		log.Info("period found", "feeder", f, "period", p.Every)
		ps[i] = p
	}
	return ps, nil
}

func period(feeder string, hits []int, bound int) (Period, error) {
	if len(hits) < 2 {
		return Period{}, &CycleNotFoundError{Feeder: feeder, Bound: bound, Hits: hits}
	}
	gaps := make([]int, len(hits))
	prev := 0
	uniform := true
	for i, h := range hits {
		gaps[i] = h - prev
		prev = h
		if gaps[i] != gaps[0] {
			uniform = false
		}
	}
	if !uniform {
		return Period{}, &InconsistentPeriodError{Feeder: feeder, Gaps: gaps}
	}
	return Period{Feeder: feeder, Every: gaps[0], Hits: hits}, nil
}

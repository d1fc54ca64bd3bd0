// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import (
	"context"
	"log/slog"

	"github.com/db47h/pulsesim/internal/logging"
)

// Simulator drives repeated button presses on a graph and keeps track of the
// number of low and high pulses sent so far.
//
type Simulator struct {
	g       *Graph
	log     *slog.Logger
	presses int
	low     int
	high    int
}

// NewSimulator returns a new simulator for g. Presses are numbered from 1.
// If logger is nil, nothing is logged.
//
func NewSimulator(g *Graph, logger *slog.Logger) *Simulator {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Simulator{g: g, log: logger}
}

// Press presses the button once and returns the resulting trace.
//
func (s *Simulator) Press() (Trace, error) {
	t, err := s.g.Press(s.presses + 1)
	if err != nil {
		return t, err
	}
	s.presses++
	l, h := t.Count()
	s.low += l
	s.high += h
	s.log.Log(context.Background(), logging.LevelTrace, "press",
		"press", s.presses, "pulses", len(t), "low", l, "high", h)
	return t, nil
}

// Presses returns the number of completed presses.
func (s *Simulator) Presses() int { return s.presses }

// Count returns the total number of low and high pulses sent so far.
//
func (s *Simulator) Count() (low, high int) { return s.low, s.high }

// RunPresses presses the button n times on g and returns the total number of
// low and high pulses sent, the button pulses included.
//
func RunPresses(g *Graph, n int) (low, high int, err error) {
	s := NewSimulator(g, nil)
	for i := 0; i < n; i++ {
		if _, err = s.Press(); err != nil {
			return 0, 0, err
		}
	}
	low, high = s.Count()
	return low, high, nil
}

// FirstLow presses the button until target receives a low pulse and returns
// the number of presses it took. It gives up after bound presses with a
// *CycleNotFoundError.
//
// This is only practical for small circuits. See FindPeriods.
//
func FirstLow(g *Graph, target string, bound int) (int, error) {
	s := NewSimulator(g, nil)
	for s.Presses() < bound {
		t, err := s.Press()
		if err != nil {
			return 0, err
		}
		if t.Receives(target, Low) {
			return s.Presses(), nil
		}
	}
	return 0, &CycleNotFoundError{Feeder: target, Bound: bound}
}

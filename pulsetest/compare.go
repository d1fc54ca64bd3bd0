// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package pulsetest provides utility functions for testing circuits.
//
package pulsetest

import (
	"strings"
	"testing"

	"github.com/db47h/pulsesim"
)

// MustParse builds a graph from a circuit description or fails the test.
//
func MustParse(t testing.TB, desc string) *pulsesim.Graph {
	t.Helper()
	g, err := pulsesim.ParseGraph(strings.NewReader(desc))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	return g
}

// Analyze finds the first press sending a low pulse to target by period
// analysis of the feeders of target.
//
func Analyze(g *pulsesim.Graph, target string, bound int) (int, error) {
	watch, err := g.WatchSet(target)
	if err != nil {
		return 0, err
	}
	ps, err := pulsesim.FindPeriods(g, watch, bound)
	if err != nil {
		return 0, err
	}
	return pulsesim.CombinePeriods(ps)
}

// CompareFirstLow checks that period analysis and brute force simulation
// agree on the first press sending a low pulse to target. Each method runs on
// its own copy of the circuit. It returns the agreed press number.
//
func CompareFirstLow(t testing.TB, desc string, target string, bound int) int {
	t.Helper()

	g := MustParse(t, desc)

	want, err := pulsesim.FirstLow(g.Clone(), target, bound)
	if err != nil {
		t.Fatalf("brute force: %v", err)
	}
	got, err := Analyze(g.Clone(), target, bound)
	if err != nil {
		t.Fatalf("analysis: %v", err)
	}
	if got != want {
		t.Fatalf("analysis found press %d, brute force found press %d", got, want)
	}
	t.Logf("%d modules, %s low after %d presses", g.Len(), target, got)
	return got
}

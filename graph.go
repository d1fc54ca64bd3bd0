// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import (
	"github.com/pkg/errors"
)

// DefaultPulseLimit is the maximum number of pulses processed by a single
// press when Graph.PulseLimit is not set.
//
const DefaultPulseLimit = 1 << 22

// A ModuleSpec describes a module and its outgoing wires.
//
type ModuleSpec struct {
	Name    string
	Kind    Kind
	Outputs []string
}

// Graph is a circuit of named modules.
//
// A Graph is not safe for concurrent use. Use Clone to run independent
// simulations in parallel.
//
type Graph struct {
	// PulseLimit is the maximum number of pulses a single press may process
	// before failing with a *PulseLimitError. If <= 0, DefaultPulseLimit is
	// used.
	PulseLimit int

	modules map[string]*Module
	names   []string            // declaration order
	inputs  map[string][]string // reverse wiring, includes unmodeled sinks
}

// NewGraph builds a new circuit from the given module specifications.
//
// Conjunction inputs are set to every module listing the conjunction as a
// destination, in declaration order. There must be exactly one broadcast
// module named "broadcaster". Destinations that do not match any module are
// allowed: pulses sent to them are recorded but go nowhere.
//
func NewGraph(specs []ModuleSpec) (*Graph, error) {
	g := &Graph{
		modules: make(map[string]*Module, len(specs)),
		names:   make([]string, 0, len(specs)),
		inputs:  make(map[string][]string),
	}

	bc := 0
	for _, s := range specs {
		if s.Name == "" {
			return nil, errors.New("empty module name")
		}
		switch {
		case s.Name == Broadcaster:
			if bc++; bc > 1 {
				return nil, errors.WithStack(ErrDuplicateBroadcaster)
			}
			if s.Kind != Broadcast {
				return nil, errors.Wrap(ErrBroadcastKind, s.Kind.Prefix()+s.Name)
			}
		case s.Kind == Broadcast:
			return nil, errors.Wrap(ErrBroadcastKind, s.Name)
		case s.Kind != FlipFlop && s.Kind != Conjunction:
			return nil, errors.Errorf("%s: invalid module kind %v", s.Name, s.Kind)
		}
		if _, ok := g.modules[s.Name]; ok {
			return nil, errors.Wrap(ErrDuplicateModule, s.Name)
		}
		outs := make([]string, len(s.Outputs))
		copy(outs, s.Outputs)
		g.modules[s.Name] = &Module{name: s.Name, kind: s.Kind, outputs: outs}
		g.names = append(g.names, s.Name)
	}
	if bc == 0 {
		return nil, errors.WithStack(ErrMissingBroadcaster)
	}

	// reverse wiring. A module wired twice to the same destination counts
	// as a single input.
	for _, n := range g.names {
		m := g.modules[n]
		for _, d := range m.outputs {
			if !contains(g.inputs[d], n) {
				g.inputs[d] = append(g.inputs[d], n)
			}
		}
	}

	for _, n := range g.names {
		m := g.modules[n]
		if m.kind != Conjunction {
			continue
		}
		m.inputs = g.inputs[n]
		m.memory = make(map[string]Level, len(m.inputs))
		for _, i := range m.inputs {
			m.memory[i] = Low
		}
	}

	return g, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Get returns the named module or nil if there is no such module.
//
func (g *Graph) Get(name string) *Module {
	return g.modules[name]
}

// Len returns the number of modules in the graph.
func (g *Graph) Len() int { return len(g.names) }

// Names returns the module names in declaration order.
//
func (g *Graph) Names() []string {
	r := make([]string, len(g.names))
	copy(r, g.names)
	return r
}

// Inputs returns the names of the modules wired to name, in declaration
// order. name need not be a module of g.
//
func (g *Graph) Inputs(name string) []string {
	in := g.inputs[name]
	r := make([]string, len(in))
	copy(r, in)
	return r
}

// WatchSet returns the feeder modules to watch in order to find the first
// press sending a low pulse to target.
//
// If target is driven by a single conjunction, the feeders are the inputs of
// that conjunction. Otherwise they are the modules directly wired to target.
//
func (g *Graph) WatchSet(target string) ([]string, error) {
	in := g.inputs[target]
	switch len(in) {
	case 0:
		return nil, errors.Errorf("no module is wired to %s", target)
	case 1:
		if m := g.modules[in[0]]; m.kind == Conjunction {
			if len(m.inputs) == 0 {
				return nil, errors.Errorf("conjunction %s driving %s has no inputs", m.name, target)
			}
			return g.Inputs(m.name), nil
		}
	}
	return g.Inputs(target), nil
}

// Reset puts all modules back in their initial state: flip-flops off and
// conjunctions remembering low pulses for all their inputs.
//
func (g *Graph) Reset() {
	for _, m := range g.modules {
		m.reset()
	}
}

// Clone returns a deep copy of g, including the current module states.
//
func (g *Graph) Clone() *Graph {
	c := &Graph{
		PulseLimit: g.PulseLimit,
		modules:    make(map[string]*Module, len(g.modules)),
		names:      g.names,
		inputs:     g.inputs,
	}
	for n, m := range g.modules {
		c.modules[n] = m.clone()
	}
	return c
}

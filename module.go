// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import "strconv"

// Broadcaster is the name of the module receiving button presses.
//
const Broadcaster = "broadcaster"

// Button is the source name of the synthetic pulse sent on every press.
//
const Button = "button"

// Level is the level of a pulse.
//
type Level uint8

// Pulse levels.
//
const (
	Low Level = iota
	High
)

func (l Level) String() string {
	switch l {
	case Low:
		return "low"
	case High:
		return "high"
	}
	return "Level(" + strconv.Itoa(int(l)) + ")"
}

// Kind identifies the behavior of a module.
//
type Kind uint8

// Module kinds.
//
const (
	// Broadcast modules repeat the incoming pulse to all their outputs.
	Broadcast Kind = iota
	// FlipFlop modules ignore high pulses. A low pulse toggles them and they
	// send high when turned on, low when turned off.
	FlipFlop
	// Conjunction modules remember the last pulse level received from each of
	// their inputs. They send low if all remembered levels are high, high
	// otherwise.
	Conjunction
)

// Prefix returns the character used for this kind in circuit descriptions.
//
func (k Kind) Prefix() string {
	switch k {
	case FlipFlop:
		return "%"
	case Conjunction:
		return "&"
	}
	return ""
}

func (k Kind) String() string {
	switch k {
	case Broadcast:
		return "broadcast"
	case FlipFlop:
		return "flip-flop"
	case Conjunction:
		return "conjunction"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// A Module is a node in a Graph. Its state can only be changed by pressing the
// button of the graph it belongs to.
//
type Module struct {
	name    string
	kind    Kind
	outputs []string

	on     bool             // flip-flop state
	inputs []string         // conjunction inputs, declaration order
	memory map[string]Level // conjunction memory, keyed by input
}

// Name returns the module name.
func (m *Module) Name() string { return m.name }

// Kind returns the module kind.
func (m *Module) Kind() Kind { return m.kind }

// Outputs returns the destinations of the module in declaration order.
// The returned slice must not be modified.
//
func (m *Module) Outputs() []string { return m.outputs }

// On reports whether a flip-flop is on. It returns false for other kinds.
func (m *Module) On() bool { return m.kind == FlipFlop && m.on }

// Inputs returns the names of the modules feeding a conjunction, in
// declaration order. It returns nil for other kinds. The returned slice is a
// copy.
//
func (m *Module) Inputs() []string { return append([]string(nil), m.inputs...) }

// Memory returns the last level received by a conjunction from the given
// input. ok is false if m is not a conjunction or if input is not connected to
// it.
//
func (m *Module) Memory(input string) (l Level, ok bool) {
	if m.kind != Conjunction {
		return Low, false
	}
	l, ok = m.memory[input]
	return l, ok
}

// receive applies the transition rule of the module for a pulse of level l
// coming from src. It returns the level to send to all outputs, if any.
//
func (m *Module) receive(src string, l Level) (Level, bool) {
	switch m.kind {
	case Broadcast:
		return l, true
	case FlipFlop:
		if l == High {
			return Low, false
		}
		m.on = !m.on
		if m.on {
			return High, true
		}
		return Low, true
	case Conjunction:
		m.memory[src] = l
		for _, v := range m.memory {
			if v == Low {
				return High, true
			}
		}
		return Low, true
	}
	panic("unknown module kind " + m.kind.String())
}

func (m *Module) reset() {
	m.on = false
	for k := range m.memory {
		m.memory[k] = Low
	}
}

func (m *Module) clone() *Module {
	c := *m
	if m.memory != nil {
		c.memory = make(map[string]Level, len(m.memory))
		for k, v := range m.memory {
			c.memory[k] = v
		}
	}
	return &c
}

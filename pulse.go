// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import "strconv"

// A Pulse is a single signal sent along a wire during a press.
//
type Pulse struct {
	Source string
	Dest   string
	Level  Level
	Press  int // number of the press that produced the pulse
}

func (p Pulse) String() string {
	return p.Source + " -" + p.Level.String() + "-> " + p.Dest + " #" + strconv.Itoa(p.Press)
}

// A Trace is the ordered list of pulses processed during a single press,
// starting with the button pulse.
//
type Trace []Pulse

// Count returns the number of low and high pulses in t.
//
func (t Trace) Count() (low, high int) {
	for _, p := range t {
		if p.Level == High {
			high++
		} else {
			low++
		}
	}
	return low, high
}

// EmitsHigh reports whether the module src sent at least one high pulse.
//
func (t Trace) EmitsHigh(src string) bool {
	for _, p := range t {
		if p.Source == src && p.Level == High {
			return true
		}
	}
	return false
}

// Receives reports whether dst received at least one pulse of level l.
//
func (t Trace) Receives(dst string, l Level) bool {
	for _, p := range t {
		if p.Dest == dst && p.Level == l {
			return true
		}
	}
	return false
}

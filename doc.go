/*
Package pulsesim simulates networks of pulse driven logic modules and finds
out how many button presses it takes before a given output line receives a low
pulse.

A circuit is made of three kinds of modules connected by directed wires:

	broadcaster -> a, b, c   the entry point, repeats any pulse to its outputs
	%a -> b                  flip-flop, toggles on low pulses, ignores high ones
	&inv -> a                conjunction, a NAND gate remembering its inputs

Pressing the button sends a single low pulse to the broadcaster. Pulses are
then processed in the order they were sent until the circuit settles. Graph.Press
runs one such cascade and returns the pulses it produced.

Some circuits need far too many presses for the answer to be found by brute
force. For the family of circuits where the target is driven by a conjunction
whose inputs each fire on a fixed period, FindPeriods measures these periods
and CombinePeriods reduces them to the first press where they all coincide.

*/
package pulsesim

// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

// pulseQueue is a FIFO of pending pulses. Dequeued pulses are kept in the
// backing slice, which then holds the full trace once the queue is empty.
//
type pulseQueue struct {
	items []Pulse
	head  int
}

func (q *pulseQueue) push(p Pulse) { q.items = append(q.items, p) }

func (q *pulseQueue) pop() (Pulse, bool) {
	if q.head == len(q.items) {
		return Pulse{}, false
	}
	p := q.items[q.head]
	q.head++
	return p, true
}

// Press sends a low pulse from the button to the broadcaster and processes
// all resulting pulses until the circuit settles. Pulses are processed in the
// order they are sent. The returned trace lists every processed pulse in that
// order, including pulses sent to modules that are not part of the graph.
//
// index is recorded in the Press field of the returned pulses.
//
// Press fails with a *PulseLimitError if more than g.PulseLimit pulses are
// processed. Module states are left as they were at that point.
//
func (g *Graph) Press(index int) (Trace, error) {
	limit := g.PulseLimit
	if limit <= 0 {
		limit = DefaultPulseLimit
	}

	var q pulseQueue
	q.push(Pulse{Source: Button, Dest: Broadcaster, Level: Low, Press: index})

	for n := 0; ; n++ {
		p, ok := q.pop()
		if !ok {
			break
		}
		if n >= limit {
			return Trace(q.items[:q.head-1]), &PulseLimitError{Press: index, Limit: limit}
		}
		m := g.modules[p.Dest]
		if m == nil {
			continue
		}
		l, ok := m.receive(p.Source, p.Level)
		if !ok {
			continue
		}
		for _, d := range m.outputs {
			q.push(Pulse{Source: m.name, Dest: d, Level: l, Press: index})
		}
	}

	return Trace(q.items), nil
}

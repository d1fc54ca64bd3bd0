// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

const arrow = "->"

// Parse reads a circuit description. Each line describes one module and its
// destinations:
//
//	broadcaster -> a, b
//	%a -> inv
//	&inv -> b, output
//
// The % and & prefixes denote flip-flops and conjunctions. The broadcaster has
// no prefix. Blank lines and lines starting with # are ignored.
//
func Parse(r io.Reader) ([]ModuleSpec, error) {
	var specs []ModuleSpec
	s := bufio.NewScanner(r)
	for ln := 1; s.Scan(); ln++ {
		line := strings.TrimSpace(s.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		spec, err := parseLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", ln)
		}
		specs = append(specs, spec)
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "read circuit")
	}
	return specs, nil
}

// ParseGraph reads a circuit description and builds the corresponding Graph.
//
func ParseGraph(r io.Reader) (*Graph, error) {
	specs, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return NewGraph(specs)
}

func parseLine(line string) (ModuleSpec, error) {
	i := strings.Index(line, arrow)
	if i < 0 {
		return ModuleSpec{}, errors.Errorf("missing %q in %q", arrow, line)
	}
	var spec ModuleSpec
	name := strings.TrimSpace(line[:i])
	switch {
	case name == Broadcaster:
		spec.Kind = Broadcast
	case strings.HasPrefix(name, FlipFlop.Prefix()):
		spec.Kind = FlipFlop
		name = name[1:]
	case strings.HasPrefix(name, Conjunction.Prefix()):
		spec.Kind = Conjunction
		name = name[1:]
	default:
		return ModuleSpec{}, errors.Errorf("invalid module %q: expected %s or a name prefixed with %s or %s",
			name, Broadcaster, FlipFlop.Prefix(), Conjunction.Prefix())
	}
	if !isIdent(name) {
		return ModuleSpec{}, errors.Errorf("invalid module name %q", name)
	}
	spec.Name = name

	dests := strings.TrimSpace(line[i+len(arrow):])
	if dests == "" {
		return spec, nil
	}
	for _, d := range strings.Split(dests, ",") {
		d = strings.TrimSpace(d)
		if !isIdent(d) {
			return ModuleSpec{}, errors.Errorf("invalid destination %q for %s", d, name)
		}
		spec.Outputs = append(spec.Outputs, d)
	}
	return spec, nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

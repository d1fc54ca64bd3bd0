package pulsesim_test

import (
	"reflect"
	"strings"
	"testing"

	ps "github.com/db47h/pulsesim"
	"github.com/db47h/pulsesim/pulsetest"
	"github.com/pkg/errors"
)

func trace(t *testing.T, err error) {
	t.Helper()
	if err, ok := err.(interface {
		StackTrace() errors.StackTrace
	}); ok {
		for _, f := range err.StackTrace() {
			t.Logf("%+v ", f)
		}
	}
}

func TestNewGraph_errors(t *testing.T) {
	bc := ps.ModuleSpec{Name: ps.Broadcaster, Kind: ps.Broadcast, Outputs: []string{"a"}}
	data := []struct {
		name  string
		specs []ps.ModuleSpec
		err   error
		msg   string
	}{
		{"missing", []ps.ModuleSpec{{Name: "a", Kind: ps.FlipFlop}}, ps.ErrMissingBroadcaster, ""},
		{"empty", nil, ps.ErrMissingBroadcaster, ""},
		{"duplicate_broadcaster", []ps.ModuleSpec{bc, {Name: "a", Kind: ps.FlipFlop}, bc}, ps.ErrDuplicateBroadcaster, ""},
		{"duplicate_module", []ps.ModuleSpec{bc, {Name: "a", Kind: ps.FlipFlop}, {Name: "a", Kind: ps.Conjunction}},
			ps.ErrDuplicateModule, "a: duplicate module name"},
		{"broadcast_kind", []ps.ModuleSpec{bc, {Name: "a", Kind: ps.Broadcast}},
			ps.ErrBroadcastKind, "a: only broadcaster can be a broadcast module"},
		{"broadcaster_kind", []ps.ModuleSpec{{Name: ps.Broadcaster, Kind: ps.Conjunction}},
			ps.ErrBroadcastKind, "&broadcaster: only broadcaster can be a broadcast module"},
		{"invalid_kind", []ps.ModuleSpec{bc, {Name: "a", Kind: ps.Kind(7)}}, nil, "a: invalid module kind Kind(7)"},
		{"no_name", []ps.ModuleSpec{bc, {Kind: ps.FlipFlop}}, nil, "empty module name"},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			g, err := ps.NewGraph(d.specs)
			if err == nil {
				t.Fatalf("expected error, got graph with %d modules", g.Len())
			}
			if d.err != nil && errors.Cause(err) != d.err {
				trace(t, err)
				t.Errorf("got error %q, expected cause %q", err, d.err)
			}
			if d.msg != "" && err.Error() != d.msg {
				t.Errorf("got error %q, expected %q", err, d.msg)
			}
		})
	}
}

func TestNewGraph_conjunctionInputs(t *testing.T) {
	g := pulsetest.MustParse(t, `
broadcaster -> a, x
%a -> x, x
&x -> out
%b -> x
`)
	x := g.Get("x")
	if x == nil || x.Kind() != ps.Conjunction {
		t.Fatal("missing conjunction x")
	}
	if in := x.Inputs(); !reflect.DeepEqual(in, []string{"broadcaster", "a", "b"}) {
		t.Fatalf("x inputs = %v", in)
	}
	for _, in := range x.Inputs() {
		if l, ok := x.Memory(in); !ok || l != ps.Low {
			t.Errorf("x memory for %s = %v, %v; expected low", in, l, ok)
		}
	}
	c := g.Clone()
	x.Inputs()[0] = "z"
	if in := c.Get("x").Inputs(); in[0] != "broadcaster" {
		t.Errorf("clone inputs changed through original: %v", in)
	}
	if g.Get("a").Inputs() != nil {
		t.Error("flip-flop a has inputs")
	}
	if _, ok := x.Memory("out"); ok {
		t.Error("x has memory for a non input")
	}
	if g.Get("a").On() {
		t.Error("flip-flop a initially on")
	}
	if g.Get("out") != nil {
		t.Error("unmodeled sink out resolved to a module")
	}
	if in := g.Inputs("out"); !reflect.DeepEqual(in, []string{"x"}) {
		t.Errorf("out inputs = %v", in)
	}
	if n := g.Names(); !reflect.DeepEqual(n, []string{"broadcaster", "a", "x", "b"}) {
		t.Errorf("names = %v", n)
	}
}

func TestGraph_WatchSet(t *testing.T) {
	g := pulsetest.MustParse(t, `
broadcaster -> a, b, ff
%a -> agg, multi
%b -> agg, multi
&agg -> rx
%ff -> single
&lone -> empty
`)
	data := []struct {
		target string
		want   []string
		err    string
	}{
		{"rx", []string{"a", "b"}, ""},
		{"multi", []string{"a", "b"}, ""},
		{"single", []string{"ff"}, ""},
		{"nowhere", nil, "no module is wired to nowhere"},
	}
	for _, d := range data {
		t.Run(d.target, func(t *testing.T) {
			w, err := g.WatchSet(d.target)
			if d.err != "" {
				if err == nil || err.Error() != d.err {
					t.Fatalf("got error %v, expected %q", err, d.err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(w, d.want) {
				t.Errorf("got %v, expected %v", w, d.want)
			}
		})
	}
}

func TestGraph_ResetClone(t *testing.T) {
	g := pulsetest.MustParse(t, example2)
	first, err := g.Press(1)
	if err != nil {
		t.Fatal(err)
	}
	if !g.Get("a").On() {
		t.Fatal("a should be on after one press")
	}

	c := g.Clone()
	if _, err := g.Press(2); err != nil {
		t.Fatal(err)
	}
	if !c.Get("a").On() || g.Get("a").On() {
		t.Fatal("clone state changed with original")
	}

	g.Reset()
	if g.Get("a").On() || g.Get("b").On() {
		t.Fatal("flip-flops still on after reset")
	}
	if l, _ := g.Get("con").Memory("a"); l != ps.Low {
		t.Fatal("conjunction memory not reset")
	}
	again, err := g.Press(1)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, again) {
		t.Errorf("press after reset differs:\n%v\n%v", first, again)
	}
}

func TestParse_errors(t *testing.T) {
	data := []struct {
		name string
		in   string
		err  string
	}{
		{"no_arrow", "broadcaster a", `line 1: missing "->" in "broadcaster a"`},
		{"prefix", "broadcaster -> a\n\n!a -> b", "line 3: invalid module \"!a\""},
		{"name", "broadcaster -> a\n%a b -> c", `line 2: invalid module name "a b"`},
		{"dest", "broadcaster -> a,,b", `line 1: invalid destination "" for broadcaster`},
		{"empty_prefix", "% -> a", `line 1: invalid module name ""`},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			_, err := ps.Parse(strings.NewReader(d.in))
			if err == nil || !strings.HasPrefix(err.Error(), d.err) {
				t.Errorf("got error %v, expected %q", err, d.err)
			}
		})
	}
}

func TestParse(t *testing.T) {
	specs, err := ps.Parse(strings.NewReader(`
# comment
broadcaster -> a, b
%a -> inv
  &inv -> b,output
&sink ->
`))
	if err != nil {
		t.Fatal(err)
	}
	want := []ps.ModuleSpec{
		{Name: "broadcaster", Kind: ps.Broadcast, Outputs: []string{"a", "b"}},
		{Name: "a", Kind: ps.FlipFlop, Outputs: []string{"inv"}},
		{Name: "inv", Kind: ps.Conjunction, Outputs: []string{"b", "output"}},
		{Name: "sink", Kind: ps.Conjunction},
	}
	if !reflect.DeepEqual(specs, want) {
		t.Errorf("got %+v, expected %+v", specs, want)
	}
}

func TestParseGraph_duplicateBroadcaster(t *testing.T) {
	_, err := ps.ParseGraph(strings.NewReader("broadcaster -> a\nbroadcaster -> b\n"))
	if errors.Cause(err) != ps.ErrDuplicateBroadcaster {
		t.Errorf("got %v, expected %v", err, ps.ErrDuplicateBroadcaster)
	}
}

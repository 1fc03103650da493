package core

import "testing"

func TestControlClamp(t *testing.T) {
	c := ParameterControl{Key: "k", Step: 1, Min: 1, Max: 5}
	for _, tc := range []struct{ in, want float64 }{{0, 1}, {3, 3}, {9, 5}} {
		if got := c.Clamp(tc.in); got != tc.want {
			t.Errorf("Clamp(%v) = %v, expected %v", tc.in, got, tc.want)
		}
	}
	open := ParameterControl{Key: "k"}
	if got := open.Clamp(-42); got != -42 {
		t.Fatalf("open range clamped to %v", got)
	}
}

func TestSnapshotLookupAndParse(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "a", Params: []Parameter{FloatParam("f", "F", 1.25), TextParam("t", "T", "scene")}},
		{Name: "b", Params: []Parameter{IntParam("i", "I", -7)}},
	}}
	p, ok := snap.Lookup("f")
	if !ok || p.Value != "1.250" {
		t.Fatalf("lookup f = %+v ok=%v", p, ok)
	}
	if v, ok := p.Float(); !ok || v != 1.25 {
		t.Fatalf("float f = %v ok=%v", v, ok)
	}
	p, _ = snap.Lookup("i")
	if v, ok := p.Float(); !ok || v != -7 {
		t.Fatalf("float i = %v ok=%v", v, ok)
	}
	p, _ = snap.Lookup("t")
	if _, ok := p.Float(); ok {
		t.Fatal("text parameter parsed as number")
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("lookup of unknown key succeeded")
	}
}

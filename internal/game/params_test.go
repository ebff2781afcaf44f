package game

import "testing"

func TestParametersRoundTripThroughFromMap(t *testing.T) {
	cfg := Config{Width: 600, Height: 400, Unit: 20, InitialLength: 4, Seed: 8, StrictBounds: true}
	s, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	values := map[string]string{}
	for _, g := range s.Parameters().Groups {
		for _, p := range g.Params {
			values[p.Key] = p.Value
		}
	}
	if got := FromMap(values); got != cfg {
		t.Fatalf("FromMap(Parameters) = %+v, expected %+v", got, cfg)
	}

	p, ok := s.Parameters().Lookup("unit")
	if !ok || p.Value != "20" {
		t.Fatalf("Lookup(unit) = %+v, %v", p, ok)
	}
	if _, ok := s.Parameters().Lookup("missing"); ok {
		t.Fatal("Lookup found a key that does not exist")
	}
}

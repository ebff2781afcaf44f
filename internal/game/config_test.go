package game

import (
	"errors"
	"testing"
)

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":      "600",
		"h":      "400",
		"unit":   "20",
		"length": "3",
		"seed":   "77",
		"strict": "true",
	})
	want := Config{Width: 600, Height: 400, Unit: 20, InitialLength: 3, Seed: 77, StrictBounds: true}
	if cfg != want {
		t.Fatalf("FromMap = %+v, expected %+v", cfg, want)
	}

	bad := FromMap(map[string]string{"w": "-5", "unit": "x", "strict": "maybe"})
	if bad != DefaultConfig() {
		t.Fatalf("unparsable values must keep defaults, got %+v", bad)
	}
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map must yield defaults")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*Config)
		ok   bool
	}{
		{"default", func(*Config) {}, true},
		{"zero unit", func(c *Config) { c.Unit = 0 }, false},
		{"ragged width", func(c *Config) { c.Width = 1325 }, false},
		{"ragged height", func(c *Config) { c.Height = 740 }, false},
		{"no body", func(c *Config) { c.InitialLength = 0 }, false},
		{"single cell", func(c *Config) { c.Width, c.Height = 50, 50 }, false},
		{"two cells", func(c *Config) { c.Width, c.Height, c.InitialLength = 100, 50, 1 }, true},
		{"length exceeds board", func(c *Config) { c.Width, c.Height = 100, 50 }, false},
		{"length fills board", func(c *Config) { c.Width, c.Height, c.InitialLength = 150, 100, 6 }, false},
		{"length leaves one cell", func(c *Config) { c.Width, c.Height, c.InitialLength = 150, 100, 5 }, true},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mod(&cfg)
		err := cfg.Validate()
		if tc.ok && err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: expected ErrInvalidConfig, got %v", tc.name, err)
		}
	}
}

func TestDirectionOpposites(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		if d.Opposite().Opposite() != d {
			t.Fatalf("%v: opposite is not an involution", d)
		}
		dx, dy := d.Delta(50)
		ox, oy := d.Opposite().Delta(50)
		if dx != -ox || dy != -oy {
			t.Fatalf("%v: delta (%d,%d) not reversed by opposite (%d,%d)", d, dx, dy, ox, oy)
		}
		var back Direction
		text, _ := d.MarshalText()
		if err := back.UnmarshalText(text); err != nil || back != d {
			t.Fatalf("%v: text form %q does not parse back (%v)", d, text, err)
		}
	}
	var d Direction
	if err := d.UnmarshalText([]byte("sideways")); err == nil {
		t.Fatal("unknown direction must fail to parse")
	}
}

package app

import (
	"flag"
	"time"

	"gosnake/internal/core"
	"gosnake/internal/game"
)

// Config represents the command-line parameters shared by the frontends.
type Config struct {
	Width        int
	Height       int
	Unit         int
	Length       int
	Interval     time.Duration
	Seed         int64
	StrictBounds bool

	// Listen is the spectator HTTP address; empty disables it.
	Listen string
	// TPS is the ebiten frame rate; ticks still follow Interval.
	TPS int
	// LogFile receives log output when set.
	LogFile string
}

// NewConfig returns a Config populated with the classic defaults.
func NewConfig() *Config {
	g := game.DefaultConfig()
	return &Config{
		Width:    g.Width,
		Height:   g.Height,
		Unit:     g.Unit,
		Length:   g.InitialLength,
		Interval: core.DefaultInterval,
		TPS:      60,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "board width in logical units")
	fs.IntVar(&c.Height, "height", c.Height, "board height in logical units")
	fs.IntVar(&c.Unit, "unit", c.Unit, "grid cell size in logical units")
	fs.IntVar(&c.Length, "length", c.Length, "initial snake length")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between game ticks")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for apple placement (0 = clock)")
	fs.BoolVar(&c.StrictBounds, "strict-bounds", c.StrictBounds, "treat the far board edge as a wall")
	fs.StringVar(&c.Listen, "listen", c.Listen, "spectator HTTP address, e.g. :8080")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second of the window frontend")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "write logs to this file")
}

// Game returns the game configuration described by the flags.
func (c *Config) Game() game.Config {
	return game.Config{
		Width:         c.Width,
		Height:        c.Height,
		Unit:          c.Unit,
		InitialLength: c.Length,
		Seed:          c.Seed,
		StrictBounds:  c.StrictBounds,
	}
}

// Spectated is the view the spectator server gets: the game plus the host's
// tick interval, which the game itself does not know about.
type Spectated struct {
	*game.State
	Interval time.Duration
}

// Spectated wraps s for serving.
func (c *Config) Spectated(s *game.State) Spectated {
	return Spectated{State: s, Interval: c.Interval}
}

// Parameters lists the game settings followed by a timing group.
func (s Spectated) Parameters() core.ParameterSnapshot {
	p := s.State.Parameters()
	p.Groups = append(p.Groups, core.ParameterGroup{
		Name: "Timing",
		Params: []core.Parameter{{
			Key:         "interval",
			Label:       "Tick interval",
			Type:        core.ParamTypeDuration,
			Value:       s.Interval.String(),
			Description: "time between game ticks",
		}},
	})
	return p
}

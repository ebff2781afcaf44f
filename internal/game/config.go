package game

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid game config")

// Config controls the board geometry and the starting snake.
type Config struct {
	Width  int
	Height int
	Unit   int

	InitialLength int

	// Seed drives apple placement. Zero seeds from the clock.
	Seed int64

	// StrictBounds makes the far board edge exclusive. By default a head
	// sitting exactly on x == Width or y == Height is still alive.
	StrictBounds bool
}

// DefaultConfig returns the classic 1300x750 board with 50-unit cells.
func DefaultConfig() Config {
	return Config{
		Width:         1300,
		Height:        750,
		Unit:          50,
		InitialLength: 6,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparsable values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["unit"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Unit = parsed
		}
	}
	if v, ok := cfg["length"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.InitialLength = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["strict"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.StrictBounds = parsed
		}
	}
	return c
}

// Validate reports whether the board can host a run.
func (c Config) Validate() error {
	if c.Unit <= 0 {
		return fmt.Errorf("%w: unit %d must be positive", ErrInvalidConfig, c.Unit)
	}
	if c.Width <= 0 || c.Width%c.Unit != 0 {
		return fmt.Errorf("%w: width %d must be a positive multiple of unit %d", ErrInvalidConfig, c.Width, c.Unit)
	}
	if c.Height <= 0 || c.Height%c.Unit != 0 {
		return fmt.Errorf("%w: height %d must be a positive multiple of unit %d", ErrInvalidConfig, c.Height, c.Unit)
	}
	if c.InitialLength < 1 {
		return fmt.Errorf("%w: initial length %d must be at least 1", ErrInvalidConfig, c.InitialLength)
	}
	cells := (c.Width / c.Unit) * (c.Height / c.Unit)
	if cells < 2 {
		return fmt.Errorf("%w: board has %d cells, need room for an apple", ErrInvalidConfig, cells)
	}
	if c.InitialLength >= cells {
		return fmt.Errorf("%w: initial length %d does not fit a %d-cell board with an apple", ErrInvalidConfig, c.InitialLength, cells)
	}
	return nil
}

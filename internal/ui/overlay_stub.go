//go:build !ebiten

package ui

import (
	"gosnake/internal/core"
	"gosnake/internal/game"
)

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(core.Size) *Overlay { return &Overlay{} }

// Update never requests a restart in headless builds.
func (o *Overlay) Update(game.Snapshot) bool { return false }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, game.Snapshot) {}

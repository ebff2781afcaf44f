//go:build ebiten

package ui

import (
	"fmt"

	"gosnake/internal/game"
	"gosnake/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the score banner across the top of the board.
type HUD struct {
	width int
	score font.Face
	small font.Face
}

// NewHUD constructs a HUD for a board of the given pixel width.
func NewHUD(width int) *HUD {
	return &HUD{width: width, score: boldFace(40), small: basicfont.Face7x13}
}

// Draw paints the current and best score.
func (h *HUD) Draw(screen *ebiten.Image, snap game.Snapshot) {
	if h == nil {
		return
	}
	label := fmt.Sprintf("Score: %d", snap.Score)
	size := h.score.Metrics().Ascent.Ceil()
	text.Draw(screen, label, h.score, centeredX(h.score, label, h.width), size, render.AppleColor)

	best := fmt.Sprintf("Best: %d", snap.Best)
	x := h.width - font.MeasureString(h.small, best).Ceil() - 8
	text.Draw(screen, best, h.small, x, 16, render.BodyColor)
}

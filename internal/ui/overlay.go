//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"gosnake/internal/core"
	"gosnake/internal/game"
	"gosnake/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the game over screen and owns the "New Game" button. It only
// reports restart requests; the host decides what to do with them.
type Overlay struct {
	board  core.Size
	button image.Rectangle

	title font.Face
	label font.Face
	hint  font.Face
}

// NewOverlay constructs an overlay for a board of the given pixel size.
func NewOverlay(board core.Size) *Overlay {
	return &Overlay{
		board:  board,
		button: RestartButton(board),
		title:  boldFace(75),
		label:  boldFace(55),
		hint:   basicfont.Face7x13,
	}
}

// Update reports whether the player asked for a new run this frame.
func (o *Overlay) Update(snap game.Snapshot) bool {
	if !snap.Over() {
		return false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return true
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	return pointInRect(mx, my, o.button)
}

// Draw renders the game over text and the restart button.
func (o *Overlay) Draw(screen *ebiten.Image, snap game.Snapshot) {
	if !snap.Over() {
		return
	}
	const title = "Game Over"
	text.Draw(screen, title, o.title, centeredX(o.title, title, o.board.W), o.board.H/2, render.AppleColor)

	b := o.button
	fill := color.RGBA{A: 255}
	if mx, my := ebiten.CursorPosition(); pointInRect(mx, my, b) {
		fill = color.RGBA{R: 40, A: 255}
	}
	vector.DrawFilledRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), fill, false)
	vector.StrokeRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), 2, render.AppleColor, false)

	const label = "New Game"
	lx := b.Min.X + centeredX(o.label, label, b.Dx())
	ly := b.Min.Y + (b.Dy()+o.label.Metrics().CapHeight.Ceil())/2
	text.Draw(screen, label, o.label, lx, ly, render.AppleColor)

	hint := "press R to restart, Esc to quit"
	switch snap.Cause {
	case game.CauseWall:
		hint = "ran into the wall. " + hint
	case game.CauseSelf:
		hint = "ran into itself. " + hint
	}
	text.Draw(screen, hint, o.hint, centeredX(o.hint, hint, o.board.W), b.Max.Y+24, render.BodyColor)
}

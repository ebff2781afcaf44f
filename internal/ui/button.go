package ui

import (
	"image"

	"gosnake/internal/core"
)

// RestartButton returns the screen bounds of the "New Game" button for a
// board of the given size: 300x100, centred, just below the middle.
func RestartButton(board core.Size) image.Rectangle {
	x := board.W/2 - 150
	y := board.H/2 + 25
	return image.Rect(x, y, x+300, y+100)
}

func pointInRect(x, y int, r image.Rectangle) bool {
	return image.Pt(x, y).In(r)
}

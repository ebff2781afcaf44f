package render

import (
	"image/color"

	"gosnake/internal/core"
	"gosnake/internal/game"
)

// Cell kinds written by Rasterize.
const (
	CellEmpty uint8 = iota
	CellBody
	CellHead
	CellApple
)

// Colors used by the classic look.
var (
	Background = color.RGBA{A: 255}
	HeadColor  = color.RGBA{G: 255, A: 255}
	BodyColor  = color.RGBA{R: 45, G: 180, A: 255}
	AppleColor = color.RGBA{R: 255, A: 255}
)

// Palette maps cell kinds to colors. Apples map to the background because
// the window frontend draws them as discs on top of the grid.
func Palette() []color.RGBA {
	return []color.RGBA{
		CellEmpty: Background,
		CellBody:  BodyColor,
		CellHead:  HeadColor,
		CellApple: Background,
	}
}

// Rasterize writes snap into grid, one byte per board cell. The grid must be
// sized to the board in cells; segments off the board are skipped.
func Rasterize(grid *core.ByteGrid, snap game.Snapshot) {
	grid.Clear()
	unit := snap.Unit
	if unit <= 0 {
		return
	}
	grid.Set(snap.Apple.X/unit, snap.Apple.Y/unit, CellApple)
	for i := len(snap.Body) - 1; i >= 0; i-- {
		p := snap.Body[i]
		if p.X < 0 || p.Y < 0 {
			continue
		}
		kind := CellBody
		if i == 0 {
			kind = CellHead
		}
		grid.Set(p.X/unit, p.Y/unit, kind)
	}
}

// GridFor allocates a grid matching the snapshot's board in cells.
func GridFor(snap game.Snapshot) *core.ByteGrid {
	cells := snap.Board.Cells(snap.Unit)
	return core.NewByteGrid(cells.W, cells.H)
}

//go:build ebiten

package render

import (
	"image/color"

	"gosnake/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter keeps one pixel per board cell in an image and scales it up by
// the unit size when drawing.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette []color.RGBA
}

// NewGridPainter allocates a painter for a board of w*h cells.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), palette: Palette()}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the grid into the painter image and draws it scaled by unit.
func (gp *GridPainter) Blit(dst *ebiten.Image, grid *core.ByteGrid, unit int) {
	cells := grid.Cells()
	if len(cells) != gp.w*gp.h {
		return
	}
	fillPaletteRGBA(gp.buf, cells, gp.palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(unit), float64(unit))
	dst.DrawImage(gp.img, op)
}

// DrawApple draws the apple as a disc filling its cell.
func (gp *GridPainter) DrawApple(dst *ebiten.Image, apple core.Point, unit int) {
	r := float32(unit) / 2
	vector.DrawFilledCircle(dst, float32(apple.X)+r, float32(apple.Y)+r, r, AppleColor, true)
}

// Package term plays the game on a tcell screen, two columns per board cell.
package term

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"gosnake/internal/core"
	"gosnake/internal/game"
	"gosnake/internal/render"
)

// Screen offsets: row 0 holds the score, row 1 the top border.
const (
	originX   = 1
	originY   = 2
	cellWidth = 2
)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	headStyle   = tcell.StyleDefault.Foreground(tcell.ColorLime)
	bodyStyle   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(45, 180, 0))
	appleStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

var keyDirections = map[tcell.Key]game.Direction{
	tcell.KeyUp:    game.Up,
	tcell.KeyDown:  game.Down,
	tcell.KeyLeft:  game.Left,
	tcell.KeyRight: game.Right,
}

var runeDirections = map[rune]game.Direction{
	'w': game.Up,
	's': game.Down,
	'a': game.Left,
	'd': game.Right,
}

// Terminal is the host loop for the terminal frontend.
type Terminal struct {
	screen   tcell.Screen
	state    *game.State
	grid     *core.ByteGrid
	interval time.Duration
	log      *log.Logger
}

// New returns a Terminal drawing state on an initialised screen.
func New(screen tcell.Screen, state *game.State, interval time.Duration, logger *log.Logger) *Terminal {
	if interval <= 0 {
		interval = core.DefaultInterval
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Terminal{
		screen:   screen,
		state:    state,
		grid:     render.GridFor(state.Snapshot()),
		interval: interval,
		log:      logger,
	}
}

// Run ticks the game and handles keys until the player quits or ctx ends.
func (t *Terminal) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	go t.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	t.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventError:
				t.log.Printf("tcell error: %s", ev.Error())
			case *tcell.EventResize:
				t.screen.Sync()
			case *tcell.EventKey:
				before := t.state.RunState()
				if t.HandleKey(ev) {
					return nil
				}
				if before == game.GameOver && t.state.RunState() == game.Running {
					ticker.Reset(t.interval)
				}
			}
			t.Draw()
		case <-ticker.C:
			t.state.Tick()
			t.Draw()
		}
	}
}

// HandleKey applies one key press and reports whether the player quit.
func (t *Terminal) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		t.restart()
		return false
	case tcell.KeyRune:
		// Caps lock must not disable the letter keys.
		r := unicode.ToLower(ev.Rune())
		if r == 'q' {
			return true
		}
		if r == 'r' {
			t.restart()
			return false
		}
		if d, ok := runeDirections[r]; ok {
			t.state.SetDirection(d)
		}
		return false
	}
	if d, ok := keyDirections[ev.Key()]; ok {
		t.state.SetDirection(d)
	}
	return false
}

func (t *Terminal) restart() {
	if t.state.RunState() != game.GameOver {
		return
	}
	t.log.Print("restart requested")
	t.state.Reset()
}

// Draw renders the latest snapshot and shows the screen.
func (t *Terminal) Draw() {
	snap := t.state.Snapshot()
	t.screen.Clear()

	w, h := t.grid.W, t.grid.H
	right := originX + w*cellWidth
	bottom := originY + h
	for x := originX; x < right; x++ {
		t.screen.SetContent(x, originY-1, '-', nil, borderStyle)
		t.screen.SetContent(x, bottom, '-', nil, borderStyle)
	}
	for y := originY; y < bottom; y++ {
		t.screen.SetContent(originX-1, y, '|', nil, borderStyle)
		t.screen.SetContent(right, y, '|', nil, borderStyle)
	}
	for _, corner := range [][2]int{{originX - 1, originY - 1}, {right, originY - 1}, {originX - 1, bottom}, {right, bottom}} {
		t.screen.SetContent(corner[0], corner[1], '+', nil, borderStyle)
	}

	score := fmt.Sprintf("Score: %d  Best: %d", snap.Score, snap.Best)
	t.drawText((right+1-len(score))/2, 0, score, textStyle)

	if snap.Over() {
		t.drawText((right+1-len("Game Over"))/2, originY+h/2-1, "Game Over", textStyle)
		hint := "r: new game  q: quit"
		t.drawText((right+1-len(hint))/2, originY+h/2+1, hint, borderStyle)
		t.screen.Show()
		return
	}

	render.Rasterize(t.grid, snap)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var (
				r     rune
				style tcell.Style
			)
			switch t.grid.At(x, y) {
			case render.CellHead:
				r, style = '█', headStyle
			case render.CellBody:
				r, style = '█', bodyStyle
			case render.CellApple:
				r, style = '●', appleStyle
			default:
				continue
			}
			sx := originX + x*cellWidth
			t.screen.SetContent(sx, originY+y, r, nil, style)
			if r == '█' {
				t.screen.SetContent(sx+1, originY+y, r, nil, style)
			}
		}
	}
	t.screen.Show()
}

func (t *Terminal) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

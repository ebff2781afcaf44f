package term

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"gosnake/internal/game"
)

func newTerminal(t *testing.T, interval time.Duration) (*Terminal, tcell.SimulationScreen, *game.State) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	cfg := game.DefaultConfig()
	cfg.Seed = 21
	state, err := game.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return New(screen, state, interval, nil), screen, state
}

func rowText(screen tcell.SimulationScreen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func key(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }

func runeKey(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func runToGameOver(state *game.State) {
	state.SetDirection(game.Up)
	for state.RunState() == game.Running {
		state.Tick()
	}
}

func TestDrawBoard(t *testing.T) {
	term, screen, state := newTerminal(t, time.Second)
	term.Draw()

	// Head at (650,400) is cell (13,8), two columns per cell.
	for _, x := range []int{originX + 26, originX + 27} {
		if r, _, _, _ := screen.GetContent(x, originY+8); r != '█' {
			t.Fatalf("head column %d shows %q", x, r)
		}
	}
	apple := state.Snapshot().Apple
	if r, _, _, _ := screen.GetContent(originX+apple.X/50*cellWidth, originY+apple.Y/50); r != '●' {
		t.Fatalf("apple cell shows %q", r)
	}
	if r, _, _, _ := screen.GetContent(0, 1); r != '+' {
		t.Fatalf("top-left corner shows %q", r)
	}
	if !strings.Contains(rowText(screen, 0), "Score: 0") {
		t.Fatalf("score row = %q", rowText(screen, 0))
	}
}

func TestHandleKeySteers(t *testing.T) {
	term, _, state := newTerminal(t, time.Second)

	if term.HandleKey(key(tcell.KeyLeft)) {
		t.Fatal("arrow key must not quit")
	}
	if state.Direction() != game.Right {
		t.Fatalf("reversal accepted: heading %v", state.Direction())
	}
	term.HandleKey(key(tcell.KeyUp))
	if state.Direction() != game.Up {
		t.Fatalf("direction = %v, expected up", state.Direction())
	}
	term.HandleKey(runeKey('s'))
	if state.Direction() != game.Down {
		t.Fatalf("direction = %v, expected down", state.Direction())
	}
}

func TestHandleKeyQuit(t *testing.T) {
	term, _, _ := newTerminal(t, time.Second)
	for _, ev := range []*tcell.EventKey{key(tcell.KeyEscape), key(tcell.KeyCtrlC), runeKey('q')} {
		if !term.HandleKey(ev) {
			t.Fatalf("%v did not quit", ev.Name())
		}
	}
}

func TestHandleKeyIgnoresCapsLock(t *testing.T) {
	term, _, state := newTerminal(t, time.Second)

	term.HandleKey(runeKey('W'))
	if state.Direction() != game.Up {
		t.Fatalf("W: direction = %v, expected up", state.Direction())
	}
	state.Tick()
	term.HandleKey(runeKey('A'))
	if state.Direction() != game.Left {
		t.Fatalf("A: direction = %v, expected left", state.Direction())
	}

	runToGameOver(state)
	term.HandleKey(runeKey('R'))
	if state.Snapshot().Over() {
		t.Fatal("R did not restart")
	}
	if !term.HandleKey(runeKey('Q')) {
		t.Fatal("Q did not quit")
	}
}

func TestRestartOnlyWhenOver(t *testing.T) {
	term, screen, state := newTerminal(t, time.Second)
	state.Tick()
	term.HandleKey(runeKey('r'))
	if state.Snapshot().Tick != 1 {
		t.Fatal("restart key must be ignored while running")
	}

	runToGameOver(state)
	term.Draw()
	found := false
	for y := 0; y < 24; y++ {
		if strings.Contains(rowText(screen, y), "Game Over") {
			found = true
		}
	}
	if !found {
		t.Fatal("game over banner not drawn")
	}

	term.HandleKey(key(tcell.KeyEnter))
	snap := state.Snapshot()
	if snap.Over() || snap.Tick != 0 || snap.Score != 0 {
		t.Fatalf("restart did not reset: %+v", snap)
	}
}

func TestRunTicksAndQuits(t *testing.T) {
	term, screen, state := newTerminal(t, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- term.Run(ctx) }()

	deadline := time.Now().Add(3 * time.Second)
	for state.Snapshot().Tick == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if state.Snapshot().Tick == 0 {
		t.Fatal("game never ticked")
	}

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-ctx.Done():
		t.Fatal("Run did not return after q")
	}
}

func TestRunStopsOnContext(t *testing.T) {
	term, _, _ := newTerminal(t, time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- term.Run(ctx) }()
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Run ignored cancellation")
	}
}

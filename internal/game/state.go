package game

import (
	"io"
	"log"
	"sync"

	"github.com/google/uuid"

	"gosnake/internal/core"
)

// State owns one snake, its apple and the run bookkeeping. All methods are
// safe for concurrent use; each call is atomic with respect to the others.
type State struct {
	mu sync.Mutex

	cfg   Config
	board core.Size
	rng   *core.RNG
	log   *log.Logger

	body    []core.Point
	heading Direction // applied on the last tick
	pending Direction // applied on the next tick
	apple   core.Point

	score int
	best  int
	run   RunState
	cause Cause
	ticks uint64
	runID string
}

// Option customises a State at construction time.
type Option func(*State)

// WithLogger routes run events to l. A nil logger discards them.
func WithLogger(l *log.Logger) Option {
	return func(s *State) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRNG overrides the apple placement source, which otherwise derives from
// Config.Seed.
func WithRNG(r *core.RNG) Option {
	return func(s *State) {
		if r != nil {
			s.rng = r
		}
	}
}

// New validates cfg and returns a State with a fresh run in progress.
func New(cfg Config, opts ...Option) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &State{
		cfg:   cfg,
		board: core.Size{W: cfg.Width, H: cfg.Height},
		log:   log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = core.NewRNG(cfg.Seed)
	}
	s.Reset()
	return s, nil
}

// Config returns the configuration the state was built with.
func (s *State) Config() Config { return s.cfg }

// Reset starts a new run: snake centred and heading right, score zero and a
// fresh apple. The session best survives.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	unit := s.cfg.Unit
	last := s.board.Cells(unit)
	head := core.Point{
		X: min(alignDown(s.board.W/2, unit), (last.W-1)*unit),
		Y: min(alignDown(s.board.H/2+unit/2, unit), (last.H-1)*unit),
	}
	if cap(s.body) < s.cfg.InitialLength {
		s.body = make([]core.Point, s.cfg.InitialLength)
	}
	s.body = s.body[:s.cfg.InitialLength]
	// The tail starts coiled under the head and unrolls over the first ticks.
	for i := range s.body {
		s.body[i] = head
	}

	s.heading = Right
	s.pending = Right
	s.score = 0
	s.run = Running
	s.cause = CauseNone
	s.ticks = 0
	s.runID = uuid.NewString()
	s.placeApple()

	s.log.Printf("run %s started: head=%v apple=%v", s.runID, head, s.apple)
}

// SetDirection queues d for the next tick. It is rejected when d reverses the
// heading applied on the last tick, not the queued one, or when the run is
// over, and reports whether it was taken. Two quick turns between ticks (Up
// then Down while heading Right) are therefore both accepted and the last
// one wins.
func (s *State) SetDirection(d Direction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.run == GameOver {
		return false
	}
	if d == s.heading.Opposite() {
		return false
	}
	s.pending = d
	return true
}

// Direction returns the heading the next tick will use.
func (s *State) Direction() Direction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// RunState reports whether the current run is still in progress.
func (s *State) RunState() RunState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.run
}

// Tick advances the run by one step. It is a no-op once the run is over.
func (s *State) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.run == GameOver {
		return
	}

	s.heading = s.pending

	tail := s.body[len(s.body)-1]
	for i := len(s.body) - 1; i > 0; i-- {
		s.body[i] = s.body[i-1]
	}
	dx, dy := s.heading.Delta(s.cfg.Unit)
	s.body[0] = s.body[0].Add(dx, dy)
	head := s.body[0]

	if head == s.apple {
		// The vacated tail cell becomes the new last segment.
		s.body = append(s.body, tail)
		s.score++
		if s.score > s.best {
			s.best = s.score
		}
		s.placeApple()
		s.log.Printf("run %s: apple eaten, score=%d length=%d", s.runID, s.score, len(s.body))
	}

	s.ticks++

	if cause := s.collision(head); cause != CauseNone {
		s.run = GameOver
		s.cause = cause
		s.log.Printf("run %s over: cause=%s score=%d ticks=%d", s.runID, cause, s.score, s.ticks)
	}
}

func (s *State) collision(head core.Point) Cause {
	for i := 1; i < len(s.body); i++ {
		if s.body[i] == head {
			return CauseSelf
		}
	}
	maxX, maxY := s.board.W, s.board.H
	if s.cfg.StrictBounds {
		maxX -= s.cfg.Unit
		maxY -= s.cfg.Unit
	}
	if head.X < 0 || head.X > maxX || head.Y < 0 || head.Y > maxY {
		return CauseWall
	}
	return CauseNone
}

// placeApple moves the apple to a random free cell. It samples at random
// first and falls back to scanning for free cells, so a crowded board still
// terminates. It reports false when no cell is free; the apple then stays put.
func (s *State) placeApple() bool {
	unit := s.cfg.Unit
	cells := s.board.Cells(unit)
	attempts := 4 * cells.W * cells.H
	for i := 0; i < attempts; i++ {
		p := s.rng.Cell(s.board, unit)
		if !s.occupied(p) {
			s.apple = p
			return true
		}
	}

	var free []core.Point
	for y := 0; y < cells.H; y++ {
		for x := 0; x < cells.W; x++ {
			p := core.Point{X: x * unit, Y: y * unit}
			if !s.occupied(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return false
	}
	s.apple = free[s.rng.IntN(len(free))]
	return true
}

func (s *State) occupied(p core.Point) bool {
	for _, b := range s.body {
		if b == p {
			return true
		}
	}
	return false
}

func alignDown(v, unit int) int {
	if unit <= 0 {
		return v
	}
	return v / unit * unit
}

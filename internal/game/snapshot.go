package game

import "gosnake/internal/core"

// Snapshot is a consistent, detached copy of a State. Renderers and
// spectators read snapshots and never touch the State itself.
type Snapshot struct {
	RunID     string       `json:"run_id"`
	Tick      uint64       `json:"tick"`
	Board     core.Size    `json:"board"`
	Unit      int          `json:"unit"`
	Body      []core.Point `json:"body"`
	Apple     core.Point   `json:"apple"`
	Direction Direction    `json:"direction"`
	Score     int          `json:"score"`
	Best      int          `json:"best"`
	State     RunState     `json:"state"`
	Cause     Cause        `json:"cause,omitempty"`
}

// Snapshot copies the current state under the lock.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		RunID:     s.runID,
		Tick:      s.ticks,
		Board:     s.board,
		Unit:      s.cfg.Unit,
		Body:      append([]core.Point(nil), s.body...),
		Apple:     s.apple,
		Direction: s.pending,
		Score:     s.score,
		Best:      s.best,
		State:     s.run,
		Cause:     s.cause,
	}
}

// Head returns the head segment.
func (s Snapshot) Head() core.Point {
	if len(s.Body) == 0 {
		return core.Point{}
	}
	return s.Body[0]
}

// Over reports whether the run has ended.
func (s Snapshot) Over() bool { return s.State == GameOver }

// Changed reports whether s differs from prev in a way a viewer can see.
func (s Snapshot) Changed(prev Snapshot) bool {
	return s.RunID != prev.RunID || s.Tick != prev.Tick || s.State != prev.State
}

package permcube

// Tracker wraps a Cube and reports each move to a listener, for renderers and
// animations that follow the cube.
type Tracker struct {
	cube     *Cube
	onMove   func(m Move, state State)
	onSolved func(moveCount int)
	count    int // moves since the last Reset
}

// NewTracker creates a new tracker starting from a solved state.
func NewTracker(opts ...Option) (*Tracker, error) {
	c, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return &Tracker{cube: c}, nil
}

// OnMove sets a callback that fires after each applied move with a copy of
// the new sticker state.
func (t *Tracker) OnMove(cb func(m Move, state State)) {
	t.onMove = cb
}

// OnSolved sets a callback that fires when a move returns the cube to
// solved.
func (t *Tracker) OnSolved(cb func(moveCount int)) {
	t.onSolved = cb
}

// Reset resets the tracker to a solved cube state.
func (t *Tracker) Reset() {
	t.cube.Reset()
	t.count = 0
}

// ApplyMove applies a move and notifies the listeners.
func (t *Tracker) ApplyMove(m Move) error {
	if err := t.cube.Apply(m); err != nil {
		return err
	}
	t.count++
	if t.onMove != nil {
		t.onMove(m, t.cube.State())
	}
	if t.onSolved != nil && t.cube.IsSolved() {
		t.onSolved(t.count)
	}
	return nil
}

// ApplyMoves applies multiple moves, stopping at the first error.
func (t *Tracker) ApplyMoves(moves []Move) error {
	for _, m := range moves {
		if err := t.ApplyMove(m); err != nil {
			return err
		}
	}
	return nil
}

// MoveCount returns the number of moves applied since the last Reset.
func (t *Tracker) MoveCount() int {
	return t.count
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

// Cube returns the underlying cube for inspection.
func (t *Tracker) Cube() *Cube {
	return t.cube
}

// CubeString returns a string representation of the cube.
func (t *Tracker) CubeString() string {
	return t.cube.String()
}

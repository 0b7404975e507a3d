package permcube

import "github.com/SeamusWaldron/permcube/internal/moves"

// Option configures a Cube.
type Option func(*config)

type config struct {
	table       *moves.Table
	moveHistory bool
}

func defaultConfig() *config {
	return &config{
		moveHistory: true,
	}
}

// WithTable shares a move table between cubes. Tables are safe for
// concurrent use; without this option each Cube builds its own.
func WithTable(t *moves.Table) Option {
	return func(c *config) {
		c.table = t
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), all moves are stored and accessible via Moves().
// Disable this for long sessions to reduce memory usage.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}

// NewTable returns a move table for WithTable.
func NewTable() *moves.Table {
	return moves.NewTable()
}

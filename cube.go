package permcube

import (
	"fmt"
	"strings"

	"github.com/SeamusWaldron/permcube/internal/cycles"
	"github.com/SeamusWaldron/permcube/internal/facelet"
	"github.com/SeamusWaldron/permcube/internal/moves"
	"github.com/SeamusWaldron/permcube/internal/orientation"
	"github.com/SeamusWaldron/permcube/internal/perm"
)

// State is a sticker labelling: State[i] is the label (1..48) at slot i.
type State = perm.State

// Permutation is a bijection on the 48 slots in pull form.
type Permutation = perm.Perm

// Orientation holds edge flips and corner twists.
type Orientation = orientation.State

// Cycle is one cycle of a permutation, as slot indices.
type Cycle = cycles.Cycle

// Color represents a face color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// faceColor returns the color of a face when solved. Faces are numbered in
// slot order: U D F B R L.
func faceColor(face int) Color {
	return Color(face)
}

// Cube is a 3x3x3 puzzle tracked as a sticker state, the permutation
// accumulated since the last Reset, and an orientation state. A Cube is not
// safe for concurrent use.
type Cube struct {
	cfg   *config
	table *moves.Table
	model *orientation.Model

	state  State
	acc    Permutation
	orient Orientation
	moves  []Move
}

// New creates a solved cube.
func New(opts ...Option) (*Cube, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	table := cfg.table
	if table == nil {
		table = moves.NewTable()
	}
	model, err := orientation.NewModel(table)
	if err != nil {
		return nil, err
	}
	c := &Cube{cfg: cfg, table: table, model: model}
	c.Reset()
	return c, nil
}

// Reset returns the cube to solved and clears the history.
func (c *Cube) Reset() {
	c.state = perm.Solved()
	c.acc = perm.Identity()
	c.orient = orientation.Solved()
	c.moves = nil
}

// Apply applies moves in order. On error the cube is left unchanged.
func (c *Cube) Apply(moves ...Move) error {
	state, acc, orient := c.state, c.acc, c.orient
	for _, m := range moves {
		p, err := c.table.ForMove(m)
		if err != nil {
			return err
		}
		if state, err = perm.Apply(state, p); err != nil {
			return err
		}
		if acc, err = perm.Compose(acc, p); err != nil {
			return err
		}
		if orient, err = c.model.Apply(m, orient); err != nil {
			return err
		}
	}
	c.state, c.acc, c.orient = state, acc, orient
	if c.cfg.moveHistory {
		c.moves = append(c.moves, moves...)
	}
	return nil
}

// ApplyNotation parses s and applies it. Nothing is applied if any token is
// invalid.
func (c *Cube) ApplyNotation(s string) error {
	mvs, err := ParseMoves(s)
	if err != nil {
		return err
	}
	return c.Apply(mvs...)
}

// State returns a copy of the sticker state.
func (c *Cube) State() State {
	return c.state.Clone()
}

// Permutation returns a copy of the permutation accumulated since Reset.
func (c *Cube) Permutation() Permutation {
	return c.acc.Clone()
}

// Orientation returns the orientation state.
func (c *Cube) Orientation() Orientation {
	return c.orient
}

// IsSolved returns true if every sticker is home.
func (c *Cube) IsSolved() bool {
	return c.state.IsSolved()
}

// Moves returns a copy of the move history. It is empty when history is
// disabled.
func (c *Cube) Moves() []Move {
	return append([]Move(nil), c.moves...)
}

// Cycles decomposes the accumulated permutation, longest cycles first.
func (c *Cube) Cycles(includeFixed bool) ([]Cycle, error) {
	return cycles.Decompose(c.acc, includeFixed)
}

// Signature describes the cycle structure, for example "4^5 1^28".
func (c *Cube) Signature() (string, error) {
	cs, err := cycles.Decompose(c.acc, true)
	if err != nil {
		return "", err
	}
	return cycles.Signature(cycles.BucketByLength(cs)), nil
}

// Order returns how many times the accumulated sequence must be repeated to
// return to solved.
func (c *Cube) Order() (int, error) {
	cs, err := cycles.Decompose(c.acc, false)
	if err != nil {
		return 0, err
	}
	return cycles.Order(cs), nil
}

// Facelets returns the colors on each face in slot face order (U D F B R L),
// with each face read row by row as seen from outside. Index 4 is the center.
func (c *Cube) Facelets() [6][9]Color {
	var out [6][9]Color
	for f, face := range facelet.SlotFaces {
		for pos := 0; pos < 9; pos++ {
			if pos == 4 {
				out[f][pos] = faceColor(f)
				continue
			}
			slot := facelet.MustIndex(face, pos%3-1, 1-pos/3)
			// Labels are 1-based and slot-major, so label-1 is the home slot.
			out[f][pos] = faceColor((c.state[slot] - 1) / 8)
		}
	}
	return out
}

// String returns an unfolded net of the cube.
func (c *Cube) String() string {
	const (
		u, d, f, b, r, l = 0, 1, 2, 3, 4, 5
	)
	fl := c.Facelets()
	var sb strings.Builder

	// U face (indented)
	for row := 0; row < 3; row++ {
		sb.WriteString("      ")
		for col := 0; col < 3; col++ {
			sb.WriteString(fl[u][row*3+col].String() + " ")
		}
		sb.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []int{l, f, r, b} {
			for col := 0; col < 3; col++ {
				sb.WriteString(fl[face][row*3+col].String() + " ")
			}
		}
		sb.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		sb.WriteString("      ")
		for col := 0; col < 3; col++ {
			sb.WriteString(fl[d][row*3+col].String() + " ")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// Debug returns a one-line summary.
func (c *Cube) Debug() string {
	return fmt.Sprintf("Solved: %v Moves: %d Orientation: %s", c.IsSolved(), len(c.moves), c.orient)
}

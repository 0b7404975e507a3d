// Package moves builds face-turn permutations from precomputed ring and belt
// cycles and memoizes them per face.
//
// A quarter turn rotates the face's own 8-sticker ring by two positions and
// the 12-sticker belt of neighbouring stickers by three positions. Prime and
// double turns are derived algebraically from the quarter turn.
package moves

import (
	"errors"
	"fmt"
	"sync"

	"github.com/SeamusWaldron/permcube/internal/perm"
	"github.com/SeamusWaldron/permcube/pkg/types"
)

// ErrUnknownFace is returned for a face outside U D L R F B.
var ErrUnknownFace = errors.New("moves: unknown face")

func unknownFace(f types.Face) error {
	return fmt.Errorf("%w: %q", ErrUnknownFace, f)
}

// Table memoizes quarter-turn permutations per face. The zero value is not
// usable; create one with NewTable. A Table is safe for concurrent use, and
// every accessor returns a fresh copy so cached permutations stay immutable.
type Table struct {
	quarter map[types.Face]func() (perm.Perm, error)
}

// NewTable returns an empty table. Each face is built on first use.
func NewTable() *Table {
	t := &Table{quarter: make(map[types.Face]func() (perm.Perm, error), len(types.Faces))}
	for _, f := range types.Faces {
		t.quarter[f] = sync.OnceValues(func() (perm.Perm, error) {
			return buildQuarter(f)
		})
	}
	return t
}

func buildQuarter(f types.Face) (perm.Perm, error) {
	p := perm.Identity()
	rotateCycle(p, ringIdx[f], 2)
	rotateCycle(p, beltIdx[f], 3)
	if err := perm.Validate(p); err != nil {
		return nil, fmt.Errorf("quarter %s: %w", f, err)
	}
	return p, nil
}

func (t *Table) cached(f types.Face) (perm.Perm, error) {
	build, ok := t.quarter[f]
	if !ok {
		return nil, unknownFace(f)
	}
	return build()
}

// Quarter returns the clockwise quarter turn of face f.
func (t *Table) Quarter(f types.Face) (perm.Perm, error) {
	p, err := t.cached(f)
	if err != nil {
		return nil, err
	}
	return p.Clone(), nil
}

// Prime returns the counter-clockwise quarter turn of face f, the inverse of
// Quarter(f).
func (t *Table) Prime(f types.Face) (perm.Perm, error) {
	p, err := t.cached(f)
	if err != nil {
		return nil, err
	}
	return perm.Invert(p)
}

// Double returns the half turn of face f, Quarter(f) composed with itself.
func (t *Table) Double(f types.Face) (perm.Perm, error) {
	p, err := t.cached(f)
	if err != nil {
		return nil, err
	}
	return perm.Compose(p, p)
}

// ForMove selects Quarter, Prime or Double according to the move's turn.
func (t *Table) ForMove(m types.Move) (perm.Perm, error) {
	switch m.Turn {
	case types.TurnCW:
		return t.Quarter(m.Face)
	case types.TurnCCW:
		return t.Prime(m.Face)
	case types.Turn180:
		return t.Double(m.Face)
	default:
		return nil, fmt.Errorf("moves: invalid turn %d for %s", m.Turn, m.Face)
	}
}

// Sequence composes moves left to right into one permutation: applying the
// result equals applying each move in order.
func (t *Table) Sequence(moves []types.Move) (perm.Perm, error) {
	acc := perm.Identity()
	for i, m := range moves {
		p, err := t.ForMove(m)
		if err != nil {
			return nil, fmt.Errorf("move %d (%s): %w", i, m, err)
		}
		acc, err = perm.Compose(acc, p)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

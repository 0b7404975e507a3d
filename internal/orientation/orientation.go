// Package orientation tracks edge flip parity and corner twist across face
// turns.
//
// Orientation values live in position slots: 12 edge slots and 8 corner
// slots, each identified by the centre of the cubie occupying it. A turn
// carries every value along with its cubie and then adds the face's delta
// to the slots of the turning layer.
package orientation

import (
	"errors"
	"fmt"

	"github.com/SeamusWaldron/permcube/internal/moves"
	"github.com/SeamusWaldron/permcube/internal/perm"
	"github.com/SeamusWaldron/permcube/pkg/types"
)

// Sentinel errors for the orientation package.
var (
	ErrParity = errors.New("orientation: edge parity sum is odd")
	ErrTwist  = errors.New("orientation: corner twist sum is not a multiple of 3")
)

const (
	NumEdges   = 12
	NumCorners = 8
)

// State holds one flip bit per edge slot and one twist in {0,1,2} per corner
// slot.
type State struct {
	Edges   [NumEdges]uint8
	Corners [NumCorners]uint8
}

// Solved returns the all-zero orientation.
func Solved() State {
	return State{}
}

// IsSolved reports whether every value is zero.
func (s State) IsSolved() bool {
	return s == State{}
}

// EdgeDelta is the edge flip a quarter turn of f adds per layer edge.
func EdgeDelta(f types.Face) uint8 {
	if f == types.FaceF || f == types.FaceB {
		return 1
	}
	return 0
}

// CornerDelta is the signed corner twist a quarter turn of f applies.
func CornerDelta(f types.Face) int {
	switch f {
	case types.FaceF, types.FaceB:
		return 1
	case types.FaceR, types.FaceL:
		return -1
	default:
		return 0
	}
}

// EdgeParitySum returns the sum of edge flips mod 2.
func EdgeParitySum(s State) int {
	sum := 0
	for _, e := range s.Edges {
		sum += int(e)
	}
	return sum % 2
}

// CornerTwistSum returns the sum of corner twists mod 3.
func CornerTwistSum(s State) int {
	sum := 0
	for _, c := range s.Corners {
		sum += int(c)
	}
	return sum % 3
}

// Check verifies the conservation laws every reachable state obeys.
func Check(s State) error {
	if EdgeParitySum(s) != 0 {
		return ErrParity
	}
	if CornerTwistSum(s) != 0 {
		return ErrTwist
	}
	return nil
}

func (s State) String() string {
	return fmt.Sprintf("edges=%v corners=%v", s.Edges, s.Corners)
}

// faceMove is the precomputed action of one clockwise quarter turn.
type faceMove struct {
	edgeSrc   [NumEdges]int   // value at slot d comes from edgeSrc[d]
	cornerSrc [NumCorners]int // value at slot d comes from cornerSrc[d]

	edgeSlots   [4]int // layer edges, ring order
	cornerSlots [4]int // layer corners, ring order
	edgeDelta   uint8
	cornerDelta int
}

// Model applies moves to orientation states. It is immutable after
// NewModel and safe for concurrent use.
type Model struct {
	faces map[types.Face]*faceMove
}

// NewModel derives each face's slot carry from the table's quarter turns.
func NewModel(tbl *moves.Table) (*Model, error) {
	m := &Model{faces: make(map[types.Face]*faceMove, len(types.Faces))}
	for _, f := range types.Faces {
		q, err := tbl.Quarter(f)
		if err != nil {
			return nil, err
		}
		ring, err := moves.Ring(f)
		if err != nil {
			return nil, err
		}
		fm, err := buildFaceMove(f, q, ring)
		if err != nil {
			return nil, err
		}
		m.faces[f] = fm
	}
	return m, nil
}

func buildFaceMove(f types.Face, q perm.Perm, ring []int) (*faceMove, error) {
	fm := &faceMove{edgeDelta: EdgeDelta(f), cornerDelta: CornerDelta(f)}
	for i := range fm.edgeSrc {
		fm.edgeSrc[i] = i
	}
	for i := range fm.cornerSrc {
		fm.cornerSrc[i] = i
	}

	// Every moving sticker reports which slot its cubie came from.
	for dst, src := range q {
		if dst == src {
			continue
		}
		to, err := SlotOf(dst)
		if err != nil {
			return nil, err
		}
		from, err := SlotOf(src)
		if err != nil {
			return nil, err
		}
		if to.Kind != from.Kind {
			return nil, fmt.Errorf("orientation: %s moves sticker %d from %s to %s", f, src, from.Kind, to.Kind)
		}
		if to.Kind == Edge {
			fm.edgeSrc[to.Index] = from.Index
		} else {
			fm.cornerSrc[to.Index] = from.Index
		}
	}

	// Ring positions alternate corner, edge, corner, ...
	for k, idx := range ring {
		slot, err := SlotOf(idx)
		if err != nil {
			return nil, err
		}
		if k%2 == 0 {
			fm.cornerSlots[k/2] = slot.Index
		} else {
			fm.edgeSlots[k/2] = slot.Index
		}
	}
	return fm, nil
}

func mod3(v int) uint8 {
	return uint8(((v % 3) + 3) % 3)
}

// cornerSign alternates the twist around the layer so that one quarter turn
// adds a total of zero mod 3.
func cornerSign(k int) int {
	if k%2 == 0 {
		return 1
	}
	return -1
}

func (fm *faceMove) quarter(s State) State {
	var out State
	for d, src := range fm.edgeSrc {
		out.Edges[d] = s.Edges[src]
	}
	for d, src := range fm.cornerSrc {
		out.Corners[d] = s.Corners[src]
	}
	fm.addDelta(&out, 1)
	return out
}

func (fm *faceMove) prime(s State) State {
	x := s
	fm.addDelta(&x, -1)
	var out State
	for d, src := range fm.edgeSrc {
		out.Edges[src] = x.Edges[d]
	}
	for d, src := range fm.cornerSrc {
		out.Corners[src] = x.Corners[d]
	}
	return out
}

// addDelta adds sign times the face delta to the layer slots.
func (fm *faceMove) addDelta(s *State, sign int) {
	for _, e := range fm.edgeSlots {
		s.Edges[e] = (s.Edges[e] + fm.edgeDelta) % 2
	}
	for k, c := range fm.cornerSlots {
		s.Corners[c] = mod3(int(s.Corners[c]) + sign*cornerSign(k)*fm.cornerDelta)
	}
}

func (m *Model) face(f types.Face) (*faceMove, error) {
	fm, ok := m.faces[f]
	if !ok {
		return nil, fmt.Errorf("%w: %q", moves.ErrUnknownFace, f)
	}
	return fm, nil
}

// Quarter applies a clockwise quarter turn of f.
func (m *Model) Quarter(f types.Face, s State) (State, error) {
	fm, err := m.face(f)
	if err != nil {
		return State{}, err
	}
	return fm.quarter(s), nil
}

// Prime applies a counter-clockwise quarter turn of f: the negated delta,
// carried back through the inverse permutation.
func (m *Model) Prime(f types.Face, s State) (State, error) {
	fm, err := m.face(f)
	if err != nil {
		return State{}, err
	}
	return fm.prime(s), nil
}

// Double applies a half turn of f.
func (m *Model) Double(f types.Face, s State) (State, error) {
	fm, err := m.face(f)
	if err != nil {
		return State{}, err
	}
	return fm.quarter(fm.quarter(s)), nil
}

// Apply applies one move token.
func (m *Model) Apply(mv types.Move, s State) (State, error) {
	switch mv.Turn {
	case types.TurnCW:
		return m.Quarter(mv.Face, s)
	case types.TurnCCW:
		return m.Prime(mv.Face, s)
	case types.Turn180:
		return m.Double(mv.Face, s)
	default:
		return State{}, fmt.Errorf("orientation: invalid turn %d for %s", mv.Turn, mv.Face)
	}
}

// ApplySequence applies moves in order.
func (m *Model) ApplySequence(mvs []types.Move, s State) (State, error) {
	for i, mv := range mvs {
		var err error
		s, err = m.Apply(mv, s)
		if err != nil {
			return State{}, fmt.Errorf("move %d: %w", i, err)
		}
	}
	return s, nil
}

// LayerSlots returns the edge and corner slots carried by a turn of f.
func (m *Model) LayerSlots(f types.Face) (edges, corners [4]int, err error) {
	fm, err := m.face(f)
	if err != nil {
		return edges, corners, err
	}
	return fm.edgeSlots, fm.cornerSlots, nil
}

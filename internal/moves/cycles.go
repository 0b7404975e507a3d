package moves

import (
	"github.com/SeamusWaldron/permcube/internal/facelet"
	"github.com/SeamusWaldron/permcube/pkg/types"
)

type coord struct {
	face types.Face
	a, b int
}

// ring lists a face's 8 border stickers clockwise from the top-left corner.
func ring(f types.Face) []coord {
	return []coord{
		{f, -1, 1}, {f, 0, 1}, {f, 1, 1},
		{f, 1, 0},
		{f, 1, -1}, {f, 0, -1}, {f, -1, -1},
		{f, -1, 0},
	}
}

// row runs left to right along row b of face f.
func row(f types.Face, b int) []coord {
	return []coord{{f, -1, b}, {f, 0, b}, {f, 1, b}}
}

// col runs top to bottom along column a of face f.
func col(f types.Face, a int) []coord {
	return []coord{{f, a, 1}, {f, a, 0}, {f, a, -1}}
}

func rev(c []coord) []coord {
	out := make([]coord, len(c))
	for i, x := range c {
		out[len(c)-1-i] = x
	}
	return out
}

func concat(parts ...[]coord) []coord {
	var out []coord
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// belts holds, per face, the 12 neighbouring stickers that travel with a
// quarter turn. Block k (three stickers) lands on block k+1 element by
// element under a clockwise turn.
var belts = map[types.Face][]coord{
	types.FaceU: concat(row(types.FaceF, 1), row(types.FaceL, 1), row(types.FaceB, 1), row(types.FaceR, 1)),
	types.FaceD: concat(row(types.FaceF, -1), row(types.FaceR, -1), row(types.FaceB, -1), row(types.FaceL, -1)),
	types.FaceF: concat(row(types.FaceU, -1), col(types.FaceR, -1), rev(row(types.FaceD, 1)), rev(col(types.FaceL, 1))),
	types.FaceB: concat(row(types.FaceU, 1), rev(col(types.FaceL, -1)), rev(row(types.FaceD, -1)), col(types.FaceR, 1)),
	types.FaceR: concat(col(types.FaceU, 1), rev(col(types.FaceB, -1)), col(types.FaceD, 1), col(types.FaceF, 1)),
	types.FaceL: concat(col(types.FaceU, -1), col(types.FaceF, -1), col(types.FaceD, -1), rev(col(types.FaceB, 1))),
}

func indices(cs []coord) []int {
	out := make([]int, len(cs))
	for i, c := range cs {
		out[i] = facelet.MustIndex(c.face, c.a, c.b)
	}
	return out
}

var (
	ringIdx = map[types.Face][]int{}
	beltIdx = map[types.Face][]int{}
)

func init() {
	for _, f := range types.Faces {
		ringIdx[f] = indices(ring(f))
		beltIdx[f] = indices(belts[f])
	}
}

// Ring returns the 8-slot ring cycle of face f in clockwise order.
func Ring(f types.Face) ([]int, error) {
	r, ok := ringIdx[f]
	if !ok {
		return nil, unknownFace(f)
	}
	return append([]int(nil), r...), nil
}

// Belt returns the 12-slot belt cycle of face f in turning order.
func Belt(f types.Face) ([]int, error) {
	b, ok := beltIdx[f]
	if !ok {
		return nil, unknownFace(f)
	}
	return append([]int(nil), b...), nil
}

// rotateCycle writes into p the remap that carries indices[k] to
// indices[k+step].
func rotateCycle(p []int, indices []int, step int) {
	n := len(indices)
	for k, src := range indices {
		p[indices[(k+step)%n]] = src
	}
}

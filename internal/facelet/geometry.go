package facelet

import (
	"fmt"

	"github.com/SeamusWaldron/permcube/internal/perm"
	"github.com/SeamusWaldron/permcube/pkg/types"
)

// Position returns the 3D coordinate of s: 3N + 2(A*U + B*V).
// The face axis component is +-3 and the others lie in {-2, 0, 2}, so the
// three stickers of a corner cubie never share a coordinate.
func Position(s Sticker) (Vec3, error) {
	b, err := FaceBasis(s.Face)
	if err != nil {
		return Vec3{}, err
	}
	return b.N.scale(3).add(b.U.scale(2 * s.A)).add(b.V.scale(2 * s.B)), nil
}

// Cubie returns the centre of the cubie that carries s: N + A*U + B*V.
func Cubie(s Sticker) (Vec3, error) {
	b, err := FaceBasis(s.Face)
	if err != nil {
		return Vec3{}, err
	}
	return b.N.add(b.U.scale(s.A)).add(b.V.scale(s.B)), nil
}

// StickerAt projects a sticker coordinate back onto the face plane it lies
// on.
func StickerAt(p Vec3) (Sticker, error) {
	for _, f := range SlotFaces {
		b := bases[f]
		if p.dot(b.N) != 3 {
			continue
		}
		q := p.add(b.N.scale(-3))
		return Sticker{Face: f, A: q.dot(b.U) / 2, B: q.dot(b.V) / 2}, nil
	}
	return Sticker{}, fmt.Errorf("%w: %v is not on a face plane", ErrBadCoordinate, p)
}

// onLayer reports whether coordinate p belongs to the layer of the face with
// normal n.
func onLayer(p, n Vec3) bool {
	return p.dot(n) >= 2
}

// rotateCW turns p by 90 degrees about n, clockwise as seen from outside the
// face n points out of.
func rotateCW(p, n Vec3) Vec3 {
	return n.scale(p.dot(n)).add(n.cross(p).scale(-1))
}

// Quarter54 returns, for a clockwise quarter turn of face f, the
// destination of every sticker in the 54-sticker scheme: out[src] = dst.
func Quarter54(f types.Face) ([54]int, error) {
	var out [54]int
	b, err := FaceBasis(f)
	if err != nil {
		return out, err
	}
	for k := 0; k < 54; k++ {
		s, _ := Facelet54(k)
		p, _ := Position(s)
		if onLayer(p, b.N) {
			p = rotateCW(p, b.N)
		}
		dst, err := StickerAt(p)
		if err != nil {
			return out, err
		}
		out[k], err = FaceletIndex54(dst)
		if err != nil {
			return out, err
		}
	}
	return out, nil
}

// Reduce drops the six centers from a 54-sticker destination map and
// returns the equivalent pull permutation over the 48 slots: P[dst] = src.
func Reduce(dest [54]int) (perm.Perm, error) {
	for _, c := range Centers54 {
		if dest[c] != c {
			return nil, fmt.Errorf("%w: facelet %d -> %d", ErrCenterMoved, c, dest[c])
		}
	}
	p := make(perm.Perm, perm.Size)
	for i := range p {
		p[i] = -1
	}
	for src := 0; src < perm.Size; src++ {
		k, err := ToFacelet54(src)
		if err != nil {
			return nil, err
		}
		dst, ok := FromFacelet54(dest[k])
		if !ok {
			return nil, fmt.Errorf("%w: facelet %d lands on a center", ErrCenterMoved, k)
		}
		p[dst] = src
	}
	if err := perm.Validate(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Quarter derives the clockwise quarter turn of face f geometrically, in the
// 48-slot numbering.
func Quarter(f types.Face) (perm.Perm, error) {
	dest, err := Quarter54(f)
	if err != nil {
		return nil, err
	}
	return Reduce(dest)
}

// Package facelet assigns every sticker a 3D coordinate and derives face
// turns geometrically. It is the ground truth the fast ring/belt generator in
// package moves is checked against.
//
// Two numberings exist:
//
//   - the full 54-sticker scheme, faces U R F D L B at bases 0, 9, 18, 27,
//     36, 45 with sticker base + 3*row + col;
//   - the 48-slot scheme, faces U D F B R L with 8 slots each and centers
//     removed.
//
// Both are keyed by the same (face, a, b) triple, where a and b are the
// offsets along the face's u and v basis vectors as seen from outside. That
// triple is the crosswalk between the two.
package facelet

import (
	"errors"
	"fmt"

	"github.com/SeamusWaldron/permcube/internal/perm"
	"github.com/SeamusWaldron/permcube/pkg/types"
)

// Sentinel errors for the facelet package.
var (
	ErrUnknownFace   = errors.New("facelet: unknown face")
	ErrBadCoordinate = errors.New("facelet: no sticker at coordinate")
	ErrCenterMoved   = errors.New("facelet: center sticker moved")
)

// Vec3 is an integer 3D vector.
type Vec3 [3]int

func (a Vec3) add(b Vec3) Vec3   { return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }
func (a Vec3) scale(k int) Vec3  { return Vec3{a[0] * k, a[1] * k, a[2] * k} }
func (a Vec3) dot(b Vec3) int    { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }
func (a Vec3) cross(b Vec3) Vec3 { return Vec3{a[1]*b[2] - a[2]*b[1], a[2]*b[0] - a[0]*b[2], a[0]*b[1] - a[1]*b[0]} }

// Basis is a face frame: U and V span the face as seen from outside, N is the
// outward normal. U x V = N for every face.
type Basis struct {
	U, V, N Vec3
}

var bases = map[types.Face]Basis{
	types.FaceU: {U: Vec3{1, 0, 0}, V: Vec3{0, 0, -1}, N: Vec3{0, 1, 0}},
	types.FaceD: {U: Vec3{1, 0, 0}, V: Vec3{0, 0, 1}, N: Vec3{0, -1, 0}},
	types.FaceF: {U: Vec3{1, 0, 0}, V: Vec3{0, 1, 0}, N: Vec3{0, 0, 1}},
	types.FaceB: {U: Vec3{-1, 0, 0}, V: Vec3{0, 1, 0}, N: Vec3{0, 0, -1}},
	types.FaceR: {U: Vec3{0, 0, -1}, V: Vec3{0, 1, 0}, N: Vec3{1, 0, 0}},
	types.FaceL: {U: Vec3{0, 0, 1}, V: Vec3{0, 1, 0}, N: Vec3{-1, 0, 0}},
}

// FaceBasis returns the frame of face f.
func FaceBasis(f types.Face) (Basis, error) {
	b, ok := bases[f]
	if !ok {
		return Basis{}, fmt.Errorf("%w: %q", ErrUnknownFace, f)
	}
	return b, nil
}

// SlotFaces is the face order of the 48-slot scheme.
var SlotFaces = [6]types.Face{types.FaceU, types.FaceD, types.FaceF, types.FaceB, types.FaceR, types.FaceL}

// LocalCoords lists the (a, b) offsets of a face's 8 slots in slot order.
var LocalCoords = [8][2]int{
	{-1, 1}, {0, 1}, {1, 1},
	{-1, 0}, {1, 0},
	{-1, -1}, {0, -1}, {1, -1},
}

// facelet54Faces is the face order of the 54-sticker scheme.
var facelet54Faces = [6]types.Face{types.FaceU, types.FaceR, types.FaceF, types.FaceD, types.FaceL, types.FaceB}

// Sticker identifies one sticker by face and local offsets.
type Sticker struct {
	Face types.Face
	A, B int
}

func (s Sticker) String() string {
	return fmt.Sprintf("%s(%d,%d)", s.Face, s.A, s.B)
}

// Index returns the 48-slot index of the sticker at (a, b) on face f.
func Index(f types.Face, a, b int) (int, error) {
	base := -1
	for i, sf := range SlotFaces {
		if sf == f {
			base = i * 8
			break
		}
	}
	if base < 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFace, f)
	}
	for k, c := range LocalCoords {
		if c[0] == a && c[1] == b {
			return base + k, nil
		}
	}
	return 0, fmt.Errorf("%w: %s(%d,%d)", ErrBadCoordinate, f, a, b)
}

// MustIndex is Index for static tables; it panics on a bad coordinate.
func MustIndex(f types.Face, a, b int) int {
	i, err := Index(f, a, b)
	if err != nil {
		panic(err)
	}
	return i
}

// Describe returns the sticker at 48-slot index i.
func Describe(i int) (Sticker, error) {
	if i < 0 || i >= perm.Size {
		return Sticker{}, fmt.Errorf("%w: slot %d", ErrBadCoordinate, i)
	}
	c := LocalCoords[i%8]
	return Sticker{Face: SlotFaces[i/8], A: c[0], B: c[1]}, nil
}

// Facelet54 returns the sticker at index k of the 54-sticker scheme.
func Facelet54(k int) (Sticker, error) {
	if k < 0 || k >= 54 {
		return Sticker{}, fmt.Errorf("%w: facelet %d", ErrBadCoordinate, k)
	}
	r := k % 9
	row, col := r/3, r%3
	return Sticker{Face: facelet54Faces[k/9], A: col - 1, B: 1 - row}, nil
}

// FaceletIndex54 returns the 54-scheme index of s.
func FaceletIndex54(s Sticker) (int, error) {
	if s.A < -1 || s.A > 1 || s.B < -1 || s.B > 1 {
		return 0, fmt.Errorf("%w: %s", ErrBadCoordinate, s)
	}
	for i, f := range facelet54Faces {
		if f == s.Face {
			return i*9 + (1-s.B)*3 + (s.A + 1), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFace, s.Face)
}

// IsCenter reports whether s is a face center.
func (s Sticker) IsCenter() bool {
	return s.A == 0 && s.B == 0
}

// Centers54 lists the center indices of the 54-sticker scheme.
var Centers54 = [6]int{4, 13, 22, 31, 40, 49}

// FromFacelet54 maps a 54-scheme index to its 48-slot index. Centers have
// no slot.
func FromFacelet54(k int) (int, bool) {
	s, err := Facelet54(k)
	if err != nil || s.IsCenter() {
		return 0, false
	}
	i, err := Index(s.Face, s.A, s.B)
	if err != nil {
		return 0, false
	}
	return i, true
}

// ToFacelet54 maps a 48-slot index to its 54-scheme index.
func ToFacelet54(i int) (int, error) {
	s, err := Describe(i)
	if err != nil {
		return 0, err
	}
	return FaceletIndex54(s)
}

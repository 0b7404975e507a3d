// Package tesseract builds the 4-cube wireframe and poses it with two plane
// rotations from package r4.
package tesseract

import (
	"fmt"
	"strings"

	"github.com/SeamusWaldron/permcube/internal/r4"
)

const (
	// NumVertices is the number of corners of the 4-cube.
	NumVertices = 16
	// NumEdges is the number of edges of the 4-cube.
	NumEdges = 32
)

// Edge joins two vertex indices that differ in exactly one coordinate.
type Edge [2]int

// Index returns the vertex index for bits (x, y, z, w) in {0, 1}.
func Index(x, y, z, w int) int {
	return x*8 + y*4 + z*2 + w
}

// Vertices returns the 16 corners (±1, ±1, ±1, ±1) in index order.
func Vertices() []r4.Vec4 {
	out := make([]r4.Vec4, NumVertices)
	for i := range out {
		for axis := 0; axis < 4; axis++ {
			bit := (i >> (3 - axis)) & 1
			out[i][axis] = float64(2*bit - 1)
		}
	}
	return out
}

// Edges returns the 32 edges, each listed from its -1 end to its +1 end.
func Edges() []Edge {
	out := make([]Edge, 0, NumEdges)
	for i := 0; i < NumVertices; i++ {
		for axis := 0; axis < 4; axis++ {
			bit := 1 << (3 - axis)
			if i&bit == 0 {
				out = append(out, Edge{i, i | bit})
			}
		}
	}
	return out
}

// DoublePlane names the two rotation planes: (I, J) is applied first, then
// (K, L).
type DoublePlane struct {
	I, J, K, L r4.Axis
}

// DefaultPlanes rotates in xy then zw.
var DefaultPlanes = DoublePlane{I: r4.X, J: r4.Y, K: r4.Z, L: r4.W}

// Validate checks that both planes use in-range, distinct axes.
func (p DoublePlane) Validate() error {
	_, err := r4.RotDouble(p.I, p.J, 0, p.K, p.L, 0)
	return err
}

func (p DoublePlane) String() string {
	return fmt.Sprintf("%s%s,%s%s", p.I, p.J, p.K, p.L)
}

// ParsePlanes reads a pair like "xy,zw".
func ParsePlanes(s string) (DoublePlane, error) {
	parts := strings.Split(strings.ReplaceAll(s, " ", ""), ",")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return DoublePlane{}, fmt.Errorf("tesseract: planes %q: want two axis pairs like xy,zw", s)
	}
	var axes [4]r4.Axis
	for n, ch := range parts[0] + parts[1] {
		a, err := r4.ParseAxis(string(ch))
		if err != nil {
			return DoublePlane{}, fmt.Errorf("tesseract: planes %q: %w", s, err)
		}
		axes[n] = a
	}
	p := DoublePlane{I: axes[0], J: axes[1], K: axes[2], L: axes[3]}
	if err := p.Validate(); err != nil {
		return DoublePlane{}, fmt.Errorf("tesseract: planes %q: %w", s, err)
	}
	return p, nil
}

// Slab is the w window shown as a 3D cross-section.
type Slab struct {
	Center float64 `json:"center" yaml:"center"`
	Half   float64 `json:"half" yaml:"half"`
}

// Point is one posed vertex.
type Point struct {
	Index int        `json:"index" yaml:"index"`
	P4    r4.Vec4    `json:"p4" yaml:"p4"`
	P3    [3]float64 `json:"p3" yaml:"p3"`
	Alpha float64    `json:"alpha" yaml:"alpha"`
}

// Frame poses every vertex: p4 = R2*R1*v with R1 the (I, J) rotation by theta
// and R2 the (K, L) rotation by phi. P3 drops the w coordinate and Alpha is
// the slab weight of the rotated w.
func Frame(planes DoublePlane, theta, phi float64, slab Slab) ([]Point, error) {
	m, err := r4.RotDouble(planes.I, planes.J, theta, planes.K, planes.L, phi)
	if err != nil {
		return nil, err
	}
	verts := Vertices()
	out := make([]Point, len(verts))
	for i, v := range verts {
		p := r4.Mul4V(m, v)
		out[i] = Point{
			Index: i,
			P4:    p,
			P3:    [3]float64{p[0], p[1], p[2]},
			Alpha: r4.SlabAlpha(p[3], slab.Center, slab.Half),
		}
	}
	return out, nil
}

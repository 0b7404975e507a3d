package tesseract

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/permcube/internal/r4"
)

func TestVertices(t *testing.T) {
	verts := Vertices()
	require.Len(t, verts, NumVertices)
	assert.Equal(t, r4.Vec4{-1, -1, -1, -1}, verts[0])
	assert.Equal(t, r4.Vec4{1, 1, 1, 1}, verts[15])
	assert.Equal(t, r4.Vec4{1, -1, 1, -1}, verts[Index(1, 0, 1, 0)])

	seen := map[r4.Vec4]bool{}
	for _, v := range verts {
		assert.InDelta(t, 2.0, r4.Norm4(v), 1e-12)
		seen[v] = true
	}
	assert.Len(t, seen, NumVertices)
}

func TestEdges(t *testing.T) {
	edges := Edges()
	require.Len(t, edges, NumEdges)

	verts := Vertices()
	degree := make([]int, NumVertices)
	for _, e := range edges {
		diff := 0
		for axis := 0; axis < 4; axis++ {
			if verts[e[0]][axis] != verts[e[1]][axis] {
				diff++
			}
		}
		assert.Equal(t, 1, diff, "edge %v", e)
		assert.Less(t, e[0], e[1])
		degree[e[0]]++
		degree[e[1]]++
	}
	for i, d := range degree {
		assert.Equal(t, 4, d, "vertex %d", i)
	}
}

func TestParsePlanes(t *testing.T) {
	p, err := ParsePlanes("xy,zw")
	require.NoError(t, err)
	assert.Equal(t, DefaultPlanes, p)
	assert.Equal(t, "xy,zw", p.String())

	p, err = ParsePlanes("xw, yz")
	require.NoError(t, err)
	assert.Equal(t, DoublePlane{I: r4.X, J: r4.W, K: r4.Y, L: r4.Z}, p)

	_, err = ParsePlanes("xx,zw")
	assert.ErrorIs(t, err, r4.ErrDegeneratePlane)
	_, err = ParsePlanes("xq,zw")
	assert.ErrorIs(t, err, r4.ErrAxisRange)
	_, err = ParsePlanes("xyz")
	assert.Error(t, err)
}

func TestFrame_Identity(t *testing.T) {
	pts, err := Frame(DefaultPlanes, 0, 0, Slab{Center: 0, Half: 1.5})
	require.NoError(t, err)
	require.Len(t, pts, NumVertices)
	verts := Vertices()
	for i, p := range pts {
		assert.Equal(t, i, p.Index)
		assert.Equal(t, verts[i], p.P4)
		assert.Equal(t, [3]float64{verts[i][0], verts[i][1], verts[i][2]}, p.P3)
		// |w| = 1 sits in the falloff band of a 1.5 half-width slab.
		assert.Greater(t, p.Alpha, 0.0)
		assert.Less(t, p.Alpha, 1.0)
	}
}

func TestFrame_PreservesLengthAndEdges(t *testing.T) {
	planes := DoublePlane{I: r4.X, J: r4.W, K: r4.Y, L: r4.Z}
	pts, err := Frame(planes, 0.6, -1.3, Slab{Center: 0.2, Half: 0.8})
	require.NoError(t, err)
	for _, p := range pts {
		assert.InDelta(t, 2.0, r4.Norm4(p.P4), 1e-9)
		assert.GreaterOrEqual(t, p.Alpha, 0.0)
		assert.LessOrEqual(t, p.Alpha, 1.0)
	}
	for _, e := range Edges() {
		a, b := pts[e[0]].P4, pts[e[1]].P4
		d := r4.Vec4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
		assert.InDelta(t, 2.0, r4.Norm4(d), 1e-9)
	}
}

func TestFrame_QuarterTurnSwapsAxes(t *testing.T) {
	pts, err := Frame(DoublePlane{I: r4.X, J: r4.Y, K: r4.Z, L: r4.W}, 0, math.Pi/2, Slab{Half: 0.5})
	require.NoError(t, err)
	// z -> w: the vertex with z=+1, w=-1 ends at w=+1.
	p := pts[Index(0, 0, 1, 0)].P4
	assert.InDelta(t, 1.0, p[2], 1e-9)
	assert.InDelta(t, 1.0, p[3], 1e-9)
	assert.Equal(t, 0.0, pts[0].Alpha)
}

func TestFrame_InvalidPlanes(t *testing.T) {
	_, err := Frame(DoublePlane{I: r4.X, J: r4.X, K: r4.Z, L: r4.W}, 0, 0, Slab{})
	assert.ErrorIs(t, err, r4.ErrDegeneratePlane)
}

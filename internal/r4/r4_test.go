package r4

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var planes = [][2]Axis{{X, Y}, {X, Z}, {X, W}, {Y, Z}, {Y, W}, {Z, W}}

func assertVec(t *testing.T, want, got Vec4, eps float64) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], eps, "component %d", i)
	}
}

func TestIdentity4(t *testing.T) {
	I := Identity4()
	for _, e := range []Vec4{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}} {
		assertVec(t, e, Mul4V(I, e), 1e-12)
	}
	assert.Equal(t, 1.0, Det4(I))
	assert.True(t, IsOrthonormal4(I, 1e-12))
}

func TestRotPlane_ZeroIsIdentity(t *testing.T) {
	for _, p := range planes {
		R, err := RotPlane(p[0], p[1], 0)
		require.NoError(t, err)
		assert.True(t, ApproxEqual4(R, Identity4(), 1e-9), "R_%s%s(0)", p[0], p[1])
	}
}

func TestRotPlane_InverseAngle(t *testing.T) {
	theta := math.Pi * 0.37
	for _, p := range planes {
		R, _ := RotPlane(p[0], p[1], theta)
		Rinv, _ := RotPlane(p[0], p[1], -theta)
		assert.True(t, ApproxEqual4(Mul4(R, Rinv), Identity4(), 1e-8))
		assert.True(t, IsOrthonormal4(R, 1e-9))
		assert.InDelta(t, 1.0, Det4(R), 1e-8)
	}
}

func TestRotPlane_TransposeIsInverse(t *testing.T) {
	for _, p := range planes {
		R, _ := RotPlane(p[0], p[1], 1.234)
		assert.True(t, ApproxEqual4(Mul4(Transpose4(R), R), Identity4(), 1e-8))
		assert.True(t, ApproxEqual4(Mul4(R, Transpose4(R)), Identity4(), 1e-8))
	}
}

func TestRotPlane_ActsOnPlane(t *testing.T) {
	theta := math.Pi / 6
	c, s := math.Cos(theta), math.Sin(theta)
	R, err := RotPlane(Y, W, theta)
	require.NoError(t, err)

	assertVec(t, Vec4{0, c, 0, s}, Mul4V(R, Vec4{0, 1, 0, 0}), 1e-9)
	assertVec(t, Vec4{0, -s, 0, c}, Mul4V(R, Vec4{0, 0, 0, 1}), 1e-9)
	assertVec(t, Vec4{1, 0, 0, 0}, Mul4V(R, Vec4{1, 0, 0, 0}), 1e-12)

	v := Vec4{0, 2.0, 0, -1.5}
	assert.InDelta(t, Norm4(v), Norm4(Mul4V(R, v)), 1e-9)
}

func TestRotPlane_SamePlaneAddsAngles(t *testing.T) {
	th, ph := 0.7, -0.35
	a, _ := RotPlane(X, Z, th)
	b, _ := RotPlane(X, Z, ph)
	sum, _ := RotPlane(X, Z, th+ph)
	assert.True(t, ApproxEqual4(Mul4(b, a), sum, 1e-9))
	assert.True(t, ApproxEqual4(Mul4(a, b), sum, 1e-9))
}

func TestRotPlane_Errors(t *testing.T) {
	_, err := RotPlane(Z, Z, 1)
	assert.ErrorIs(t, err, ErrDegeneratePlane)
	_, err = RotPlane(X, 4, 1)
	assert.ErrorIs(t, err, ErrAxisRange)
	_, err = RotPlane(-1, X, 1)
	assert.ErrorIs(t, err, ErrAxisRange)
	_, err = RotDouble(X, Y, 1, W, W, 1)
	assert.ErrorIs(t, err, ErrDegeneratePlane)
}

func TestRotDouble(t *testing.T) {
	D, err := RotDouble(X, Y, 0.4, Z, W, 1.1)
	require.NoError(t, err)
	a, _ := RotPlane(X, Y, 0.4)
	b, _ := RotPlane(Z, W, 1.1)
	assert.True(t, ApproxEqual4(Mul4(b, a), D, 1e-12))
	assert.True(t, IsOrthonormal4(D, 1e-9))
	assert.InDelta(t, 1.0, Det4(D), 1e-8)

	// Order matters when the planes share an axis.
	E, _ := RotDouble(X, Y, 0.4, Y, Z, 1.1)
	F, _ := RotDouble(Y, Z, 1.1, X, Y, 0.4)
	assert.False(t, ApproxEqual4(E, F, 1e-6))
}

func TestDet4(t *testing.T) {
	m := Mat4{
		2, 0, 0, 0,
		0, 3, 0, 0,
		0, 0, 4, 0,
		0, 0, 0, 5,
	}
	assert.InDelta(t, 120.0, Det4(m), 1e-12)

	// Swapping two rows flips the sign.
	swap := Mat4{
		0, 1, 0, 0,
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	assert.InDelta(t, -1.0, Det4(swap), 1e-12)
	assert.True(t, IsOrthonormal4(swap, 1e-12))

	general := Mat4{
		1, 2, 3, 4,
		5, 6, 7, 8,
		2, 6, 4, 8,
		3, 1, 1, 2,
	}
	assert.InDelta(t, 72.0, Det4(general), 1e-9)
	assert.InDelta(t, Det4(general), Det4(Transpose4(general)), 1e-9)
}

func TestDotNorm(t *testing.T) {
	assert.Equal(t, 0.0, Dot4(Vec4{1, 0, 0, 0}, Vec4{0, 1, 0, 0}))
	assert.Equal(t, 30.0, Dot4(Vec4{1, 2, 3, 4}, Vec4{1, 2, 3, 4}))
	assert.InDelta(t, math.Sqrt(30), Norm4(Vec4{1, 2, 3, 4}), 1e-12)
}

func TestParseAxis(t *testing.T) {
	for s, want := range map[string]Axis{"x": X, "y": Y, "Z": Z, "w": W} {
		got, err := ParseAxis(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseAxis("q")
	assert.ErrorIs(t, err, ErrAxisRange)
}

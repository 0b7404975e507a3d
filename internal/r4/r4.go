// Package r4 provides 4x4 matrix and 4-vector algebra for rotations in four
// dimensions, plus the slab window used to highlight a 3D cross-section.
//
// Matrices are row-major: element (r, c) lives at index 4*r + c.
package r4

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for the r4 package.
var (
	ErrDegeneratePlane = errors.New("r4: rotation plane axes must differ")
	ErrAxisRange       = errors.New("r4: axis out of range")
)

// Axis names a coordinate: 0=x, 1=y, 2=z, 3=w.
type Axis int

const (
	X Axis = iota
	Y
	Z
	W
)

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	case W:
		return "w"
	default:
		return "?"
	}
}

// ParseAxis maps "x", "y", "z" or "w" to an Axis.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x", "X":
		return X, nil
	case "y", "Y":
		return Y, nil
	case "z", "Z":
		return Z, nil
	case "w", "W":
		return W, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrAxisRange, s)
}

// Vec4 is a 4-component vector.
type Vec4 [4]float64

// Mat4 is a row-major 4x4 matrix.
type Mat4 [16]float64

// Identity4 returns the identity matrix.
func Identity4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Transpose4 returns the transpose of a.
func Transpose4(a Mat4) Mat4 {
	var t Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			t[c*4+r] = a[r*4+c]
		}
	}
	return t
}

// Mul4 returns the matrix product a*b.
func Mul4(a, b Mat4) Mat4 {
	var m Mat4
	for r := 0; r < 4; r++ {
		r4 := r * 4
		for c := 0; c < 4; c++ {
			m[r4+c] = a[r4]*b[c] + a[r4+1]*b[4+c] + a[r4+2]*b[8+c] + a[r4+3]*b[12+c]
		}
	}
	return m
}

// Mul4V returns the product a*v.
func Mul4V(a Mat4, v Vec4) Vec4 {
	return Vec4{
		a[0]*v[0] + a[1]*v[1] + a[2]*v[2] + a[3]*v[3],
		a[4]*v[0] + a[5]*v[1] + a[6]*v[2] + a[7]*v[3],
		a[8]*v[0] + a[9]*v[1] + a[10]*v[2] + a[11]*v[3],
		a[12]*v[0] + a[13]*v[1] + a[14]*v[2] + a[15]*v[3],
	}
}

// Dot4 returns the dot product of a and b.
func Dot4(a, b Vec4) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

// Norm4 returns the Euclidean length of a.
func Norm4(a Vec4) float64 {
	return math.Sqrt(Dot4(a, a))
}

// Det4 returns the determinant of m by cofactor expansion along the first
// row.
func Det4(m Mat4) float64 {
	m00, m01, m02, m03 := m[0], m[1], m[2], m[3]
	m10, m11, m12, m13 := m[4], m[5], m[6], m[7]
	m20, m21, m22, m23 := m[8], m[9], m[10], m[11]
	m30, m31, m32, m33 := m[12], m[13], m[14], m[15]

	s0 := m22*m33 - m23*m32
	s1 := m21*m33 - m23*m31
	s2 := m21*m32 - m22*m31
	s3 := m20*m33 - m23*m30
	s4 := m20*m32 - m22*m30
	s5 := m20*m31 - m21*m30

	c0 := m11*s0 - m12*s1 + m13*s2
	c1 := -(m10*s0 - m12*s3 + m13*s4)
	c2 := m10*s1 - m11*s3 + m13*s5
	c3 := -(m10*s2 - m11*s4 + m12*s5)

	return m00*c0 + m01*c1 + m02*c2 + m03*c3
}

// ApproxEqual4 reports whether a and b agree element-wise within eps.
func ApproxEqual4(a, b Mat4, eps float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

// IsOrthonormal4 reports whether m^T * m is the identity within eps.
func IsOrthonormal4(m Mat4, eps float64) bool {
	return ApproxEqual4(Mul4(Transpose4(m), m), Identity4(), eps)
}

func checkAxis(a Axis) error {
	if a < X || a > W {
		return fmt.Errorf("%w: %d", ErrAxisRange, int(a))
	}
	return nil
}

// RotPlane returns the rotation by theta in the plane spanned by axes i and
// j, fixing the other two coordinates. It carries axis i towards axis j.
func RotPlane(i, j Axis, theta float64) (Mat4, error) {
	if err := checkAxis(i); err != nil {
		return Mat4{}, err
	}
	if err := checkAxis(j); err != nil {
		return Mat4{}, err
	}
	if i == j {
		return Mat4{}, fmt.Errorf("%w: %s%s", ErrDegeneratePlane, i, j)
	}
	c, s := math.Cos(theta), math.Sin(theta)
	m := Identity4()
	m[int(i)*4+int(i)] = c
	m[int(j)*4+int(j)] = c
	m[int(i)*4+int(j)] = -s
	m[int(j)*4+int(i)] = s
	return m, nil
}

// RotDouble applies the (i, j) rotation by theta and then the (k, l)
// rotation by phi: the result is RotPlane(k, l, phi) * RotPlane(i, j, theta).
func RotDouble(i, j Axis, theta float64, k, l Axis, phi float64) (Mat4, error) {
	a, err := RotPlane(i, j, theta)
	if err != nil {
		return Mat4{}, err
	}
	b, err := RotPlane(k, l, phi)
	if err != nil {
		return Mat4{}, err
	}
	return Mul4(b, a), nil
}

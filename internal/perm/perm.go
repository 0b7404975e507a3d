// Package perm implements permutation algebra over the 48 moving sticker
// slots of a 3x3x3 cube.
//
// A Perm is a pull remap: applying p to a state s yields s' with
// s'[i] = s[p[i]]. Composition follows the same convention,
// Compose(a, b)[i] = a[b[i]], so applying a and then b equals applying
// Compose(a, b) once.
package perm

import (
	"errors"
	"fmt"
)

// Size is the number of moving sticker slots (54 facelets minus 6 centers).
const Size = 48

// Sentinel errors for the perm package.
var (
	ErrLengthMismatch = errors.New("perm: length mismatch")
	ErrNotBijection   = errors.New("perm: not a bijection")
)

// Perm is an index permutation of length Size with values in [0, Size).
type Perm []int

// Identity returns the identity permutation [0, 1, ..., 47].
func Identity() Perm {
	p := make(Perm, Size)
	for i := range p {
		p[i] = i
	}
	return p
}

// Clone returns a copy of p.
func (p Perm) Clone() Perm {
	out := make(Perm, len(p))
	copy(out, p)
	return out
}

// Validate checks that p has length Size and is a bijection on [0, Size).
func Validate(p Perm) error {
	if len(p) != Size {
		return fmt.Errorf("%w: got %d, want %d", ErrLengthMismatch, len(p), Size)
	}
	var seen [Size]bool
	for i, v := range p {
		if v < 0 || v >= Size {
			return fmt.Errorf("%w: p[%d] = %d out of range", ErrNotBijection, i, v)
		}
		if seen[v] {
			return fmt.Errorf("%w: duplicate value %d at p[%d]", ErrNotBijection, v, i)
		}
		seen[v] = true
	}
	return nil
}

// Compose returns c with c[i] = a[b[i]]: b's remap is applied first, then a's.
func Compose(a, b Perm) (Perm, error) {
	if len(a) != Size || len(b) != Size {
		return nil, fmt.Errorf("%w: got %d and %d, want %d", ErrLengthMismatch, len(a), len(b), Size)
	}
	c := make(Perm, Size)
	for i := range c {
		v := b[i]
		if v < 0 || v >= Size {
			return nil, fmt.Errorf("%w: b[%d] = %d out of range", ErrNotBijection, i, v)
		}
		c[i] = a[v]
	}
	return c, nil
}

// Invert returns q with q[p[i]] = i.
func Invert(p Perm) (Perm, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}
	q := make(Perm, Size)
	for i, v := range p {
		q[v] = i
	}
	return q, nil
}

// Power returns p composed with itself n times. Power(p, 0) is the identity.
func Power(p Perm, n int) (Perm, error) {
	if n < 0 {
		inv, err := Invert(p)
		if err != nil {
			return nil, err
		}
		return Power(inv, -n)
	}
	if err := Validate(p); err != nil {
		return nil, err
	}
	out := Identity()
	for k := 0; k < n; k++ {
		out, _ = Compose(out, p)
	}
	return out, nil
}

// IsIdentity reports whether p equals Identity().
func IsIdentity(p Perm) bool {
	if len(p) != Size {
		return false
	}
	for i, v := range p {
		if v != i {
			return false
		}
	}
	return true
}

// Equal reports whether a and b are the same sequence.
func Equal(a, b Perm) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Moved counts the positions that p does not fix.
func Moved(p Perm) int {
	n := 0
	for i, v := range p {
		if v != i {
			n++
		}
	}
	return n
}

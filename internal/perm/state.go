package perm

import "fmt"

// State is a sticker labelling: position i holds label State[i] in [1, Size].
type State []int

// Solved returns the solved labelling [1, 2, ..., 48].
func Solved() State {
	s := make(State, Size)
	for i := range s {
		s[i] = i + 1
	}
	return s
}

// Clone returns a copy of s.
func (s State) Clone() State {
	out := make(State, len(s))
	copy(out, s)
	return out
}

// ValidateState checks that s has length Size and holds every label in
// [1, Size] exactly once.
func ValidateState(s State) error {
	if len(s) != Size {
		return fmt.Errorf("%w: state length %d, want %d", ErrLengthMismatch, len(s), Size)
	}
	var seen [Size + 1]bool
	for i, v := range s {
		if v < 1 || v > Size {
			return fmt.Errorf("%w: state[%d] = %d out of range", ErrNotBijection, i, v)
		}
		if seen[v] {
			return fmt.Errorf("%w: duplicate label %d at state[%d]", ErrNotBijection, v, i)
		}
		seen[v] = true
	}
	return nil
}

// Apply returns a new state s' with s'[i] = s[p[i]]. Neither input is
// modified.
func Apply(s State, p Perm) (State, error) {
	if err := ValidateState(s); err != nil {
		return nil, err
	}
	if err := Validate(p); err != nil {
		return nil, err
	}
	out := make(State, Size)
	for i, v := range p {
		out[i] = s[v]
	}
	return out, nil
}

// Equal reports whether a and b hold the same labels.
func (s State) Equal(other State) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// IsSolved reports whether s is the solved labelling.
func (s State) IsSolved() bool {
	if len(s) != Size {
		return false
	}
	for i, v := range s {
		if v != i+1 {
			return false
		}
	}
	return true
}

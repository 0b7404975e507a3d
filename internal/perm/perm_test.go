package perm

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomPerm(r *rand.Rand) Perm {
	return Perm(r.Perm(Size))
}

func TestIdentity(t *testing.T) {
	id := Identity()
	require.Len(t, id, Size)
	for i, v := range id {
		assert.Equal(t, i, v)
	}
	assert.True(t, IsIdentity(id))
	assert.NoError(t, Validate(id))
	assert.Equal(t, 0, Moved(id))
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, Validate(make(Perm, 47)), ErrLengthMismatch)

	p := Identity()
	p[3] = 48
	assert.ErrorIs(t, Validate(p), ErrNotBijection)

	p = Identity()
	p[3] = -1
	assert.ErrorIs(t, Validate(p), ErrNotBijection)

	p = Identity()
	p[3] = 4
	assert.ErrorIs(t, Validate(p), ErrNotBijection)
}

func TestCompose_LengthMismatch(t *testing.T) {
	_, err := Compose(Identity(), make(Perm, 10))
	assert.ErrorIs(t, err, ErrLengthMismatch)
	_, err = Compose(nil, Identity())
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestCompose_InverseIsIdentity(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for trial := 0; trial < 500; trial++ {
		p := randomPerm(r)
		inv, err := Invert(p)
		require.NoError(t, err)

		c, err := Compose(p, inv)
		require.NoError(t, err)
		assert.True(t, IsIdentity(c), "p . p^-1 != I at trial %d", trial)

		c, err = Compose(inv, p)
		require.NoError(t, err)
		assert.True(t, IsIdentity(c), "p^-1 . p != I at trial %d", trial)
	}
}

func TestCompose_Associative(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for trial := 0; trial < 100; trial++ {
		a, b, c := randomPerm(r), randomPerm(r), randomPerm(r)

		ab, _ := Compose(a, b)
		left, _ := Compose(ab, c)
		bc, _ := Compose(b, c)
		right, _ := Compose(a, bc)
		assert.True(t, Equal(left, right))
	}
}

func TestCompose_MatchesSequentialApply(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	a, b := randomPerm(r), randomPerm(r)

	s1, err := Apply(Solved(), a)
	require.NoError(t, err)
	s2, err := Apply(s1, b)
	require.NoError(t, err)

	ab, err := Compose(a, b)
	require.NoError(t, err)
	once, err := Apply(Solved(), ab)
	require.NoError(t, err)

	assert.Equal(t, s2, once)
}

func TestInvert_Invalid(t *testing.T) {
	p := Identity()
	p[0] = 1
	_, err := Invert(p)
	assert.ErrorIs(t, err, ErrNotBijection)
}

func TestPower(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 8))
	p := randomPerm(r)

	p0, err := Power(p, 0)
	require.NoError(t, err)
	assert.True(t, IsIdentity(p0))

	p3, err := Power(p, 3)
	require.NoError(t, err)
	pp, _ := Compose(p, p)
	ppp, _ := Compose(pp, p)
	assert.Equal(t, ppp, p3)

	pm1, err := Power(p, -1)
	require.NoError(t, err)
	inv, _ := Invert(p)
	assert.Equal(t, inv, pm1)
}

func TestApply_IdentityDoesNotMutate(t *testing.T) {
	s0 := Solved()
	before := s0.Clone()

	out, err := Apply(s0, Identity())
	require.NoError(t, err)
	assert.Equal(t, s0, out)
	assert.Equal(t, before, s0)

	out[0] = 99
	assert.Equal(t, 1, s0[0], "output must not alias the input")
}

func TestApply_ReversedState(t *testing.T) {
	rev := make(State, Size)
	for i := range rev {
		rev[i] = Size - i
	}
	out, err := Apply(rev, Identity())
	require.NoError(t, err)
	assert.Equal(t, rev, out)
}

func TestApply_InvalidInput(t *testing.T) {
	_, err := Apply(make(State, 12), Identity())
	assert.ErrorIs(t, err, ErrLengthMismatch)

	bad := Solved()
	bad[5] = 0
	_, err = Apply(bad, Identity())
	assert.ErrorIs(t, err, ErrNotBijection)

	_, err = Apply(Solved(), Perm{1, 2, 3})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestSolved(t *testing.T) {
	s := Solved()
	require.Len(t, s, Size)
	for i, v := range s {
		assert.Equal(t, i+1, v)
	}
	assert.True(t, s.IsSolved())
}

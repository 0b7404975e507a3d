package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoves_SampleScramble(t *testing.T) {
	moves, err := ParseMoves("F R U L D′ F B′ R U")
	require.NoError(t, err)
	assert.Len(t, moves, 9)
	assert.Equal(t, "F R U L D' F B' R U", FormatMoves(moves))
}

func TestParseMoves_Suffixes(t *testing.T) {
	moves, err := ParseMoves("R2 U' F2 B")
	require.NoError(t, err)
	assert.Equal(t, "R2 U' F2 B", FormatMoves(moves))

	for _, s := range []string{"R'2", "R2'", "r2"} {
		m, err := ParseMove(s)
		require.NoError(t, err, s)
		assert.Equal(t, Move{Face: FaceR, Turn: Turn180}, m, s)
	}
}

func TestParseMoves_Invalid(t *testing.T) {
	for _, s := range []string{"X Y Z", "R3", "R''", "U22", "F x"} {
		_, err := ParseMoves(s)
		assert.True(t, errors.Is(err, ErrInvalidNotation), "expected ErrInvalidNotation for %q, got %v", s, err)
	}

	_, err := ParseMove("")
	assert.ErrorIs(t, err, ErrInvalidNotation)
}

func TestInverse(t *testing.T) {
	assert.Equal(t, TurnCCW, Move{Face: FaceR, Turn: TurnCW}.Inverse().Turn)
	assert.Equal(t, TurnCW, Move{Face: FaceR, Turn: TurnCCW}.Inverse().Turn)
	assert.Equal(t, Turn180, Move{Face: FaceR, Turn: Turn180}.Inverse().Turn)
}

func TestInverseSequence(t *testing.T) {
	moves, err := ParseMoves("R U2 F'")
	require.NoError(t, err)
	assert.Equal(t, "F U2 R'", FormatMoves(InverseSequence(moves)))
}

func TestTokenRoundTrip(t *testing.T) {
	for token := uint8(0); token < 18; token++ {
		m := MoveFromToken(token)
		assert.True(t, m.Face.Valid())
		assert.Equal(t, token, m.Token())
	}
	assert.Equal(t, MoveFromToken(0), MoveFromToken(18))
}

func TestMerge(t *testing.T) {
	r := Move{Face: FaceR, Turn: TurnCW}
	rp := Move{Face: FaceR, Turn: TurnCCW}
	r2 := Move{Face: FaceR, Turn: Turn180}

	assert.Nil(t, r.Merge(rp))
	assert.Nil(t, r2.Merge(r2))
	assert.Equal(t, &r2, r.Merge(r))
	assert.Equal(t, &rp, r2.Merge(r))
	assert.Nil(t, r.Merge(Move{Face: FaceU, Turn: TurnCW}))
	assert.True(t, r.IsCancellation(rp))
	assert.False(t, r.IsCancellation(r))
}

func TestSimplify(t *testing.T) {
	moves, err := ParseMoves("R R U U' R' F F F")
	require.NoError(t, err)
	assert.Equal(t, "R F'", FormatMoves(Simplify(moves)))
}

package permcube

import (
	"errors"
	"testing"

	"github.com/SeamusWaldron/permcube/internal/orientation"
)

func newCube(t *testing.T, opts ...Option) *Cube {
	t.Helper()
	c, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNewCubeIsSolved(t *testing.T) {
	c := newCube(t)
	if !c.IsSolved() {
		t.Error("New cube should be solved")
	}
	if !c.Orientation().IsSolved() {
		t.Error("New cube should have solved orientation")
	}
	fl := c.Facelets()
	for f := 0; f < 6; f++ {
		for i := 0; i < 9; i++ {
			if fl[f][i] != faceColor(f) {
				t.Errorf("face %d pos %d: got %s, want %s", f, i, fl[f][i], faceColor(f))
			}
		}
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := newCube(t)
	if err := c.Apply(R); err != nil {
		t.Fatal(err)
	}
	if c.IsSolved() {
		t.Error("Cube should not be solved after R move")
	}
}

func TestRRRR_ReturnsToSolved_AllFaces(t *testing.T) {
	for _, face := range []Face{FaceU, FaceD, FaceF, FaceB, FaceR, FaceL} {
		c := newCube(t)
		m := Move{Face: face, Turn: CW}
		if err := c.Apply(m, m, m, m); err != nil {
			t.Fatal(err)
		}
		if !c.IsSolved() {
			t.Errorf("%v x 4 should return to solved", face)
			t.Log(c.String())
		}
		if !c.Orientation().IsSolved() {
			t.Errorf("%v x 4 should restore orientation, got %s", face, c.Orientation())
		}
	}
}

func TestR2R2_ReturnsToSolved(t *testing.T) {
	c := newCube(t)
	if err := c.Apply(R2, R2); err != nil {
		t.Fatal(err)
	}
	if !c.IsSolved() {
		t.Error("R2 R2 should return to solved")
		t.Log(c.String())
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	c := newCube(t)
	if err := c.Apply(SexyMove...); err != nil {
		t.Fatal(err)
	}
	order, err := c.Order()
	if err != nil {
		t.Fatal(err)
	}
	if order != 6 {
		t.Errorf("Sexy move order = %d, want 6", order)
	}
	for i := 1; i < 6; i++ {
		if err := c.Apply(SexyMove...); err != nil {
			t.Fatal(err)
		}
	}
	if !c.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestAlgorithmOrders(t *testing.T) {
	tests := map[string]int{"sexy": 6, "inverse-sexy": 6, "t-perm": 2, "sune": 6}
	for name, want := range tests {
		seq, ok := Algorithm(name)
		if !ok {
			t.Fatalf("missing algorithm %q", name)
		}
		c := newCube(t)
		if err := c.Apply(seq...); err != nil {
			t.Fatal(err)
		}
		got, err := c.Order()
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("%s: order %d, want %d", name, got, want)
		}
	}
	if _, ok := Algorithm("nope"); ok {
		t.Error("unknown algorithm should not be found")
	}
}

func TestGoldenRUR(t *testing.T) {
	c := newCube(t)
	if err := c.ApplyNotation("R U R"); err != nil {
		t.Fatal(err)
	}
	want := []int{6, 4, 33, 7, 13, 24, 21, 16, 9, 10, 3, 12, 5, 14, 15, 41, 38, 36, 30, 20, 28, 22, 23, 25, 19, 42, 43, 2, 29, 1, 31, 32, 40, 39, 8, 37, 26, 35, 34, 27, 17, 18, 11, 44, 45, 46, 47, 48}
	got := c.State()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("state[%d] = %d, want %d\ngot  %v\nwant %v", i, got[i], want[i], got, want)
		}
	}
	sig, err := c.Signature()
	if err != nil {
		t.Fatal(err)
	}
	if sig != "6^3 5^2 2^2 1^16" {
		t.Errorf("signature = %q", sig)
	}
}

func TestApplyNotation_InvalidLeavesCubeUnchanged(t *testing.T) {
	c := newCube(t)
	if err := c.ApplyNotation("R U"); err != nil {
		t.Fatal(err)
	}
	before := c.State()

	err := c.ApplyNotation("F F x")
	if !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("expected ErrInvalidNotation, got %v", err)
	}
	if !c.State().Equal(before) {
		t.Error("invalid notation should not change the state")
	}
	if got := FormatMoves(c.Moves()); got != "R U" {
		t.Errorf("history = %q, want %q", got, "R U")
	}
}

func TestApply_UnknownFace(t *testing.T) {
	c := newCube(t)
	err := c.Apply(R, Move{Face: "X", Turn: CW})
	if !errors.Is(err, ErrUnknownFace) {
		t.Errorf("expected ErrUnknownFace, got %v", err)
	}
	if !c.IsSolved() || len(c.Moves()) != 0 {
		t.Error("failed Apply should not change the cube")
	}
}

func TestInvertUndoesScramble(t *testing.T) {
	c := newCube(t)
	scramble, err := ParseMoves("R U R' U' F D L2 B' R2")
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Apply(scramble...); err != nil {
		t.Fatal(err)
	}
	if c.IsSolved() {
		t.Error("Cube should be scrambled after moves")
	}
	if err := c.Apply(Invert(scramble)...); err != nil {
		t.Fatal(err)
	}
	if !c.IsSolved() {
		t.Error("Cube should be solved after reversing scramble")
		t.Log(c.String())
	}
	cs, err := c.Cycles(false)
	if err != nil {
		t.Fatal(err)
	}
	if len(cs) != 0 {
		t.Errorf("solved cube should have no moving cycles, got %v", cs)
	}
}

func TestFaceletsAfterU(t *testing.T) {
	c := newCube(t)
	if err := c.Apply(U); err != nil {
		t.Fatal(err)
	}
	front := c.Facelets()[2]
	for i := 0; i < 9; i++ {
		want := Green
		if i < 3 {
			want = Red
		}
		if front[i] != want {
			t.Errorf("F[%d] = %s, want %s", i, front[i], want)
		}
	}
	t.Log(c.String())
}

func TestOrientationAfterF(t *testing.T) {
	c := newCube(t)
	if err := c.Apply(F); err != nil {
		t.Fatal(err)
	}
	o := c.Orientation()
	if o.IsSolved() {
		t.Error("F should flip edges")
	}
	if err := orientation.Check(o); err != nil {
		t.Errorf("orientation invariants broken: %v", err)
	}
}

func TestMoveHistory(t *testing.T) {
	c := newCube(t)
	if err := c.Apply(SexyMove...); err != nil {
		t.Fatal(err)
	}
	if got := FormatMoves(c.Moves()); got != "R U R' U'" {
		t.Errorf("history = %q", got)
	}
	c.Reset()
	if len(c.Moves()) != 0 || !c.IsSolved() {
		t.Error("Reset should clear history and state")
	}

	c = newCube(t, WithMoveHistory(false))
	if err := c.Apply(R, U); err != nil {
		t.Fatal(err)
	}
	if len(c.Moves()) != 0 {
		t.Error("history should be empty when disabled")
	}
}

func TestSharedTable(t *testing.T) {
	tbl := NewTable()
	a := newCube(t, WithTable(tbl))
	b := newCube(t, WithTable(tbl))
	if err := a.Apply(TPerm...); err != nil {
		t.Fatal(err)
	}
	if err := b.Apply(TPerm...); err != nil {
		t.Fatal(err)
	}
	if !a.State().Equal(b.State()) {
		t.Error("cubes sharing a table should agree")
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := newCube(t)
	if err := c.Apply(R); err != nil {
		t.Fatal(err)
	}
	s := c.State()
	s[0] = 99
	p := c.Permutation()
	p[0] = 99
	if c.State()[0] == 99 || c.Permutation()[0] == 99 {
		t.Error("accessors should not expose internal slices")
	}
}

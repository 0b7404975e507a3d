package permcube

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	cube.Apply(permcube.R, permcube.U, permcube.RPrime, permcube.UPrime)
var (
	// Right face moves
	R      = Move{Face: FaceR, Turn: CW}     // Right clockwise
	RPrime = Move{Face: FaceR, Turn: CCW}    // Right counter-clockwise
	R2     = Move{Face: FaceR, Turn: Double} // Right 180

	// Left face moves
	L      = Move{Face: FaceL, Turn: CW}     // Left clockwise
	LPrime = Move{Face: FaceL, Turn: CCW}    // Left counter-clockwise
	L2     = Move{Face: FaceL, Turn: Double} // Left 180

	// Up face moves
	U      = Move{Face: FaceU, Turn: CW}     // Up clockwise
	UPrime = Move{Face: FaceU, Turn: CCW}    // Up counter-clockwise
	U2     = Move{Face: FaceU, Turn: Double} // Up 180

	// Down face moves
	D      = Move{Face: FaceD, Turn: CW}     // Down clockwise
	DPrime = Move{Face: FaceD, Turn: CCW}    // Down counter-clockwise
	D2     = Move{Face: FaceD, Turn: Double} // Down 180

	// Front face moves
	F      = Move{Face: FaceF, Turn: CW}     // Front clockwise
	FPrime = Move{Face: FaceF, Turn: CCW}    // Front counter-clockwise
	F2     = Move{Face: FaceF, Turn: Double} // Front 180

	// Back face moves
	B      = Move{Face: FaceB, Turn: CW}     // Back clockwise
	BPrime = Move{Face: FaceB, Turn: CCW}    // Back counter-clockwise
	B2     = Move{Face: FaceB, Turn: Double} // Back 180
)

// SexyMove is R U R' U'. Six repetitions return to solved.
var SexyMove = []Move{R, U, RPrime, UPrime}

// InverseSexyMove undoes SexyMove.
var InverseSexyMove = []Move{U, R, UPrime, RPrime}

// TPerm swaps two edges and two corners of the U layer.
var TPerm = []Move{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}

// Sune twists three U corners.
var Sune = []Move{R, U, RPrime, U, R, U2, RPrime}

// Algorithms maps preset names to sequences for the CLI and explorer.
var Algorithms = map[string][]Move{
	"sexy":         SexyMove,
	"inverse-sexy": InverseSexyMove,
	"t-perm":       TPerm,
	"sune":         Sune,
}

// Algorithm returns a copy of the named preset.
func Algorithm(name string) ([]Move, bool) {
	seq, ok := Algorithms[name]
	if !ok {
		return nil, false
	}
	return append([]Move(nil), seq...), true
}

package permcube

import "github.com/SeamusWaldron/permcube/pkg/types"

// Face represents a cube face in standard notation.
type Face = types.Face

const (
	FaceR = types.FaceR // Right
	FaceL = types.FaceL // Left
	FaceU = types.FaceU // Up
	FaceD = types.FaceD // Down
	FaceF = types.FaceF // Front
	FaceB = types.FaceB // Back
)

// Turn represents the direction and magnitude of a face turn.
type Turn = types.Turn

const (
	CW     = types.TurnCW  // Clockwise (90 degrees)
	CCW    = types.TurnCCW // Counter-clockwise (90 degrees)
	Double = types.Turn180 // Half turn (180 degrees)
)

// Move is a single face turn.
type Move = types.Move

// ParseMove parses a standard notation string into a Move.
// Examples: R, R', R2, R2'
func ParseMove(s string) (Move, error) {
	return types.ParseMove(s)
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'"
// The first invalid token fails the whole parse.
func ParseMoves(s string) ([]Move, error) {
	return types.ParseMoves(s)
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	return types.FormatMoves(moves)
}

// Invert returns the sequence that undoes moves.
func Invert(moves []Move) []Move {
	return types.InverseSequence(moves)
}

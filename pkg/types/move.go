// Package types contains shared type definitions for the permcube application.
package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidNotation is returned when move text cannot be parsed.
var ErrInvalidNotation = errors.New("types: invalid move notation")

// Face represents a cube face in standard notation.
type Face string

const (
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
	FaceL Face = "L" // Left
	FaceR Face = "R" // Right
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back
)

// Faces lists the six turnable faces in canonical order.
var Faces = []Face{FaceU, FaceD, FaceL, FaceR, FaceF, FaceB}

// Valid reports whether f names one of the six faces.
func (f Face) Valid() bool {
	switch f {
	case FaceU, FaceD, FaceL, FaceR, FaceF, FaceB:
		return true
	}
	return false
}

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	TurnCW  Turn = 1  // Clockwise quarter turn
	TurnCCW Turn = -1 // Counter-clockwise quarter turn
	Turn180 Turn = 2  // 180 degree turn (half turn)
)

// Quarters returns how many quarter turns the turn spans (1 or 2).
func (t Turn) Quarters() int {
	if t == Turn180 {
		return 2
	}
	return 1
}

// Move is a single move token: a face plus a turn.
type Move struct {
	Face Face `json:"face" yaml:"face"`
	Turn Turn `json:"turn" yaml:"turn"`
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case TurnCCW:
		suffix = "'"
	case Turn180:
		suffix = "2"
	}
	return string(m.Face) + suffix
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the inverse of this move.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case TurnCW:
		inv.Turn = TurnCCW
	case TurnCCW:
		inv.Turn = TurnCW
	// Turn180 is its own inverse
	}
	return inv
}

// IsCancellation returns true if the other move cancels this move.
func (m Move) IsCancellation(other Move) bool {
	if m.Face != other.Face {
		return false
	}
	return m.Turn == -other.Turn ||
		(m.Turn == Turn180 && other.Turn == Turn180)
}

// Merge combines two same-face moves into one (or returns nil if they cancel).
// Returns nil if the moves cannot be merged or if they cancel out completely.
func (m Move) Merge(other Move) *Move {
	if m.Face != other.Face {
		return nil
	}

	// Quarter turns mod 4: CW=1, 180=2, CCW=3.
	combined := (quarterCount(m.Turn) + quarterCount(other.Turn)) % 4
	switch combined {
	case 0:
		return nil // Moves cancel out
	case 1:
		return &Move{Face: m.Face, Turn: TurnCW}
	case 2:
		return &Move{Face: m.Face, Turn: Turn180}
	default:
		return &Move{Face: m.Face, Turn: TurnCCW}
	}
}

func quarterCount(t Turn) int {
	switch t {
	case TurnCCW:
		return 3
	case Turn180:
		return 2
	default:
		return 1
	}
}

// Token encodes the move as a single byte.
// Encoding: face*3 + turn_code where:
//   - face: U=0, D=1, L=2, R=3, F=4, B=5
//   - turn_code: CW=0, CCW=1, 180=2
func (m Move) Token() uint8 {
	var faceCode uint8
	for i, f := range Faces {
		if f == m.Face {
			faceCode = uint8(i)
			break
		}
	}

	var turnCode uint8
	switch m.Turn {
	case TurnCCW:
		turnCode = 1
	case Turn180:
		turnCode = 2
	}

	return faceCode*3 + turnCode
}

// MoveFromToken decodes a token back into a Move. Tokens wrap modulo 18.
func MoveFromToken(token uint8) Move {
	token %= 18
	face := Faces[token/3]

	var turn Turn
	switch token % 3 {
	case 0:
		turn = TurnCW
	case 1:
		turn = TurnCCW
	case 2:
		turn = Turn180
	}

	return Move{Face: face, Turn: turn}
}

// ParseMove parses a single token such as R, R', R′, R2, R2' or R'2.
// The order of the prime and the 2 suffix does not matter; a primed half
// turn is the same permutation as a plain half turn.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	var face Face
	switch s[0] {
	case 'U', 'u':
		face = FaceU
	case 'D', 'd':
		face = FaceD
	case 'L', 'l':
		face = FaceL
	case 'R', 'r':
		face = FaceR
	case 'F', 'f':
		face = FaceF
	case 'B', 'b':
		face = FaceB
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	half := false
	prime := false
	for _, ch := range s[1:] {
		switch ch {
		case '2':
			if half {
				return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
			}
			half = true
		case '\'', '`', '′':
			if prime {
				return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
			}
			prime = true
		default:
			return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
		}
	}

	turn := TurnCW
	switch {
	case half:
		turn = Turn180
	case prime:
		turn = TurnCCW
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a whitespace-separated sequence of moves.
// Example: "R U R' U'"
// The first invalid token aborts parsing.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InverseSequence returns the sequence that undoes moves: reversed, with
// every token inverted.
func InverseSequence(moves []Move) []Move {
	out := make([]Move, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m.Inverse()
	}
	return out
}

// Simplify merges adjacent same-face moves until no merge applies.
func Simplify(moves []Move) []Move {
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		if n := len(out); n > 0 && out[n-1].Face == m.Face {
			merged := out[n-1].Merge(m)
			out = out[:n-1]
			if merged != nil {
				out = append(out, *merged)
			}
			continue
		}
		out = append(out, m)
	}
	return out
}

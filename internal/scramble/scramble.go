// Package scramble produces reproducible pseudorandom move sequences.
package scramble

import (
	"github.com/taylorza/go-lfsr"

	"github.com/SeamusWaldron/permcube/pkg/types"
)

// defaultSeed replaces a zero seed, which would lock the shift register.
const defaultSeed = 0x9e3779b9

// Generator draws moves from a 32-bit LFSR. The same seed always yields the
// same sequence. A Generator is not safe for concurrent use.
type Generator struct {
	seed uint32
	gen  *lfsr.Lfsr32
}

// New returns a generator seeded with seed.
func New(seed uint32) *Generator {
	if seed == 0 {
		seed = defaultSeed
	}
	return &Generator{seed: seed, gen: lfsr.NewLfsr32(seed)}
}

// Seed returns the effective seed.
func (g *Generator) Seed() uint32 {
	return g.seed
}

// next returns a mixed 32-bit value. Consecutive LFSR states are shifts of
// each other, so each draw is passed through a multiplicative hash.
func (g *Generator) next() uint32 {
	v, _ := g.gen.Next()
	v *= 0x85ebca6b
	v ^= v >> 13
	v *= 0xc2b2ae35
	v ^= v >> 16
	return v
}

// Intn returns a value in [0, n). n must be positive.
func (g *Generator) Intn(n int) int {
	return int(g.next() % uint32(n))
}

// Next returns one of the 18 face turns.
func (g *Generator) Next() types.Move {
	return types.MoveFromToken(uint8(g.Intn(18)))
}

// Sequence returns n moves.
func (g *Generator) Sequence(n int) []types.Move {
	out := make([]types.Move, n)
	for i := range out {
		out[i] = g.Next()
	}
	return out
}

// RandomLength returns a length in [1, maxLen].
func (g *Generator) RandomLength(maxLen int) int {
	if maxLen <= 1 {
		return 1
	}
	return 1 + g.Intn(maxLen)
}

// Invert returns the sequence that undoes seq.
func Invert(seq []types.Move) []types.Move {
	return types.InverseSequence(seq)
}

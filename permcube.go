// Package permcube models the face turns of a 3x3x3 puzzle as permutations
// of its 48 movable stickers.
//
// # Features
//
//   - Quarter, prime and half turns as validated permutations, built from
//     cached ring/belt cycles and cross-checked against 3D geometry
//   - Sticker-state application, composition and inversion
//   - Edge flip and corner twist tracking
//   - Cycle decomposition of any sequence, bucketed by cycle length
//
// # Quick Start
//
//	cube, err := permcube.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Apply moves using predefined constants
//	cube.Apply(permcube.R, permcube.U, permcube.RPrime, permcube.UPrime)
//
//	// Or from notation
//	cube.ApplyNotation("F B2 L' D")
//
//	fmt.Println("Solved:", cube.IsSolved())
//	fmt.Println(cube)
//
// # Cycles
//
// The accumulated permutation can be split into disjoint cycles:
//
//	cube.ApplyNotation("R U R")
//	sig, _ := cube.Signature() // "6^3 5^2 2^2 1^16"
//	order, _ := cube.Order()   // how many repeats return to solved
//
// # Predefined Moves
//
//	permcube.R      // Right clockwise
//	permcube.RPrime // Right counter-clockwise
//	permcube.R2     // Right 180
//	// ... and similarly for L, U, D, F, B
package permcube

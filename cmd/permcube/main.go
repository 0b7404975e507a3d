// permcube - CLI for the permutation model of a 3x3x3 puzzle.
package main

import (
	"github.com/SeamusWaldron/permcube/internal/cli"
)

func main() {
	cli.Execute()
}

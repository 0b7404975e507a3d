package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SeamusWaldron/permcube"
)

// parseArgs reads a move sequence from command arguments. A single argument
// naming a preset algorithm (sexy, t-perm, sune, ...) expands to it.
func parseArgs(args []string) ([]permcube.Move, error) {
	if len(args) == 1 {
		if seq, ok := permcube.Algorithm(strings.ToLower(args[0])); ok {
			slog.Debug("expanded preset", "name", args[0], "moves", permcube.FormatMoves(seq))
			return seq, nil
		}
	}
	text := strings.Join(args, " ")
	mvs, err := permcube.ParseMoves(text)
	if err != nil {
		return nil, err
	}
	if len(mvs) == 0 {
		return nil, errors.New("no moves given")
	}
	slog.Debug("parsed moves", "count", len(mvs), "moves", permcube.FormatMoves(mvs))
	return mvs, nil
}

// cubeFor returns a fresh cube with mvs applied.
func cubeFor(mvs []permcube.Move) (*permcube.Cube, error) {
	c, err := permcube.New()
	if err != nil {
		return nil, err
	}
	if err := c.Apply(mvs...); err != nil {
		return nil, fmt.Errorf("apply: %w", err)
	}
	return c, nil
}

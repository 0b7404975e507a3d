package permcube

import (
	"github.com/SeamusWaldron/permcube/internal/facelet"
	"github.com/SeamusWaldron/permcube/internal/moves"
	"github.com/SeamusWaldron/permcube/internal/orientation"
	"github.com/SeamusWaldron/permcube/internal/perm"
	"github.com/SeamusWaldron/permcube/internal/r4"
	"github.com/SeamusWaldron/permcube/pkg/types"
)

// Sentinel errors, shared with the packages that return them so callers can
// match with errors.Is.
var (
	// Permutation errors
	ErrLengthMismatch = perm.ErrLengthMismatch
	ErrNotBijection   = perm.ErrNotBijection

	// Move errors
	ErrUnknownFace     = moves.ErrUnknownFace
	ErrInvalidNotation = types.ErrInvalidNotation
	ErrCenterMoved     = facelet.ErrCenterMoved

	// Orientation errors
	ErrParity = orientation.ErrParity
	ErrTwist  = orientation.ErrTwist

	// 4D errors
	ErrDegeneratePlane = r4.ErrDegeneratePlane
	ErrAxisRange       = r4.ErrAxisRange
)

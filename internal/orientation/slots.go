package orientation

import (
	"fmt"

	"github.com/SeamusWaldron/permcube/internal/facelet"
)

// Kind distinguishes edge slots from corner slots.
type Kind int

const (
	Edge Kind = iota
	Corner
)

func (k Kind) String() string {
	if k == Corner {
		return "corner"
	}
	return "edge"
}

// Slot names one orientation slot.
type Slot struct {
	Kind  Kind
	Index int
}

// Slot centres, in URF UFL ULB UBR DFR DLF DBL DRB order.
var cornerCubies = [NumCorners]facelet.Vec3{
	{1, 1, 1}, {-1, 1, 1}, {-1, 1, -1}, {1, 1, -1},
	{1, -1, 1}, {-1, -1, 1}, {-1, -1, -1}, {1, -1, -1},
}

// Slot centres, in UR UF UL UB DR DF DL DB FR FL BL BR order.
var edgeCubies = [NumEdges]facelet.Vec3{
	{1, 1, 0}, {0, 1, 1}, {-1, 1, 0}, {0, 1, -1},
	{1, -1, 0}, {0, -1, 1}, {-1, -1, 0}, {0, -1, -1},
	{1, 0, 1}, {-1, 0, 1}, {-1, 0, -1}, {1, 0, -1},
}

// CornerNames and EdgeNames label the slots for display.
var (
	CornerNames = [NumCorners]string{"URF", "UFL", "ULB", "UBR", "DFR", "DLF", "DBL", "DRB"}
	EdgeNames   = [NumEdges]string{"UR", "UF", "UL", "UB", "DR", "DF", "DL", "DB", "FR", "FL", "BL", "BR"}
)

// SlotOf maps a 48-slot sticker index to the edge or corner slot of the
// cubie carrying it.
func SlotOf(i int) (Slot, error) {
	s, err := facelet.Describe(i)
	if err != nil {
		return Slot{}, err
	}
	c, err := facelet.Cubie(s)
	if err != nil {
		return Slot{}, err
	}
	for k, v := range cornerCubies {
		if v == c {
			return Slot{Kind: Corner, Index: k}, nil
		}
	}
	for k, v := range edgeCubies {
		if v == c {
			return Slot{Kind: Edge, Index: k}, nil
		}
	}
	return Slot{}, fmt.Errorf("orientation: sticker %d (%s) has no slot", i, s)
}

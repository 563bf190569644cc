package scheduler

import (
	"fmt"

	"github.com/google/uuid"
)

// Order is a queue ordering: index i holds the stitch at position i+1.
// Positions are 1-based everywhere outside this slice representation.
type Order []uuid.UUID

// PositionOf returns the 1-based position of a stitch, or 0 if absent.
func (o Order) PositionOf(stitchID uuid.UUID) int {
	for i, id := range o {
		if id == stitchID {
			return i + 1
		}
	}
	return 0
}

// Clone returns an independent copy.
func (o Order) Clone() Order {
	out := make(Order, len(o))
	copy(out, o)
	return out
}

// Reposition removes the stitch at position pos and re-inserts it so its
// final position is skip. Stitches between the vacated slot and the target
// slide one position toward it; everything else keeps its position. The
// receiver is not modified.
func (o Order) Reposition(pos, skip int) (Order, error) {
	n := len(o)
	if pos < 1 || pos > n {
		return nil, fmt.Errorf("position %d out of range [1,%d]", pos, n)
	}
	if skip < 1 || skip > n {
		return nil, fmt.Errorf("skip %d out of range [1,%d]", skip, n)
	}

	out := o.Clone()
	moved := out[pos-1]
	switch {
	case skip > pos:
		copy(out[pos-1:skip-1], out[pos:skip])
	case skip < pos:
		copy(out[skip:pos], out[skip-1:pos-1])
	}
	out[skip-1] = moved
	return out, nil
}

// Validate checks the at-rest invariant: every slot occupied by a distinct,
// non-nil stitch id, so positions form exactly {1..N}.
func (o Order) Validate() error {
	seen := make(map[uuid.UUID]struct{}, len(o))
	for i, id := range o {
		if id == uuid.Nil {
			return fmt.Errorf("position %d is unoccupied", i+1)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("stitch %s occupies more than one position", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

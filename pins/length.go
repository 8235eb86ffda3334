package pins

import (
	"fmt"

	"github.com/katalvlaran/stringart/chords"
)

// ThreadLength returns the total Euclidean length, in pixels, of the thread
// needed to wind seq over set.
//
// Errors: ErrPinIndex if a segment references a pin outside set.
//
// Complexity: O(L).
func ThreadLength(set PinSet, seq chords.Sequence) (float64, error) {
	var (
		total float64
		s     chords.Segment
	)
	for _, s = range seq {
		if s.From < 0 || s.From >= len(set) || s.To < 0 || s.To >= len(set) {
			return 0, fmt.Errorf("%w: segment %v over %d pins", ErrPinIndex, s, len(set))
		}
		total += set[s.From].Coord().DistanceFrom(set[s.To].Coord())
	}

	return total, nil
}

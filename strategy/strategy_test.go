package strategy_test

import (
	"context"
	"errors"
	"iter"
	"testing"

	"github.com/katalvlaran/stringart/canvas"
	"github.com/katalvlaran/stringart/chords"
	"github.com/katalvlaran/stringart/pins"
	"github.com/katalvlaran/stringart/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stream replays fixed events.
func stream(events ...strategy.Event) iter.Seq[strategy.Event] {
	return func(yield func(strategy.Event) bool) {
		for _, ev := range events {
			if !yield(ev) {
				return
			}
		}
	}
}

// -----------------------------------------------------------------------------
// Validate
// -----------------------------------------------------------------------------

func TestValidate(t *testing.T) {
	target, err := canvas.NewGrayFilled(10, 8, 200)
	require.NoError(t, err)
	set := pins.PinSet{{Row: 0, Col: 0}, {Row: 7, Col: 9}}

	dark, err := strategy.Validate(target, set)
	require.NoError(t, err)
	require.Len(t, dark, 80)
	assert.EqualValues(t, 55, dark[0])

	_, err = strategy.Validate(nil, set)
	assert.ErrorIs(t, err, strategy.ErrNilTarget)
	_, err = strategy.Validate(&canvas.Gray{Width: 3, Height: 3, Pix: make([]uint8, 2)}, set)
	assert.ErrorIs(t, err, strategy.ErrNilTarget)
	_, err = strategy.Validate(target, set[:1])
	assert.ErrorIs(t, err, strategy.ErrTooFewPins)
	_, err = strategy.Validate(target, pins.PinSet{{Row: 0, Col: 0}, {Row: 8, Col: 0}})
	assert.ErrorIs(t, err, strategy.ErrPinsOutOfBounds)
}

// -----------------------------------------------------------------------------
// Drain
// -----------------------------------------------------------------------------

func TestDrain_PrefersFullSequence(t *testing.T) {
	full := chords.Sequence{{From: 0, To: 1}, {From: 1, To: 2}}
	out := strategy.Drain(stream(
		strategy.Event{Progress: 0.5, HasSegment: true, Segment: chords.Segment{From: 3, To: 4}},
		strategy.Event{Progress: 1, Status: "Done!", Sequence: full},
	))
	require.Len(t, out.Events, 2)
	assert.Equal(t, full, out.Sequence)
	assert.Equal(t, "Done!", out.Final.Status)
	assert.False(t, out.Failed)
}

func TestDrain_RebuildsFromSegments(t *testing.T) {
	out := strategy.Drain(stream(
		strategy.Event{HasSegment: true, Segment: chords.Segment{From: 0, To: 2}},
		strategy.Event{},
		strategy.Event{HasSegment: true, Segment: chords.Segment{From: 2, To: 1}},
	))
	assert.Equal(t, chords.Sequence{{From: 0, To: 2}, {From: 2, To: 1}}, out.Sequence)
}

func TestDrain_Failure(t *testing.T) {
	cause := errors.New("boom")
	out := strategy.Drain(stream(
		strategy.Event{Progress: 0.2},
		strategy.Event{Progress: 1, Failed: true, Err: cause},
	))
	assert.True(t, out.Failed)
	assert.ErrorIs(t, out.Err, cause)
	assert.Empty(t, out.Sequence)
}

func TestDrain_Empty(t *testing.T) {
	out := strategy.Drain(stream())
	assert.Empty(t, out.Events)
	assert.Zero(t, out.Final.Progress)
}

func TestCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	assert.False(t, strategy.Canceled(ctx))
	cancel()
	assert.True(t, strategy.Canceled(ctx))
	var none context.Context
	assert.False(t, strategy.Canceled(none))
}

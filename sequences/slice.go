// Package sequences provides upstream adapters turning slices, channels,
// Go iterators, and plain functions into flows.
package sequences

import (
	"context"

	"github.com/elastiflow/flows"
)

// sliceSequence walks a slice from the start, honoring context cancellation
type sliceSequence[T any] struct {
	values []T
	next   int
}

// FromSlice creates a re-enterable Flow over a slice; each iteration walks
// the slice from the start.
func FromSlice[T any](values []T) flows.Flow[T] {
	return flows.New(func(context.Context) flows.Sequence[T] {
		return &sliceSequence[T]{values: values}
	})
}

func (s *sliceSequence[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, false, err
	}
	if s.next >= len(s.values) {
		return zero, false, nil
	}
	v := s.values[s.next]
	s.next++
	return v, true, nil
}

func (s *sliceSequence[T]) Close() error {
	return nil
}

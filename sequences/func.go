package sequences

import (
	"context"
	"sync"

	"github.com/elastiflow/flows"
)

type funcSequence[T any] struct {
	next func(ctx context.Context) (T, bool, error)
	stop func() error

	closeOnce sync.Once
	closeErr  error
}

// FromFunc creates a Flow advancing via next and disposing via stop; stop
// may be nil. The flow is single-pass: all iterations share the same next
// function and its state.
func FromFunc[T any](next func(ctx context.Context) (T, bool, error), stop func() error) flows.Flow[T] {
	return flows.New(func(context.Context) flows.Sequence[T] {
		return &funcSequence[T]{next: next, stop: stop}
	})
}

func (s *funcSequence[T]) Next(ctx context.Context) (T, bool, error) {
	return s.next(ctx)
}

func (s *funcSequence[T]) Close() error {
	s.closeOnce.Do(func() {
		if s.stop != nil {
			s.closeErr = s.stop()
		}
	})
	return s.closeErr
}

package sequences

import (
	"context"
	"iter"

	"github.com/elastiflow/flows"
)

type pullSequence[T any] struct {
	next func() (T, bool)
	stop func()
}

// FromSeq creates a re-enterable Flow over a Go iterator; each iteration
// pulls seq from the start.
func FromSeq[T any](seq iter.Seq[T]) flows.Flow[T] {
	return flows.New(func(context.Context) flows.Sequence[T] {
		next, stop := iter.Pull(seq)
		return &pullSequence[T]{next: next, stop: stop}
	})
}

func (s *pullSequence[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, false, err
	}
	v, ok := s.next()
	if !ok {
		return zero, false, nil
	}
	return v, true, nil
}

func (s *pullSequence[T]) Close() error {
	s.stop()
	return nil
}

package sequences

import (
	"context"

	"github.com/elastiflow/flows"
)

type channelSequence[T any] struct {
	receiver <-chan T
}

// FromChannel creates a Flow reading from rec until it closes. The flow is
// single-pass by nature: all iterations drain the same channel.
func FromChannel[T any](rec <-chan T) flows.Flow[T] {
	return flows.New(func(context.Context) flows.Sequence[T] {
		return &channelSequence[T]{receiver: rec}
	})
}

func (s *channelSequence[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	select {
	case <-ctx.Done():
		return zero, false, ctx.Err()
	case v, ok := <-s.receiver:
		if !ok {
			return zero, false, nil
		}
		return v, true, nil
	}
}

func (s *channelSequence[T]) Close() error {
	return nil
}

package flows

import (
	"context"

	"github.com/elastiflow/flows/replay"
)

// SharedFlow pairs one replay buffer with factory methods deriving
// independent, order-preserving Flows from it. All derived flows read the
// same single upstream iteration, so upstream side effects happen once per
// element regardless of fan-out.
type SharedFlow[T any] struct {
	buf *replay.Buffer[T]
}

// Share pins the Flow to a single upstream iteration backed by a replay
// buffer and returns the SharedFlow wrapping it. The context bounds the
// upstream's advances for the lifetime of the buffer.
func (f Flow[T]) Share(ctx context.Context, params ...Params) *SharedFlow[T] {
	param := applyParams(params...)
	return &SharedFlow[T]{
		buf: replay.New[T](ctx, f.Iterate(ctx), replay.Params{
			SegmentName: param.SegmentName,
			Logger:      param.Logger,
		}),
	}
}

// Fork returns a Flow replaying the shared buffer from index zero. Each
// iteration starts a fresh private cursor; closing a fork never disposes
// the shared upstream, which the buffer owns.
func (s *SharedFlow[T]) Fork() Flow[T] {
	return New(func(context.Context) Sequence[T] {
		return &cursorSequence[T]{buf: s.buf}
	})
}

// Branch splits the shared flow into two order-preserving sides by
// predicate polarity: elements satisfying pred go to the first Flow,
// the rest to the second. The predicate must be deterministic; each side
// evaluates it independently against the same buffered elements, so a
// non-deterministic predicate breaks the exactly-one-side partition.
func (s *SharedFlow[T]) Branch(pred func(T) bool, params ...Params) (Flow[T], Flow[T]) {
	side := func(polarity bool) Flow[T] {
		return s.Fork().Filter(func(v T) (bool, error) {
			return pred(v) == polarity, nil
		}, params...)
	}
	return side(true), side(false)
}

// cursorSequence walks a replay buffer with a private integer cursor.
// Advancing only reads from the buffer; the cursor is never shared.
type cursorSequence[T any] struct {
	buf    *replay.Buffer[T]
	cursor int
}

func (s *cursorSequence[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	ok, err := s.buf.TryGet(ctx, s.cursor)
	if err != nil || !ok {
		return zero, false, err
	}
	v := s.buf.Get(s.cursor)
	s.cursor++
	return v, true, nil
}

func (s *cursorSequence[T]) Close() error {
	return nil
}

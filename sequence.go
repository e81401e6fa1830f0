package flows

import "context"

// Sequence is a single-pass asynchronous producer of elements.
//
// Next advances the sequence by one element. It may block until the element
// is available or ctx is done. It returns the element and true on success,
// the zero value and false on exhaustion, or a terminal error. After a
// false or an error, the sequence must not be advanced again.
//
// Close releases the sequence's resources. It is called exactly once at
// end-of-life by whoever owns the iteration.
type Sequence[T any] interface {
	Next(ctx context.Context) (T, bool, error)
	Close() error
}

// SequenceFunc adapts a next function into a Sequence with a no-op Close.
type SequenceFunc[T any] func(ctx context.Context) (T, bool, error)

// Next calls the underlying function.
func (f SequenceFunc[T]) Next(ctx context.Context) (T, bool, error) {
	return f(ctx)
}

// Close is a no-op.
func (f SequenceFunc[T]) Close() error {
	return nil
}

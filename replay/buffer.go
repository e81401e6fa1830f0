// Package replay implements the multicast buffer behind shared flows: an
// append-only element log serving index-based reads of a single-pass
// upstream sequence to any number of concurrent readers. The upstream is
// advanced by at most one elected producer at a time and every reader
// observes the same elements in the same order, with completion, error,
// and cancellation propagated per reader.
package replay

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Upstream is the single-pass producer a Buffer multicasts. A Buffer takes
// exclusive ownership: it is the only advancer and closes the upstream
// exactly once, on natural exhaustion or on the first error.
type Upstream[T any] interface {
	Next(ctx context.Context) (T, bool, error)
	Close() error
}

// Params are used to configure a new Buffer.
type Params struct {
	SegmentName string
	Logger      *zap.Logger
}

// bufferState is the producer election state machine. A buffer advances
// idle -> producing -> idle per element until it lands in one of the two
// terminal states, which never clear.
type bufferState int

const (
	stateIdle bufferState = iota
	stateProducing
	stateComplete
	stateFailed
)

// Buffer multicasts one upstream sequence to independent index-based
// readers. All state transitions happen under one mutex; the upstream
// advance itself runs outside it so a slow upstream step never blocks
// reads of already-buffered indices.
type Buffer[T any] struct {
	mu      sync.Mutex
	src     Upstream[T]
	ctx     context.Context // governs upstream advances, not reader waits
	elems   []T
	state   bufferState
	err     error
	waiters []*waiter
	segment string
	logger  *zap.Logger
}

// New constructs a Buffer owning src. The context bounds upstream advances
// only; each reader's wait is bounded by the context it passes to TryGet.
func New[T any](ctx context.Context, src Upstream[T], params ...Params) *Buffer[T] {
	var p Params
	for _, param := range params {
		p = param
	}
	if p.Logger == nil {
		p.Logger = zap.NewNop()
	}
	return &Buffer[T]{
		src:     src,
		ctx:     ctx,
		segment: p.SegmentName,
		logger:  p.Logger,
	}
}

// TryGet blocks until the element at index is buffered and returns true, or
// returns false once the upstream is exhausted before reaching index. A
// captured upstream error is returned to every reader whose index lies at
// or beyond the point of failure. Cancelling ctx unwinds only this call.
func (b *Buffer[T]) TryGet(ctx context.Context, index int) (bool, error) {
	for {
		b.mu.Lock()
		if index < len(b.elems) {
			b.mu.Unlock()
			return true, nil
		}
		switch b.state {
		case stateComplete:
			b.mu.Unlock()
			return false, nil
		case stateFailed:
			err := b.err
			b.mu.Unlock()
			return false, err
		}
		w := newWaiter()
		b.waiters = append(b.waiters, w)
		if b.claim() {
			go b.produce()
		}
		b.mu.Unlock()

		if _, err := w.await(ctx); err != nil {
			return false, err
		}
		// A resolution does not mean this reader's index is ready, only
		// that the buffer state changed; re-evaluate from the top.
	}
}

// Get returns the already-buffered element at index. It must only be called
// after a prior TryGet returned true for that index; requesting an
// unbuffered index is a programming error and panics.
func (b *Buffer[T]) Get(index int) T {
	b.mu.Lock()
	defer b.mu.Unlock()
	if index >= len(b.elems) {
		panic(fmt.Sprintf("replay: Get(%d) beyond buffered tail %d", index, len(b.elems)))
	}
	return b.elems[index]
}

// Len returns the number of elements buffered so far.
func (b *Buffer[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.elems)
}

// Err returns the captured terminal upstream error, if any.
func (b *Buffer[T]) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

// claim attempts the producer election. The caller must hold mu. Exactly
// one reader per round wins and becomes responsible for a single upstream
// advance; everyone else only waits.
func (b *Buffer[T]) claim() bool {
	if b.state != stateIdle {
		return false
	}
	b.state = stateProducing
	return true
}

// produce advances the upstream exactly once and publishes the result. It
// runs on its own goroutine with the buffer's context so a reader that
// cancels mid-advance unwinds without aborting or corrupting production.
func (b *Buffer[T]) produce() {
	v, ok, err := b.src.Next(b.ctx)
	switch {
	case err != nil:
		b.dispose()
		b.mu.Lock()
		b.state = stateFailed
		b.err = err
		b.logger.Debug("upstream failed",
			zap.String("segment", b.segment),
			zap.Int("buffered", len(b.elems)),
			zap.Error(err),
		)
		b.broadcast(outcomeFailed)
		b.mu.Unlock()
	case !ok:
		b.dispose()
		b.mu.Lock()
		b.state = stateComplete
		b.logger.Debug("upstream exhausted",
			zap.String("segment", b.segment),
			zap.Int("buffered", len(b.elems)),
		)
		b.broadcast(outcomeExhausted)
		b.mu.Unlock()
	default:
		b.mu.Lock()
		b.elems = append(b.elems, v)
		b.state = stateIdle
		b.logger.Debug("buffered element",
			zap.String("segment", b.segment),
			zap.Int("index", len(b.elems)-1),
		)
		b.broadcast(outcomeProceed)
		b.mu.Unlock()
	}
}

// broadcast resolves every pending waiter with o and clears the wait list.
// The caller must hold mu. Waiters already resolved by a local cancellation
// are skipped by the waiter's own single-resolution guard.
func (b *Buffer[T]) broadcast(o outcome) {
	for _, w := range b.waiters {
		w.resolve(o)
	}
	b.waiters = nil
}

// dispose closes the upstream. Disposal is advisory cleanup, not part of
// the data contract: a close failure is logged and swallowed.
func (b *Buffer[T]) dispose() {
	if err := b.src.Close(); err != nil {
		b.logger.Debug("upstream close failed",
			zap.String("segment", b.segment),
			zap.Error(err),
		)
	}
}

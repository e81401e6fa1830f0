package replay

import (
	"context"
	"sync/atomic"
)

// outcome tags the reason a waiter was resolved.
type outcome int

const (
	outcomeProceed outcome = iota
	outcomeExhausted
	outcomeFailed
	outcomeCancelled
)

// waiter is a transient one-shot signal for a reader blocked on an index
// beyond the buffer tail. It is resolved exactly once: the first caller to
// win the CAS delivers its outcome, every later resolve is a no-op. The
// outcome channel is buffered so the winner never blocks.
type waiter struct {
	resolved atomic.Bool
	ch       chan outcome
}

func newWaiter() *waiter {
	return &waiter{ch: make(chan outcome, 1)}
}

// resolve delivers o if the waiter is still pending and reports whether this
// call won the resolution race.
func (w *waiter) resolve(o outcome) bool {
	if !w.resolved.CompareAndSwap(false, true) {
		return false
	}
	w.ch <- o
	return true
}

// await blocks until the waiter is resolved or ctx is done. Cancellation
// resolves only this waiter; if it races with a natural resolution, the
// resolution that lands first wins and the loser is a no-op.
func (w *waiter) await(ctx context.Context) (outcome, error) {
	select {
	case o := <-w.ch:
		return o, nil
	case <-ctx.Done():
		if w.resolve(outcomeCancelled) {
			return outcomeCancelled, ctx.Err()
		}
		// Lost the race: a natural resolution already landed.
		return <-w.ch, nil
	}
}

package flows

import (
	"context"

	flowerrors "github.com/elastiflow/flows/errors"
)

// Accumulator is a user defined function type folding an element into an accumulator
type Accumulator[T any, A any] func(A, T) (A, error)

// Fold drains the Flow, threading an accumulator through each element, and
// returns the final accumulator value.
func Fold[T any, A any](ctx context.Context, f Flow[T], seed A, fn Accumulator[T, A], params ...Params) (A, error) {
	param := applyParams(params...)
	seq := f.Iterate(ctx)
	defer seq.Close()
	acc := seed
	for {
		v, ok, err := seq.Next(ctx)
		if err != nil {
			return acc, err
		}
		if !ok {
			return acc, nil
		}
		acc, err = fn(acc, v)
		if err != nil {
			return acc, newFoldError(param.SegmentName, err)
		}
	}
}

// First drains the Flow until pred holds and returns the matching element.
// The second return reports whether a match was found before exhaustion.
func First[T any](ctx context.Context, f Flow[T], pred func(T) bool) (T, bool, error) {
	var zero T
	seq := f.Iterate(ctx)
	defer seq.Close()
	for {
		v, ok, err := seq.Next(ctx)
		if err != nil {
			return zero, false, err
		}
		if !ok {
			return zero, false, nil
		}
		if pred(v) {
			return v, true, nil
		}
	}
}

// Collect drains the Flow and returns all of its elements in order.
func Collect[T any](ctx context.Context, f Flow[T]) ([]T, error) {
	var out []T
	seq := f.Iterate(ctx)
	defer seq.Close()
	for {
		v, ok, err := seq.Next(ctx)
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, v)
	}
}

// ForEach drains the Flow, invoking fn on each element in order. The first
// error, from the sequence or from fn, stops the drain.
func ForEach[T any](ctx context.Context, f Flow[T], fn Effect[T]) error {
	seq := f.Iterate(ctx)
	defer seq.Close()
	for {
		v, ok, err := seq.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := fn(v); err != nil {
			return err
		}
	}
}

// Emit bridges the Flow onto a channel, closing it when the sequence ends.
// A terminal sequence error is sent to errs, wrapped with the stage name,
// and ends the stream; pass a nil errs to drop errors.
func (f Flow[T]) Emit(ctx context.Context, errs chan<- error, params ...Params) <-chan T {
	param := applyParams(params...)
	out := make(chan T, param.BufferSize)
	go func() {
		defer close(out)
		seq := f.Iterate(ctx)
		defer seq.Close()
		for {
			v, ok, err := seq.Next(ctx)
			if err != nil {
				if errs != nil {
					errs <- flowerrors.NewStage(param.SegmentName, "emit", err)
				}
				return
			}
			if !ok {
				return
			}
			select {
			case out <- v:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

package flows

import "context"

// Flow is a deferred, re-enterable recipe for an asynchronous sequence.
// Operators build new Flows without running anything; each Iterate of an
// unshared Flow re-runs the entire upstream chain from scratch.
type Flow[T any] struct {
	iterate func(ctx context.Context) Sequence[T]
}

// New constructs a Flow from a sequence factory. The factory is invoked once
// per iteration and must return a fresh Sequence each time.
func New[T any](iterate func(ctx context.Context) Sequence[T]) Flow[T] {
	return Flow[T]{iterate: iterate}
}

// FromSequence wraps an already-constructed Sequence in a Flow. The resulting
// Flow is single-pass: every iteration hands back the same sequence.
func FromSequence[T any](seq Sequence[T]) Flow[T] {
	return New(func(context.Context) Sequence[T] {
		return seq
	})
}

// Iterate starts a fresh run of the flow's upstream chain. The caller owns
// the returned sequence and is responsible for closing it.
func (f Flow[T]) Iterate(ctx context.Context) Sequence[T] {
	return f.iterate(ctx)
}

// Run applies a user defined Processor to each element of the Flow
func (f Flow[T]) Run(proc Processor[T], params ...Params) Flow[T] {
	param := applyParams(params...)
	return New(func(ctx context.Context) Sequence[T] {
		return &runSequence[T]{src: f.Iterate(ctx), proc: proc, segment: param.SegmentName}
	})
}

// Filter yields only the elements for which a user defined Filter holds
func (f Flow[T]) Filter(filter Filter[T], params ...Params) Flow[T] {
	param := applyParams(params...)
	return New(func(ctx context.Context) Sequence[T] {
		return &filterSequence[T]{src: f.Iterate(ctx), filter: filter, segment: param.SegmentName}
	})
}

// Tap invokes a user defined Effect on each element and yields the element unchanged
func (f Flow[T]) Tap(effect Effect[T], params ...Params) Flow[T] {
	param := applyParams(params...)
	return New(func(ctx context.Context) Sequence[T] {
		return &tapSequence[T]{src: f.Iterate(ctx), effect: effect, segment: param.SegmentName}
	})
}

// Take yields at most n elements from the Flow
func (f Flow[T]) Take(n int, params ...Params) Flow[T] {
	return New(func(ctx context.Context) Sequence[T] {
		return &takeSequence[T]{src: f.Iterate(ctx), remaining: n}
	})
}

// Map applies a user defined Transformer to each element of the input Flow
func Map[T any, U any](f Flow[T], transform Transformer[T, U], params ...Params) Flow[U] {
	param := applyParams(params...)
	return New(func(ctx context.Context) Sequence[U] {
		return &mapSequence[T, U]{src: f.Iterate(ctx), transform: transform, segment: param.SegmentName}
	})
}

// FlatMap expands each element of the input Flow into an inner Flow and yields
// all of the inner elements, depth-first, before advancing the input.
func FlatMap[T any, U any](f Flow[T], expand Expander[T, U], params ...Params) Flow[U] {
	param := applyParams(params...)
	return New(func(ctx context.Context) Sequence[U] {
		return &flatMapSequence[T, U]{src: f.Iterate(ctx), expand: expand, segment: param.SegmentName}
	})
}

type runSequence[T any] struct {
	src     Sequence[T]
	proc    Processor[T]
	segment string
}

func (s *runSequence[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	v, ok, err := s.src.Next(ctx)
	if err != nil || !ok {
		return zero, false, err
	}
	out, err := s.proc(v)
	if err != nil {
		return zero, false, newRunError(s.segment, err)
	}
	return out, true, nil
}

func (s *runSequence[T]) Close() error {
	return s.src.Close()
}

type filterSequence[T any] struct {
	src     Sequence[T]
	filter  Filter[T]
	segment string
}

func (s *filterSequence[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	for {
		v, ok, err := s.src.Next(ctx)
		if err != nil || !ok {
			return zero, false, err
		}
		pass, err := s.filter(v)
		if err != nil {
			return zero, false, newFilterError(s.segment, err)
		}
		if pass {
			return v, true, nil
		}
	}
}

func (s *filterSequence[T]) Close() error {
	return s.src.Close()
}

type tapSequence[T any] struct {
	src     Sequence[T]
	effect  Effect[T]
	segment string
}

func (s *tapSequence[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	v, ok, err := s.src.Next(ctx)
	if err != nil || !ok {
		return zero, false, err
	}
	if err := s.effect(v); err != nil {
		return zero, false, newTapError(s.segment, err)
	}
	return v, true, nil
}

func (s *tapSequence[T]) Close() error {
	return s.src.Close()
}

type takeSequence[T any] struct {
	src       Sequence[T]
	remaining int
}

func (s *takeSequence[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if s.remaining <= 0 {
		return zero, false, nil
	}
	v, ok, err := s.src.Next(ctx)
	if err != nil || !ok {
		return zero, false, err
	}
	s.remaining--
	return v, true, nil
}

func (s *takeSequence[T]) Close() error {
	return s.src.Close()
}

type mapSequence[T any, U any] struct {
	src       Sequence[T]
	transform Transformer[T, U]
	segment   string
}

func (s *mapSequence[T, U]) Next(ctx context.Context) (U, bool, error) {
	var zero U
	v, ok, err := s.src.Next(ctx)
	if err != nil || !ok {
		return zero, false, err
	}
	out, err := s.transform(v)
	if err != nil {
		return zero, false, newMapError(s.segment, err)
	}
	return out, true, nil
}

func (s *mapSequence[T, U]) Close() error {
	return s.src.Close()
}

type flatMapSequence[T any, U any] struct {
	src     Sequence[T]
	expand  Expander[T, U]
	inner   Sequence[U]
	segment string
}

func (s *flatMapSequence[T, U]) Next(ctx context.Context) (U, bool, error) {
	var zero U
	for {
		if s.inner != nil {
			v, ok, err := s.inner.Next(ctx)
			if err != nil {
				_ = s.inner.Close()
				s.inner = nil
				return zero, false, err
			}
			if ok {
				return v, true, nil
			}
			// Inner exhausted; dispose before touching the outer sequence.
			_ = s.inner.Close()
			s.inner = nil
		}
		v, ok, err := s.src.Next(ctx)
		if err != nil || !ok {
			return zero, false, err
		}
		inner, err := s.expand(v)
		if err != nil {
			return zero, false, newFlatMapError(s.segment, err)
		}
		s.inner = inner.Iterate(ctx)
	}
}

func (s *flatMapSequence[T, U]) Close() error {
	if s.inner != nil {
		_ = s.inner.Close()
		s.inner = nil
	}
	return s.src.Close()
}

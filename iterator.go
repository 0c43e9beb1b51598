package progress

import (
	"iter"
)

// Iterator is the producer contract the recorder wraps: pull the next
// element or report exhaustion, and estimate the elements remaining.
// Producers do their own remaining-count bookkeeping, so hints describe
// elements not yet pulled.
type Iterator[T any] interface {
	Next() (T, bool)
	SizeHint() SizeHint
}

type sliceIterator[T any] struct {
	elems []T
}

func (me *sliceIterator[T]) Next() (t T, ok bool) {
	if len(me.elems) == 0 {
		return
	}
	t, ok = me.elems[0], true
	me.elems = me.elems[1:]
	return
}

func (me *sliceIterator[T]) SizeHint() SizeHint {
	return ExactHint(len(me.elems))
}

// FromSlice iterates the slice in order. The hint is exact and counts down
// as elements are pulled.
func FromSlice[T any](elems []T) Iterator[T] {
	return &sliceIterator[T]{elems}
}

type seqIterator[T any] struct {
	next func() (T, bool)
	stop func()
}

func (me *seqIterator[T]) Next() (t T, ok bool) {
	t, ok = me.next()
	if !ok {
		me.stop()
	}
	return
}

func (me *seqIterator[T]) SizeHint() SizeHint {
	return UnknownHint(0)
}

// FromSeq pulls from an iter.Seq. Sequences carry no size information, so
// the hint is never exact. The underlying coroutine is stopped when the
// sequence reports exhaustion; abandon a partly-pulled infinite sequence
// and it stays live until collected.
func FromSeq[T any](seq iter.Seq[T]) Iterator[T] {
	next, stop := iter.Pull(seq)
	return &seqIterator[T]{next, stop}
}

type funcIterator[T any] struct {
	next func() (T, bool)
	hint func() SizeHint
}

func (me *funcIterator[T]) Next() (T, bool) {
	return me.next()
}

func (me *funcIterator[T]) SizeHint() SizeHint {
	if me.hint == nil {
		return UnknownHint(0)
	}
	return me.hint()
}

// FromFunc adapts a bare pull function, so closures can be tracked without
// defining a type. hint may be nil for producers that can't estimate
// themselves.
func FromFunc[T any](next func() (T, bool), hint func() SizeHint) Iterator[T] {
	return &funcIterator[T]{next, hint}
}

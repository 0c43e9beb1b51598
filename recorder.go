package progress

import (
	"iter"
	"time"
)

// Recorder wraps an Iterator and stamps a Record on every element it
// produces. The recorder owns its source exclusively; neither is safe to
// share across goroutines.
type Recorder[T any] struct {
	src       Iterator[T]
	count     int
	started   time.Time
	exhausted bool
	// Swapped out by tests for deterministic elapsed times.
	now func() time.Time
}

// NewRecorder wraps src, starting the elapsed-time baseline now. Elapsed
// times use the monotonic clock reading that time.Now carries, so they
// don't skew with wall-clock adjustments.
func NewRecorder[T any](src Iterator[T]) *Recorder[T] {
	return &Recorder[T]{
		src:     src,
		started: time.Now(),
		now:     time.Now,
	}
}

// Track is NewRecorder under the name call sites tend to read better with.
func Track[T any](src Iterator[T]) *Recorder[T] {
	return NewRecorder(src)
}

// Next pulls the next element from the source and stamps a fresh Record
// for it. Exhaustion is sticky: after the first false the source is never
// pulled again and the count stops changing, whatever the source would do.
func (me *Recorder[T]) Next() (_ Record, t T, ok bool) {
	if me.exhausted {
		return
	}
	t, ok = me.src.Next()
	if !ok {
		me.exhausted = true
		return
	}
	me.count++
	return Record{
		num:     me.count,
		elapsed: me.now().Sub(me.started),
		hint:    me.src.SizeHint(),
	}, t, true
}

// SizeHint passes the source's estimate through untouched. The source
// accounts for elements already pulled itself.
func (me *Recorder[T]) SizeHint() SizeHint {
	return me.src.SizeHint()
}

// CountRemaining drains the source and returns how many elements were
// left, discarding progress tracking. The recorder is exhausted afterward.
func (me *Recorder[T]) CountRemaining() (n int) {
	if me.exhausted {
		return 0
	}
	for {
		_, ok := me.src.Next()
		if !ok {
			break
		}
		n++
	}
	me.exhausted = true
	return
}

// All projects the tracked sequence as a range-over-func sequence of
// (Record, element) pairs. Breaking out leaves the recorder where it was;
// ranging again resumes from there.
func (me *Recorder[T]) All() iter.Seq2[Record, T] {
	return func(yield func(Record, T) bool) {
		for {
			rec, t, ok := me.Next()
			if !ok {
				return
			}
			if !yield(rec, t) {
				return
			}
		}
	}
}

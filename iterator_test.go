package progress

import (
	"testing"

	qt "github.com/go-quicktest/qt"
)

func TestFromSliceOrderAndHint(t *testing.T) {
	it := FromSlice([]string{"a", "b", "c"})
	qt.Assert(t, qt.Equals(it.SizeHint(), ExactHint(3)))
	for i, want := range []string{"a", "b", "c"} {
		v, ok := it.Next()
		qt.Assert(t, qt.IsTrue(ok))
		qt.Assert(t, qt.Equals(v, want))
		qt.Assert(t, qt.Equals(it.SizeHint(), ExactHint(2-i)))
	}
	_, ok := it.Next()
	qt.Assert(t, qt.IsFalse(ok))
	qt.Assert(t, qt.IsTrue(it.SizeHint().Exact()))
	qt.Assert(t, qt.Equals(it.SizeHint().Lower, 0))
}

func TestFromSeqFinite(t *testing.T) {
	it := FromSeq[int](func(yield func(int) bool) {
		for i := range 3 {
			if !yield(i) {
				return
			}
		}
	})
	qt.Assert(t, qt.IsFalse(it.SizeHint().Exact()))
	for want := range 3 {
		v, ok := it.Next()
		qt.Assert(t, qt.IsTrue(ok))
		qt.Assert(t, qt.Equals(v, want))
	}
	_, ok := it.Next()
	qt.Assert(t, qt.IsFalse(ok))
	// Pulling an exhausted pull iterator keeps returning false.
	_, ok = it.Next()
	qt.Assert(t, qt.IsFalse(ok))
}

func TestExactHint(t *testing.T) {
	qt.Assert(t, qt.IsTrue(ExactHint(0).Exact()))
	qt.Assert(t, qt.IsFalse(UnknownHint(5).Exact()))
	qt.Assert(t, qt.IsFalse(SizeHint{Lower: 1, Upper: ExactHint(2).Upper}.Exact()))
}

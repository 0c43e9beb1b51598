package progress

import (
	g "github.com/anacrolix/generics"
)

// SizeHint bounds how many elements a producer believes remain. Lower is
// always valid; Upper is absent when the producer can't bound itself from
// above.
type SizeHint struct {
	Lower int
	Upper g.Option[int]
}

// ExactHint is the hint of a producer that knows exactly how many elements
// remain.
func ExactHint(n int) SizeHint {
	return SizeHint{Lower: n, Upper: g.Some(n)}
}

// UnknownHint bounds the remaining elements from below only.
func UnknownHint(lower int) SizeHint {
	return SizeHint{Lower: lower}
}

// Exact reports whether the hint pins the remaining count to a single value.
func (me SizeHint) Exact() bool {
	return me.Upper.Ok && me.Upper.Value == me.Lower
}

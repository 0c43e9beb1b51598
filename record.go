package progress

import (
	"fmt"
	"math"
	"time"

	g "github.com/anacrolix/generics"
	"github.com/anacrolix/missinggo/v2/panicif"
)

// Record is an immutable snapshot of where iteration was when one element
// was produced. Records hold no reference to the recorder that stamped
// them.
type Record struct {
	num     int
	elapsed time.Duration
	hint    SizeHint
}

// NumDone returns how many elements have been produced, counting the one
// this record came with.
func (me Record) NumDone() int {
	return me.num
}

// DurationSinceStart is the time between the recorder's creation and this
// element being produced.
func (me Record) DurationSinceStart() time.Duration {
	return me.elapsed
}

// SizeHint is the producer's remaining-size estimate at the time of this
// pull.
func (me Record) SizeHint() SizeHint {
	return me.hint
}

// Rate is elements per whole elapsed second. Inside the first second this
// is +Inf by IEEE division, not an error.
func (me Record) Rate() float64 {
	return float64(me.num) / float64(me.elapsed/time.Second)
}

// Fraction of the sequence produced so far, present only when the producer
// knows exactly how much remains. Not smoothed: a producer whose estimate
// grows between pulls moves the fraction backwards, and callers see that
// honestly.
func (me Record) Fraction() (_ g.Option[float64]) {
	if !me.hint.Exact() {
		return
	}
	return g.Some(float64(me.num) / float64(me.num+me.hint.Lower))
}

// Percent is Fraction scaled to 0-100.
func (me Record) Percent() (_ g.Option[float64]) {
	f := me.Fraction()
	if !f.Ok {
		return
	}
	return g.Some(f.Value * 100)
}

// Eta estimates the time left at the current rate. Absent unless the size
// hint is exact and at least a whole second has elapsed.
func (me Record) Eta() (_ g.Option[time.Duration]) {
	if !me.hint.Exact() {
		return
	}
	rate := me.Rate()
	if math.IsInf(rate, 1) {
		return
	}
	return g.Some(time.Duration(float64(me.hint.Lower) / rate * float64(time.Second)))
}

// Message is the stock one-line summary. Seconds are whole, rounded down.
func (me Record) Message() string {
	return fmt.Sprintf(
		"Have seen %d items and been iterating for %d seconds",
		me.num,
		int64(me.elapsed/time.Second))
}

func (me Record) String() string {
	return me.Message()
}

// PrintMessage writes Message to stdout on its own line.
func (me Record) PrintMessage() {
	fmt.Println(me.Message())
}

// ShouldPrintEvery reports whether this element lands on the period: true
// for the first element regardless of n, then every nth element after it.
// The period must be positive.
func (me Record) ShouldPrintEvery(n int) bool {
	panicif.LessThanOrEqual(n, 0)
	return (me.num-1)%n == 0
}

// PrintEvery writes msg to stdout iff this element lands on the period. No
// newline is added.
func (me Record) PrintEvery(n int, msg string) {
	if me.ShouldPrintEvery(n) {
		fmt.Print(msg)
	}
}

package progress

import (
	"github.com/anacrolix/log"
)

// LogEvery emits the stock message through logger iff this element lands
// on the period. Same period contract as ShouldPrintEvery. Use this over
// PrintEvery when output should go through the caller's logging setup
// rather than raw stdout.
func (me Record) LogEvery(logger log.Logger, n int) {
	if me.ShouldPrintEvery(n) {
		logger.Printf("%s", me.Message())
	}
}

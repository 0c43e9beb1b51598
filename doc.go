/*
Package progress wraps sequence producers so each element comes with a
snapshot of how iteration is going: elements seen, time elapsed, and how far
along the sequence is when the producer can say.

Simple example:

	r := progress.Track(progress.FromSlice(items))
	for {
		rec, item, ok := r.Next()
		if !ok {
			break
		}
		handle(item)
		rec.PrintEvery(1000, ".")
	}

Records are plain values owned by the caller. The recorder adds no failure
modes of its own: exhaustion is the wrapped producer's, surfaced through the
usual ok bool.
*/
package progress

// Demonstrates progress tracking around a sequence: generates integers, or
// reads lines from stdin, and prints a progress line on a period.
//
// Example run:
//
//	$ go run ./cmd/progress-demo -n 100000 -every 10000 -delay 10us
//	104.815ms: 1 elements (0.0%)
//	1.087s: 10,001 elements (10.0%), 9s left
//	2.06s: 20,001 elements (20.0%), 8s left
//	...
package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/anacrolix/envpprof"
	"github.com/anacrolix/log"
	"github.com/dustin/go-humanize"

	"github.com/anacrolix/progress"
)

type lineIterator struct {
	scanner *bufio.Scanner
}

func (me *lineIterator) Next() (string, bool) {
	if !me.scanner.Scan() {
		return "", false
	}
	return me.scanner.Text(), true
}

func (me *lineIterator) SizeHint() progress.SizeHint {
	return progress.UnknownHint(0)
}

var args = struct {
	N     int           `help:"how many integers to generate"`
	Stdin bool          `help:"track lines from stdin instead of generating"`
	Every int           `help:"print a progress line every this many elements"`
	Delay time.Duration `help:"sleep between generated elements"`
}{
	N:     1000,
	Every: 100,
}

func main() {
	defer envpprof.Stop()
	arg.MustParse(&args)
	err := mainErr()
	if err != nil {
		log.Printf("error in main: %v", err)
		os.Exit(1)
	}
}

func mainErr() error {
	if args.Every <= 0 {
		return fmt.Errorf("period must be positive, got %v", args.Every)
	}
	if args.Stdin {
		src := lineIterator{bufio.NewScanner(os.Stdin)}
		drain(progress.Track[string](&src), args.Every)
		return src.scanner.Err()
	}
	remaining := args.N
	drain(progress.Track(progress.FromFunc(
		func() (int, bool) {
			if remaining == 0 {
				return 0, false
			}
			if args.Delay > 0 {
				time.Sleep(args.Delay)
			}
			remaining--
			return args.N - remaining, true
		},
		func() progress.SizeHint { return progress.ExactHint(remaining) },
	)), args.Every)
	return nil
}

func drain[T any](r *progress.Recorder[T], every int) {
	var last progress.Record
	for rec := range r.All() {
		if rec.ShouldPrintEvery(every) {
			printLine(rec)
		}
		last = rec
	}
	if last.NumDone() > 0 && !last.ShouldPrintEvery(every) {
		printLine(last)
	}
}

func printLine(rec progress.Record) {
	line := fmt.Sprintf(
		"%v: %v elements",
		rec.DurationSinceStart().Truncate(time.Millisecond),
		humanize.Comma(int64(rec.NumDone())))
	if p := rec.Percent(); p.Ok {
		line += fmt.Sprintf(" (%.1f%%)", p.Value)
	}
	if eta := rec.Eta(); eta.Ok {
		line += fmt.Sprintf(", %v left", eta.Value.Truncate(time.Second))
	}
	fmt.Println(line)
}

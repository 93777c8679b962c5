package encoder

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/openhours/ohgo/eval"
)

// StreamIntervals writes e's intervals() sequence over [from, until) to w,
// one "start - end: state" line per interval, without materializing the
// whole sequence in memory.
func StreamIntervals(ctx context.Context, w io.Writer, e *eval.Evaluator, from, until time.Time) error {
	for interval := range e.Intervals(ctx, from, until) {
		line := fmt.Sprintf("%s - %s: %s\n",
			interval.Start.Format(time.RFC3339),
			interval.End.Format(time.RFC3339),
			interval.Result.State,
		)
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return nil
}

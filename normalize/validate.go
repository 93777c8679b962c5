package normalize

import (
	"fmt"
	"time"

	"github.com/openhours/ohgo/eval"
	"github.com/openhours/ohgo/semantics"
)

// Validate spot-checks that normalizing did not change behavior: state()
// must agree between the original and normalized expressions at every
// instant in samples (normalization invariant).
func Validate(original, normalized *semantics.Expression, ctx semantics.EvaluationContext, samples []time.Time) error {
	before := eval.New(original, ctx)
	after := eval.New(normalized, ctx)

	for _, instant := range samples {
		a, b := before.State(instant), after.State(instant)
		if a.State != b.State {
			return fmt.Errorf("normalize changed state() at %v: %v -> %v", instant, a.State, b.State)
		}
	}
	return nil
}

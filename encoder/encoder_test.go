package encoder

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/openhours/ohgo/compiler"
	"github.com/openhours/ohgo/eval"
	"github.com/openhours/ohgo/semantics"
)

func TestRoundTrip(t *testing.T) {
	cases := []string{
		"Mo-Fr 10:00-18:00",
		"Mo-Fr 10:00-18:00; Sa-Su 10:00-12:00",
		"24/7",
		"24/7 off",
		"Oct 12:00-24:00",
		"PH off",
		"sunrise-sunset",
		"W01-10/2 10:00-18:00",
	}

	for _, text := range cases {
		expr, err := compiler.Parse(text)
		if err != nil {
			t.Fatalf("compiler.Parse(%q) error = %v", text, err)
		}
		out := ToString(expr)

		roundTripped, err := compiler.Parse(out)
		if err != nil {
			t.Fatalf("Parse(ToString(%q)) = %q, error = %v", text, out, err)
		}

		probe := time.Date(2024, 6, 15, 11, 0, 0, 0, time.UTC)
		a := eval.New(expr, semantics.DefaultEvaluationContext()).State(probe)
		b := eval.New(roundTripped, semantics.DefaultEvaluationContext()).State(probe)
		if a.State != b.State {
			t.Errorf("round-trip of %q -> %q changed state() at %v: %v vs %v", text, out, probe, a.State, b.State)
		}
	}
}

func TestStreamIntervals(t *testing.T) {
	expr, err := compiler.Parse("Mo-Fr 10:00-12:00")
	if err != nil {
		t.Fatalf("compiler.Parse() error = %v", err)
	}
	e := eval.New(expr, semantics.DefaultEvaluationContext())

	var buf strings.Builder
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	if err := StreamIntervals(context.Background(), &buf, e, from, until); err != nil {
		t.Fatalf("StreamIntervals() error = %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("StreamIntervals wrote nothing")
	}
	if !strings.Contains(buf.String(), "open") && !strings.Contains(buf.String(), "closed") {
		t.Errorf("output = %q, want state names", buf.String())
	}
}

// Package bench times scalar against vectorized quad addition.
//
// Run reproduces the fixed comparison: one scalar and one vector sum of the
// inputs [4.5 3 2 1] and [9 7 6.25 5] are printed, then each mode is
// repeated DefaultIterations times and the elapsed microseconds are reported.
package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/cwbudde/algo-simdquad/quad"
)

// DefaultIterations is how many times each mode is timed.
const DefaultIterations = 100000

// Option configures a measurement.
type Option func(*config)

type config struct {
	iterations int
	now        func() time.Time
}

func defaultConfig() config {
	return config{
		iterations: DefaultIterations,
		now:        time.Now,
	}
}

// WithIterations sets the repetition count for each timed loop. Values below
// one are ignored.
func WithIterations(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.iterations = n
		}
	}
}

// WithClock replaces time.Now as the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}

// Report is the outcome of one measurement.
type Report struct {
	ScalarSum quad.Quad
	VectorSum quad.Quad

	// Iterations is the repetition count each timed loop used.
	Iterations int

	// ScalarMicros and VectorMicros are elapsed wall-clock microseconds,
	// never negative.
	ScalarMicros int64
	VectorMicros int64
}

// Measure computes both sums once, then times each mode.
func Measure(opts ...Option) Report {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	a := quad.Quad{4.5, 3.0, 2.0, 1.0}
	b := quad.Quad{9.0, 7.0, 6.25, 5.0}

	r := Report{
		ScalarSum:  *quad.ScalarAdd(a, b),
		VectorSum:  quad.VectorAdd(a, b).Array(),
		Iterations: cfg.iterations,
	}

	start := cfg.now()
	for i := 0; i < cfg.iterations; i++ {
		_ = quad.ScalarAdd(a, b)
	}
	r.ScalarMicros = elapsedMicros(start, cfg.now())

	start = cfg.now()
	for i := 0; i < cfg.iterations; i++ {
		_ = quad.VectorAdd(a, b)
	}
	r.VectorMicros = elapsedMicros(start, cfg.now())

	return r
}

// elapsedMicros uses the monotonic reading when both times carry one.
func elapsedMicros(start, stop time.Time) int64 {
	us := stop.Sub(start).Microseconds()
	if us < 0 {
		return 0
	}
	return us
}

// WriteReport renders r in the fixed text layout.
func WriteReport(w io.Writer, r Report) error {
	if _, err := fmt.Fprintf(w, "Sum: %s\n", formatQuad(r.ScalarSum)); err != nil {
		return fmt.Errorf("bench: write scalar sum: %w", err)
	}
	if _, err := fmt.Fprintf(w, "Sum (vector): %s\n", formatQuad(r.VectorSum)); err != nil {
		return fmt.Errorf("bench: write vector sum: %w", err)
	}
	if _, err := fmt.Fprintf(w, "\nNon-vectorized time (microsec): %02d\n", r.ScalarMicros); err != nil {
		return fmt.Errorf("bench: write scalar time: %w", err)
	}
	if _, err := fmt.Fprintf(w, "Vectorized time (microsec): %02d\n\n", r.VectorMicros); err != nil {
		return fmt.Errorf("bench: write vector time: %w", err)
	}
	return nil
}

func formatQuad(q quad.Quad) string {
	return fmt.Sprintf("%.2f, %.2f, %.2f, %.2f", q[0], q[1], q[2], q[3])
}

// Run measures with opts and writes the report to w.
func Run(w io.Writer, opts ...Option) error {
	return WriteReport(w, Measure(opts...))
}

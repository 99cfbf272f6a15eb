package bench

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-simdquad/internal/cpu"
	"github.com/cwbudde/algo-simdquad/internal/kernels"
	"github.com/cwbudde/algo-simdquad/internal/kernels/arch/vek"
	"github.com/cwbudde/algo-simdquad/quad"
)

// KernelResult is the timing of one registered kernel.
type KernelResult struct {
	Name       string
	Level      cpu.SIMDLevel
	Priority   int
	Selected   bool
	Sum        quad.Quad
	Matches    bool // Sum equals quad.ReferenceAdd bit for bit
	Micros     int64
	NanosPerOp float64
}

// Survey times every kernel compatible with features on the fixed inputs.
// Kernels are called through the registry, so each timing includes one
// indirect call per iteration.
func Survey(features cpu.Features, opts ...Option) []KernelResult {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	a := quad.Quad{4.5, 3.0, 2.0, 1.0}
	b := quad.Quad{9.0, 7.0, 6.25, 5.0}
	want := quad.ReferenceAdd(a, b)

	best := kernels.Best(features)
	entries := kernels.Available(features)

	results := make([]KernelResult, 0, len(entries))
	for _, e := range entries {
		var dst [quad.Lanes]float32
		pa, pb := [quad.Lanes]float32(a), [quad.Lanes]float32(b)
		e.AddQuad(&dst, &pa, &pb)

		start := cfg.now()
		for i := 0; i < cfg.iterations; i++ {
			e.AddQuad(&dst, &pa, &pb)
		}
		stop := cfg.now()

		res := KernelResult{
			Name:     e.Name,
			Level:    e.SIMDLevel,
			Priority: e.Priority,
			Selected: e.Name == best.Name,
			Sum:      dst,
			Matches:  quad.Quad(dst) == want,
			Micros:   elapsedMicros(start, stop),
		}
		res.NanosPerOp = float64(stop.Sub(start).Nanoseconds()) / float64(cfg.iterations)
		if res.NanosPerOp < 0 {
			res.NanosPerOp = 0
		}
		results = append(results, res)
	}
	return results
}

// WriteSurvey renders results as an aligned table preceded by a CPU summary.
func WriteSurvey(w io.Writer, features cpu.Features, results []KernelResult) error {
	levels := features.Levels()
	names := make([]string, len(levels))
	for i, l := range levels {
		names[i] = l.String()
	}
	if _, err := fmt.Fprintf(w, "Architecture: %s\nSIMD levels: %s\nVectorAdd kernel: %s\nvek acceleration: %t [%s]\n\n",
		features.Architecture,
		strings.Join(names, ", "),
		quad.Implementation(),
		vek.Accelerated(),
		strings.Join(vek.Features(), " "),
	); err != nil {
		return fmt.Errorf("bench: write survey header: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Kernel\tLevel\tPriority\tSum\tExact\tTime [us]\tns/op\n"); err != nil {
		return fmt.Errorf("bench: write survey header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "------\t-----\t--------\t---\t-----\t---------\t-----\n"); err != nil {
		return fmt.Errorf("bench: write survey header: %w", err)
	}

	for _, r := range results {
		label := r.Name
		if r.Selected {
			label += " *"
		}
		exact := "yes"
		if !r.Matches {
			exact = "NO"
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%d\t%.2f\n",
			label, r.Level, r.Priority, formatQuad(r.Sum), exact, r.Micros, r.NanosPerOp,
		); err != nil {
			return fmt.Errorf("bench: write survey row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("bench: flush survey: %w", err)
	}
	return nil
}

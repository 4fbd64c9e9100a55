package main

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/palindromes/builder"
	"github.com/katalvlaran/palindromes/palgrid"
	"github.com/katalvlaran/palindromes/palindrome"
)

// benchFlags are the bench subcommand's own flags.
type benchFlags struct {
	min, max, factor int
	seed             int64
	grid             bool
}

// BenchRow is one timed run.
type BenchRow struct {
	Elements    int      `json:"elements" yaml:"elements"`
	Shape       string   `json:"shape,omitempty" yaml:"shape,omitempty"`
	Millis      float64  `json:"millis" yaml:"millis"`
	Palindromes int      `json:"palindromes" yaml:"palindromes"`
	Samples     []string `json:"samples" yaml:"samples"`
}

// BenchReport is the timing table plus a least-squares fit of time against
// input size. A linear engine shows R² close to 1 and a stable slope.
type BenchReport struct {
	Rows        []BenchRow `json:"rows" yaml:"rows"`
	NsPerSymbol float64    `json:"ns_per_symbol" yaml:"ns_per_symbol"`
	InterceptMs float64    `json:"intercept_ms" yaml:"intercept_ms"`
	RSquared    float64    `json:"r_squared" yaml:"r_squared"`
}

// sampleCount is how many palindromes each row shows.
const sampleCount = 5

// newBenchCmd times the engines over random inputs of growing size.
func newBenchCmd(a *app) *cobra.Command {
	def := DefaultConfig().Bench
	f := &benchFlags{}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the engine on random inputs of growing size and fit a line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f.merge(cmd, a.cfg.Bench)
			report, err := a.runBench(f)
			if err != nil {
				return err
			}
			return a.writeBench(report)
		},
	}
	fl := cmd.Flags()
	fl.IntVar(&f.min, "min", def.Min, "smallest input (symbols or grid cells)")
	fl.IntVar(&f.max, "max", def.Max, "largest input (symbols or grid cells)")
	fl.IntVar(&f.factor, "factor", def.Factor, "growth factor between runs")
	fl.Int64Var(&f.seed, "seed", def.Seed, "seed for input generation")
	fl.BoolVar(&f.grid, "grid", false, "benchmark square-ish grids instead of strings")

	return cmd
}

// merge takes config-file values for every flag the user did not set.
func (f *benchFlags) merge(cmd *cobra.Command, cfg BenchConfig) {
	fl := cmd.Flags()
	if !fl.Changed("min") {
		f.min = cfg.Min
	}
	if !fl.Changed("max") {
		f.max = cfg.Max
	}
	if !fl.Changed("factor") {
		f.factor = cfg.Factor
	}
	if !fl.Changed("seed") {
		f.seed = cfg.Seed
	}
}

// runBench generates each input outside the timed region, then times only
// the engine call.
func (a *app) runBench(f *benchFlags) (BenchReport, error) {
	if f.min < 1 || f.max < f.min || f.factor < 2 {
		return BenchReport{}, fmt.Errorf("bench min=%d max=%d factor=%d: %w", f.min, f.max, f.factor, ErrBadConfig)
	}

	var report BenchReport
	for n := f.min; n <= f.max; n *= f.factor {
		row, err := benchOnce(n, f)
		if err != nil {
			return report, err
		}
		a.logger.Info("bench run",
			slog.Int("elements", row.Elements),
			slog.Float64("millis", row.Millis),
			slog.Int("palindromes", row.Palindromes))
		report.Rows = append(report.Rows, row)
		if n > math.MaxInt/f.factor {
			break
		}
	}
	report.fit()

	return report, nil
}

// benchOnce times one input of about n elements.
func benchOnce(n int, f *benchFlags) (BenchRow, error) {
	var (
		set     palindrome.Set
		row     BenchRow
		elapsed time.Duration
	)
	if f.grid {
		rows := int(math.Sqrt(float64(n)))
		cols := max(n/max(rows, 1), 1)
		rows = max(rows, 1)
		cells, err := builder.RandomGrid(rows, cols, builder.WithSeed(f.seed))
		if err != nil {
			return row, err
		}
		g, err := palgrid.NewGrid(cells)
		if err != nil {
			return row, err
		}
		start := time.Now()
		set, err = palgrid.FindAll(g)
		elapsed = time.Since(start)
		if err != nil {
			return row, err
		}
		row.Elements, row.Shape = rows*cols, fmt.Sprintf("%dx%d", rows, cols)
	} else {
		seq, err := builder.RandomSequence(n, builder.WithSeed(f.seed))
		if err != nil {
			return row, err
		}
		start := time.Now()
		set, err = palindrome.FindAll(seq)
		elapsed = time.Since(start)
		if err != nil {
			return row, err
		}
		row.Elements = n
	}

	row.Millis = float64(elapsed.Nanoseconds()) / 1e6
	row.Palindromes = set.Len()
	sorted := set.Sorted()
	row.Samples = sorted[:min(sampleCount, len(sorted))]

	return row, nil
}

// fit regresses milliseconds on element count. Fewer than two distinct
// sizes leave the fit at zero.
func (r *BenchReport) fit() {
	if len(r.Rows) < 2 {
		return
	}
	xs := make([]float64, len(r.Rows))
	ys := make([]float64, len(r.Rows))
	for i, row := range r.Rows {
		xs[i] = float64(row.Elements)
		ys[i] = row.Millis
	}
	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	r2 := stat.RSquared(xs, ys, nil, alpha, beta)
	// Constant timings (e.g. a coarse clock) leave the fit undefined;
	// NaN would also break the JSON encoder.
	r.InterceptMs = finite(alpha)
	r.NsPerSymbol = finite(beta * 1e6)
	r.RSquared = finite(r2)
}

// finite maps NaN and ±Inf to 0.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	return v
}

// writeBench emits the report in the configured format.
func (a *app) writeBench(r BenchReport) error {
	switch a.cfg.Output {
	case formatJSON:
		return writeJSON(a.out, r)
	case formatYAML:
		return writeYAML(a.out, r)
	}
	for _, row := range r.Rows {
		shape := ""
		if row.Shape != "" {
			shape = " Size: " + row.Shape
		}
		if _, err := fmt.Fprintf(a.out, "Elements: %d%s Time: %.3f ms Palindromes: %d\nSamples: %v ...\n\n",
			row.Elements, shape, row.Millis, row.Palindromes, row.Samples); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(a.out, "Fit: %.2f ns/element, intercept %.3f ms, R²=%.4f\n",
		r.NsPerSymbol, r.InterceptMs, r.RSquared)

	return err
}

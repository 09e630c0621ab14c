package revbench

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"
)

// Timing summarises the per-repetition durations of one variant.
// All values have millisecond granularity.
type Timing struct {
	Min    time.Duration
	Max    time.Duration
	Mean   time.Duration
	Median time.Duration
}

// String formats the timing the way the results table reports it.
func (t Timing) String() string {
	return fmt.Sprintf("Average:%v, Median:%v, Min:%v, Max:%v", t.Mean, t.Median, t.Min, t.Max)
}

// Result contains the measurements for a single variant.
type Result struct {
	Name       string          // Variant name
	Label      string          // Variant label
	Timing     Timing          // Reduced statistics
	Samples    []time.Duration // One duration per repetition, in run order
	Mismatches int64           // Iterations where reverse(x) != reverse³(x)
}

// Config controls timing execution.
type Config struct {
	Range    int32        // Values in [-Range, Range] are reversed each repetition
	Repeats  int          // Number of timed repetitions
	Progress io.Writer    // Receives one '.' per repetition (nil = discard)
	Logger   *slog.Logger // Threefold mismatch warnings (nil = slog.Default())
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Range:   2_000_000,
		Repeats: 10,
	}
}

// Validate reports whether the configuration can be run.
func (c Config) Validate() error {
	if c.Repeats < 1 {
		return fmt.Errorf("repeats must be at least 1, got %d", c.Repeats)
	}
	if c.Range < 0 {
		return fmt.Errorf("range must not be negative, got %d", c.Range)
	}
	return nil
}

// Calls returns how many times a variant is invoked per repetition.
func (c Config) Calls() int64 {
	return (2*int64(c.Range) + 1) * 3
}

// Measure binds the variant once and times cfg.Repeats sweeps over
// [-cfg.Range, cfg.Range].
//
// Each value is reversed three times and the first and third results are
// compared. A mismatch is logged and counted but does not stop the run.
func Measure(v Variant, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, fmt.Errorf("measure %s: %w", v.Name, err)
	}

	progress := cfg.Progress
	if progress == nil {
		progress = io.Discard
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("variant", v.Name)

	reverse := v.Bind()
	samples := make([]time.Duration, cfg.Repeats)
	var mismatches int64

	for rep := 0; rep < cfg.Repeats; rep++ {
		fmt.Fprint(progress, ".")

		n, elapsed := sweep(reverse, cfg.Range, logger)
		mismatches += n
		samples[rep] = elapsed
	}
	fmt.Fprintln(progress)

	if mismatches > 0 {
		logger.Warn("threefold reversal did not hold",
			"mismatches", mismatches,
			"repeats", cfg.Repeats)
	}

	return Result{
		Name:       v.Name,
		Label:      v.Label,
		Timing:     Summarize(samples),
		Samples:    samples,
		Mismatches: mismatches,
	}, nil
}

// sweep runs one timed repetition. The counter is int64 so that
// bound == math.MaxInt32 terminates.
func sweep(reverse Func, bound int32, logger *slog.Logger) (int64, time.Duration) {
	var mismatches int64
	hi := int64(bound)

	start := time.Now()
	for x := -hi; x <= hi; x++ {
		first := reverse(int32(x))
		second := reverse(first)
		third := reverse(second)

		// Using the results keeps the calls from being optimised away.
		if first != third {
			if mismatches == 0 {
				logger.Warn("failed to maintain the value",
					"input", x,
					"first", first,
					"third", third)
			}
			mismatches++
		}
	}

	return mismatches, time.Since(start)
}

// Summarize reduces samples to min, max, mean and median.
//
// Samples are truncated to whole milliseconds first. The median is the
// element at index len/2 of the sorted samples; for an even count that is the
// upper middle element, not an average of the two. The input is not modified.
func Summarize(samples []time.Duration) Timing {
	if len(samples) == 0 {
		return Timing{}
	}

	sorted := make([]time.Duration, len(samples))
	for i, s := range samples {
		sorted[i] = s.Truncate(time.Millisecond)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})

	var sum time.Duration
	for _, s := range sorted {
		sum += s
	}
	mean := (sum / time.Duration(len(sorted))).Truncate(time.Millisecond)

	return Timing{
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Mean:   mean,
		Median: sorted[len(sorted)/2],
	}
}

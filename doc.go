// Package revbench measures interchangeable implementations of one integer
// operation: reversing the decimal digits of an int32.
//
// # Overview
//
// Every variant honours the same contract:
//
//	reverse(256)  == 652
//	reverse(-256) == -652
//	reverse(1000) == 1     // trailing zeros vanish once leading
//	reverse(9)    == 9     // |x| < 10 is returned unchanged
//	reverse(2147483647) == 0 // reversed magnitude overflows int32
//
// Zero doubles as the overflow sentinel. It can only be told apart from a
// genuine zero by context.
//
// # Architecture
//
// The package components:
//
//   - reverse.go      - Arithmetic variants (lookup table, dynamic bound)
//   - reverse_text.go - Text variants (stack swap, slices.Reverse, shared and per-call heap buffers)
//   - variant.go      - Registry of named, bindable variants
//   - validate.go     - Correctness gate run before timing
//   - benchmark.go    - Timing harness and min/max/mean/median reduction
//   - rank.go         - Ordering of timing results
//   - assertions.go   - Test helpers for the reversal laws
//
// # Quick Start
//
// Validate, then time every variant:
//
//	variants := revbench.Variants()
//	for _, v := range revbench.CuratedInputs {
//	    revbench.Validate(os.Stdout, v, variants) // panics on divergence
//	}
//
//	cfg := revbench.DefaultConfig()
//	cfg.Progress = os.Stdout
//
//	var results []revbench.Result
//	for _, v := range variants {
//	    r, err := revbench.Measure(v, cfg)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    results = append(results, r)
//	}
//
//	for _, r := range revbench.Rank(results) {
//	    fmt.Printf("%-26s %s (x%.2f)\n", r.Label, r.Timing, r.Relative)
//	}
//
// # The threefold law
//
// reverse(reverse(x)) need not equal x (120 -> 21 -> 12), but
//
//	reverse(reverse(reverse(x))) == reverse(x)
//
// always holds, because the first reversal already drops the trailing zeros.
// The timing harness checks this on every iteration, which both validates the
// variant and keeps the calls observable.
//
// # Shared state
//
// The only mutable state is a ScratchBuffer. It is owned by whoever binds the
// heap-shared variant (Measure binds once per run) and must not be used from
// more than one goroutine at a time.
package revbench

package revbench

import (
	"fmt"
	"math"
	"testing"
)

// AssertionConfig controls which inputs the law assertions sweep.
type AssertionConfig struct {
	// Inclusive bounds of the sweep
	Lo, Hi int32

	// Distance between checked inputs (1 = exhaustive)
	Step int64

	// Failures listed before the assertion gives up
	MaxFailures int
}

// DefaultAssertionConfig samples the full int32 range with a prime stride.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		Lo:          math.MinInt32,
		Hi:          math.MaxInt32,
		Step:        9_973,
		MaxFailures: 10,
	}
}

// DenseAssertionConfig checks every input around zero, where most digit
// count transitions happen.
func DenseAssertionConfig() AssertionConfig {
	return AssertionConfig{
		Lo:          -100_000,
		Hi:          100_000,
		Step:        1,
		MaxFailures: 10,
	}
}

// each visits the configured sweep, then CuratedInputs (which hold both
// int32 bounds).
func (c AssertionConfig) each(visit func(x int32) bool) {
	step := c.Step
	if step < 1 {
		step = 1
	}
	for x := int64(c.Lo); x <= int64(c.Hi); x += step {
		if !visit(int32(x)) {
			return
		}
	}
	for _, x := range CuratedInputs {
		if !visit(x) {
			return
		}
	}
}

type failures struct {
	limit int
	lines []string
}

// add records a failure and reports whether the sweep should continue.
func (f *failures) add(format string, args ...any) bool {
	f.lines = append(f.lines, fmt.Sprintf("  "+format, args...))
	return f.limit <= 0 || len(f.lines) < f.limit
}

func (f *failures) report(t testing.TB, what string) {
	t.Helper()
	if len(f.lines) == 0 {
		return
	}
	msg := what + ":"
	for _, line := range f.lines {
		msg += "\n" + line
	}
	t.Error(msg)
}

// AssertSingleDigitIdentity verifies reverse(x) == x for |x| < 10.
func AssertSingleDigitIdentity(t testing.TB, v Variant) {
	t.Helper()

	reverse := v.Bind()
	f := failures{}
	for x := int32(-9); x <= 9; x++ {
		if got := reverse(x); got != x {
			f.add("%s(%d) = %d", v.Name, x, got)
		}
	}
	f.report(t, "single digits changed")
}

// AssertPowersOfTen verifies reverse(±10^k) == ±1.
func AssertPowersOfTen(t testing.TB, v Variant) {
	t.Helper()

	reverse := v.Bind()
	f := failures{}
	for _, p := range powersOfTen[1:] {
		x := int32(p)
		if got := reverse(x); got != 1 {
			f.add("%s(%d) = %d, want 1", v.Name, x, got)
		}
		if got := reverse(-x); got != -1 {
			f.add("%s(%d) = %d, want -1", v.Name, -x, got)
		}
	}
	f.report(t, "powers of ten did not collapse")
}

// AssertThreefoldStable verifies reverse(reverse(reverse(x))) == reverse(x).
func AssertThreefoldStable(t testing.TB, v Variant, cfg AssertionConfig) {
	t.Helper()

	reverse := v.Bind()
	f := failures{limit: cfg.MaxFailures}
	checked := 0
	cfg.each(func(x int32) bool {
		checked++
		first := reverse(x)
		if third := reverse(reverse(first)); third != first {
			return f.add("%s: x=%d reverse=%d reverse³=%d", v.Name, x, first, third)
		}
		return true
	})
	f.report(t, "threefold reversal not stable")

	t.Logf("✓ %s: threefold stable over %d inputs", v.Name, checked)
}

// AssertDigitsPreserved verifies that a non-overflowing reversal keeps the
// sign and the digits of x, less any trailing zeros.
func AssertDigitsPreserved(t testing.TB, v Variant, cfg AssertionConfig) {
	t.Helper()

	reverse := v.Bind()
	f := failures{limit: cfg.MaxFailures}
	cfg.each(func(x int32) bool {
		got := reverse(x)
		if got == 0 || (x < 10 && x > -10) {
			return true
		}
		if (got < 0) != (x < 0) {
			return f.add("%s(%d) = %d: sign flipped", v.Name, x, got)
		}
		src, _ := magnitude(x)
		for src%10 == 0 {
			src /= 10
		}
		dst, _ := magnitude(got)
		if digitCounts(src) != digitCounts(dst) {
			return f.add("%s(%d) = %d: digits differ", v.Name, x, got)
		}
		return true
	})
	f.report(t, "digits not preserved")
}

// AssertVariantsAgree verifies every variant returns the same output for
// every input of the sweep.
func AssertVariantsAgree(t testing.TB, variants []Variant, cfg AssertionConfig) {
	t.Helper()

	if len(variants) < 2 {
		t.Logf("only %d variant(s), nothing to compare", len(variants))
		return
	}

	funcs := make([]Func, len(variants))
	for i, v := range variants {
		funcs[i] = v.Bind()
	}

	f := failures{limit: cfg.MaxFailures}
	checked := 0
	cfg.each(func(x int32) bool {
		checked++
		want := funcs[0](x)
		for i := 1; i < len(funcs); i++ {
			if got := funcs[i](x); got != want {
				return f.add("x=%d: %s=%d %s=%d",
					x, variants[0].Name, want, variants[i].Name, got)
			}
		}
		return true
	})
	f.report(t, "variants disagree")

	t.Logf("✓ %d variants agree over %d inputs", len(variants), checked)
}

// AssertReversalLaws runs every law assertion against each variant.
func AssertReversalLaws(t *testing.T, variants []Variant, cfg AssertionConfig) {
	t.Helper()

	for _, v := range variants {
		t.Run(v.Name, func(t *testing.T) {
			t.Run("SingleDigitIdentity", func(t *testing.T) {
				AssertSingleDigitIdentity(t, v)
			})
			t.Run("PowersOfTen", func(t *testing.T) {
				AssertPowersOfTen(t, v)
			})
			t.Run("ThreefoldStable", func(t *testing.T) {
				AssertThreefoldStable(t, v, cfg)
			})
			t.Run("DigitsPreserved", func(t *testing.T) {
				AssertDigitsPreserved(t, v, cfg)
			})
		})
	}

	t.Run("VariantsAgree", func(t *testing.T) {
		AssertVariantsAgree(t, variants, cfg)
	})
}

// digitCounts returns how often each decimal digit occurs in n.
func digitCounts(n uint64) [10]int {
	var counts [10]int
	for n > 0 {
		counts[n%10]++
		n /= 10
	}
	return counts
}

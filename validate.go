package revbench

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// CuratedInputs are checked before any timing. They cover both signs,
// single digits, trailing zeros, the int32 bounds and values whose reversal
// lands near the overflow boundary.
var CuratedInputs = []int32{
	-1_987_654_321,
	256,
	-256,
	12_345,
	25,
	-25,
	2,
	-2,
	1,
	-1,
	0,
	10,
	9,
	1_000_000_003,
	-1_000_000_003,
	math.MinInt32,
	math.MinInt32 + 1,
	math.MaxInt32,
	math.MaxInt32 - 1,
	2_000_000_008,
	-2_000_000_008,
	1_463_847_412,
	-1_463_847_412,
}

// Outcome is one variant's answer for one input.
type Outcome struct {
	Name   string
	Tag    string
	Input  int32
	Output int32
}

// MismatchError reports variants that disagree on an input.
type MismatchError struct {
	Input    int32
	Outcomes []Outcome
}

func (e *MismatchError) Error() string {
	parts := make([]string, len(e.Outcomes))
	for i, o := range e.Outcomes {
		parts[i] = fmt.Sprintf("%s=%d", o.Name, o.Output)
	}
	return fmt.Sprintf("variants disagree on %d: %s", e.Input, strings.Join(parts, ", "))
}

// Check runs every variant on value and returns a *MismatchError unless all
// outputs are equal.
func Check(value int32, variants []Variant) ([]Outcome, error) {
	outcomes := make([]Outcome, len(variants))
	for i, v := range variants {
		outcomes[i] = Outcome{
			Name:   v.Name,
			Tag:    v.Tag,
			Input:  value,
			Output: v.Bind()(value),
		}
	}

	for i := 1; i < len(outcomes); i++ {
		if outcomes[i].Output != outcomes[0].Output {
			return outcomes, &MismatchError{Input: value, Outcomes: outcomes}
		}
	}

	return outcomes, nil
}

// Validate prints each variant's result for value and panics if any two
// disagree. A divergence means every later timing is meaningless, so it is
// not reported as an error.
func Validate(w io.Writer, value int32, variants []Variant) {
	outcomes, err := Check(value, variants)

	for _, o := range outcomes {
		fmt.Fprintf(w, "[%-15s] Inverting %d = %d\n", o.Tag, o.Input, o.Output)
	}
	fmt.Fprintln(w)

	if err != nil {
		panic(err)
	}
}

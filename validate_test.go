package revbench

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// TestCheck_AllAgree verifies the curated inputs pass the correctness gate.
func TestCheck_AllAgree(t *testing.T) {
	variants := Variants()

	for _, x := range CuratedInputs {
		outcomes, err := Check(x, variants)
		if err != nil {
			t.Fatalf("Check(%d) failed: %v", x, err)
		}
		if len(outcomes) != len(variants) {
			t.Fatalf("Expected %d outcomes, got %d", len(variants), len(outcomes))
		}
	}
}

// TestCheck_Mismatch verifies a divergent variant produces a MismatchError.
func TestCheck_Mismatch(t *testing.T) {
	variants := append(Variants(), Variant{
		Name: "negate",
		Tag:  "Negate",
		Bind: static(func(v int32) int32 { return -v }),
	})

	_, err := Check(256, variants)
	if err == nil {
		t.Fatal("Expected mismatch error, got nil")
	}

	var mismatch *MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("Expected *MismatchError, got %T", err)
	}
	if mismatch.Input != 256 {
		t.Errorf("Input: expected 256, got %d", mismatch.Input)
	}
	if !strings.Contains(err.Error(), "negate=-256") {
		t.Errorf("Error should list the divergent output: %v", err)
	}
}

// TestValidate_Output verifies the per-variant report lines.
func TestValidate_Output(t *testing.T) {
	var out bytes.Buffer

	Validate(&out, -256, Variants())

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("Expected 6 lines, got %d:\n%s", len(lines), out.String())
	}

	want := "[Char Stack     ] Inverting -256 = -652"
	if lines[0] != want {
		t.Errorf("Expected %q, got %q", want, lines[0])
	}
	for _, line := range lines {
		if !strings.HasSuffix(line, "= -652") {
			t.Errorf("Unexpected result line: %q", line)
		}
	}
	if !strings.HasSuffix(out.String(), "\n\n") {
		t.Error("Expected a blank line after the block")
	}
}

// TestValidate_PanicsOnMismatch verifies divergence is fatal.
func TestValidate_PanicsOnMismatch(t *testing.T) {
	var out bytes.Buffer
	variants := []Variant{
		Variants()[0],
		{Name: "identity", Tag: "Identity", Bind: static(func(v int32) int32 { return v })},
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Expected panic, got none")
		}
		if _, ok := r.(*MismatchError); !ok {
			t.Errorf("Expected *MismatchError panic, got %T", r)
		}
		// Results are printed before the panic.
		if !strings.Contains(out.String(), "[Identity       ] Inverting 25 = 25") {
			t.Errorf("Expected outcomes before panic, got:\n%s", out.String())
		}
	}()

	Validate(&out, 25, variants)
}

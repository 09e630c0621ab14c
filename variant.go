package revbench

import (
	"fmt"
	"strings"
)

// Variant is one named digit-reversal implementation.
type Variant struct {
	Name  string // CLI identifier: "stack-swap", "modulo-lookup", ...
	Tag   string // Short label for per-input validation lines
	Label string // Human-readable label used in reports

	// Bind returns the Func to call. Harnesses call it once per run, so any
	// state the variant needs lives exactly as long as that run.
	Bind func() Func
}

func static(f Func) func() Func {
	return func() Func { return f }
}

// Variants returns the six implementations in reporting order.
func Variants() []Variant {
	return []Variant{
		{Name: "stack-swap", Tag: "Char Stack", Label: "Char Stack", Bind: static(ReverseStackSwap)},
		{Name: "stack-reverse", Tag: "Char Stack Algo", Label: "Char Stack - Range Algo", Bind: static(ReverseStackReverse)},
		{Name: "heap-shared", Tag: "Char Shared", Label: "Char Heap - Shared Alloc", Bind: func() Func {
			return NewScratchBuffer().Reverse
		}},
		{Name: "heap-alloc", Tag: "Char Alloc", Label: "Char Heap - Always Alloc", Bind: static(ReverseHeapAlloc)},
		{Name: "modulo-lookup", Tag: "Modulo Lookup", Label: "Modulo Lookup", Bind: static(ReverseModuloLookup)},
		{Name: "modulo-multiply", Tag: "Modulo Multiply", Label: "Modulo Multiply", Bind: static(ReverseModuloMultiply)},
	}
}

// Lookup finds a variant by name.
func Lookup(name string) (Variant, bool) {
	for _, v := range Variants() {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}

// Select resolves names in the order given. An empty selection means all
// variants.
func Select(names []string) ([]Variant, error) {
	if len(names) == 0 {
		return Variants(), nil
	}

	selected := make([]Variant, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if seen[name] {
			continue
		}
		v, ok := Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown variant %q (have: %s)", name, strings.Join(Names(), ", "))
		}
		seen[name] = true
		selected = append(selected, v)
	}

	return selected, nil
}

// Names lists every variant name in reporting order.
func Names() []string {
	all := Variants()
	names := make([]string, len(all))
	for i, v := range all {
		names[i] = v.Name
	}
	return names
}

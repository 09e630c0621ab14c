// Command revbench validates and times the digit-reversal variants.
//
//	revbench                          # validate, then time all variants
//	revbench --range 500000 --repeats 5 --variants modulo-lookup,stack-swap
//	revbench validate 256 -1000       # correctness gate only
//	revbench list                     # registered variants
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

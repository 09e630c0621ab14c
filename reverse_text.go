package revbench

import (
	"slices"
	"strconv"
)

// MaxTextLen is the length of the longest int32 in decimal, "-2147483648".
// No terminator is stored.
const MaxTextLen = len("-2147483648")

// parseText converts reversed text back to an int32. Text that is out of
// range yields the overflow sentinel.
func parseText(text []byte) int32 {
	n, err := strconv.ParseInt(string(text), 10, 32)
	if err != nil {
		return 0
	}
	return int32(n)
}

// reverseInto formats v into buf, reverses the digits past any sign with
// slices.Reverse and parses the result. buf must have capacity MaxTextLen.
func reverseInto(buf []byte, v int32) int32 {
	text := strconv.AppendInt(buf[:0], int64(v), 10)

	digits := text
	if v < 0 {
		digits = text[1:]
	}
	slices.Reverse(digits)

	return parseText(text)
}

// ReverseStackSwap formats v into a local array and swaps the digit
// characters with an explicit index loop.
func ReverseStackSwap(v int32) int32 {
	if v < 10 && v > -10 {
		return v
	}

	var buf [MaxTextLen]byte
	text := strconv.AppendInt(buf[:0], int64(v), 10)

	start := 0
	if v < 0 {
		start = 1
	}
	for i, j := start, len(text)-1; i < j; i, j = i+1, j-1 {
		text[i], text[j] = text[j], text[i]
	}

	return parseText(text)
}

// ReverseStackReverse formats v into a local array and reverses the digit
// range with slices.Reverse.
func ReverseStackReverse(v int32) int32 {
	if v < 10 && v > -10 {
		return v
	}

	var buf [MaxTextLen]byte
	return reverseInto(buf[:], v)
}

// ReverseHeapAlloc allocates a fresh buffer on every call.
func ReverseHeapAlloc(v int32) int32 {
	if v < 10 && v > -10 {
		return v
	}

	buf := make([]byte, MaxTextLen)
	return reverseInto(buf, v)
}

// ScratchBuffer is a text buffer reused across calls to Reverse.
//
// It is not safe for concurrent use. The zero value allocates its storage on
// first use.
type ScratchBuffer struct {
	buf []byte
}

// NewScratchBuffer allocates a buffer sized for any int32.
func NewScratchBuffer() *ScratchBuffer {
	return &ScratchBuffer{buf: make([]byte, MaxTextLen)}
}

// Reverse reverses v using the shared buffer. The method value s.Reverse is
// a Func.
func (s *ScratchBuffer) Reverse(v int32) int32 {
	if v < 10 && v > -10 {
		return v
	}

	if s.buf == nil {
		s.buf = make([]byte, MaxTextLen)
	}
	return reverseInto(s.buf, v)
}

package revbench

import "math"

// Func reverses the decimal digits of v, keeping its sign.
// It returns 0 when the reversed magnitude does not fit in an int32.
type Func func(v int32) int32

// powersOfTen holds every power of ten representable in an int32.
var powersOfTen = [...]uint64{
	1, 10, 100, 1_000, 10_000, 100_000, 1_000_000, 10_000_000, 100_000_000, 1_000_000_000,
}

// magnitude widens v before negating so math.MinInt32 survives.
func magnitude(v int32) (abs uint64, negative bool) {
	wide := int64(v)
	if wide < 0 {
		return uint64(-wide), true
	}
	return uint64(wide), false
}

// narrow applies the sign to a reversed magnitude, or returns the overflow
// sentinel if it exceeds math.MaxInt32.
func narrow(result uint64, negative bool) int32 {
	if result > math.MaxInt32 {
		return 0
	}
	if negative {
		return -int32(result)
	}
	return int32(result)
}

func unit(negative bool) int32 {
	if negative {
		return -1
	}
	return 1
}

// ReverseModuloLookup extracts digits with (v / place) % 10, taking place
// values from a lookup table instead of multiplying them out.
func ReverseModuloLookup(v int32) int32 {
	if v < 10 && v > -10 {
		return v
	}

	src, negative := magnitude(v)

	// Never below 1 given the early return; stops one past the top place.
	top := 1
	for top < len(powersOfTen) && src >= powersOfTen[top] {
		top++
	}
	top--

	if src == powersOfTen[top] {
		return unit(negative)
	}

	var result uint64
	half := (top + 1) / 2
	for i := 0; i < half; i++ {
		lowPlace := powersOfTen[i]
		highPlace := powersOfTen[top-i]

		low := (src / lowPlace) % 10
		high := (src / highPlace) % 10

		result += low*highPlace + high*lowPlace
	}

	// Odd digit count: the middle digit stays where it is.
	if top&1 == 0 {
		place := powersOfTen[half]
		result += ((src / place) % 10) * place
	}

	return narrow(result, negative)
}

// ReverseModuloMultiply is ReverseModuloLookup with the highest place value
// found by repeated multiplication rather than a table scan.
func ReverseModuloMultiply(v int32) int32 {
	if v < 10 && v > -10 {
		return v
	}

	src, negative := magnitude(v)

	highPlace := uint64(10)
	for src >= highPlace {
		highPlace *= 10
	}
	highPlace /= 10

	if src == highPlace {
		return unit(negative)
	}

	var result uint64
	lowPlace := uint64(1)
	for ; lowPlace < highPlace; lowPlace, highPlace = lowPlace*10, highPlace/10 {
		low := (src / lowPlace) % 10
		high := (src / highPlace) % 10

		result += low*highPlace + high*lowPlace
	}

	// The places met on the middle digit; copy it rather than swapping it with itself.
	if lowPlace == highPlace {
		result += ((src / lowPlace) % 10) * lowPlace
	}

	return narrow(result, negative)
}

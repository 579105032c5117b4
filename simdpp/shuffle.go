package simdpp

// This file provides the permutation primitives consumed by the 64-bit
// insert emulation. They are kept separate from the strategies because
// they are ordinary data-movement operations, not lane mutations.

// shuffle1x2 selects 64-bit lanes from two registers: the result's lane 0
// is a's lane s0 and lane 1 is b's lane s1. This mirrors SHUFPD / a
// 64-bit lane blend.
//
// The insert emulation depends on the exact selector pairs (0,1) and
// (0,0); changing either silently swaps lanes without any failure to
// signal it.
func shuffle1x2(a, b reg128, s0, s1 int) reg128 {
	var r reg128
	r = r.setU64(0, a.u64(s0))
	r = r.setU64(1, b.u64(s1))
	return r
}

// zipLo32 interleaves the low two 32-bit lanes of a and b, mirroring
// PUNPCKLDQ: result = [a0, b0, a1, b1].
func zipLo32(a, b reg128) reg128 {
	var r reg128
	r = r.setU32(0, a.u32(0))
	r = r.setU32(1, b.u32(0))
	r = r.setU32(2, a.u32(1))
	r = r.setU32(3, b.u32(1))
	return r
}

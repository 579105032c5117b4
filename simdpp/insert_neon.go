package simdpp

import "math"

// NEON has a set-lane instruction for every element width, including a
// native float32 form, so every path is a single instruction.

// setLaneU8 mirrors vsetq_lane_u8.
func setLaneU8(x uint8, a reg128, id int) reg128 { return a.setU8(id, x) }

// setLaneU16 mirrors vsetq_lane_u16.
func setLaneU16(x uint16, a reg128, id int) reg128 { return a.setU16(id, x) }

// setLaneU32 mirrors vsetq_lane_u32.
func setLaneU32(x uint32, a reg128, id int) reg128 { return a.setU32(id, x) }

// setLaneU64 mirrors vsetq_lane_u64.
func setLaneU64(x uint64, a reg128, id int) reg128 { return a.setU64(id, x) }

// setLaneF32 mirrors vsetq_lane_f32.
func setLaneF32(x float32, a reg128, id int) reg128 { return a.setF32(id, x) }

type neonStrategy struct{}

func (neonStrategy) insertU8(a reg128, id int, x uint8) reg128 {
	return setLaneU8(x, a, id)
}

func (neonStrategy) insertU16(a reg128, id int, x uint16) reg128 {
	return setLaneU16(x, a, id)
}

func (neonStrategy) insertU32(a reg128, id int, x uint32) reg128 {
	return setLaneU32(x, a, id)
}

func (neonStrategy) insertU64(a reg128, id int, x uint64) reg128 {
	return setLaneU64(x, a, id)
}

func (neonStrategy) insertF32(a reg128, id int, x float32) reg128 {
	return setLaneF32(x, a, id)
}

func (s neonStrategy) insertF64(a reg128, id int, x float64) reg128 {
	// No bespoke float64 path: ride the integer insert on the raw bits.
	return s.insertU64(a, id, math.Float64bits(x))
}

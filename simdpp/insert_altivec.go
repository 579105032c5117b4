package simdpp

import "math"

// altivecStrategy stages through addressable memory: store the register,
// rewrite one element, load the block back. Costly, but the only option
// on a family without register-level lane mutation.
type altivecStrategy struct{}

func (altivecStrategy) insertU8(a reg128, id int, x uint8) reg128 {
	m := storeBlock(a)
	m.putU8(id, x)
	return m.load()
}

func (altivecStrategy) insertU16(a reg128, id int, x uint16) reg128 {
	m := storeBlock(a)
	m.putU16(id, x)
	return m.load()
}

func (altivecStrategy) insertU32(a reg128, id int, x uint32) reg128 {
	m := storeBlock(a)
	m.putU32(id, x)
	return m.load()
}

func (altivecStrategy) insertU64(a reg128, id int, x uint64) reg128 {
	m := storeBlock(a)
	m.putU64(id, x)
	return m.load()
}

func (s altivecStrategy) insertF32(a reg128, id int, x float32) reg128 {
	return s.insertU32(a, id, math.Float32bits(x))
}

func (s altivecStrategy) insertF64(a reg128, id int, x float64) reg128 {
	return s.insertU64(a, id, math.Float64bits(x))
}

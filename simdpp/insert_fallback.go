package simdpp

import "math"

// nullStrategy is the no-acceleration rendition of the insert contract:
// a direct lane write on the value copy. It is also the oracle the other
// strategies are verified against.
type nullStrategy struct{}

func (nullStrategy) insertU8(a reg128, id int, x uint8) reg128 {
	return a.setU8(id, x)
}

func (nullStrategy) insertU16(a reg128, id int, x uint16) reg128 {
	return a.setU16(id, x)
}

func (nullStrategy) insertU32(a reg128, id int, x uint32) reg128 {
	return a.setU32(id, x)
}

func (nullStrategy) insertU64(a reg128, id int, x uint64) reg128 {
	return a.setU64(id, x)
}

func (s nullStrategy) insertF32(a reg128, id int, x float32) reg128 {
	return s.insertU32(a, id, math.Float32bits(x))
}

func (s nullStrategy) insertF64(a reg128, id int, x float64) reg128 {
	return s.insertU64(a, id, math.Float64bits(x))
}

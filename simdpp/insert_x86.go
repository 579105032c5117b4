// Copyright 2026 go-simdpp Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package simdpp

import "math"

// The x86 strategies. SSE4.1 has a direct insert instruction for every
// element width; plain SSE2 only has the 16-bit one and composes the rest
// out of it. Both keep the portable semantics bit-exact.
//
// The narrow flag marks 32-bit-word builds, where there is no single-step
// move of a 64-bit scalar into a vector register and 64-bit values are
// synthesized from two 32-bit halves.

// insertEpi8 mirrors PINSRB (SSE4.1): replace 8-bit lane id with x.
func insertEpi8(a reg128, id int, x uint8) reg128 { return a.setU8(id, x) }

// insertEpi16 mirrors PINSRW (SSE2): replace 16-bit lane id with x.
func insertEpi16(a reg128, id int, x uint16) reg128 { return a.setU16(id, x) }

// extractEpi16 mirrors PEXTRW (SSE2): read 16-bit lane id.
func extractEpi16(a reg128, id int) uint16 { return a.u16(id) }

// insertEpi32 mirrors PINSRD (SSE4.1).
func insertEpi32(a reg128, id int, x uint32) reg128 { return a.setU32(id, x) }

// insertEpi64 mirrors PINSRQ (SSE4.1, 64-bit word builds only).
func insertEpi64(a reg128, id int, x uint64) reg128 { return a.setU64(id, x) }

// cvtsi32si128 mirrors MOVD: x in lane 0, upper lanes zero.
func cvtsi32si128(x uint32) reg128 {
	var r reg128
	return r.setU32(0, x)
}

// cvtsi64si128 mirrors MOVQ: x in lane 0, upper lane zero.
func cvtsi64si128(x uint64) reg128 {
	var r reg128
	return r.setU64(0, x)
}

// sse41Strategy uses the direct single-instruction insert per width.
type sse41Strategy struct {
	narrow bool
}

func (sse41Strategy) insertU8(a reg128, id int, x uint8) reg128 {
	return insertEpi8(a, id, x)
}

func (sse41Strategy) insertU16(a reg128, id int, x uint16) reg128 {
	return insertEpi16(a, id, x)
}

func (sse41Strategy) insertU32(a reg128, id int, x uint32) reg128 {
	return insertEpi32(a, id, x)
}

func (s sse41Strategy) insertU64(a reg128, id int, x uint64) reg128 {
	if s.narrow {
		// No PINSRQ without 64-bit general registers: insert the two
		// 32-bit halves into the paired 32-bit lanes.
		a = s.insertU32(a, id*2, uint32(x))
		return s.insertU32(a, id*2+1, uint32(x>>32))
	}
	return insertEpi64(a, id, x)
}

func (s sse41Strategy) insertF32(a reg128, id int, x float32) reg128 {
	return s.insertU32(a, id, math.Float32bits(x))
}

func (s sse41Strategy) insertF64(a reg128, id int, x float64) reg128 {
	return s.insertU64(a, id, math.Float64bits(x))
}

// sse2Strategy emulates the missing widths from the 16-bit insert and a
// construct-then-blend sequence for 64 bits.
type sse2Strategy struct {
	narrow bool
}

func (s sse2Strategy) insertU8(a reg128, id int, x uint8) reg128 {
	// Pull out the 16-bit unit containing the byte, splice the new byte
	// in, and put the unit back.
	r := extractEpi16(a, id/2)
	if id%2 == 1 {
		r = (r & 0x00ff) | uint16(x)<<8
	} else {
		r = (r & 0xff00) | uint16(x)
	}
	return insertEpi16(a, id/2, r)
}

func (s sse2Strategy) insertU16(a reg128, id int, x uint16) reg128 {
	return insertEpi16(a, id, x)
}

func (s sse2Strategy) insertU32(a reg128, id int, x uint32) reg128 {
	// Two 16-bit inserts into the paired lanes. Terminal base case: the
	// 16-bit path is a single instruction, so the recursion stops here.
	lo := uint16(x)
	hi := uint16(x >> 16)
	a = s.insertU16(a, id*2, lo)
	return s.insertU16(a, id*2+1, hi)
}

func (s sse2Strategy) insertU64(a reg128, id int, x uint64) reg128 {
	// Synthesize a two-lane vector vx = [x, 0], then select the half to
	// keep with a fixed two-way blend. The selector pairs are asymmetric
	// between id==0 and id==1; see shuffle1x2.
	var vx reg128
	if s.narrow {
		va := cvtsi32si128(uint32(x))
		vb := cvtsi32si128(uint32(x >> 32))
		vx = zipLo32(va, vb)
	} else {
		vx = cvtsi64si128(x)
	}
	if id == 0 {
		return shuffle1x2(vx, a, 0, 1)
	}
	return shuffle1x2(a, vx, 0, 0)
}

func (s sse2Strategy) insertF32(a reg128, id int, x float32) reg128 {
	return s.insertU32(a, id, math.Float32bits(x))
}

func (s sse2Strategy) insertF64(a reg128, id int, x float64) reg128 {
	return s.insertU64(a, id, math.Float64bits(x))
}

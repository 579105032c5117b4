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

// Insert returns a copy of a with lane id replaced by x:
//
//	r[k] = (k == id) ? x : a[k]
//
// The input vector is never mutated. Depending on the bound strategy this
// may cost several instructions or a memory round trip; it may have very
// high latency.
func (a Uint8x16) Insert(id Lane16, x uint8) Uint8x16 {
	return Uint8x16{active.insertU8(a.r, id.Index(), x)}
}

// Insert returns a copy of a with lane id replaced by x.
// This operation may have very high latency.
func (a Uint16x8) Insert(id Lane8, x uint16) Uint16x8 {
	return Uint16x8{active.insertU16(a.r, id.Index(), x)}
}

// Insert returns a copy of a with lane id replaced by x.
// This operation may have very high latency.
func (a Uint32x4) Insert(id Lane4, x uint32) Uint32x4 {
	return Uint32x4{active.insertU32(a.r, id.Index(), x)}
}

// Insert returns a copy of a with lane id replaced by x.
// This operation may have very high latency.
func (a Uint64x2) Insert(id Lane2, x uint64) Uint64x2 {
	return Uint64x2{active.insertU64(a.r, id.Index(), x)}
}

// Insert returns a copy of a with lane id replaced by x. The scalar's bit
// pattern is preserved exactly, including NaN payloads and signed zero:
// the strategies reinterpret the bits onto the integer path rather than
// converting the value.
func (a Float32x4) Insert(id Lane4, x float32) Float32x4 {
	return Float32x4{active.insertF32(a.r, id.Index(), x)}
}

// Insert returns a copy of a with lane id replaced by x. The scalar's bit
// pattern is preserved exactly; see Float32x4.Insert.
func (a Float64x2) Insert(id Lane2, x float64) Float64x2 {
	return Float64x2{active.insertF64(a.r, id.Index(), x)}
}

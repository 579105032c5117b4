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

// Combine builds a vector twice as wide as its operands: the low half is
// a, the high half is b. The concatenation primitive is width-generic, so
// the unsigned methods carry the implementation and the signed methods
// reinterpret through the same-width unsigned view; bit patterns are
// identical either way.

// concat128 is the register-pair concatenation primitive: on AVX-class
// hardware this is a single move of two 128-bit registers into one
// 256-bit register.
func concat128(lo, hi reg128) reg256 {
	var r reg256
	copy(r[:16], lo[:])
	copy(r[16:], hi[:])
	return r
}

// Combine concatenates a (low lanes) and b (high lanes).
func (a Uint8x16) Combine(b Uint8x16) Uint8x32 {
	return Uint8x32{concat128(a.r, b.r)}
}

// Combine concatenates a (low lanes) and b (high lanes).
func (a Uint16x8) Combine(b Uint16x8) Uint16x16 {
	return Uint16x16{concat128(a.r, b.r)}
}

// Combine concatenates a (low lanes) and b (high lanes).
func (a Uint32x4) Combine(b Uint32x4) Uint32x8 {
	return Uint32x8{concat128(a.r, b.r)}
}

// Combine concatenates a (low lanes) and b (high lanes).
func (a Uint64x2) Combine(b Uint64x2) Uint64x4 {
	return Uint64x4{concat128(a.r, b.r)}
}

// Combine concatenates a (low lanes) and b (high lanes).
func (a Int8x16) Combine(b Int8x16) Int8x32 {
	return a.AsUint8x16().Combine(b.AsUint8x16()).AsInt8x32()
}

// Combine concatenates a (low lanes) and b (high lanes).
func (a Int16x8) Combine(b Int16x8) Int16x16 {
	return a.AsUint16x8().Combine(b.AsUint16x8()).AsInt16x16()
}

// Combine concatenates a (low lanes) and b (high lanes).
func (a Int32x4) Combine(b Int32x4) Int32x8 {
	return a.AsUint32x4().Combine(b.AsUint32x4()).AsInt32x8()
}

// Combine concatenates a (low lanes) and b (high lanes).
func (a Int64x2) Combine(b Int64x2) Int64x4 {
	return a.AsUint64x2().Combine(b.AsUint64x2()).AsInt64x4()
}

// Combine concatenates a (low lanes) and b (high lanes). The primitive is
// width-generic, so floats concatenate directly with no reinterpretation.
func (a Float32x4) Combine(b Float32x4) Float32x8 {
	return Float32x8{concat128(a.r, b.r)}
}

// Combine concatenates a (low lanes) and b (high lanes).
func (a Float64x2) Combine(b Float64x2) Float64x4 {
	return Float64x4{concat128(a.r, b.r)}
}

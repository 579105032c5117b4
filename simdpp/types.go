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

// Package simdpp provides portable 128-bit vector values with lane-level
// insert and pairwise combine operations.
//
// It follows the libsimdpp design philosophy: one semantic contract per
// operation, realized by the cheapest composition of native operations the
// targeted instruction family offers. The strategy (SSE2, SSE4.1, NEON,
// Altivec, or portable fallback) is bound once at package init and never
// re-decided per call; every strategy produces bit-identical results.
//
// Basic usage:
//
//	a := simdpp.MakeUint8x16(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)
//	b := a.Insert(simdpp.Lanes16[3], 99)   // [0 1 2 99 4 ... 15]
//	w := a.Combine(b)                      // 32 lanes
//
// Lane indices are taken from the predeclared tables (Lanes2, Lanes4,
// Lanes8, Lanes16); a constant subscript is range-checked by the compiler,
// so an out-of-range lane index is a build failure, not a runtime error.
package simdpp

import (
	"encoding/binary"
	"math"
)

//go:generate go run ../cmd/vecgen -output types_gen.go

// reg128 is the backing image of a 128-bit register, little-endian lane
// order. All vector types are views over this image; reinterpreting casts
// copy it unchanged.
type reg128 [16]byte

// reg256 backs the double-width vectors produced by Combine.
type reg256 [32]byte

func (r reg128) u8(i int) uint8    { return r[i] }
func (r reg128) u16(i int) uint16  { return binary.LittleEndian.Uint16(r[2*i:]) }
func (r reg128) u32(i int) uint32  { return binary.LittleEndian.Uint32(r[4*i:]) }
func (r reg128) u64(i int) uint64  { return binary.LittleEndian.Uint64(r[8*i:]) }
func (r reg128) f32(i int) float32 { return math.Float32frombits(r.u32(i)) }
func (r reg128) f64(i int) float64 { return math.Float64frombits(r.u64(i)) }

// The set helpers operate on the receiver copy and return it, keeping
// value semantics: callers never observe a mutated input register.

func (r reg128) setU8(i int, x uint8) reg128 {
	r[i] = x
	return r
}

func (r reg128) setU16(i int, x uint16) reg128 {
	binary.LittleEndian.PutUint16(r[2*i:], x)
	return r
}

func (r reg128) setU32(i int, x uint32) reg128 {
	binary.LittleEndian.PutUint32(r[4*i:], x)
	return r
}

func (r reg128) setU64(i int, x uint64) reg128 {
	binary.LittleEndian.PutUint64(r[8*i:], x)
	return r
}

func (r reg128) setF32(i int, x float32) reg128 { return r.setU32(i, math.Float32bits(x)) }
func (r reg128) setF64(i int, x float64) reg128 { return r.setU64(i, math.Float64bits(x)) }

func (r reg256) u8(i int) uint8    { return r[i] }
func (r reg256) u16(i int) uint16  { return binary.LittleEndian.Uint16(r[2*i:]) }
func (r reg256) u32(i int) uint32  { return binary.LittleEndian.Uint32(r[4*i:]) }
func (r reg256) u64(i int) uint64  { return binary.LittleEndian.Uint64(r[8*i:]) }
func (r reg256) f32(i int) float32 { return math.Float32frombits(r.u32(i)) }
func (r reg256) f64(i int) float64 { return math.Float64frombits(r.u64(i)) }

func (r reg256) setU8(i int, x uint8) reg256 {
	r[i] = x
	return r
}

func (r reg256) setU16(i int, x uint16) reg256 {
	binary.LittleEndian.PutUint16(r[2*i:], x)
	return r
}

func (r reg256) setU32(i int, x uint32) reg256 {
	binary.LittleEndian.PutUint32(r[4*i:], x)
	return r
}

func (r reg256) setU64(i int, x uint64) reg256 {
	binary.LittleEndian.PutUint64(r[8*i:], x)
	return r
}

func (r reg256) setF32(i int, x float32) reg256 { return r.setU32(i, math.Float32bits(x)) }
func (r reg256) setF64(i int, x float64) reg256 { return r.setU64(i, math.Float64bits(x)) }

// Lane16 indexes one of the 16 lanes of an 8-bit-element vector.
// The only inhabitants are the entries of Lanes16, so an out-of-range
// index is unrepresentable.
type Lane16 struct{ i uint8 }

// Lane8 indexes one of the 8 lanes of a 16-bit-element vector.
type Lane8 struct{ i uint8 }

// Lane4 indexes one of the 4 lanes of a 32-bit-element vector.
type Lane4 struct{ i uint8 }

// Lane2 indexes one of the 2 lanes of a 64-bit-element vector.
type Lane2 struct{ i uint8 }

// Index returns the lane number.
func (l Lane16) Index() int { return int(l.i) }

// Index returns the lane number.
func (l Lane8) Index() int { return int(l.i) }

// Index returns the lane number.
func (l Lane4) Index() int { return int(l.i) }

// Index returns the lane number.
func (l Lane2) Index() int { return int(l.i) }

// Lane index tables. A constant subscript such as Lanes16[3] is bounds
// checked at compile time; this is the Go rendering of a static range
// assertion on the lane index.
var (
	Lanes16 = [16]Lane16{
		{0}, {1}, {2}, {3}, {4}, {5}, {6}, {7},
		{8}, {9}, {10}, {11}, {12}, {13}, {14}, {15},
	}
	Lanes8 = [8]Lane8{{0}, {1}, {2}, {3}, {4}, {5}, {6}, {7}}
	Lanes4 = [4]Lane4{{0}, {1}, {2}, {3}}
	Lanes2 = [2]Lane2{{0}, {1}}
)

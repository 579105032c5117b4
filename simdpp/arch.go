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

import (
	"os"
	"strconv"
)

// Level identifies the instruction family whose strategies are active.
// The set is closed: every operation has one concrete strategy per Level,
// and all strategies produce bit-identical results.
type Level int

const (
	// LevelFallback indicates no acceleration; plain lane writes.
	LevelFallback Level = iota

	// LevelSSE2 indicates the x86 baseline, where 8/32/64-bit inserts
	// are emulated from 16-bit and 64-bit building blocks.
	LevelSSE2

	// LevelSSE41 indicates x86 with direct single-instruction inserts
	// for every element width.
	LevelSSE41

	// LevelNEON indicates ARM NEON, with a native lane-set instruction
	// for every element width including float32.
	LevelNEON

	// LevelAltivec indicates POWER Altivec/VSX, which has no register
	// level lane mutation and stages through addressable memory.
	LevelAltivec
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelFallback:
		return "fallback"
	case LevelSSE2:
		return "sse2"
	case LevelSSE41:
		return "sse4.1"
	case LevelNEON:
		return "neon"
	case LevelAltivec:
		return "altivec"
	default:
		return "unknown"
	}
}

// wordBits is the width of the general-purpose scalar registers of the
// target. On narrow-word (32-bit) builds, 64-bit lane values cannot be
// moved to a vector register in one step and are synthesized from two
// 32-bit halves.
const wordBits = 32 << (^uint(0) >> 63)

// strategy realizes the insert contract for one instruction family.
// Implementations are pure: they take the register image by value and
// return a new one. The float entry points always preserve the scalar's
// exact bit pattern; they reinterpret, never convert.
type strategy interface {
	insertU8(a reg128, id int, x uint8) reg128
	insertU16(a reg128, id int, x uint16) reg128
	insertU32(a reg128, id int, x uint32) reg128
	insertU64(a reg128, id int, x uint64) reg128
	insertF32(a reg128, id int, x float32) reg128
	insertF64(a reg128, id int, x float64) reg128
}

// active is the strategy bound for this process. It is assigned exactly
// once, by the per-architecture init in dispatch_*.go, and never changes
// afterwards.
var active strategy = nullStrategy{}

// currentLevel mirrors the binding of active.
var currentLevel Level

// CurrentLevel returns the instruction family selected at init.
func CurrentLevel() Level {
	return currentLevel
}

// setLevel binds the strategy for the given level. Called from the
// dispatch init functions only.
func setLevel(l Level) {
	currentLevel = l
	active = strategyFor(l)
}

// strategyFor returns the concrete strategy for a level. The narrow-word
// flag of the x86 strategies is fixed by the build's word size.
func strategyFor(l Level) strategy {
	switch l {
	case LevelSSE2:
		return sse2Strategy{narrow: wordBits == 32}
	case LevelSSE41:
		return sse41Strategy{narrow: wordBits == 32}
	case LevelNEON:
		return neonStrategy{}
	case LevelAltivec:
		return altivecStrategy{}
	default:
		return nullStrategy{}
	}
}

// NoSimdEnv reports whether the SIMDPP_NO_SIMD environment variable is
// set. When set, the fallback strategy is bound regardless of CPU
// capabilities, which is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("SIMDPP_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

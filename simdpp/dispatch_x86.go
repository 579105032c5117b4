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

//go:build amd64 || 386

package simdpp

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setLevel(LevelFallback)
		return
	}
	// SSE2 is the x86-64 baseline. SSE4.1 upgrades the 8/32/64-bit
	// inserts from multi-instruction emulation to single instructions.
	if cpu.X86.HasSSE41 {
		setLevel(LevelSSE41)
		return
	}
	setLevel(LevelSSE2)
}

//go:build arm64

package simdpp

func init() {
	if NoSimdEnv() {
		setLevel(LevelFallback)
		return
	}
	// NEON is architecturally guaranteed on arm64.
	setLevel(LevelNEON)
}

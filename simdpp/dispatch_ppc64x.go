//go:build ppc64 || ppc64le

package simdpp

func init() {
	if NoSimdEnv() {
		setLevel(LevelFallback)
		return
	}
	// Altivec is part of the baseline for the ppc64 ports.
	setLevel(LevelAltivec)
}

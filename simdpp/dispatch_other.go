//go:build !amd64 && !386 && !arm64 && !ppc64 && !ppc64le

package simdpp

func init() {
	// Architectures without a modeled instruction family use the
	// portable fallback strategy.
	setLevel(LevelFallback)
}

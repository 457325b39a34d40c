// Package stablehash provides a deterministic string hash that is identical
// across processes, platforms, and Go versions. The ambient map hash and
// maphash are randomized per process and must never seed anything persisted
// or replayed - every reproducible draw in the engine seeds from here.
package stablehash

// Sum returns a non-negative 31-bit hash of s.
//
// This is the djb2 polynomial (base 33) over the raw bytes of s, with
// 32-bit wraparound, masked to 31 bits. Collisions are acceptable: the
// result only seeds deterministic draws, it is never used for identity.
func Sum(s string) uint32 {
	var h uint32 = 5381
	for i := 0; i < len(s); i++ {
		h = h*33 + uint32(s[i])
	}
	return h & 0x7FFFFFFF
}

// Seed returns Sum(s) widened for use with math/rand sources.
func Seed(s string) int64 {
	return int64(Sum(s))
}

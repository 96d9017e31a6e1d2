// Package fxhash implements the xor-rotate-multiply hash used by the
// Firefox/rustc compiler internals, ported from
// sudachi.rs's util::fxhash (itself adapted from the fxhash crate).
//
// It is deliberately not cryptographically secure: the Viterbi hot path
// only ever hashes small dense integer keys (byte offsets, left/right
// connection ids), where a weak, branch-free multiply-hash beats
// anything built for adversarial input resistance. Do not use this for
// untrusted keys exposed to outside callers.
package fxhash

const (
	seed64 uint64 = 0x51_7c_c1_b7_27_22_0a_95
	rotate uint64 = 5
)

// Hash64 mixes a single 64-bit word into the running hash state.
func Hash64(state, word uint64) uint64 {
	return (rotl(state, rotate) ^ word) * seed64
}

func rotl(x uint64, n uint64) uint64 {
	return (x << n) | (x >> (64 - n))
}

// PairU32 hashes two uint32 lattice ids (left id, right id) into one
// well-mixed uint64. No package in this module calls it; the lattice
// builder keys its scratch maps with Go's built-in map hashing.
func PairU32(a, b uint32) uint64 {
	h := Hash64(0, uint64(a))
	h = Hash64(h, uint64(b))
	return h
}

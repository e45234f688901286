package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The helper centralises how we derive the two 64-bit seeds required by rand/v2
// so that all call sites get reproducible sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// FromSeed builds a source for an optional caller seed: a deterministic
// stream when seed is non-nil, otherwise an independent stream drawn from
// process entropy so repeated unseeded calls never share state.
func FromSeed(seed *int64) *rand.Rand {
	if seed != nil {
		return New(*seed)
	}
	return New(rand.Int64())
}

// ChildSeed derives a worker seed from a parent source. Workers built from
// successive child seeds get streams independent of their siblings while
// remaining a pure function of the parent seed.
func ChildSeed(parent *rand.Rand) int64 {
	return int64(mix(parent.Uint64()))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

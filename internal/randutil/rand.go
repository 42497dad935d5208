// Package randutil centralises how random sources are created so that every
// match, hand and agent owns an explicit, reproducible stream.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

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

// Split draws a seed from parent and returns an independent child stream.
// Callers use it to hand each agent and deck of a match its own source.
func Split(parent *rand.Rand) *rand.Rand {
	return New(parent.Int64())
}

// Derive returns the seed of the index-th sub-run of a run seeded with base.
// Parallel pairings in a tournament use it so that each pairing is
// reproducible regardless of scheduling order.
func Derive(base int64, index int) int64 {
	return int64(mix(uint64(base) + uint64(index+1)*goldenRatio64))
}

// Seed returns seed, or a time-based seed when seed is zero.
func Seed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

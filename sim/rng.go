package sim

import (
	"hash/fnv"
	"math/rand"
)

// SimulationKey uniquely identifies a reproducible simulation run.
// Two runs with the same SimulationKey and identical configuration
// MUST produce bit-for-bit identical results.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// Derive returns the seed for a labeled child generator. The root label ""
// maps to the master seed directly; any other label is isolated via
// masterSeed XOR fnv1a64(label), so sweeps can hand every cell its own
// independent stream without the cells perturbing each other.
func (k SimulationKey) Derive(label string) int64 {
	if label == "" {
		return int64(k)
	}
	return int64(k) ^ fnv1a64(label)
}

// Rand returns a fresh generator for the labeled stream.
// Not thread-safe; each run owns its own instance.
func (k SimulationKey) Rand(label string) *rand.Rand {
	return rand.New(rand.NewSource(k.Derive(label)))
}

// drawBackoff samples a backoff delay uniformly from the integer range
// [0, window] inclusive, in whole slot units.
func drawBackoff(rng *rand.Rand, window int64) int64 {
	return rng.Int63n(window + 1)
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}

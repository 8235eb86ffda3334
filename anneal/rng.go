package anneal

import "math/rand"

// defaultSeed is used when callers pass seed == 0, so an unconfigured run
// is still reproducible.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ defaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// pinExcept draws a pin in [0,n) different from a and b (pass the same
// value twice to exclude one pin). The caller guarantees some pin is left:
// n ≥ 3, or n == 2 with a == b.
//
// Complexity: O(1) expected.
func pinExcept(rng *rand.Rand, n, a, b int) int {
	p := rng.Intn(n)
	for p == a || p == b {
		p = rng.Intn(n)
	}

	return p
}

// randomChain returns a connected walk of length segments over n pins
// that never repeats a pin on consecutive steps. The first pin is random.
//
// Complexity: O(length).
func randomChain(rng *rand.Rand, n, length int) []int {
	if length == 0 {
		return nil
	}
	walk := make([]int, length+1)
	walk[0] = rng.Intn(n)
	var i int
	for i = 1; i <= length; i++ {
		walk[i] = pinExcept(rng, n, walk[i-1], walk[i-1])
	}

	return walk
}

// SPDX-License-Identifier: MIT

// RNG utilities behind the resampling modes.
//
// Determinism: same seed ⇒ identical draws, hence identical confusion matrices.
// math/rand.Rand is NOT goroutine-safe; Classify builds one per call.
package distclust

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// shuffleIntsInPlace performs an in-place Fisher–Yates shuffle of a.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	var i, j int
	for i = len(a) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// identity returns 0..n-1.
func identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// permRange returns a random permutation of 0..n-1.
func permRange(n int, rng *rand.Rand) []int {
	p := identity(n)
	shuffleIntsInPlace(p, rng)

	return p
}

// bootstrapIndex redraws every class block [start, start+nsam[c]) with
// replacement from the same block. Positions keep their class.
//
// Complexity: O(S).
func bootstrapIndex(nsam []int, rng *rand.Rand) []int {
	var total int
	for _, n := range nsam {
		total += n
	}
	idx := make([]int, 0, total)

	start := 0
	for _, n := range nsam {
		for p := 0; p < n; p++ {
			idx = append(idx, start+rng.Intn(n))
		}
		start += n
	}

	return idx
}

// sampleIndex maps each position of the resampled matrix to a source row of
// the input matrix, according to mode.
func sampleIndex(mode Resample, nsam []int, s int, rng *rand.Rand) []int {
	switch mode {
	case ResampleRelabel:
		return permRange(s, rng)
	case ResampleBootstrap:
		return bootstrapIndex(nsam, rng)
	default:
		return identity(s)
	}
}

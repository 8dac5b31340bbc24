package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// UintN returns a value in [0, n) drawn from src without modulo bias.
// It panics if n is 0.
func UintN(src rand.Source, n uint64) uint64 {
	if n == 0 {
		panic("randutil: UintN called with n == 0")
	}
	// 2^64 mod n; draws below it fall in the short final bucket.
	threshold := -n % n
	for {
		v := src.Uint64()
		if v >= threshold {
			return v % n
		}
	}
}

// Shuffle permutes n elements in place with Fisher-Yates, calling swap for
// each exchange. Unlike rand.Rand.Shuffle the arrangement for a given source
// is fixed across Go releases.
func Shuffle(src rand.Source, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := int(UintN(src, uint64(i+1)))
		swap(i, j)
	}
}

// Perm returns a permutation of [0, n) drawn from src.
func Perm(src rand.Source, n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	Shuffle(src, n, func(i, j int) {
		p[i], p[j] = p[j], p[i]
	})
	return p
}

// Mix applies the splitmix64 finalizer so that nearby inputs such as
// consecutive timestamps map to unrelated 64-bit values.
func Mix(x uint64) uint64 {
	x += goldenRatio64
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

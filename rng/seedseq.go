package rng

// SeedSeq mixes a short sequence of 32-bit seed words into an arbitrarily
// long, well-distributed sequence suitable for filling a generator's state.
// Structured inputs such as (seed, 0, 'f', 'o', 'o') spread into
// uncorrelated state.
type SeedSeq struct {
	v []uint32
}

const (
	seedSeqInit  = 0x8b8b8b8b
	seedSeqMult1 = 1664525
	seedSeqMult2 = 1566083941
)

// NewSeedSeq copies words into a new seed sequence.
func NewSeedSeq(words []uint32) *SeedSeq {
	v := make([]uint32, len(words))
	copy(v, words)
	return &SeedSeq{v: v}
}

// Size returns the number of stored seed words.
func (s *SeedSeq) Size() int {
	return len(s.v)
}

// Param returns a copy of the stored seed words.
func (s *SeedSeq) Param() []uint32 {
	out := make([]uint32, len(s.v))
	copy(out, s.v)
	return out
}

// Generate fills dst with mixed 32-bit values derived from the stored words.
// Arithmetic is modulo 2^32 throughout.
func (s *SeedSeq) Generate(dst []uint32) {
	n := len(dst)
	if n == 0 {
		return
	}
	for i := range dst {
		dst[i] = seedSeqInit
	}

	size := len(s.v)
	var t int
	switch {
	case n >= 623:
		t = 11
	case n >= 68:
		t = 7
	case n >= 39:
		t = 5
	case n >= 7:
		t = 3
	default:
		t = (n - 1) / 2
	}
	p := (n - t) / 2
	q := p + t
	m := max(size+1, n)

	for k := 0; k < m; k++ {
		r1 := seedSeqMult1 * tshift(dst[k%n]^dst[(k+p)%n]^dst[(k+n-1)%n])
		var r2 uint32
		switch {
		case k == 0:
			r2 = r1 + uint32(size)
		case k <= size:
			r2 = r1 + uint32(k%n) + s.v[k-1]
		default:
			r2 = r1 + uint32(k%n)
		}
		dst[(k+p)%n] += r1
		dst[(k+q)%n] += r2
		dst[k%n] = r2
	}

	for k := m; k < m+n; k++ {
		r3 := seedSeqMult2 * tshift(dst[k%n]+dst[(k+p)%n]+dst[(k+n-1)%n])
		r4 := r3 - uint32(k%n)
		dst[(k+p)%n] ^= r3
		dst[(k+q)%n] ^= r4
		dst[k%n] = r4
	}
}

func tshift(x uint32) uint32 {
	return x ^ (x >> 27)
}

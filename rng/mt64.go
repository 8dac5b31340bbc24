package rng

// MT19937-64 parameters.
const (
	mtN         = 312
	mtM         = 156
	mtMatrixA   = 0xB5026F5AA96619E9
	mtUpperMask = 0xFFFFFFFF80000000
	mtLowerMask = 0x000000007FFFFFFF
)

// MT64 is the 64-bit Mersenne Twister (MT19937-64). The zero value must be
// seeded with SeedFrom before use. It is not safe for concurrent use.
type MT64 struct {
	state [mtN]uint64
	index int
}

// SeedFrom initialises the state from a seed sequence. Two 32-bit words are
// generated per state element, low word first.
func (mt *MT64) SeedFrom(seq *SeedSeq) {
	var words [2 * mtN]uint32
	seq.Generate(words[:])

	zero := true
	for i := range mt.state {
		mt.state[i] = uint64(words[2*i]) | uint64(words[2*i+1])<<32
		if i == 0 {
			zero = mt.state[0]&mtUpperMask == 0
		} else if mt.state[i] != 0 {
			zero = false
		}
	}
	// An all-zero state is a fixed point of the recurrence.
	if zero {
		mt.state[0] = 1 << 63
	}
	mt.index = mtN
}

// Uint64 returns the next tempered output.
func (mt *MT64) Uint64() uint64 {
	if mt.index >= mtN {
		mt.twist()
	}

	y := mt.state[mt.index]
	mt.index++

	y ^= (y >> 29) & 0x5555555555555555
	y ^= (y << 17) & 0x71D67FFFEDA60000
	y ^= (y << 37) & 0xFFF7EEE000000000
	y ^= y >> 43
	return y
}

func (mt *MT64) twist() {
	for i := 0; i < mtN; i++ {
		x := (mt.state[i] & mtUpperMask) | (mt.state[(i+1)%mtN] & mtLowerMask)
		xA := x >> 1
		if x&1 != 0 {
			xA ^= mtMatrixA
		}
		mt.state[i] = mt.state[(i+mtM)%mtN] ^ xA
	}
	mt.index = 0
}

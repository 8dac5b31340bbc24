// Package rng provides deterministic, non-cryptographic random number
// generators derived from a process-wide seed and a per-stream salt.
//
// A Generator built from the same seed and salt always yields the same
// sequence of 64-bit values, so callers can give every component its own
// reproducible stream while a single seed controls the whole run. The
// output is NOT suitable for cryptographic use.
package rng

// Generator produces a reproducible sequence of 64-bit values. It is not
// safe for concurrent use; give each goroutine its own Generator.
type Generator struct {
	mt MT64
}

// Option configures generator construction.
type Option func(*options)

type options struct {
	unseeded func()
}

// WithUnseededHook registers fn to be called once during construction when
// the seed is 0, meaning no seed was configured. The hook only observes; it
// cannot change the generated sequence.
func WithUnseededHook(fn func()) Option {
	return func(o *options) {
		o.unseeded = fn
	}
}

// SeedMaterial returns the words fed to the seed sequence: the low and high
// halves of seed followed by one word per salt byte.
func SeedMaterial(seed uint64, salt []byte) []uint32 {
	words := make([]uint32, 0, 2+len(salt))
	words = append(words, uint32(seed), uint32(seed>>32))
	for _, b := range salt {
		words = append(words, uint32(b))
	}
	return words
}

// New creates a generator for the given seed and salt. The salt is not
// retained. Construction never fails; an empty salt is valid.
func New(seed uint64, salt []byte, opts ...Option) *Generator {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if seed == 0 && o.unseeded != nil {
		o.unseeded()
	}

	g := &Generator{}
	g.mt.SeedFrom(NewSeedSeq(SeedMaterial(seed, salt)))
	return g
}

// NewString is New with a string salt.
func NewString(seed uint64, salt string, opts ...Option) *Generator {
	return New(seed, []byte(salt), opts...)
}

// Next advances the generator and returns the next value.
func (g *Generator) Next() uint64 {
	return g.mt.Uint64()
}

// Uint64 implements math/rand/v2.Source.
func (g *Generator) Uint64() uint64 {
	return g.mt.Uint64()
}

// JoinSalt builds a salt from several identifying parts, such as a module
// name and a pass name. Parts are separated by a zero byte so that
// ("ab", "c") and ("a", "bc") give different salts.
func JoinSalt(parts ...string) []byte {
	n := 0
	for _, p := range parts {
		n += len(p) + 1
	}
	salt := make([]byte, 0, n)
	for i, p := range parts {
		if i > 0 {
			salt = append(salt, 0)
		}
		salt = append(salt, p...)
	}
	return salt
}

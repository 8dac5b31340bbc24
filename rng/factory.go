package rng

import (
	"strconv"
	"sync"

	"github.com/charmbracelet/log"
)

// UnseededWarning is logged when generators are created without a seed.
const UnseededWarning = "Warning! Using unseeded random number generator."

// Factory creates generators that share one configured seed. It is safe for
// concurrent use; the generators it returns are not.
type Factory struct {
	seed   uint64
	logger *log.Logger

	warnOnce sync.Once
}

// NewFactory returns a factory for seed. A nil logger disables the unseeded
// advisory.
func NewFactory(seed uint64, logger *log.Logger) *Factory {
	return &Factory{
		seed:   seed,
		logger: logger,
	}
}

// Seed returns the factory's seed.
func (f *Factory) Seed() uint64 {
	return f.seed
}

// New creates a generator for salt.
func (f *Factory) New(salt string) *Generator {
	return f.NewBytes([]byte(salt))
}

// NewBytes creates a generator for a binary salt.
func (f *Factory) NewBytes(salt []byte) *Generator {
	if f.logger == nil {
		return New(f.seed, salt)
	}
	return New(f.seed, salt, WithUnseededHook(func() {
		f.warnUnseeded(salt)
	}))
}

// warnUnseeded logs at warn level for the first unseeded construction and at
// debug level afterwards. Salts are quoted since NewBytes accepts binary data.
func (f *Factory) warnUnseeded(salt []byte) {
	first := false
	f.warnOnce.Do(func() {
		first = true
		f.logger.Warn(UnseededWarning, "hint", "set --rng-seed or SEEDRNG_SEED for reproducible runs")
	})
	if !first {
		f.logger.Debug(UnseededWarning, "salt", strconv.Quote(string(salt)))
	}
}

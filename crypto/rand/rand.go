/*
Package rand defines a source of cryptographically secure randomness that is
usable through the convenience APIs of math/rand.

The generator obtained from NewGenerator reads every value from crypto/rand,
so it is safe to use wherever unpredictable randomness is required, at the
cost of some performance. Use it sparingly in hot paths.
*/
package rand

import (
	crand "crypto/rand"
	"encoding/binary"
	mrand "math/rand"
	"sync"
)

type source struct {
	lock sync.RWMutex
}

// Seed does nothing when crypto/rand is used as a source.
func (_ *source) Seed(_ int64) {}

// Int63 returns a uniformly-distributed random (as in CSPRNG) int64 value
// within the [0, 1<<63) range.
func (s *source) Int63() int64 {
	return int64(s.Uint64() & ^uint64(1<<63))
}

// Uint64 returns a uniformly-distributed random (as in CSPRNG) uint64 value
// within the [0, 1<<64) range.
//
// Panics if crypto/rand input cannot be read.
func (s *source) Uint64() (val uint64) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if err := binary.Read(crand.Reader, binary.BigEndian, &val); err != nil {
		panic(err)
	}
	return
}

// NewGenerator returns a new generator that uses random values from
// crypto/rand as a source (cryptographically secure random number generator).
func NewGenerator() *mrand.Rand {
	return mrand.New(&source{}) // #nosec G404 -- crypto/rand is used as the source
}

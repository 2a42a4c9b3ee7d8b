// Package hash includes all hashing utilities used across the codebase.
package hash

import (
	"github.com/minio/sha256-simd"
)

// Hash defines a function that returns the sha256 checksum of the data passed in.
func Hash(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// CustomSHA256Hasher returns a hash function that uses
// an enclosed hasher. This is not safe for concurrent
// use as the same hasher is being called throughout.
//
// Note: that this method is only more performant over
// hash.Hash if the callback is used more than 5 times.
func CustomSHA256Hasher() func([]byte) [32]byte {
	hasher := sha256.New()
	var h [32]byte

	return func(data []byte) [32]byte {
		hasher.Reset()
		hasher.Write(data)
		hasher.Sum(h[:0])

		return h
	}
}

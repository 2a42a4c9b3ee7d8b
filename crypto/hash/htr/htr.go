// Package htr hashes lists of 32 byte roots with CPU specific vector
// instructions where available.
package htr

import (
	"github.com/prysmaticlabs/gohashtree"
)

// VectorizedSha256 takes a list of roots and hashes each consecutive pair,
// returning a list of parent roots half the length of the input.
func VectorizedSha256(inputList [][32]byte) [][32]byte {
	outputList := make([][32]byte, len(inputList)/2)
	if err := gohashtree.Hash(outputList, inputList); err != nil {
		panic(err)
	}
	return outputList
}

// Package gnark implements the BLS12-381 curve and signature scheme with the
// pure Go arithmetic of github.com/consensys/gnark-crypto. It mirrors the
// blst package operation for operation and produces byte-identical encodings,
// trading the native performance of blst for an auditable, cgo-free
// implementation.
package gnark

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	lru "github.com/hashicorp/golang-lru"
)

// maxKeys is the number of decoded public keys kept around between decodings,
// sized identically to the blst backend cache.
const maxKeys = 1000000

var pubkeyCache *lru.Cache

var g1GenAff bls12381.G1Affine
var g1GenNeg bls12381.G1Affine

func init() {
	_, _, g1GenAff, _ = bls12381.Generators()
	g1GenNeg.Neg(&g1GenAff)
	keysCache, err := lru.New(maxKeys)
	if err != nil {
		panic(fmt.Sprintf("Could not initiate public keys cache: %v", err))
	}
	pubkeyCache = keysCache
}

package gnark

import (
	fieldparams "github.com/aditya172926/ream/config/fieldparams"
	"github.com/aditya172926/ream/crypto/bls/common"
	"github.com/aditya172926/ream/encoding/ssz"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/pkg/errors"
)

// PublicKey used in the BLS signature scheme.
type PublicKey struct {
	p *bls12381.G1Affine
}

// PublicKeyFromBytes creates a BLS public key from a BigEndian byte slice.
func PublicKeyFromBytes(pubKey []byte) (common.PublicKey, error) {
	return publicKeyFromBytes(pubKey, true)
}

func publicKeyFromBytes(pubKey []byte, cacheCopy bool) (common.PublicKey, error) {
	if len(pubKey) != fieldparams.BLSPubkeyLength {
		return nil, common.ErrPublicKeyLength
	}
	newKey := (*[fieldparams.BLSPubkeyLength]byte)(pubKey)
	if cv, ok := pubkeyCache.Get(*newKey); ok {
		if cacheCopy {
			return cv.(*PublicKey).Copy(), nil
		}
		return cv.(*PublicKey), nil
	}
	p := new(bls12381.G1Affine)
	// SetBytes rejects points that are off curve or outside the r-order
	// subgroup, and validates the compression encoding.
	if _, err := p.SetBytes(pubKey); err != nil {
		return nil, classifyDecodeError(err)
	}
	if p.IsInfinity() {
		return nil, common.ErrInfinitePubKey
	}
	pKey := &PublicKey{p: p}
	copiedKey, ok := pKey.Copy().(*PublicKey)
	if !ok {
		return nil, errors.New("could not copy public key")
	}
	pubkeyCache.Add(*newKey, copiedKey)
	return pKey, nil
}

// AggregatePublicKeys aggregates the provided raw public keys into a single key.
func AggregatePublicKeys(pubs [][]byte) (common.PublicKey, error) {
	if len(pubs) == 0 {
		return nil, common.ErrEmptyAggregate
	}
	var agg bls12381.G1Jac
	for _, pub := range pubs {
		pubKey, err := publicKeyFromBytes(pub, false)
		if err != nil {
			return nil, err
		}
		agg.AddMixed(pubKey.(*PublicKey).p)
	}
	var aff bls12381.G1Affine
	aff.FromJacobian(&agg)
	return &PublicKey{p: &aff}, nil
}

// AggregateMultiplePubkeys aggregates the provided decompressed keys into a single key.
func AggregateMultiplePubkeys(pubkeys []common.PublicKey) (common.PublicKey, error) {
	if len(pubkeys) == 0 {
		return nil, common.ErrEmptyAggregate
	}
	var agg bls12381.G1Jac
	for _, pubkey := range pubkeys {
		agg.AddMixed(pubkey.(*PublicKey).p)
	}
	var aff bls12381.G1Affine
	aff.FromJacobian(&agg)
	return &PublicKey{p: &aff}, nil
}

// Marshal a public key into a BigEndian byte slice.
func (p *PublicKey) Marshal() []byte {
	raw := p.p.Bytes()
	return raw[:]
}

// Copy the public key to a new pointer reference.
func (p *PublicKey) Copy() common.PublicKey {
	np := *p.p
	return &PublicKey{p: &np}
}

// IsInfinite checks if the public key is infinite.
func (p *PublicKey) IsInfinite() bool {
	return p.p.IsInfinity()
}

// Equals checks if the provided public key is equal to
// the current one.
func (p *PublicKey) Equals(p2 common.PublicKey) bool {
	return p.p.Equal(p2.(*PublicKey).p)
}

// Aggregate two public keys.
func (p *PublicKey) Aggregate(p2 common.PublicKey) common.PublicKey {
	var agg bls12381.G1Jac
	agg.FromAffine(p.p)
	agg.AddMixed(p2.(*PublicKey).p)
	p.p.FromJacobian(&agg)
	return p
}

// HashTreeRoot computes the SSZ hash tree root of the compressed key.
func (p *PublicKey) HashTreeRoot() ([32]byte, error) {
	return ssz.PublicKeyRoot(p.Marshal())
}

//go:build ((linux && amd64) || (linux && arm64) || (darwin && amd64) || (darwin && arm64) || (windows && amd64)) && !blst_disabled

package blst

import (
	"crypto/subtle"

	fieldparams "github.com/aditya172926/ream/config/fieldparams"
	"github.com/aditya172926/ream/crypto/bls/common"
	"github.com/aditya172926/ream/crypto/rand"
	"github.com/pkg/errors"
	blst "github.com/supranational/blst/bindings/go"
)

// bls12SecretKey used in the BLS signature scheme.
type bls12SecretKey struct {
	p *blstSecretKey
}

// RandKey creates a new private key using a random method provided as an io.Reader.
func RandKey() (common.SecretKey, error) {
	// Generate 32 bytes of randomness.
	var ikm [fieldparams.BLSSecretKeyLength]byte
	if _, err := rand.NewGenerator().Read(ikm[:]); err != nil {
		return nil, errors.Wrap(err, "could not read random bytes")
	}
	// Defensive check, that we have not generated a secret key.
	secKey := &bls12SecretKey{blst.KeyGen(ikm[:])}
	if IsZero(secKey.Marshal()) {
		return nil, common.ErrZeroSecretKey
	}
	return secKey, nil
}

// KeyFromSeed derives a keypair deterministically from the provided seed,
// following the HKDF based KeyGen procedure of the BLS signature drafts
// (draft-irtf-cfrg-bls-signature-04, section 2.3). Identical seeds produce
// identical keypairs on every backend.
func KeyFromSeed(seed []byte) (common.SecretKey, error) {
	if len(seed) < fieldparams.BLSSecretKeyLength {
		return nil, common.ErrInvalidSeed
	}
	secKey := &bls12SecretKey{blst.KeyGen(seed)}
	if IsZero(secKey.Marshal()) {
		return nil, common.ErrZeroSecretKey
	}
	return secKey, nil
}

// SecretKeyFromBytes creates a BLS private key from a BigEndian byte slice.
func SecretKeyFromBytes(privKey []byte) (common.SecretKey, error) {
	if len(privKey) != fieldparams.BLSSecretKeyLength {
		return nil, common.ErrSecretKeyLength
	}
	secKey := new(blstSecretKey).Deserialize(privKey)
	if secKey == nil {
		return nil, common.ErrZeroSecretKey
	}
	wrappedKey := &bls12SecretKey{p: secKey}
	if IsZero(privKey) {
		return nil, common.ErrZeroSecretKey
	}
	return wrappedKey, nil
}

// IsZero checks if the secret key is a zero key. The check runs in constant
// time on the serialized form.
func IsZero(sKey []byte) bool {
	b := byte(0)
	for _, s := range sKey {
		b |= s
	}
	return subtle.ConstantTimeByteEq(b, 0) == 1
}

// PublicKey obtains the public key corresponding to the BLS secret key.
func (s *bls12SecretKey) PublicKey() common.PublicKey {
	return &PublicKey{p: new(blstPublicKey).From(s.p)}
}

// Sign a message using a secret key - in a beacon/validator client.
//
// In IETF draft BLS specification:
// Sign(SK, message) -> signature: a signing algorithm that generates
//
//	a deterministic signature given a secret key SK and a message.
//
// In the Ethereum proof of stake specification:
// def Sign(SK: int, message: Bytes) -> BLSSignature
func (s *bls12SecretKey) Sign(msg []byte) common.Signature {
	signature := new(blstSignature).Sign(s.p, msg, dst)
	return &Signature{s: signature}
}

// Marshal a secret key into a BigEndian byte slice.
func (s *bls12SecretKey) Marshal() []byte {
	keyBytes := s.p.Serialize()
	return keyBytes
}

// Zeroize overwrites the secret scalar with zeroes. The key must not be used
// afterwards; callers are expected to invoke this on every exit path of the
// scope owning the key.
func (s *bls12SecretKey) Zeroize() {
	*s.p = blstSecretKey{}
}

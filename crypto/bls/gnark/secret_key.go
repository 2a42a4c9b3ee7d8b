package gnark

import (
	"crypto/subtle"
	"io"
	"math/big"

	fieldparams "github.com/aditya172926/ream/config/fieldparams"
	"github.com/aditya172926/ream/crypto/bls/common"
	"github.com/aditya172926/ream/crypto/rand"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/minio/sha256-simd"
	"github.com/pkg/errors"
	"golang.org/x/crypto/hkdf"
)

// keygenSalt is the initial HKDF salt of the KeyGen procedure in the BLS
// signature drafts.
var keygenSalt = []byte("BLS-SIG-KEYGEN-SALT-")

// bls12SecretKey used in the BLS signature scheme.
type bls12SecretKey struct {
	p *fr.Element
}

// RandKey creates a new private key using a random input seed.
func RandKey() (common.SecretKey, error) {
	var ikm [fieldparams.BLSSecretKeyLength]byte
	if _, err := rand.NewGenerator().Read(ikm[:]); err != nil {
		return nil, errors.Wrap(err, "could not read random bytes")
	}
	return KeyFromSeed(ikm[:])
}

// KeyFromSeed derives a keypair deterministically from the provided seed,
// following the HKDF based KeyGen procedure of the BLS signature drafts
// (draft-irtf-cfrg-bls-signature-04, section 2.3). Identical seeds produce
// identical keypairs on every backend.
func KeyFromSeed(seed []byte) (common.SecretKey, error) {
	if len(seed) < fieldparams.BLSSecretKeyLength {
		return nil, common.ErrInvalidSeed
	}
	// HKDF(salt, seed || 0x00, key_info || I2OSP(L, 2)) with L = 48, reducing
	// the output mod r and rehashing the salt until the scalar is non-zero.
	ikm := make([]byte, len(seed)+1)
	copy(ikm, seed)
	info := []byte{0, 48}
	okm := make([]byte, 48)
	salt := keygenSalt
	sk := new(big.Int)
	for {
		h := sha256.Sum256(salt)
		salt = h[:]
		kdf := hkdf.New(sha256.New, ikm, salt, info)
		if _, err := io.ReadFull(kdf, okm); err != nil {
			return nil, errors.Wrap(err, "could not expand seed")
		}
		sk.Mod(sk.SetBytes(okm), fr.Modulus())
		if sk.Sign() != 0 {
			break
		}
	}
	var e fr.Element
	e.SetBigInt(sk)
	return &bls12SecretKey{p: &e}, nil
}

// SecretKeyFromBytes creates a BLS private key from a BigEndian byte slice.
func SecretKeyFromBytes(privKey []byte) (common.SecretKey, error) {
	if len(privKey) != fieldparams.BLSSecretKeyLength {
		return nil, common.ErrSecretKeyLength
	}
	sk := new(big.Int).SetBytes(privKey)
	// The scalar must lie in [1, r-1].
	if sk.Sign() == 0 || sk.Cmp(fr.Modulus()) >= 0 {
		return nil, common.ErrZeroSecretKey
	}
	var e fr.Element
	e.SetBigInt(sk)
	return &bls12SecretKey{p: &e}, nil
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
	var p bls12381.G1Affine
	p.ScalarMultiplication(&g1GenAff, s.scalar())
	return &PublicKey{p: &p}
}

// Sign a message using a secret key.
//
// In IETF draft BLS specification:
// Sign(SK, message) -> signature: a signing algorithm that generates
//
//	a deterministic signature given a secret key SK and a message.
func (s *bls12SecretKey) Sign(msg []byte) common.Signature {
	hm, err := bls12381.HashToG2(msg, dst)
	if err != nil {
		// HashToG2 can only fail on an oversized domain separation tag.
		panic(err)
	}
	var sig bls12381.G2Affine
	sig.ScalarMultiplication(&hm, s.scalar())
	return &Signature{s: &sig}
}

// Marshal a secret key into a BigEndian byte slice.
func (s *bls12SecretKey) Marshal() []byte {
	keyBytes := s.p.Bytes()
	return keyBytes[:]
}

// Zeroize overwrites the secret scalar with zeroes. The key must not be used
// afterwards; callers are expected to invoke this on every exit path of the
// scope owning the key.
func (s *bls12SecretKey) Zeroize() {
	s.p.SetZero()
}

func (s *bls12SecretKey) scalar() *big.Int {
	return s.p.BigInt(new(big.Int))
}

package gnark

import (
	"bytes"
	"encoding/binary"
	"math/big"
	"strings"
	"sync"

	fieldparams "github.com/aditya172926/ream/config/fieldparams"
	"github.com/aditya172926/ream/crypto/bls/common"
	"github.com/aditya172926/ream/crypto/rand"
	"github.com/aditya172926/ream/encoding/ssz"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/pkg/errors"
)

var dst = common.DomainSeparationTag

// Signature used in the BLS signature scheme.
type Signature struct {
	s *bls12381.G2Affine
}

// SignatureFromBytes creates a BLS signature from a LittleEndian byte slice.
func SignatureFromBytes(sig []byte) (common.Signature, error) {
	if len(sig) != fieldparams.BLSSignatureLength {
		return nil, common.ErrSignatureLength
	}
	signature := new(bls12381.G2Affine)
	// SetBytes performs the curve and subgroup membership checks. An infinite
	// signature is allowed since an aggregated signature could be infinite.
	if _, err := signature.SetBytes(sig); err != nil {
		return nil, classifyDecodeError(err)
	}
	return &Signature{s: signature}, nil
}

// classifyDecodeError separates subgroup membership failures from the other
// ways SetBytes can reject an encoding.
func classifyDecodeError(err error) error {
	if strings.Contains(err.Error(), "subgroup") {
		return errors.Wrap(common.ErrNotInSubgroup, err.Error())
	}
	return errors.Wrap(common.ErrMalformedPoint, err.Error())
}

// MultipleSignaturesFromBytes creates a group of BLS signatures from a LittleEndian 2d-byte slice.
func MultipleSignaturesFromBytes(multiSigs [][]byte) ([]common.Signature, error) {
	if len(multiSigs) == 0 {
		return nil, common.ErrEmptyAggregate
	}
	wrappedSigs := make([]common.Signature, len(multiSigs))
	for i, rawSig := range multiSigs {
		sig, err := SignatureFromBytes(rawSig)
		if err != nil {
			return nil, err
		}
		wrappedSigs[i] = sig
	}
	return wrappedSigs, nil
}

// pairingCheck evaluates e(g1, sig) == prod e(pks[i], msgs[i]) by folding the
// negated G1 generator into a single product-of-pairings check.
func pairingCheck(pks []bls12381.G1Affine, msgs []bls12381.G2Affine, sig *bls12381.G2Affine) bool {
	g1Points := make([]bls12381.G1Affine, 0, len(pks)+1)
	g2Points := make([]bls12381.G2Affine, 0, len(msgs)+1)
	g1Points = append(g1Points, pks...)
	g2Points = append(g2Points, msgs...)
	g1Points = append(g1Points, g1GenNeg)
	g2Points = append(g2Points, *sig)
	ok, err := bls12381.PairingCheck(g1Points, g2Points)
	if err != nil {
		return false
	}
	return ok
}

// Verify a bls signature given a public key, a message.
//
// In IETF draft BLS specification:
// Verify(PK, message, signature) -> VALID or INVALID: a verification
//
//	algorithm that outputs VALID if signature is a valid signature of
//	message under public key PK, and INVALID otherwise.
//
// In the Ethereum proof of stake specification:
// def Verify(PK: BLSPubkey, message: Bytes, signature: BLSSignature) -> bool
func (s *Signature) Verify(pubKey common.PublicKey, msg []byte) bool {
	hm, err := bls12381.HashToG2(msg, dst)
	if err != nil {
		return false
	}
	return pairingCheck(
		[]bls12381.G1Affine{*pubKey.(*PublicKey).p},
		[]bls12381.G2Affine{hm},
		s.s,
	)
}

// AggregateVerify verifies each public key against its respective message.
// This is vulnerable to the rogue public-key attack when messages repeat:
// callers must either keep messages distinct or require every signer to prove
// possession of its secret key. That boundary is deliberately not enforced
// here.
//
// In IETF draft BLS specification:
// AggregateVerify((PK_1, message_1), ..., (PK_n, message_n),
//
//	signature) -> VALID or INVALID: an aggregate verification
//	algorithm that outputs VALID if signature is a valid aggregated
//	signature for a collection of public keys and messages, and
//	outputs INVALID otherwise.
func (s *Signature) AggregateVerify(pubKeys []common.PublicKey, msgs [][32]byte) (bool, error) {
	size := len(pubKeys)
	if size == 0 {
		return false, common.ErrEmptyAggregate
	}
	if size != len(msgs) {
		return false, common.ErrLengthMismatch
	}
	rawKeys := make([]bls12381.G1Affine, size)
	hashedMsgs := make([]bls12381.G2Affine, size)
	for i := 0; i < size; i++ {
		hm, err := bls12381.HashToG2(msgs[i][:], dst)
		if err != nil {
			return false, err
		}
		rawKeys[i] = *pubKeys[i].(*PublicKey).p
		hashedMsgs[i] = hm
	}
	return pairingCheck(rawKeys, hashedMsgs, s.s), nil
}

// FastAggregateVerify verifies all the provided public keys with their
// aggregated signature over one single message.
//
// In IETF draft BLS specification:
// FastAggregateVerify(PK_1, ..., PK_n, message, signature) -> VALID
//
//	or INVALID: a verification algorithm for the aggregate of multiple
//	signatures on the same message.  This function is faster than
//	AggregateVerify.
func (s *Signature) FastAggregateVerify(pubKeys []common.PublicKey, msg [32]byte) (bool, error) {
	if len(pubKeys) == 0 {
		return false, common.ErrEmptyAggregate
	}
	aggregated, err := AggregateMultiplePubkeys(pubKeys)
	if err != nil {
		return false, err
	}
	if aggregated.IsInfinite() {
		return false, nil
	}
	return s.Verify(aggregated, msg[:]), nil
}

// Eth2FastAggregateVerify implements a wrapper on top of bls's FastAggregateVerify. It accepts G2_POINT_AT_INFINITY signature when pubkeys empty.
//
// Spec code:
// def eth2_fast_aggregate_verify(pubkeys: Sequence[BLSPubkey], message: Bytes32, signature: BLSSignature) -> bool:
//
//	"""
//	Wrapper to ``bls.FastAggregateVerify`` accepting the ``G2_POINT_AT_INFINITY`` signature when ``pubkeys`` is empty.
//	"""
//	if len(pubkeys) == 0 and signature == G2_POINT_AT_INFINITY:
//	    return True
//	return bls.FastAggregateVerify(pubkeys, message, signature)
func (s *Signature) Eth2FastAggregateVerify(pubKeys []common.PublicKey, msg [32]byte) (bool, error) {
	if len(pubKeys) == 0 && bytes.Equal(s.Marshal(), common.InfiniteSignature[:]) {
		return true, nil
	}
	return s.FastAggregateVerify(pubKeys, msg)
}

// AggregateSignatures converts a list of signatures into a single, aggregated one.
// Aggregating a single signature returns that signature's value unchanged.
func AggregateSignatures(sigs []common.Signature) (common.Signature, error) {
	if len(sigs) == 0 {
		return nil, common.ErrEmptyAggregate
	}
	var agg bls12381.G2Jac
	for _, sig := range sigs {
		agg.AddMixed(sig.(*Signature).s)
	}
	var aff bls12381.G2Affine
	aff.FromJacobian(&agg)
	return &Signature{s: &aff}, nil
}

// AggregateCompressedSignatures converts a list of compressed signatures into
// a single, aggregated one.
func AggregateCompressedSignatures(multiSigs [][]byte) (common.Signature, error) {
	sigs, err := MultipleSignaturesFromBytes(multiSigs)
	if err != nil {
		return nil, err
	}
	return AggregateSignatures(sigs)
}

// VerifySignature verifies a single signature over a message using a public key.
func VerifySignature(sig []byte, msg [32]byte, pubKey common.PublicKey) (bool, error) {
	rSig, err := SignatureFromBytes(sig)
	if err != nil {
		return false, err
	}
	return rSig.Verify(pubKey, msg[:]), nil
}

// VerifyMultipleSignatures verifies a non-singular set of signatures and its respective pubkeys and messages.
// This method provides a safe way to verify multiple signatures at once. We pick a number randomly from 1 to max
// uint64 and then multiply the signature by it. We continue doing this for all signatures and its respective pubkeys.
// S* = S_1 * r_1 + S_2 * r_2 + ... + S_n * r_n
// P'_{i,j} = P_{i,j} * r_i
// e(S*, G) = \prod_{i=1}^n \prod_{j=1}^{m_i} e(P'_{i,j}, M_{i,j})
// Using this we can verify multiple signatures safely.
func VerifyMultipleSignatures(sigs [][]byte, msgs [][32]byte, pubKeys []common.PublicKey) (bool, error) {
	if len(sigs) == 0 || len(pubKeys) == 0 {
		return false, nil
	}
	length := len(sigs)
	if length != len(pubKeys) || length != len(msgs) {
		return false, errors.Wrapf(common.ErrLengthMismatch, "S: %d, P: %d, M: %d", length, len(pubKeys), len(msgs))
	}

	// Secure source of RNG
	randGen := rand.NewGenerator()
	randLock := new(sync.Mutex)

	randScalar := func() *big.Int {
		var rbytes [8]byte
		randLock.Lock()
		randGen.Read(rbytes[:]) // #nosec G104 -- Error will always be nil in `read` in math/rand
		randLock.Unlock()
		// Protect against the generator returning 0.
		rbytes[len(rbytes)-1] |= 0x01
		return new(big.Int).SetUint64(binary.BigEndian.Uint64(rbytes[:]))
	}

	var aggSig bls12381.G2Jac
	blindedKeys := make([]bls12381.G1Affine, length)
	hashedMsgs := make([]bls12381.G2Affine, length)
	for i := 0; i < length; i++ {
		// Validate signatures since we uncompress them here. Public keys should already be validated.
		sig, err := SignatureFromBytes(sigs[i])
		if err != nil {
			return false, err
		}
		hm, err := bls12381.HashToG2(msgs[i][:], dst)
		if err != nil {
			return false, err
		}
		r := randScalar()
		blindedKeys[i].ScalarMultiplication(pubKeys[i].(*PublicKey).p, r)
		var blindedSig bls12381.G2Affine
		blindedSig.ScalarMultiplication(sig.(*Signature).s, r)
		aggSig.AddMixed(&blindedSig)
		hashedMsgs[i] = hm
	}
	var aggSigAff bls12381.G2Affine
	aggSigAff.FromJacobian(&aggSig)
	return pairingCheck(blindedKeys, hashedMsgs, &aggSigAff), nil
}

// Marshal a signature into a LittleEndian byte slice.
func (s *Signature) Marshal() []byte {
	raw := s.s.Bytes()
	return raw[:]
}

// Copy returns a full deep copy of a signature.
func (s *Signature) Copy() common.Signature {
	sign := *s.s
	return &Signature{s: &sign}
}

// HashTreeRoot computes the SSZ hash tree root of the compressed signature.
func (s *Signature) HashTreeRoot() ([32]byte, error) {
	return ssz.SignatureRoot(s.Marshal())
}

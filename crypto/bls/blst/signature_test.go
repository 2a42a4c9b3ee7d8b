//go:build ((linux && amd64) || (linux && arm64) || (darwin && amd64) || (darwin && arm64) || (windows && amd64)) && !blst_disabled

package blst_test

import (
	"crypto/sha256"
	"testing"

	"github.com/aditya172926/ream/crypto/bls/blst"
	"github.com/aditya172926/ream/crypto/bls/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignVerify(t *testing.T) {
	priv, err := blst.RandKey()
	require.NoError(t, err)
	pub := priv.PublicKey()
	msg := []byte("hello")
	sig := priv.Sign(msg)
	assert.True(t, sig.Verify(pub, msg), "Signature did not verify")
	assert.False(t, sig.Verify(pub, []byte("goodbye")), "Signature verified a different message")

	other, err := blst.RandKey()
	require.NoError(t, err)
	assert.False(t, sig.Verify(other.PublicKey(), msg), "Signature verified under a different key")
}

func TestAggregateVerify(t *testing.T) {
	pubkeys := make([]common.PublicKey, 0, 100)
	sigs := make([]common.Signature, 0, 100)
	var msgs [][32]byte
	for i := 0; i < 100; i++ {
		msg := [32]byte{'h', 'e', 'l', 'l', 'o', byte(i)}
		priv, err := blst.RandKey()
		require.NoError(t, err)
		pub := priv.PublicKey()
		sig := priv.Sign(msg[:])
		pubkeys = append(pubkeys, pub)
		sigs = append(sigs, sig)
		msgs = append(msgs, msg)
	}
	aggSig, err := blst.AggregateSignatures(sigs)
	require.NoError(t, err)
	verified, err := aggSig.AggregateVerify(pubkeys, msgs)
	require.NoError(t, err)
	assert.True(t, verified, "Signature did not verify")
}

func TestAggregateVerify_LengthMismatch(t *testing.T) {
	priv, err := blst.RandKey()
	require.NoError(t, err)
	msg := [32]byte{'m'}
	sig := priv.Sign(msg[:])
	_, err = sig.AggregateVerify([]common.PublicKey{priv.PublicKey()}, [][32]byte{msg, msg})
	require.ErrorIs(t, err, common.ErrLengthMismatch)
	_, err = sig.AggregateVerify([]common.PublicKey{}, [][32]byte{})
	require.ErrorIs(t, err, common.ErrEmptyAggregate)
}

func TestAggregateVerify_CompressedSignatures(t *testing.T) {
	pubkeys := make([]common.PublicKey, 0, 100)
	sigs := make([][]byte, 0, 100)
	var msgs [][32]byte
	for i := 0; i < 100; i++ {
		msg := [32]byte{'h', 'e', 'l', 'l', 'o', byte(i)}
		priv, err := blst.RandKey()
		require.NoError(t, err)
		pub := priv.PublicKey()
		sig := priv.Sign(msg[:])
		pubkeys = append(pubkeys, pub)
		sigs = append(sigs, sig.Marshal())
		msgs = append(msgs, msg)
	}
	aggSig, err := blst.AggregateCompressedSignatures(sigs)
	require.NoError(t, err)
	verified, err := aggSig.AggregateVerify(pubkeys, msgs)
	require.NoError(t, err)
	assert.True(t, verified, "Signature did not verify")
}

func TestFastAggregateVerify(t *testing.T) {
	pubkeys := make([]common.PublicKey, 0, 100)
	sigs := make([]common.Signature, 0, 100)
	msg := [32]byte{'h', 'e', 'l', 'l', 'o'}
	for i := 0; i < 100; i++ {
		priv, err := blst.RandKey()
		require.NoError(t, err)
		pub := priv.PublicKey()
		sig := priv.Sign(msg[:])
		pubkeys = append(pubkeys, pub)
		sigs = append(sigs, sig)
	}
	aggSig, err := blst.AggregateSignatures(sigs)
	require.NoError(t, err)
	verified, err := aggSig.FastAggregateVerify(pubkeys, msg)
	require.NoError(t, err)
	assert.True(t, verified, "Signature did not verify")

	_, err = aggSig.FastAggregateVerify([]common.PublicKey{}, msg)
	require.ErrorIs(t, err, common.ErrEmptyAggregate)
}

func TestEth2FastAggregateVerify(t *testing.T) {
	pubkeys := make([]common.PublicKey, 0, 100)
	sigs := make([]common.Signature, 0, 100)
	msg := [32]byte{'h', 'e', 'l', 'l', 'o'}
	for i := 0; i < 100; i++ {
		priv, err := blst.RandKey()
		require.NoError(t, err)
		pub := priv.PublicKey()
		sig := priv.Sign(msg[:])
		pubkeys = append(pubkeys, pub)
		sigs = append(sigs, sig)
	}
	aggSig, err := blst.AggregateSignatures(sigs)
	require.NoError(t, err)
	verified, err := aggSig.Eth2FastAggregateVerify(pubkeys, msg)
	require.NoError(t, err)
	assert.True(t, verified, "Signature did not verify")
}

func TestEth2FastAggregateVerify_AcceptsInfiniteSignatureOnEmptyKeys(t *testing.T) {
	infSig, err := blst.SignatureFromBytes(common.InfiniteSignature[:])
	require.NoError(t, err)
	verified, err := infSig.Eth2FastAggregateVerify([]common.PublicKey{}, [32]byte{'m'})
	require.NoError(t, err)
	assert.True(t, verified, "Infinite signature over no keys did not verify")

	priv, err := blst.RandKey()
	require.NoError(t, err)
	verified, err = infSig.Eth2FastAggregateVerify([]common.PublicKey{priv.PublicKey()}, [32]byte{'m'})
	require.NoError(t, err)
	assert.False(t, verified, "Infinite signature verified against a real key")
}

func TestVerifySingleSignature_ValidSignature(t *testing.T) {
	priv, err := blst.RandKey()
	require.NoError(t, err)
	pub := priv.PublicKey()
	msg := [32]byte{'t', 'e', 's', 't'}
	sig := priv.Sign(msg[:]).Marshal()
	valid, err := blst.VerifySignature(sig, msg, pub)
	require.NoError(t, err)
	assert.True(t, valid, "Signature did not verify")
}

func TestVerifySingleSignature_InvalidSignature(t *testing.T) {
	priv, err := blst.RandKey()
	require.NoError(t, err)
	pub := priv.PublicKey()
	msgA := [32]byte{'t', 'e', 's', 't'}
	msgB := [32]byte{'t', 'e', 's', 't', '2'}
	sigA := priv.Sign(msgA[:]).Marshal()
	valid, err := blst.VerifySignature(sigA, msgB, pub)
	require.NoError(t, err)
	assert.False(t, valid, "Signature verified a different message")
}

func TestMultipleSignatureVerification(t *testing.T) {
	pubkeys := make([]common.PublicKey, 0, 100)
	sigs := make([][]byte, 0, 100)
	var msgs [][32]byte
	for i := 0; i < 100; i++ {
		msg := [32]byte{'h', 'e', 'l', 'l', 'o', byte(i)}
		priv, err := blst.RandKey()
		require.NoError(t, err)
		pub := priv.PublicKey()
		sig := priv.Sign(msg[:]).Marshal()
		pubkeys = append(pubkeys, pub)
		sigs = append(sigs, sig)
		msgs = append(msgs, msg)
	}
	verified, err := blst.VerifyMultipleSignatures(sigs, msgs, pubkeys)
	require.NoError(t, err)
	assert.True(t, verified, "Signatures did not verify")

	// Swapping two messages must break the batch.
	msgs[0], msgs[1] = msgs[1], msgs[0]
	verified, err = blst.VerifyMultipleSignatures(sigs, msgs, pubkeys)
	require.NoError(t, err)
	assert.False(t, verified, "Reordered batch verified")
}

func TestMultipleSignatureVerification_LengthMismatch(t *testing.T) {
	priv, err := blst.RandKey()
	require.NoError(t, err)
	msg := [32]byte{'m'}
	sig := priv.Sign(msg[:]).Marshal()
	_, err = blst.VerifyMultipleSignatures([][]byte{sig, sig}, [][32]byte{msg}, []common.PublicKey{priv.PublicKey()})
	require.ErrorIs(t, err, common.ErrLengthMismatch)
}

func TestSignatureFromBytes(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		err   error
	}{
		{
			name:  "nil",
			input: nil,
			err:   common.ErrSignatureLength,
		},
		{
			name:  "empty",
			input: []byte{},
			err:   common.ErrSignatureLength,
		},
		{
			name:  "short",
			input: []byte{0xab},
			err:   common.ErrSignatureLength,
		},
		{
			// x = (1, 0) has no matching y on the curve.
			name:  "not on curve",
			input: hexDecodeOrDie(t, "800000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000001"),
			err:   common.ErrMalformedPoint,
		},
		{
			// x = (2, 0) decompresses but the point is outside the r-order subgroup.
			name:  "not in subgroup",
			input: hexDecodeOrDie(t, "800000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000002"),
			err:   common.ErrNotInSubgroup,
		},
		{
			name:  "infinity",
			input: common.InfiniteSignature[:],
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res, err := blst.SignatureFromBytes(test.input)
			if test.err != nil {
				require.ErrorIs(t, err, test.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.input, res.Marshal())
		})
	}
}

func TestMultipleSignaturesFromBytes(t *testing.T) {
	priv, err := blst.RandKey()
	require.NoError(t, err)
	sig1 := priv.Sign([]byte("one")).Marshal()
	sig2 := priv.Sign([]byte("two")).Marshal()

	sigs, err := blst.MultipleSignaturesFromBytes([][]byte{sig1, sig2})
	require.NoError(t, err)
	require.Equal(t, 2, len(sigs))
	assert.Equal(t, sig1, sigs[0].Marshal())
	assert.Equal(t, sig2, sigs[1].Marshal())

	_, err = blst.MultipleSignaturesFromBytes([][]byte{})
	require.ErrorIs(t, err, common.ErrEmptyAggregate)
	_, err = blst.MultipleSignaturesFromBytes([][]byte{{0xab}})
	require.ErrorIs(t, err, common.ErrSignatureLength)
}

func TestSignature_Copy(t *testing.T) {
	priv, err := blst.RandKey()
	require.NoError(t, err)
	sig := priv.Sign([]byte("message"))
	sigCopy := sig.Copy()
	assert.Equal(t, sig.Marshal(), sigCopy.Marshal())
}

func TestSignature_HashTreeRoot(t *testing.T) {
	priv, err := blst.RandKey()
	require.NoError(t, err)
	sig := priv.Sign([]byte("message"))

	// A 96-byte vector packs into three chunks merkleized at depth two.
	raw := sig.Marshal()
	left := sha256.Sum256(raw[:64])
	var rightInput [64]byte
	copy(rightInput[:32], raw[64:96])
	right := sha256.Sum256(rightInput[:])
	var rootInput [64]byte
	copy(rootInput[:32], left[:])
	copy(rootInput[32:], right[:])
	expected := sha256.Sum256(rootInput[:])

	root, err := sig.HashTreeRoot()
	require.NoError(t, err)
	assert.Equal(t, expected, root)
}

func TestAggregateSignatures_EmptyInput(t *testing.T) {
	_, err := blst.AggregateSignatures(nil)
	require.ErrorIs(t, err, common.ErrEmptyAggregate)
	_, err = blst.AggregateCompressedSignatures(nil)
	require.ErrorIs(t, err, common.ErrEmptyAggregate)
}

func TestAggregateSignatures_OrderIndependent(t *testing.T) {
	msg := [32]byte{'r', 'o', 'o', 't'}
	var pubkeys []common.PublicKey
	var sigs []common.Signature
	for i := 0; i < 5; i++ {
		priv, err := blst.RandKey()
		require.NoError(t, err)
		pubkeys = append(pubkeys, priv.PublicKey())
		sigs = append(sigs, priv.Sign(msg[:]))
	}
	forward, err := blst.AggregateSignatures(sigs)
	require.NoError(t, err)

	reversed := make([]common.Signature, len(sigs))
	for i, sig := range sigs {
		reversed[len(sigs)-1-i] = sig
	}
	backward, err := blst.AggregateSignatures(reversed)
	require.NoError(t, err)

	assert.Equal(t, forward.Marshal(), backward.Marshal(), "Aggregation depended on input order")
	verified, err := backward.FastAggregateVerify(pubkeys, msg)
	require.NoError(t, err)
	assert.True(t, verified)
}

func TestAggregateSignatures_SingleElement(t *testing.T) {
	priv, err := blst.RandKey()
	require.NoError(t, err)
	sig := priv.Sign([]byte("message"))
	agg, err := blst.AggregateSignatures([]common.Signature{sig})
	require.NoError(t, err)
	assert.Equal(t, sig.Marshal(), agg.Marshal())
}

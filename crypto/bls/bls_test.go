package bls_test

import (
	"testing"

	"github.com/aditya172926/ream/crypto/bls"
	"github.com/aditya172926/ream/crypto/bls/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatch_SignVerifyRoundTrip(t *testing.T) {
	priv, err := bls.RandKey()
	require.NoError(t, err)
	msg := []byte("block root")
	sig := priv.Sign(msg)
	assert.True(t, sig.Verify(priv.PublicKey(), msg))

	decodedPub, err := bls.PublicKeyFromBytes(priv.PublicKey().Marshal())
	require.NoError(t, err)
	decodedSig, err := bls.SignatureFromBytes(sig.Marshal())
	require.NoError(t, err)
	assert.True(t, decodedSig.Verify(decodedPub, msg))
}

func TestDispatch_DeterministicSeed(t *testing.T) {
	seed := make([]byte, 32)
	seed[0] = 42
	k1, err := bls.KeyFromSeed(seed)
	require.NoError(t, err)
	k2, err := bls.KeyFromSeed(seed)
	require.NoError(t, err)
	assert.Equal(t, k1.Marshal(), k2.Marshal())

	_, err = bls.KeyFromSeed(seed[:31])
	require.ErrorIs(t, err, common.ErrInvalidSeed)
}

func TestDispatch_SecretKeyRoundTrip(t *testing.T) {
	priv, err := bls.RandKey()
	require.NoError(t, err)
	restored, err := bls.SecretKeyFromBytes(priv.Marshal())
	require.NoError(t, err)
	assert.Equal(t, priv.PublicKey().Marshal(), restored.PublicKey().Marshal())
}

func TestDispatch_VerifyMultipleSignatures(t *testing.T) {
	var sigs [][]byte
	var msgs [][32]byte
	var pubs []bls.PublicKey
	for i := 0; i < 16; i++ {
		priv, err := bls.RandKey()
		require.NoError(t, err)
		msg := [32]byte{byte(i)}
		sigs = append(sigs, priv.Sign(msg[:]).Marshal())
		msgs = append(msgs, msg)
		pubs = append(pubs, priv.PublicKey())
	}
	verified, err := bls.VerifyMultipleSignatures(sigs, msgs, pubs)
	require.NoError(t, err)
	assert.True(t, verified)
}

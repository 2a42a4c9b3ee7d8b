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

func TestPublicKeyFromBytes(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		err   error
	}{
		{
			name:  "nil",
			input: nil,
			err:   common.ErrPublicKeyLength,
		},
		{
			name:  "empty",
			input: []byte{},
			err:   common.ErrPublicKeyLength,
		},
		{
			name:  "short",
			input: []byte{0xab, 0x00},
			err:   common.ErrPublicKeyLength,
		},
		{
			name:  "infinity",
			input: common.InfinitePublicKey[:],
			err:   common.ErrInfinitePubKey,
		},
		{
			// x = 1 has no matching y on the curve.
			name:  "not on curve",
			input: hexDecodeOrDie(t, "800000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000001"),
			err:   common.ErrMalformedPoint,
		},
		{
			// x = 4 is on the curve but the point is outside the r-order subgroup.
			name:  "not in subgroup",
			input: hexDecodeOrDie(t, "800000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000004"),
			err:   common.ErrNotInSubgroup,
		},
		{
			name:  "valid",
			input: hexDecodeOrDie(t, "a99a76ed7796f7be22d5b7e85deeb7c5677e88e511e0b337618f8c4eb61349b4bf2d153f649f7b53359fe8b94a38e44c"),
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res, err := blst.PublicKeyFromBytes(test.input)
			if test.err != nil {
				require.ErrorIs(t, err, test.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.input, res.Marshal())
		})
	}
}

func TestPublicKey_Copy(t *testing.T) {
	priv, err := blst.RandKey()
	require.NoError(t, err)
	pubkeyA := priv.PublicKey()
	pubkeyBytes := pubkeyA.Marshal()

	pubkeyB := pubkeyA.Copy()
	priv2, err := blst.RandKey()
	require.NoError(t, err)
	pubkeyB.Aggregate(priv2.PublicKey())

	assert.Equal(t, pubkeyBytes, pubkeyA.Marshal(), "Pubkey was mutated after copy")
}

func TestPublicKey_Aggregate(t *testing.T) {
	priv1, err := blst.RandKey()
	require.NoError(t, err)
	priv2, err := blst.RandKey()
	require.NoError(t, err)

	viaMethod := priv1.PublicKey().Aggregate(priv2.PublicKey())

	viaBytes, err := blst.AggregatePublicKeys([][]byte{
		priv1.PublicKey().Marshal(),
		priv2.PublicKey().Marshal(),
	})
	require.NoError(t, err)
	assert.Equal(t, viaBytes.Marshal(), viaMethod.Marshal())

	viaDecoded, err := blst.AggregateMultiplePubkeys([]common.PublicKey{
		priv1.PublicKey(), priv2.PublicKey(),
	})
	require.NoError(t, err)
	assert.Equal(t, viaBytes.Marshal(), viaDecoded.Marshal())
}

func TestPublicKey_AggregateEmpty(t *testing.T) {
	_, err := blst.AggregatePublicKeys([][]byte{})
	require.ErrorIs(t, err, common.ErrEmptyAggregate)
	_, err = blst.AggregateMultiplePubkeys(nil)
	require.ErrorIs(t, err, common.ErrEmptyAggregate)
}

func TestPublicKey_Equals(t *testing.T) {
	priv, err := blst.RandKey()
	require.NoError(t, err)
	other, err := blst.RandKey()
	require.NoError(t, err)
	assert.True(t, priv.PublicKey().Equals(priv.PublicKey().Copy()))
	assert.False(t, priv.PublicKey().Equals(other.PublicKey()))
}

func TestPublicKey_IsInfinite(t *testing.T) {
	priv, err := blst.RandKey()
	require.NoError(t, err)
	assert.False(t, priv.PublicKey().IsInfinite())
}

func TestPublicKey_HashTreeRoot(t *testing.T) {
	priv, err := blst.RandKey()
	require.NoError(t, err)
	pub := priv.PublicKey()

	// A 48-byte vector packs into two chunks, the second zero-padded.
	raw := pub.Marshal()
	var concat [64]byte
	copy(concat[:48], raw)
	expected := sha256.Sum256(concat[:])

	root, err := pub.HashTreeRoot()
	require.NoError(t, err)
	assert.Equal(t, expected, root)
}

// Package ssz implements the Merkleization primitives of the Simple Serialize
// specification that the BLS wire types need for their hash tree roots.
package ssz

import (
	"github.com/aditya172926/ream/config/fieldparams"
	"github.com/aditya172926/ream/crypto/hash"
	"github.com/aditya172926/ream/encoding/bytesutil"
	"github.com/pkg/errors"
)

// HashFn defines a function that returns the sha256 checksum of the data
// passed in.
type HashFn func(data []byte) [32]byte

var errInvalidByteLength = errors.New("byte string is not the expected fixed length")

// PackByChunk splits the concatenation of the serialized items into 32 byte
// chunks, zero padding the final chunk if needed.
func PackByChunk(serializedItems [][]byte) ([][32]byte, error) {
	emptyChunk := [32]byte{}
	// If there are no items, an empty chunk is returned.
	if len(serializedItems) == 0 {
		return [][32]byte{emptyChunk}, nil
	}
	// If each item has exactly the chunk size, no repacking is needed.
	if len(serializedItems[0]) == 32 {
		chunks := make([][32]byte, 0, len(serializedItems))
		for _, c := range serializedItems {
			chunks = append(chunks, bytesutil.ToBytes32(c))
		}
		return chunks, nil
	}
	orderedItems := []byte{}
	for _, item := range serializedItems {
		orderedItems = append(orderedItems, item...)
	}
	if len(orderedItems) == 0 {
		return [][32]byte{emptyChunk}, nil
	}
	var chunks [][32]byte
	for i := 0; i < len(orderedItems); i += 32 {
		j := i + 32
		// Pad the final chunk out to 32 bytes.
		if j > len(orderedItems) {
			chunks = append(chunks, bytesutil.ToBytes32(orderedItems[i:]))
		} else {
			chunks = append(chunks, bytesutil.ToBytes32(orderedItems[i:j]))
		}
	}
	return chunks, nil
}

// PublicKeyRoot computes the hash tree root of a compressed G1 public key, as
// a 48 byte SSZ vector.
func PublicKeyRoot(pubkey []byte) ([32]byte, error) {
	if len(pubkey) != fieldparams.BLSPubkeyLength {
		return [32]byte{}, errors.Wrap(errInvalidByteLength, "public key")
	}
	chunks, err := PackByChunk([][]byte{pubkey})
	if err != nil {
		return [32]byte{}, errors.Wrap(err, "could not pack public key into chunks")
	}
	return MerkleizeVector(chunks, uint64(len(chunks))), nil
}

// SignatureRoot computes the hash tree root of a compressed G2 signature, as
// a 96 byte SSZ vector.
func SignatureRoot(sig []byte) ([32]byte, error) {
	if len(sig) != fieldparams.BLSSignatureLength {
		return [32]byte{}, errors.Wrap(errInvalidByteLength, "signature")
	}
	chunks, err := PackByChunk([][]byte{sig})
	if err != nil {
		return [32]byte{}, errors.Wrap(err, "could not pack signature into chunks")
	}
	return MerkleizeVector(chunks, uint64(len(chunks))), nil
}

// MixInLength appends hash length to root
func MixInLength(root [32]byte, length []byte) [32]byte {
	var hashInput []byte
	hashInput = append(hashInput, root[:]...)
	hashInput = append(hashInput, length...)
	return hash.Hash(hashInput)
}

package bls

import (
	"github.com/aditya172926/ream/encoding/bytesutil"
)

// SignatureSet collects compressed signatures together with the public keys
// and message roots needed to verify them in a single randomized batch. The
// three slices are index-aligned.
type SignatureSet struct {
	Signatures [][]byte
	PublicKeys []PublicKey
	Messages   [][32]byte
}

// NewSet constructs an empty signature set.
func NewSet() *SignatureSet {
	return &SignatureSet{
		Signatures: [][]byte{},
		PublicKeys: []PublicKey{},
		Messages:   [][32]byte{},
	}
}

// Join appends the entries of the provided set to the current one and returns
// the receiver so calls can be chained.
func (s *SignatureSet) Join(set *SignatureSet) *SignatureSet {
	s.Signatures = append(s.Signatures, set.Signatures...)
	s.PublicKeys = append(s.PublicKeys, set.PublicKeys...)
	s.Messages = append(s.Messages, set.Messages...)
	return s
}

// Verify the set using the batch verification algorithm.
func (s *SignatureSet) Verify() (bool, error) {
	return VerifyMultipleSignatures(s.Signatures, s.Messages, s.PublicKeys)
}

// Copy returns a deep copy of the set. Signature bytes and public keys are
// duplicated so the copy can be mutated independently.
func (s *SignatureSet) Copy() *SignatureSet {
	signatures := make([][]byte, len(s.Signatures))
	for i := range s.Signatures {
		signatures[i] = bytesutil.SafeCopyBytes(s.Signatures[i])
	}
	pubkeys := make([]PublicKey, len(s.PublicKeys))
	for i := range s.PublicKeys {
		pubkeys[i] = s.PublicKeys[i].Copy()
	}
	messages := make([][32]byte, len(s.Messages))
	copy(messages, s.Messages)
	return &SignatureSet{
		Signatures: signatures,
		PublicKeys: pubkeys,
		Messages:   messages,
	}
}
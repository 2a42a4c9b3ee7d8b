// Package fieldparams defines the byte lengths of the wire encodings used
// across the consensus types.
package fieldparams

const (
	// BLSSecretKeyLength defines the byte length of a serialized BLS secret key.
	BLSSecretKeyLength = 32

	// BLSPubkeyLength defines the byte length of a compressed G1 public key.
	BLSPubkeyLength = 48

	// BLSSignatureLength defines the byte length of a compressed G2 signature.
	BLSSignatureLength = 96

	// RootLength defines the byte length of a hash tree root.
	RootLength = 32
)

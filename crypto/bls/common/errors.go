package common

import "github.com/pkg/errors"

var (
	// ErrInvalidSeed is returned when a deterministic key derivation seed is too short.
	ErrInvalidSeed = errors.New("seed must be at least 32 bytes")

	// ErrSecretKeyLength is returned when a secret key byte slice is not 32 bytes.
	ErrSecretKeyLength = errors.New("secret key must be 32 bytes")

	// ErrPublicKeyLength is returned when a public key byte slice is not 48 bytes.
	ErrPublicKeyLength = errors.New("public key must be 48 bytes")

	// ErrSignatureLength is returned when a signature byte slice is not 96 bytes.
	ErrSignatureLength = errors.New("signature must be 96 bytes")

	// ErrMalformedPoint is returned when bytes of the correct length do not
	// decode to a canonical point on the curve.
	ErrMalformedPoint = errors.New("could not unmarshal bytes into a curve point")

	// ErrNotInSubgroup is returned when a decoded point lies on the curve but
	// outside the r-order subgroup.
	ErrNotInSubgroup = errors.New("point is not in the correct subgroup")

	// ErrInfinitePubKey is returned when a public key decodes to the point at
	// infinity, which is never a valid signer identity.
	ErrInfinitePubKey = errors.New("received an infinite public key")

	// ErrZeroSecretKey is returned when a secret key is zero or not a canonical
	// scalar below the group order.
	ErrZeroSecretKey = errors.New("received a zero or invalid secret key")

	// ErrEmptyAggregate is returned when aggregation is attempted over zero
	// elements. An empty aggregate must never silently become the group
	// identity, otherwise a vacuously "valid" proof could be forged.
	ErrEmptyAggregate = errors.New("cannot aggregate an empty set")

	// ErrLengthMismatch is returned when batch verification is given public key
	// and message sequences of differing lengths.
	ErrLengthMismatch = errors.New("provided public keys and messages have differing lengths")
)

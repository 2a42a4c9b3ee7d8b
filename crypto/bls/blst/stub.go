//go:build blst_disabled || !((linux && amd64) || (linux && arm64) || (darwin && amd64) || (darwin && arm64) || (windows && amd64))

package blst

import "github.com/aditya172926/ream/crypto/bls/common"

// This stub file keeps the package compilable on platforms without blst
// support. The dispatching bls package never routes here; any direct call is
// a programming error.
const err = "blst is only supported on linux,darwin,windows"

// SecretKey -- stub
type SecretKey struct{}

// PublicKey obtains the public key corresponding to the BLS secret key.
func (s SecretKey) PublicKey() common.PublicKey {
	panic(err)
}

// Sign -- stub
func (s SecretKey) Sign(_ []byte) common.Signature {
	panic(err)
}

// Marshal -- stub
func (s SecretKey) Marshal() []byte {
	panic(err)
}

// Zeroize -- stub
func (s SecretKey) Zeroize() {
	panic(err)
}

// PublicKey -- stub
type PublicKey struct{}

// Marshal -- stub
func (p PublicKey) Marshal() []byte {
	panic(err)
}

// Copy -- stub
func (p PublicKey) Copy() common.PublicKey {
	panic(err)
}

// Aggregate -- stub
func (p PublicKey) Aggregate(_ common.PublicKey) common.PublicKey {
	panic(err)
}

// IsInfinite -- stub
func (p PublicKey) IsInfinite() bool {
	panic(err)
}

// Equals -- stub
func (p PublicKey) Equals(_ common.PublicKey) bool {
	panic(err)
}

// HashTreeRoot -- stub
func (p PublicKey) HashTreeRoot() ([32]byte, error) {
	panic(err)
}

// Signature -- stub
type Signature struct{}

// Verify -- stub
func (s Signature) Verify(_ common.PublicKey, _ []byte) bool {
	panic(err)
}

// AggregateVerify -- stub
func (s Signature) AggregateVerify(_ []common.PublicKey, _ [][32]byte) (bool, error) {
	panic(err)
}

// FastAggregateVerify -- stub
func (s Signature) FastAggregateVerify(_ []common.PublicKey, _ [32]byte) (bool, error) {
	panic(err)
}

// Eth2FastAggregateVerify -- stub
func (s Signature) Eth2FastAggregateVerify(_ []common.PublicKey, _ [32]byte) (bool, error) {
	panic(err)
}

// Marshal -- stub
func (s Signature) Marshal() []byte {
	panic(err)
}

// Copy -- stub
func (s Signature) Copy() common.Signature {
	panic(err)
}

// HashTreeRoot -- stub
func (s Signature) HashTreeRoot() ([32]byte, error) {
	panic(err)
}

// RandKey -- stub
func RandKey() (common.SecretKey, error) {
	panic(err)
}

// KeyFromSeed -- stub
func KeyFromSeed(_ []byte) (common.SecretKey, error) {
	panic(err)
}

// SecretKeyFromBytes -- stub
func SecretKeyFromBytes(_ []byte) (common.SecretKey, error) {
	panic(err)
}

// PublicKeyFromBytes -- stub
func PublicKeyFromBytes(_ []byte) (common.PublicKey, error) {
	panic(err)
}

// SignatureFromBytes -- stub
func SignatureFromBytes(_ []byte) (common.Signature, error) {
	panic(err)
}

// MultipleSignaturesFromBytes -- stub
func MultipleSignaturesFromBytes(_ [][]byte) ([]common.Signature, error) {
	panic(err)
}

// AggregatePublicKeys -- stub
func AggregatePublicKeys(_ [][]byte) (common.PublicKey, error) {
	panic(err)
}

// AggregateMultiplePubkeys -- stub
func AggregateMultiplePubkeys(_ []common.PublicKey) (common.PublicKey, error) {
	panic(err)
}

// AggregateSignatures -- stub
func AggregateSignatures(_ []common.Signature) (common.Signature, error) {
	panic(err)
}

// AggregateCompressedSignatures -- stub
func AggregateCompressedSignatures(_ [][]byte) (common.Signature, error) {
	panic(err)
}

// VerifySignature -- stub
func VerifySignature(_ []byte, _ [32]byte, _ common.PublicKey) (bool, error) {
	panic(err)
}

// VerifyMultipleSignatures -- stub
func VerifyMultipleSignatures(_ [][]byte, _ [][32]byte, _ []common.PublicKey) (bool, error) {
	panic(err)
}

// IsZero -- stub
func IsZero(_ []byte) bool {
	panic(err)
}

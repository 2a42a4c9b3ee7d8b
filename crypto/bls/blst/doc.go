// Package blst implements a go-wrapper around a library implementing the
// BLS12-381 curve and signature scheme (github.com/supranational/blst). This
// package exposes a public API for verifying and aggregating BLS signatures
// used by the consensus layer. Public keys are points on G1, signatures are
// points on G2, per the proof-of-possession ciphersuite.
package blst

// Package signing computes signing roots and signature domains for SSZ
// containers, binding every BLS signature to a domain type, a fork version,
// and a genesis validators root.
package signing

import (
	fssz "github.com/ferranbt/fastssz"
	"github.com/pkg/errors"

	"github.com/aditya172926/ream/crypto/bls"
)

// ForkVersionByteLength length of fork version byte array.
const ForkVersionByteLength = 4

// DomainByteLength length of domain byte array.
const DomainByteLength = 4

// ErrSigFailedToVerify returns when a signature of a signed object fails to verify.
var ErrSigFailedToVerify = errors.New("signature did not verify")

// Well known domain types mixed into signing domains to separate signature
// uses from one another.
var (
	DomainBeaconProposer     = [4]byte{0, 0, 0, 0}
	DomainBeaconAttester     = [4]byte{1, 0, 0, 0}
	DomainRandao             = [4]byte{2, 0, 0, 0}
	DomainDeposit            = [4]byte{3, 0, 0, 0}
	DomainVoluntaryExit      = [4]byte{4, 0, 0, 0}
	DomainSelectionProof     = [4]byte{5, 0, 0, 0}
	DomainAggregateAndProof  = [4]byte{6, 0, 0, 0}
	DomainSyncCommittee      = [4]byte{7, 0, 0, 0}
	DomainApplicationBuilder = [4]byte{0, 0, 0, 1}
)

// ComputeSigningRoot computes the root of the object by calculating the hash tree root of the signing data with the given domain.
//
// Spec pseudocode definition:
//
//	def compute_signing_root(ssz_object: SSZObject, domain: Domain) -> Root:
//	    """
//	    Return the signing root for the corresponding signing data.
//	    """
//	    return hash_tree_root(SigningData(
//	        object_root=hash_tree_root(ssz_object),
//	        domain=domain,
//	    ))
func ComputeSigningRoot(object fssz.HashRoot, domain []byte) ([32]byte, error) {
	return Data(object.HashTreeRoot, domain)
}

// Data computes the signing data by utilising the provided root function and then
// returning the signing data of the container object.
func Data(rootFunc func() ([32]byte, error), domain []byte) ([32]byte, error) {
	objRoot, err := rootFunc()
	if err != nil {
		return [32]byte{}, err
	}
	container := &SigningData{
		ObjectRoot: objRoot[:],
		Domain:     domain,
	}
	return container.HashTreeRoot()
}

// ComputeDomain returns the signature domain (fork version concatenated with domain type).
// A nil fork version or genesis validators root falls back to all-zero bytes
// of the respective length.
//
// def compute_domain(domain_type: DomainType, fork_version: Version=None, genesis_validators_root: Root=None) -> Domain:
//
//	"""
//	Return the domain for the ``domain_type`` and ``fork_version``.
//	"""
//	if fork_version is None:
//	    fork_version = GENESIS_FORK_VERSION
//	if genesis_validators_root is None:
//	    genesis_validators_root = Root()  # all bytes zero by default
//	fork_data_root = compute_fork_data_root(fork_version, genesis_validators_root)
//	return Domain(domain_type + fork_data_root[:28])
func ComputeDomain(domainType [DomainByteLength]byte, forkVersion, genesisValidatorsRoot []byte) ([]byte, error) {
	if forkVersion == nil {
		forkVersion = make([]byte, ForkVersionByteLength)
	}
	if genesisValidatorsRoot == nil {
		genesisValidatorsRoot = make([]byte, 32)
	}
	forkBytes := [ForkVersionByteLength]byte{}
	copy(forkBytes[:], forkVersion)

	forkDataRoot, err := computeForkDataRoot(forkBytes[:], genesisValidatorsRoot)
	if err != nil {
		return nil, err
	}

	return domain(domainType, forkDataRoot[:]), nil
}

// This returns the bls domain given by the domain type and fork data root.
func domain(domainType [DomainByteLength]byte, forkDataRoot []byte) []byte {
	b := []byte{}
	b = append(b, domainType[:4]...)
	b = append(b, forkDataRoot[:28]...)
	return b
}

// this returns the 32byte fork data root for the ``current_version`` and ``genesis_validators_root``.
// This is used primarily in signature domains to avoid collisions across forks/chains.
//
// Spec pseudocode definition:
//
//	def compute_fork_data_root(current_version: Version, genesis_validators_root: Root) -> Root:
//	    """
//	    Return the 32-byte fork data root for the ``current_version`` and ``genesis_validators_root``.
//	    This is used primarily in signature domains to avoid collisions across forks/chains.
//	    """
//	    return hash_tree_root(ForkData(
//	        current_version=current_version,
//	        genesis_validators_root=genesis_validators_root,
//	    ))
func computeForkDataRoot(version, root []byte) ([32]byte, error) {
	r, err := (&ForkData{
		CurrentVersion:        version,
		GenesisValidatorsRoot: root,
	}).HashTreeRoot()
	if err != nil {
		return [32]byte{}, err
	}
	return r, nil
}

// VerifySigningRoot verifies the signing root of an object given its public key, signature and domain.
func VerifySigningRoot(obj fssz.HashRoot, pub, signature, domain []byte) error {
	publicKey, err := bls.PublicKeyFromBytes(pub)
	if err != nil {
		return errors.Wrap(err, "could not convert bytes to public key")
	}
	sig, err := bls.SignatureFromBytes(signature)
	if err != nil {
		return errors.Wrap(err, "could not convert bytes to signature")
	}
	root, err := ComputeSigningRoot(obj, domain)
	if err != nil {
		return errors.Wrap(err, "could not compute signing root")
	}
	if !sig.Verify(publicKey, root[:]) {
		return ErrSigFailedToVerify
	}
	return nil
}

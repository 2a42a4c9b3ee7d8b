package root

import (
	"encoding/hex"
	"fmt"

	"github.com/aditya172926/ream/crypto/bls"
	"github.com/aditya172926/ream/runtime/signing"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var Commands = []*cli.Command{
	{
		Name:  "root",
		Usage: "commands for SSZ hash tree roots and signature domains",
		Subcommands: []*cli.Command{
			pubkeyCmd,
			signatureCmd,
			domainCmd,
		},
	},
}

var pubkeyFlags = struct {
	Public string
}{}

var pubkeyCmd = &cli.Command{
	Name:   "pubkey",
	Usage:  "hash tree root of a compressed public key",
	Action: cliActionPubkey,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:        "public",
			Usage:       "hex-encoded 48-byte compressed public key",
			Destination: &pubkeyFlags.Public,
			Required:    true,
		},
	},
}

func cliActionPubkey(_ *cli.Context) error {
	raw, err := hex.DecodeString(pubkeyFlags.Public)
	if err != nil {
		return errors.Wrap(err, "could not decode public key")
	}
	pub, err := bls.PublicKeyFromBytes(raw)
	if err != nil {
		return err
	}
	root, err := pub.HashTreeRoot()
	if err != nil {
		return err
	}
	fmt.Printf("root: 0x%x\n", root)
	return nil
}

var signatureFlags = struct {
	Signature string
}{}

var signatureCmd = &cli.Command{
	Name:   "signature",
	Usage:  "hash tree root of a compressed signature",
	Action: cliActionSignature,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:        "signature",
			Usage:       "hex-encoded 96-byte compressed signature",
			Destination: &signatureFlags.Signature,
			Required:    true,
		},
	},
}

func cliActionSignature(_ *cli.Context) error {
	raw, err := hex.DecodeString(signatureFlags.Signature)
	if err != nil {
		return errors.Wrap(err, "could not decode signature")
	}
	sig, err := bls.SignatureFromBytes(raw)
	if err != nil {
		return err
	}
	root, err := sig.HashTreeRoot()
	if err != nil {
		return err
	}
	fmt.Printf("root: 0x%x\n", root)
	return nil
}

var domainFlags = struct {
	DomainType            string
	ForkVersion           string
	GenesisValidatorsRoot string
}{}

var domainCmd = &cli.Command{
	Name:   "domain",
	Usage:  "compute a 32-byte signature domain from a domain type, fork version and genesis validators root",
	Action: cliActionDomain,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:        "domain-type",
			Usage:       "hex-encoded 4-byte domain type, e.g. 07000000 for sync committee",
			Destination: &domainFlags.DomainType,
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "fork-version",
			Usage:       "hex-encoded 4-byte fork version. omit for the genesis fork version",
			Destination: &domainFlags.ForkVersion,
		},
		&cli.StringFlag{
			Name:        "genesis-validators-root",
			Usage:       "hex-encoded 32-byte genesis validators root. omit for the zero root",
			Destination: &domainFlags.GenesisValidatorsRoot,
		},
	},
}

func cliActionDomain(_ *cli.Context) error {
	rawType, err := hex.DecodeString(domainFlags.DomainType)
	if err != nil {
		return errors.Wrap(err, "could not decode domain type")
	}
	if len(rawType) != signing.DomainByteLength {
		return errors.New("domain type must be 4 bytes")
	}
	var domainType [signing.DomainByteLength]byte
	copy(domainType[:], rawType)

	var forkVersion []byte
	if domainFlags.ForkVersion != "" {
		forkVersion, err = hex.DecodeString(domainFlags.ForkVersion)
		if err != nil {
			return errors.Wrap(err, "could not decode fork version")
		}
	}
	var genesisRoot []byte
	if domainFlags.GenesisValidatorsRoot != "" {
		genesisRoot, err = hex.DecodeString(domainFlags.GenesisValidatorsRoot)
		if err != nil {
			return errors.Wrap(err, "could not decode genesis validators root")
		}
	}
	domain, err := signing.ComputeDomain(domainType, forkVersion, genesisRoot)
	if err != nil {
		return err
	}
	fmt.Printf("domain: 0x%x\n", domain)
	return nil
}

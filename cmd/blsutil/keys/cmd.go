package keys

import (
	"encoding/hex"
	"fmt"

	"github.com/aditya172926/ream/crypto/bls"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var Commands = []*cli.Command{
	{
		Name:  "keys",
		Usage: "commands for managing BLS12-381 keypairs",
		Subcommands: []*cli.Command{
			generateCmd,
			inspectCmd,
		},
	},
}

var generateFlags = struct {
	Seed string
}{}

var generateCmd = &cli.Command{
	Name:   "generate",
	Usage:  "generate a keypair, either randomly or deterministically from a hex seed of at least 32 bytes",
	Action: cliActionGenerate,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:        "seed",
			Usage:       "hex-encoded seed for deterministic key derivation (at least 32 bytes). omit to use system randomness",
			Destination: &generateFlags.Seed,
		},
	},
}

func cliActionGenerate(_ *cli.Context) error {
	sec, err := newSecretKey()
	if err != nil {
		return err
	}
	defer sec.Zeroize()
	printKeypair(sec)
	return nil
}

func newSecretKey() (bls.SecretKey, error) {
	if generateFlags.Seed == "" {
		return bls.RandKey()
	}
	seed, err := hex.DecodeString(generateFlags.Seed)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode seed")
	}
	return bls.KeyFromSeed(seed)
}

func printKeypair(sec bls.SecretKey) {
	fmt.Printf("secret: 0x%x\n", sec.Marshal())
	fmt.Printf("public: 0x%x\n", sec.PublicKey().Marshal())
}

var inspectFlags = struct {
	Secret string
}{}

var inspectCmd = &cli.Command{
	Name:   "inspect",
	Usage:  "derive the public key of a hex-encoded secret key",
	Action: cliActionInspect,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:        "secret",
			Usage:       "hex-encoded 32-byte secret key",
			Destination: &inspectFlags.Secret,
			Required:    true,
		},
	},
}

func cliActionInspect(_ *cli.Context) error {
	raw, err := hex.DecodeString(inspectFlags.Secret)
	if err != nil {
		return errors.Wrap(err, "could not decode secret key")
	}
	sec, err := bls.SecretKeyFromBytes(raw)
	if err != nil {
		return err
	}
	defer sec.Zeroize()
	fmt.Printf("public: 0x%x\n", sec.PublicKey().Marshal())
	return nil
}

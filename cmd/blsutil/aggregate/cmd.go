package aggregate

import (
	"encoding/hex"
	"fmt"

	"github.com/aditya172926/ream/crypto/bls"
	"github.com/aditya172926/ream/encoding/bytesutil"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var Commands = []*cli.Command{
	{
		Name:  "aggregate",
		Usage: "commands for aggregating BLS public keys and signatures",
		Subcommands: []*cli.Command{
			sigsCmd,
			keysCmd,
			verifyCmd,
		},
	},
}

func decodeAll(values []string) ([][]byte, error) {
	out := make([][]byte, len(values))
	for i, v := range values {
		raw, err := hex.DecodeString(v)
		if err != nil {
			return nil, errors.Wrapf(err, "could not decode %q", v)
		}
		out[i] = raw
	}
	return out, nil
}

var sigsCmd = &cli.Command{
	Name:   "sigs",
	Usage:  "aggregate compressed signatures into a single signature",
	Action: cliActionSigs,
	Flags: []cli.Flag{
		&cli.StringSliceFlag{
			Name:     "signature",
			Usage:    "hex-encoded 96-byte compressed signature, repeatable",
			Required: true,
		},
	},
}

func cliActionSigs(c *cli.Context) error {
	sigs, err := decodeAll(c.StringSlice("signature"))
	if err != nil {
		return err
	}
	agg, err := bls.AggregateCompressedSignatures(sigs)
	if err != nil {
		return err
	}
	fmt.Printf("signature: 0x%x\n", agg.Marshal())
	return nil
}

var keysCmd = &cli.Command{
	Name:   "keys",
	Usage:  "aggregate compressed public keys into a single key",
	Action: cliActionKeys,
	Flags: []cli.Flag{
		&cli.StringSliceFlag{
			Name:     "public",
			Usage:    "hex-encoded 48-byte compressed public key, repeatable",
			Required: true,
		},
	},
}

func cliActionKeys(c *cli.Context) error {
	pubs, err := decodeAll(c.StringSlice("public"))
	if err != nil {
		return err
	}
	agg, err := bls.AggregatePublicKeys(pubs)
	if err != nil {
		return err
	}
	fmt.Printf("public: 0x%x\n", agg.Marshal())
	return nil
}

var verifyFlags = struct {
	Message   string
	Signature string
}{}

var verifyCmd = &cli.Command{
	Name:   "verify",
	Usage:  "fast-aggregate-verify an aggregated signature by all public keys over one 32-byte message",
	Action: cliActionVerify,
	Flags: []cli.Flag{
		&cli.StringSliceFlag{
			Name:     "public",
			Usage:    "hex-encoded 48-byte compressed public key, repeatable",
			Required: true,
		},
		&cli.StringFlag{
			Name:        "message",
			Usage:       "hex-encoded 32-byte message root",
			Destination: &verifyFlags.Message,
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "signature",
			Usage:       "hex-encoded 96-byte compressed aggregate signature",
			Destination: &verifyFlags.Signature,
			Required:    true,
		},
	},
}

func cliActionVerify(c *cli.Context) error {
	rawPubs, err := decodeAll(c.StringSlice("public"))
	if err != nil {
		return err
	}
	pubs := make([]bls.PublicKey, len(rawPubs))
	for i, raw := range rawPubs {
		pub, err := bls.PublicKeyFromBytes(raw)
		if err != nil {
			return err
		}
		pubs[i] = pub
	}
	msg, err := hex.DecodeString(verifyFlags.Message)
	if err != nil {
		return errors.Wrap(err, "could not decode message")
	}
	if len(msg) != 32 {
		return errors.New("message must be 32 bytes")
	}
	rawSig, err := hex.DecodeString(verifyFlags.Signature)
	if err != nil {
		return errors.Wrap(err, "could not decode signature")
	}
	sig, err := bls.SignatureFromBytes(rawSig)
	if err != nil {
		return err
	}
	ok, err := sig.FastAggregateVerify(pubs, bytesutil.ToBytes32(msg))
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("signature did not verify")
	}
	fmt.Println("signature verified")
	return nil
}

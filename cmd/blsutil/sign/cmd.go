package sign

import (
	"encoding/hex"
	"fmt"

	"github.com/aditya172926/ream/crypto/bls"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var Commands = []*cli.Command{
	signCmd,
	verifyCmd,
}

var signFlags = struct {
	Secret  string
	Message string
}{}

var signCmd = &cli.Command{
	Name:   "sign",
	Usage:  "sign a hex-encoded message with a hex-encoded secret key",
	Action: cliActionSign,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:        "secret",
			Usage:       "hex-encoded 32-byte secret key",
			Destination: &signFlags.Secret,
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "message",
			Usage:       "hex-encoded message to sign",
			Destination: &signFlags.Message,
			Required:    true,
		},
	},
}

func cliActionSign(_ *cli.Context) error {
	rawSec, err := hex.DecodeString(signFlags.Secret)
	if err != nil {
		return errors.Wrap(err, "could not decode secret key")
	}
	msg, err := hex.DecodeString(signFlags.Message)
	if err != nil {
		return errors.Wrap(err, "could not decode message")
	}
	sec, err := bls.SecretKeyFromBytes(rawSec)
	if err != nil {
		return err
	}
	defer sec.Zeroize()
	fmt.Printf("signature: 0x%x\n", sec.Sign(msg).Marshal())
	return nil
}

var verifyFlags = struct {
	Public    string
	Message   string
	Signature string
}{}

var verifyCmd = &cli.Command{
	Name:   "verify",
	Usage:  "verify a signature over a message under a public key",
	Action: cliActionVerify,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:        "public",
			Usage:       "hex-encoded 48-byte compressed public key",
			Destination: &verifyFlags.Public,
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "message",
			Usage:       "hex-encoded message",
			Destination: &verifyFlags.Message,
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "signature",
			Usage:       "hex-encoded 96-byte compressed signature",
			Destination: &verifyFlags.Signature,
			Required:    true,
		},
	},
}

func cliActionVerify(_ *cli.Context) error {
	rawPub, err := hex.DecodeString(verifyFlags.Public)
	if err != nil {
		return errors.Wrap(err, "could not decode public key")
	}
	msg, err := hex.DecodeString(verifyFlags.Message)
	if err != nil {
		return errors.Wrap(err, "could not decode message")
	}
	rawSig, err := hex.DecodeString(verifyFlags.Signature)
	if err != nil {
		return errors.Wrap(err, "could not decode signature")
	}
	pub, err := bls.PublicKeyFromBytes(rawPub)
	if err != nil {
		return err
	}
	sig, err := bls.SignatureFromBytes(rawSig)
	if err != nil {
		return err
	}
	if !sig.Verify(pub, msg) {
		return errors.New("signature did not verify")
	}
	fmt.Println("signature verified")
	return nil
}

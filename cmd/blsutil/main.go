// blsutil is an operator tool for BLS12-381 keys and signatures: key
// generation, signing, verification, aggregation and SSZ hash tree roots.
package main

import (
	"os"

	"github.com/aditya172926/ream/cmd/blsutil/aggregate"
	"github.com/aditya172926/ream/cmd/blsutil/keys"
	"github.com/aditya172926/ream/cmd/blsutil/root"
	"github.com/aditya172926/ream/cmd/blsutil/sign"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var blsutilCommands []*cli.Command

func init() {
	blsutilCommands = append(blsutilCommands, keys.Commands...)
	blsutilCommands = append(blsutilCommands, sign.Commands...)
	blsutilCommands = append(blsutilCommands, aggregate.Commands...)
	blsutilCommands = append(blsutilCommands, root.Commands...)
}

func main() {
	app := &cli.App{
		Name:     "blsutil",
		Usage:    "utilities for BLS12-381 keys and signatures",
		Commands: blsutilCommands,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

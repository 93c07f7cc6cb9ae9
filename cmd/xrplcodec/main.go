package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/anyswap/xrpl-codec/cmd/utils"
	"github.com/anyswap/xrpl-codec/log"
)

var (
	clientIdentifier = "xrplcodec"
	// Git SHA1 commit hash of the release (set via linker flags)
	gitCommit = ""
	gitDate   = ""
	// The app that holds all commands and flags.
	app = utils.NewApp(clientIdentifier, gitCommit, gitDate, "the xrpl binary codec and keypair command line interface")
)

func initApp() {
	app.Action = xrplcodec
	app.HideVersion = true
	app.Commands = []*cli.Command{
		encodeCommand,
		encodeForSigningCommand,
		encodeForMultisigningCommand,
		decodeCommand,
		hashCommand,
		seedCommand,
		keypairCommand,
		addressCommand,
		xaddressCommand,
		signCommand,
		verifyCommand,
		utils.VersionCommand,
	}
}

func main() {
	initApp()
	if err := app.Run(os.Args); err != nil {
		log.Error("command failed", "err", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func xrplcodec(ctx *cli.Context) error {
	if ctx.NArg() > 0 {
		return fmt.Errorf("invalid command: %q", ctx.Args().Get(0))
	}
	return cli.ShowAppHelp(ctx)
}

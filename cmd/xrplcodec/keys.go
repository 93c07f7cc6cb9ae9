package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/anyswap/xrpl-codec/addresscodec"
	"github.com/anyswap/xrpl-codec/common"
	"github.com/anyswap/xrpl-codec/keypairs"
	"github.com/anyswap/xrpl-codec/log"
	"github.com/anyswap/xrpl-codec/params"
)

var (
	errVerifyFailed = errors.New("signature verification failed")

	entropyFlag = &cli.StringFlag{
		Name:  "entropy",
		Usage: "16 byte hex entropy (random if empty)",
	}
	algorithmFlag = &cli.StringFlag{
		Name:  "algorithm",
		Usage: "secp256k1 or ed25519 (default from config, else secp256k1)",
	}
	seedFlag = &cli.StringFlag{
		Name:     "seed",
		Usage:    "family seed",
		Required: true,
	}
	validatorFlag = &cli.BoolFlag{
		Name:  "validator",
		Usage: "derive the validator keypair instead of the account keypair",
	}
	tagFlag = &cli.Uint64Flag{
		Name:  "tag",
		Usage: "destination or source tag to embed",
	}
	testnetFlag = &cli.BoolFlag{
		Name:  "testnet",
		Usage: "use the test network x-address prefix (default from config)",
	}
	keyFlag = &cli.StringFlag{
		Name:     "key",
		Usage:    "hex key",
		Required: true,
	}
	messageFlag = &cli.StringFlag{
		Name:     "message",
		Usage:    "message, hex unless --text",
		Required: true,
	}
	signatureFlag = &cli.StringFlag{
		Name:     "signature",
		Usage:    "hex signature",
		Required: true,
	}

	seedCommand = &cli.Command{
		Action: seedAction,
		Name:   "seed",
		Usage:  "generate a family seed",
		Flags:  []cli.Flag{entropyFlag, algorithmFlag},
	}
	keypairCommand = &cli.Command{
		Action: keypairAction,
		Name:   "keypair",
		Usage:  "derive the keypair of a seed",
		Flags:  []cli.Flag{seedFlag, validatorFlag},
	}
	addressCommand = &cli.Command{
		Action:    addressAction,
		Name:      "address",
		Usage:     "derive the classic address of a hex public key",
		ArgsUsage: "<publicKey>",
	}
	xaddressCommand = &cli.Command{
		Action:    xaddressAction,
		Name:      "xaddress",
		Usage:     "convert between classic addresses and x-addresses",
		ArgsUsage: "<address>",
		Flags:     []cli.Flag{tagFlag, testnetFlag},
	}
	signCommand = &cli.Command{
		Action: signAction,
		Name:   "sign",
		Usage:  "sign a message with a hex private key",
		Flags:  []cli.Flag{keyFlag, messageFlag, textFlag},
	}
	verifyCommand = &cli.Command{
		Action: verifyAction,
		Name:   "verify",
		Usage:  "verify a signature with a hex public key",
		Flags:  []cli.Flag{keyFlag, messageFlag, signatureFlag, textFlag},
	}
)

func seedAction(ctx *cli.Context) error {
	algo := params.GetCryptoAlgorithm()
	if name := ctx.String(algorithmFlag.Name); name != "" {
		var err error
		if algo, err = addresscodec.ParseCryptoAlgorithm(name); err != nil {
			return err
		}
	}
	var entropy []byte
	if s := ctx.String(entropyFlag.Name); s != "" {
		var err error
		if entropy, err = common.FromHex(s); err != nil {
			return err
		}
	}
	seed, err := keypairs.GenerateSeed(entropy, algo)
	if err != nil {
		return err
	}
	log.Debug("generated seed", "algorithm", algo, "random", entropy == nil)
	fmt.Println(seed)
	return nil
}

func keypairAction(ctx *cli.Context) error {
	validator := ctx.Bool(validatorFlag.Name)
	public, private, err := keypairs.DeriveKeypair(ctx.String(seedFlag.Name), validator)
	if err != nil {
		return err
	}
	fmt.Println("public key: ", public)
	fmt.Println("private key:", private)
	publicBytes, err := common.FromHex(public)
	if err != nil {
		return err
	}
	if validator {
		node, err := addresscodec.EncodeNodePublicKey(publicBytes)
		if err != nil {
			return err
		}
		fmt.Println("node public:", node)
		return nil
	}
	address, err := keypairs.DeriveClassicAddress(public)
	if err != nil {
		return err
	}
	fmt.Println("address:    ", address)
	return nil
}

func addressAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("address takes one public key argument")
	}
	address, err := keypairs.DeriveClassicAddress(ctx.Args().First())
	if err != nil {
		return err
	}
	fmt.Println(address)
	return nil
}

func xaddressAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("xaddress takes one address argument")
	}
	address := ctx.Args().First()
	if addresscodec.IsValidXAddress(address) {
		decoded, err := addresscodec.DecodeXAddress(address)
		if err != nil {
			return err
		}
		fmt.Println("classic address:", decoded.ClassicAddress)
		if decoded.HasTag {
			fmt.Println("tag:            ", decoded.Tag)
		}
		fmt.Println("testnet:        ", decoded.IsTestNet)
		return nil
	}
	tag := ctx.Uint64(tagFlag.Name)
	if tag > 1<<32-1 {
		return fmt.Errorf("tag %v does not fit in 32 bits", tag)
	}
	testnet := params.IsTestNet() || ctx.Bool(testnetFlag.Name)
	xAddress, err := addresscodec.ClassicAddressToXAddress(address, uint32(tag), ctx.IsSet(tagFlag.Name), testnet)
	if err != nil {
		return err
	}
	fmt.Println(xAddress)
	return nil
}

func signAction(ctx *cli.Context) error {
	message, err := messageBytes(ctx, ctx.String(messageFlag.Name))
	if err != nil {
		return err
	}
	signature, err := keypairs.Sign(message, ctx.String(keyFlag.Name))
	if err != nil {
		return err
	}
	fmt.Println(signature)
	return nil
}

func verifyAction(ctx *cli.Context) error {
	message, err := messageBytes(ctx, ctx.String(messageFlag.Name))
	if err != nil {
		return err
	}
	if !keypairs.IsValidMessage(message, ctx.String(signatureFlag.Name), ctx.String(keyFlag.Name)) {
		fmt.Println(color.RedString("invalid"))
		return errVerifyFailed
	}
	fmt.Println(color.GreenString("valid"))
	return nil
}

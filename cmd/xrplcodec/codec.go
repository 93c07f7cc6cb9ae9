package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/anyswap/xrpl-codec/binarycodec"
	"github.com/anyswap/xrpl-codec/log"
)

var (
	signerFlag = &cli.StringFlag{
		Name:     "signer",
		Usage:    "classic address of the signer",
		Required: true,
	}

	encodeCommand = &cli.Command{
		Action:    encodeAction,
		Name:      "encode",
		Usage:     "encode a json transaction to canonical hex",
		ArgsUsage: "[json]",
		Flags:     []cli.Flag{fileFlag},
	}
	encodeForSigningCommand = &cli.Command{
		Action:    encodeForSigningAction,
		Name:      "encode-for-signing",
		Usage:     "encode the signing bytes of a json transaction",
		ArgsUsage: "[json]",
		Flags:     []cli.Flag{fileFlag},
	}
	encodeForMultisigningCommand = &cli.Command{
		Action:    encodeForMultisigningAction,
		Name:      "encode-for-multisigning",
		Usage:     "encode the bytes one signer of a multi-signed transaction signs",
		ArgsUsage: "[json]",
		Flags:     []cli.Flag{fileFlag, signerFlag},
	}
	decodeCommand = &cli.Command{
		Action:    decodeAction,
		Name:      "decode",
		Usage:     "decode canonical hex to json",
		ArgsUsage: "[hex]",
		Flags:     []cli.Flag{fileFlag},
	}
	hashCommand = &cli.Command{
		Action:    hashAction,
		Name:      "hash",
		Usage:     "compute the id of a signed transaction blob",
		ArgsUsage: "[hex]",
		Flags:     []cli.Flag{fileFlag},
	}
)

func encodeAction(ctx *cli.Context) error {
	return encodeWith(ctx, binarycodec.Encode)
}

func encodeForSigningAction(ctx *cli.Context) error {
	return encodeWith(ctx, binarycodec.EncodeForSigning)
}

func encodeForMultisigningAction(ctx *cli.Context) error {
	signer := ctx.String(signerFlag.Name)
	return encodeWith(ctx, func(obj map[string]interface{}) (string, error) {
		return binarycodec.EncodeForMultisigning(obj, signer)
	})
}

func encodeWith(ctx *cli.Context, encode func(map[string]interface{}) (string, error)) error {
	obj, err := readJSONObject(ctx)
	if err != nil {
		return err
	}
	encoded, err := encode(obj)
	if err != nil {
		return err
	}
	log.Debug("encoded transaction", "command", ctx.Command.Name, "fields", len(obj), "bytes", len(encoded)/2)
	fmt.Println(encoded)
	return nil
}

func decodeAction(ctx *cli.Context) error {
	blob, err := readHex(ctx)
	if err != nil {
		return err
	}
	obj, err := binarycodec.Decode(blob)
	if err != nil {
		return err
	}
	log.Debug("decoded transaction", "bytes", len(blob)/2, "fields", len(obj))
	return printJSON(obj)
}

func hashAction(ctx *cli.Context) error {
	blob, err := readHex(ctx)
	if err != nil {
		return err
	}
	hash, err := binarycodec.TransactionHash(blob)
	if err != nil {
		return err
	}
	fmt.Println(hash)
	return nil
}

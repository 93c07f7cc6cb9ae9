package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/anyswap/xrpl-codec/common"
)

var (
	errMissingInput = errors.New("missing input: pass it as argument, with --file, or on stdin")

	fileFlag = &cli.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "read input from file ('-' for stdin)",
	}
	textFlag = &cli.BoolFlag{
		Name:  "text",
		Usage: "treat the message as text instead of hex",
	}
)

// readInput returns the first argument, the content of --file, or stdin.
func readInput(ctx *cli.Context) ([]byte, error) {
	if ctx.NArg() > 0 {
		return []byte(ctx.Args().First()), nil
	}
	switch file := ctx.String(fileFlag.Name); file {
	case "":
		stat, err := os.Stdin.Stat()
		if err != nil || stat.Mode()&os.ModeCharDevice != 0 {
			return nil, errMissingInput
		}
		return io.ReadAll(os.Stdin)
	case "-":
		return io.ReadAll(os.Stdin)
	default:
		return os.ReadFile(file)
	}
}

func readJSONObject(ctx *cli.Context) (map[string]interface{}, error) {
	data, err := readInput(ctx)
	if err != nil {
		return nil, err
	}
	return parseJSONObject(data)
}

func parseJSONObject(data []byte) (map[string]interface{}, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var obj map[string]interface{}
	if err := decoder.Decode(&obj); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return obj, nil
}

func readHex(ctx *cli.Context) (string, error) {
	data, err := readInput(ctx)
	if err != nil {
		return "", err
	}
	s := strings.TrimSpace(string(data))
	if !common.IsHex(s) {
		return "", common.ErrInvalidHex
	}
	return strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X"), nil
}

// messageBytes decodes a message flag as hex, or takes it as text.
func messageBytes(ctx *cli.Context, message string) ([]byte, error) {
	if ctx.Bool(textFlag.Name) {
		return []byte(message), nil
	}
	return common.FromHex(message)
}

func printJSON(v interface{}) error {
	bs, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(bs))
	return nil
}

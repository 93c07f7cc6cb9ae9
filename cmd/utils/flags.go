package utils

import (
	"github.com/urfave/cli/v2"

	"github.com/anyswap/xrpl-codec/log"
	"github.com/anyswap/xrpl-codec/params"
)

var (
	ConfigFileFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Specify config file",
	}
	VerbosityFlag = &cli.Uint64Flag{
		Name:    "verbosity",
		Aliases: []string{"v"},
		Usage:   "log verbosity (0:panic, 1:fatal, 2:error, 3:warn, 4:info, 5:debug, 6:trace)",
		Value:   3,
	}
	JSONFormatFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "output log in json format",
	}
	ColorFormatFlag = &cli.BoolFlag{
		Name:  "color",
		Usage: "output log in color text format",
		Value: true,
	}
	LogFileFlag = &cli.StringFlag{
		Name:  "log",
		Usage: "also write log to rotated file",
	}
)

// CommonFlags are accepted by every command.
var CommonFlags = []cli.Flag{
	ConfigFileFlag,
	VerbosityFlag,
	JSONFormatFlag,
	ColorFormatFlag,
	LogFileFlag,
}

func SetLogger(ctx *cli.Context) error {
	logLevel := ctx.Uint64(VerbosityFlag.Name)
	jsonFormat := ctx.Bool(JSONFormatFlag.Name)
	colorFormat := ctx.Bool(ColorFormatFlag.Name)
	log.SetLogger(uint32(logLevel), jsonFormat, colorFormat)
	return log.SetLogFile(ctx.String(LogFileFlag.Name), 0, 0)
}

func GetConfigFilePath(ctx *cli.Context) string {
	return ctx.String(ConfigFileFlag.Name)
}

// Before sets up logging and loads the config file, if any.
func Before(ctx *cli.Context) error {
	if err := SetLogger(ctx); err != nil {
		return err
	}
	params.LoadConfig(GetConfigFilePath(ctx))
	return nil
}

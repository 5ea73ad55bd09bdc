package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"github.com/weberc2/prelude/internal/log"
	"github.com/weberc2/prelude/option"
)

const (
	placesFlag  = "places"
	formatFlag  = "format"
	configFlag  = "config"
	verboseFlag = "verbose"
)

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:  appName,
		Usage: "rotate a list of items left by a number of places",
		Description: "rotates ITEMs (or lines of stdin if no ITEMs are " +
			"given) left by --places, wrapping around the end of the list",
		ArgsUsage: "[ITEM...]",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    placesFlag,
				Aliases: []string{"p"},
				Usage:   "rotate left by `N` places; negative values rotate right",
			},
			&cli.StringFlag{
				Name:    formatFlag,
				Aliases: []string{"f"},
				Usage:   "output format: lines, yaml or json",
			},
			&cli.StringFlag{
				Name:    configFlag,
				Aliases: []string{"c"},
				Usage:   "path to a YAML config `FILE`",
				EnvVars: []string{envVarPrefix + "_CONFIG_FILE"},
				Value:   defaultConfigFile(),
			},
			&cli.BoolFlag{
				Name:  verboseFlag,
				Usage: "log debug information to stderr",
			},
		},
		Action: func(ctx *cli.Context) error {
			c, err := LoadConfig(ctx.String(configFlag))
			if err != nil {
				return err
			}

			// flags take precedence over the config file and environment
			if ctx.IsSet(placesFlag) {
				c.Places = option.Some(ctx.Int(placesFlag))
			}
			if ctx.IsSet(formatFlag) {
				c.Format = ctx.String(formatFlag)
			}
			if ctx.IsSet(verboseFlag) {
				c.Verbose = ctx.Bool(verboseFlag)
			}

			items := ctx.Args().Slice()
			if len(items) < 1 {
				if items, err = readLines(stdin); err != nil {
					return err
				}
			}

			return c.Run(
				log.Context(ctx.Context, log.New(stderr, c.Verbose)),
				items,
				stdout,
			)
		},
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading items from stdin: %w", err)
	}
	return lines, nil
}

func main() {
	ctx := log.Context(context.Background(), log.New(os.Stderr, false))
	if err := newApp(os.Stdin, os.Stdout, os.Stderr).RunContext(
		ctx,
		os.Args,
	); err != nil {
		log.FromContext(ctx).Error("rotate failed", "err", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"io"
	"log"
	"math"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func main() {
	app := newApp(os.Stdin, os.Stdout)
	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// tool holds the streams the subcommands read from when no files are given and write to.
type tool struct {
	stdin  io.Reader
	stdout io.Writer
}

func newApp(stdin io.Reader, stdout io.Writer) *cli.Command {
	me := &tool{stdin: stdin, stdout: stdout}

	return &cli.Command{
		Name:   "pqtool",
		Usage:  "order lines of text with a priority queue",
		Writer: stdout,
		Commands: []*cli.Command{
			{
				Name:      "sort",
				Usage:     "print lines highest first (lowest first with --reverse)",
				ArgsUsage: "[file ...]",
				Action:    me.sortLines,
				Flags: append(commonFlags(),
					&cli.UintFlag{
						Name:        "capacity",
						DefaultText: "4",
						Usage:       "initial heap capacity",
					},
					&cli.BoolFlag{
						Name:  "unique",
						Usage: "drop duplicate lines",
					},
				),
			},
			{
				Name:      "top",
				Usage:     "print the highest lines, highest first",
				ArgsUsage: "[file ...]",
				Action:    me.topLines,
				Flags: append(commonFlags(),
					&cli.UintFlag{
						Name:    "count",
						Aliases: []string{"n"},
						Value:   10,
						Usage:   "number of lines to print",
					},
				),
			},
			{
				Name:      "merge",
				Usage:     "merge files that are each sorted lowest first (highest first with --reverse)",
				ArgsUsage: "file [file ...]",
				Action:    me.mergeLines,
				Flags: append(commonFlags(),
					&cli.BoolFlag{
						Name:  "unique",
						Usage: "drop duplicate lines",
					},
				),
			},
		},
	}
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "numeric",
			Usage: "compare lines as numbers",
		},
		&cli.BoolFlag{
			Name:  "reverse",
			Usage: "give lower lines higher priority",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "log debug information to stderr",
		},
	}
}

// intFlag reads an unsigned flag, rejecting values an int cannot hold.
func intFlag(cmd *cli.Command, name string) (int, error) {
	value := cmd.Uint(name)
	if value > math.MaxInt {
		return 0, errors.Errorf("--%s must be at most %d, got %d", name, math.MaxInt, value)
	}
	return int(value), nil
}

func orderArgsFromCommand(cmd *cli.Command) orderArgs {
	return orderArgs{
		Numeric: cmd.Bool("numeric"),
		Reverse: cmd.Bool("reverse"),
	}
}

func newLogger(cmd *cli.Command) (*zap.Logger, error) {
	if !cmd.Bool("verbose") {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

// CommandBuilder builds a subcommand bound to the given streams.
type CommandBuilder = func(stdin io.Reader, stdout, stderr io.Writer) *cli.Command

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	builders := []CommandBuilder{
		encodeCommand,
		decodeCommand,
		dictCommand,
		interactiveCommand,
	}

	cmds := make([]*cli.Command, 0, len(builders))
	for _, builder := range builders {
		cmds = append(cmds, builder(stdin, stdout, stderr))
	}

	app := &cli.Command{
		Name:      "morse",
		Usage:     "translates between morse code and text",
		ArgsUsage: "[morse file]",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      "config",
				Usage:     "path to a YAML configuration file",
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level: trace, debug, info, warn, error, disabled",
			},
			&cli.BoolFlag{
				Name:  "print-dict",
				Usage: "print the morse code dictionary before running the command",
			},
		},
		Commands: cmds,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			// A bare file argument decodes the file, anything else starts the prompt
			if cmd.Args().Present() {
				return decodeAction(stdin, stdout, stderr)(ctx, cmd)
			}

			return interactiveAction(stdin, stdout, stderr)(ctx, cmd)
		},
	}

	// Errors are reported below, never by exiting from inside the cli package
	app.ExitErrHandler = func(_ context.Context, _ *cli.Command, _ error) {}

	if err := app.Run(context.Background(), args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	morse "github.com/camelinx/morse_tree"
)

const (
	modeDecode = 1
	modeEncode = 2
)

func messageFlag(usage string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "message",
		Aliases: []string{"m"},
		Usage:   usage,
	}
}

func encodeCommand(stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "encode",
		Usage:     "converts text into morse code",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			messageFlag("text to convert instead of reading a file or stdin"),
		},
		Action: encodeAction(stdin, stdout, stderr),
	}
}

func encodeAction(stdin io.Reader, stdout, stderr io.Writer) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		s, err := newSession(ctx, cmd, stdout, stderr)
		if err != nil {
			return err
		}
		defer s.close(ctx)

		text, err := readInput(cmd, stdin)
		if err != nil {
			return err
		}

		message, err := s.codec.Encode(ctx, text)
		if err != nil {
			return fmt.Errorf("conversion failed: %w", err)
		}

		s.log.Debug().Int("characters", len(text)).Int("symbols", len(message)).Msg("encoded text")
		fmt.Fprintln(stdout, message)

		return nil
	}
}

func decodeCommand(stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "converts morse code into text; letters are separated by spaces and words by /",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			messageFlag("morse message to convert instead of reading a file or stdin"),
			&cli.BoolFlag{
				Name:  "reversed",
				Usage: "the message is written back to front and is reversed before decoding",
			},
		},
		Action: decodeAction(stdin, stdout, stderr),
	}
}

func decodeAction(stdin io.Reader, stdout, stderr io.Writer) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		s, err := newSession(ctx, cmd, stdout, stderr)
		if err != nil {
			return err
		}
		defer s.close(ctx)

		message, err := readInput(cmd, stdin)
		if err != nil {
			return err
		}

		text, err := s.decode(ctx, cmd, message)
		if err != nil {
			return err
		}

		fmt.Fprintln(stdout, text)

		return nil
	}
}

func (s *session) decode(ctx context.Context, cmd *cli.Command, message string) (string, error) {
	if !morse.IsValidMorseMessage(message) {
		return "", morse.ErrInvalidMorseMessage
	}

	decoder, reversed := s.decoder(cmd)

	text, err := decoder.Decode(ctx, message)
	if err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}

	s.log.Debug().Bool("reversed", reversed).Int("symbols", len(message)).Msg("decoded message")
	return text, nil
}

func dictCommand(_ io.Reader, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "dict",
		Usage: "prints the morse code dictionary",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Usage: "output format: table, plain",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := newSession(ctx, cmd, stdout, stderr)
			if err != nil {
				return err
			}
			defer s.close(ctx)

			format := s.cfg.Output.DictionaryFormat
			if cmd.IsSet("format") {
				format = cmd.String("format")
			}

			return s.printDictionary(ctx, stdout, format)
		},
	}
}

func interactiveCommand(stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "interactive",
		Usage: "asks for a mode and a single line to convert",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "reversed",
				Usage: "morse input is written back to front and is reversed before decoding",
			},
		},
		Action: interactiveAction(stdin, stdout, stderr),
	}
}

func interactiveAction(stdin io.Reader, stdout, stderr io.Writer) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		s, err := newSession(ctx, cmd, stdout, stderr)
		if err != nil {
			return err
		}
		defer s.close(ctx)

		prompt := isTerminal(stdin)
		reader := bufio.NewReader(stdin)

		if prompt {
			fmt.Fprint(stdout, "\nChoose mode:\n1) Morse code -> Alphabetical\n2) Alphabetical -> Morse code\nEnter 1 or 2: ")
		}

		line, err := readLine(reader)
		if err != nil {
			return fmt.Errorf("invalid input: %w", err)
		}

		mode, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return fmt.Errorf("invalid input %q", line)
		}

		switch mode {
		case modeDecode:
			if prompt {
				fmt.Fprintln(stdout, "Enter Morse message (letters separated by spaces, words by /):")
			}

			message, err := readLine(reader)
			if err != nil {
				return fmt.Errorf("no Morse message provided: %w", err)
			}

			text, err := s.decode(ctx, cmd, message)
			if err != nil {
				return err
			}

			fmt.Fprintf(stdout, "\nOriginal Morse Code: %s\n", message)
			if _, reversed := s.decoder(cmd); reversed {
				fmt.Fprintf(stdout, "Reversed Morse Code: %s\n", morse.ReverseString(message))
			}
			fmt.Fprintf(stdout, "Decoded Message: %s\n", text)
		case modeEncode:
			if prompt {
				fmt.Fprintln(stdout, "Enter alphabetical text to convert (letters & spaces):")
			}

			text, err := readLine(reader)
			if err != nil {
				return fmt.Errorf("no text provided: %w", err)
			}

			message, err := s.codec.Encode(ctx, text)
			if err != nil {
				return fmt.Errorf("conversion failed: %w", err)
			}

			fmt.Fprintf(stdout, "\nAlphabetical input: %s\n", text)
			fmt.Fprintf(stdout, "Converted Morse: %s\n", message)
		default:
			return fmt.Errorf("unknown mode %d", mode)
		}

		return nil
	}
}

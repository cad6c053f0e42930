package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	morse "github.com/camelinx/morse_tree"
	"github.com/camelinx/morse_tree/internal/config"
	"github.com/camelinx/morse_tree/internal/dictionary"
	"github.com/camelinx/morse_tree/internal/logger"
)

// session holds what every command needs: configuration, a logger and a
// codec backed by a populated tree.
type session struct {
	cfg   *config.Config
	log   zerolog.Logger
	codec *morse.Codec
}

func newSession(ctx context.Context, cmd *cli.Command, stdout, stderr io.Writer) (*session, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	if cmd.IsSet("log-level") {
		cfg.Log.Level = cmd.String("log-level")
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	log, err := logger.New(stderr, cfg.Log)
	if err != nil {
		return nil, err
	}

	codec, err := morse.NewDefaultCodec(ctx,
		morse.WithBufferCapacity(cfg.Codec.BufferCapacity),
		morse.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("build morse tree: %w", err)
	}

	s := &session{
		cfg:   cfg,
		log:   log,
		codec: codec,
	}

	if cfg.Output.PrintDictionary || cmd.Bool("print-dict") {
		fmt.Fprintln(stdout, "Morse Code Dictionary:")
		if err := s.printDictionary(ctx, stdout, cfg.Output.DictionaryFormat); err != nil {
			s.close(ctx)
			return nil, err
		}
	}

	return s, nil
}

func (s *session) printDictionary(ctx context.Context, w io.Writer, format string) error {
	return dictionary.Print(ctx, w, s.codec.Tree(), format, terminalWidth(w))
}

// decoder returns the codec to decode with, honouring the reversed input setting.
func (s *session) decoder(cmd *cli.Command) (morse.MessageCodec, bool) {
	reversed := s.cfg.Codec.ReversedInput
	if cmd.IsSet("reversed") {
		reversed = cmd.Bool("reversed")
	}

	if reversed {
		return morse.NewReversedCodec(s.codec), true
	}

	return s.codec, false
}

func (s *session) close(ctx context.Context) {
	s.codec.Close(ctx)
}

func isTerminal(stream any) bool {
	f, ok := stream.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func terminalWidth(stream any) int {
	if !isTerminal(stream) {
		return 0
	}

	width, _, err := term.GetSize(int(stream.(*os.File).Fd()))
	if err != nil {
		return 0
	}

	return width
}

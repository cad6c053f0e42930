package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
)

var errNoInput = errors.New("no input provided")

func trimLineEnding(s string) string {
	return strings.TrimRight(s, "\r\n")
}

// readInput returns the --message flag, the contents of the file named by
// the first argument, or all of stdin, in that order of preference.
func readInput(cmd *cli.Command, stdin io.Reader) (string, error) {
	if cmd.IsSet("message") {
		return cmd.String("message"), nil
	}

	if cmd.Args().Present() {
		return readFile(cmd.Args().First())
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}

	return trimLineEnding(string(data)), nil
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	return trimLineEnding(string(data)), nil
}

// readLine reads one line without its line ending. A final line without a
// newline is returned as is; nothing left to read is errNoInput.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}

	if line == "" && errors.Is(err, io.EOF) {
		return "", errNoInput
	}

	return trimLineEnding(line), nil
}

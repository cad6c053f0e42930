// Package dictionary renders the (character, code) pairs of a morse tree.
package dictionary

import (
	"context"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	morse "github.com/camelinx/morse_tree"
)

const (
	FormatTable = "table"
	FormatPlain = "plain"
)

// Walker is implemented by trees that can enumerate their entries.
type Walker interface {
	Walk(context.Context, morse.WalkerFn) error
}

// Print writes every entry of the tree to w, in walk order.
// terminalWidth only matters for the table format; zero or less keeps plain
// ASCII borders and an unbounded row length.
func Print(ctx context.Context, w io.Writer, tree Walker, format string, terminalWidth int) error {
	switch format {
	case FormatPlain:
		return printPlain(ctx, w, tree)
	case FormatTable:
		return printTable(ctx, w, tree, terminalWidth)
	}

	return fmt.Errorf("unsupported dictionary format %q", format)
}

func printPlain(ctx context.Context, w io.Writer, tree Walker) error {
	return tree.Walk(ctx, func(_ context.Context, entry morse.Entry) error {
		_, err := fmt.Fprintf(w, "Character: %c, Morse Code: %s\n", entry.Character, entry.Code)
		return err
	})
}

func newTable(w io.Writer, terminalWidth int) table.Writer {
	outputTable := table.NewWriter()
	outputTable.SetOutputMirror(w)

	// use fancy characters if we're outputting to a terminal
	if terminalWidth > 0 {
		outputTable.SetStyle(table.StyleRounded)
		outputTable.SetAllowedRowLength(terminalWidth)
	}

	return outputTable
}

func printTable(ctx context.Context, w io.Writer, tree Walker, terminalWidth int) error {
	outputTable := newTable(w, terminalWidth)
	outputTable.AppendHeader(table.Row{"Character", "Morse Code"})

	err := tree.Walk(ctx, func(_ context.Context, entry morse.Entry) error {
		outputTable.AppendRow(table.Row{string(entry.Character), entry.Code})
		return nil
	})
	if err != nil {
		return err
	}

	outputTable.Render()
	return nil
}

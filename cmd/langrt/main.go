// Command langrt drives the parser and object model over a script file: it
// parses the source to an AST and prints it back out in canonical form,
// the way `gomib-libsmi diag` dumps intermediate representations for
// inspection.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/langrt/langrt/internal/ast"
	"github.com/langrt/langrt/internal/parser"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "langrt",
		Short: "langrt parses and inspects scripts against the module/class object model",
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable trace-level lexer/parser logging")

	root.AddCommand(newParseCmd(&verbose))
	return root
}

func newParseCmd(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "parse a script and print its canonical AST form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			var logger *slog.Logger
			if *verbose {
				logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.Level(-8)}))
			}

			block, err := parser.New(source, logger).Parse()
			if err != nil {
				return err
			}
			for _, node := range block.Nodes {
				fmt.Fprintln(cmd.OutOrStdout(), ast.Print(node))
			}
			return nil
		},
	}
}

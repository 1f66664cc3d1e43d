package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"place/internal/diagfmt"
	"place/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file",
	Short: "Print the tokens of a source file",
	Long: `Tokenize prints the flat lexer output of a file, or with --tree the
assembled token trees the rewriter works on. Use - to read stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("tree", false, "print token trees instead of flat items")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	tree, err := cmd.Flags().GetBool("tree")
	if err != nil {
		return fmt.Errorf("failed to get tree flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	var result *driver.TokenizeResult
	if args[0] == "-" {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		result = driver.TokenizeSource(cmd.Context(), "<stdin>", content, s.opts)
	} else {
		result, err = driver.Tokenize(cmd.Context(), args[0], s.opts)
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
	}

	// Выводим диагностику в stderr, если есть
	s.printDiagnostics(cmd, result.Bag, result.FileSet)
	s.printTimings(cmd)

	out := cmd.OutOrStdout()
	switch {
	case tree && format == "json":
		err = diagfmt.FormatTreeJSON(out, result.Tree, result.FileSet)
	case tree:
		err = diagfmt.FormatTreePretty(out, result.Tree, result.FileSet)
	case format == "json":
		err = diagfmt.FormatItemsJSON(out, result.Items, result.FileSet)
	default:
		err = diagfmt.FormatItemsPretty(out, result.Items, result.FileSet)
	}
	if err != nil {
		return err
	}
	if result.Bag.HasErrors() {
		return errReported
	}
	return nil
}

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"place/internal/version"
)

// errReported marks failures whose diagnostics were already printed.
var errReported = errors.New("errors reported")

var rootCmd = &cobra.Command{
	Use:   "place",
	Short: "Token-tree rewriting with __marker__ builtins",
	Long: `place expands marker invocations such as __string__(...), __ident__(...)
and __ToCase__(...) inside token trees and prints the rewritten source.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupRun,
	PersistentPostRun: func(*cobra.Command, []string) { teardownRun() },
}

func init() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(expandCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	flags := rootCmd.PersistentFlags()
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.Bool("quiet", false, "suppress non-essential output")
	flags.Bool("timings", false, "show timing information")
	flags.Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	flags.String("diagnostics-format", "pretty", "diagnostics layout (pretty|short)")
	flags.String("trace", "", "write trace events to file (- for stderr)")
	flags.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	flags.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	flags.String("cpu-profile", "", "write CPU profile to file")
	flags.String("mem-profile", "", "write heap profile to file")
	flags.String("runtime-trace", "", "write Go runtime trace to file")
}

// main executes the root command; any error exits with status 1.
func main() {
	err := rootCmd.Execute()
	teardownRun()
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "place: %v\n", err)
		}
		os.Exit(1)
	}
}

var cleanups []func()

func setupRun(cmd *cobra.Command, _ []string) error {
	stopProf, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	cleanups = append(cleanups, stopProf)
	stopTrace, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	cleanups = append(cleanups, stopTrace)
	return nil
}

// teardownRun runs cleanups in reverse order; safe to call twice.
func teardownRun() {
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
	cleanups = nil
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"place/internal/diag"
	"place/internal/diagfmt"
	"place/internal/driver"
	"place/internal/source"
)

var expandCmd = &cobra.Command{
	Use:   "expand [file|dir|-]",
	Short: "Expand markers and print or write the result",
	Long: `Expand rewrites every marker invocation in the input.

A single file (or - for stdin, or -e for inline text) is printed to stdout
unless -o is given. A directory expands every file with the configured
suffix in parallel and writes each result next to its input with the suffix
stripped, or under -o. Without arguments the directory holding place.toml
is expanded.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExpand,
}

func init() {
	expandCmd.Flags().StringP("eval", "e", "", "expand inline text instead of a file")
	expandCmd.Flags().StringP("output", "o", "", "output file (single input) or directory (dir input)")
	expandCmd.Flags().String("format", "text", "output format (text|json)")
	expandCmd.Flags().Int("jobs", 0, "parallel workers for directory input (0: GOMAXPROCS)")
	expandCmd.Flags().Bool("no-cache", false, "do not read or write the result cache")
	expandCmd.Flags().String("ui", "auto", "progress UI for directory input (auto|on|off)")
}

// expandJSON is the --format json document.
type expandJSON struct {
	Results     []expandResultJSON        `json:"results"`
	Diagnostics diagfmt.DiagnosticsOutput `json:"diagnostics"`
}

type expandResultJSON struct {
	Path    string `json:"path"`
	OutPath string `json:"out_path,omitempty"`
	Output  string `json:"output,omitempty"`
	Failed  bool   `json:"failed"`
	Cached  bool   `json:"cached"`
}

func runExpand(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	eval, _ := flags.GetString("eval")
	output, _ := flags.GetString("output")
	format, _ := flags.GetString("format")
	noCache, _ := flags.GetBool("no-cache")
	uiFlag, _ := flags.GetString("ui")
	if flags.Changed("jobs") {
		s.opts.Jobs, _ = flags.GetInt("jobs")
	}
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	uiMode, err := readToggle("ui", uiFlag)
	if err != nil {
		return err
	}
	if !noCache {
		s.openCache(cmd)
	}

	ctx := cmd.Context()
	switch {
	case flags.Changed("eval"):
		if len(args) > 0 {
			return errors.New("-e and an input path are mutually exclusive")
		}
		fs := source.NewFileSet()
		res := driver.ExpandSource(ctx, fs, "<inline>", []byte(eval), s.opts)
		res.OutPath = output
		return finishSingle(cmd, s, fs, res, format)

	case len(args) == 1 && args[0] == "-":
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		fs := source.NewFileSet()
		res := driver.ExpandSource(ctx, fs, "<stdin>", content, s.opts)
		res.OutPath = output
		return finishSingle(cmd, s, fs, res, format)
	}

	target := ""
	if len(args) == 1 {
		target = args[0]
	} else if s.manifest != nil {
		target = s.manifest.Root
	} else {
		return fmt.Errorf("no input given and no %s found\nplease specify the input explicitly, e.g.:\n  place expand src/", manifestName)
	}

	info, err := os.Stat(target)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		fs, res, err := driver.ExpandFile(ctx, target, s.opts)
		if err != nil {
			return err
		}
		res.OutPath = output
		return finishSingle(cmd, s, fs, res, format)
	}

	if output != "" {
		s.opts.OutDir = output
	}
	var (
		fs      *source.FileSet
		results []driver.ExpandResult
	)
	if format == "text" && !s.quiet && uiMode.enabled(os.Stdout) {
		fs, results, err = runExpandDirWithUI(ctx, target, s.opts)
	} else {
		fs, results, err = driver.ExpandDir(ctx, target, s.opts)
	}
	if err != nil {
		return err
	}
	return finishDir(cmd, s, fs, results, format)
}

// finishSingle prints or writes one result. Output goes to stdout when no
// -o path was given. In JSON mode the file from -o is written first and
// the document reports it as out_path.
func finishSingle(cmd *cobra.Command, s *settings, fs *source.FileSet, res *driver.ExpandResult, format string) error {
	if format == "json" {
		writeErr := driver.WriteOutput(res)
		if writeErr != nil {
			res.Bag.Add(diag.NewError(diag.IOWriteFileError, source.Span{File: source.NoFile}, writeErr.Error()))
		}
		if err := writeJSON(cmd, s, fs, []driver.ExpandResult{*res}, res.Bag); err != nil {
			return err
		}
		if writeErr != nil {
			return errReported
		}
		return nil
	}
	s.printDiagnostics(cmd, res.Bag, fs)
	s.printTimings(cmd)
	if res.Failed {
		return errReported
	}
	if res.OutPath == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), res.Output)
		return err
	}
	return driver.WriteOutput(res)
}

func finishDir(cmd *cobra.Command, s *settings, fs *source.FileSet, results []driver.ExpandResult, format string) error {
	failed := 0
	var writeErrs []error
	for i := range results {
		if results[i].Failed {
			failed++
			continue
		}
		if err := driver.WriteOutput(&results[i]); err != nil {
			writeErrs = append(writeErrs, err)
		}
	}
	bag := driver.MergeBags(results, s.opts.MaxDiagnostics)
	for _, err := range writeErrs {
		bag.Add(diag.NewError(diag.IOWriteFileError, source.Span{File: source.NoFile}, err.Error()))
	}

	if format == "json" {
		if err := writeJSON(cmd, s, fs, results, bag); err != nil {
			return err
		}
	} else {
		s.printDiagnostics(cmd, bag, fs)
		s.printTimings(cmd)
		if !s.quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "expanded %d of %d files\n", len(results)-failed, len(results))
		}
	}
	if failed > 0 || len(writeErrs) > 0 {
		return errReported
	}
	return nil
}

func writeJSON(cmd *cobra.Command, s *settings, fs *source.FileSet, results []driver.ExpandResult, bag *diag.Bag) error {
	if s.timings {
		driver.AppendTimings(bag, s.opts.Timer, "expand", "")
	}
	bag.Sort()
	doc := expandJSON{
		Results: make([]expandResultJSON, 0, len(results)),
		Diagnostics: diagfmt.BuildDiagnosticsOutput(bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         diagfmt.PathModeRelative,
			IncludeNotes:     true,
		}),
	}
	failed := false
	for _, r := range results {
		doc.Results = append(doc.Results, expandResultJSON{
			Path:    r.Path,
			OutPath: r.OutPath,
			Output:  r.Output,
			Failed:  r.Failed,
			Cached:  r.Cached,
		})
		failed = failed || r.Failed
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	if failed {
		return errReported
	}
	return nil
}

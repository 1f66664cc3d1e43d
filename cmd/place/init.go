package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create a place.toml manifest",
	Long: `Init writes a default place.toml into dir (the current directory when
omitted), creating the directory if needed, plus an example.place input
when the directory holds no inputs yet.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

const exampleInput = `// expanded by ` + "`place expand`" + ` into example
const GREETING: &str = __string__("hello, " __to_case__(WORLD_WIDE));
fn __ident__(get_ __head__(name value))() {}
`

func runInit(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	target, err := filepath.Abs(target)
	if err != nil {
		return err
	}

	if st, err := os.Stat(target); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", target, err)
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	manifestPath := filepath.Join(target, manifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", manifestPath)
	}
	if err := os.WriteFile(manifestPath, []byte(buildDefaultManifest()), 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initialized place project in %s\n", target)
	fmt.Fprintf(out, "  - %s\n", manifestName)

	matches, err := filepath.Glob(filepath.Join(target, "*.place"))
	if err != nil || len(matches) > 0 {
		return nil
	}
	if err := os.WriteFile(filepath.Join(target, "example.place"), []byte(exampleInput), 0o644); err != nil {
		return fmt.Errorf("failed to write example.place: %w", err)
	}
	fmt.Fprintf(out, "  - example.place\n")
	return nil
}

package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputPath maps an input path to the file its expansion is written to:
// the input suffix is stripped, and when opts.OutDir is set the path
// relative to root is re-rooted there. Inputs without the suffix get
// ".out" appended so they are never overwritten.
func OutputPath(path, root string, opts Options) string {
	out := strings.TrimSuffix(path, opts.suffix())
	if out == path {
		out += ".out"
	}
	if opts.OutDir == "" {
		return out
	}
	rel := filepath.Base(out)
	if root != "" {
		if r, err := filepath.Rel(root, out); err == nil && !strings.HasPrefix(r, "..") {
			rel = r
		}
	}
	return filepath.Join(opts.OutDir, rel)
}

// WriteOutput writes a successful expansion to res.OutPath.
func WriteOutput(res *ExpandResult) error {
	if res == nil || res.Failed || res.OutPath == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(res.OutPath), 0o755); err != nil {
		return fmt.Errorf("write %s: %w", res.OutPath, err)
	}
	if err := os.WriteFile(res.OutPath, []byte(res.Output), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", res.OutPath, err)
	}
	return nil
}

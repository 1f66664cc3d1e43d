package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const manifestName = "place.toml"

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Expand      expandConfig      `toml:"expand"`
	Diagnostics diagnosticsConfig `toml:"diagnostics"`
}

type expandConfig struct {
	Suffix string `toml:"suffix"`
	OutDir string `toml:"out_dir"`
	Jobs   int    `toml:"jobs"`
	Cache  *bool  `toml:"cache"`
	Docs   bool   `toml:"keep_doc_comments"`
}

type diagnosticsConfig struct {
	Max   int    `toml:"max"`
	Color string `toml:"color"`
}

func findPlaceToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, manifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findPlaceToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadProjectConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadProjectConfig(path string) (projectConfig, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return projectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return projectConfig{}, fmt.Errorf("%s: unknown key %s", path, undecoded[0])
	}
	if meta.IsDefined("expand", "suffix") && !strings.HasPrefix(cfg.Expand.Suffix, ".") {
		return projectConfig{}, fmt.Errorf("%s: [expand].suffix must start with '.'", path)
	}
	if cfg.Expand.Jobs < 0 {
		return projectConfig{}, fmt.Errorf("%s: [expand].jobs must not be negative", path)
	}
	if cfg.Diagnostics.Max < 0 {
		return projectConfig{}, fmt.Errorf("%s: [diagnostics].max must not be negative", path)
	}
	if meta.IsDefined("diagnostics", "color") {
		if _, err := readToggle("color", cfg.Diagnostics.Color); err != nil {
			return projectConfig{}, fmt.Errorf("%s: [diagnostics].color: %w", path, err)
		}
	}
	return cfg, nil
}

// resolveOutDir makes a manifest-relative out_dir absolute.
func (m *projectManifest) resolveOutDir() string {
	if m == nil || m.Config.Expand.OutDir == "" {
		return ""
	}
	out := filepath.FromSlash(m.Config.Expand.OutDir)
	if filepath.IsAbs(out) {
		return out
	}
	return filepath.Join(m.Root, out)
}

func buildDefaultManifest() string {
	return `# place project manifest
[expand]
suffix = ".place"      # input files end with this; output strips it
out_dir = ""           # empty: write next to the input
jobs = 0               # 0: GOMAXPROCS
cache = true

[diagnostics]
max = 100
color = "auto"
`
}

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, manifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindPlaceTomlWalksUp(t *testing.T) {
	root := t.TempDir()
	path := writeManifest(t, root, buildDefaultManifest())
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, ok, err := findPlaceToml(nested)
	if err != nil || !ok {
		t.Fatalf("findPlaceToml: ok=%v err=%v", ok, err)
	}
	if got != path {
		t.Errorf("found %q, want %q", got, path)
	}
}

func TestDefaultManifestLoads(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, buildDefaultManifest())
	m, ok, err := loadProjectManifest(dir)
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	cfg := m.Config
	if cfg.Expand.Suffix != ".place" || cfg.Expand.Cache == nil || !*cfg.Expand.Cache {
		t.Errorf("unexpected expand config %+v", cfg.Expand)
	}
	if cfg.Diagnostics.Max != 100 || cfg.Diagnostics.Color != "auto" {
		t.Errorf("unexpected diagnostics config %+v", cfg.Diagnostics)
	}
	if m.resolveOutDir() != "" {
		t.Errorf("empty out_dir must stay empty")
	}
}

func TestManifestValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "bad suffix", content: "[expand]\nsuffix = \"place\"\n", wantErr: "suffix must start"},
		{name: "negative jobs", content: "[expand]\njobs = -1\n", wantErr: "jobs must not be negative"},
		{name: "bad color", content: "[diagnostics]\ncolor = \"rainbow\"\n", wantErr: "invalid --color"},
		{name: "unknown key", content: "[expand]\nsufix = \".x\"\n", wantErr: "unknown key"},
		{name: "broken toml", content: "[expand\n", wantErr: "failed to parse TOML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tt.content)
			_, err := loadProjectConfig(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("err = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestResolveOutDir(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[expand]\nout_dir = \"gen/rs\"\n")
	m, _, err := loadProjectManifest(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := m.resolveOutDir(), filepath.Join(dir, "gen", "rs"); got != want {
		t.Errorf("resolveOutDir = %q, want %q", got, want)
	}
}

func TestReadToggle(t *testing.T) {
	for in, want := range map[string]toggle{"": toggleAuto, "AUTO": toggleAuto, "on": toggleOn, " off ": toggleOff} {
		got, err := readToggle("ui", in)
		if err != nil || got != want {
			t.Errorf("readToggle(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := readToggle("ui", "maybe"); err == nil {
		t.Error("expected error for invalid value")
	}
	if !toggleOn.enabled(os.Stdout) || toggleOff.enabled(os.Stdout) {
		t.Error("explicit toggles must ignore the terminal")
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"place/internal/diag"
	"place/internal/diagfmt"
	"place/internal/driver"
	"place/internal/observ"
	"place/internal/source"
)

// settings merges place.toml with command-line flags; flags win.
type settings struct {
	manifest *projectManifest
	color    bool
	quiet    bool
	timings  bool
	cache    bool
	short    bool // одна строка на диагностику
	opts     driver.Options
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	manifest, _, err := loadProjectManifest(".")
	if err != nil {
		return nil, err
	}
	flags := cmd.Root().PersistentFlags()
	s := &settings{manifest: manifest, cache: true}

	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.timings, err = flags.GetBool("timings"); err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if s.opts.MaxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	layout, err := flags.GetString("diagnostics-format")
	if err != nil {
		return nil, fmt.Errorf("failed to get diagnostics-format flag: %w", err)
	}
	switch layout {
	case "pretty":
	case "short":
		s.short = true
	default:
		return nil, fmt.Errorf("unknown diagnostics format %q (want pretty or short)", layout)
	}
	colorFlag, err := flags.GetString("color")
	if err != nil {
		return nil, fmt.Errorf("failed to get color flag: %w", err)
	}

	if manifest != nil {
		cfg := manifest.Config
		s.opts.Suffix = cfg.Expand.Suffix
		s.opts.OutDir = manifest.resolveOutDir()
		s.opts.Jobs = cfg.Expand.Jobs
		s.opts.KeepDocComments = cfg.Expand.Docs
		if cfg.Expand.Cache != nil {
			s.cache = *cfg.Expand.Cache
		}
		if cfg.Diagnostics.Max > 0 && !flags.Changed("max-diagnostics") {
			s.opts.MaxDiagnostics = cfg.Diagnostics.Max
		}
		if cfg.Diagnostics.Color != "" && !flags.Changed("color") {
			colorFlag = cfg.Diagnostics.Color
		}
	}

	mode, err := readToggle("color", colorFlag)
	if err != nil {
		return nil, err
	}
	s.color = mode.enabled(os.Stderr)
	if s.timings {
		s.opts.Timer = observ.NewTimer()
	}
	return s, nil
}

// openCache attaches the disk cache unless disabled; failures only disable it.
func (s *settings) openCache(cmd *cobra.Command) {
	if !s.cache {
		return
	}
	cache, err := driver.OpenDiskCache("place")
	if err != nil {
		if !s.quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "cache disabled: %v\n", err)
		}
		return
	}
	s.opts.Cache = cache
}

// printDiagnostics renders bag to stderr unless quiet hides warnings.
func (s *settings) printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	if s.quiet && !bag.HasErrors() {
		return
	}
	bag.Sort()
	if s.short {
		if out := diag.FormatShortDiagnostics(bag.Items(), fs, true); out != "" {
			fmt.Fprintln(cmd.ErrOrStderr(), out)
		}
		return
	}
	diagfmt.Pretty(cmd.ErrOrStderr(), bag, fs, diagfmt.PrettyOpts{
		Color:     s.color,
		Context:   1,
		PathMode:  diagfmt.PathModeRelative,
		ShowNotes: true,
	})
}

func (s *settings) printTimings(cmd *cobra.Command) {
	if s.timings && s.opts.Timer != nil {
		fmt.Fprint(cmd.ErrOrStderr(), s.opts.Timer.Summary())
	}
}

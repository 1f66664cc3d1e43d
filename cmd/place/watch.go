package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"place/internal/driver"
	"place/internal/trace"
	"place/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Expand a directory and re-expand files as they change",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().StringP("output", "o", "", "output directory")
	watchCmd.Flags().Duration("debounce", watch.DefaultDebounce, "quiet period before re-expanding")
}

func runWatch(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	dir := "."
	switch {
	case len(args) == 1:
		dir = args[0]
	case s.manifest != nil:
		dir = s.manifest.Root
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		s.opts.OutDir = out
	}
	debounce, _ := cmd.Flags().GetDuration("debounce")
	s.openCache(cmd)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fs, results, err := driver.ExpandDir(ctx, dir, s.opts)
	if err != nil {
		return err
	}
	// первая сборка с ошибками не мешает наблюдению
	_ = finishDir(cmd, s, fs, results, "text")

	w, err := watch.New(dir, watch.Options{
		Suffix:   s.opts.Suffix,
		Debounce: debounce,
		OnError:  func(err error) { trace.Error(ctx, "watch", err) },
	})
	if err != nil {
		return err
	}
	defer w.Close()

	if !s.quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "watching %s (Ctrl-C to stop)\n", dir)
	}
	err = w.Run(ctx, func(paths []string) {
		rebuild(ctx, cmd, s, dir, paths)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func rebuild(ctx context.Context, cmd *cobra.Command, s *settings, dir string, paths []string) {
	started := time.Now()
	for _, path := range paths {
		fs, res, err := driver.ExpandFile(ctx, path, s.opts)
		if err != nil {
			// файл мог быть удалён между событием и чтением
			fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", err)
			continue
		}
		res.OutPath = driver.OutputPath(path, dir, s.opts)
		s.printDiagnostics(cmd, res.Bag, fs)
		if err := driver.WriteOutput(res); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", err)
		}
	}
	if !s.quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "re-expanded %d file(s) in %s\n", len(paths), time.Since(started).Round(time.Millisecond))
	}
}

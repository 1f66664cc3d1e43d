package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"place/internal/diag"
	"place/internal/source"
	"place/internal/trace"
)

// ListInputs возвращает отсортированный список файлов с суффиксом в dir.
func ListInputs(dir, suffix string) ([]string, error) {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, suffix) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// ExpandDir expands every input under dir in parallel. Results are in
// ListInputs order; a file that failed to load gets an IO4001 diagnostic.
func ExpandDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []ExpandResult, error) {
	ctx, span := trace.Start(ctx, trace.ScopeDriver, "expand-dir")
	defer span.End("")

	files, err := ListInputs(dir, opts.suffix())
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}
	for _, path := range files {
		emit(opts.Sink, Event{File: path, Stage: StageLoad, Status: StatusQueued})
	}

	// FileSet не потокобезопасен: загружаем всё до запуска горутин
	fileIDs := make([]source.FileID, len(files))
	loadErrors := make([]error, len(files))
	stop := opts.Timer.Start(string(StageLoad))
	for i, path := range files {
		fileIDs[i], loadErrors[i] = fileSet.Load(path)
	}
	stop()

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]ExpandResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			started := time.Now()

			if loadErr := loadErrors[i]; loadErr != nil {
				bag := diag.NewBag(opts.maxDiagnostics())
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{File: source.NoFile}, "failed to load file: "+loadErr.Error()))
				results[i] = ExpandResult{Path: path, Failed: true, Bag: bag}
				emit(opts.Sink, Event{File: path, Stage: StageLoad, Status: StatusError, Err: loadErr})
				return nil
			}

			res := expandLoaded(gctx, fileSet, fileIDs[i], opts)
			res.OutPath = OutputPath(path, dir, opts)
			results[i] = *res

			status := StatusDone
			switch {
			case res.Failed:
				status = StatusError
			case res.Cached:
				status = StatusCached
			}
			emit(opts.Sink, Event{File: path, Stage: StageRender, Status: status, Elapsed: time.Since(started)})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// MergeBags collects the diagnostics of every result into one bag.
func MergeBags(results []ExpandResult, limit int) *diag.Bag {
	out := diag.NewBag(limit)
	for i := range results {
		if results[i].Bag == nil {
			continue
		}
		for _, d := range results[i].Bag.Items() {
			if !out.Add(d) {
				return out
			}
		}
	}
	return out
}

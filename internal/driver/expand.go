package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"place/internal/diag"
	"place/internal/place"
	"place/internal/source"
	"place/internal/token"
	"place/internal/trace"
)

// ExpandResult is the outcome of expanding one input.
type ExpandResult struct {
	Path    string
	OutPath string // пусто для stdin и -e
	FileID  source.FileID
	Output  string // canonical rendering; empty when Failed
	Failed  bool
	Cached  bool
	Bag     *diag.Bag
	Elapsed time.Duration
}

// ExpandFile loads path into a fresh FileSet and expands it.
func ExpandFile(ctx context.Context, path string, opts Options) (*source.FileSet, *ExpandResult, error) {
	fs := source.NewFileSet()
	stop := opts.Timer.Start(string(StageLoad))
	id, err := fs.Load(path)
	stop()
	if err != nil {
		trace.Error(ctx, "load", err)
		return fs, nil, fmt.Errorf("load %s: %w", path, err)
	}
	res := expandLoaded(ctx, fs, id, opts)
	res.OutPath = OutputPath(path, "", opts)
	return fs, res, nil
}

// ExpandSource expands in-memory content registered in fs under name.
func ExpandSource(ctx context.Context, fs *source.FileSet, name string, content []byte, opts Options) *ExpandResult {
	return expandLoaded(ctx, fs, fs.AddVirtual(name, content), opts)
}

// expandLoaded runs tree → place → render for a file already in fs.
// Tree errors skip expansion; an engine error becomes one diagnostic.
// Only reads fs, so it may run concurrently for preloaded files.
func expandLoaded(ctx context.Context, fs *source.FileSet, id source.FileID, opts Options) *ExpandResult {
	started := time.Now()
	file := fs.Get(id)
	res := &ExpandResult{Path: file.Path, FileID: id, Bag: diag.NewBag(opts.maxDiagnostics())}

	ctx, span := trace.Start(ctx, trace.ScopeFile, "file:"+file.Path)
	defer func() {
		res.Elapsed = time.Since(started)
		span.WithExtra("cached", fmt.Sprint(res.Cached)).End(fmt.Sprintf("%d diagnostics", res.Bag.Len()))
	}()

	key := KeyFor(file, opts)
	if opts.Cache != nil {
		var payload DiskPayload
		if ok, err := opts.Cache.Get(key, &payload); err != nil {
			trace.Error(ctx, "cache", err)
		} else if ok {
			res.Output, res.Failed, res.Cached = payload.Output, payload.Failed, true
			fromCached(payload.Diagnostics, id, res.Bag)
			return res
		}
	}

	emit(opts.Sink, Event{File: file.Path, Stage: StageTree, Status: StatusWorking})
	tree := parseTree(ctx, file, res.Bag, opts)
	if res.Bag.HasErrors() {
		res.Failed = true
		store(ctx, opts, key, res)
		return res
	}

	emit(opts.Sink, Event{File: file.Path, Stage: StageExpand, Status: StatusWorking})
	out, err := runPlace(ctx, tree, opts)
	if err != nil {
		var perr *place.Error
		if !errors.As(err, &perr) {
			perr = &place.Error{Code: diag.UnknownCode, Span: tree.Span(), Msg: err.Error()}
		}
		res.Bag.Add(perr.Diagnostic())
		res.Failed = true
		store(ctx, opts, key, res)
		return res
	}

	emit(opts.Sink, Event{File: file.Path, Stage: StageRender, Status: StatusWorking})
	res.Output = render(ctx, out, opts)
	store(ctx, opts, key, res)
	return res
}

func runPlace(ctx context.Context, tree token.Stream, opts Options) (token.Stream, error) {
	ctx, span := trace.Start(ctx, trace.ScopePass, string(StageExpand))
	defer span.End("")
	defer opts.Timer.Start(string(StageExpand))()

	var popts place.Options
	if t := trace.FromContext(ctx); t.Enabled() && t.Level().ShouldEmit(trace.ScopeMarker) {
		popts.Observe = func(m place.Marker, args, result token.Stream) {
			trace.Point(ctx, trace.ScopeMarker, "marker:"+m.Name,
				fmt.Sprintf("%s => %s", args.String(), result.String()))
		}
	}
	return place.PlaceWith(tree, popts)
}

func render(ctx context.Context, s token.Stream, opts Options) string {
	_, span := trace.Start(ctx, trace.ScopePass, string(StageRender))
	defer span.End("")
	defer opts.Timer.Start(string(StageRender))()
	if len(s) == 0 {
		return ""
	}
	return s.String() + "\n"
}

func store(ctx context.Context, opts Options, key Key, res *ExpandResult) {
	if opts.Cache == nil {
		return
	}
	err := opts.Cache.Put(key, &DiskPayload{
		Schema:      diskCacheSchemaVersion,
		Output:      res.Output,
		Failed:      res.Failed,
		Diagnostics: toCached(res.Bag),
	})
	if err != nil {
		trace.Error(ctx, "cache", err)
	}
}

package driver

import "place/internal/observ"

// DefaultSuffix is the input file suffix when none is configured.
const DefaultSuffix = ".place"

// Options configures tokenize and expand runs.
type Options struct {
	MaxDiagnostics  int
	Jobs            int    // 0: GOMAXPROCS
	Suffix          string // суффикс входных файлов, по умолчанию DefaultSuffix
	OutDir          string // пусто: писать рядом с входным файлом
	KeepDocComments bool
	Cache           *DiskCache // nil отключает кэш
	Timer           *observ.Timer
	Sink            ProgressSink
}

func (o Options) suffix() string {
	if o.Suffix == "" {
		return DefaultSuffix
	}
	return o.Suffix
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return 100
	}
	return o.MaxDiagnostics
}

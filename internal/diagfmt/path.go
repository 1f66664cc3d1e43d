package diagfmt

import "place/internal/source"

func formatPath(fs *source.FileSet, id source.FileID, mode PathMode) string {
	if fs == nil || !fs.Has(id) {
		return "<unknown>"
	}
	f := fs.Get(id)
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}

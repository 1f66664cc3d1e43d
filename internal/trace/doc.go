// Package trace records what the place driver is doing: the command, its
// passes (load, lex, tree, expand, render), every input file and, at the
// debug level, every marker the engine rewrites.
//
// Enable it from the command line:
//
//	place expand --trace=- --trace-level=phase src/
//
// Tracers travel on the context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "lex", 0)
//	defer span.End("")
//
// Levels: off, error, phase (driver and passes), detail (files), debug
// (markers). Output is human readable text or NDJSON.
package trace

// Package place rewrites token streams by evaluating builtin markers such
// as __string__(...) or __ToCase__(...) and splicing their results back
// into the surrounding stream.
//
// Markers are evaluated innermost first: the argument group of a marker is
// fully rewritten before the marker itself runs. The walk uses an explicit
// frame stack, so arbitrarily deep input cannot exhaust the goroutine stack.
//
// Every builtin is also exported as a plain function that operates on an
// already rewritten stream.
package place

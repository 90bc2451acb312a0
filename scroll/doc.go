// Package scroll keeps any number of independently rendered scrollable views
// in lock-step. Views register a Position with a shared Group; moving one
// Position fans the new offset out to every other attached Position, and a
// gesture gripping one view silently stops in-flight motion on all of its
// peers.
//
// The package is single-threaded by design: every operation runs
// synchronously on the caller's goroutine, and fan-out to peers happens as
// sequential applications within the same call stack as the originating
// change. Confine a Group and all of its Positions to one goroutine,
// typically the UI event loop.
//
// Caller invariant violations (operating a detached Position, consensus over
// zero drivers) fail fast with a panic rather than silently no-op.
package scroll

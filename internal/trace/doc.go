// Package trace defines the simulator's observable output: a structured
// event stream (process admitted, process rejected, process terminated,
// and so on), emitted through
// [github.com/joeycumines/logiface], backed by
// [github.com/joeycumines/stumpy].
//
// Every event carries the simulation tick and process id as structured
// fields rather than an interpolated message, so a Sink's output can be
// consumed as JSON lines, not just read by a human. A Sink wrapping a nil
// *logiface.Logger is a legal, zero-overhead no-op — logiface.Logger's
// nil receiver methods are themselves safe no-ops, so Sink adds no
// additional nil-guarding of its own.
package trace

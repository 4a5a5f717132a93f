// Package osim implements the core of a discrete-event simulator of a
// small operating system: memory allocation, a file-block allocator, a
// multi-unit resource arbiter, a multi-level feedback scheduler, and the
// per-tick driver that wires them together.
//
// The package is deliberately single-threaded: every exported method is
// expected to be called from one goroutine, advancing one logical clock.
// There is no internal synchronization, matching the deterministic,
// non-parallel model described by the simulation it implements.
package osim

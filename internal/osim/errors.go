package osim

import "errors"

// Admission errors returned by MemoryManager.Allocate. See that method's
// doc comment for the retry semantics attached to each.
var (
	// ErrUnsupported indicates the requested size exceeds the capacity of
	// the target partition. Permanent for the requesting process: callers
	// must discard it rather than retry.
	ErrUnsupported = errors.New("osim: memory request exceeds partition capacity")

	// ErrUnavailable indicates the target partition is presently too
	// fragmented or full to satisfy the request. Transient: callers should
	// retry on a later tick.
	ErrUnavailable = errors.New("osim: memory partition temporarily unavailable")
)

// Deletion errors returned by FileSystem.Delete.
var (
	// ErrFileUnauthorized indicates a non-real-time process attempted to
	// delete a file it did not itself create.
	ErrFileUnauthorized = errors.New("osim: process not authorized to delete file")

	// ErrFileNotFound indicates authorization passed but no such file name
	// is currently mapped.
	ErrFileNotFound = errors.New("osim: file not found")
)

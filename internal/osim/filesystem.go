package osim

import "github.com/joeycumines/osim/internal/trace"

// FileSystem allocates file-sized runs of blocks from a single contiguous
// block device, tracking the live name-to-segment mapping. File names are
// single runes, assumed unique while live.
type FileSystem struct {
	free  *SegmentList
	files map[rune]Segment
	sink  *trace.Sink
}

// PreexistingFile describes a file already occupying space on the disk at
// construction time.
type PreexistingFile struct {
	Name    rune
	Segment Segment
}

// NewFileSystem builds a FileSystem over numBlocks blocks, with existing
// removed from the free list atomically during setup. sink may be nil.
func NewFileSystem(numBlocks int, existing []PreexistingFile, sink *trace.Sink) *FileSystem {
	if sink == nil {
		sink = trace.Discard()
	}
	free := NewSegmentList([]Segment{{Offset: 0, Length: numBlocks}})
	files := make(map[rune]Segment, len(existing))
	for _, f := range existing {
		free.AllocExact(f.Segment)
		files[f.Name] = f.Segment
	}
	return &FileSystem{free: free, files: files, sink: sink}
}

// Create allocates blocks contiguous blocks via first-fit. On success, it
// records name -> segment and appends name to process.FilesCreated.
// Creating a name that is already live overwrites the mapping and orphans
// the previously allocated segment on disk (it stays live but unreachable
// by name). This is intentional: callers are expected not to reuse a live
// name, and nothing here rejects it if they do.
func (fs *FileSystem) Create(t int, process *Process, name rune, blocks int) (Segment, bool) {
	seg, ok := fs.free.Alloc(blocks)
	if !ok {
		fs.sink.FileCreateFailed(t, process.ID, name, blocks)
		return Segment{}, false
	}
	fs.files[name] = seg
	process.FilesCreated = append(process.FilesCreated, name)
	fs.sink.FileCreated(t, process.ID, name, blocks)
	return seg, true
}

// Delete removes name's mapping and frees its segment, provided process is
// authorized: a priority-0 (real-time) process may delete any file; any
// other process may delete only files it created itself, in this run.
func (fs *FileSystem) Delete(t int, process *Process, name rune) error {
	authorized := process.Priority == 0 || createdBy(process, name)
	if !authorized {
		fs.sink.FileDeleteFailed(t, process.ID, name, "unauthorized")
		return ErrFileUnauthorized
	}

	seg, ok := fs.files[name]
	if !ok {
		fs.sink.FileDeleteFailed(t, process.ID, name, "not_found")
		return ErrFileNotFound
	}

	delete(fs.files, name)
	fs.free.Free(seg)
	fs.sink.FileDeleted(t, process.ID, name)
	return nil
}

func createdBy(process *Process, name rune) bool {
	for _, n := range process.FilesCreated {
		if n == name {
			return true
		}
	}
	return false
}

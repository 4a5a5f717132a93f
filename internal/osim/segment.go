package osim

import "slices"

// Segment is a half-open range [Offset, Offset+Length) over nonnegative
// integer block indices. A Segment is only meaningful while Length > 0;
// zero-length segments are never stored in a SegmentList.
type Segment struct {
	Offset int
	Length int
}

// End returns the exclusive upper bound of the segment, Offset+Length.
func (s Segment) End() int { return s.Offset + s.Length }

// contains reports whether s fully contains other (same or wider range).
func (s Segment) contains(other Segment) bool {
	return s.Offset <= other.Offset && s.End() >= other.End()
}

// SegmentList is an ordered sequence of disjoint, non-adjacent free
// Segments over a 1-D address space, sorted by Offset. It is the building
// block shared by MemoryManager's two partitions and FileSystem's free
// list.
//
// SegmentList is not safe for concurrent use.
type SegmentList struct {
	segments []Segment
}

// NewSegmentList builds an empty SegmentList and frees each of initial in
// order, so adjacent initial segments end up coalesced.
func NewSegmentList(initial []Segment) *SegmentList {
	l := &SegmentList{}
	for _, s := range initial {
		l.Free(s)
	}
	return l
}

// Segments returns a copy of the current free segments, sorted by offset.
// Intended for tests and diagnostics; callers must not rely on the
// returned slice being shared with internal state.
func (l *SegmentList) Segments() []Segment {
	return slices.Clone(l.segments)
}

// Alloc performs first-fit allocation of length contiguous blocks. It
// scans segments in offset order and takes the first one whose Length is
// at least length, returning a new Segment of exactly that length carved
// from its start. Reports false, leaving the list unmodified, if no
// segment fits.
func (l *SegmentList) Alloc(length int) (Segment, bool) {
	idx := slices.IndexFunc(l.segments, func(s Segment) bool { return s.Length >= length })
	if idx < 0 {
		return Segment{}, false
	}
	out := Segment{Offset: l.segments[idx].Offset, Length: length}
	if ok := l.AllocExact(out); !ok {
		// unreachable: out is by construction contained in segments[idx]
		return Segment{}, false
	}
	return out, true
}

// AllocExact removes the exact range s from the free list, splitting the
// free segment that contains it into at most two residual segments
// (dropping any that end up zero-length). Reports false, leaving the list
// unmodified, if no free segment fully contains s.
func (l *SegmentList) AllocExact(s Segment) bool {
	idx := slices.IndexFunc(l.segments, func(free Segment) bool { return free.contains(s) })
	if idx < 0 {
		return false
	}

	free := l.segments[idx]
	left := Segment{Offset: free.Offset, Length: s.Offset - free.Offset}
	right := Segment{Offset: s.End(), Length: free.End() - s.End()}

	switch {
	case left.Length == 0 && right.Length == 0:
		l.segments = slices.Delete(l.segments, idx, idx+1)
	case left.Length == 0:
		l.segments[idx] = right
	case right.Length == 0:
		l.segments[idx] = left
	default:
		l.segments[idx] = left
		l.segments = slices.Insert(l.segments, idx+1, right)
	}
	return true
}

// Free inserts s into the list at its sorted position, coalescing with an
// immediate left and/or right neighbor whenever the touching endpoints are
// equal or overlapping (prev.End() >= s.Offset, or s.End() >= next.Offset).
// Overlapping inputs must not occur in normal operation: the merged extent
// is computed from s.End() (left merge) or the right neighbor's End()
// (right merge), so it is the union of the two only for adjacent inputs.
func (l *SegmentList) Free(s Segment) {
	idx := slices.IndexFunc(l.segments, func(free Segment) bool { return free.Offset > s.Offset })
	if idx < 0 {
		idx = len(l.segments)
	}

	mergeLeft := idx > 0 && l.segments[idx-1].End() >= s.Offset
	mergeRight := idx < len(l.segments) && s.End() >= l.segments[idx].Offset

	switch {
	case !mergeLeft && !mergeRight:
		l.segments = slices.Insert(l.segments, idx, s)
	case mergeLeft && !mergeRight:
		l.segments[idx-1].Length = s.End() - l.segments[idx-1].Offset
	case !mergeLeft && mergeRight:
		l.segments[idx].Length = l.segments[idx].End() - s.Offset
		l.segments[idx].Offset = s.Offset
	default: // mergeLeft && mergeRight
		l.segments[idx-1].Length = l.segments[idx].End() - l.segments[idx-1].Offset
		l.segments = slices.Delete(l.segments, idx, idx+1)
	}
}

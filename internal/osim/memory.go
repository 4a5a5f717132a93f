package osim

// MemoryManager owns two independent SegmentLists: a real-time partition
// reserved for priority-0 processes, and a user partition for everyone
// else. Real-time processes never wait behind user processes for
// admission because they draw from a dedicated pool.
type MemoryManager struct {
	realTime *SegmentList
	user     *SegmentList

	realTimeSize int
	userSize     int
}

// NewMemoryManager constructs a MemoryManager with the partition sizes
// from cfg (or the default sizes, if cfg is nil). The real-time partition
// occupies [0, realTimeSize) and the user partition the following
// userSize blocks.
func NewMemoryManager(cfg *Config) *MemoryManager {
	rtSize := cfg.realTimePartitionSize()
	userSize := cfg.userPartitionSize()
	return &MemoryManager{
		realTime:     NewSegmentList([]Segment{{Offset: 0, Length: rtSize}}),
		user:         NewSegmentList([]Segment{{Offset: rtSize, Length: userSize}}),
		realTimeSize: rtSize,
		userSize:     userSize,
	}
}

// Allocate attempts to carve size blocks from the partition appropriate
// for priority (real-time for 0, user otherwise). ErrUnsupported is
// permanent for this request (size exceeds the partition's total
// capacity); ErrUnavailable is transient (fragmentation or load) and
// should be retried on a later tick.
func (m *MemoryManager) Allocate(priority int, size int) (Segment, error) {
	if priority == 0 {
		if size > m.realTimeSize {
			return Segment{}, ErrUnsupported
		}
		if seg, ok := m.realTime.Alloc(size); ok {
			return seg, nil
		}
		return Segment{}, ErrUnavailable
	}

	if size > m.userSize {
		return Segment{}, ErrUnsupported
	}
	if seg, ok := m.user.Alloc(size); ok {
		return seg, nil
	}
	return Segment{}, ErrUnavailable
}

// Free returns seg to the partition it belongs to, determined by whether
// its offset falls within the real-time partition's range.
func (m *MemoryManager) Free(seg Segment) {
	if seg.Offset < m.realTimeSize {
		m.realTime.Free(seg)
	} else {
		m.user.Free(seg)
	}
}

package osim

import "github.com/joeycumines/osim/internal/trace"

// ProcessArrival describes one process's static arrival record, as parsed
// from the process arrival file. ID is the record's zero-based
// line index.
type ProcessArrival struct {
	ID           int
	ArrivalTime  int
	Priority     int
	CPUTime      int
	MemoryBlocks int
	UsePrinter   bool
	UseScanner   bool
	UseModem     bool
	UseSata      bool
}

// DiskOpRecord is one row of the disk file's scripted-operation table, as
// parsed from input: a DiskOp together with the id of the process it
// belongs to.
type DiskOpRecord struct {
	ProcessID int
	Op        DiskOp
}

// GroupDiskOps groups a flat, input-ordered list of disk-operation records
// by process id, preserving input order within each group — the shape
// Dispatcher needs to hand each newly constructed Process its own
// disk-operation stream.
func GroupDiskOps(records []DiskOpRecord) map[int][]DiskOp {
	grouped := make(map[int][]DiskOp)
	for _, rec := range records {
		grouped[rec.ProcessID] = append(grouped[rec.ProcessID], rec.Op)
	}
	return grouped
}

// Dispatcher holds the immutable arrival table and disk-operation table
// parsed from input, plus the set of arrival records still pending
// (awaiting their arrival time, or retrying after a transient memory
// Unavailable). Pending entries are consulted, never mutated by value: the
// dispatcher removes an entry once it either succeeds or is permanently
// rejected.
type Dispatcher struct {
	diskOps map[int][]DiskOp // keyed by process id, in input order
	sink    *trace.Sink

	pending []ProcessArrival
}

// NewDispatcher builds a Dispatcher from the parsed arrival table and a
// process-id-keyed grouping of the disk-operation table (both in their
// original input order). sink may be nil, in which case the dispatcher
// emits nothing.
func NewDispatcher(arrivals []ProcessArrival, diskOpsByProcess map[int][]DiskOp, sink *trace.Sink) *Dispatcher {
	if sink == nil {
		sink = trace.Discard()
	}
	return &Dispatcher{
		diskOps: diskOpsByProcess,
		sink:    sink,
		pending: append([]ProcessArrival(nil), arrivals...),
	}
}

// Tick walks the pending arrivals whose ArrivalTime <= t, requesting
// memory admission for each. A successful admission constructs the
// Process and removes the entry from pending. ErrUnavailable leaves the
// entry pending for a later tick. ErrUnsupported discards the entry (and
// the process) permanently. Returns the processes newly admitted this
// tick, in arrival-table order.
func (d *Dispatcher) Tick(memory *MemoryManager, t int) []*Process {
	var admitted []*Process
	var stillPending []ProcessArrival

	for _, arrival := range d.pending {
		if arrival.ArrivalTime > t {
			stillPending = append(stillPending, arrival)
			continue
		}

		seg, err := memory.Allocate(arrival.Priority, arrival.MemoryBlocks)
		switch err {
		case nil:
			process := NewProcess(
				arrival.ID,
				arrival.Priority,
				arrival.CPUTime,
				arrival.UseScanner,
				arrival.UsePrinter,
				arrival.UseModem,
				arrival.UseSata,
				d.diskOps[arrival.ID],
				seg,
			)
			d.sink.ProcessAdmitted(t, process.ID, process.Priority, arrival.CPUTime, seg.Offset, seg.Length, process.ResourceNames())
			admitted = append(admitted, process)
		case ErrUnavailable:
			d.sink.ProcessDeferred(t, arrival.ID)
			stillPending = append(stillPending, arrival)
		case ErrUnsupported:
			d.sink.ProcessRejected(t, arrival.ID, arrival.MemoryBlocks)
		}
	}

	d.pending = stillPending
	return admitted
}

// HasPending reports whether any arrival entry remains, regardless of
// whether its arrival time has already passed (a pending entry may be one
// whose admission failed transiently and is awaiting retry).
func (d *Dispatcher) HasPending() bool {
	return len(d.pending) > 0
}

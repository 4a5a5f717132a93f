package osim

// Resource identifies one of the four peripheral kinds a process may
// request. Order matters: it is the fixed order in which a process's
// pre-expanded instruction stream acquires resources (see Process).
type Resource int

const (
	Scanner Resource = iota
	Printer
	Modem
	SataDevice
)

// String renders the Resource's name, for use in trace fields and test
// failure messages.
func (r Resource) String() string {
	switch r {
	case Scanner:
		return "scanner"
	case Printer:
		return "printer"
	case Modem:
		return "modem"
	case SataDevice:
		return "sata_device"
	default:
		return "unknown_resource"
	}
}

// ResourceMutex is a multi-unit counting semaphore with a FIFO wait queue.
// Invariant: unitsAvailable is never negative, and whenever it is positive
// the queue is empty.
type ResourceMutex struct {
	unitsAvailable int
	queue          []*Process
}

// NewResourceMutex constructs a ResourceMutex starting with units
// available and an empty wait queue.
func NewResourceMutex(units int) *ResourceMutex {
	return &ResourceMutex{unitsAvailable: units}
}

// Request consumes one unit for p if one is available, returning p
// immediately runnable. Otherwise p is enqueued and Request returns false;
// p will be returned later by a matching Release.
func (m *ResourceMutex) Request(p *Process) (*Process, bool) {
	if m.unitsAvailable > 0 {
		m.unitsAvailable--
		return p, true
	}
	m.queue = append(m.queue, p)
	return nil, false
}

// Release returns one unit. If a process is waiting, ownership of the unit
// transfers directly to the head of the queue, which is dequeued and
// returned; otherwise the unit is credited back to unitsAvailable and
// Release returns false.
func (m *ResourceMutex) Release() (*Process, bool) {
	if len(m.queue) > 0 {
		p := m.queue[0]
		m.queue = m.queue[1:]
		return p, true
	}
	m.unitsAvailable++
	return nil, false
}

// QueueLen reports the number of processes currently blocked on this
// mutex, used by the driver to decide whether the simulation must keep
// running even with no pending arrivals or ready processes.
func (m *ResourceMutex) QueueLen() int {
	return len(m.queue)
}

package osim

import "github.com/joeycumines/osim/internal/trace"

// ResourceArbiter owns one ResourceMutex per Resource kind and is the sole
// authority for granting and releasing units. It performs no ordering
// discipline across resources: circular waits between scanner, printer,
// modem, and sata are permitted and are a valid, undetected, simulation
// outcome.
type ResourceArbiter struct {
	mutexes map[Resource]*ResourceMutex
	sink    *trace.Sink
}

// NewResourceArbiter constructs an arbiter with the unit counts from cfg,
// or the default counts (Scanner 1, Printer 2, Modem 1, SataDevice 2) for
// any Resource cfg does not override. sink may be nil.
func NewResourceArbiter(cfg *Config, sink *trace.Sink) *ResourceArbiter {
	if sink == nil {
		sink = trace.Discard()
	}
	units := cfg.resourceUnits()
	a := &ResourceArbiter{mutexes: make(map[Resource]*ResourceMutex, len(units)), sink: sink}
	for r, n := range units {
		a.mutexes[r] = NewResourceMutex(n)
	}
	return a
}

// Request delegates to the named resource's mutex. On immediate success,
// the grant is recorded in p.Resources before p is returned as runnable.
// A false return means p was enqueued on the resource's wait queue; the
// caller must not re-admit it to the scheduler.
func (a *ResourceArbiter) Request(t int, p *Process, r Resource) (*Process, bool) {
	granted, ok := a.mutexes[r].Request(p)
	if !ok {
		a.sink.ResourceBlocked(t, p.ID, r.String())
		return nil, false
	}
	granted.Resources = append(granted.Resources, r)
	a.sink.ResourceGranted(t, granted.ID, r.String())
	return granted, true
}

// ReleaseAll releases one unit of every resource currently held by p,
// collecting and returning any processes that become newly runnable as a
// result (their grant is recorded on their own Resources list). p's
// Resources list is cleared unconditionally, even if p held none.
func (a *ResourceArbiter) ReleaseAll(t int, p *Process) []*Process {
	var unblocked []*Process
	for _, r := range p.Resources {
		a.sink.ResourceReleased(t, p.ID, r.String())
		if next, ok := a.mutexes[r].Release(); ok {
			next.Resources = append(next.Resources, r)
			a.sink.ResourceUnblocked(t, next.ID, r.String())
			unblocked = append(unblocked, next)
		}
	}
	p.Resources = nil
	return unblocked
}

// QueueLen reports the number of processes blocked on r's wait queue.
func (a *ResourceArbiter) QueueLen(r Resource) int {
	m, ok := a.mutexes[r]
	if !ok {
		return 0
	}
	return m.QueueLen()
}

// AnyQueued reports whether any resource currently has a blocked waiter.
// The driver uses this to keep the simulation alive while processes are
// stuck waiting on resources that nothing will ever release (deadlock is
// a legal, observable outcome, not a bug to detect).
func (a *ResourceArbiter) AnyQueued() bool {
	for _, m := range a.mutexes {
		if m.QueueLen() > 0 {
			return true
		}
	}
	return false
}

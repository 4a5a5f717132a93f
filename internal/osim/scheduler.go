package osim

// Quantum is the maximum number of ticks a non-real-time process may hold
// the CPU before the scheduler preempts it.
const Quantum = 1

// maxReadyPriority is the highest ready-queue index (queues 0..2). Add
// clamps a process's queue index to it; see Scheduler.Add.
const maxReadyPriority = 2

// running models the occupant of the scheduler's single running slot: the
// process currently on the CPU, and the tick at which it started running.
type running struct {
	process   *Process
	startTime int
}

// Scheduler implements multi-level feedback scheduling over three FIFO
// ready queues (priority 0, highest, through 2, lowest) and one running
// slot. A process appears in at most one of {running slot, a ready queue},
// per the simulator-wide placement invariant.
type Scheduler struct {
	queues [3][]*Process
	slot   *running
}

// NewScheduler constructs an empty Scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add enqueues process at the tail of the ready queue for its priority,
// clamped to [0, maxReadyPriority]. The clamp guards against the
// aging-induced priority 3, which would otherwise index past the queue
// count and never be drained; process.Priority itself is left unclamped,
// so a process aged to priority 3 keeps that value while it waits in
// queue 2 (OnTick caps aging at 3).
// If the running slot is empty, it is immediately refilled.
func (s *Scheduler) Add(process *Process, t int) {
	p := process.Priority
	if p > maxReadyPriority {
		p = maxReadyPriority
	}
	if p < 0 {
		p = 0
	}
	s.queues[p] = append(s.queues[p], process)
	s.refill(t)
}

// refill scans queue 0, then 1, then 2, and pops the head of the first
// non-empty one into the running slot, if the slot is currently empty.
func (s *Scheduler) refill(t int) {
	if s.slot != nil {
		return
	}
	for i := range s.queues {
		if len(s.queues[i]) == 0 {
			continue
		}
		next := s.queues[i][0]
		s.queues[i] = s.queues[i][1:]
		s.slot = &running{process: next, startTime: t}
		return
	}
}

// Current returns the process presently occupying the running slot, or
// nil if the slot is empty.
func (s *Scheduler) Current() *Process {
	if s.slot == nil {
		return nil
	}
	return s.slot.process
}

// BlockCurrent removes and returns the running process without
// re-admitting it anywhere; the caller decides its next station (an
// arbiter wait queue, a file-system-blocked state, or termination).
func (s *Scheduler) BlockCurrent() *Process {
	if s.slot == nil {
		return nil
	}
	p := s.slot.process
	s.slot = nil
	return p
}

// TerminateCurrent is semantically identical to BlockCurrent: it vacates
// the running slot without re-admission. The caller is responsible for
// destruction (freeing memory, releasing resources).
func (s *Scheduler) TerminateCurrent() *Process {
	return s.BlockCurrent()
}

// OnTick must be called after t has been advanced. It decides whether to
// preempt the running process and/or refill an empty slot:
//
//   - No running process: attempt a refill.
//   - Running process has priority 0: never preempted; runs to its own
//     termination or blocking.
//   - Running process has priority >= 1: preempted once t-startTime
//     reaches Quantum. On preemption its priority is incremented by one
//     (capped at 3) and it is re-admitted via Add, which clamps it back
//     into the valid queue range.
func (s *Scheduler) OnTick(t int) {
	if s.slot == nil {
		s.refill(t)
		return
	}

	cur := s.slot
	if cur.process.Priority == 0 {
		return
	}

	if t-cur.startTime < Quantum {
		return
	}

	s.slot = nil
	if cur.process.Priority < 3 {
		cur.process.Priority++
	}
	s.Add(cur.process, t)
}

// HasAny reports whether any process is currently occupying the running
// slot or waiting in a ready queue.
func (s *Scheduler) HasAny() bool {
	if s.slot != nil {
		return true
	}
	for i := range s.queues {
		if len(s.queues[i]) > 0 {
			return true
		}
	}
	return false
}

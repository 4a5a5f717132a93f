package osim

import "github.com/joeycumines/osim/internal/trace"

// Simulator is the per-tick driver that wires together the Dispatcher,
// MemoryManager, Scheduler, ResourceArbiter, and FileSystem. It owns all
// simulation state exclusively and is mutated from a single control flow;
// no synchronization is required or provided.
type Simulator struct {
	memory     *MemoryManager
	arbiter    *ResourceArbiter
	scheduler  *Scheduler
	dispatcher *Dispatcher
	files      *FileSystem
	sink       *trace.Sink
}

// NewSimulator constructs a Simulator from the parsed input tables. cfg and
// sink may both be nil, producing the specification's default partition
// sizes and resource unit counts, and a no-op trace sink, respectively.
func NewSimulator(
	arrivals []ProcessArrival,
	diskOps []DiskOpRecord,
	numDiskBlocks int,
	preexistingFiles []PreexistingFile,
	cfg *Config,
	sink *trace.Sink,
) *Simulator {
	if sink == nil {
		sink = trace.Discard()
	}
	return &Simulator{
		memory:     NewMemoryManager(cfg),
		arbiter:    NewResourceArbiter(cfg, sink),
		scheduler:  NewScheduler(),
		dispatcher: NewDispatcher(arrivals, GroupDiskOps(diskOps), sink),
		files:      NewFileSystem(numDiskBlocks, preexistingFiles, sink),
		sink:       sink,
	}
}

// Run advances the simulator one tick at a time, per Step, until no
// process remains admitted, no pending arrival remains, and no
// ResourceMutex has a blocked waiter. It returns the tick at which the
// simulation halted.
func (s *Simulator) Run() int {
	t := 0
	for {
		s.Step(t)
		t++
		s.scheduler.OnTick(t)
		if s.halted() {
			return t
		}
	}
}

func (s *Simulator) halted() bool {
	return !s.dispatcher.HasPending() && !s.scheduler.HasAny() && !s.arbiter.AnyQueued()
}

// Step performs one tick's worth of admission and execution, in the fixed
// fixed order: admit arrivals, then step the running process (if any) and
// route the resulting interruption.
//
// Step does not advance the clock or rebalance the scheduler; callers
// driving the simulation manually (e.g. for stepwise tests) must do both
// themselves afterward, exactly as Run does.
func (s *Simulator) Step(t int) {
	for _, p := range s.dispatcher.Tick(s.memory, t) {
		s.scheduler.Add(p, t)
	}

	cur := s.scheduler.Current()
	if cur == nil {
		return
	}

	switch interruption := cur.OnTick(); interruption.Kind {
	case InterruptionNone:
		s.sink.CPUTick(t, cur.ID)

	case InterruptionTerminate:
		terminated := s.scheduler.TerminateCurrent()
		unblocked := s.arbiter.ReleaseAll(t, terminated)
		s.memory.Free(terminated.AddressSpace)
		s.sink.ProcessTerminated(t, terminated.ID)
		for _, u := range unblocked {
			s.scheduler.Add(u, t)
		}

	case InterruptionAcquire:
		blocked := s.scheduler.BlockCurrent()
		if granted, ok := s.arbiter.Request(t, blocked, interruption.Resource); ok {
			s.scheduler.Add(granted, t)
		}

	case InterruptionDisk:
		blocked := s.scheduler.BlockCurrent()
		switch interruption.Disk.Kind {
		case DiskCreate:
			s.files.Create(t, blocked, interruption.Disk.Name, interruption.Disk.Blocks)
		case DiskDelete:
			_ = s.files.Delete(t, blocked, interruption.Disk.Name)
		}
		// Disk operations never fail the process: errors are traced by
		// FileSystem itself, and the process continues regardless of
		// outcome.
		s.scheduler.Add(blocked, t)
	}
}

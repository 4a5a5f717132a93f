package osim

// InterruptionKind classifies what a process's next pseudo-instruction is.
type InterruptionKind int

const (
	// InterruptionNone is an ordinary CPU tick: no side effect.
	InterruptionNone InterruptionKind = iota
	// InterruptionAcquire requests a unit of Interruption.Resource.
	InterruptionAcquire
	// InterruptionDisk performs Interruption.Disk.
	InterruptionDisk
	// InterruptionTerminate ends the process; no pc advancement occurs.
	InterruptionTerminate
)

// Interruption is the sum type of everything Process.OnTick can produce.
// Only the field matching Kind is meaningful.
type Interruption struct {
	Kind     InterruptionKind
	Resource Resource
	Disk     DiskOp
}

// DiskOpKind distinguishes the two scripted disk operations.
type DiskOpKind int

const (
	DiskCreate DiskOpKind = iota
	DiskDelete
)

// DiskOp is one scripted file operation: either Create{Name, Blocks} or
// Delete{Name}. SeqNum is the operation's 1-based position in the disk
// file's operation script, carried purely for trace correlation; it plays
// no role in scheduling or authorization.
type DiskOp struct {
	Kind   DiskOpKind
	Name   rune
	Blocks int
	SeqNum int
}

// Process holds a pre-expanded, ordered instruction stream and a program
// counter into it, along with everything else the simulator needs to
// account for while the process is alive: its owned address space, the
// resources it currently holds, and the files it has created (for
// delete-authorization purposes).
type Process struct {
	ID       int
	Priority int

	AddressSpace Segment
	FilesCreated []rune
	Resources    []Resource

	cpuTime      int
	instructions []Interruption
	pc           int
}

// NewProcess builds a Process whose instruction stream is pre-expanded
// from the declarative flags and disk operations: one Acquire per
// requested resource, in the fixed order (Scanner, Printer, Modem,
// SataDevice), followed by the disk operations in their original input
// order. Plain CPU ticks are not materialized in the stream; they are
// modeled implicitly by cpuTime, once pc runs past the instruction list.
func NewProcess(
	id, priority, cpuTime int,
	useScanner, usePrinter, useModem, useSata bool,
	diskOps []DiskOp,
	addressSpace Segment,
) *Process {
	var instructions []Interruption
	if useScanner {
		instructions = append(instructions, Interruption{Kind: InterruptionAcquire, Resource: Scanner})
	}
	if usePrinter {
		instructions = append(instructions, Interruption{Kind: InterruptionAcquire, Resource: Printer})
	}
	if useModem {
		instructions = append(instructions, Interruption{Kind: InterruptionAcquire, Resource: Modem})
	}
	if useSata {
		instructions = append(instructions, Interruption{Kind: InterruptionAcquire, Resource: SataDevice})
	}
	for _, op := range diskOps {
		instructions = append(instructions, Interruption{Kind: InterruptionDisk, Disk: op})
	}

	return &Process{
		ID:           id,
		Priority:     priority,
		AddressSpace: addressSpace,
		cpuTime:      cpuTime,
		instructions: instructions,
	}
}

// ResourceNames returns the names of the resources this process will
// request over its lifetime, in acquisition order, for use in trace
// fields (see trace.Sink.ProcessAdmitted).
func (p *Process) ResourceNames() []string {
	var names []string
	for _, instr := range p.instructions {
		if instr.Kind == InterruptionAcquire {
			names = append(names, instr.Resource.String())
		}
	}
	return names
}

// Lifetime returns the total number of ticks this process consumes over
// its lifetime: len(instructions) + cpuTime.
func (p *Process) Lifetime() int {
	return len(p.instructions) + p.cpuTime
}

// OnTick advances the program counter by one and returns the
// Interruption that occurred. Once pc reaches Lifetime(), OnTick returns
// InterruptionTerminate repeatedly, without further advancing pc.
func (p *Process) OnTick() Interruption {
	if p.pc >= p.Lifetime() {
		return Interruption{Kind: InterruptionTerminate}
	}
	if p.pc < len(p.instructions) {
		next := p.instructions[p.pc]
		p.pc++
		return next
	}
	p.pc++
	return Interruption{Kind: InterruptionNone}
}

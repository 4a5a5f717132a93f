package trace

import (
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// Sink is the simulator's trace emitter. The zero value is a legal no-op
// sink (a nil underlying logger never writes, by construction of
// logiface.Logger's nil-receiver methods).
type Sink struct {
	logger *logiface.Logger[*stumpy.Event]
}

// NewSink wraps an already-configured logger (typically built via
// stumpy.L.New(stumpy.L.WithStumpy(...))) as a Sink.
func NewSink(logger *logiface.Logger[*stumpy.Event]) *Sink {
	return &Sink{logger: logger}
}

// Discard returns a Sink that never writes. Its underlying logger is nil,
// which every Sink method handles as a no-op, so components that accept a
// *Sink can default to Discard() rather than nil-checking it themselves.
func Discard() *Sink {
	return &Sink{}
}

// WithRunID returns a child logger with a run_id field attached to every
// event it emits, correlating one simulator run's entire trace. It returns
// logger unchanged if logger is nil or disabled.
func WithRunID(logger *logiface.Logger[*stumpy.Event], runID string) *logiface.Logger[*stumpy.Event] {
	ctx := logger.Clone()
	if ctx == nil {
		return logger
	}
	return ctx.Str("run_id", runID).Logger()
}

// ProcessAdmitted records a process entering the simulation: its id,
// priority, address space, cpu time, and the resources it will request
// over its lifetime.
func (s *Sink) ProcessAdmitted(tick, processID, priority, cpuTime, memOffset, memLength int, resources []string) {
	s.logger.Info().
		Int(`tick`, tick).
		Int(`process_id`, processID).
		Int(`priority`, priority).
		Int(`cpu_time`, cpuTime).
		Int(`mem_offset`, memOffset).
		Int(`mem_length`, memLength).
		Any(`resources`, resources).
		Log(`process admitted`)
}

// ProcessRejected records a process permanently discarded because its
// memory request is Unsupported.
func (s *Sink) ProcessRejected(tick, processID, memoryBlocks int) {
	s.logger.Warning().
		Int(`tick`, tick).
		Int(`process_id`, processID).
		Int(`memory_blocks`, memoryBlocks).
		Log(`process rejected: unsupported memory request`)
}

// ProcessDeferred records a process whose admission failed transiently
// (Unavailable) and will be retried on a later tick.
func (s *Sink) ProcessDeferred(tick, processID int) {
	s.logger.Debug().
		Int(`tick`, tick).
		Int(`process_id`, processID).
		Log(`process deferred: memory unavailable`)
}

// CPUTick records a plain CPU instruction being consumed.
func (s *Sink) CPUTick(tick, processID int) {
	s.logger.Trace().
		Int(`tick`, tick).
		Int(`process_id`, processID).
		Log(`cpu tick`)
}

// ResourceGranted records a resource unit granted to processID.
func (s *Sink) ResourceGranted(tick, processID int, resource string) {
	s.logger.Info().
		Int(`tick`, tick).
		Int(`process_id`, processID).
		Str(`resource`, resource).
		Log(`resource granted`)
}

// ResourceBlocked records processID enqueued waiting for resource.
func (s *Sink) ResourceBlocked(tick, processID int, resource string) {
	s.logger.Info().
		Int(`tick`, tick).
		Int(`process_id`, processID).
		Str(`resource`, resource).
		Log(`resource blocked`)
}

// ResourceReleased records processID releasing a unit of resource.
func (s *Sink) ResourceReleased(tick, processID int, resource string) {
	s.logger.Debug().
		Int(`tick`, tick).
		Int(`process_id`, processID).
		Str(`resource`, resource).
		Log(`resource released`)
}

// ResourceUnblocked records processID receiving a unit of resource that
// was just released by another process.
func (s *Sink) ResourceUnblocked(tick, processID int, resource string) {
	s.logger.Info().
		Int(`tick`, tick).
		Int(`process_id`, processID).
		Str(`resource`, resource).
		Log(`process unblocked`)
}

// FileCreated records a successful file creation.
func (s *Sink) FileCreated(tick, processID int, name rune, blocks int) {
	s.logger.Info().
		Int(`tick`, tick).
		Int(`process_id`, processID).
		Str(`file`, string(name)).
		Int(`blocks`, blocks).
		Log(`file created`)
}

// FileCreateFailed records a failed file creation (no contiguous run of
// blocks available).
func (s *Sink) FileCreateFailed(tick, processID int, name rune, blocks int) {
	s.logger.Warning().
		Int(`tick`, tick).
		Int(`process_id`, processID).
		Str(`file`, string(name)).
		Int(`blocks`, blocks).
		Log(`file creation failed: no space`)
}

// FileDeleted records a successful file deletion.
func (s *Sink) FileDeleted(tick, processID int, name rune) {
	s.logger.Info().
		Int(`tick`, tick).
		Int(`process_id`, processID).
		Str(`file`, string(name)).
		Log(`file deleted`)
}

// FileDeleteFailed records a failed file deletion, with the reason
// ("not_found" or "unauthorized").
func (s *Sink) FileDeleteFailed(tick, processID int, name rune, reason string) {
	s.logger.Warning().
		Int(`tick`, tick).
		Int(`process_id`, processID).
		Str(`file`, string(name)).
		Str(`reason`, reason).
		Log(`file deletion failed`)
}

// ProcessTerminated records a process reaching Terminate.
func (s *Sink) ProcessTerminated(tick, processID int) {
	s.logger.Info().
		Int(`tick`, tick).
		Int(`process_id`, processID).
		Log(`process terminated`)
}

// DiskScriptParsed records one line of the disk file's operation script
// being parsed, mirroring the per-line commentary a parser narrating its
// own progress would emit.
func (s *Sink) DiskScriptParsed(seqNum, processID int, opKind string, name rune, blocks int) {
	b := s.logger.Debug().
		Int(`seq`, seqNum).
		Int(`process_id`, processID).
		Str(`op`, opKind).
		Str(`file`, string(name))
	if opKind == `create` {
		b = b.Int(`blocks`, blocks)
	}
	b.Log(`disk script operation parsed`)
}

package vm

import "github.com/vorot93/evmodin/log"

// Tracer observes a frame's execution without influencing it. A Tracer
// only ever sees state the interpreter already holds in-process, never a
// host round-trip.
type Tracer interface {
	// OnExecutionStart fires once, before the first instruction of a frame.
	OnExecutionStart(msg *Message, code []byte)
	// OnInstructionStart fires before each opcode is executed.
	OnInstructionStart(pc uint64, op OpCode, gasLeft int64, stack *Stack, memory *Memory, depth int)
	// OnExecutionEnd fires once, after the frame has terminated.
	OnExecutionEnd(out *Output)
}

// NopTracer discards every event. It is the default when a caller does not
// want tracing overhead.
type NopTracer struct{}

func (NopTracer) OnExecutionStart(*Message, []byte)                             {}
func (NopTracer) OnInstructionStart(uint64, OpCode, int64, *Stack, *Memory, int) {}
func (NopTracer) OnExecutionEnd(*Output)                                        {}

// StructLogEntry is a single step recorded by StructLogTracer. It keeps
// only the top-of-stack value rather than a full snapshot.
type StructLogEntry struct {
	Pc      uint64
	Op      OpCode
	GasLeft int64
	Depth   int
	Top     uint64
}

// StructLogTracer collects step-by-step execution logs in memory.
type StructLogTracer struct {
	Logs   []StructLogEntry
	output Output
}

func NewStructLogTracer() *StructLogTracer {
	return &StructLogTracer{}
}

func (t *StructLogTracer) OnExecutionStart(*Message, []byte) {}

func (t *StructLogTracer) OnInstructionStart(pc uint64, op OpCode, gasLeft int64, stack *Stack, memory *Memory, depth int) {
	var top uint64
	if stack.Len() > 0 {
		top = stack.Peek().Uint64()
	}
	t.Logs = append(t.Logs, StructLogEntry{
		Pc:      pc,
		Op:      op,
		GasLeft: gasLeft,
		Depth:   depth,
		Top:     top,
	})
}

func (t *StructLogTracer) OnExecutionEnd(out *Output) {
	t.output = *out
}

// Output returns the final Output recorded for the traced frame.
func (t *StructLogTracer) Output() Output { return t.output }

// LogTracer emits one structured log line per frame boundary via the
// logger given to NewLogTracer (the package-level default when nil), under
// the "vm" module. It does not log per-step:
// at typical call depths that would drown the rest of a node's output, so
// only frame start/end are reported, each with the fields a diagnostic
// session actually needs to correlate a failing call.
type LogTracer struct {
	logger *log.Logger
	depth  int
}

// NewLogTracer builds a LogTracer on top of the given logger's "vm" child.
// Passing nil uses the process-wide default logger.
func NewLogTracer(l *log.Logger) *LogTracer {
	if l == nil {
		l = log.Default()
	}
	return &LogTracer{logger: l.Module("vm")}
}

func (t *LogTracer) OnExecutionStart(msg *Message, code []byte) {
	t.depth = int(msg.Depth)
	t.logger.Debug("frame start",
		"depth", msg.Depth,
		"kind", msg.Kind.String(),
		"destination", msg.Destination.String(),
		"sender", msg.Sender.String(),
		"gas", msg.Gas,
		"codeLen", len(code),
	)
}

func (t *LogTracer) OnInstructionStart(pc uint64, op OpCode, gasLeft int64, stack *Stack, memory *Memory, depth int) {}

func (t *LogTracer) OnExecutionEnd(out *Output) {
	t.logger.Debug("frame end",
		"depth", t.depth,
		"status", out.StatusCode.String(),
		"gasLeft", out.GasLeft,
		"outputLen", len(out.OutputData),
	)
}

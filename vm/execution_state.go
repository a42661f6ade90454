package vm

// executionState is the mutable state of a single running frame: its
// operand stack, memory, program counter, remaining gas, and the scratch
// buffers instructions read and write. It is private to the continuation
// goroutine; callers only ever see it through Interrupt/Output.
type executionState struct {
	stack  *Stack
	memory *Memory

	pc      uint64
	gasLeft int64

	// returnData holds the output of the most recent nested Call, for
	// RETURNDATASIZE/RETURNDATACOPY.
	returnData []byte

	// outputData is the value a RETURN/REVERT leaves as the frame's output.
	outputData []byte

	message  *Message
	revision Revision
	image    *CodeImage
	table    *instructionTable
}

func newExecutionState(img *CodeImage, msg *Message, rev Revision) *executionState {
	return &executionState{
		stack:    NewStack(),
		memory:   NewMemory(),
		gasLeft:  msg.Gas,
		message:  msg,
		revision: rev,
		image:    img,
		table:    tableForRevision(rev),
	}
}

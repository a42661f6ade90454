package vm

// haltError is how a handler signals frame termination. It is never
// returned to a caller outside this package; the loop below translates it
// into an Output.
type haltError struct {
	status StatusCode
	output []byte
}

func (h *haltError) Error() string { return h.status.String() }

func halt(status StatusCode) error            { return &haltError{status: status} }
func haltWithOutput(status StatusCode, out []byte) error { return &haltError{status: status, output: out} }

// runFrame drives one frame's fetch-decode-dispatch loop to completion
// and produces its terminal Output.
func runFrame(f *frame) Output {
	f.tracer.OnExecutionStart(f.state.message, f.state.image.Code())
	out := dispatchLoop(f)
	f.tracer.OnExecutionEnd(&out)
	return out
}

func dispatchLoop(f *frame) Output {
	s := f.state
	img := s.image

	for {
		if int(s.pc) >= img.Len() {
			return Output{StatusCode: Success, GasLeft: s.gasLeft}
		}

		op := img.opAt(int(s.pc))
		instr := &mainTable[op]

		if instr.execute == nil || s.revision < instr.introduced {
			return haltOutput(&haltError{status: UndefinedInstruction}, s.gasLeft)
		}

		if _, isNop := f.tracer.(NopTracer); !isNop {
			f.tracer.OnInstructionStart(s.pc, op, s.gasLeft, s.stack, s.memory, f.depth)
		}

		if s.gasLeft < int64(instr.constantGas) {
			return haltOutput(&haltError{status: OutOfGas}, s.gasLeft)
		}
		s.gasLeft -= int64(instr.constantGas)

		if s.stack.Len() < instr.minStack {
			return haltOutput(&haltError{status: StackUnderflow}, s.gasLeft)
		}
		if s.stack.Len()+instr.stackDelta > stackLimit {
			return haltOutput(&haltError{status: StackOverflow}, s.gasLeft)
		}

		if err := instr.execute(f); err != nil {
			if he, ok := err.(*haltError); ok {
				return haltOutput(he, s.gasLeft)
			}
			return Output{StatusCode: InternalError, InternalErr: err}
		}

		if !instr.jumps {
			s.pc++
		}
	}
}

// haltOutput maps a terminal condition to an Output. Gas is preserved only
// for Success and Revert; every other status consumes all remaining gas,
// matching Yellow Paper "out of gas" semantics.
func haltOutput(h *haltError, gasLeft int64) Output {
	out := Output{StatusCode: h.status, OutputData: h.output}
	if h.status == Success || h.status == Revert {
		out.GasLeft = gasLeft
	}
	return out
}

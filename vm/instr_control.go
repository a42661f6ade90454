package vm

func opJump(f *frame) error {
	dest := f.state.stack.Pop()
	if !dest.IsUint64() || !f.state.image.ValidJumpDest(dest.Uint64()) {
		return halt(BadJumpDestination)
	}
	f.state.pc = dest.Uint64()
	return nil
}

func opJumpi(f *frame) error {
	s := f.state
	dest := s.stack.Pop()
	cond := s.stack.Pop()
	if cond.IsZero() {
		s.pc++
		return nil
	}
	if !dest.IsUint64() || !s.image.ValidJumpDest(dest.Uint64()) {
		return halt(BadJumpDestination)
	}
	s.pc = dest.Uint64()
	return nil
}

func opReturn(f *frame) error {
	offset := f.state.stack.Pop()
	size := f.state.stack.Pop()
	off, sz, err := chargeMemory(f, &offset, &size)
	if err != nil {
		return err
	}
	return haltWithOutput(Success, f.state.memory.Get(off, sz))
}

func opRevert(f *frame) error {
	offset := f.state.stack.Pop()
	size := f.state.stack.Pop()
	off, sz, err := chargeMemory(f, &offset, &size)
	if err != nil {
		return err
	}
	return haltWithOutput(Revert, f.state.memory.Get(off, sz))
}

func opInvalid(f *frame) error {
	return halt(InvalidInstruction)
}

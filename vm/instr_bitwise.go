package vm

// Comparison and bitwise opcode handlers, grounded on the same pop/peek
// idiom as instr_arith.go (teacher's instructions.go: opLt, opAnd, ...).

func opLt(f *frame) error {
	x := f.state.stack.Pop()
	y := f.state.stack.Peek()
	if x.Lt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil
}

func opGt(f *frame) error {
	x := f.state.stack.Pop()
	y := f.state.stack.Peek()
	if x.Gt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil
}

func opSlt(f *frame) error {
	x := f.state.stack.Pop()
	y := f.state.stack.Peek()
	if x.Slt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil
}

func opSgt(f *frame) error {
	x := f.state.stack.Pop()
	y := f.state.stack.Peek()
	if x.Sgt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil
}

func opEq(f *frame) error {
	x := f.state.stack.Pop()
	y := f.state.stack.Peek()
	if x.Eq(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil
}

func opIszero(f *frame) error {
	v := f.state.stack.Peek()
	if v.IsZero() {
		v.SetOne()
	} else {
		v.Clear()
	}
	return nil
}

func opAnd(f *frame) error {
	x := f.state.stack.Pop()
	y := f.state.stack.Peek()
	y.And(&x, y)
	return nil
}

func opOr(f *frame) error {
	x := f.state.stack.Pop()
	y := f.state.stack.Peek()
	y.Or(&x, y)
	return nil
}

func opXor(f *frame) error {
	x := f.state.stack.Pop()
	y := f.state.stack.Peek()
	y.Xor(&x, y)
	return nil
}

func opNot(f *frame) error {
	v := f.state.stack.Peek()
	v.Not(v)
	return nil
}

func opByte(f *frame) error {
	th := f.state.stack.Pop()
	val := f.state.stack.Peek()
	val.Byte(&th)
	return nil
}

func opShl(f *frame) error {
	shift := f.state.stack.Pop()
	value := f.state.stack.Peek()
	if shift.LtUint64(256) {
		value.Lsh(value, uint(shift.Uint64()))
	} else {
		value.Clear()
	}
	return nil
}

func opShr(f *frame) error {
	shift := f.state.stack.Pop()
	value := f.state.stack.Peek()
	if shift.LtUint64(256) {
		value.Rsh(value, uint(shift.Uint64()))
	} else {
		value.Clear()
	}
	return nil
}

func opSar(f *frame) error {
	shift := f.state.stack.Pop()
	value := f.state.stack.Peek()
	if shift.GtUint64(256) {
		if value.Sign() >= 0 {
			value.Clear()
		} else {
			value.SetAllOne()
		}
		return nil
	}
	value.SRsh(value, uint(shift.Uint64()))
	return nil
}

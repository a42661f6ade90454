package vm

import "github.com/holiman/uint256"

// Arithmetic opcode handlers. Each pops the top operand, peeks the new
// top, and overwrites it in place with the result — one allocation-free
// pass per opcode.

func opStop(f *frame) error {
	return halt(Success)
}

func opAdd(f *frame) error {
	x := f.state.stack.Pop()
	y := f.state.stack.Peek()
	y.Add(&x, y)
	return nil
}

func opMul(f *frame) error {
	x := f.state.stack.Pop()
	y := f.state.stack.Peek()
	y.Mul(&x, y)
	return nil
}

func opSub(f *frame) error {
	x := f.state.stack.Pop()
	y := f.state.stack.Peek()
	y.Sub(&x, y)
	return nil
}

func opDiv(f *frame) error {
	x := f.state.stack.Pop()
	y := f.state.stack.Peek()
	y.Div(&x, y)
	return nil
}

func opSdiv(f *frame) error {
	x := f.state.stack.Pop()
	y := f.state.stack.Peek()
	y.SDiv(&x, y)
	return nil
}

func opMod(f *frame) error {
	x := f.state.stack.Pop()
	y := f.state.stack.Peek()
	y.Mod(&x, y)
	return nil
}

func opSmod(f *frame) error {
	x := f.state.stack.Pop()
	y := f.state.stack.Peek()
	y.SMod(&x, y)
	return nil
}

func opAddmod(f *frame) error {
	x := f.state.stack.Pop()
	y := f.state.stack.Pop()
	z := f.state.stack.Peek()
	if z.IsZero() {
		z.Clear()
	} else {
		z.AddMod(&x, &y, z)
	}
	return nil
}

func opMulmod(f *frame) error {
	x := f.state.stack.Pop()
	y := f.state.stack.Pop()
	z := f.state.stack.Peek()
	if z.IsZero() {
		z.Clear()
	} else {
		z.MulMod(&x, &y, z)
	}
	return nil
}

func opExp(f *frame) error {
	base := f.state.stack.Pop()
	exponent := f.state.stack.Peek()

	// Dynamic gas: GasExpByte(Frontier=10, Spurious+=50) per byte of the
	// exponent's big-endian length (leading zero bytes not counted).
	byteCost := GasExpByteFrontier
	if f.state.revision >= Spurious {
		byteCost = GasExpByte
	}
	if cost := int64(expByteLen(exponent)) * int64(byteCost); cost > 0 {
		if f.state.gasLeft < cost {
			return halt(OutOfGas)
		}
		f.state.gasLeft -= cost
	}

	exponent.Exp(&base, exponent)
	return nil
}

func expByteLen(exponent *uint256.Int) int {
	bitLen := exponent.BitLen()
	if bitLen == 0 {
		return 0
	}
	return (bitLen + 7) / 8
}

func opSignExtend(f *frame) error {
	back := f.state.stack.Pop()
	num := f.state.stack.Peek()
	num.ExtendSign(num, &back)
	return nil
}

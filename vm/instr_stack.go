package vm

import "github.com/holiman/uint256"

func opPop(f *frame) error {
	f.state.stack.Pop()
	return nil
}

func opPush0(f *frame) error {
	f.state.stack.Push(new(uint256.Int))
	return nil
}

// makePush returns a handler for PUSH1..PUSH32: read n immediate bytes
// following the opcode, push them as a big-endian word, and advance pc past
// both the opcode and its immediate (instruction.jumps is set for these).
func makePush(n int) handlerFunc {
	return func(f *frame) error {
		s := f.state
		imm := s.image.immediate(int(s.pc), n)
		var v uint256.Int
		v.SetBytes(imm)
		s.stack.Push(&v)
		s.pc += uint64(n) + 1
		return nil
	}
}

// makeDup returns a handler for DUP1..DUP16.
func makeDup(n int) handlerFunc {
	return func(f *frame) error {
		f.state.stack.Dup(n)
		return nil
	}
}

// makeSwap returns a handler for SWAP1..SWAP16.
func makeSwap(n int) handlerFunc {
	return func(f *frame) error {
		f.state.stack.Swap(n)
		return nil
	}
}

func opPc(f *frame) error {
	f.state.stack.Push(new(uint256.Int).SetUint64(f.state.pc))
	return nil
}

func opGas(f *frame) error {
	f.state.stack.Push(new(uint256.Int).SetUint64(uint64(f.state.gasLeft)))
	return nil
}

func opJumpdest(f *frame) error {
	return nil
}

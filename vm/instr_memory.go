package vm

import (
	"github.com/holiman/uint256"

	"github.com/vorot93/evmodin/crypto"
)

// chargeMemory validates an (offset,size) pair taken off the stack,
// expands memory to cover it, and deducts the resulting quadratic
// expansion cost from the frame's remaining gas. A zero-size region is a
// no-op: off/sz are returned as 0 and no gas is charged.
func chargeMemory(f *frame, offset, size *uint256.Int) (off, sz uint64, err error) {
	o, s, cost, ok, rangeErr := verifyRegion(f.state.memory, offset, size)
	if rangeErr {
		return 0, 0, halt(InvalidMemoryAccess)
	}
	if !ok {
		return 0, 0, nil
	}
	if f.state.gasLeft < int64(cost) {
		return 0, 0, halt(OutOfGas)
	}
	f.state.gasLeft -= int64(cost)
	return o, s, nil
}

func opMload(f *frame) error {
	offset := f.state.stack.Peek()
	size := uint256.NewInt(32)
	off, _, err := chargeMemory(f, offset, size)
	if err != nil {
		return err
	}
	offset.SetBytes(f.state.memory.Get(off, 32))
	return nil
}

func opMstore(f *frame) error {
	offset := f.state.stack.Pop()
	val := f.state.stack.Pop()
	off, _, err := chargeMemory(f, &offset, uint256.NewInt(32))
	if err != nil {
		return err
	}
	f.state.memory.Set32(off, &val)
	return nil
}

func opMstore8(f *frame) error {
	offset := f.state.stack.Pop()
	val := f.state.stack.Pop()
	off, _, err := chargeMemory(f, &offset, uint256.NewInt(1))
	if err != nil {
		return err
	}
	f.state.memory.Set(off, 1, []byte{byte(val.Uint64())})
	return nil
}

func opMsize(f *frame) error {
	f.state.stack.Push(new(uint256.Int).SetUint64(uint64(f.state.memory.Len())))
	return nil
}

func opKeccak256(f *frame) error {
	offset := f.state.stack.Pop()
	size := f.state.stack.Peek()
	off, sz, err := chargeMemory(f, &offset, size)
	if err != nil {
		return err
	}

	wordGas := int64(GasKeccak256Word) * int64(words(sz))
	if f.state.gasLeft < wordGas {
		return halt(OutOfGas)
	}
	f.state.gasLeft -= wordGas

	data := f.state.memory.Get(off, sz)
	hash := crypto.Keccak256(data)
	size.SetBytes(hash)
	return nil
}

func opMcopy(f *frame) error {
	dst := f.state.stack.Pop()
	src := f.state.stack.Pop()
	size := f.state.stack.Pop()

	dstOff, srcOff := dst.Uint64(), src.Uint64()
	limit := dstOff
	if srcOff > limit {
		limit = srcOff
	}
	szU256 := size
	topU256 := new(uint256.Int).SetUint64(limit)
	topU256.Add(topU256, &szU256)

	_, sz, err := chargeMemory(f, new(uint256.Int), topU256)
	if err != nil {
		return err
	}
	if sz == 0 {
		return nil
	}

	wordGas := int64(GasMcopyWord) * int64(words(size.Uint64()))
	if f.state.gasLeft < wordGas {
		return halt(OutOfGas)
	}
	f.state.gasLeft -= wordGas

	n := size.Uint64()
	data := f.state.memory.Get(srcOff, n)
	f.state.memory.Set(dstOff, n, data)
	return nil
}

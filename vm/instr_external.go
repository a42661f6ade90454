package vm

import (
	"github.com/holiman/uint256"

	"github.com/vorot93/evmodin/types"
)

func opAddress(f *frame) error {
	f.state.stack.Push(addressToWord(f.state.message.Destination))
	return nil
}

func opBalance(f *frame) error {
	s := f.state
	addrW := s.stack.Peek()
	addr := wordToAddress(addrW)

	if s.revision >= Berlin {
		if err := chargeColdAccess(f, addr); err != nil {
			return err
		}
	} else {
		if err := chargeGas(f, GasExt); err != nil {
			return err
		}
	}

	bal := f.suspend(GetBalance{Address: addr}).(Balance).Value
	addrW.Set(&bal)
	return nil
}

func opOrigin(f *frame) error {
	tx := f.suspend(GetTxContext{}).(TxContextData).Context
	f.state.stack.Push(addressToWord(tx.Origin))
	return nil
}

func opCaller(f *frame) error {
	f.state.stack.Push(addressToWord(f.state.message.Sender))
	return nil
}

func opCallValue(f *frame) error {
	v := f.state.message.Value
	if v == nil {
		v = new(uint256.Int)
	}
	f.state.stack.Push(new(uint256.Int).Set(v))
	return nil
}

func opCallDataLoad(f *frame) error {
	off := f.state.stack.Peek()
	data := f.state.message.InputData
	var buf [32]byte
	if off.IsUint64() {
		o := off.Uint64()
		if o < uint64(len(data)) {
			copy(buf[:], data[o:])
		}
	}
	off.SetBytes(buf[:])
	return nil
}

func opCallDataSize(f *frame) error {
	f.state.stack.Push(new(uint256.Int).SetUint64(uint64(len(f.state.message.InputData))))
	return nil
}

func opCallDataCopy(f *frame) error {
	return copyToMemory(f, f.state.message.InputData)
}

func opCodeSize(f *frame) error {
	f.state.stack.Push(new(uint256.Int).SetUint64(uint64(f.state.image.Len())))
	return nil
}

func opCodeCopy(f *frame) error {
	return copyToMemory(f, f.state.image.Code())
}

func opGasPrice(f *frame) error {
	tx := f.suspend(GetTxContext{}).(TxContextData).Context
	p := tx.GasPrice
	if p == nil {
		p = new(uint256.Int)
	}
	f.state.stack.Push(new(uint256.Int).Set(p))
	return nil
}

func opExtCodeSize(f *frame) error {
	s := f.state
	addrW := s.stack.Peek()
	addr := wordToAddress(addrW)
	if s.revision >= Berlin {
		if err := chargeColdAccess(f, addr); err != nil {
			return err
		}
	} else {
		if err := chargeGas(f, GasExt); err != nil {
			return err
		}
	}
	size := f.suspend(GetCodeSize{Address: addr}).(Size).Value
	addrW.SetUint64(size)
	return nil
}

func opExtCodeCopy(f *frame) error {
	s := f.state
	addrW := s.stack.Pop()
	addr := wordToAddress(&addrW)

	if s.revision >= Berlin {
		if err := chargeColdAccess(f, addr); err != nil {
			return err
		}
	} else {
		if err := chargeGas(f, GasExt); err != nil {
			return err
		}
	}

	destOff := s.stack.Pop()
	srcOff := s.stack.Pop()
	size := s.stack.Pop()
	off, sz, err := chargeMemory(f, &destOff, &size)
	if err != nil {
		return err
	}
	if err := chargeCopyWords(f, sz); err != nil {
		return err
	}
	if sz == 0 {
		return nil
	}
	code := f.suspend(CopyCode{Address: addr, Offset: srcOff.Uint64(), Size: sz}).(Code).Value
	buf := make([]byte, sz)
	copy(buf, code)
	s.memory.Set(off, sz, buf)
	return nil
}

func opReturnDataSize(f *frame) error {
	f.state.stack.Push(new(uint256.Int).SetUint64(uint64(len(f.state.returnData))))
	return nil
}

func opReturnDataCopy(f *frame) error {
	s := f.state
	destOff := s.stack.Pop()
	srcOff := s.stack.Pop()
	size := s.stack.Pop()

	if !srcOff.IsUint64() || !size.IsUint64() {
		return halt(InvalidMemoryAccess)
	}
	so, sz := srcOff.Uint64(), size.Uint64()
	if so+sz > uint64(len(s.returnData)) || so+sz < so {
		return halt(InvalidMemoryAccess)
	}

	off, _, err := chargeMemory(f, &destOff, &size)
	if err != nil {
		return err
	}
	if err := chargeCopyWords(f, sz); err != nil {
		return err
	}
	s.memory.Set(off, sz, s.returnData[so:so+sz])
	return nil
}

func opExtCodeHash(f *frame) error {
	s := f.state
	addrW := s.stack.Peek()
	addr := wordToAddress(addrW)
	if s.revision >= Berlin {
		if err := chargeColdAccess(f, addr); err != nil {
			return err
		}
	} else {
		if err := chargeGas(f, GasExt); err != nil {
			return err
		}
	}
	h := f.suspend(GetCodeHash{Address: addr}).(CodeHash).Value
	addrW.SetBytes(h.Bytes())
	return nil
}

func opBlockHash(f *frame) error {
	numW := f.state.stack.Peek()

	tx := f.suspend(GetTxContext{}).(TxContextData).Context

	var n uint64
	inRange := numW.IsUint64()
	if inRange {
		n = numW.Uint64()
		inRange = n < tx.BlockNumber && n+256 >= tx.BlockNumber
	}

	if !inRange {
		numW.Clear()
		return nil
	}

	h := f.suspend(GetBlockHash{Number: n}).(BlockHash).Value
	numW.SetBytes(h.Bytes())
	return nil
}

func opCoinbase(f *frame) error {
	tx := f.suspend(GetTxContext{}).(TxContextData).Context
	f.state.stack.Push(addressToWord(tx.Coinbase))
	return nil
}

func opTimestamp(f *frame) error {
	tx := f.suspend(GetTxContext{}).(TxContextData).Context
	f.state.stack.Push(new(uint256.Int).SetUint64(tx.BlockTimestamp))
	return nil
}

func opNumber(f *frame) error {
	tx := f.suspend(GetTxContext{}).(TxContextData).Context
	f.state.stack.Push(new(uint256.Int).SetUint64(tx.BlockNumber))
	return nil
}

func opPrevRandao(f *frame) error {
	tx := f.suspend(GetTxContext{}).(TxContextData).Context
	d := tx.BlockDifficulty
	if d == nil {
		d = new(uint256.Int)
	}
	f.state.stack.Push(new(uint256.Int).Set(d))
	return nil
}

func opGasLimit(f *frame) error {
	tx := f.suspend(GetTxContext{}).(TxContextData).Context
	f.state.stack.Push(new(uint256.Int).SetUint64(tx.BlockGasLimit))
	return nil
}

func opChainID(f *frame) error {
	tx := f.suspend(GetTxContext{}).(TxContextData).Context
	c := tx.ChainID
	if c == nil {
		c = new(uint256.Int)
	}
	f.state.stack.Push(new(uint256.Int).Set(c))
	return nil
}

func opSelfBalance(f *frame) error {
	bal := f.suspend(GetBalance{Address: f.state.message.Destination}).(Balance).Value
	f.state.stack.Push(new(uint256.Int).Set(&bal))
	return nil
}

func opBaseFee(f *frame) error {
	tx := f.suspend(GetTxContext{}).(TxContextData).Context
	b := tx.BlockBaseFee
	if b == nil {
		b = new(uint256.Int)
	}
	f.state.stack.Push(new(uint256.Int).Set(b))
	return nil
}

func opBlobHash(f *frame) error {
	idxW := f.state.stack.Peek()
	idxW.Clear()
	return nil
}

func opBlobBaseFee(f *frame) error {
	f.state.stack.Push(new(uint256.Int))
	return nil
}

func addressToWord(a types.Address) *uint256.Int {
	v := new(uint256.Int)
	v.SetBytes(a.Bytes())
	return v
}

func wordToAddress(v *uint256.Int) types.Address {
	b := v.Bytes32()
	return types.BytesToAddress(b[12:])
}

func chargeGas(f *frame, gas uint64) error {
	if f.state.gasLeft < int64(gas) {
		return halt(OutOfGas)
	}
	f.state.gasLeft -= int64(gas)
	return nil
}

func chargeColdAccess(f *frame, addr types.Address) error {
	access := f.suspend(AccessAccount{Address: addr}).(AccessStatusReply).Status
	if access == ColdAccess {
		return chargeGas(f, ColdAccountAccessCost)
	}
	return chargeGas(f, WarmStorageReadCost)
}

func chargeCopyWords(f *frame, size uint64) error {
	return chargeGas(f, GasCopyWord*words(size))
}

// copyToMemory implements the CALLDATACOPY/CODECOPY family: pop
// (destOffset, srcOffset, size), expand memory, charge per-word copy gas,
// and fill from src, zero-padding where src runs out.
func copyToMemory(f *frame, src []byte) error {
	s := f.state
	destOff := s.stack.Pop()
	srcOff := s.stack.Pop()
	size := s.stack.Pop()

	off, sz, err := chargeMemory(f, &destOff, &size)
	if err != nil {
		return err
	}
	if err := chargeCopyWords(f, sz); err != nil {
		return err
	}
	if sz == 0 {
		return nil
	}

	buf := make([]byte, sz)
	if srcOff.IsUint64() {
		so := srcOff.Uint64()
		if so < uint64(len(src)) {
			copy(buf, src[so:])
		}
	}
	s.memory.Set(off, sz, buf)
	return nil
}

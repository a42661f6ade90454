package vm

import (
	"github.com/holiman/uint256"

	"github.com/vorot93/evmodin/types"
)

func doCreate(f *frame, kind CallKind) error {
	s := f.state
	if s.message.IsStatic {
		return halt(StaticModeViolation)
	}

	value := s.stack.Pop()
	offset := s.stack.Pop()
	size := s.stack.Pop()

	var salt uint256.Int
	if kind == CallKindCreate2 {
		salt = s.stack.Pop()
	}

	off, sz, err := chargeMemory(f, &offset, &size)
	if err != nil {
		return err
	}
	if sz > maxCodeSize*2 {
		return halt(ArgumentOutOfRange)
	}

	if kind == CallKindCreate2 {
		if err := chargeGas(f, GasKeccak256Word*words(sz)); err != nil {
			return err
		}
	}

	if int(s.message.Depth)+1 > maxCallDepth {
		s.stack.Push(new(uint256.Int))
		return nil
	}

	if !value.IsZero() {
		balance := f.suspend(GetBalance{Address: s.message.Destination}).(Balance).Value
		if balance.Lt(&value) {
			s.stack.Push(new(uint256.Int))
			return nil
		}
	}

	available := s.gasLeft
	var childGas int64
	if s.revision >= Tangerine {
		childGas = available - available/64
	} else {
		childGas = available
	}
	if err := chargeGas(f, uint64(childGas)); err != nil {
		return err
	}

	initCode := s.memory.Get(off, sz)

	msg := &Message{
		Kind:      kind,
		Depth:     s.message.Depth + 1,
		Gas:       childGas,
		Sender:    s.message.Destination,
		InputData: initCode,
		Value:     &value,
		Salt:      types.BytesToHash(salt.Bytes()),
	}

	out := f.suspend(Call{Message: msg}).(CallOutput).Output
	s.gasLeft += out.GasLeft
	s.returnData = out.OutputData

	if out.StatusCode == Success && out.CreateAddress != nil {
		s.stack.Push(addressToWord(*out.CreateAddress))
	} else {
		s.stack.Push(new(uint256.Int))
	}
	return nil
}

func opCreate(f *frame) error {
	return doCreate(f, CallKindCreate)
}

func opCreate2(f *frame) error {
	return doCreate(f, CallKindCreate2)
}

package vm

import "github.com/holiman/uint256"

// gasForCall applies the EIP-150 63/64 rule from Tangerine Whistle onward:
// at most available-available/64 may be forwarded to a child call, capped
// further by what the caller explicitly requested. Before Tangerine there
// is no discount; the requested amount must fit entirely within what's
// left, or the call charges an OutOfGas.
func gasForCall(f *frame, available int64, requested *uint256.Int) (int64, error) {
	if f.state.revision < Tangerine {
		if !requested.IsUint64() || requested.Uint64() > uint64(available) {
			return 0, halt(OutOfGas)
		}
		return int64(requested.Uint64()), nil
	}

	cap := available - available/64
	if cap < 0 {
		cap = 0
	}
	if requested.IsUint64() && requested.Uint64() < uint64(cap) {
		return int64(requested.Uint64()), nil
	}
	return cap, nil
}

func pushBool(f *frame, ok bool) {
	if ok {
		f.state.stack.Push(uint256.NewInt(1))
	} else {
		f.state.stack.Push(new(uint256.Int))
	}
}

// doCall implements the shared machinery of CALL/CALLCODE/DELEGATECALL/
// STATICCALL: charge cold-access and value-transfer gas, apply the 63/64
// forwarding rule and call stipend, suspend on Call, splice the result
// into memory, and push the success flag.
func doCall(f *frame, kind CallKind, hasValue, forceStatic bool) error {
	s := f.state

	gasW := s.stack.Pop()
	addrW := s.stack.Pop()

	var value uint256.Int
	if hasValue {
		value = s.stack.Pop()
	}

	argsOffset := s.stack.Pop()
	argsSize := s.stack.Pop()
	retOffset := s.stack.Pop()
	retSize := s.stack.Pop()

	addr := wordToAddress(&addrW)
	transfersValue := hasValue && !value.IsZero()

	if s.message.IsStatic && transfersValue {
		return halt(StaticModeViolation)
	}

	argsOff, argsSz, err := chargeMemory(f, &argsOffset, &argsSize)
	if err != nil {
		return err
	}
	retOff, retSz, err := chargeMemory(f, &retOffset, &retSize)
	if err != nil {
		return err
	}

	if s.revision >= Berlin {
		if err := chargeColdAccess(f, addr); err != nil {
			return err
		}
	} else {
		if err := chargeGas(f, GasExt); err != nil {
			return err
		}
	}

	if transfersValue {
		if err := chargeGas(f, GasCallValue); err != nil {
			return err
		}

		balance := f.suspend(GetBalance{Address: s.message.Destination}).(Balance).Value
		if balance.Lt(&value) {
			pushBool(f, false)
			return nil
		}
	}

	if kind == CallKindCall && transfersValue {
		exists := f.suspend(AccountExists{Address: addr}).(Bool).Value
		if !exists {
			if err := chargeGas(f, GasNewAccount); err != nil {
				return err
			}
		}
	}

	deducted, err := gasForCall(f, s.gasLeft, &gasW)
	if err != nil {
		return err
	}
	if err := chargeGas(f, uint64(deducted)); err != nil {
		return err
	}
	childGas := deducted
	if transfersValue {
		childGas += int64(GasCallStipend)
	}

	if int(s.message.Depth)+1 > maxCallDepth {
		s.gasLeft += deducted
		pushBool(f, false)
		return nil
	}

	args := s.memory.Get(argsOff, argsSz)

	msg := &Message{
		Kind:        kind,
		Depth:       s.message.Depth + 1,
		Gas:         childGas,
		InputData:   args,
		CodeAddress: addr,
	}

	switch kind {
	case CallKindCall:
		msg.Destination = addr
		msg.Sender = s.message.Destination
		msg.Value = &value
		msg.IsStatic = s.message.IsStatic
	case CallKindCallCode:
		msg.Destination = s.message.Destination
		msg.Sender = s.message.Destination
		msg.Value = &value
		msg.IsStatic = s.message.IsStatic
	case CallKindDelegateCall:
		msg.Destination = s.message.Destination
		msg.Sender = s.message.Sender
		msg.Value = s.message.Value
		msg.IsStatic = s.message.IsStatic
	}
	if forceStatic {
		msg.IsStatic = true
		msg.Destination = addr
		msg.Sender = s.message.Destination
		msg.Value = new(uint256.Int)
	}

	out := f.suspend(Call{Message: msg}).(CallOutput).Output
	s.gasLeft += out.GasLeft
	s.returnData = out.OutputData

	if retSz > 0 {
		data := out.OutputData
		if uint64(len(data)) > retSz {
			data = data[:retSz]
		}
		buf := make([]byte, retSz)
		copy(buf, data)
		s.memory.Set(retOff, retSz, buf)
	}

	pushBool(f, out.StatusCode == Success)
	return nil
}

func opCall(f *frame) error {
	return doCall(f, CallKindCall, true, false)
}

func opCallCode(f *frame) error {
	return doCall(f, CallKindCallCode, true, false)
}

func opDelegateCall(f *frame) error {
	return doCall(f, CallKindDelegateCall, false, false)
}

func opStaticCall(f *frame) error {
	return doCall(f, CallKindCall, false, true)
}

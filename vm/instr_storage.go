package vm

import (
	"github.com/vorot93/evmodin/types"
)

func opSload(f *frame) error {
	s := f.state
	slot := s.stack.Peek()
	key := types.BytesToHash(slot.Bytes())
	addr := s.message.Destination

	gas := sloadGas(s.revision)
	if s.revision >= Berlin {
		access := f.suspend(AccessStorage{Address: addr, Key: key}).(AccessStatusReply).Status
		if access == WarmAccess {
			gas = WarmStorageReadCost
		} else {
			gas = ColdSloadCost
		}
	}
	if s.gasLeft < int64(gas) {
		return halt(OutOfGas)
	}
	s.gasLeft -= int64(gas)

	reply := f.suspend(GetStorage{Address: addr, Key: key}).(StorageValue)
	slot.SetBytes(reply.Value.Bytes())
	return nil
}

func sloadGas(rev Revision) uint64 {
	switch {
	case rev >= Istanbul:
		return 800
	case rev >= Tangerine:
		return 200
	default:
		return 50
	}
}

// sstoreGas computes SSTORE's dynamic gas from the host-reported
// StorageStatus and, for Berlin+, whether the slot was cold before this
// access. Gas keys off the status enum, not a before/after diff the
// interpreter computes itself.
func sstoreGas(rev Revision, status StorageStatus, cold bool) uint64 {
	if rev >= Berlin {
		var base uint64
		switch status {
		case StorageAdded:
			base = GasSstoreSetGas
		case StorageModified, StorageDeleted:
			base = GasSstoreResetGas - ColdSloadCost
		default: // Unchanged, ModifiedAgain
			base = WarmStorageReadCost
		}
		if cold {
			base += ColdSloadCost
		}
		return base
	}
	if rev >= Constantinople {
		switch status {
		case StorageAdded:
			return GasSstoreSetGas
		case StorageModified, StorageDeleted:
			return GasSstoreResetGas
		default:
			if rev >= Istanbul {
				return 800
			}
			return 200
		}
	}
	// Frontier..Byzantium: no net-gas metering, flat set/reset cost.
	if status == StorageAdded {
		return GasSstoreSetGas
	}
	return GasSstoreResetGas
}

func opSstore(f *frame) error {
	s := f.state
	if s.message.IsStatic {
		return halt(StaticModeViolation)
	}
	// EIP-2200: refuse to execute with the call stipend or less remaining.
	if s.revision >= Istanbul && s.gasLeft <= int64(GasCallStipend) {
		return halt(OutOfGas)
	}

	keyW := s.stack.Pop()
	valW := s.stack.Pop()
	key := types.BytesToHash(keyW.Bytes())
	value := types.BytesToHash(valW.Bytes())
	addr := s.message.Destination

	cold := false
	if s.revision >= Berlin {
		access := f.suspend(AccessStorage{Address: addr, Key: key}).(AccessStatusReply).Status
		cold = access == ColdAccess
	}

	status := f.suspend(SetStorage{Address: addr, Key: key, Value: value}).(StorageStatusReply).Status

	gas := sstoreGas(s.revision, status, cold)
	if s.gasLeft < int64(gas) {
		return halt(OutOfGas)
	}
	s.gasLeft -= int64(gas)
	return nil
}

func opTload(f *frame) error {
	s := f.state
	slot := s.stack.Peek()
	key := types.BytesToHash(slot.Bytes())
	reply := f.suspend(GetTransientStorage{Address: s.message.Destination, Key: key}).(StorageValue)
	slot.SetBytes(reply.Value.Bytes())
	return nil
}

func opTstore(f *frame) error {
	s := f.state
	if s.message.IsStatic {
		return halt(StaticModeViolation)
	}
	keyW := s.stack.Pop()
	valW := s.stack.Pop()
	key := types.BytesToHash(keyW.Bytes())
	value := types.BytesToHash(valW.Bytes())
	f.suspend(SetTransientStorage{Address: s.message.Destination, Key: key, Value: value})
	return nil
}

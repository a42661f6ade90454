package vm

import (
	"github.com/holiman/uint256"

	"github.com/vorot93/evmodin/types"
)

// Host is the environment-access contract the interpreter suspends into.
// A synchronous caller — typically ExecuteSync,
// or a host driving an Interrupt by hand — implements this directly instead
// of speaking the channel protocol; ServeHost below adapts one to the other.
type Host interface {
	AccountExists(addr types.Address) bool
	GetStorage(addr types.Address, key types.Hash) types.Hash
	SetStorage(addr types.Address, key, value types.Hash) StorageStatus
	GetBalance(addr types.Address) uint256.Int
	GetCodeSize(addr types.Address) uint64
	GetCodeHash(addr types.Address) types.Hash
	CopyCode(addr types.Address, offset, size uint64) []byte
	Selfdestruct(addr, beneficiary types.Address)
	Call(msg *Message) Output
	GetTxContext() TxContext
	GetBlockHash(number uint64) types.Hash
	EmitLog(addr types.Address, topics []types.Hash, data []byte)
	AccessAccount(addr types.Address) AccessStatus
	AccessStorage(addr types.Address, key types.Hash) AccessStatus
	GetTransientStorage(addr types.Address, key types.Hash) types.Hash
	SetTransientStorage(addr types.Address, key, value types.Hash)
}

// ServeHost answers a single Request against a synchronous Host
// implementation and returns the matching Reply. It is the glue between
// the channel-based continuation protocol (continuation.go) and a Host
// that a caller finds easier to implement as ordinary method calls.
func ServeHost(h Host, req Request) Reply {
	switch r := req.(type) {
	case AccountExists:
		return Bool{h.AccountExists(r.Address)}
	case GetStorage:
		return StorageValue{h.GetStorage(r.Address, r.Key)}
	case SetStorage:
		return StorageStatusReply{h.SetStorage(r.Address, r.Key, r.Value)}
	case GetBalance:
		return Balance{h.GetBalance(r.Address)}
	case GetCodeSize:
		return Size{h.GetCodeSize(r.Address)}
	case GetCodeHash:
		return CodeHash{h.GetCodeHash(r.Address)}
	case CopyCode:
		return Code{h.CopyCode(r.Address, r.Offset, r.Size)}
	case Selfdestruct:
		h.Selfdestruct(r.Address, r.Beneficiary)
		return Done{}
	case Call:
		return CallOutput{h.Call(r.Message)}
	case GetTxContext:
		return TxContextData{h.GetTxContext()}
	case GetBlockHash:
		return BlockHash{h.GetBlockHash(r.Number)}
	case EmitLog:
		h.EmitLog(r.Address, r.Topics, r.Data)
		return Done{}
	case AccessAccount:
		return AccessStatusReply{h.AccessAccount(r.Address)}
	case AccessStorage:
		return AccessStatusReply{h.AccessStorage(r.Address, r.Key)}
	case GetTransientStorage:
		return StorageValue{h.GetTransientStorage(r.Address, r.Key)}
	case SetTransientStorage:
		h.SetTransientStorage(r.Address, r.Key, r.Value)
		return Done{}
	default:
		panic("vm: unknown request type")
	}
}

// NoopHost is a minimal Host that reports an empty, static environment: no
// account has code or balance, storage is always zero, nested calls fail.
// It is useful for unit-testing instruction handlers in isolation and as a
// documentation example of the full Host surface.
type NoopHost struct{}

func (NoopHost) AccountExists(types.Address) bool { return false }
func (NoopHost) GetStorage(types.Address, types.Hash) types.Hash { return types.Hash{} }
func (NoopHost) SetStorage(types.Address, types.Hash, types.Hash) StorageStatus {
	return StorageUnchanged
}
func (NoopHost) GetBalance(types.Address) uint256.Int        { return uint256.Int{} }
func (NoopHost) GetCodeSize(types.Address) uint64             { return 0 }
func (NoopHost) GetCodeHash(types.Address) types.Hash         { return types.Hash{} }
func (NoopHost) CopyCode(types.Address, uint64, uint64) []byte { return nil }
func (NoopHost) Selfdestruct(types.Address, types.Address)    {}
func (NoopHost) Call(*Message) Output {
	return Output{StatusCode: Failure}
}
func (NoopHost) GetTxContext() TxContext               { return TxContext{} }
func (NoopHost) GetBlockHash(uint64) types.Hash        { return types.Hash{} }
func (NoopHost) EmitLog(types.Address, []types.Hash, []byte) {}
func (NoopHost) AccessAccount(types.Address) AccessStatus {
	return WarmAccess
}
func (NoopHost) AccessStorage(types.Address, types.Hash) AccessStatus {
	return WarmAccess
}
func (NoopHost) GetTransientStorage(types.Address, types.Hash) types.Hash { return types.Hash{} }
func (NoopHost) SetTransientStorage(types.Address, types.Hash, types.Hash) {}

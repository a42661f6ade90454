package vm

import (
	"github.com/holiman/uint256"

	"github.com/vorot93/evmodin/types"
)

// Request is a value the interpreter sends to the host at every suspension
// point. Each concrete type below has exactly one matching Reply type; the
// interpreter blocks until it receives it.
type Request interface {
	isRequest()
}

// Reply is the host's answer to a Request. The interpreter never inspects
// a Reply's type beyond the one matching the Request it sent — a Resume
// call with the wrong Reply type is a host bug and panics.
type Reply interface {
	isReply()
}

// AccountExists asks whether an account exists (is not "dead": has code,
// nonzero balance, or nonzero nonce).
type AccountExists struct {
	Address types.Address
}

// GetStorage reads the current value of a storage slot.
type GetStorage struct {
	Address types.Address
	Key     types.Hash
}

// SetStorage writes a storage slot. The host computes and returns the
// StorageStatus transition; the interpreter never diffs before/after
// values itself.
type SetStorage struct {
	Address types.Address
	Key     types.Hash
	Value   types.Hash
}

// GetBalance reads an account's balance.
type GetBalance struct {
	Address types.Address
}

// GetCodeSize reads the length of an account's code.
type GetCodeSize struct {
	Address types.Address
}

// GetCodeHash reads the Keccak-256 hash of an account's code.
type GetCodeHash struct {
	Address types.Address
}

// CopyCode reads up to size bytes of an account's code starting at offset.
type CopyCode struct {
	Address types.Address
	Offset  uint64
	Size    uint64
}

// Selfdestruct registers the current account for destruction, sending its
// remaining balance to beneficiary. The interpreter terminates the frame
// with Success immediately after this suspension returns: SELFDESTRUCT
// terminates, it does not merely schedule cleanup.
type Selfdestruct struct {
	Address     types.Address
	Beneficiary types.Address
}

// Call asks the host to execute a nested call/create described by msg and
// return its Output. The host is responsible for depth/value/balance
// bookkeeping and for recursing back into the interpreter for EVM-code
// callees.
type Call struct {
	Message *Message
}

// GetTxContext asks for the current transaction/block context.
type GetTxContext struct{}

// GetBlockHash reads the hash of the block at the given number.
type GetBlockHash struct {
	Number uint64
}

// EmitLog asks the host to record a LOG0..LOG4 event.
type EmitLog struct {
	Address types.Address
	Topics  []types.Hash
	Data    []byte
}

// AccessAccount reports (and asks the host to record) that an address has
// been touched, for EIP-2929 cold/warm accounting.
type AccessAccount struct {
	Address types.Address
}

// AccessStorage reports (and asks the host to record) that a storage slot
// has been touched, for EIP-2929 cold/warm accounting.
type AccessStorage struct {
	Address types.Address
	Key     types.Hash
}

// GetTransientStorage reads an EIP-1153 transient storage slot. Transient
// storage is scoped to the whole transaction, not to a frame, so — like
// persistent storage — it is the host's responsibility, not interpreter
// state: a reentrant call into the same account must see the other
// frame's transient writes.
type GetTransientStorage struct {
	Address types.Address
	Key     types.Hash
}

// SetTransientStorage writes an EIP-1153 transient storage slot.
type SetTransientStorage struct {
	Address types.Address
	Key     types.Hash
	Value   types.Hash
}

func (AccountExists) isRequest()        {}
func (GetStorage) isRequest()           {}
func (SetStorage) isRequest()           {}
func (GetBalance) isRequest()           {}
func (GetCodeSize) isRequest()          {}
func (GetCodeHash) isRequest()          {}
func (CopyCode) isRequest()             {}
func (Selfdestruct) isRequest()         {}
func (Call) isRequest()                 {}
func (GetTxContext) isRequest()         {}
func (GetBlockHash) isRequest()         {}
func (EmitLog) isRequest()              {}
func (AccessAccount) isRequest()        {}
func (AccessStorage) isRequest()        {}
func (GetTransientStorage) isRequest()  {}
func (SetTransientStorage) isRequest()  {}

// Bool carries a plain boolean reply (AccountExists).
type Bool struct{ Value bool }

// Balance carries a 256-bit reply (GetBalance).
type Balance struct{ Value uint256.Int }

// StorageValue carries a GetStorage reply.
type StorageValue struct{ Value types.Hash }

// StorageStatusReply carries a SetStorage reply.
type StorageStatusReply struct{ Status StorageStatus }

// Size carries a GetCodeSize reply.
type Size struct{ Value uint64 }

// CodeHash carries a GetCodeHash reply.
type CodeHash struct{ Value types.Hash }

// Code carries a CopyCode reply.
type Code struct{ Value []byte }

// Done carries an acknowledgement reply for requests with no payload
// (Selfdestruct, EmitLog).
type Done struct{}

// CallOutput carries a Call reply.
type CallOutput struct{ Output Output }

// TxContextData carries a GetTxContext reply.
type TxContextData struct{ Context TxContext }

// BlockHash carries a GetBlockHash reply.
type BlockHash struct{ Value types.Hash }

// AccessStatusReply carries an AccessAccount/AccessStorage reply.
type AccessStatusReply struct{ Status AccessStatus }

func (Bool) isReply()                {}
func (Balance) isReply()             {}
func (StorageValue) isReply()        {}
func (StorageStatusReply) isReply()  {}
func (Size) isReply()                {}
func (CodeHash) isReply()            {}
func (Code) isReply()                {}
func (Done) isReply()                {}
func (CallOutput) isReply()          {}
func (TxContextData) isReply()       {}
func (BlockHash) isReply()           {}
func (AccessStatusReply) isReply()   {}

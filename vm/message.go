package vm

import (
	"github.com/holiman/uint256"

	"github.com/vorot93/evmodin/types"
)

// CallKind identifies how a call frame was entered.
type CallKind int

const (
	CallKindCall CallKind = iota
	CallKindDelegateCall
	CallKindCallCode
	CallKindCreate
	CallKindCreate2
)

func (k CallKind) String() string {
	switch k {
	case CallKindCall:
		return "call"
	case CallKindDelegateCall:
		return "delegatecall"
	case CallKindCallCode:
		return "callcode"
	case CallKindCreate:
		return "create"
	case CallKindCreate2:
		return "create2"
	default:
		return "unknown"
	}
}

// Message describes an inbound call. It is immutable for the lifetime of
// the frame it describes.
type Message struct {
	Kind        CallKind
	IsStatic    bool
	Depth       int32
	Gas         int64
	Destination types.Address
	Sender      types.Address
	InputData   []byte
	Value       *uint256.Int
	Salt        types.Hash // only meaningful for CallKindCreate2

	// CodeAddress is the account whose code actually executes. It equals
	// Destination for CallKindCall/CallKindCreate*. For CallKindCallCode
	// and CallKindDelegateCall it names the callee whose code runs while
	// Destination stays the caller's own address/storage context.
	CodeAddress types.Address
}

// StatusCode is the terminal disposition of a call frame. It is a plain
// value, not an error: most status codes are ordinary EVM outcomes a host
// must branch on, not exceptional control flow.
type StatusCode int

const (
	Success StatusCode = iota
	Failure
	Revert
	OutOfGas
	InvalidInstruction
	UndefinedInstruction
	StackOverflow
	StackUnderflow
	BadJumpDestination
	InvalidMemoryAccess
	CallDepthExceeded
	StaticModeViolation
	PrecompileFailure
	ArgumentOutOfRange
	InsufficientBalance
	InternalError
)

func (s StatusCode) String() string {
	switch s {
	case Success:
		return "success"
	case Failure:
		return "failure"
	case Revert:
		return "revert"
	case OutOfGas:
		return "out of gas"
	case InvalidInstruction:
		return "invalid instruction"
	case UndefinedInstruction:
		return "undefined instruction"
	case StackOverflow:
		return "stack overflow"
	case StackUnderflow:
		return "stack underflow"
	case BadJumpDestination:
		return "bad jump destination"
	case InvalidMemoryAccess:
		return "invalid memory access"
	case CallDepthExceeded:
		return "call depth exceeded"
	case StaticModeViolation:
		return "static mode violation"
	case PrecompileFailure:
		return "precompile failure"
	case ArgumentOutOfRange:
		return "argument out of range"
	case InsufficientBalance:
		return "insufficient balance"
	case InternalError:
		return "internal error"
	default:
		return "unknown status"
	}
}

// Output is the result of running one call frame to termination.
type Output struct {
	StatusCode    StatusCode
	GasLeft       int64
	OutputData    []byte
	CreateAddress *types.Address

	// InternalErr carries the wrapped host-side error when StatusCode is
	// InternalError. It is diagnostic only; consensus-relevant state never
	// depends on its contents.
	InternalErr error
}

// TxContext carries transaction- and block-scoped values the interpreter
// never computes itself; it is always obtained via GetTxContext.
type TxContext struct {
	GasPrice       *uint256.Int
	Origin         types.Address
	Coinbase       types.Address
	BlockNumber    uint64
	BlockTimestamp uint64
	BlockGasLimit  uint64
	BlockDifficulty *uint256.Int
	ChainID        *uint256.Int
	BlockBaseFee   *uint256.Int
}

// StorageStatus describes the state transition a SetStorage suspension
// produced. The core uses this — not before/after values — to compute
// SSTORE gas. No gas refunds are computed.
type StorageStatus int

const (
	StorageUnchanged StorageStatus = iota
	StorageModified
	StorageModifiedAgain
	StorageAdded
	StorageDeleted
)

// AccessStatus is the EIP-2929 warm/cold classification of an address or
// storage slot at the moment it is touched.
type AccessStatus int

const (
	ColdAccess AccessStatus = iota
	WarmAccess
)

package vm

// Gas cost constants, tiers per Yellow Paper Appendix G:
// Gzero=0, Gbase=2, Gverylow=3, Glow=5, Gmid=8, Ghigh=10, Gext=20.
const (
	GasZero    uint64 = 0
	GasBase    uint64 = 2
	GasVerylow uint64 = 3
	GasLow     uint64 = 5
	GasMid     uint64 = 8
	GasHigh    uint64 = 10
	GasExt     uint64 = 20

	// EIP-2929 constants.
	ColdSloadCost                   uint64 = 2100
	ColdAccountAccessCost           uint64 = 2600
	WarmStorageReadCost             uint64 = 100
	AdditionalColdAccountAccessCost uint64 = 2500

	GasSstoreSetGas    uint64 = 20000
	GasSstoreResetGas  uint64 = 5000
	GasSstoreClearsSchedule int64 = 4800 // EIP-3529 refund per cleared slot

	GasCallValue       uint64 = 9000
	GasCallStipend     uint64 = 2300
	GasNewAccount      uint64 = 25000
	GasCreate          uint64 = 32000
	GasSelfdestruct    uint64 = 5000

	GasLogBase  uint64 = 375
	GasLogTopic uint64 = 375
	GasLogData  uint64 = 8

	GasKeccak256     uint64 = 30
	GasKeccak256Word uint64 = 6
	GasCopyWord      uint64 = 3

	GasJumpDest uint64 = 1
	GasExpByte  uint64 = 50 // Spurious onward; 10 before
	GasExpByteFrontier uint64 = 10

	GasTload  uint64 = 100 // EIP-1153
	GasTstore uint64 = 100 // EIP-1153
	GasMcopyWord uint64 = 3 // EIP-5656

	// maxCodeSize is the maximum permitted contract code size (EIP-170).
	maxCodeSize = 0x6000

	// maxCallDepth bounds nested call/create depth.
	maxCallDepth = 1024
)

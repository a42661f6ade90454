package vm

import (
	"testing"

	"github.com/holiman/uint256"

	"github.com/vorot93/evmodin/types"
)

// fakeHost is a minimal in-memory Host for exercising the interpreter
// end to end.
type fakeHost struct {
	storage    map[types.Address]map[types.Hash]types.Hash
	accessed   map[types.Address]bool
	slotAccess map[types.Hash]bool
	balances   map[types.Address]uint256.Int
	code       map[types.Address][]byte
	logs       []types.Log
	selfDestructed []types.Address
	txContext  TxContext
	onCall     func(*Message) Output
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		storage:    map[types.Address]map[types.Hash]types.Hash{},
		accessed:   map[types.Address]bool{},
		slotAccess: map[types.Hash]bool{},
		balances:   map[types.Address]uint256.Int{},
		code:       map[types.Address][]byte{},
	}
}

func (h *fakeHost) AccountExists(addr types.Address) bool { return !addr.IsZero() }

func (h *fakeHost) GetStorage(addr types.Address, key types.Hash) types.Hash {
	return h.storage[addr][key]
}

func (h *fakeHost) SetStorage(addr types.Address, key, value types.Hash) StorageStatus {
	if h.storage[addr] == nil {
		h.storage[addr] = map[types.Hash]types.Hash{}
	}
	old := h.storage[addr][key]
	h.storage[addr][key] = value
	switch {
	case old == value:
		return StorageUnchanged
	case old.IsZero():
		return StorageAdded
	case value.IsZero():
		return StorageDeleted
	default:
		return StorageModified
	}
}

func (h *fakeHost) GetBalance(addr types.Address) uint256.Int { return h.balances[addr] }
func (h *fakeHost) GetCodeSize(addr types.Address) uint64     { return uint64(len(h.code[addr])) }
func (h *fakeHost) GetCodeHash(addr types.Address) types.Hash { return types.Hash{} }
func (h *fakeHost) CopyCode(addr types.Address, offset, size uint64) []byte {
	c := h.code[addr]
	if offset >= uint64(len(c)) {
		return make([]byte, size)
	}
	end := offset + size
	if end > uint64(len(c)) {
		end = uint64(len(c))
	}
	out := make([]byte, size)
	copy(out, c[offset:end])
	return out
}
func (h *fakeHost) Selfdestruct(addr, beneficiary types.Address) {
	h.selfDestructed = append(h.selfDestructed, addr)
}
func (h *fakeHost) Call(msg *Message) Output {
	if h.onCall != nil {
		return h.onCall(msg)
	}
	return Output{StatusCode: Success, GasLeft: msg.Gas}
}
func (h *fakeHost) GetTxContext() TxContext { return h.txContext }
func (h *fakeHost) GetBlockHash(uint64) types.Hash { return types.Hash{} }
func (h *fakeHost) EmitLog(addr types.Address, topics []types.Hash, data []byte) {
	h.logs = append(h.logs, types.Log{Address: addr, Topics: topics, Data: data})
}
func (h *fakeHost) AccessAccount(addr types.Address) AccessStatus {
	if h.accessed[addr] {
		return WarmAccess
	}
	h.accessed[addr] = true
	return ColdAccess
}
func (h *fakeHost) AccessStorage(addr types.Address, key types.Hash) AccessStatus {
	k := types.BytesToHash(append(addr.Bytes(), key.Bytes()...))
	if h.slotAccess[k] {
		return WarmAccess
	}
	h.slotAccess[k] = true
	return ColdAccess
}
func (h *fakeHost) GetTransientStorage(types.Address, types.Hash) types.Hash { return types.Hash{} }
func (h *fakeHost) SetTransientStorage(types.Address, types.Hash, types.Hash) {}

func runCode(t *testing.T, code []byte, gas int64) Output {
	t.Helper()
	img := Analyze(code)
	msg := &Message{Gas: gas, Value: new(uint256.Int)}
	return ExecuteSync(newFakeHost(), img, msg, London, nil)
}

func TestAddAndReturn(t *testing.T) {
	// PUSH1 2; PUSH1 3; ADD; PUSH1 0; MSTORE; PUSH1 32; PUSH1 0; RETURN
	code := []byte{
		byte(PUSH1), 2,
		byte(PUSH1), 3,
		byte(ADD),
		byte(PUSH1), 0,
		byte(MSTORE),
		byte(PUSH1), 32,
		byte(PUSH1), 0,
		byte(RETURN),
	}
	out := runCode(t, code, 100000)
	if out.StatusCode != Success {
		t.Fatalf("status = %v, want Success", out.StatusCode)
	}
	var got uint256.Int
	got.SetBytes(out.OutputData)
	if got.Uint64() != 5 {
		t.Fatalf("result = %d, want 5", got.Uint64())
	}
}

func TestDivByZero(t *testing.T) {
	code := []byte{
		byte(PUSH1), 0,
		byte(PUSH1), 5,
		byte(DIV),
		byte(PUSH1), 0,
		byte(MSTORE),
		byte(PUSH1), 32,
		byte(PUSH1), 0,
		byte(RETURN),
	}
	out := runCode(t, code, 100000)
	if out.StatusCode != Success {
		t.Fatalf("status = %v, want Success", out.StatusCode)
	}
	var got uint256.Int
	got.SetBytes(out.OutputData)
	if !got.IsZero() {
		t.Fatalf("5/0 = %s, want 0 (EVM DIV by zero yields 0)", got.Hex())
	}
}

func TestStackUnderflow(t *testing.T) {
	code := []byte{byte(ADD)}
	out := runCode(t, code, 100000)
	if out.StatusCode != StackUnderflow {
		t.Fatalf("status = %v, want StackUnderflow", out.StatusCode)
	}
}

func TestOutOfGas(t *testing.T) {
	code := []byte{byte(PUSH1), 1, byte(PUSH1), 2, byte(ADD)}
	out := runCode(t, code, 5) // barely enough for one PUSH1
	if out.StatusCode != OutOfGas {
		t.Fatalf("status = %v, want OutOfGas", out.StatusCode)
	}
	if out.GasLeft != 0 {
		t.Fatalf("GasLeft = %d, want 0 on OutOfGas", out.GasLeft)
	}
}

func TestBadJumpDestination(t *testing.T) {
	code := []byte{byte(PUSH1), 0x10, byte(JUMP)}
	out := runCode(t, code, 100000)
	if out.StatusCode != BadJumpDestination {
		t.Fatalf("status = %v, want BadJumpDestination", out.StatusCode)
	}
}

func TestJumpToValidDest(t *testing.T) {
	// PUSH1 4; JUMP; INVALID; JUMPDEST; STOP
	code := []byte{
		byte(PUSH1), 4,
		byte(JUMP),
		byte(INVALID),
		byte(JUMPDEST),
		byte(STOP),
	}
	out := runCode(t, code, 100000)
	if out.StatusCode != Success {
		t.Fatalf("status = %v, want Success", out.StatusCode)
	}
}

func TestRevertPreservesOutputAndGas(t *testing.T) {
	// PUSH1 0xAA; PUSH1 0; MSTORE8; PUSH1 1; PUSH1 0; REVERT
	code := []byte{
		byte(PUSH1), 0xAA,
		byte(PUSH1), 0,
		byte(MSTORE8),
		byte(PUSH1), 1,
		byte(PUSH1), 0,
		byte(REVERT),
	}
	out := runCode(t, code, 100000)
	if out.StatusCode != Revert {
		t.Fatalf("status = %v, want Revert", out.StatusCode)
	}
	if len(out.OutputData) != 1 || out.OutputData[0] != 0xAA {
		t.Fatalf("output = %x, want [aa]", out.OutputData)
	}
	if out.GasLeft <= 0 {
		t.Fatalf("GasLeft = %d, want > 0 (REVERT preserves remaining gas)", out.GasLeft)
	}
}

func TestSstoreSloadRoundTrip(t *testing.T) {
	// PUSH1 42; PUSH1 0; SSTORE; PUSH1 0; SLOAD; PUSH1 0; MSTORE; PUSH1 32; PUSH1 0; RETURN
	code := []byte{
		byte(PUSH1), 42,
		byte(PUSH1), 0,
		byte(SSTORE),
		byte(PUSH1), 0,
		byte(SLOAD),
		byte(PUSH1), 0,
		byte(MSTORE),
		byte(PUSH1), 32,
		byte(PUSH1), 0,
		byte(RETURN),
	}
	out := runCode(t, code, 100000)
	if out.StatusCode != Success {
		t.Fatalf("status = %v, want Success, err=%v", out.StatusCode, out.InternalErr)
	}
	var got uint256.Int
	got.SetBytes(out.OutputData)
	if got.Uint64() != 42 {
		t.Fatalf("SLOAD result = %d, want 42", got.Uint64())
	}
}

func TestStaticModeViolationOnSstore(t *testing.T) {
	code := []byte{
		byte(PUSH1), 1,
		byte(PUSH1), 0,
		byte(SSTORE),
	}
	img := Analyze(code)
	msg := &Message{Gas: 100000, IsStatic: true, Value: new(uint256.Int)}
	out := ExecuteSync(newFakeHost(), img, msg, London, nil)
	if out.StatusCode != StaticModeViolation {
		t.Fatalf("status = %v, want StaticModeViolation", out.StatusCode)
	}
}

func TestSelfdestructTerminatesWithSuccess(t *testing.T) {
	// PUSH20 <20 zero bytes>; SELFDESTRUCT
	code := append([]byte{byte(PUSH20)}, make([]byte, 20)...)
	code = append(code, byte(SELFDESTRUCT))
	out := runCode(t, code, 100000)
	if out.StatusCode != Success {
		t.Fatalf("status = %v, want Success", out.StatusCode)
	}
}

func TestResumableInterruptProtocol(t *testing.T) {
	code := []byte{
		byte(PUSH1), 1,
		byte(PUSH1), 0,
		byte(SSTORE),
		byte(STOP),
	}
	img := Analyze(code)
	msg := &Message{Gas: 100000, Value: new(uint256.Int)}

	in := ExecuteResumable(img, msg, London, nil)
	host := newFakeHost()
	steps := 0
	for !in.Finished() {
		steps++
		if steps > 1000 {
			t.Fatal("execution did not terminate")
		}
		reply := ServeHost(host, in.Request())
		in = in.Resume(reply)
	}
	if in.Output().StatusCode != Success {
		t.Fatalf("status = %v, want Success", in.Output().StatusCode)
	}
	if steps == 0 {
		t.Fatal("expected at least one suspension for SSTORE")
	}
}

func TestTracerObservesSteps(t *testing.T) {
	code := []byte{byte(PUSH1), 1, byte(PUSH1), 2, byte(ADD), byte(STOP)}
	img := Analyze(code)
	msg := &Message{Gas: 100000, Value: new(uint256.Int)}
	tracer := NewStructLogTracer()
	out := ExecuteSync(newFakeHost(), img, msg, London, tracer)
	if out.StatusCode != Success {
		t.Fatalf("status = %v, want Success", out.StatusCode)
	}
	if len(tracer.Logs) != 4 {
		t.Fatalf("traced %d steps, want 4", len(tracer.Logs))
	}
}

func TestUndefinedInstructionBeforeRevision(t *testing.T) {
	// PUSH0 was introduced in Shanghai/London; run it under Byzantium.
	code := []byte{byte(PUSH0)}
	img := Analyze(code)
	msg := &Message{Gas: 100000, Value: new(uint256.Int)}
	out := ExecuteSync(newFakeHost(), img, msg, Byzantium, nil)
	if out.StatusCode != UndefinedInstruction {
		t.Fatalf("status = %v, want UndefinedInstruction", out.StatusCode)
	}
}

// "hello" via MSTORE8+RETURN at gas=200.
func TestHelloViaMstore8(t *testing.T) {
	code := []byte{
		0x60, 0x68, 0x60, 0x00, 0x53,
		0x60, 0x65, 0x60, 0x01, 0x53,
		0x60, 0x6C, 0x60, 0x02, 0x53,
		0x60, 0x6C, 0x60, 0x03, 0x53,
		0x60, 0x6F, 0x60, 0x04, 0x53,
		0x60, 0x05, 0x60, 0x00, 0xF3,
	}
	out := runCode(t, code, 200)
	if out.StatusCode != Success {
		t.Fatalf("status = %v, want Success", out.StatusCode)
	}
	if out.GasLeft != 146 {
		t.Fatalf("gas_left = %d, want 146", out.GasLeft)
	}
	if string(out.OutputData) != "hello" {
		t.Fatalf("output = %q, want %q", out.OutputData, "hello")
	}
	if out.CreateAddress != nil {
		t.Fatalf("create_address = %v, want nil", out.CreateAddress)
	}
}

// BASEFEE is undefined before London.
func TestBaseFeeUndefinedBeforeLondon(t *testing.T) {
	code := []byte{byte(BASEFEE)}
	img := Analyze(code)
	msg := &Message{Gas: 100000, Value: new(uint256.Int)}
	out := ExecuteSync(newFakeHost(), img, msg, Berlin, nil)
	if out.StatusCode != UndefinedInstruction {
		t.Fatalf("status = %v, want UndefinedInstruction", out.StatusCode)
	}
	if out.GasLeft != 0 {
		t.Fatalf("gas_left = %d, want 0", out.GasLeft)
	}
}

// BASEFEE at London reads tx_context.block_base_fee.
func TestBaseFeeAtLondon(t *testing.T) {
	code := []byte{byte(BASEFEE), byte(STOP)}
	img := Analyze(code)
	msg := &Message{Gas: 100000, Value: new(uint256.Int)}
	h := newFakeHost()
	h.txContext = TxContext{BlockBaseFee: uint256.NewInt(7)}
	out := ExecuteSync(h, img, msg, London, nil)
	if out.StatusCode != Success {
		t.Fatalf("status = %v, want Success", out.StatusCode)
	}
	if out.GasLeft != 100000-2 {
		t.Fatalf("gas_used = %d, want 2", 100000-out.GasLeft)
	}
}

func TestBaseFeeAtLondonReturnsValue(t *testing.T) {
	// BASEFEE; PUSH1 0; MSTORE; PUSH1 32; PUSH1 0; RETURN
	code := []byte{
		byte(BASEFEE),
		byte(PUSH1), 0, byte(MSTORE),
		byte(PUSH1), 32, byte(PUSH1), 0, byte(RETURN),
	}
	img := Analyze(code)
	msg := &Message{Gas: 100000, Value: new(uint256.Int)}
	h := newFakeHost()
	h.txContext = TxContext{BlockBaseFee: uint256.NewInt(7)}
	out := ExecuteSync(h, img, msg, London, nil)
	if out.StatusCode != Success {
		t.Fatalf("status = %v, want Success", out.StatusCode)
	}
	if got := 100000 - out.GasLeft; got != 17 {
		t.Fatalf("gas_used = %d, want 17", got)
	}
	var got uint256.Int
	got.SetBytes(out.OutputData)
	if got.Uint64() != 7 {
		t.Fatalf("output = %d, want 7", got.Uint64())
	}
}

// DELEGATECALL forwards the current frame's Sender, Value and IsStatic,
// and increments Depth, into the nested Message the host observes.
func TestDelegateCallForwardsValueAndStatic(t *testing.T) {
	code := []byte{
		byte(PUSH1), 1, // retSize
		byte(PUSH1), 0, // retOffset
		byte(PUSH1), 0, // argsSize
		byte(PUSH1), 0, // argsOffset
		byte(PUSH1), 0, // addr
		byte(PUSH1), 1, // gas
		byte(DELEGATECALL),
	}
	img := Analyze(code)
	sender := types.BytesToAddress([]byte{0xAB})
	value := uint256.NewInt(42)
	msg := &Message{
		Gas:      100000,
		IsStatic: true,
		Depth:    3,
		Sender:   sender,
		Value:    value,
	}
	h := newFakeHost()
	var seen *Message
	h.onCall = func(m *Message) Output {
		seen = m
		return Output{StatusCode: Success}
	}
	out := ExecuteSync(h, img, msg, London, nil)
	if out.StatusCode != Success {
		t.Fatalf("status = %v, want Success", out.StatusCode)
	}
	if seen == nil {
		t.Fatal("expected a nested Call suspension")
	}
	if seen.Depth != 4 {
		t.Fatalf("nested depth = %d, want 4", seen.Depth)
	}
	if !seen.IsStatic {
		t.Fatal("nested IsStatic = false, want true")
	}
	if seen.Gas != 1 {
		t.Fatalf("nested gas = %d, want 1", seen.Gas)
	}
	if seen.Sender != sender {
		t.Fatalf("nested sender = %v, want %v", seen.Sender, sender)
	}
	if seen.Value.Cmp(value) != 0 {
		t.Fatalf("nested value = %v, want %v", seen.Value, value)
	}
}

// Cold/warm discipline at Berlin: the same address costs more on its
// first BALANCE than its second within one frame.
func TestColdWarmBalanceDiscipline(t *testing.T) {
	// BALANCE; POP; BALANCE; POP; STOP, same address pushed each time.
	addrPush := []byte{byte(PUSH1), 0xAA}
	code := []byte{}
	code = append(code, addrPush...)
	code = append(code, byte(BALANCE), byte(POP))
	code = append(code, addrPush...)
	code = append(code, byte(BALANCE), byte(POP))
	code = append(code, byte(STOP))

	img := Analyze(code)
	msg := &Message{Gas: 1_000_000, Value: new(uint256.Int)}
	tracer := NewStructLogTracer()
	out := ExecuteSync(newFakeHost(), img, msg, Berlin, tracer)
	if out.StatusCode != Success {
		t.Fatalf("status = %v, want Success", out.StatusCode)
	}

	var gasBeforeFirst, gasAfterFirst, gasBeforeSecond, gasAfterSecond int64
	balanceSeen := 0
	for i, l := range tracer.Logs {
		if l.Op != BALANCE {
			continue
		}
		balanceSeen++
		if balanceSeen == 1 {
			gasBeforeFirst = l.GasLeft
			gasAfterFirst = tracer.Logs[i+1].GasLeft
		} else {
			gasBeforeSecond = l.GasLeft
			gasAfterSecond = tracer.Logs[i+1].GasLeft
		}
	}
	firstCost := gasBeforeFirst - gasAfterFirst
	secondCost := gasBeforeSecond - gasAfterSecond
	if firstCost-secondCost != int64(AdditionalColdAccountAccessCost) {
		t.Fatalf("cold-warm delta = %d, want %d", firstCost-secondCost, AdditionalColdAccountAccessCost)
	}
}

// CALL with an empty balance must fail fast: no nested Call suspension,
// stack top 0, and the gas-forwarding deduction never happens.
func TestCallInsufficientBalanceFailsFast(t *testing.T) {
	code := []byte{
		byte(PUSH1), 0, // retSize
		byte(PUSH1), 0, // retOffset
		byte(PUSH1), 0, // argsSize
		byte(PUSH1), 0, // argsOffset
		byte(PUSH1), 1, // value
		byte(PUSH1), 0, // addr
		byte(PUSH2), 0xFF, 0xFF, // gas
		byte(CALL),
		byte(PUSH1), 0,
		byte(MSTORE),
		byte(PUSH1), 32,
		byte(PUSH1), 0,
		byte(RETURN),
	}
	img := Analyze(code)
	msg := &Message{Gas: 1_000_000, Value: new(uint256.Int)}
	h := newFakeHost()
	called := false
	h.onCall = func(*Message) Output {
		called = true
		return Output{StatusCode: Success}
	}
	out := ExecuteSync(h, img, msg, London, nil)
	if out.StatusCode != Success {
		t.Fatalf("status = %v, want Success", out.StatusCode)
	}
	if called {
		t.Fatal("expected no nested Call suspension on insufficient balance")
	}
	var got uint256.Int
	got.SetBytes(out.OutputData)
	if !got.IsZero() {
		t.Fatalf("stack top = %d, want 0", got.Uint64())
	}
}

// CREATE with an endowment greater than the creating account's own balance
// must fail fast: no nested Call suspension, 0 pushed as the new address.
func TestCreateInsufficientBalanceFailsFast(t *testing.T) {
	code := []byte{
		byte(PUSH1), 0, // size
		byte(PUSH1), 0, // offset
		byte(PUSH1), 1, // value (endowment)
		byte(CREATE),
		byte(PUSH1), 0,
		byte(MSTORE),
		byte(PUSH1), 32,
		byte(PUSH1), 0,
		byte(RETURN),
	}
	img := Analyze(code)
	msg := &Message{Gas: 1_000_000, Value: new(uint256.Int)}
	h := newFakeHost()
	called := false
	h.onCall = func(*Message) Output {
		called = true
		return Output{StatusCode: Success}
	}
	out := ExecuteSync(h, img, msg, London, nil)
	if out.StatusCode != Success {
		t.Fatalf("status = %v, want Success", out.StatusCode)
	}
	if called {
		t.Fatal("expected no nested Call suspension on insufficient balance")
	}
	var got uint256.Int
	got.SetBytes(out.OutputData)
	if !got.IsZero() {
		t.Fatalf("stack top = %d, want 0", got.Uint64())
	}
}

// Before Tangerine Whistle, CALL forwards exactly the requested gas (no
// 63/64 discount); requesting more than what's left must OutOfGas rather
// than silently capping.
func TestCallGasForwardingPreTangerineRequiresExactFit(t *testing.T) {
	code := []byte{
		byte(PUSH1), 0, // retSize
		byte(PUSH1), 0, // retOffset
		byte(PUSH1), 0, // argsSize
		byte(PUSH1), 0, // argsOffset
		byte(PUSH1), 0, // value
		byte(PUSH1), 0, // addr
		byte(PUSH4), 0x00, 0x0F, 0x42, 0x40, // gas = 1_000_000, more than available
		byte(CALL),
		byte(STOP),
	}
	img := Analyze(code)
	msg := &Message{Gas: 100_000, Value: new(uint256.Int)}
	h := newFakeHost()
	out := ExecuteSync(h, img, msg, Frontier, nil)
	if out.StatusCode != OutOfGas {
		t.Fatalf("status = %v, want OutOfGas", out.StatusCode)
	}
}

// At exactly Tangerine Whistle, SELFDESTRUCT charges the new-account
// surcharge whenever the beneficiary doesn't exist, regardless of the
// destructing account's own balance.
func TestSelfdestructChargesNewAccountSurchargeAtTangerine(t *testing.T) {
	code := append([]byte{byte(PUSH20)}, make([]byte, 20)...)
	code = append(code, byte(SELFDESTRUCT))
	img := Analyze(code)
	msg := &Message{Gas: 100000, Value: new(uint256.Int)}
	h := newFakeHost()

	withSurcharge := ExecuteSync(h, img, msg, Tangerine, nil)
	if withSurcharge.StatusCode != Success {
		t.Fatalf("status = %v, want Success", withSurcharge.StatusCode)
	}

	withoutSurcharge := ExecuteSync(newFakeHost(), img, msg, Homestead, nil)
	if withSurcharge.GasLeft >= withoutSurcharge.GasLeft {
		t.Fatalf("gasLeft at Tangerine (%d) should be less than pre-Tangerine (%d) due to the new-account surcharge",
			withSurcharge.GasLeft, withoutSurcharge.GasLeft)
	}
}

// BLOCKHASH must resolve to 0 without ever suspending GetBlockHash when the
// requested block number falls outside [current-256, current).
func TestBlockHashOutOfWindowResolvesToZeroWithoutSuspending(t *testing.T) {
	code := []byte{
		byte(PUSH1), 5, // block number requested, far outside the window
		byte(BLOCKHASH),
		byte(PUSH1), 0,
		byte(MSTORE),
		byte(PUSH1), 32,
		byte(PUSH1), 0,
		byte(RETURN),
	}
	img := Analyze(code)
	msg := &Message{Gas: 100000, Value: new(uint256.Int)}
	h := newFakeHost()
	h.txContext = TxContext{BlockNumber: 1_000_000}
	blockHashCalled := false

	out := ExecuteSync(&blockHashSpyHost{fakeHost: h, onBlockHash: func() { blockHashCalled = true }}, img, msg, London, nil)
	if out.StatusCode != Success {
		t.Fatalf("status = %v, want Success", out.StatusCode)
	}
	if blockHashCalled {
		t.Fatal("expected GetBlockHash to never be suspended for an out-of-window block number")
	}
	var got uint256.Int
	got.SetBytes(out.OutputData)
	if !got.IsZero() {
		t.Fatalf("result = %d, want 0", got.Uint64())
	}
}

// blockHashSpyHost wraps fakeHost to observe whether GetBlockHash is called.
type blockHashSpyHost struct {
	*fakeHost
	onBlockHash func()
}

func (h *blockHashSpyHost) GetBlockHash(n uint64) types.Hash {
	h.onBlockHash()
	return h.fakeHost.GetBlockHash(n)
}

// BLOCKHASH must suspend GetBlockHash when the requested number is inside
// the [current-256, current) window.
func TestBlockHashInWindowSuspendsGetBlockHash(t *testing.T) {
	code := []byte{
		byte(PUSH1), 10,
		byte(BLOCKHASH),
		byte(PUSH1), 0,
		byte(MSTORE),
		byte(PUSH1), 32,
		byte(PUSH1), 0,
		byte(RETURN),
	}
	img := Analyze(code)
	msg := &Message{Gas: 100000, Value: new(uint256.Int)}
	h := newFakeHost()
	h.txContext = TxContext{BlockNumber: 20}
	blockHashCalled := false
	out := ExecuteSync(&blockHashSpyHost{fakeHost: h, onBlockHash: func() { blockHashCalled = true }}, img, msg, London, nil)
	if out.StatusCode != Success {
		t.Fatalf("status = %v, want Success", out.StatusCode)
	}
	if !blockHashCalled {
		t.Fatal("expected GetBlockHash to be suspended for an in-window block number")
	}
}

package vm

import "github.com/holiman/uint256"

// Memory is the EVM's byte-addressable scratch space: zero-initialized,
// grows in 32-byte words, never shrinks within a frame.
type Memory struct {
	store []byte
}

// NewMemory returns a new, empty Memory.
func NewMemory() *Memory {
	return &Memory{}
}

// Len returns the current size of memory in bytes (always a multiple of 32).
func (m *Memory) Len() int {
	return len(m.store)
}

// words returns the number of 32-byte words memory of the given byte size
// occupies, rounding up.
func words(size uint64) uint64 {
	return (size + 31) / 32
}

// expand grows memory to cover newSize bytes if it does not already, and
// returns the quadratic expansion cost of doing so (0 if no growth is
// needed). Cost formula: 3*(new_w-old_w) + (new_w^2-old_w^2)/512.
func (m *Memory) expand(newSize uint64) uint64 {
	if newSize <= uint64(len(m.store)) {
		return 0
	}
	oldWords := words(uint64(len(m.store)))
	newWords := words(newSize)
	cost := memoryExpansionCost(newWords) - memoryExpansionCost(oldWords)

	target := newWords * 32
	grown := make([]byte, target-uint64(len(m.store)))
	m.store = append(m.store, grown...)
	return cost
}

func memoryExpansionCost(w uint64) uint64 {
	return 3*w + (w*w)/512
}

// verifyRegion validates an (offset,size) pair taken off the stack as
// 256-bit words, expands memory to cover it, and returns the byte bounds
// plus the expansion gas cost. ok is false when size==0 (no region to
// touch) or when either value exceeds the 32-bit range this interpreter
// allows for memory addressing.
func verifyRegion(m *Memory, offset, size *uint256.Int) (off, sz uint64, cost uint64, ok bool, rangeErr bool) {
	if size.IsZero() {
		return 0, 0, 0, false, false
	}
	if !offset.IsUint64() || !size.IsUint64() {
		return 0, 0, 0, false, true
	}
	o, s := offset.Uint64(), size.Uint64()
	if o > 0xFFFFFFFF || s > 0xFFFFFFFF || o+s > 0xFFFFFFFF {
		return 0, 0, 0, false, true
	}
	cost = m.expand(o + s)
	return o, s, cost, true, false
}

// Set copies value into memory at the given offset. The region must
// already have been expanded to cover it.
func (m *Memory) Set(offset, size uint64, value []byte) {
	if size == 0 {
		return
	}
	copy(m.store[offset:offset+size], value)
}

// Set32 writes a 32-byte big-endian word at the given offset.
func (m *Memory) Set32(offset uint64, val *uint256.Int) {
	b := val.Bytes32()
	copy(m.store[offset:offset+32], b[:])
}

// Get returns a copy of memory contents in [offset, offset+size), padding
// with zeros where the region extends past what is currently backed.
func (m *Memory) Get(offset, size uint64) []byte {
	if size == 0 {
		return nil
	}
	out := make([]byte, size)
	if offset < uint64(len(m.store)) {
		end := offset + size
		if end > uint64(len(m.store)) {
			end = uint64(len(m.store))
		}
		copy(out, m.store[offset:end])
	}
	return out
}

// GetPtr returns a direct slice reference to memory at [offset, offset+size).
// The caller must not retain it past the next mutation.
func (m *Memory) GetPtr(offset, size uint64) []byte {
	if size == 0 {
		return nil
	}
	return m.store[offset : offset+size]
}

// Data returns the full backing slice.
func (m *Memory) Data() []byte {
	return m.store
}

package vm

import "github.com/holiman/uint256"

// stackLimit is the hard cap on operand stack depth.
const stackLimit = 1024

// Stack is the EVM operand stack: up to 1024 256-bit words, push/pop at the
// top, indexable by depth from the top.
type Stack struct {
	data []uint256.Int
}

// NewStack returns a new empty stack with room for a typical frame.
func NewStack() *Stack {
	return &Stack{data: make([]uint256.Int, 0, 16)}
}

// Len returns the number of items currently on the stack.
func (st *Stack) Len() int {
	return len(st.data)
}

// Push pushes val onto the stack. The caller must have already checked
// capacity; Push panics on overflow to surface a logic bug rather than
// silently truncating.
func (st *Stack) Push(val *uint256.Int) {
	if len(st.data) >= stackLimit {
		panic("vm: stack overflow")
	}
	st.data = append(st.data, *val)
}

// Pop removes and returns the top element.
func (st *Stack) Pop() uint256.Int {
	n := len(st.data) - 1
	v := st.data[n]
	st.data = st.data[:n]
	return v
}

// Peek returns a pointer to the top element without removing it.
func (st *Stack) Peek() *uint256.Int {
	return &st.data[len(st.data)-1]
}

// Back returns the nth element from the top (0-indexed: 0 = top) without
// removing it.
func (st *Stack) Back(n int) *uint256.Int {
	return &st.data[len(st.data)-1-n]
}

// Swap exchanges the top element with the nth element from the top
// (n=1 swaps top with second-from-top, i.e. SWAP1).
func (st *Stack) Swap(n int) {
	top := len(st.data) - 1
	st.data[top], st.data[top-n] = st.data[top-n], st.data[top]
}

// Dup duplicates the nth element from the top (1-indexed: 1 = top) and
// pushes the copy.
func (st *Stack) Dup(n int) {
	v := st.data[len(st.data)-n]
	st.data = append(st.data, v)
}

// Data returns the underlying stack slice, bottom to top. Callers must
// treat it as read-only; tracers that need a stable snapshot should copy it.
func (st *Stack) Data() []uint256.Int {
	return st.data
}

// reset empties the stack for reuse across frames without reallocating.
func (st *Stack) reset() {
	st.data = st.data[:0]
}

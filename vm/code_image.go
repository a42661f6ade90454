package vm

// CodeImage is the immutable, shareable product of analyzing a contract's
// bytecode once. Multiple concurrent frames may hold the same CodeImage;
// it never points back into any ExecutionState.
type CodeImage struct {
	code        []byte
	paddedCode  []byte
	jumpdestMap []bool
}

// Analyze scans code once, computing the jump-destination bitmap and a
// STOP-padded copy so PUSH decoding at any valid pc never reads out of
// bounds. Analysis never fails: empty code is valid (degenerates to STOP).
func Analyze(code []byte) *CodeImage {
	l := len(code)
	jumpdestMap := make([]bool, l)

	i := 0
	for i < l {
		op := OpCode(code[i])
		switch {
		case op == JUMPDEST:
			jumpdestMap[i] = true
			i++
		case op.IsPush():
			n := int(op-PUSH1) + 1
			i += n + 1
		default:
			i++
		}
	}

	// Pad enough STOP bytes that reading up to 32 immediate bytes at any
	// pc in [0,l) never runs past the end of paddedCode.
	padded := make([]byte, l, l+33)
	copy(padded, code)
	padded = append(padded, make([]byte, i-l+1)...)

	return &CodeImage{
		code:        code,
		paddedCode:  padded,
		jumpdestMap: jumpdestMap,
	}
}

// Code returns the original, unpadded bytecode.
func (c *CodeImage) Code() []byte { return c.code }

// Len returns the logical length of the code (excluding padding).
func (c *CodeImage) Len() int { return len(c.code) }

// opAt returns the opcode at pc in the padded code; pc is always valid for
// any pc < len(paddedCode), which the interpreter loop guarantees.
func (c *CodeImage) opAt(pc int) OpCode {
	return OpCode(c.paddedCode[pc])
}

// immediate returns up to n bytes starting at pc+1, reading from the
// padded code so a PUSHn at the tail of a contract never reads OOB.
func (c *CodeImage) immediate(pc, n int) []byte {
	start := pc + 1
	end := start + n
	if end > len(c.paddedCode) {
		end = len(c.paddedCode)
	}
	return c.paddedCode[start:end]
}

// ValidJumpDest reports whether dest is a lawful JUMP/JUMPI target: within
// bounds, a JUMPDEST opcode, and not inside a preceding PUSHn's immediate.
func (c *CodeImage) ValidJumpDest(dest uint64) bool {
	if dest >= uint64(len(c.jumpdestMap)) {
		return false
	}
	return c.jumpdestMap[dest]
}

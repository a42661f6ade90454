package vm

import "testing"

func TestAnalyzeJumpdest(t *testing.T) {
	// PUSH1 0x5b (pushes a byte matching JUMPDEST) ; JUMPDEST
	code := []byte{byte(PUSH1), 0x5b, byte(JUMPDEST)}
	img := Analyze(code)

	if img.jumpdestMap[1] {
		t.Fatalf("byte 1 is PUSH1 immediate data, must not be a valid jumpdest")
	}
	if !img.jumpdestMap[2] {
		t.Fatalf("byte 2 is a real JUMPDEST, must be valid")
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	code := []byte{byte(PUSH2), 0x01, 0x02, byte(JUMPDEST), byte(STOP)}
	a := Analyze(code)
	b := Analyze(a.Code())
	if len(a.jumpdestMap) != len(b.jumpdestMap) {
		t.Fatalf("idempotence: jumpdest map length differs")
	}
	for i := range a.jumpdestMap {
		if a.jumpdestMap[i] != b.jumpdestMap[i] {
			t.Fatalf("idempotence: jumpdest map differs at %d", i)
		}
	}
}

func TestAnalyzeEmptyCode(t *testing.T) {
	img := Analyze(nil)
	if img.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", img.Len())
	}
	if img.opAt(0) != STOP {
		t.Fatalf("reading past empty code must yield the STOP sentinel")
	}
}

func TestAnalyzePushAtTailNeverReadsOOB(t *testing.T) {
	// PUSH32 with no immediate bytes at all (truncated contract).
	code := []byte{byte(PUSH32)}
	img := Analyze(code)
	imm := img.immediate(0, 32)
	if len(imm) != 32 {
		t.Fatalf("expected 32 immediate bytes from the STOP padding, got %d", len(imm))
	}
	for i, b := range imm {
		if b != byte(STOP) {
			t.Fatalf("immediate byte %d = 0x%02x, want STOP padding", i, b)
		}
	}
}

func TestValidJumpDestOutOfBounds(t *testing.T) {
	img := Analyze([]byte{byte(STOP)})
	if img.ValidJumpDest(1000) {
		t.Fatalf("out-of-bounds destination must be invalid")
	}
}

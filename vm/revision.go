package vm

// Revision names a protocol upgrade. Revisions are totally ordered; opcode
// availability is decided by comparing the running revision against each
// instruction's introduced revision (see jump_table.go), and handlers
// compare against it for revision-dependent gas.
type Revision int

const (
	Frontier Revision = iota
	Homestead
	Tangerine
	Spurious
	Byzantium
	Constantinople
	Petersburg
	Istanbul
	Berlin
	London
)

// Shanghai is an alias for the latest revision this interpreter tracks.
// Shanghai introduced no new opcodes relevant to gas metering beyond
// London's; PUSH0 is already enabled from London in this interpreter, so
// Shanghai shares London's table.
const Shanghai = London

func (r Revision) String() string {
	switch r {
	case Frontier:
		return "Frontier"
	case Homestead:
		return "Homestead"
	case Tangerine:
		return "Tangerine Whistle"
	case Spurious:
		return "Spurious Dragon"
	case Byzantium:
		return "Byzantium"
	case Constantinople:
		return "Constantinople"
	case Petersburg:
		return "Petersburg"
	case Istanbul:
		return "Istanbul"
	case Berlin:
		return "Berlin"
	case London:
		return "London"
	default:
		return "unknown revision"
	}
}

// AtLeast reports whether r is at or after other in the revision ordering.
func (r Revision) AtLeast(other Revision) bool {
	return r >= other
}

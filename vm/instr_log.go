package vm

import "github.com/vorot93/evmodin/types"

// makeLog returns a handler for LOG0..LOG4: pop (offset, size) then n
// topics, and emit the event via the EmitLog suspension. Gas is GasLogBase
// plus GasLogTopic per topic plus GasLogData per byte of data.
func makeLog(n int) handlerFunc {
	return func(f *frame) error {
		s := f.state
		if s.message.IsStatic {
			return halt(StaticModeViolation)
		}

		offset := s.stack.Pop()
		size := s.stack.Pop()

		topics := make([]types.Hash, n)
		for i := 0; i < n; i++ {
			t := s.stack.Pop()
			topics[i] = types.BytesToHash(t.Bytes())
		}

		off, sz, err := chargeMemory(f, &offset, &size)
		if err != nil {
			return err
		}

		gas := GasLogTopic*uint64(n) + GasLogData*sz
		if err := chargeGas(f, gas); err != nil {
			return err
		}

		data := s.memory.Get(off, sz)
		f.suspend(EmitLog{Address: s.message.Destination, Topics: topics, Data: data})
		return nil
	}
}

package vm

// opSelfdestruct suspends a Selfdestruct request and then terminates the
// frame with Success immediately: this interpreter models pre-EIP-6780
// semantics — SELFDESTRUCT always registers destruction and ends the
// frame, it does not degenerate into a plain balance transfer.
func opSelfdestruct(f *frame) error {
	s := f.state
	if s.message.IsStatic {
		return halt(StaticModeViolation)
	}

	beneficiaryW := s.stack.Pop()
	beneficiary := wordToAddress(&beneficiaryW)

	if s.revision >= Berlin {
		if err := chargeColdAccess(f, beneficiary); err != nil {
			return err
		}
	}

	if s.revision >= Tangerine {
		chargeable := s.revision == Tangerine
		if !chargeable {
			balance := f.suspend(GetBalance{Address: s.message.Destination}).(Balance).Value
			chargeable = !balance.IsZero()
		}
		if chargeable {
			exists := f.suspend(AccountExists{Address: beneficiary}).(Bool).Value
			if !exists {
				if err := chargeGas(f, GasNewAccount); err != nil {
					return err
				}
			}
		}
	}

	f.suspend(Selfdestruct{Address: s.message.Destination, Beneficiary: beneficiary})
	return halt(Success)
}

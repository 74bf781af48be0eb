package automaton

// snapshotEpsilon is the literal used to spell ε-transitions in a Program's
// serialized form. It only has to round-trip through MarshalBinary and
// UnmarshalBinary, so any character outside the printable ASCII range used
// by patterns works.
const snapshotEpsilon = '\x00'

// MarshalBinary implements encoding.BinaryMarshaler by rendering the
// Program to its text form (ToText) and taking the UTF-8 bytes of that,
// so a Program can be handed directly to rezi.EncBinary (internal/rcache).
func (p *Program) MarshalBinary() ([]byte, error) {
	return []byte(p.ToText(snapshotEpsilon)), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler, the inverse of
// MarshalBinary, by parsing the text form with FromText.
func (p *Program) UnmarshalBinary(data []byte) error {
	parsed, err := FromText(string(data), snapshotEpsilon)
	if err != nil {
		return err
	}
	*p = *parsed
	return nil
}

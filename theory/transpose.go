package theory

// Transposition shifts any pitch class by a fixed signed number of
// semitones, wrapping around the octave. The zero value is the identity.
// Transpositions with equal shifts compare equal.
type Transposition struct {
	Shift int
}

// NewTransposition creates a transposition by shift semitones. Any signed
// amount is accepted; application always wraps into [0,11].
func NewTransposition(shift int) Transposition {
	return Transposition{Shift: shift}
}

// Apply shifts l by the transposition amount. Total over all inputs: even
// an out-of-range l is wrapped, matching the original morphism, which has
// no error path.
func (t Transposition) Apply(l PitchClass) PitchClass {
	return wrap(int(l) + t.Shift)
}

// IsIdentity reports whether the transposition fixes every pitch class.
func (t Transposition) IsIdentity() bool {
	return wrap(t.Shift) == 0
}

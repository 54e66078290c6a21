package theory

// Membership sets of the traditional Chinese modal system, measured in
// semitones above the tonic.
var (
	// The anhemitonic pentatonic degrees (gong, shang, jue, zhi, yu).
	pentatonicDegrees = []int{0, 2, 4, 7, 9}

	// Union of the degrees usable in the Qingyue, Yayue and Yanyue
	// heptatonic modes.
	heptatonicExtendedDegrees = []int{0, 2, 4, 5, 6, 7, 9, 10, 11}

	// Step sizes reachable without leaving pentatonic scale degrees.
	consonantSteps = []int{0, 2, 3, 4, 5, 7, 9}
)

func containsInt(set []int, v int) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// IsPentatonic reports whether scale degree s belongs to the anhemitonic
// pentatonic scale. Out-of-range input is false, not an error.
func IsPentatonic(s PitchClass) bool {
	return s.Valid() && containsInt(pentatonicDegrees, int(s))
}

// IsHeptatonicExtended reports whether scale degree s belongs to the
// Qingyue, Yayue or Yanyue heptatonic vocabulary. Out-of-range input is
// false, not an error.
func IsHeptatonicExtended(s PitchClass) bool {
	return s.Valid() && containsInt(heptatonicExtendedDegrees, int(s))
}

// IsConsonantInterval reports whether the interval from a to b can be
// sounded using only pentatonic scale degrees. The interval is admissible
// if either its ascending measure or its complementary measure lands on a
// pentatonic-compatible step size. Out-of-range input is false.
func IsConsonantInterval(a, b PitchClass) bool {
	if !a.Valid() || !b.Valid() {
		return false
	}
	c := int(b) - int(a)
	if c < 0 {
		c += 12
	}
	comp := 12 - c
	if comp < 0 {
		comp = -comp
	}
	return containsInt(consonantSteps, c) || containsInt(consonantSteps, comp)
}

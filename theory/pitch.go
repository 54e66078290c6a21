package theory

import (
	"errors"
	"fmt"
)

// PitchClass is an element of the 12-tone equal-tempered pitch space,
// an integer in [0,11] (0=C, 1=C#, ..., 11=B). The same range doubles as
// a scale degree when measured relative to a key's tonic.
type PitchClass int

var (
	// ErrPitchOutOfRange reports an integer outside [0,11] used where a
	// pitch class or scale degree is required. The original formulation
	// returns a -1 sentinel here; an explicit error keeps callers from
	// mistaking the sentinel for a pitch class.
	ErrPitchOutOfRange = errors.New("pitch class out of range [0,11]")

	// ErrUnknownLetter reports a letter name outside the 12-note vocabulary.
	ErrUnknownLetter = errors.New("unknown letter name")
)

// The two parallel human-readable vocabularies over the cyclic group:
// scale-degree names measured from the tonic, and absolute letter names.
var (
	scaleDegreeNames = [12]string{"1", "1#", "2", "2#", "3", "4", "4#", "5", "5#", "6", "6#", "7"}
	letterNames      = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
)

// Valid reports whether p lies in [0,11].
func (p PitchClass) Valid() bool {
	return p >= 0 && p <= 11
}

// wrap reduces an arbitrary integer into [0,11].
func wrap(n int) PitchClass {
	m := n % 12
	if m < 0 {
		m += 12
	}
	return PitchClass(m)
}

// DegreeLabel returns the scale-degree name for n (e.g. 4 -> "3").
func DegreeLabel(n PitchClass) (string, error) {
	if !n.Valid() {
		return "", fmt.Errorf("%w: %d", ErrPitchOutOfRange, n)
	}
	return scaleDegreeNames[n], nil
}

// LetterLabel returns the letter name for n (e.g. 4 -> "E").
func LetterLabel(n PitchClass) (string, error) {
	if !n.Valid() {
		return "", fmt.Errorf("%w: %d", ErrPitchOutOfRange, n)
	}
	return letterNames[n], nil
}

// ParseLetter resolves a letter name to its pitch class.
func ParseLetter(name string) (PitchClass, error) {
	for i, l := range letterNames {
		if l == name {
			return PitchClass(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLetter, name)
}

// Letters returns the letter-name vocabulary in pitch-class order.
func Letters() [12]string {
	return letterNames
}

package theory

import "fmt"

// Key models a key by its tonic pitch class. It carries the pair of
// mutually inverse gesture morphisms between the key's scale degrees and
// absolute pitch classes. Key is an immutable value; keys with the same
// tonic compare equal.
type Key struct {
	Tonic PitchClass
}

// NewKey resolves a tonic letter name into a Key.
func NewKey(letter string) (Key, error) {
	tonic, err := ParseLetter(letter)
	if err != nil {
		return Key{}, err
	}
	return Key{Tonic: tonic}, nil
}

// ToPitch maps a scale degree of the key to its absolute pitch class:
// (degree + tonic) mod 12.
func (k Key) ToPitch(degree PitchClass) (PitchClass, error) {
	if !degree.Valid() {
		return 0, fmt.Errorf("%w: degree %d", ErrPitchOutOfRange, degree)
	}
	return wrap(int(degree) + int(k.Tonic)), nil
}

// ToDegree maps an absolute pitch class to its scale degree in the key:
// (pitch - tonic) mod 12. Exact inverse of ToPitch over [0,11].
func (k Key) ToDegree(pitch PitchClass) (PitchClass, error) {
	if !pitch.Valid() {
		return 0, fmt.Errorf("%w: pitch %d", ErrPitchOutOfRange, pitch)
	}
	return wrap(int(pitch) - int(k.Tonic)), nil
}

// Letter returns the letter name of the key's tonic.
func (k Key) Letter() string {
	letter, err := LetterLabel(k.Tonic)
	if err != nil {
		// Unreachable for keys built through NewKey.
		return ""
	}
	return letter
}

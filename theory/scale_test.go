package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPentatonic_ExactMembership(t *testing.T) {
	pentatonic := map[PitchClass]bool{0: true, 2: true, 4: true, 7: true, 9: true}
	for s := PitchClass(0); s <= 11; s++ {
		assert.Equal(t, pentatonic[s], IsPentatonic(s), "degree %d", s)
	}
}

func TestIsPentatonic_OutOfRange(t *testing.T) {
	assert.False(t, IsPentatonic(-1))
	assert.False(t, IsPentatonic(12))
	assert.False(t, IsPentatonic(24)) // not wrapped; membership is over [0,11] only
}

func TestIsHeptatonicExtended_ExactMembership(t *testing.T) {
	// All degrees except the three outside the Qingyue, Yayue and Yanyue
	// modes.
	excluded := map[PitchClass]bool{1: true, 3: true, 8: true}
	count := 0
	for s := PitchClass(0); s <= 11; s++ {
		got := IsHeptatonicExtended(s)
		assert.Equal(t, !excluded[s], got, "degree %d", s)
		if got {
			count++
		}
	}
	assert.Equal(t, 9, count)
}

func TestIsHeptatonicExtended_OutOfRange(t *testing.T) {
	assert.False(t, IsHeptatonicExtended(-1))
	assert.False(t, IsHeptatonicExtended(12))
}

func TestIsConsonantInterval_Reflexive(t *testing.T) {
	for a := PitchClass(0); a <= 11; a++ {
		assert.True(t, IsConsonantInterval(a, a), "pitch %d", a)
	}
}

func TestIsConsonantInterval_Cases(t *testing.T) {
	// Ascending measure admissible.
	assert.True(t, IsConsonantInterval(0, 2))
	assert.True(t, IsConsonantInterval(0, 7))
	// Ascending measure 10 is inadmissible but its complement 2 is.
	assert.True(t, IsConsonantInterval(4, 2))
	// Ascending 11, complement 1: neither admissible.
	assert.False(t, IsConsonantInterval(0, 11))
	// Ascending 1, complement 11: neither admissible.
	assert.False(t, IsConsonantInterval(0, 1))
	// Symmetric by construction: c and 12-c swap roles.
	for a := PitchClass(0); a <= 11; a++ {
		for b := PitchClass(0); b <= 11; b++ {
			assert.Equal(t, IsConsonantInterval(a, b), IsConsonantInterval(b, a),
				"pitches %d,%d", a, b)
		}
	}
}

func TestIsConsonantInterval_OutOfRange(t *testing.T) {
	assert.False(t, IsConsonantInterval(-1, 0))
	assert.False(t, IsConsonantInterval(0, 12))
	assert.False(t, IsConsonantInterval(-1, 12))
}

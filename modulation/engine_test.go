package modulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modaltheory/honeray/theory"
)

func TestEvaluate_CToG(t *testing.T) {
	// C to G anchored on E -> D: E is the third of C (degree 4), the
	// transposition spans 10 semitones, and E lands on degree 7 of G.
	v, err := NewEvaluator().Evaluate("C", "G", "E", "D")
	require.NoError(t, err)

	assert.Equal(t, theory.PitchClass(4), v.StartDegree)
	assert.Equal(t, theory.PitchClass(7), v.EndDegree)
	assert.Equal(t, 10, v.Shift)

	assert.True(t, v.IsOrigin)
	assert.True(t, v.IsInterval)
	assert.True(t, v.IsNatural)
	assert.False(t, v.IsCommon)
	assert.True(t, v.IsTransition)
	assert.True(t, v.Valid)
}

func TestEvaluate_OriginFailure(t *testing.T) {
	// C to C# shares no pentatonic reinterpretation of either tonic, so
	// the origin condition sinks the modulation regardless of the notes.
	v, err := NewEvaluator().Evaluate("C", "C#", "C", "C")
	require.NoError(t, err)

	assert.False(t, v.IsOrigin)
	assert.False(t, v.Valid)
}

func TestEvaluate_Deterministic(t *testing.T) {
	e := NewEvaluator()
	first, err := e.Evaluate("C", "G", "E", "D")
	require.NoError(t, err)
	second, err := e.Evaluate("C", "G", "E", "D")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// A fresh evaluator sees no leaked state either.
	third, err := NewEvaluator().Evaluate("C", "G", "E", "D")
	require.NoError(t, err)
	assert.Equal(t, first, third)
}

func TestEvaluate_OverallFormula(t *testing.T) {
	e := NewEvaluator()
	letters := theory.Letters()
	for _, startKey := range []string{"C", "F#", "A"} {
		for _, endKey := range []string{"D", "G#"} {
			for _, startNote := range letters {
				for _, endNote := range letters {
					v, err := e.Evaluate(startKey, endKey, startNote, endNote)
					require.NoError(t, err)
					want := v.IsOrigin && v.IsInterval && v.IsNatural && (v.IsCommon || v.IsTransition)
					assert.Equal(t, want, v.Valid)

					conds := v.Conditions()
					assert.Equal(t, [ConditionCount]bool{
						v.IsOrigin, v.IsInterval, v.IsNatural, v.IsCommon, v.IsTransition,
					}, conds)
				}
			}
		}
	}
}

// The whole construction only depends on differences of letter indices,
// so shifting all four inputs by the same amount must not change the
// verdict's conditions.
func TestEvaluate_TranspositionInvariant(t *testing.T) {
	e := NewEvaluator()
	letters := theory.Letters()

	base, err := e.Evaluate("C", "G", "E", "D")
	require.NoError(t, err)

	for shift := 1; shift < 12; shift++ {
		sk := letters[(0+shift)%12]
		ek := letters[(7+shift)%12]
		sn := letters[(4+shift)%12]
		en := letters[(2+shift)%12]

		v, err := e.Evaluate(sk, ek, sn, en)
		require.NoError(t, err)
		assert.Equal(t, base.Conditions(), v.Conditions(), "shift %d", shift)
		assert.Equal(t, base.Valid, v.Valid, "shift %d", shift)
	}
}

func TestEvaluate_InvalidInputs(t *testing.T) {
	e := NewEvaluator()

	_, err := e.Evaluate("X", "G", "E", "D")
	assert.ErrorIs(t, err, ErrInvalidTonic)

	_, err = e.Evaluate("C", "H", "E", "D")
	assert.ErrorIs(t, err, ErrInvalidTonic)

	_, err = e.Evaluate("C", "G", "e", "D")
	assert.ErrorIs(t, err, ErrInvalidNote)

	_, err = e.Evaluate("C", "G", "E", "")
	assert.ErrorIs(t, err, ErrInvalidNote)
}

// Package modulation evaluates key changes in the 12-tone equal-tempered
// pitch space against Honeray's criterion, the gesture-theoretic rule for
// well-formed modulations in traditional Chinese pentatonic and heptatonic
// modal practice.
package modulation

import (
	"errors"
	"fmt"

	"github.com/modaltheory/honeray/theory"
)

var (
	// ErrInvalidTonic reports a key input that is not one of the 12
	// recognized letter names.
	ErrInvalidTonic = errors.New("invalid tonic letter")

	// ErrInvalidNote reports a note input that is not one of the 12
	// recognized letter names.
	ErrInvalidNote = errors.New("invalid note letter")
)

// ConditionCount is the number of named sub-conditions in Honeray's
// criterion.
const ConditionCount = 5

// ConditionNames are the human-readable names of the sub-conditions, in
// evaluation order.
var ConditionNames = [ConditionCount]string{
	"Origin Pentatonicity",
	"Interval Pentatonicity",
	"Naturality",
	"Pentatonic Commonality",
	"Transition Pentatonicity",
}

// Query identifies a single modulation: the old and new keys and the
// boundary note pair surrounding the key change.
type Query struct {
	StartKey  string `json:"start_key"`  // tonic letter of the old key
	EndKey    string `json:"end_key"`    // tonic letter of the new key
	StartNote string `json:"start_note"` // last note sounded in the old key
	EndNote   string `json:"end_note"`   // first note sounded in the new key
}

// Verdict is the outcome of evaluating one modulation against Honeray's
// criterion.
type Verdict struct {
	Query Query `json:"query"`

	// The five sub-conditions, in evaluation order.
	IsOrigin     bool `json:"is_origin"`     // a tonic reinterprets pentatonically in the other key
	IsInterval   bool `json:"is_interval"`   // the boundary interval is consonant
	IsNatural    bool `json:"is_natural"`    // both degrees fit the extended heptatonic vocabulary
	IsCommon     bool `json:"is_common"`     // pentatonic degrees sharing a fixed point
	IsTransition bool `json:"is_transition"` // a pentatonic bridge exists on one side

	// Valid is origin && interval && natural && (common || transition).
	Valid bool `json:"valid"`

	// Resolved quantities, kept for diagnostics.
	StartDegree theory.PitchClass `json:"start_degree"` // degree of the start note in the old key
	EndDegree   theory.PitchClass `json:"end_degree"`   // degree reached in the new key
	Shift       int               `json:"shift"`        // transposition amount in semitones, [0,11]
}

// Conditions returns the sub-condition results in their fixed order.
func (v *Verdict) Conditions() [ConditionCount]bool {
	return [ConditionCount]bool{v.IsOrigin, v.IsInterval, v.IsNatural, v.IsCommon, v.IsTransition}
}

// Evaluator applies Honeray's criterion to modulations. It is stateless
// and safe for concurrent use; the zero value is ready.
type Evaluator struct{}

// NewEvaluator creates a new criterion evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate applies Honeray's criterion to the modulation from startKey to
// endKey anchored at the boundary notes startNote and endNote. All four
// inputs must be letter names; an unrecognized key fails with
// ErrInvalidTonic and an unrecognized note with ErrInvalidNote, before any
// condition is evaluated.
func (e *Evaluator) Evaluate(startKey, endKey, startNote, endNote string) (*Verdict, error) {
	kx1, err := theory.NewKey(startKey)
	if err != nil {
		return nil, fmt.Errorf("%w: start key: %v", ErrInvalidTonic, err)
	}
	kx2, err := theory.NewKey(endKey)
	if err != nil {
		return nil, fmt.Errorf("%w: end key: %v", ErrInvalidTonic, err)
	}
	startPitch, err := theory.ParseLetter(startNote)
	if err != nil {
		return nil, fmt.Errorf("%w: start note: %v", ErrInvalidNote, err)
	}
	endPitch, err := theory.ParseLetter(endNote)
	if err != nil {
		return nil, fmt.Errorf("%w: end note: %v", ErrInvalidNote, err)
	}

	// Scale degree of the start note within the old key.
	s, err := kx1.ToDegree(startPitch)
	if err != nil {
		return nil, err
	}

	// Transposition spanned by the boundary notes, forced nonnegative.
	shift := (int(endPitch) - int(startPitch) + 12) % 12
	p := theory.NewTransposition(shift)

	// Modulation morphism m(s) = kx2^-1(p(kx1(s))): old-key degree to
	// absolute pitch, transpose, back to a degree in the new key.
	oldPitch, err := kx1.ToPitch(s)
	if err != nil {
		return nil, err
	}
	shifted := p.Apply(oldPitch)
	ms, err := kx2.ToDegree(shifted)
	if err != nil {
		return nil, err
	}
	newPitch, err := kx2.ToPitch(ms)
	if err != nil {
		return nil, err
	}

	// Each tonic reinterpreted as a degree of the other key.
	oldTonicInNew, err := kx2.ToDegree(kx1.Tonic)
	if err != nil {
		return nil, err
	}
	newTonicInOld, err := kx1.ToDegree(kx2.Tonic)
	if err != nil {
		return nil, err
	}

	// The two bridging reinterpretations of the boundary: the shifted
	// pitch read in the old key, and the unshifted pitch read in the new.
	bridgeOld, err := kx1.ToDegree(shifted)
	if err != nil {
		return nil, err
	}
	bridgeNew, err := kx2.ToDegree(oldPitch)
	if err != nil {
		return nil, err
	}

	v := &Verdict{
		Query: Query{
			StartKey:  startKey,
			EndKey:    endKey,
			StartNote: startNote,
			EndNote:   endNote,
		},
		StartDegree: s,
		EndDegree:   ms,
		Shift:       shift,
	}

	v.IsOrigin = theory.IsPentatonic(oldTonicInNew) || theory.IsPentatonic(newTonicInOld)
	v.IsInterval = theory.IsConsonantInterval(oldPitch, newPitch)
	v.IsNatural = theory.IsHeptatonicExtended(s) && theory.IsHeptatonicExtended(ms)
	v.IsCommon = theory.IsPentatonic(s) && theory.IsPentatonic(ms) &&
		(s == ms || oldPitch == shifted)
	v.IsTransition = (theory.IsPentatonic(bridgeOld) && theory.IsPentatonic(s)) ||
		(theory.IsPentatonic(bridgeNew) && theory.IsPentatonic(ms))

	v.Valid = v.IsOrigin && v.IsInterval && v.IsNatural && (v.IsCommon || v.IsTransition)
	return v, nil
}

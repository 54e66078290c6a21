package modulation

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/modaltheory/honeray/logging"
	"github.com/modaltheory/honeray/theory"
)

// TotalCombinations is the size of the full modulation space: 12 starting
// keys x 11 ending keys (a key never modulates to itself) x 12 starting
// notes x 12 ending notes.
const TotalCombinations = 12 * 11 * 12 * 12

// Report aggregates criterion results over the full modulation space.
type Report struct {
	ValidFraction float64 `json:"valid_fraction"` // fraction of combinations satisfying the criterion
	ValidCount    int     `json:"valid_count"`
	TotalCount    int     `json:"total_count"`

	// Valid-modulation counts indexed by the pitch class of the tonic.
	PerStartKey [12]int `json:"per_start_key"`
	PerEndKey   [12]int `json:"per_end_key"`

	// Transitions[i][j] counts valid modulations from tonic i to tonic j.
	// The diagonal is always zero.
	Transitions [12][12]int `json:"transitions"`

	// ConditionFailures[i] counts combinations for which sub-condition i
	// was false. A failing combination increments every condition it
	// violates, so the entries are independent, not mutually exclusive.
	ConditionFailures [ConditionCount]int `json:"condition_failures"`
}

// Sweep exhaustively enumerates every representable modulation and
// aggregates how often Honeray's criterion holds.
type Sweep struct {
	evaluator *Evaluator
	logger    logging.Logger
}

// NewSweep creates a sweep backed by a fresh evaluator and the global
// logger.
func NewSweep() *Sweep {
	return &Sweep{
		evaluator: NewEvaluator(),
		logger:    logging.GetGlobalLogger(),
	}
}

// Run enumerates all TotalCombinations modulations in fixed letter order
// and returns the aggregated report. The enumeration count is a hard
// invariant: a deviation from TotalCombinations means the enumeration
// itself is defective and Run fails rather than reporting partial counts.
func (sw *Sweep) Run() (*Report, error) {
	letters := theory.Letters()
	report := &Report{}
	indicators := make([]float64, 0, TotalCombinations)

	sw.logger.Debug("starting modulation sweep", logging.Fields{
		"combinations": TotalCombinations,
	})

	for si, startKey := range letters {
		for ei, endKey := range letters {
			if ei == si {
				continue
			}
			for _, startNote := range letters {
				for _, endNote := range letters {
					verdict, err := sw.evaluator.Evaluate(startKey, endKey, startNote, endNote)
					if err != nil {
						return nil, fmt.Errorf("sweep produced an unevaluable combination %s->%s (%s->%s): %w",
							startKey, endKey, startNote, endNote, err)
					}
					if verdict.Valid {
						indicators = append(indicators, 1)
						report.PerStartKey[si]++
						report.PerEndKey[ei]++
						report.Transitions[si][ei]++
					} else {
						indicators = append(indicators, 0)
						for i, ok := range verdict.Conditions() {
							if !ok {
								report.ConditionFailures[i]++
							}
						}
					}
				}
			}
		}
		sw.logger.Debug("swept starting key", logging.Fields{
			"key":   startKey,
			"valid": report.PerStartKey[si],
		})
	}

	if len(indicators) != TotalCombinations {
		return nil, fmt.Errorf("enumerated %d combinations, want %d", len(indicators), TotalCombinations)
	}

	report.TotalCount = len(indicators)
	report.ValidCount = int(floats.Sum(indicators))
	report.ValidFraction = stat.Mean(indicators, nil)

	sw.logger.Info("modulation sweep complete", logging.Fields{
		"valid":    report.ValidCount,
		"total":    report.TotalCount,
		"fraction": report.ValidFraction,
	})
	return report, nil
}

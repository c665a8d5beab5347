package align

import "fmt"

// Regime selects which alignment algorithm PairAlign dispatches to.
// Regimes are a closed, finite set known at build time, so they are
// modeled as a tagged enum dispatched from one entry point rather than a
// class hierarchy (spec section 9's "variant enums over inheritance").
type Regime int

const (
	GlobalAlignment Regime = iota
	SemiGlobalAlignment
	LocalAlignment
	EditDistanceRegime
	LevenshteinDistanceRegime
	HammingDistanceRegime
)

func (r Regime) String() string {
	switch r {
	case GlobalAlignment:
		return "global"
	case SemiGlobalAlignment:
		return "semi-global"
	case LocalAlignment:
		return "local"
	case EditDistanceRegime:
		return "edit-distance"
	case LevenshteinDistanceRegime:
		return "levenshtein"
	case HammingDistanceRegime:
		return "hamming"
	default:
		return "unknown"
	}
}

// Options carries the knobs PairAlign recognizes (spec section 6).
// ScoreOnly applies to the three scoring regimes, DistanceOnly to the
// three distance regimes; Banded/Lower/Upper are meaningful only for
// GlobalAlignment.
type Options struct {
	ScoreOnly    bool
	DistanceOnly bool
	Banded       bool
	Lower, Upper int
}

// PairAlign is the single dispatch entry point (spec section 4.11): it
// selects the DP engine for regime and returns the optimal score plus,
// unless score/distance-only was requested, the reconstructed alignment.
//
// model must be an *AffineGapScoreModel for the three scoring regimes, an
// *CostModel for EditDistanceRegime, or nil for
// LevenshteinDistanceRegime/HammingDistanceRegime (which don't take a
// caller-supplied model). Every (regime, options) combination returns a
// result or a specific error; nothing falls through unhandled.
func PairAlign(regime Regime, a, b Seq, model interface{}, opts Options) (*AlignmentResult, error) {
	switch regime {
	case GlobalAlignment:
		scoreModel, err := asScoreModel(model)
		if err != nil {
			return nil, err
		}
		if opts.Banded {
			return GlobalBanded(a, b, scoreModel, opts.Lower, opts.Upper, opts.ScoreOnly)
		}
		return Global(a, b, scoreModel, opts.ScoreOnly)

	case SemiGlobalAlignment:
		scoreModel, err := asScoreModel(model)
		if err != nil {
			return nil, err
		}
		return SemiGlobal(a, b, scoreModel, opts.ScoreOnly)

	case LocalAlignment:
		scoreModel, err := asScoreModel(model)
		if err != nil {
			return nil, err
		}
		return Local(a, b, scoreModel, opts.ScoreOnly)

	case EditDistanceRegime:
		costModel, err := asCostModel(model)
		if err != nil {
			return nil, err
		}
		return EditDistance(a, b, costModel, opts.DistanceOnly)

	case LevenshteinDistanceRegime:
		return Levenshtein(a, b, opts.DistanceOnly)

	case HammingDistanceRegime:
		return Hamming(a, b, opts.DistanceOnly)

	default:
		return nil, fmt.Errorf("unrecognized regime %v", regime)
	}
}

func asScoreModel(model interface{}) (*AffineGapScoreModel, error) {
	m, ok := model.(*AffineGapScoreModel)
	if !ok || m == nil {
		return nil, fmt.Errorf("this regime requires an *AffineGapScoreModel")
	}
	return m, nil
}

func asCostModel(model interface{}) (*CostModel, error) {
	m, ok := model.(*CostModel)
	if !ok || m == nil {
		return nil, fmt.Errorf("this regime requires a *CostModel")
	}
	return m, nil
}

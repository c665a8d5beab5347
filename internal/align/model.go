package align

import "fmt"

// SubstitutionMatrix looks up the score for aligning two symbols.
type SubstitutionMatrix interface {
	Score(a, b byte) int
}

// DichotomousSubstitutionMatrix scores every equal pair as match and every
// unequal pair as mismatch, short-circuiting on a == b.
//
// Grounded on internal/alignment.ScoringMatrix.Score, generalized to a
// reusable standalone substitution matrix rather than a field of the
// scoring model.
type DichotomousSubstitutionMatrix struct {
	Match, Mismatch int
}

// NewDichotomousSubstitutionMatrix builds a matrix scoring match for equal
// symbols and mismatch otherwise.
func NewDichotomousSubstitutionMatrix(match, mismatch int) *DichotomousSubstitutionMatrix {
	return &DichotomousSubstitutionMatrix{Match: match, Mismatch: mismatch}
}

// Score implements SubstitutionMatrix.
func (m *DichotomousSubstitutionMatrix) Score(a, b byte) int {
	if a == b {
		return m.Match
	}
	return m.Mismatch
}

// AffineGapScoreModel is the scoring model for the DP engines: a
// substitution matrix plus affine gap penalties. GapOpen and GapExtend are
// non-negative magnitudes; the DP subtracts them. The cost of a gap of
// length L >= 1 is GapOpen + L*GapExtend.
type AffineGapScoreModel struct {
	Submat    SubstitutionMatrix
	GapOpen   int
	GapExtend int
}

// NewAffineGapScoreModel validates and constructs a scoring model. Both
// penalties must be non-negative magnitudes.
func NewAffineGapScoreModel(submat SubstitutionMatrix, gapOpen, gapExtend int) (*AffineGapScoreModel, error) {
	if gapOpen < 0 {
		return nil, fmt.Errorf("gap open penalty must be non-negative, got %d", gapOpen)
	}
	if gapExtend < 0 {
		return nil, fmt.Errorf("gap extend penalty must be non-negative, got %d", gapExtend)
	}
	return &AffineGapScoreModel{Submat: submat, GapOpen: gapOpen, GapExtend: gapExtend}, nil
}

// gapOpenCost returns the cost charged for the first position of a new gap
// run: the one-time GapOpen surcharge plus that position's GapExtend.
func (m *AffineGapScoreModel) gapOpenCost() int {
	return m.GapOpen + m.GapExtend
}

// CostModel is the cost model for the edit-distance family: a substitution
// matrix of per-pair substitution costs (0 on match, positive on mismatch),
// plus linear insertion and deletion costs.
type CostModel struct {
	Submat        SubstitutionMatrix
	InsertionCost int
	DeletionCost  int
}

// NewCostModel validates and constructs a cost model. Costs must be
// non-negative.
func NewCostModel(submat SubstitutionMatrix, insertionCost, deletionCost int) (*CostModel, error) {
	if insertionCost < 0 {
		return nil, fmt.Errorf("insertion cost must be non-negative, got %d", insertionCost)
	}
	if deletionCost < 0 {
		return nil, fmt.Errorf("deletion cost must be non-negative, got %d", deletionCost)
	}
	return &CostModel{Submat: submat, InsertionCost: insertionCost, DeletionCost: deletionCost}, nil
}

// levenshteinCostModel is the fixed [x!=y] submat, unit-cost model used by
// the Levenshtein regime; callers never construct it directly.
var levenshteinCostModel = &CostModel{
	Submat:        &DichotomousSubstitutionMatrix{Match: 0, Mismatch: 1},
	InsertionCost: 1,
	DeletionCost:  1,
}

package alignment

import (
	"fmt"

	"github.com/aria-lang/alignflow-go/internal/align"
	"github.com/aria-lang/alignflow-go/internal/sequence"
)

// NeedlemanWunsch performs global alignment using the Needleman-Wunsch algorithm.
//
// Aligns the entire length of both sequences.
//
// Aria equivalent:
//
//	fn needleman_wunsch(seq1: Sequence, seq2: Sequence, scoring: ScoringMatrix) -> Alignment
//	  requires seq1.is_valid() and seq2.is_valid()
//	  requires seq1.len() > 0 and seq2.len() > 0
//	  ensures result.aligned_seq1.len() == result.aligned_seq2.len()
func NeedlemanWunsch(seq1, seq2 *sequence.Sequence, scoring *ScoringMatrix) (*Alignment, error) {
	if scoring == nil {
		scoring = DefaultDNA()
	}

	if seq1.Len() == 0 || seq2.Len() == 0 {
		return nil, fmt.Errorf("sequences must be non-empty")
	}

	model := scoring.toAffineModel()
	r, err := align.PairAlign(align.GlobalAlignment, align.WrapSequence(seq1), align.WrapSequence(seq2), model, align.Options{})
	if err != nil {
		return nil, err
	}
	return fromAlignResult(r, align.GlobalAlignment)
}

// SemiGlobalAlignment performs semi-global alignment.
//
// This is useful when one sequence should fit entirely within another,
// like aligning a read to a reference.
func SemiGlobalAlignment(seq1, seq2 *sequence.Sequence, scoring *ScoringMatrix) (*Alignment, error) {
	if scoring == nil {
		scoring = DefaultDNA()
	}

	if seq1.Len() == 0 || seq2.Len() == 0 {
		return nil, fmt.Errorf("sequences must be non-empty")
	}

	model := scoring.toAffineModel()
	r, err := align.PairAlign(align.SemiGlobalAlignment, align.WrapSequence(seq1), align.WrapSequence(seq2), model, align.Options{})
	if err != nil {
		return nil, err
	}
	return fromAlignResult(r, align.SemiGlobalAlignment)
}

// toAffineModel converts a legacy linear-gap ScoringMatrix into the affine
// model internal/align's engines expect. GapExtendPenalty's magnitude
// becomes the per-position extend cost; GapOpenPenalty's magnitude becomes
// the total one-time cost of a single-base gap, so the surcharge on top of
// extend is GapOpenPenalty's magnitude minus GapExtendPenalty's (floored at
// 0, in case a caller set a larger extend than open penalty).
func (s *ScoringMatrix) toAffineModel() *align.AffineGapScoreModel {
	submat := align.NewDichotomousSubstitutionMatrix(s.MatchScore, s.MismatchPenalty)
	extend := -s.GapExtendPenalty
	open := -s.GapOpenPenalty - extend
	if open < 0 {
		open = 0
	}
	model, _ := align.NewAffineGapScoreModel(submat, open, extend)
	return model
}

// fromAlignResult converts a PairAlign result into this package's
// Alignment, for callers built around its AlignedSeq1/AlignedSeq2 view.
// A result with no traceback (the empty local alignment when no
// similarity exists) converts to an empty Alignment rather than an
// error, matching the legacy SmithWaterman "no match" behavior.
func fromAlignResult(r *align.AlignmentResult, regime align.Regime) (*Alignment, error) {
	legacyType := Local
	switch regime {
	case align.GlobalAlignment:
		legacyType = Global
	case align.SemiGlobalAlignment:
		legacyType = SemiGlobal
	}

	if !r.HasAlignment {
		return NewAlignment("", "", r.Score, legacyType)
	}

	return NewAlignment(r.AlignedQuery, r.AlignedRef, r.Score, legacyType)
}

// AlignAgainstMultiple aligns a sequence against multiple targets under the
// given alignment regime (global, semi-global, or local).
//
// Aria equivalent:
//
//	fn align_against_multiple(query: Sequence, targets: [Sequence], scoring: ScoringMatrix)
//	  -> [(Int, Alignment)]
//	  requires query.is_valid()
//	  requires targets.len() > 0
//	  ensures result.len() == targets.len()
func AlignAgainstMultiple(query *sequence.Sequence, targets []*sequence.Sequence,
	scoring *ScoringMatrix, regime align.Regime) ([]IndexedAlignment, error) {
	if scoring == nil {
		scoring = DefaultDNA()
	}

	if len(targets) == 0 {
		return nil, fmt.Errorf("target list cannot be empty")
	}

	switch regime {
	case align.GlobalAlignment, align.SemiGlobalAlignment, align.LocalAlignment:
	default:
		return nil, fmt.Errorf("regime %v is not supported by AlignAgainstMultiple", regime)
	}

	model := scoring.toAffineModel()
	q := align.WrapSequence(query)

	results := make([]IndexedAlignment, len(targets))
	for i, target := range targets {
		r, err := align.PairAlign(regime, q, align.WrapSequence(target), model, align.Options{})
		if err != nil {
			return nil, err
		}
		a, err := fromAlignResult(r, regime)
		if err != nil {
			return nil, err
		}
		results[i] = IndexedAlignment{Index: i, Alignment: a}
	}

	return results, nil
}

// IndexedAlignment pairs an alignment with its index.
type IndexedAlignment struct {
	Index     int
	Alignment *Alignment
}

// FindBestAlignment finds the best alignment among multiple targets under
// the given alignment regime.
//
// Aria equivalent:
//
//	fn find_best_alignment(query: Sequence, targets: [Sequence], scoring: ScoringMatrix)
//	  -> Option<(Int, Alignment)>
//	  requires query.is_valid()
//	  requires targets.len() > 0
func FindBestAlignment(query *sequence.Sequence, targets []*sequence.Sequence,
	scoring *ScoringMatrix, regime align.Regime) (*IndexedAlignment, error) {
	alignments, err := AlignAgainstMultiple(query, targets, scoring, regime)
	if err != nil {
		return nil, err
	}

	if len(alignments) == 0 {
		return nil, nil
	}

	best := alignments[0]
	for _, a := range alignments[1:] {
		if a.Alignment.Score > best.Alignment.Score {
			best = a
		}
	}

	return &best, nil
}

// GlobalAlignmentScoreOnly calculates global alignment score without traceback.
func GlobalAlignmentScoreOnly(seq1, seq2 *sequence.Sequence, scoring *ScoringMatrix) (int, error) {
	if scoring == nil {
		scoring = DefaultDNA()
	}

	if seq1.Len() == 0 || seq2.Len() == 0 {
		return 0, fmt.Errorf("sequences must be non-empty")
	}

	model := scoring.toAffineModel()
	r, err := align.PairAlign(align.GlobalAlignment, align.WrapSequence(seq1), align.WrapSequence(seq2), model, align.Options{ScoreOnly: true})
	if err != nil {
		return 0, err
	}
	return r.Score, nil
}

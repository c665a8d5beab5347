package alignment

import (
	"fmt"
	"strings"

	"github.com/aria-lang/alignflow-go/internal/align"
	"github.com/aria-lang/alignflow-go/internal/sequence"
)

// Alignment represents the result of an alignment between two sequences.
//
// Aria equivalent:
//
//	struct Alignment
//	  aligned_seq1: String
//	  aligned_seq2: String
//	  score: Int
//	  start1: Int
//	  end1: Int
//	  start2: Int
//	  end2: Int
//	  alignment_type: AlignmentType
//	  identity: Float
//	  invariant self.aligned_seq1.len() == self.aligned_seq2.len()
//	  invariant self.identity >= 0.0 and self.identity <= 1.0
type Alignment struct {
	AlignedSeq1   string
	AlignedSeq2   string
	Score         int
	Start1        int
	End1          int
	Start2        int
	End2          int
	AlignmentType AlignmentType
	Identity      float64
}

// NewAlignment creates a new alignment result.
func NewAlignment(aligned1, aligned2 string, score int, alignType AlignmentType) (*Alignment, error) {
	if len(aligned1) != len(aligned2) {
		return nil, fmt.Errorf("aligned sequences must have equal length")
	}

	a := &Alignment{
		AlignedSeq1:   aligned1,
		AlignedSeq2:   aligned2,
		Score:         score,
		Start1:        0,
		End1:          len(aligned1),
		Start2:        0,
		End2:          len(aligned2),
		AlignmentType: alignType,
	}
	a.Identity = a.calculateIdentity()
	return a, nil
}

// NewAlignmentWithPositions creates an alignment with position information.
func NewAlignmentWithPositions(aligned1, aligned2 string, score int,
	start1, end1, start2, end2 int, alignType AlignmentType) (*Alignment, error) {
	if len(aligned1) != len(aligned2) {
		return nil, fmt.Errorf("aligned sequences must have equal length")
	}

	a := &Alignment{
		AlignedSeq1:   aligned1,
		AlignedSeq2:   aligned2,
		Score:         score,
		Start1:        start1,
		End1:          end1,
		Start2:        start2,
		End2:          end2,
		AlignmentType: alignType,
	}
	a.Identity = a.calculateIdentity()
	return a, nil
}

// calculateIdentity calculates the sequence identity.
func (a *Alignment) calculateIdentity() float64 {
	if len(a.AlignedSeq1) == 0 {
		return 0.0
	}

	matches := 0
	for i := 0; i < len(a.AlignedSeq1); i++ {
		if a.AlignedSeq1[i] == a.AlignedSeq2[i] && a.AlignedSeq1[i] != '-' {
			matches++
		}
	}
	return float64(matches) / float64(len(a.AlignedSeq1))
}

// Length returns the length of the alignment.
func (a *Alignment) Length() int {
	return len(a.AlignedSeq1)
}

// MatchCount returns the number of matches.
func (a *Alignment) MatchCount() int {
	count := 0
	for i := 0; i < len(a.AlignedSeq1); i++ {
		if a.AlignedSeq1[i] == a.AlignedSeq2[i] && a.AlignedSeq1[i] != '-' {
			count++
		}
	}
	return count
}

// MismatchCount returns the number of mismatches.
func (a *Alignment) MismatchCount() int {
	count := 0
	for i := 0; i < len(a.AlignedSeq1); i++ {
		if a.AlignedSeq1[i] != a.AlignedSeq2[i] &&
			a.AlignedSeq1[i] != '-' && a.AlignedSeq2[i] != '-' {
			count++
		}
	}
	return count
}

// GapsSeq1 returns the number of gaps in sequence 1.
func (a *Alignment) GapsSeq1() int {
	return strings.Count(a.AlignedSeq1, "-")
}

// GapsSeq2 returns the number of gaps in sequence 2.
func (a *Alignment) GapsSeq2() int {
	return strings.Count(a.AlignedSeq2, "-")
}

// TotalGaps returns the total number of gaps.
func (a *Alignment) TotalGaps() int {
	return a.GapsSeq1() + a.GapsSeq2()
}

// GapOpenings counts the number of gap openings.
func (a *Alignment) GapOpenings() int {
	openings := 0
	inGap1, inGap2 := false, false

	for i := 0; i < len(a.AlignedSeq1); i++ {
		if a.AlignedSeq1[i] == '-' && !inGap1 {
			openings++
			inGap1 = true
		} else if a.AlignedSeq1[i] != '-' {
			inGap1 = false
		}

		if a.AlignedSeq2[i] == '-' && !inGap2 {
			openings++
			inGap2 = true
		} else if a.AlignedSeq2[i] != '-' {
			inGap2 = false
		}
	}

	return openings
}

// ToCIGAR generates a CIGAR string representation.
func (a *Alignment) ToCIGAR() string {
	if len(a.AlignedSeq1) == 0 {
		return ""
	}

	var cigar strings.Builder
	currentOp := byte(0)
	count := 0

	for i := 0; i < len(a.AlignedSeq1); i++ {
		var op byte
		if a.AlignedSeq1[i] == '-' {
			op = 'I' // Insertion
		} else if a.AlignedSeq2[i] == '-' {
			op = 'D' // Deletion
		} else if a.AlignedSeq1[i] == a.AlignedSeq2[i] {
			op = 'M' // Match
		} else {
			op = 'X' // Mismatch
		}

		if op == currentOp {
			count++
		} else {
			if count > 0 {
				cigar.WriteString(fmt.Sprintf("%d%c", count, currentOp))
			}
			currentOp = op
			count = 1
		}
	}

	if count > 0 {
		cigar.WriteString(fmt.Sprintf("%d%c", count, currentOp))
	}

	return cigar.String()
}

// Format returns a formatted string representation of the alignment.
func (a *Alignment) Format() string {
	var matchLine strings.Builder
	for i := 0; i < len(a.AlignedSeq1); i++ {
		if a.AlignedSeq1[i] == a.AlignedSeq2[i] && a.AlignedSeq1[i] != '-' {
			matchLine.WriteByte('|')
		} else if a.AlignedSeq1[i] == '-' || a.AlignedSeq2[i] == '-' {
			matchLine.WriteByte(' ')
		} else {
			matchLine.WriteByte('.')
		}
	}

	return fmt.Sprintf("Seq1: %s\n      %s\nSeq2: %s\nScore: %d\nIdentity: %.1f%%\nCIGAR: %s",
		a.AlignedSeq1, matchLine.String(), a.AlignedSeq2,
		a.Score, a.Identity*100, a.ToCIGAR())
}

func (a *Alignment) String() string {
	return fmt.Sprintf("Alignment { score: %d, identity: %.1f%%, length: %d }",
		a.Score, a.Identity*100, a.Length())
}

// SmithWaterman performs local alignment using the Smith-Waterman algorithm.
//
// Finds the optimal local alignment between two sequences.
//
// Aria equivalent:
//
//	fn smith_waterman(seq1: Sequence, seq2: Sequence, scoring: ScoringMatrix) -> Alignment
//	  requires seq1.is_valid() and seq2.is_valid()
//	  requires seq1.len() > 0 and seq2.len() > 0
//	  ensures result.score >= 0
//	  ensures result.aligned_seq1.len() == result.aligned_seq2.len()
func SmithWaterman(seq1, seq2 *sequence.Sequence, scoring *ScoringMatrix) (*Alignment, error) {
	if scoring == nil {
		scoring = DefaultDNA()
	}

	if seq1.Len() == 0 || seq2.Len() == 0 {
		return nil, fmt.Errorf("sequences must be non-empty")
	}

	model := scoring.toAffineModel()
	r, err := align.PairAlign(align.LocalAlignment, align.WrapSequence(seq1), align.WrapSequence(seq2), model, align.Options{})
	if err != nil {
		return nil, err
	}
	return fromAlignResult(r, align.LocalAlignment)
}

// AlignmentScoreOnly calculates the local alignment score without building
// the aligned strings.
//
// The underlying local DP still fills the full (m+1)x(n+1) matrices, so
// space use is O(m*n), the same as SmithWaterman.
//
// Aria equivalent:
//
//	fn alignment_score_only(seq1: Sequence, seq2: Sequence, scoring: ScoringMatrix) -> Int
//	  requires seq1.is_valid() and seq2.is_valid()
//	  requires seq1.len() > 0 and seq2.len() > 0
func AlignmentScoreOnly(seq1, seq2 *sequence.Sequence, scoring *ScoringMatrix) (int, error) {
	if scoring == nil {
		scoring = DefaultDNA()
	}

	if seq1.Len() == 0 || seq2.Len() == 0 {
		return 0, fmt.Errorf("sequences must be non-empty")
	}

	model := scoring.toAffineModel()
	r, err := align.PairAlign(align.LocalAlignment, align.WrapSequence(seq1), align.WrapSequence(seq2), model, align.Options{ScoreOnly: true})
	if err != nil {
		return 0, err
	}
	return r.Score, nil
}

// SimpleAlign performs alignment using default settings.
//
// Aria equivalent:
//
//	fn simple_align(seq1: Sequence, seq2: Sequence) -> Alignment
//	  requires seq1.is_valid() and seq2.is_valid()
//	  requires seq1.len() > 0 and seq2.len() > 0
func SimpleAlign(seq1, seq2 *sequence.Sequence) (*Alignment, error) {
	return SmithWaterman(seq1, seq2, DefaultDNA())
}

// PercentIdentity calculates percent identity between two aligned sequences.
//
// Aria equivalent:
//
//	fn percent_identity(aligned1: String, aligned2: String) -> Float
//	  requires aligned1.len() == aligned2.len()
//	  requires aligned1.len() > 0
//	  ensures result >= 0.0 and result <= 100.0
func PercentIdentity(aligned1, aligned2 string) (float64, error) {
	if len(aligned1) != len(aligned2) {
		return 0, fmt.Errorf("aligned sequences must have equal length")
	}
	if len(aligned1) == 0 {
		return 0, fmt.Errorf("aligned sequences cannot be empty")
	}

	matches := 0
	for i := 0; i < len(aligned1); i++ {
		if aligned1[i] == aligned2[i] && aligned1[i] != '-' {
			matches++
		}
	}

	return float64(matches) / float64(len(aligned1)) * 100.0, nil
}

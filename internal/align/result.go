package align

import "strings"

// AlignmentResult carries the optimal score (or distance) for a pairalign
// call, plus the reconstructed alignment's printable views unless the
// caller asked for score-only. Grounded on internal/alignment.Alignment's
// AlignedSeq1/AlignedSeq2 view fields, generalized to the anchor-based
// representation.
type AlignmentResult struct {
	Score int

	// HasAlignment is false for score-only/distance-only results; the
	// fields below are zero-valued in that case.
	HasAlignment bool
	Alignment    *Alignment
	AlignedQuery string
	AlignedRef   string
}

func emptyResult(score int) *AlignmentResult {
	return &AlignmentResult{Score: score}
}

// newResult renders the printable views for a reconstructed alignment:
// the query on top with '-' for positions the reference consumes and the
// query doesn't (delete-family runs), the reference on bottom with '-'
// for positions only the query consumes (insert-family runs).
func newResult(score int, a, b Seq, alignment *Alignment) *AlignmentResult {
	var query, ref strings.Builder
	anchors := alignment.Anchors()
	seqPos, refPos := anchors[0].SeqPos, anchors[0].RefPos

	for _, anc := range anchors[1:] {
		switch {
		case IsMatchOp(anc.Op):
			for p := seqPos + 1; p <= anc.SeqPos; p++ {
				query.WriteByte(a.At(p))
			}
			for p := refPos + 1; p <= anc.RefPos; p++ {
				ref.WriteByte(b.At(p))
			}
		case IsInsertOp(anc.Op):
			for p := seqPos + 1; p <= anc.SeqPos; p++ {
				query.WriteByte(a.At(p))
				ref.WriteByte('-')
			}
		case IsDeleteOp(anc.Op):
			for p := refPos + 1; p <= anc.RefPos; p++ {
				query.WriteByte('-')
				ref.WriteByte(b.At(p))
			}
		}
		seqPos, refPos = anc.SeqPos, anc.RefPos
	}

	return &AlignmentResult{
		Score:        score,
		HasAlignment: true,
		Alignment:    alignment,
		AlignedQuery: query.String(),
		AlignedRef:   ref.String(),
	}
}

package align

// AlignmentAnchor marks a boundary between runs of identical operations.
// At this anchor, SeqPos and RefPos are the cumulative consumed lengths of
// the query and reference respectively; Op describes the run of
// operations ending at this anchor. The first anchor of every Alignment
// carries Start and records the alignment's starting offsets.
type AlignmentAnchor struct {
	SeqPos int
	RefPos int
	Op     Operation
}

// Alignment is an ordered, validated sequence of anchors. Construct one
// with NewAlignment; the invariants below are checked once at
// construction and never revisited, so a constructed Alignment is safe to
// share across goroutines.
//
// Invariants (spec section 3):
//   - anchors[0].Op == Start; no other anchor is Start.
//   - positions are non-decreasing along the list.
//   - the delta between consecutive anchors is consistent with the
//     later anchor's operation family (match: ds==dr>0, insert: ds>0
//     dr==0, delete: ds==0 dr>0).
//   - no two consecutive anchors (other than the leading Start) share an
//     operation; runs are maximally compressed.
type Alignment struct {
	anchors []AlignmentAnchor
}

// NewAlignment validates anchors and wraps them in an Alignment. The slice
// is copied so the caller's backing array can't mutate the result.
func NewAlignment(anchors []AlignmentAnchor) (*Alignment, error) {
	if len(anchors) == 0 {
		return nil, &InvalidAnchorsError{Index: 0, Reason: "alignment must have at least a START anchor"}
	}
	if anchors[0].Op != Start {
		return nil, &InvalidAnchorsError{Index: 0, Reason: "first anchor must be START"}
	}
	for k := 1; k < len(anchors); k++ {
		if anchors[k].Op == Start {
			return nil, &InvalidAnchorsError{Index: k, Reason: "only the first anchor may be START"}
		}
		prev, cur := anchors[k-1], anchors[k]
		if cur.SeqPos < prev.SeqPos || cur.RefPos < prev.RefPos {
			return nil, &InvalidAnchorsError{Index: k, Reason: "positions must be non-decreasing"}
		}
		ds, dr := cur.SeqPos-prev.SeqPos, cur.RefPos-prev.RefPos
		switch {
		case IsMatchOp(cur.Op):
			if ds != dr || ds <= 0 {
				return nil, &InvalidAnchorsError{Index: k, Reason: "match-family op requires ds == dr > 0"}
			}
		case IsInsertOp(cur.Op):
			if ds <= 0 || dr != 0 {
				return nil, &InvalidAnchorsError{Index: k, Reason: "insert-family op requires ds > 0, dr == 0"}
			}
		case IsDeleteOp(cur.Op):
			if ds != 0 || dr <= 0 {
				return nil, &InvalidAnchorsError{Index: k, Reason: "delete-family op requires ds == 0, dr > 0"}
			}
		default:
			return nil, &InvalidAnchorsError{Index: k, Reason: "unrecognized operation"}
		}
		if prev.Op != Start && prev.Op == cur.Op {
			return nil, &InvalidAnchorsError{Index: k, Reason: "consecutive anchors must not share an operation"}
		}
	}

	out := make([]AlignmentAnchor, len(anchors))
	copy(out, anchors)
	return &Alignment{anchors: out}, nil
}

// Anchors returns a copy of the anchor list.
func (a *Alignment) Anchors() []AlignmentAnchor {
	out := make([]AlignmentAnchor, len(a.anchors))
	copy(out, a.anchors)
	return out
}

// StartSeq returns the alignment's starting 0-based query offset.
func (a *Alignment) StartSeq() int { return a.anchors[0].SeqPos }

// StartRef returns the alignment's starting 0-based reference offset.
func (a *Alignment) StartRef() int { return a.anchors[0].RefPos }

// EndSeq returns the cumulative consumed query length at the last anchor.
func (a *Alignment) EndSeq() int { return a.anchors[len(a.anchors)-1].SeqPos }

// EndRef returns the cumulative consumed reference length at the last
// anchor.
func (a *Alignment) EndRef() int { return a.anchors[len(a.anchors)-1].RefPos }

// AlignedSequence pairs a query sequence with its Alignment against some
// reference, and exposes the 1-based reference bounds of the aligned
// region.
type AlignedSequence struct {
	Query     Seq
	Alignment *Alignment
}

// First returns the 1-based reference position of the first
// reference-consuming operation, or 0 if the alignment consumes no
// reference positions.
func (as *AlignedSequence) First() int {
	anchors := as.Alignment.anchors
	prevRef := anchors[0].RefPos
	for _, a := range anchors[1:] {
		if IsMatchOp(a.Op) || IsDeleteOp(a.Op) {
			return prevRef + 1
		}
		prevRef = a.RefPos
	}
	return 0
}

// Last returns the 1-based reference position of the last
// reference-consuming operation, or 0 if none exists.
func (as *AlignedSequence) Last() int {
	anchors := as.Alignment.anchors
	for k := len(anchors) - 1; k >= 1; k-- {
		if IsMatchOp(anchors[k].Op) || IsDeleteOp(anchors[k].Op) {
			return anchors[k].RefPos
		}
	}
	return 0
}

package align

import (
	"strconv"
	"strings"
)

// Cigar encodes an Alignment's anchors after START as run-length
// <length><letter> pairs (spec section 4.10). START itself carries no
// letter and is never emitted, per the Open Question decision recorded in
// SPEC_FULL.md section 6.
func Cigar(a *Alignment) (string, error) {
	anchors := a.Anchors()

	var sb strings.Builder
	prevSeq, prevRef := anchors[0].SeqPos, anchors[0].RefPos

	for _, anc := range anchors[1:] {
		var length int
		switch {
		case IsMatchOp(anc.Op):
			length = anc.SeqPos - prevSeq
		case IsInsertOp(anc.Op):
			length = anc.SeqPos - prevSeq
		case IsDeleteOp(anc.Op):
			length = anc.RefPos - prevRef
		}
		letter, err := anc.Op.Letter()
		if err != nil {
			return "", err
		}
		sb.WriteString(strconv.Itoa(length))
		sb.WriteByte(letter)
		prevSeq, prevRef = anc.SeqPos, anc.RefPos
	}

	return sb.String(), nil
}

// ParseCigar reconstructs an Alignment from a CIGAR string and the
// alignment's starting offsets, in the same units Alignment.StartSeq/
// StartRef return (0-based, consistent with spec section 3's anchor
// semantics). Parsing is strict: an unrecognized letter or a malformed
// run fails with CigarParseError.
func ParseCigar(cigar string, startSeq, startRef int) (*Alignment, error) {
	anchors := []AlignmentAnchor{{SeqPos: startSeq, RefPos: startRef, Op: Start}}
	seqPos, refPos := startSeq, startRef

	i := 0
	for i < len(cigar) {
		start := i
		for i < len(cigar) && cigar[i] >= '0' && cigar[i] <= '9' {
			i++
		}
		if i == start {
			return nil, &CigarParseError{Input: cigar, Reason: "expected a run length"}
		}
		length, err := strconv.Atoi(cigar[start:i])
		if err != nil {
			return nil, &CigarParseError{Input: cigar, Reason: "run length out of range"}
		}
		if length <= 0 {
			return nil, &CigarParseError{Input: cigar, Reason: "run length must be positive"}
		}
		if i >= len(cigar) {
			return nil, &CigarParseError{Input: cigar, Reason: "run missing an operation letter"}
		}

		op, err := OperationFromLetter(cigar[i])
		if err != nil {
			return nil, &CigarParseError{Input: cigar, Reason: err.Error()}
		}
		i++

		switch {
		case IsMatchOp(op):
			seqPos += length
			refPos += length
		case IsInsertOp(op):
			seqPos += length
		case IsDeleteOp(op):
			refPos += length
		}

		anchors = append(anchors, AlignmentAnchor{SeqPos: seqPos, RefPos: refPos, Op: op})
	}

	alignment, err := NewAlignment(anchors)
	if err != nil {
		return nil, &CigarParseError{Input: cigar, Reason: err.Error()}
	}
	return alignment, nil
}

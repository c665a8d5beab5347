package align

import "github.com/aria-lang/alignflow-go/internal/sequence"

// Seq is the minimal sequence interface the DP engines require: a 1-based
// indexable symbol lookup and a length. Any caller-supplied sequence type
// satisfying this can be aligned without the core depending on a concrete
// alphabet representation.
type Seq interface {
	Len() int
	At(i int) byte // 1-based
}

// rawSeq adapts a plain byte slice (already validated/normalized by the
// caller) to Seq. Used internally by tests and by callers that don't carry
// a sequence.Sequence.
type rawSeq []byte

func (s rawSeq) Len() int      { return len(s) }
func (s rawSeq) At(i int) byte { return s[i-1] }

// SequenceAdapter wraps an internal/sequence.Sequence so it can be passed
// directly to PairAlign and the DP engines.
type SequenceAdapter struct {
	seq *sequence.Sequence
}

// WrapSequence adapts seq to Seq.
func WrapSequence(seq *sequence.Sequence) *SequenceAdapter {
	return &SequenceAdapter{seq: seq}
}

// Len returns the number of bases.
func (a *SequenceAdapter) Len() int { return a.seq.Len() }

// At returns the 1-based base at position i.
func (a *SequenceAdapter) At(i int) byte { return a.seq.Bases[i-1] }

package align

// editOrigin records which of the three edit-distance alternatives won a
// cell, for traceback. Tie-break order (spec section 4.6): substitution,
// then deletion, then insertion.
type editOrigin uint8

const (
	editSub editOrigin = iota
	editDel
	editIns
)

// EditDistance computes the minimum-cost edit distance between a and b
// under model (spec section 4.6): a single cost matrix with substitution,
// deletion, and insertion moves.
func EditDistance(a, b Seq, model *CostModel, distanceOnly bool) (*AlignmentResult, error) {
	m, n := a.Len(), b.Len()

	d := make([]int, (m+1)*(n+1))
	idx := func(i, j int) int { return i*(n+1) + j }

	d[idx(0, 0)] = 0
	for i := 1; i <= m; i++ {
		d[idx(i, 0)] = i * model.DeletionCost
	}
	for j := 1; j <= n; j++ {
		d[idx(0, j)] = j * model.InsertionCost
	}

	var tb *traceback
	if !distanceOnly {
		tb = newTraceback(m+1, n+1)
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			sub := d[idx(i-1, j-1)] + model.Submat.Score(a.At(i), b.At(j))
			del := d[idx(i-1, j)] + model.DeletionCost
			ins := d[idx(i, j-1)] + model.InsertionCost

			best := sub
			origin := editSub
			if del < best {
				best = del
				origin = editDel
			}
			if ins < best {
				best = ins
				origin = editIns
			}

			d[idx(i, j)] = best
			if tb != nil {
				tb.at(i, j).h = matOrigin(origin)
			}
		}
	}

	distance := d[idx(m, n)]

	if distanceOnly {
		return emptyResult(distance), nil
	}

	anchors := tracebackEdit(a, b, tb, m, n)
	alignment, err := NewAlignment(anchors)
	if err != nil {
		return nil, err
	}
	return newResult(distance, a, b, alignment), nil
}

func tracebackEdit(a, b Seq, tb *traceback, startI, startJ int) []AlignmentAnchor {
	i, j := startI, startJ
	builder := &opBuilder{}

	for i > 0 || j > 0 {
		if i == 0 {
			builder.push(Delete)
			j--
			continue
		}
		if j == 0 {
			builder.push(Insert)
			i--
			continue
		}

		switch editOrigin(tb.at(i, j).h) {
		case editSub:
			if a.At(i) == b.At(j) {
				builder.push(SeqMatch)
			} else {
				builder.push(SeqMismatch)
			}
			i--
			j--
		case editDel:
			// Consumes a[i] only (DeletionCost: delete a base from the
			// query to turn a into b), so in anchor terms this is an
			// insert-family run (ds > 0, dr == 0).
			builder.push(Insert)
			i--
		case editIns:
			// Consumes b[j] only (InsertionCost: insert a base to turn a
			// into b), an anchor delete-family run (ds == 0, dr > 0).
			builder.push(Delete)
			j--
		}
	}

	return builder.finish(0, 0)
}

// Levenshtein computes the Levenshtein distance: edit distance with unit
// substitution/insertion/deletion costs (spec section 4.7).
func Levenshtein(a, b Seq, distanceOnly bool) (*AlignmentResult, error) {
	return EditDistance(a, b, levenshteinCostModel, distanceOnly)
}

// Hamming computes the Hamming distance: the count of mismatched
// positions between two equal-length sequences (spec section 4.8). It
// fails with LengthMismatchError if the lengths differ.
func Hamming(a, b Seq, distanceOnly bool) (*AlignmentResult, error) {
	m, n := a.Len(), b.Len()
	if m != n {
		return nil, &LengthMismatchError{LenA: m, LenB: n}
	}

	mismatches := 0
	for i := 1; i <= m; i++ {
		if a.At(i) != b.At(i) {
			mismatches++
		}
	}

	if distanceOnly || m == 0 {
		return emptyResult(mismatches), nil
	}

	anchors := []AlignmentAnchor{
		{SeqPos: 0, RefPos: 0, Op: Start},
		{SeqPos: m, RefPos: m, Op: Match},
	}
	alignment, err := NewAlignment(anchors)
	if err != nil {
		return nil, err
	}
	return newResult(mismatches, a, b, alignment), nil
}

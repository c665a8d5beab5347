package align

// SemiGlobal computes the optimal semi-global alignment: the query (a)
// must be fully consumed, while leading and trailing gaps in the
// reference (b) are free (spec section 4.4). This is the right regime
// for aligning a short read into a longer reference.
func SemiGlobal(a, b Seq, model *AffineGapScoreModel, scoreOnly bool) (*AlignmentResult, error) {
	m, n := a.Len(), b.Len()
	if m == 0 {
		return emptyResult(0), nil
	}

	mat, tb := fillSemiGlobal(a, b, model)

	maxJ, maxScore := 0, mat.h[mat.idx(m, 0)]
	for j := 1; j <= n; j++ {
		if v := mat.h[mat.idx(m, j)]; v > maxScore {
			maxScore = v
			maxJ = j
		}
	}

	if scoreOnly {
		return emptyResult(maxScore), nil
	}

	anchors := tracebackSemiGlobal(a, b, tb, m, maxJ)
	alignment, err := NewAlignment(anchors)
	if err != nil {
		return nil, err
	}
	return newResult(maxScore, a, b, alignment), nil
}

// fillSemiGlobal is fillGlobal with the free-reference-end boundary:
// H[0][j] = 0 for every j, since no penalty is charged for skipping
// reference before the alignment begins.
func fillSemiGlobal(a, b Seq, model *AffineGapScoreModel) (*affineMatrices, *traceback) {
	m, n := a.Len(), b.Len()
	mat := newAffineMatrices(m+1, n+1)
	tb := newTraceback(m+1, n+1)

	open := model.gapOpenCost()
	ext := model.GapExtend

	for j := 0; j <= n; j++ {
		mat.h[mat.idx(0, j)] = 0
		mat.e[mat.idx(0, j)] = negInf
		mat.f[mat.idx(0, j)] = negInf
	}
	for i := 1; i <= m; i++ {
		mat.h[mat.idx(i, 0)] = -(model.GapOpen + i*ext)
		mat.e[mat.idx(i, 0)] = negInf
		mat.f[mat.idx(i, 0)] = negInf
		tb.at(i, 0).h = fromF
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			cell := tb.at(i, j)

			eOpen := mat.h[mat.idx(i, j-1)] - open
			eExt := mat.e[mat.idx(i, j-1)] - ext
			eVal := eOpen
			cell.e = openFromH
			if eExt > eVal {
				eVal = eExt
				cell.e = extendSelf
			}

			fOpen := mat.h[mat.idx(i-1, j)] - open
			fExt := mat.f[mat.idx(i-1, j)] - ext
			fVal := fOpen
			cell.f = openFromH
			if fExt > fVal {
				fVal = fExt
				cell.f = extendSelf
			}

			diag := mat.h[mat.idx(i-1, j-1)] + model.Submat.Score(a.At(i), b.At(j))

			hVal := diag
			cell.h = fromDiag
			if eVal > hVal {
				hVal = eVal
				cell.h = fromE
			}
			if fVal > hVal {
				hVal = fVal
				cell.h = fromF
			}

			mat.h[mat.idx(i, j)] = hVal
			mat.e[mat.idx(i, j)] = eVal
			mat.f[mat.idx(i, j)] = fVal
		}
	}

	return mat, tb
}

// tracebackSemiGlobal walks back from (m, maxJ) until row 0, at which
// point the remaining reference prefix is a free leading gap and is left
// out of the anchor list entirely (spec section 4.4).
func tracebackSemiGlobal(a, b Seq, tb *traceback, startI, startJ int) []AlignmentAnchor {
	i, j := startI, startJ
	builder := &opBuilder{}
	state := fromDiag

	for i > 0 {
		if j == 0 {
			// Query still unconsumed but reference exhausted: only
			// possible via the F (insert) path down to row 0.
			builder.push(Insert)
			i--
			continue
		}

		switch state {
		case fromE:
			cell := tb.at(i, j)
			builder.push(Delete)
			if cell.e == extendSelf {
				j--
			} else {
				j--
				state = fromDiag
			}
		case fromF:
			cell := tb.at(i, j)
			builder.push(Insert)
			if cell.f == extendSelf {
				i--
			} else {
				i--
				state = fromDiag
			}
		default:
			cell := tb.at(i, j)
			switch cell.h {
			case fromDiag:
				if a.At(i) == b.At(j) {
					builder.push(SeqMatch)
				} else {
					builder.push(SeqMismatch)
				}
				i--
				j--
			case fromE:
				state = fromE
			case fromF:
				state = fromF
			}
		}
	}

	return builder.finish(0, j)
}

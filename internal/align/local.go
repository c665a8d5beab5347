package align

// Local computes the optimal local alignment (Smith-Waterman with affine
// gaps, spec section 4.5). If the best score is 0 the result is the empty
// alignment with score 0, per spec's stated edge case.
func Local(a, b Seq, model *AffineGapScoreModel, scoreOnly bool) (*AlignmentResult, error) {
	m, n := a.Len(), b.Len()
	if m == 0 || n == 0 {
		return emptyResult(0), nil
	}

	_, tb, maxI, maxJ, maxScore := fillLocal(a, b, model)

	if maxScore == 0 {
		return emptyResult(0), nil
	}
	if scoreOnly {
		return emptyResult(maxScore), nil
	}

	anchors := tracebackLocal(a, b, tb, maxI, maxJ)
	alignment, err := NewAlignment(anchors)
	if err != nil {
		return nil, err
	}
	return newResult(maxScore, a, b, alignment), nil
}

// fillLocal runs the clamped affine recurrence and tracks the best cell.
// Ties among cells achieving the same maximum score are broken toward the
// smaller i, then the smaller j, by only replacing the current best on a
// strictly greater score while scanning in row-major (i, then j) order.
func fillLocal(a, b Seq, model *AffineGapScoreModel) (*affineMatrices, *traceback, int, int, int) {
	m, n := a.Len(), b.Len()
	mat := newAffineMatrices(m+1, n+1)
	tb := newTraceback(m+1, n+1)

	open := model.gapOpenCost()
	ext := model.GapExtend

	for i := 0; i <= m; i++ {
		mat.e[mat.idx(i, 0)] = negInf
		mat.f[mat.idx(i, 0)] = negInf
	}
	for j := 0; j <= n; j++ {
		mat.e[mat.idx(0, j)] = negInf
		mat.f[mat.idx(0, j)] = negInf
	}

	maxI, maxJ, maxScore := 0, 0, 0

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

			best := 0
			direction := fromZero
			if diag > best {
				best = diag
				direction = fromDiag
			}
			if eVal > best {
				best = eVal
				direction = fromE
			}
			if fVal > best {
				best = fVal
				direction = fromF
			}

			mat.h[mat.idx(i, j)] = best
			mat.e[mat.idx(i, j)] = eVal
			mat.f[mat.idx(i, j)] = fVal
			cell.h = direction

			if best > maxScore {
				maxScore = best
				maxI, maxJ = i, j
			}
		}
	}

	return mat, tb, maxI, maxJ, maxScore
}

// tracebackLocal walks back from (startI, startJ), stopping as soon as it
// reaches a cell whose H value is 0 (the clamp origin), per spec section
// 4.5.
func tracebackLocal(a, b Seq, tb *traceback, startI, startJ int) []AlignmentAnchor {
	i, j := startI, startJ
	builder := &opBuilder{}
	state := fromDiag

	for i > 0 && j > 0 {
		if state == fromDiag && tb.at(i, j).h == fromZero {
			break
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

	return builder.finish(i, j)
}

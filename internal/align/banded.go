package align

// bandedMatrices stores H/E/F for a diagonal band {(i,j): lower <= j-i <=
// upper} in (m+1) x (upper-lower+1) arrays with a coordinate transform,
// per spec section 9's banded arena layout.
type bandedMatrices struct {
	m, n         int
	lower, upper int
	width        int
	h, e, f      []int
}

func newBandedMatrices(m, n, lower, upper int) *bandedMatrices {
	width := upper - lower + 1
	size := (m + 1) * width
	bm := &bandedMatrices{m: m, n: n, lower: lower, upper: upper, width: width}
	bm.h = make([]int, size)
	bm.e = make([]int, size)
	bm.f = make([]int, size)
	for k := range bm.h {
		bm.h[k] = negInf
		bm.e[k] = negInf
		bm.f[k] = negInf
	}
	return bm
}

// inBand reports whether column j is inside the band at row i.
func (bm *bandedMatrices) inBand(i, j int) bool {
	d := j - i
	return d >= bm.lower && d <= bm.upper && j >= 0 && j <= bm.n
}

func (bm *bandedMatrices) idx(i, j int) int {
	d := j - i - bm.lower
	return i*bm.width + d
}

func (bm *bandedMatrices) getH(i, j int) int {
	if !bm.inBand(i, j) {
		return negInf
	}
	return bm.h[bm.idx(i, j)]
}

func (bm *bandedMatrices) getF(i, j int) int {
	if !bm.inBand(i, j) {
		return negInf
	}
	return bm.f[bm.idx(i, j)]
}

func (bm *bandedMatrices) getE(i, j int) int {
	if !bm.inBand(i, j) {
		return negInf
	}
	return bm.e[bm.idx(i, j)]
}

// bandedTraceback mirrors traceback but is indexed only over in-band
// cells, so stepping outside the band during traceback is structurally
// impossible (there is no cell to read).
type bandedTraceback struct {
	lower, upper, width int
	cells               []cellTrace
}

func newBandedTraceback(m, lower, upper int) *bandedTraceback {
	width := upper - lower + 1
	return &bandedTraceback{lower: lower, upper: upper, width: width, cells: make([]cellTrace, (m+1)*width)}
}

func (bt *bandedTraceback) at(i, j int) *cellTrace {
	d := j - i - bt.lower
	return &bt.cells[i*bt.width+d]
}

// GlobalBanded computes the optimal global alignment restricted to the
// diagonal band [lower, upper] (spec section 4.3). It fails with
// BandExcludesEndpointsError if (0, 0) or (m, n) falls outside the band.
func GlobalBanded(a, b Seq, model *AffineGapScoreModel, lower, upper int, scoreOnly bool) (*AlignmentResult, error) {
	m, n := a.Len(), b.Len()

	if 0 < lower || 0 > upper || n-m < lower || n-m > upper {
		return nil, &BandExcludesEndpointsError{Lower: lower, Upper: upper, M: m, N: n}
	}
	if m == 0 && n == 0 {
		return emptyResult(0), nil
	}

	bm := newBandedMatrices(m, n, lower, upper)
	bt := newBandedTraceback(m, lower, upper)

	open := model.gapOpenCost()
	ext := model.GapExtend

	bm.h[bm.idx(0, 0)] = 0
	for i := 1; i <= m; i++ {
		if bm.inBand(i, 0) {
			bm.h[bm.idx(i, 0)] = -(model.GapOpen + i*ext)
			bt.at(i, 0).h = fromF
		}
	}
	for j := 1; j <= n; j++ {
		if bm.inBand(0, j) {
			bm.h[bm.idx(0, j)] = -(model.GapOpen + j*ext)
			bt.at(0, j).h = fromE
		}
	}

	for i := 1; i <= m; i++ {
		lo := i + lower
		if lo < 1 {
			lo = 1
		}
		hi := i + upper
		if hi > n {
			hi = n
		}
		for j := lo; j <= hi; j++ {
			cell := bt.at(i, j)

			eOpen := bm.getH(i, j-1) - open
			eExt := bm.getE(i, j-1) - ext
			eVal := eOpen
			cell.e = openFromH
			if eExt > eVal {
				eVal = eExt
				cell.e = extendSelf
			}

			fOpen := bm.getH(i-1, j) - open
			fExt := bm.getF(i-1, j) - ext
			fVal := fOpen
			cell.f = openFromH
			if fExt > fVal {
				fVal = fExt
				cell.f = extendSelf
			}

			diag := bm.getH(i-1, j-1) + model.Submat.Score(a.At(i), b.At(j))

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

			bm.h[bm.idx(i, j)] = hVal
			bm.e[bm.idx(i, j)] = eVal
			bm.f[bm.idx(i, j)] = fVal
		}
	}

	score := bm.getH(m, n)

	if scoreOnly {
		return emptyResult(score), nil
	}

	anchors := tracebackBandedAffine(a, b, bt, m, n)
	alignment, err := NewAlignment(anchors)
	if err != nil {
		return nil, err
	}
	return newResult(score, a, b, alignment), nil
}

func tracebackBandedAffine(a, b Seq, bt *bandedTraceback, startI, startJ int) []AlignmentAnchor {
	i, j := startI, startJ
	builder := &opBuilder{}
	state := fromDiag

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

		switch state {
		case fromE:
			cell := bt.at(i, j)
			builder.push(Delete)
			if cell.e == extendSelf {
				j--
			} else {
				j--
				state = fromDiag
			}
		case fromF:
			cell := bt.at(i, j)
			builder.push(Insert)
			if cell.f == extendSelf {
				i--
			} else {
				i--
				state = fromDiag
			}
		default:
			cell := bt.at(i, j)
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

	return builder.finish(0, 0)
}

package align

import "math"

// negInf is a sentinel low enough that adding any realistic penalty chain
// never overflows back into a competitive score, while staying well clear
// of math.MinInt so repeated subtraction in the recurrence can't wrap.
const negInf = math.MinInt32 / 2

// affineMatrices holds the three Gotoh DP matrices as flat row-major
// arrays, per the arena layout in spec section 9.
type affineMatrices struct {
	rows, cols int
	h, e, f    []int
}

func newAffineMatrices(rows, cols int) *affineMatrices {
	return &affineMatrices{
		rows: rows, cols: cols,
		h: make([]int, rows*cols),
		e: make([]int, rows*cols),
		f: make([]int, rows*cols),
	}
}

func (m *affineMatrices) idx(i, j int) int { return i*m.cols + j }

// fillGlobal runs the full (unbanded) Gotoh affine recurrence over
// (0..m, 0..n) and records the winning branch at every cell for
// traceback. Ties are broken by preferring the branch listed earlier in
// spec section 4.2: diagonal before E before F in H's outer max; the
// H-open branch before the self-extend branch in E's and F's inner max.
//
// Matrix roles follow the anchor invariants in spec section 3 rather than
// the prose in section 4.2 (which swaps the "insert"/"delete" labels): E
// advances only the reference index j and therefore models a
// delete-family run (ds == 0, dr > 0); F advances only the query index i
// and therefore models an insert-family run (ds > 0, dr == 0). The
// boundary conditions below are only consistent under this assignment.
func fillGlobal(a, b Seq, model *AffineGapScoreModel) (*affineMatrices, *traceback) {
	m, n := a.Len(), b.Len()
	mat := newAffineMatrices(m+1, n+1)
	tb := newTraceback(m+1, n+1)

	open := model.gapOpenCost()
	ext := model.GapExtend

	mat.h[mat.idx(0, 0)] = 0
	for i := 1; i <= m; i++ {
		mat.h[mat.idx(i, 0)] = -(model.GapOpen + i*ext)
		mat.e[mat.idx(i, 0)] = negInf
		mat.f[mat.idx(i, 0)] = negInf
		tb.at(i, 0).h = fromF
	}
	for j := 1; j <= n; j++ {
		mat.h[mat.idx(0, j)] = -(model.GapOpen + j*ext)
		mat.e[mat.idx(0, j)] = negInf
		mat.f[mat.idx(0, j)] = negInf
		tb.at(0, j).h = fromE
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

// tracebackAffine walks tb from (startI, startJ) in the H matrix back to
// (0, 0), emitting the op stream an opBuilder compresses into anchors.
// Local alignment uses its own traceback (tracebackLocal) since it
// must additionally stop at the first H == 0 cell rather than at (0, 0).
func tracebackAffine(a, b Seq, tb *traceback, startI, startJ int) []AlignmentAnchor {
	i, j := startI, startJ
	builder := &opBuilder{}
	state := fromDiag // which matrix we're currently reading from: H by default

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
			cell := tb.at(i, j)
			builder.push(Delete)
			if cell.e == extendSelf {
				j--
				state = fromE
			} else {
				j--
				state = fromDiag
			}
		case fromF:
			cell := tb.at(i, j)
			builder.push(Insert)
			if cell.f == extendSelf {
				i--
				state = fromF
			} else {
				i--
				state = fromDiag
			}
		default: // fromDiag: reading H
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

	return builder.finish(0, 0)
}

// Global computes the optimal global alignment score (and, unless
// scoreOnly, the alignment) between a and b under model using the
// Needleman-Wunsch/Gotoh affine recurrence (spec section 4.2).
func Global(a, b Seq, model *AffineGapScoreModel, scoreOnly bool) (*AlignmentResult, error) {
	m, n := a.Len(), b.Len()
	if m == 0 && n == 0 {
		return emptyResult(0), nil
	}

	if scoreOnly {
		return emptyResult(globalScoreOnly(a, b, model)), nil
	}

	mat, tb := fillGlobal(a, b, model)
	score := mat.h[mat.idx(m, n)]
	anchors := tracebackAffine(a, b, tb, m, n)
	alignment, err := NewAlignment(anchors)
	if err != nil {
		return nil, err
	}
	return newResult(score, a, b, alignment), nil
}

// globalScoreOnly computes the optimal global score in O(n) space, where
// n = b.Len(); rows always run along b, whichever sequence is shorter.
// E[i][*] is intra-row (depends only on H/E at the same i, column j-1) so
// it never needs to be stored across rows; F[i][*] depends on row i-1 at
// the same column, so only F's previous row needs to roll forward.
// internal/alignment.GlobalAlignmentScoreOnly reaches this function
// through PairAlign's score-only path.
func globalScoreOnly(a, b Seq, model *AffineGapScoreModel) int {
	m, n := a.Len(), b.Len()
	open := model.gapOpenCost()
	ext := model.GapExtend

	prevH := make([]int, n+1)
	prevF := make([]int, n+1)
	for j := 0; j <= n; j++ {
		prevH[j] = -(model.GapOpen + j*ext)
		prevF[j] = negInf
	}
	prevH[0] = 0

	currH := make([]int, n+1)
	currF := make([]int, n+1)

	for i := 1; i <= m; i++ {
		currH[0] = -(model.GapOpen + i*ext)
		currF[0] = negInf
		e := negInf // E[i][0]

		for j := 1; j <= n; j++ {
			fOpen := prevH[j] - open
			fExt := prevF[j] - ext
			f := fOpen
			if fExt > f {
				f = fExt
			}
			currF[j] = f

			eOpen := currH[j-1] - open
			eExt := e - ext
			e = eOpen
			if eExt > e {
				e = eExt
			}

			diag := prevH[j-1] + model.Submat.Score(a.At(i), b.At(j))
			h := diag
			if e > h {
				h = e
			}
			if f > h {
				h = f
			}
			currH[j] = h
		}

		prevH, currH = currH, prevH
		prevF, currF = currF, prevF
	}

	return prevH[n]
}

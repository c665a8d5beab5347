package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aria-lang/alignflow-go/pkg/bioflow"
)

// PairAlignRequest represents a pairalign request. Regime selects one of
// the six alignment/distance regimes by name; Match/Mismatch/GapOpen/
// GapExtend apply to the global/semi-global/local regimes, SubstitutionCost/
// InsertionCost/DeletionCost to the edit regime. Banded/Lower/Upper restrict
// the DP to a diagonal band.
type PairAlignRequest struct {
	Sequence1 string `json:"sequence1"`
	Sequence2 string `json:"sequence2"`
	Regime    string `json:"regime"`

	Match     int `json:"match"`
	Mismatch  int `json:"mismatch"`
	GapOpen   int `json:"gap_open"`
	GapExtend int `json:"gap_extend"`

	SubstitutionCost int `json:"substitution_cost"`
	InsertionCost    int `json:"insertion_cost"`
	DeletionCost     int `json:"deletion_cost"`

	ScoreOnly bool `json:"score_only"`
	Banded    bool `json:"banded"`
	Lower     int  `json:"lower"`
	Upper     int  `json:"upper"`
}

// PairAlignResponse represents the response for a pairalign request.
type PairAlignResponse struct {
	Score        int    `json:"score"`
	HasAlignment bool   `json:"has_alignment"`
	AlignedQuery string `json:"aligned_query,omitempty"`
	AlignedRef   string `json:"aligned_ref,omitempty"`
	CIGAR        string `json:"cigar,omitempty"`
}

var pairAlignRegimes = map[string]bioflow.AlignRegime{
	"global":      bioflow.RegimeGlobal,
	"semiglobal":  bioflow.RegimeSemiGlobal,
	"local":       bioflow.RegimeLocal,
	"edit":        bioflow.RegimeEdit,
	"levenshtein": bioflow.RegimeLevenshtein,
	"hamming":     bioflow.RegimeHamming,
}

// PairAlignHandler handles pairalign requests across all six regimes.
func PairAlignHandler(w http.ResponseWriter, r *http.Request) {
	var req PairAlignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	regime, ok := pairAlignRegimes[req.Regime]
	if !ok {
		http.Error(w, `{"error": "unknown regime `+req.Regime+`"}`, http.StatusBadRequest)
		return
	}

	seq1, err := bioflow.NewSequence(req.Sequence1)
	if err != nil {
		http.Error(w, `{"error": "sequence1: `+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	seq2, err := bioflow.NewSequence(req.Sequence2)
	if err != nil {
		http.Error(w, `{"error": "sequence2: `+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	var model interface{}
	switch regime {
	case bioflow.RegimeGlobal, bioflow.RegimeSemiGlobal, bioflow.RegimeLocal:
		m, err := bioflow.NewAffineGapModel(req.Match, req.Mismatch, req.GapOpen, req.GapExtend)
		if err != nil {
			http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
			return
		}
		model = m
	case bioflow.RegimeEdit:
		m, err := bioflow.NewEditCostModel(req.SubstitutionCost, req.InsertionCost, req.DeletionCost)
		if err != nil {
			http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
			return
		}
		model = m
	}

	opts := bioflow.AlignOptions{
		ScoreOnly: req.ScoreOnly,
		Banded:    req.Banded,
		Lower:     req.Lower,
		Upper:     req.Upper,
	}

	result, err := bioflow.PairAlign(regime, seq1, seq2, model, opts)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	resp := PairAlignResponse{
		Score:        result.Score,
		HasAlignment: result.HasAlignment,
	}
	if result.HasAlignment {
		resp.AlignedQuery = result.AlignedQuery
		resp.AlignedRef = result.AlignedRef
		if cigar, err := bioflow.Cigar(result.Alignment); err == nil {
			resp.CIGAR = cigar
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

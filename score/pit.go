package score

import (
	"fmt"
	"math"
	"sort"

	"github.com/windvane/verification-algorithms/common"
	"gonum.org/v1/gonum/stat"
)

// PITNaN computes the probability integral transform of observations
// against a forecast sample. Missing observations are dropped, each
// remaining observation is mapped through the forecast's empirical
// quantile CDF at the qBins levels, and the resulting probabilities
// are re-binned to qBins. A calibrated forecast returns values close
// to qBins itself.
func PITNaN(fcst, obs, qBins []float64) ([]float64, error) {
	if len(fcst) == 0 || len(qBins) == 0 {
		return nil, fmt.Errorf("empty forecast or quantile bins: %w", common.ErrorInvalidShape)
	}
	for _, q := range qBins {
		if q < 0 || q > 1 {
			return nil, fmt.Errorf("quantile level %v outside [0,1]: %w", q, common.ErrorInvalidValue)
		}
	}

	valid := make([]float64, 0, len(obs))
	for _, v := range obs {
		if !math.IsNaN(v) {
			valid = append(valid, v)
		}
	}
	if len(valid) == 0 {
		return nil, fmt.Errorf("no finite observations: %w", common.ErrorInvalidValue)
	}

	sortedFcst := append([]float64(nil), fcst...)
	sort.Float64s(sortedFcst)
	cdfFcst := make([]float64, len(qBins))
	for i, q := range qBins {
		cdfFcst[i] = stat.Quantile(q, stat.LinInterp, sortedFcst, nil)
	}

	// transform observations into the forecast's probability space
	pObs := make([]float64, len(valid))
	for i, v := range valid {
		pObs[i] = float64(sort.SearchFloat64s(cdfFcst, v)) / float64(len(qBins))
	}
	sort.Float64s(pObs)

	pBins := make([]float64, len(qBins))
	for i, q := range qBins {
		pBins[i] = stat.Quantile(q, stat.LinInterp, pObs, nil)
	}

	return pBins, nil
}

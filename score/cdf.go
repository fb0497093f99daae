package score

import (
	"fmt"
	"math"
	"sort"

	"github.com/windvane/verification-algorithms/common"
	"gonum.org/v1/gonum/stat"
)

// ClimatologyCDF builds the per-grid-point quantile CDF consumed by
// CRPSFromQuantiles from an archive of samples with shape (time, grid).
// Missing samples are dropped per grid point; a grid point with no
// finite samples yields a NaN column.
func ClimatologyCDF(qBins []float64, data [][]float64) ([][]float64, error) {
	if len(qBins) < 2 {
		return nil, fmt.Errorf("q_bins needs at least 2 levels: %w", common.ErrorInvalidShape)
	}
	for _, q := range qBins {
		if q < 0 || q > 1 {
			return nil, fmt.Errorf("quantile level %v outside [0,1]: %w", q, common.ErrorInvalidValue)
		}
	}
	days, grids, err := matrixDims("data", data)
	if err != nil {
		return nil, err
	}

	cdfs := make([][]float64, len(qBins))
	for b := range cdfs {
		cdfs[b] = make([]float64, grids)
	}

	column := make([]float64, 0, days)
	for n := 0; n < grids; n++ {
		column = column[:0]
		for day := 0; day < days; day++ {
			if v := data[day][n]; !math.IsNaN(v) {
				column = append(column, v)
			}
		}
		if len(column) == 0 {
			for b := range qBins {
				cdfs[b][n] = math.NaN()
			}
			continue
		}
		sort.Float64s(column)
		for b, q := range qBins {
			cdfs[b][n] = stat.Quantile(q, stat.LinInterp, column, nil)
		}
	}

	return cdfs, nil
}

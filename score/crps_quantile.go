package score

import (
	"fmt"
	"sort"

	"github.com/windvane/verification-algorithms/common"
)

// CRPSFromQuantiles scores deterministic observations against a fixed
// quantile-binned CDF, one CDF per grid point paired against every
// day's observation. The usual application is a climatological CDF
// scored against real-time observations.
//
// qBins holds uniformly spaced quantile levels in [0,1]; cdfs holds
// the forecast value at each level, shape (numBins, grid), and every
// column must be non-decreasing. A non-monotone column is a caller
// contract violation and yields meaningless values, not an error.
// yTrue has shape (day, grid); the result has the same shape.
func CRPSFromQuantiles(qBins []float64, cdfs [][]float64, yTrue [][]float64) ([][]float64, error) {
	numBins := len(qBins)
	if numBins < 2 {
		return nil, fmt.Errorf("q_bins needs at least 2 levels: %w", common.ErrorInvalidShape)
	}
	rows, grids, err := matrixDims("cdfs", cdfs)
	if err != nil {
		return nil, err
	}
	if rows != numBins {
		return nil, fmt.Errorf("cdfs has %d rows, want %d: %w", rows, numBins, common.ErrorInvalidShape)
	}
	days, gridsTrue, err := matrixDims("y_true", yTrue)
	if err != nil {
		return nil, err
	}
	if gridsTrue != grids {
		return nil, fmt.Errorf("y_true has %d grid points, cdfs has %d: %w",
			gridsTrue, grids, common.ErrorInvalidShape)
	}

	last := numBins - 1
	crps := make([][]float64, days)
	column := make([]float64, numBins)
	integrand := make([]float64, numBins)

	for day := 0; day < days; day++ {
		crps[day] = make([]float64, grids)
		for n := 0; n < grids; n++ {
			for b := 0; b < numBins; b++ {
				column[b] = cdfs[b][n]
			}

			// left insertion index of the observation, clamped to the
			// top bin; bins at or above it get the unit step.
			step := sort.SearchFloat64s(column, yTrue[day][n])
			if step > last {
				step = last
			}

			for b := 0; b < numBins; b++ {
				d := qBins[b]
				if b >= step {
					d -= 1.0
				}
				integrand[b] = d * d
			}

			crps[day][n] = trapezoid(column, integrand)
		}
	}

	return crps, nil
}

// trapezoid integrates f against x. It deliberately does not require
// sorted abscissae so that invalid CDF columns degrade into garbage
// values instead of a panic.
func trapezoid(x, f []float64) float64 {
	var sum float64
	for i := 1; i < len(x); i++ {
		sum += (x[i] - x[i-1]) * (f[i] + f[i-1]) / 2
	}
	return sum
}

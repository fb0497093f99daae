package score

import (
	"math"

	"github.com/windvane/verification-algorithms/model"
	"gonum.org/v1/gonum/floats"
)

// CRPS1D computes the continuous ranked probability score of a
// one-dimensional ensemble forecast through the two-term decomposition
// of Grimit et al. (2006): CRPS = MAE - SPREAD.
//
// yTrue has shape (time, grid), yEns has shape (time, member, grid);
// every output field has shape (time, grid). Missing observations
// propagate through MAE; use CRPS1DNaN to short-circuit them instead.
func CRPS1D(yTrue [][]float64, yEns [][][]float64) (*model.EnsembleScore, error) {
	days, members, grids, err := ensembleDims("y_ens", yEns)
	if err != nil {
		return nil, err
	}
	if err := checkMatrix("y_true", yTrue, days, grids); err != nil {
		return nil, err
	}

	mae := nanMatrix(days, grids)
	spread := nanMatrix(days, grids)
	absDiff := make([]float64, members)

	for n := 0; n < grids; n++ {
		for day := 0; day < days; day++ {
			ens := yEns[day]
			for en := 0; en < members; en++ {
				absDiff[en] = math.Abs(yTrue[day][n] - ens[en][n])
			}
			mae[day][n] = floats.Sum(absDiff) / float64(members)
			spread[day][n] = pairwiseSpread1D(ens, n, members)
		}
	}

	return &model.EnsembleScore{CRPS: subMatrix(mae, spread), MAE: mae, Spread: spread}, nil
}

// CRPS1DNaN is CRPS1D with missing observations short-circuited: a NaN
// in yTrue leaves MAE, SPREAD and CRPS as NaN for that cell without
// touching the ensemble values.
func CRPS1DNaN(yTrue [][]float64, yEns [][][]float64) (*model.EnsembleScore, error) {
	days, members, grids, err := ensembleDims("y_ens", yEns)
	if err != nil {
		return nil, err
	}
	if err := checkMatrix("y_true", yTrue, days, grids); err != nil {
		return nil, err
	}

	mae := nanMatrix(days, grids)
	spread := nanMatrix(days, grids)
	absDiff := make([]float64, members)

	for n := 0; n < grids; n++ {
		for day := 0; day < days; day++ {
			if math.IsNaN(yTrue[day][n]) {
				continue
			}
			ens := yEns[day]
			for en := 0; en < members; en++ {
				absDiff[en] = math.Abs(yTrue[day][n] - ens[en][n])
			}
			mae[day][n] = floats.Sum(absDiff) / float64(members)
			spread[day][n] = pairwiseSpread1D(ens, n, members)
		}
	}

	return &model.EnsembleScore{CRPS: subMatrix(mae, spread), MAE: mae, Spread: spread}, nil
}

// CRPS2D computes the decomposed CRPS on a two-dimensional grid.
//
// yTrue has shape (time, gridx, gridy), yEns has shape
// (time, member, gridx, gridy). A nil mask processes every grid point;
// otherwise only points where mask is true are computed and the rest
// stay NaN in all three outputs.
func CRPS2D(yTrue [][][]float64, yEns [][][][]float64, mask [][]bool) (*model.EnsembleScore2D, error) {
	days, members, nx, ny, err := ensembleDims2D("y_ens", yEns)
	if err != nil {
		return nil, err
	}
	if err := checkCube("y_true", yTrue, days, nx, ny); err != nil {
		return nil, err
	}
	if mask != nil {
		if err := checkMask("land_mask", mask, nx, ny); err != nil {
			return nil, err
		}
	}

	mae := nanCube(days, nx, ny)
	spread := nanCube(days, nx, ny)
	absDiff := make([]float64, members)

	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			if mask != nil && !mask[i][j] {
				continue
			}
			for day := 0; day < days; day++ {
				ens := yEns[day]
				for en := 0; en < members; en++ {
					absDiff[en] = math.Abs(yTrue[day][i][j] - ens[en][i][j])
				}
				mae[day][i][j] = floats.Sum(absDiff) / float64(members)
				spread[day][i][j] = pairwiseSpread2D(ens, i, j, members)
			}
		}
	}

	return &model.EnsembleScore2D{CRPS: subCube(mae, spread), MAE: mae, Spread: spread}, nil
}

// pairwiseSpread1D sums |x_i - x_j| over all ordered member pairs,
// self pairs included, and normalizes by 2*EN*EN. This differs from
// the 2*EN*(EN-1) constant in the literature; the scale is used
// consistently across the score family and must not be changed.
func pairwiseSpread1D(ens [][]float64, n, members int) float64 {
	var sum float64
	for en1 := 0; en1 < members; en1++ {
		for en2 := 0; en2 < members; en2++ {
			sum += math.Abs(ens[en1][n] - ens[en2][n])
		}
	}
	return sum / float64(2*members*members)
}

func pairwiseSpread2D(ens [][][]float64, i, j, members int) float64 {
	var sum float64
	for en1 := 0; en1 < members; en1++ {
		for en2 := 0; en2 < members; en2++ {
			sum += math.Abs(ens[en1][i][j] - ens[en2][i][j])
		}
	}
	return sum / float64(2*members*members)
}

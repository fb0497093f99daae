package score

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// BSBinary1D computes the Brier score of a binary ensemble forecast:
// the squared difference between the binary observation and the
// ensemble-mean probability, per (day, grid) cell.
//
// The result keeps the Hamill and Juras (2006) convention: no scaling
// beyond the ensemble mean, so spatial averaging can be applied by the
// caller afterwards. yTrue has shape (day, grid) with values in {0,1},
// yEns has shape (day, member, grid) with values in {0,1}.
func BSBinary1D(yTrue [][]float64, yEns [][][]float64) ([][]float64, error) {
	days, members, grids, err := ensembleDims("y_ens", yEns)
	if err != nil {
		return nil, err
	}
	if err := checkMatrix("y_true", yTrue, days, grids); err != nil {
		return nil, err
	}

	bs := make([][]float64, days)
	memberCol := make([]float64, members)

	for day := 0; day < days; day++ {
		bs[day] = make([]float64, grids)
		ens := yEns[day]
		for n := 0; n < grids; n++ {
			for en := 0; en < members; en++ {
				memberCol[en] = ens[en][n]
			}
			diff := yTrue[day][n] - floats.Sum(memberCol)/float64(members)
			bs[day][n] = diff * diff
		}
	}

	return bs, nil
}

// BSBinary1DNaN is BSBinary1D with missing observations
// short-circuited: a NaN in yTrue yields a NaN score for that cell
// without computing the ensemble mean.
func BSBinary1DNaN(yTrue [][]float64, yEns [][][]float64) ([][]float64, error) {
	days, members, grids, err := ensembleDims("y_ens", yEns)
	if err != nil {
		return nil, err
	}
	if err := checkMatrix("y_true", yTrue, days, grids); err != nil {
		return nil, err
	}

	bs := make([][]float64, days)
	memberCol := make([]float64, members)

	for day := 0; day < days; day++ {
		bs[day] = make([]float64, grids)
		ens := yEns[day]
		for n := 0; n < grids; n++ {
			if math.IsNaN(yTrue[day][n]) {
				bs[day][n] = math.NaN()
				continue
			}
			for en := 0; en < members; en++ {
				memberCol[en] = ens[en][n]
			}
			diff := yTrue[day][n] - floats.Sum(memberCol)/float64(members)
			bs[day][n] = diff * diff
		}
	}

	return bs, nil
}

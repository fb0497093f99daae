package bootstrap

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"github.com/windvane/verification-algorithms/common"
	"github.com/windvane/verification-algorithms/model"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ResampleLastAxis bootstraps the mean of every index along the last
// axis. data has shape (rows, K): callers with higher-rank inputs
// flatten every axis except the last into rows. For each of the K
// columns the finite values are collected and resampled with
// replacement numReplicates times; the result has shape
// (K, numReplicates). A column with no finite values produces a NaN
// replicate row, which callers must guard against.
//
// rng is the caller-owned random stream; nil draws a fresh
// non-deterministic one.
func ResampleLastAxis(data [][]float64, numReplicates int, rng *rand.Rand) ([][]float64, error) {
	rows, k, err := matrixDims("data", data)
	if err != nil {
		return nil, err
	}
	if numReplicates <= 0 {
		return nil, fmt.Errorf("numReplicates %d: %w", numReplicates, common.ErrorInvalidValue)
	}
	if rng == nil {
		rng = newRand()
	}

	replicates := make([][]float64, k)
	values := make([]float64, 0, rows)
	sample := make([]float64, 0, rows)

	for i := 0; i < k; i++ {
		replicates[i] = make([]float64, numReplicates)

		values = values[:0]
		for r := 0; r < rows; r++ {
			if v := data[r][i]; !math.IsNaN(v) {
				values = append(values, v)
			}
		}
		l := len(values)
		if l == 0 {
			for b := range replicates[i] {
				replicates[i][b] = math.NaN()
			}
			continue
		}

		sample = sample[:l]
		for b := 0; b < numReplicates; b++ {
			for j := 0; j < l; j++ {
				sample[j] = values[rng.IntN(l)]
			}
			replicates[i][b] = floats.Sum(sample) / float64(l)
		}
	}

	return replicates, nil
}

// ConfidenceIntervals estimates two-sided bootstrap confidence bounds
// for a (day, leadTime) score matrix. Each of the numSamples draws
// picks one whole day row with replacement (a block bootstrap over the
// day axis, unlike the per-element resampling of ResampleLastAxis);
// the mean and the lowerQ/upperQ empirical quantiles are then taken
// across the replicate axis per lead time.
//
// rng is the caller-owned random stream; nil draws a fresh
// non-deterministic one.
func ConfidenceIntervals(matrix [][]float64, numSamples int,
	lowerQ, upperQ float64, rng *rand.Rand) (*model.ConfidenceBounds, error) {
	days, leads, err := matrixDims("matrix", matrix)
	if err != nil {
		return nil, err
	}
	if numSamples <= 0 {
		return nil, fmt.Errorf("numSamples %d: %w", numSamples, common.ErrorInvalidValue)
	}
	if lowerQ < 0 || upperQ > 1 || lowerQ >= upperQ {
		return nil, fmt.Errorf("quantiles (%v, %v): %w", lowerQ, upperQ, common.ErrorInvalidValue)
	}
	if rng == nil {
		rng = newRand()
	}

	replicates := make([][]float64, numSamples)
	for i := 0; i < numSamples; i++ {
		day := rng.IntN(days)
		replicates[i] = append([]float64(nil), matrix[day]...)
	}

	bounds := &model.ConfidenceBounds{
		Mean:  make([]float64, leads),
		Lower: make([]float64, leads),
		Upper: make([]float64, leads),
	}

	column := make([]float64, numSamples)
	for lt := 0; lt < leads; lt++ {
		for i := range replicates {
			column[i] = replicates[i][lt]
		}
		bounds.Mean[lt] = stat.Mean(column, nil)
		sort.Float64s(column)
		bounds.Lower[lt] = stat.Quantile(lowerQ, stat.LinInterp, column, nil)
		bounds.Upper[lt] = stat.Quantile(upperQ, stat.LinInterp, column, nil)
	}

	return bounds, nil
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

package score_test

import (
	"context"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/windvane/verification-algorithms/common"
	"github.com/windvane/verification-algorithms/score"
	"gonum.org/v1/gonum/stat/distuv"
)

func normalEnsemble(t *testing.T, days, members, grids int, seed uint64) ([][]float64, [][][]float64) {
	t.Helper()
	dist := distuv.Normal{Mu: 10, Sigma: 2, Src: rand.NewPCG(seed, seed+1)}

	yTrue := make([][]float64, days)
	yEns := make([][][]float64, days)
	for d := 0; d < days; d++ {
		yTrue[d] = make([]float64, grids)
		for n := range yTrue[d] {
			yTrue[d][n] = dist.Rand()
		}
		yEns[d] = make([][]float64, members)
		for en := range yEns[d] {
			yEns[d][en] = make([]float64, grids)
			for n := range yEns[d][en] {
				yEns[d][en][n] = dist.Rand()
			}
		}
	}
	return yTrue, yEns
}

func TestCRPS1DConcreteScenario(t *testing.T) {
	yTrue := [][]float64{{1.0}}
	yEns := [][][]float64{{{0.0}, {2.0}}}

	res, err := score.CRPS1D(yTrue, yEns)
	require.NoError(t, err)

	// MAE = mean(|1-0|, |1-2|) = 1.0
	// SPREAD = (0 + 2 + 2 + 0) / (2 * 2 * 2) = 0.5
	assert.Equal(t, 1.0, res.MAE[0][0])
	assert.Equal(t, 0.5, res.Spread[0][0])
	assert.Equal(t, 0.5, res.CRPS[0][0])
}

func TestCRPS1DDecompositionIdentity(t *testing.T) {
	yTrue, yEns := normalEnsemble(t, 6, 5, 8, 1)

	res, err := score.CRPS1D(yTrue, yEns)
	require.NoError(t, err)

	days, grids := res.Dims()
	require.Equal(t, 6, days)
	require.Equal(t, 8, grids)

	for d := 0; d < days; d++ {
		for n := 0; n < grids; n++ {
			assert.Equal(t, res.MAE[d][n]-res.Spread[d][n], res.CRPS[d][n])
			assert.GreaterOrEqual(t, res.Spread[d][n], 0.0)
		}
	}
}

func TestCRPS1DIdenticalMembers(t *testing.T) {
	yTrue := [][]float64{{3.0, -1.0}}
	yEns := [][][]float64{{{7.0, 2.0}, {7.0, 2.0}, {7.0, 2.0}}}

	res, err := score.CRPS1D(yTrue, yEns)
	require.NoError(t, err)

	for n := 0; n < 2; n++ {
		assert.Equal(t, 0.0, res.Spread[0][n])
		assert.Equal(t, res.MAE[0][n], res.CRPS[0][n])
	}
	assert.Equal(t, 4.0, res.MAE[0][0])
	assert.Equal(t, 3.0, res.MAE[0][1])
}

func TestCRPS1DNaNSkipsMissingObs(t *testing.T) {
	yTrue, yEns := normalEnsemble(t, 4, 3, 5, 2)
	yTrue[1][2] = math.NaN()
	yTrue[3][0] = math.NaN()

	plain, err := score.CRPS1D(yTrue, yEns)
	require.NoError(t, err)
	skipped, err := score.CRPS1DNaN(yTrue, yEns)
	require.NoError(t, err)

	for d := 0; d < 4; d++ {
		for n := 0; n < 5; n++ {
			if math.IsNaN(yTrue[d][n]) {
				assert.True(t, math.IsNaN(skipped.MAE[d][n]))
				assert.True(t, math.IsNaN(skipped.Spread[d][n]))
				assert.True(t, math.IsNaN(skipped.CRPS[d][n]))
				continue
			}
			assert.Equal(t, plain.MAE[d][n], skipped.MAE[d][n])
			assert.Equal(t, plain.Spread[d][n], skipped.Spread[d][n])
			assert.Equal(t, plain.CRPS[d][n], skipped.CRPS[d][n])
		}
	}
}

func TestCRPS2DMatchesReshaped1D(t *testing.T) {
	const days, members, nx, ny = 3, 4, 2, 3
	yTrue1D, yEns1D := normalEnsemble(t, days, members, nx*ny, 3)

	yTrue2D := make([][][]float64, days)
	yEns2D := make([][][][]float64, days)
	for d := 0; d < days; d++ {
		yTrue2D[d] = make([][]float64, nx)
		for i := 0; i < nx; i++ {
			yTrue2D[d][i] = yTrue1D[d][i*ny : (i+1)*ny]
		}
		yEns2D[d] = make([][][]float64, members)
		for en := 0; en < members; en++ {
			yEns2D[d][en] = make([][]float64, nx)
			for i := 0; i < nx; i++ {
				yEns2D[d][en][i] = yEns1D[d][en][i*ny : (i+1)*ny]
			}
		}
	}

	res1D, err := score.CRPS1D(yTrue1D, yEns1D)
	require.NoError(t, err)
	res2D, err := score.CRPS2D(yTrue2D, yEns2D, nil)
	require.NoError(t, err)

	for d := 0; d < days; d++ {
		for i := 0; i < nx; i++ {
			for j := 0; j < ny; j++ {
				n := i*ny + j
				assert.Equal(t, res1D.CRPS[d][n], res2D.CRPS[d][i][j])
				assert.Equal(t, res1D.MAE[d][n], res2D.MAE[d][i][j])
				assert.Equal(t, res1D.Spread[d][n], res2D.Spread[d][i][j])
			}
		}
	}
}

func TestCRPS2DMask(t *testing.T) {
	yTrue := [][][]float64{{{1.0, 2.0}, {3.0, 4.0}}}
	yEns := [][][][]float64{{
		{{0.0, 1.0}, {2.0, 3.0}},
		{{2.0, 3.0}, {4.0, 5.0}},
	}}

	allFalse := [][]bool{{false, false}, {false, false}}
	res, err := score.CRPS2D(yTrue, yEns, allFalse)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.True(t, math.IsNaN(res.CRPS[0][i][j]))
			assert.True(t, math.IsNaN(res.MAE[0][i][j]))
			assert.True(t, math.IsNaN(res.Spread[0][i][j]))
		}
	}

	partial := [][]bool{{true, false}, {false, true}}
	res, err = score.CRPS2D(yTrue, yEns, partial)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(res.CRPS[0][0][0]))
	assert.True(t, math.IsNaN(res.CRPS[0][0][1]))
	assert.True(t, math.IsNaN(res.CRPS[0][1][0]))
	assert.False(t, math.IsNaN(res.CRPS[0][1][1]))

	allTrue := [][]bool{{true, true}, {true, true}}
	masked, err := score.CRPS2D(yTrue, yEns, allTrue)
	require.NoError(t, err)
	unmasked, err := score.CRPS2D(yTrue, yEns, nil)
	require.NoError(t, err)
	assert.Equal(t, unmasked.CRPS, masked.CRPS)
}

func TestCRPSShapeValidation(t *testing.T) {
	_, err := score.CRPS1D([][]float64{{1}}, [][][]float64{})
	require.ErrorIs(t, err, common.ErrorInvalidShape)

	// day count mismatch between obs and ensemble
	_, err = score.CRPS1D([][]float64{{1}, {2}}, [][][]float64{{{0}, {2}}})
	require.ErrorIs(t, err, common.ErrorInvalidShape)

	// ragged grid axis
	_, err = score.CRPS1D([][]float64{{1, 2}}, [][][]float64{{{0, 1}, {2}}})
	require.ErrorIs(t, err, common.ErrorInvalidShape)

	_, err = score.CRPS2D(
		[][][]float64{{{1}}},
		[][][][]float64{{{{0}}, {{2}}}},
		[][]bool{{true, true}},
	)
	require.ErrorIs(t, err, common.ErrorInvalidShape)
}

func TestCalculateEnsembleScores(t *testing.T) {
	ctx := context.Background()
	yTrue, yEns := normalEnsemble(t, 3, 4, 6, 4)
	yTrue[0][0] = math.NaN()

	res, err := score.CalculateEnsembleScores(ctx, yTrue, yEns, true)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(res.CRPS[0][0]))
	assert.False(t, math.IsNaN(res.CRPS[1][1]))

	_, err = score.CalculateEnsembleScores(ctx, yTrue[:1], yEns, false)
	require.ErrorIs(t, err, common.ErrorInvalidShape)
}

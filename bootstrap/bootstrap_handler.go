package bootstrap

import (
	"context"
	"math/rand/v2"

	"github.com/windvane/verification-algorithms/model"
	"github.com/windvane/verification-algorithms/utils"
	"go.uber.org/zap"
)

// CalculateConfidenceIntervals wraps ConfidenceIntervals with logging,
// panic containment and seed plumbing. A non-negative seed gives a
// dedicated deterministic stream for reproducible intervals; a
// negative seed draws a fresh non-deterministic one.
func CalculateConfidenceIntervals(ctx context.Context, matrix [][]float64,
	numSamples int, lowerQ, upperQ float64, seed int64) (bounds *model.ConfidenceBounds, err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("CalculateConfidenceIntervals recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()))
		}
	}()

	var rng *rand.Rand
	if seed >= 0 {
		rng = rand.New(rand.NewPCG(uint64(seed), uint64(seed)+1))
	}

	bounds, err = ConfidenceIntervals(matrix, numSamples, lowerQ, upperQ, rng)
	if err != nil {
		logger.Error("bootstrap confidence intervals failed", zap.Error(err),
			zap.Int("days", len(matrix)), zap.Int("numSamples", numSamples))
		return nil, err
	}

	return bounds, nil
}

package score

import (
	"context"

	"github.com/windvane/verification-algorithms/model"
	"github.com/windvane/verification-algorithms/utils"
	"go.uber.org/zap"
)

// CalculateEnsembleScores wraps the pairwise 1-d kernels for callers
// that want logging and panic containment around batch scoring.
// skipMissing selects the NaN-aware kernel.
func CalculateEnsembleScores(ctx context.Context, yTrue [][]float64,
	yEns [][][]float64, skipMissing bool) (res *model.EnsembleScore, err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("CalculateEnsembleScores recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()))
		}
	}()

	if skipMissing {
		res, err = CRPS1DNaN(yTrue, yEns)
	} else {
		res, err = CRPS1D(yTrue, yEns)
	}
	if err != nil {
		logger.Error("ensemble scoring failed", zap.Error(err),
			zap.Int("obsDays", len(yTrue)), zap.Int("ensDays", len(yEns)))
		return nil, err
	}

	return res, nil
}

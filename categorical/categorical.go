package categorical

import (
	"fmt"

	"github.com/windvane/verification-algorithms/common"
	"github.com/windvane/verification-algorithms/model"
)

// NewConfusionMatrix counts binary hits and misses over flattened
// truth and prediction fields of equal length. Values at or above 0.5
// count as the positive class.
func NewConfusionMatrix(yTrue, yPred []float64) (*model.ConfusionMatrix, error) {
	if len(yTrue) == 0 || len(yTrue) != len(yPred) {
		return nil, fmt.Errorf("y_true has %d values, y_pred has %d: %w",
			len(yTrue), len(yPred), common.ErrorInvalidShape)
	}

	cm := &model.ConfusionMatrix{}
	for i := range yTrue {
		obs, pred := yTrue[i] >= 0.5, yPred[i] >= 0.5
		switch {
		case obs && pred:
			cm.TP++
		case obs && !pred:
			cm.FN++
		case !obs && pred:
			cm.FP++
		default:
			cm.TN++
		}
	}

	return cm, nil
}

// ETS computes the equitable threat score: the threat score corrected
// for hits expected by chance.
func ETS(cm *model.ConfusionMatrix) float64 {
	random := (cm.TP + cm.FN) * (cm.TP + cm.FP) / cm.Total()
	return (cm.TP - random) / (cm.TP + cm.FN + cm.FP - random)
}

// FreqBias computes the frequency bias: forecast positives over
// observed positives.
func FreqBias(cm *model.ConfusionMatrix) float64 {
	return (cm.TP + cm.FP) / (cm.TP + cm.FN)
}

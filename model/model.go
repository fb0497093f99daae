package model

// EnsembleScore holds the continuous ranked probability score of a
// 1-d ensemble forecast together with its two-term decomposition.
// All fields share the shape (time, grid).
type EnsembleScore struct {
	CRPS   [][]float64
	MAE    [][]float64
	Spread [][]float64
}

func (s *EnsembleScore) Dims() (days, grids int) {
	if s == nil || len(s.CRPS) == 0 {
		return 0, 0
	}
	return len(s.CRPS), len(s.CRPS[0])
}

// EnsembleScore2D is the two-dimensional grid counterpart of
// EnsembleScore. All fields share the shape (time, gridx, gridy).
type EnsembleScore2D struct {
	CRPS   [][][]float64
	MAE    [][][]float64
	Spread [][][]float64
}

func (s *EnsembleScore2D) Dims() (days, nx, ny int) {
	if s == nil || len(s.CRPS) == 0 || len(s.CRPS[0]) == 0 {
		return 0, 0, 0
	}
	return len(s.CRPS), len(s.CRPS[0]), len(s.CRPS[0][0])
}

// ConfidenceBounds holds the bootstrap mean and the two-sided
// empirical quantile bounds per lead time.
type ConfidenceBounds struct {
	Mean  []float64 `json:"mean,omitempty"`
	Lower []float64 `json:"lower,omitempty"`
	Upper []float64 `json:"upper,omitempty"`
}

type ConfusionMatrix struct {
	TN float64 `json:"tn"`
	FP float64 `json:"fp"`
	FN float64 `json:"fn"`
	TP float64 `json:"tp"`
}

func (c *ConfusionMatrix) Total() float64 {
	if c == nil {
		return 0
	}
	return c.TN + c.FP + c.FN + c.TP
}

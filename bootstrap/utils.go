package bootstrap

import (
	"fmt"

	"github.com/windvane/verification-algorithms/common"
)

func matrixDims(name string, m [][]float64) (rows, cols int, err error) {
	if len(m) == 0 || len(m[0]) == 0 {
		return 0, 0, fmt.Errorf("%s is empty: %w", name, common.ErrorInvalidShape)
	}
	cols = len(m[0])
	for i := range m {
		if len(m[i]) != cols {
			return 0, 0, fmt.Errorf("%s row %d is ragged: %w", name, i, common.ErrorInvalidShape)
		}
	}
	return len(m), cols, nil
}

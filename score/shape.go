package score

import (
	"fmt"

	"github.com/windvane/verification-algorithms/common"
)

// matrixDims validates a (rows, cols) nesting and returns its sizes.
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

func checkMatrix(name string, m [][]float64, rows, cols int) error {
	r, c, err := matrixDims(name, m)
	if err != nil {
		return err
	}
	if r != rows || c != cols {
		return fmt.Errorf("%s has shape (%d, %d), want (%d, %d): %w",
			name, r, c, rows, cols, common.ErrorInvalidShape)
	}
	return nil
}

// ensembleDims validates a (time, member, grid) nesting and returns its sizes.
func ensembleDims(name string, yEns [][][]float64) (days, members, grids int, err error) {
	if len(yEns) == 0 {
		return 0, 0, 0, fmt.Errorf("%s is empty: %w", name, common.ErrorInvalidShape)
	}
	members, grids, err = matrixDims(name, yEns[0])
	if err != nil {
		return 0, 0, 0, err
	}
	for day := 1; day < len(yEns); day++ {
		if err = checkMatrix(name, yEns[day], members, grids); err != nil {
			return 0, 0, 0, err
		}
	}
	return len(yEns), members, grids, nil
}

// cubeDims validates a (time, gridx, gridy) nesting and returns its sizes.
func cubeDims(name string, c [][][]float64) (days, nx, ny int, err error) {
	return ensembleDims(name, c)
}

// ensembleDims2D validates a (time, member, gridx, gridy) nesting.
func ensembleDims2D(name string, yEns [][][][]float64) (days, members, nx, ny int, err error) {
	if len(yEns) == 0 {
		return 0, 0, 0, 0, fmt.Errorf("%s is empty: %w", name, common.ErrorInvalidShape)
	}
	members, nx, ny, err = cubeDims(name, yEns[0])
	if err != nil {
		return 0, 0, 0, 0, err
	}
	for day := 1; day < len(yEns); day++ {
		d0, d1, d2, derr := cubeDims(name, yEns[day])
		if derr != nil {
			return 0, 0, 0, 0, derr
		}
		if d0 != members || d1 != nx || d2 != ny {
			return 0, 0, 0, 0, fmt.Errorf("%s day %d has shape (%d, %d, %d), want (%d, %d, %d): %w",
				name, day, d0, d1, d2, members, nx, ny, common.ErrorInvalidShape)
		}
	}
	return len(yEns), members, nx, ny, nil
}

func checkCube(name string, c [][][]float64, days, nx, ny int) error {
	d0, d1, d2, err := cubeDims(name, c)
	if err != nil {
		return err
	}
	if d0 != days || d1 != nx || d2 != ny {
		return fmt.Errorf("%s has shape (%d, %d, %d), want (%d, %d, %d): %w",
			name, d0, d1, d2, days, nx, ny, common.ErrorInvalidShape)
	}
	return nil
}

func checkMask(name string, mask [][]bool, nx, ny int) error {
	if len(mask) != nx {
		return fmt.Errorf("%s has %d rows, want %d: %w", name, len(mask), nx, common.ErrorInvalidShape)
	}
	for i := range mask {
		if len(mask[i]) != ny {
			return fmt.Errorf("%s row %d has %d cols, want %d: %w", name, i, len(mask[i]), ny, common.ErrorInvalidShape)
		}
	}
	return nil
}

package score

import "math"

func nanMatrix(rows, cols int) [][]float64 {
	m := make([][]float64, rows)
	for i := range m {
		m[i] = make([]float64, cols)
		for j := range m[i] {
			m[i][j] = math.NaN()
		}
	}
	return m
}

func nanCube(d0, d1, d2 int) [][][]float64 {
	c := make([][][]float64, d0)
	for i := range c {
		c[i] = nanMatrix(d1, d2)
	}
	return c
}

func subMatrix(a, b [][]float64) [][]float64 {
	res := make([][]float64, len(a))
	for i := range a {
		res[i] = make([]float64, len(a[i]))
		for j := range a[i] {
			res[i][j] = a[i][j] - b[i][j]
		}
	}
	return res
}

func subCube(a, b [][][]float64) [][][]float64 {
	res := make([][][]float64, len(a))
	for i := range a {
		res[i] = subMatrix(a[i], b[i])
	}
	return res
}

package main

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ProbabilityTable is a column-normalised FrequencyTable: every column sums
// to one.
type ProbabilityTable struct {
	Probs *mat.Dense
	Cols  []string
}

// Aggregate normalises each column of the frequency table by its total.
// Pure function: the input table is not modified and repeated calls yield
// identical output.
func Aggregate(ft FrequencyTable) (ProbabilityTable, error) {
	if ft.Counts == nil || ft.Trials <= 0 {
		return ProbabilityTable{}, fmt.Errorf("empty frequency table: %w", ErrInvalidInput)
	}

	rows, cols := ft.Counts.Dims()
	probs := mat.NewDense(rows, cols, nil)
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, ft.Counts)
		total := floats.Sum(col)
		if total == 0 {
			return ProbabilityTable{}, fmt.Errorf("column %d has no observations: %w", j, ErrInvalidInput)
		}
		floats.Scale(1/total, col)
		probs.SetCol(j, col)
	}
	return ProbabilityTable{Probs: probs, Cols: append([]string(nil), ft.Cols...)}, nil
}

// Expectation returns the expected count per column.
func (pt ProbabilityTable) Expectation() []float64 {
	rows, cols := pt.Probs.Dims()
	out := make([]float64, cols)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			out[j] += float64(i) * pt.Probs.At(i, j)
		}
	}
	return out
}

// CumulativeAtLeast returns, per column, the probability of seeing at least
// K symbols for every K. Row zero is always one.
func (pt ProbabilityTable) CumulativeAtLeast() *mat.Dense {
	rows, cols := pt.Probs.Dims()
	cum := mat.NewDense(rows, cols, nil)
	for j := 0; j < cols; j++ {
		tail := 0.0
		for i := rows - 1; i >= 0; i-- {
			tail += pt.Probs.At(i, j)
			cum.Set(i, j, tail)
		}
	}
	return cum
}

// PercentageLabels renders each cell as a percentage with one decimal, the
// annotation format used on the heatmaps.
func PercentageLabels(pt ProbabilityTable) [][]string {
	rows, cols := pt.Probs.Dims()
	labels := make([][]string, rows)
	for i := 0; i < rows; i++ {
		labels[i] = make([]string, cols)
		for j := 0; j < cols; j++ {
			labels[i][j] = fmt.Sprintf("%.1f", pt.Probs.At(i, j)*100)
		}
	}
	return labels
}

// Percentiles reports empirical quantiles of one frequency-table column,
// weighting each count value by its observed frequency.
func Percentiles(ft FrequencyTable, col int, quantiles ...float64) ([]float64, error) {
	if ft.Counts == nil {
		return nil, fmt.Errorf("empty frequency table: %w", ErrInvalidInput)
	}
	rows, cols := ft.Counts.Dims()
	if col < 0 || col >= cols {
		return nil, fmt.Errorf("column %d out of range: %w", col, ErrInvalidInput)
	}

	xs := make([]float64, rows)
	for i := range xs {
		xs[i] = float64(i)
	}
	weights := mat.Col(nil, col, ft.Counts)

	out := make([]float64, len(quantiles))
	for i, q := range quantiles {
		if q < 0 || q > 1 {
			return nil, fmt.Errorf("quantile %v out of range: %w", q, ErrInvalidInput)
		}
		out[i] = stat.Quantile(q, stat.Empirical, xs, weights)
	}
	return out, nil
}

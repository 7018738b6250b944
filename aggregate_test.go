package main

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func TestAggregateColumnsSumToOne(t *testing.T) {
	freq, err := RunChase(NewKingOfTokyoDie(), NewRoller(11), One, 6, 4, 5000)
	if err != nil {
		t.Fatal(err)
	}
	probs, err := Aggregate(freq)
	if err != nil {
		t.Fatal(err)
	}
	_, cols := probs.Probs.Dims()
	for j := 0; j < cols; j++ {
		sum := floats.Sum(mat.Col(nil, j, probs.Probs))
		if math.Abs(sum-1.0) > 1e-9 {
			t.Fatalf("column %d sums to %v", j, sum)
		}
	}
}

func TestAggregateIdempotent(t *testing.T) {
	freq, err := RunSimulation(NewKingOfTokyoDie(), NewRoller(11), Claw, 4, 1000)
	if err != nil {
		t.Fatal(err)
	}
	a, err := Aggregate(freq)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Aggregate(freq)
	if err != nil {
		t.Fatal(err)
	}
	if !mat.Equal(a.Probs, b.Probs) {
		t.Fatal("repeated aggregation produced different tables")
	}
}

func TestAggregateEmptyTable(t *testing.T) {
	if _, err := Aggregate(FrequencyTable{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFairDieExpectation(t *testing.T) {
	// Six dice, six equally likely symbols: expected count of any one
	// symbol is 1.0, within Monte Carlo tolerance at 10k trials.
	freq, err := RunSimulation(NewKingOfTokyoDie(), NewRoller(21), Heart, 6, 10000)
	if err != nil {
		t.Fatal(err)
	}
	probs, err := Aggregate(freq)
	if err != nil {
		t.Fatal(err)
	}
	exp := probs.Expectation()[0]
	if math.Abs(exp-1.0) > 0.1 {
		t.Fatalf("expectation %v, expected 1.0 +/- 0.1", exp)
	}
}

func TestCumulativeAtLeast(t *testing.T) {
	freq, err := RunSimulation(NewKingOfTokyoDie(), NewRoller(13), Energy, 5, 2000)
	if err != nil {
		t.Fatal(err)
	}
	probs, err := Aggregate(freq)
	if err != nil {
		t.Fatal(err)
	}
	cum := probs.CumulativeAtLeast()
	rows, _ := cum.Dims()
	if math.Abs(cum.At(0, 0)-1.0) > 1e-9 {
		t.Fatalf("P(>=0) = %v, expected 1", cum.At(0, 0))
	}
	for i := 1; i < rows; i++ {
		if cum.At(i, 0) > cum.At(i-1, 0)+1e-12 {
			t.Fatalf("cumulative increased at row %d", i)
		}
	}
}

func TestPercentageLabels(t *testing.T) {
	probs := ProbabilityTable{
		Probs: mat.NewDense(2, 1, []float64{0.25, 0.75}),
		Cols:  []string{"Roll 1"},
	}
	labels := PercentageLabels(probs)
	if labels[0][0] != "25.0" || labels[1][0] != "75.0" {
		t.Fatalf("labels = %v", labels)
	}
}

func TestPercentiles(t *testing.T) {
	freq, err := RunChase(NewKingOfTokyoDie(), NewRoller(17), One, 6, 3, 2000)
	if err != nil {
		t.Fatal(err)
	}
	pcts, err := Percentiles(freq, 2, 0.68, 0.95)
	if err != nil {
		t.Fatal(err)
	}
	if pcts[0] > pcts[1] {
		t.Fatalf("68th percentile %v above 95th %v", pcts[0], pcts[1])
	}
	if pcts[1] < 0 || pcts[1] > 6 {
		t.Fatalf("95th percentile %v outside hit range", pcts[1])
	}
	if _, err := Percentiles(freq, 9, 0.5); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("bad column: got %v", err)
	}
}

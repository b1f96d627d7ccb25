package trainer

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/recrutaml/recruta/internal/modeling"
)

// separableTable builds a table where the first feature fully determines the
// label, with some noise features alongside.
func separableTable(rows int, seed int64) *modeling.FeatureTable {
	rng := rand.New(rand.NewSource(seed))
	table := &modeling.FeatureTable{Columns: []string{"signal", "noise_a", "noise_b"}}
	for i := 0; i < rows; i++ {
		label := float64(i % 2)
		table.X = append(table.X, []float64{label, rng.Float64(), rng.Float64()})
		table.Y = append(table.Y, label)
	}
	return table
}

func TestTrainLearnsSeparableData(t *testing.T) {
	t.Parallel()

	table := separableTable(200, 1)
	params := DefaultParams()

	model, eval, err := Train(table, params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(model.Weights) != len(table.Columns) {
		t.Fatalf("expected %d weights, got %d", len(table.Columns), len(model.Weights))
	}
	if eval.TrainRows+eval.TestRows != 200 {
		t.Fatalf("split does not cover the table: %d + %d", eval.TrainRows, eval.TestRows)
	}
	if eval.Accuracy < 0.9 {
		t.Fatalf("expected near-perfect accuracy on separable data, got %g", eval.Accuracy)
	}
	if model.Predict([]float64{1, 0.5, 0.5}) != 1 {
		t.Fatalf("expected positive prediction for positive signal")
	}
	if model.Predict([]float64{0, 0.5, 0.5}) != 0 {
		t.Fatalf("expected negative prediction for negative signal")
	}
}

func TestTrainIsDeterministic(t *testing.T) {
	t.Parallel()

	params := DefaultParams()
	first, _, err := Train(separableTable(80, 7), params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _, err := Train(separableTable(80, 7), params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("equal inputs and seed must reproduce the same model")
	}
}

func TestTrainRejectsBadInput(t *testing.T) {
	t.Parallel()

	params := DefaultParams()

	if _, _, err := Train(&modeling.FeatureTable{}, params); err == nil {
		t.Fatalf("expected error for empty table")
	}

	table := separableTable(10, 1)
	bad := params
	bad.Epochs = 0
	if _, _, err := Train(table, bad); err == nil {
		t.Fatalf("expected error for zero epochs")
	}

	bad = params
	bad.TestFraction = 1
	if _, _, err := Train(table, bad); err == nil {
		t.Fatalf("expected error for test fraction of 1")
	}
}

func TestScoreIsAProbability(t *testing.T) {
	t.Parallel()

	model := &Model{Columns: []string{"a"}, Weights: []float64{12}, Intercept: -3}
	for _, value := range []float64{-100, -1, 0, 1, 100} {
		score := model.Score([]float64{value})
		if score < 0 || score > 1 {
			t.Fatalf("score %g for input %g is not a probability", score, value)
		}
	}
}

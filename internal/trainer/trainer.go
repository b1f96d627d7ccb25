// Package trainer fits the hire-outcome classifier. The model is a logistic
// regression trained by full-batch gradient descent; the weight vector keeps
// the dashboard side simple and the per-feature contributions inspectable.
package trainer

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/recrutaml/recruta/internal/modeling"
)

// Params controls one training run. The zero value is not usable; call
// DefaultParams and override from configuration.
type Params struct {
	Epochs       int     `mapstructure:"epochs"`
	LearningRate float64 `mapstructure:"learning_rate"`
	TestFraction float64 `mapstructure:"test_fraction"`
	Seed         int64   `mapstructure:"seed"`
}

// DefaultParams returns the training defaults.
func DefaultParams() Params {
	return Params{
		Epochs:       400,
		LearningRate: 0.05,
		TestFraction: 0.3,
		Seed:         42,
	}
}

// Model is the trained classifier: one weight per feature column plus an
// intercept. Columns pins the expected feature order so a scoring request
// with a different matrix layout fails loudly at load time.
type Model struct {
	Columns   []string  `json:"columns"`
	Weights   []float64 `json:"weights"`
	Intercept float64   `json:"intercept"`
}

// Evaluation reports the held-out performance of a training run.
type Evaluation struct {
	Accuracy     float64
	PositiveRate float64
	TrainRows    int
	TestRows     int
}

// Train fits a logistic regression on the feature table. The rows are
// shuffled with the seeded source and split into train and test partitions
// before fitting, so runs with equal inputs and parameters reproduce the
// same model bit for bit.
func Train(table *modeling.FeatureTable, params Params) (*Model, Evaluation, error) {
	if table.Rows() == 0 {
		return nil, Evaluation{}, fmt.Errorf("feature table is empty, nothing to train on")
	}
	if len(table.Columns) == 0 {
		return nil, Evaluation{}, fmt.Errorf("feature table has no columns")
	}
	if params.Epochs <= 0 || params.LearningRate <= 0 {
		return nil, Evaluation{}, fmt.Errorf("invalid training parameters: epochs=%d rate=%g", params.Epochs, params.LearningRate)
	}
	if params.TestFraction < 0 || params.TestFraction >= 1 {
		return nil, Evaluation{}, fmt.Errorf("test fraction %g outside [0, 1)", params.TestFraction)
	}

	rng := rand.New(rand.NewSource(params.Seed))
	order := rng.Perm(table.Rows())

	testSize := int(float64(table.Rows()) * params.TestFraction)
	trainSize := table.Rows() - testSize
	if trainSize == 0 {
		return nil, Evaluation{}, fmt.Errorf("test fraction %g leaves no training rows", params.TestFraction)
	}

	features := len(table.Columns)
	trainX := mat.NewDense(trainSize, features, nil)
	trainY := make([]float64, trainSize)
	for i := 0; i < trainSize; i++ {
		trainX.SetRow(i, table.X[order[i]])
		trainY[i] = table.Y[order[i]]
	}

	weights := fit(trainX, trainY, params)

	model := &Model{
		Columns:   append([]string(nil), table.Columns...),
		Weights:   weights[:features],
		Intercept: weights[features],
	}

	eval := Evaluation{TrainRows: trainSize, TestRows: testSize}
	if testSize > 0 {
		correct, positives := 0, 0
		for i := trainSize; i < table.Rows(); i++ {
			row := table.X[order[i]]
			predicted := 0.0
			if model.Score(row) >= 0.5 {
				predicted = 1
				positives++
			}
			if predicted == table.Y[order[i]] {
				correct++
			}
		}
		eval.Accuracy = float64(correct) / float64(testSize)
		eval.PositiveRate = float64(positives) / float64(testSize)
	}

	return model, eval, nil
}

// fit runs full-batch gradient descent and returns the weight vector with
// the intercept appended as the last element.
func fit(x *mat.Dense, y []float64, params Params) []float64 {
	rows, features := x.Dims()
	weights := make([]float64, features+1)

	scores := make([]float64, rows)
	gradient := make([]float64, features+1)

	for epoch := 0; epoch < params.Epochs; epoch++ {
		xw := mat.NewVecDense(rows, scores)
		xw.MulVec(x, mat.NewVecDense(features, weights[:features]))

		for i := range gradient {
			gradient[i] = 0
		}
		for i := 0; i < rows; i++ {
			residual := sigmoid(scores[i]+weights[features]) - y[i]
			row := x.RawRowView(i)
			for j := 0; j < features; j++ {
				gradient[j] += residual * row[j]
			}
			gradient[features] += residual
		}

		step := params.LearningRate / float64(rows)
		for i := range weights {
			weights[i] -= step * gradient[i]
		}
	}

	return weights
}

// Score returns the predicted hire probability for one feature vector. The
// vector must follow the model's column order.
func (m *Model) Score(features []float64) float64 {
	sum := m.Intercept
	for i, weight := range m.Weights {
		sum += weight * features[i]
	}
	return sigmoid(sum)
}

// Predict returns the 0/1 class at the conventional 0.5 threshold.
func (m *Model) Predict(features []float64) int {
	if m.Score(features) >= 0.5 {
		return 1
	}
	return 0
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

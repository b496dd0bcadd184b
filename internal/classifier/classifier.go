// Package classifier holds the recruitment-risk model the prediction facade calls.
package classifier

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"github.com/AmrrSalem/dsnd-dashboard-project/internal/database/models"
	apperrors "github.com/AmrrSalem/dsnd-dashboard-project/internal/errors"

	"gopkg.in/yaml.v3"
)

//go:generate mockgen -source=classifier.go -destination=../mocks/classifier_mocks.go -package=mocks

// KindLogisticRegression is the only model kind understood by Parse
const KindLogisticRegression = "logistic_regression"

//go:embed model.yaml
var defaultModel []byte

// Classifier scores feature rows. Each result row is [p(negative class), p(positive class)].
type Classifier interface {
	PredictProba(rows []models.FeatureRecord) ([][2]float64, error)
}

// LogisticRegression is a two-feature binary logistic model. It is immutable once built.
type LogisticRegression struct {
	intercept      float64
	positiveWeight float64
	negativeWeight float64
}

// modelFile is the on-disk layout; JSON files parse as well since yaml.v3 accepts them
type modelFile struct {
	Kind         string   `yaml:"kind"`
	Intercept    *float64 `yaml:"intercept"`
	Coefficients struct {
		PositiveEvents *float64 `yaml:"positive_events"`
		NegativeEvents *float64 `yaml:"negative_events"`
	} `yaml:"coefficients"`
}

// NewLogisticRegression builds a model from explicit coefficients
func NewLogisticRegression(intercept, positiveWeight, negativeWeight float64) (*LogisticRegression, error) {
	for _, v := range []float64{intercept, positiveWeight, negativeWeight} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: coefficients must be finite", apperrors.ErrModelFileInvalid)
		}
	}
	return &LogisticRegression{
		intercept:      intercept,
		positiveWeight: positiveWeight,
		negativeWeight: negativeWeight,
	}, nil
}

// Default returns the model bundled with the binary
func Default() (*LogisticRegression, error) {
	return Parse(defaultModel)
}

// Load reads a model file from path
func Load(path string) (*LogisticRegression, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model file %s: %w", path, err)
	}
	model, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("model file %s: %w", path, err)
	}
	return model, nil
}

// LoadOrDefault loads path, or the bundled model when path is empty
func LoadOrDefault(path string) (*LogisticRegression, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

// Parse decodes a YAML or JSON model description
func Parse(data []byte) (*LogisticRegression, error) {
	var file modelFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrModelFileInvalid, err)
	}

	if file.Kind != "" && file.Kind != KindLogisticRegression {
		return nil, fmt.Errorf("%w: unsupported kind %q", apperrors.ErrModelFileInvalid, file.Kind)
	}
	if file.Intercept == nil || file.Coefficients.PositiveEvents == nil || file.Coefficients.NegativeEvents == nil {
		return nil, fmt.Errorf("%w: intercept and both coefficients are required", apperrors.ErrModelFileInvalid)
	}

	return NewLogisticRegression(*file.Intercept, *file.Coefficients.PositiveEvents, *file.Coefficients.NegativeEvents)
}

// PredictProba returns one probability pair per input row, in input order
func (m *LogisticRegression) PredictProba(rows []models.FeatureRecord) ([][2]float64, error) {
	out := make([][2]float64, len(rows))
	for i, row := range rows {
		if row.PositiveEvents < 0 || row.NegativeEvents < 0 {
			return nil, fmt.Errorf("row %d: event counts must be non-negative", i)
		}
		z := m.intercept +
			m.positiveWeight*float64(row.PositiveEvents) +
			m.negativeWeight*float64(row.NegativeEvents)
		p := sigmoid(z)
		out[i] = [2]float64{1 - p, p}
	}
	return out, nil
}

// Coefficients returns intercept, positive and negative weights
func (m *LogisticRegression) Coefficients() (float64, float64, float64) {
	return m.intercept, m.positiveWeight, m.negativeWeight
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}

package classifier

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/AmrrSalem/dsnd-dashboard-project/internal/database/models"
	apperrors "github.com/AmrrSalem/dsnd-dashboard-project/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultModel(t *testing.T) {
	model, err := Default()
	require.NoError(t, err)

	intercept, pos, neg := model.Coefficients()
	assert.Equal(t, -1.2, intercept)
	assert.Equal(t, -0.18, pos)
	assert.Equal(t, 0.42, neg)

	var _ Classifier = model
}

func TestPredictProba(t *testing.T) {
	model, err := NewLogisticRegression(0, 1, -1)
	require.NoError(t, err)

	probs, err := model.PredictProba([]models.FeatureRecord{
		{PositiveEvents: 0, NegativeEvents: 0},
		{PositiveEvents: 2, NegativeEvents: 0},
		{PositiveEvents: 0, NegativeEvents: 3},
	})
	require.NoError(t, err)
	require.Len(t, probs, 3)

	assert.InDelta(t, 0.5, probs[0][1], 1e-12)
	assert.InDelta(t, 1/(1+math.Exp(-2)), probs[1][1], 1e-12)
	assert.InDelta(t, 1/(1+math.Exp(3)), probs[2][1], 1e-12)
	for _, p := range probs {
		assert.InDelta(t, 1.0, p[0]+p[1], 1e-12)
	}
}

func TestPredictProbaMoreNegativeEventsRaisesRisk(t *testing.T) {
	model, err := Default()
	require.NoError(t, err)

	probs, err := model.PredictProba([]models.FeatureRecord{
		{PositiveEvents: 5, NegativeEvents: 1},
		{PositiveEvents: 5, NegativeEvents: 6},
	})
	require.NoError(t, err)
	assert.Less(t, probs[0][1], probs[1][1])
}

func TestPredictProbaExtremeInputsStayFinite(t *testing.T) {
	model, err := NewLogisticRegression(0, 50, -50)
	require.NoError(t, err)

	probs, err := model.PredictProba([]models.FeatureRecord{
		{PositiveEvents: 1000},
		{NegativeEvents: 1000},
	})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, probs[0][1], 1e-12)
	assert.InDelta(t, 0.0, probs[1][1], 1e-12)
	assert.False(t, math.IsNaN(probs[1][1]))
}

func TestPredictProbaEmptyAndInvalidRows(t *testing.T) {
	model, err := Default()
	require.NoError(t, err)

	probs, err := model.PredictProba(nil)
	require.NoError(t, err)
	assert.Empty(t, probs)

	_, err = model.PredictProba([]models.FeatureRecord{{PositiveEvents: -1}})
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{
			name: "YAML",
			data: "kind: logistic_regression\nintercept: 0.5\ncoefficients:\n  positive_events: -1\n  negative_events: 1\n",
		},
		{
			name: "JSON",
			data: `{"intercept": 0.5, "coefficients": {"positive_events": -1, "negative_events": 1}}`,
		},
		{
			name:    "Unknown kind",
			data:    "kind: random_forest\nintercept: 0\ncoefficients:\n  positive_events: 0\n  negative_events: 0\n",
			wantErr: true,
		},
		{
			name:    "Missing coefficient",
			data:    "intercept: 0\ncoefficients:\n  positive_events: 1\n",
			wantErr: true,
		},
		{
			name:    "Malformed",
			data:    "intercept: [",
			wantErr: true,
		},
		{
			name:    "Infinite coefficient",
			data:    "intercept: .inf\ncoefficients:\n  positive_events: 1\n  negative_events: 1\n",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			model, err := Parse([]byte(tc.data))
			if tc.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrModelFileInvalid)
				assert.True(t, apperrors.IsConfiguration(err))
				assert.Nil(t, model)
				return
			}
			require.NoError(t, err)
			intercept, pos, neg := model.Coefficients()
			assert.Equal(t, 0.5, intercept)
			assert.Equal(t, -1.0, pos)
			assert.Equal(t, 1.0, neg)
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"intercept": 1, "coefficients": {"positive_events": 2, "negative_events": 3}}`), 0o600))

	model, err := LoadOrDefault(path)
	require.NoError(t, err)
	intercept, _, _ := model.Coefficients()
	assert.Equal(t, 1.0, intercept)

	model, err = LoadOrDefault("")
	require.NoError(t, err)
	intercept, _, _ = model.Coefficients()
	assert.Equal(t, -1.2, intercept)

	_, err = LoadOrDefault(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

package service

import (
	"context"
	"fmt"

	"github.com/AmrrSalem/dsnd-dashboard-project/internal/classifier"
	"github.com/AmrrSalem/dsnd-dashboard-project/internal/database/models"
	apperrors "github.com/AmrrSalem/dsnd-dashboard-project/internal/errors"
	"github.com/AmrrSalem/dsnd-dashboard-project/internal/logger"
	"github.com/AmrrSalem/dsnd-dashboard-project/internal/metrics"
	"github.com/AmrrSalem/dsnd-dashboard-project/internal/repository"
)

// RiskService turns model features into a recruitment-risk probability
type RiskService struct {
	model classifier.Classifier
}

// NewRiskService creates a new risk service around a loaded classifier
func NewRiskService(model classifier.Classifier) *RiskService {
	return &RiskService{
		model: model,
	}
}

// RiskResponse represents the prediction for one subject.
// Available is false when the subject has no feature rows; Probability is then meaningless.
type RiskResponse struct {
	Subject     models.SubjectKind `json:"subject" example:"team"`
	ID          int64              `json:"id" example:"1"`
	Probability float64            `json:"probability" example:"0.42"`
	Available   bool               `json:"available" example:"true"`
	Rows        int                `json:"rows" example:"4"`
}

// Predict scores the subject id served by repo. An employee gets its single
// probability, a team the mean over its members.
func (s *RiskService) Predict(ctx context.Context, repo repository.SubjectRepositoryInterface, id int64) (*RiskResponse, error) {
	kind := repo.Subject().Kind
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"subject": string(kind),
		"id":      id,
	})

	response := &RiskResponse{Subject: kind, ID: id}

	rows := repo.ModelFeatures(ctx, id)
	if len(rows) == 0 {
		metrics.RecordPrediction(string(kind), metrics.OutcomeUnavailable)
		log.Debug("no feature rows, prediction unavailable")
		return response, nil
	}

	probabilities, err := s.model.PredictProba(rows)
	if err != nil {
		metrics.RecordPrediction(string(kind), metrics.OutcomeError)
		return nil, fmt.Errorf("predict %s %d: %w", kind, id, err)
	}
	if len(probabilities) != len(rows) {
		metrics.RecordPrediction(string(kind), metrics.OutcomeError)
		return nil, fmt.Errorf("predict %s %d: %w", kind, id, apperrors.ErrClassifierOutputSize)
	}

	switch kind {
	case models.SubjectEmployee:
		response.Probability = probabilities[0][1]
	default:
		response.Probability = meanPositive(probabilities)
	}
	response.Available = true
	response.Rows = len(rows)

	metrics.RecordPrediction(string(kind), metrics.OutcomeAvailable)
	log.WithField("probability", response.Probability).Debug("prediction computed")

	return response, nil
}

func meanPositive(probabilities [][2]float64) float64 {
	var sum float64
	for _, p := range probabilities {
		sum += p[1]
	}
	return sum / float64(len(probabilities))
}

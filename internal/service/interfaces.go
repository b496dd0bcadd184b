package service

import (
	"context"
	"io"

	"github.com/AmrrSalem/dsnd-dashboard-project/internal/database/models"
	"github.com/AmrrSalem/dsnd-dashboard-project/internal/repository"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// RiskServiceInterface defines the interface for the prediction facade
type RiskServiceInterface interface {
	Predict(ctx context.Context, repo repository.SubjectRepositoryInterface, id int64) (*RiskResponse, error)
}

// ReportServiceInterface defines the interface for report composition
type ReportServiceInterface interface {
	Repository(kind models.SubjectKind) (repository.SubjectRepositoryInterface, error)
	Build(ctx context.Context, kind models.SubjectKind, id int64) (*ReportResponse, error)
}

// ExportServiceInterface defines the interface for report export
type ExportServiceInterface interface {
	WriteXLSX(ctx context.Context, w io.Writer, report *ReportResponse) error
}

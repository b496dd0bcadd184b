package service

import (
	"context"
	"fmt"

	"github.com/AmrrSalem/dsnd-dashboard-project/internal/database/models"
	apperrors "github.com/AmrrSalem/dsnd-dashboard-project/internal/errors"
	"github.com/AmrrSalem/dsnd-dashboard-project/internal/repository"
)

// ReportService composes the dashboard view of one subject
type ReportService struct {
	repos map[models.SubjectKind]repository.SubjectRepositoryInterface
	risk  RiskServiceInterface
}

// NewReportService creates a new report service; each repository is keyed by its subject kind
func NewReportService(risk RiskServiceInterface, repos ...repository.SubjectRepositoryInterface) *ReportService {
	byKind := make(map[models.SubjectKind]repository.SubjectRepositoryInterface, len(repos))
	for _, repo := range repos {
		byKind[repo.Subject().Kind] = repo
	}
	return &ReportService{
		repos: byKind,
		risk:  risk,
	}
}

// ReportResponse represents everything the dashboard shows for one subject
type ReportResponse struct {
	Subject    models.SubjectKind       `json:"subject" example:"employee"`
	ID         int64                    `json:"id" example:"1"`
	Name       string                   `json:"name" example:"Ada Lovelace"`
	Options    []models.NameOption      `json:"options"`
	Events     []models.EventCount      `json:"events"`
	Cumulative []models.CumulativePoint `json:"cumulative"`
	Notes      []models.NoteEntry       `json:"notes"`
	Risk       *RiskResponse            `json:"risk"`
}

// Repository resolves the repository serving kind
func (s *ReportService) Repository(kind models.SubjectKind) (repository.SubjectRepositoryInterface, error) {
	repo, ok := s.repos[kind]
	if !ok {
		return nil, apperrors.ErrUnknownSubjectKind
	}
	return repo, nil
}

// Build assembles the report for id. An unknown id yields the same shape with empty parts.
func (s *ReportService) Build(ctx context.Context, kind models.SubjectKind, id int64) (*ReportResponse, error) {
	repo, err := s.Repository(kind)
	if err != nil {
		return nil, err
	}

	risk, err := s.risk.Predict(ctx, repo, id)
	if err != nil {
		return nil, fmt.Errorf("build %s report: %w", kind, err)
	}

	events := repo.EventCounts(ctx, id)

	return &ReportResponse{
		Subject:    kind,
		ID:         id,
		Name:       repo.ResolveName(ctx, id),
		Options:    repo.ListNames(ctx),
		Events:     events,
		Cumulative: CumulativeSeries(events),
		Notes:      repo.Notes(ctx, id),
		Risk:       risk,
	}, nil
}

// MaxCumulativeDays bounds the length of a cumulative series
const MaxCumulativeDays = 3660

// CumulativeSeries returns running event totals for every calendar day from the
// earliest to the latest date in counts. Days without events repeat the previous totals.
// Spans longer than MaxCumulativeDays keep only the most recent days; earlier events
// are carried into the first point.
func CumulativeSeries(counts []models.EventCount) []models.CumulativePoint {
	if len(counts) == 0 {
		return []models.CumulativePoint{}
	}

	first, last := counts[0].EventDate, counts[0].EventDate
	perDay := make(map[string]models.EventCount, len(counts))
	for _, c := range counts {
		if c.EventDate.Before(first) {
			first = c.EventDate
		}
		if last.Before(c.EventDate) {
			last = c.EventDate
		}
		day := perDay[c.EventDate.String()]
		day.PositiveEvents += c.PositiveEvents
		day.NegativeEvents += c.NegativeEvents
		perDay[c.EventDate.String()] = day
	}

	var positive, negative int64
	if start := last.AddDays(1 - MaxCumulativeDays); first.Before(start) {
		for _, c := range counts {
			if c.EventDate.Before(start) {
				positive += c.PositiveEvents
				negative += c.NegativeEvents
			}
		}
		first = start
	}

	series := make([]models.CumulativePoint, 0, len(perDay))
	for day := first; !last.Before(day); day = day.AddDays(1) {
		c := perDay[day.String()]
		positive += c.PositiveEvents
		negative += c.NegativeEvents
		series = append(series, models.CumulativePoint{
			Date:     day,
			Positive: positive,
			Negative: negative,
		})
	}
	return series
}

package repository

import (
	"context"

	"github.com/AmrrSalem/dsnd-dashboard-project/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// SubjectRepositoryInterface is the query contract shared by every subject kind.
// No operation returns an error: storage faults are logged and replaced by an
// empty result so that reporting code can always render something.
type SubjectRepositoryInterface interface {
	// Subject returns the table configuration this repository was built with
	Subject() models.Subject
	// ListNames returns every entity of this kind as (display name, id), ordered by id
	ListNames(ctx context.Context) []models.NameOption
	// ResolveName returns the display name for id, or "" when there is none
	ResolveName(ctx context.Context, id int64) string
	// EventCounts returns per-date positive and negative event counts, ascending by date
	EventCounts(ctx context.Context, id int64) []models.EventCount
	// Notes returns the notes attached to id for this subject kind, ascending by date
	Notes(ctx context.Context, id int64) []models.NoteEntry
	// ModelFeatures returns classifier input rows: one for an employee, one per member for a team
	ModelFeatures(ctx context.Context, id int64) []models.FeatureRecord
}

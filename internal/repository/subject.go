package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/AmrrSalem/dsnd-dashboard-project/internal/database/models"
	"github.com/AmrrSalem/dsnd-dashboard-project/internal/logger"
	"github.com/AmrrSalem/dsnd-dashboard-project/internal/metrics"

	"gorm.io/gorm"
)

// DefaultQueryTimeout applies when a repository is built with a zero timeout
const DefaultQueryTimeout = 5 * time.Second

// Operation names used in logs and metrics
const (
	opListNames     = "list_names"
	opResolveName   = "resolve_name"
	opEventCounts   = "event_counts"
	opNotes         = "notes"
	opModelFeatures = "model_features"
)

// event type literals are bound like any other argument
var (
	positive = string(models.EventTypePositive)
	negative = string(models.EventTypeNegative)
)

// subjectStatements holds the SQL a subject repository issues.
// Only models.Subject identifiers are formatted into it; ids are always bound.
type subjectStatements struct {
	listNames     string
	resolveName   string
	notes         string
	eventCounts   string
	modelFeatures string
}

// subjectQuery implements the parts of the contract that only differ by table and column names
type subjectQuery struct {
	db         *gorm.DB
	subject    models.Subject
	timeout    time.Duration
	statements subjectStatements
}

func newSubjectQuery(db *gorm.DB, subject models.Subject, timeout time.Duration) subjectQuery {
	if timeout <= 0 {
		timeout = DefaultQueryTimeout
	}

	return subjectQuery{
		db:      db,
		subject: subject,
		timeout: timeout,
		statements: subjectStatements{
			listNames: fmt.Sprintf(
				`SELECT %[1]s AS name, %[2]s AS id FROM %[3]s ORDER BY %[2]s`,
				subject.NameColumn, subject.IDColumn, subject.Table,
			),
			resolveName: fmt.Sprintf(
				`SELECT %[1]s FROM %[2]s WHERE %[3]s = ?`,
				subject.NameColumn, subject.Table, subject.IDColumn,
			),
			notes: fmt.Sprintf(
				`SELECT note_date, note FROM notes WHERE %s = ? AND table_name = ? ORDER BY note_date, note_id`,
				subject.IDColumn,
			),
		},
	}
}

// Subject returns the table configuration of this repository
func (q *subjectQuery) Subject() models.Subject {
	return q.subject
}

// ListNames returns every entity of this subject kind
func (q *subjectQuery) ListNames(ctx context.Context) []models.NameOption {
	var rows []models.NameOption
	if !q.scan(ctx, opListNames, 0, &rows, q.statements.listNames) {
		return []models.NameOption{}
	}
	return nonNil(rows)
}

// ResolveName returns the display name for id, or "" if the id is unknown
func (q *subjectQuery) ResolveName(ctx context.Context, id int64) string {
	var names []string
	if !q.scan(ctx, opResolveName, id, &names, q.statements.resolveName, id) || len(names) == 0 {
		return ""
	}
	return names[0]
}

// EventCounts returns event counts per date for id
func (q *subjectQuery) EventCounts(ctx context.Context, id int64) []models.EventCount {
	var rows []models.EventCount
	if !q.scan(ctx, opEventCounts, id, &rows, q.statements.eventCounts,
		positive, negative, id) {
		return []models.EventCount{}
	}
	return nonNil(rows)
}

// Notes returns the notes attached to id whose discriminator matches this subject kind
func (q *subjectQuery) Notes(ctx context.Context, id int64) []models.NoteEntry {
	var rows []models.NoteEntry
	if !q.scan(ctx, opNotes, id, &rows, q.statements.notes, id, string(q.subject.Kind)) {
		return []models.NoteEntry{}
	}
	return nonNil(rows)
}

// ModelFeatures returns classifier input rows for id
func (q *subjectQuery) ModelFeatures(ctx context.Context, id int64) []models.FeatureRecord {
	var rows []models.FeatureRecord
	if !q.scan(ctx, opModelFeatures, id, &rows, q.statements.modelFeatures,
		positive, negative, id) {
		return []models.FeatureRecord{}
	}
	return nonNil(rows)
}

// scan runs one bounded read into dest. A storage fault is logged, counted and
// reported as false; it never reaches the caller.
func (q *subjectQuery) scan(ctx context.Context, operation string, id int64, dest interface{}, sql string, args ...interface{}) bool {
	ctx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()

	kind := string(q.subject.Kind)
	start := time.Now()
	err := q.db.WithContext(ctx).Raw(sql, args...).Scan(dest).Error
	metrics.ObserveQuery(kind, operation, time.Since(start))

	if err != nil {
		logger.WithContext(ctx).
			WithFields(map[string]interface{}{
				"subject":   kind,
				"operation": operation,
				"id":        id,
			}).
			WithError(err).
			Error("storage fault, returning empty result")
		metrics.RecordStorageFault(kind, operation)
		return false
	}
	return true
}

func nonNil[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}

package repository

import (
	"time"

	"github.com/AmrrSalem/dsnd-dashboard-project/internal/database/models"

	"gorm.io/gorm"
)

// EmployeeRepository answers the query contract for single employees
type EmployeeRepository struct {
	subjectQuery
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB, timeout time.Duration) *EmployeeRepository {
	q := newSubjectQuery(db, models.EmployeeSubject, timeout)

	q.statements.eventCounts = `
		SELECT DATE(event_date) AS event_date,
		       SUM(CASE WHEN event_type = ? THEN 1 ELSE 0 END) AS positive_events,
		       SUM(CASE WHEN event_type = ? THEN 1 ELSE 0 END) AS negative_events
		FROM employee_events
		WHERE employee_id = ?
		GROUP BY DATE(event_date)
		ORDER BY DATE(event_date)`

	// one row for a known employee, none for an unknown id
	q.statements.modelFeatures = `
		SELECT COALESCE(SUM(CASE WHEN ev.event_type = ? THEN 1 ELSE 0 END), 0) AS positive_events,
		       COALESCE(SUM(CASE WHEN ev.event_type = ? THEN 1 ELSE 0 END), 0) AS negative_events
		FROM employee e
		LEFT JOIN employee_events ev ON ev.employee_id = e.employee_id
		WHERE e.employee_id = ?
		GROUP BY e.employee_id`

	return &EmployeeRepository{subjectQuery: q}
}

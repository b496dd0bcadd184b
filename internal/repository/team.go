package repository

import (
	"time"

	"github.com/AmrrSalem/dsnd-dashboard-project/internal/database/models"

	"gorm.io/gorm"
)

// TeamRepository answers the query contract for teams through their member employees
type TeamRepository struct {
	subjectQuery
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB, timeout time.Duration) *TeamRepository {
	q := newSubjectQuery(db, models.TeamSubject, timeout)

	q.statements.eventCounts = `
		SELECT DATE(ev.event_date) AS event_date,
		       SUM(CASE WHEN ev.event_type = ? THEN 1 ELSE 0 END) AS positive_events,
		       SUM(CASE WHEN ev.event_type = ? THEN 1 ELSE 0 END) AS negative_events
		FROM employee_events ev
		JOIN employee e ON e.employee_id = ev.employee_id
		WHERE e.team_id = ?
		GROUP BY DATE(ev.event_date)
		ORDER BY DATE(ev.event_date)`

	// one row per member; the rows are never summed into a team total
	q.statements.modelFeatures = `
		SELECT COALESCE(SUM(CASE WHEN ev.event_type = ? THEN 1 ELSE 0 END), 0) AS positive_events,
		       COALESCE(SUM(CASE WHEN ev.event_type = ? THEN 1 ELSE 0 END), 0) AS negative_events
		FROM team t
		JOIN employee e ON e.team_id = t.team_id
		LEFT JOIN employee_events ev ON ev.employee_id = e.employee_id
		WHERE t.team_id = ?
		GROUP BY e.employee_id
		ORDER BY e.employee_id`

	return &TeamRepository{subjectQuery: q}
}

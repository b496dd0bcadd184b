package repository

import (
	"context"
	"testing"
	"time"

	"github.com/AmrrSalem/dsnd-dashboard-project/internal/database/models"
	"github.com/AmrrSalem/dsnd-dashboard-project/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sqlite keeps whatever text it is given in a DATE column, so rows written by
// other tools may carry a time of day
func TestEventCountsGroupByCalendarDay(t *testing.T) {
	testutils.RunWithTestSuite(t, func(s *testutils.BaseTestSuite) {
		team := s.Factories.Team.Create()
		employee := s.Factories.Employee.InTeam(team.TeamID)
		require.NoError(t, s.Seed(team, employee))

		insert := `INSERT INTO employee_events (employee_id, event_date, event_type) VALUES (?, ?, ?)`
		rows := []struct {
			at        string
			eventType models.EventType
		}{
			{at: "2024-01-01 09:00:00", eventType: models.EventTypePositive},
			{at: "2024-01-01 17:00:00", eventType: models.EventTypeNegative},
			{at: "2024-01-01", eventType: models.EventTypePositive},
			{at: "2024-01-02 08:30:00", eventType: models.EventTypeNegative},
		}
		for _, row := range rows {
			require.NoError(t, s.DB.Exec(insert, employee.EmployeeID, row.at, string(row.eventType)).Error)
		}

		expected := []models.EventCount{
			{EventDate: testutils.Day(time.January, 1), PositiveEvents: 2, NegativeEvents: 1},
			{EventDate: testutils.Day(time.January, 2), NegativeEvents: 1},
		}

		ctx := context.Background()
		assert.Equal(t, expected, NewEmployeeRepository(s.DB, time.Second).EventCounts(ctx, employee.EmployeeID))
		assert.Equal(t, expected, NewTeamRepository(s.DB, time.Second).EventCounts(ctx, team.TeamID))
	})
}

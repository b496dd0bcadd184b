package repository

import (
	"context"
	"testing"
	"time"

	"github.com/AmrrSalem/dsnd-dashboard-project/internal/metrics"
	"github.com/AmrrSalem/dsnd-dashboard-project/internal/testutils"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func faultCount(subject, operation string) float64 {
	return testutil.ToFloat64(metrics.Default().StorageFaults(subject, operation))
}

func TestStorageFaultsReturnEmptyResults(t *testing.T) {
	testutils.RunWithTestSuite(t, func(s *testutils.BaseTestSuite) {
		team := s.Factories.Team.Create()
		employee := s.Factories.Employee.InTeam(team.TeamID)
		if err := s.Seed(team, employee, s.Factories.Event.Positive(employee.EmployeeID, testutils.Day(time.March, 1))); err != nil {
			t.Fatalf("seed: %v", err)
		}

		repos := []SubjectRepositoryInterface{
			NewEmployeeRepository(s.DB, time.Second),
			NewTeamRepository(s.DB, time.Second),
		}
		s.BreakStore()

		ctx := context.Background()
		for _, repo := range repos {
			kind := string(repo.Subject().Kind)
			t.Run(kind, func(t *testing.T) {
				before := map[string]float64{}
				for _, op := range []string{opListNames, opResolveName, opEventCounts, opNotes, opModelFeatures} {
					before[op] = faultCount(kind, op)
				}

				names := repo.ListNames(ctx)
				assert.NotNil(t, names)
				assert.Empty(t, names)

				assert.Equal(t, "", repo.ResolveName(ctx, 1))

				counts := repo.EventCounts(ctx, 1)
				assert.NotNil(t, counts)
				assert.Empty(t, counts)

				notes := repo.Notes(ctx, 1)
				assert.NotNil(t, notes)
				assert.Empty(t, notes)

				features := repo.ModelFeatures(ctx, 1)
				assert.NotNil(t, features)
				assert.Empty(t, features)

				for op, value := range before {
					assert.Equal(t, value+1, faultCount(kind, op), op)
				}
			})
		}
	})
}

func TestCancelledContextCountsAsFault(t *testing.T) {
	testutils.RunWithTestSuite(t, func(s *testutils.BaseTestSuite) {
		repo := NewEmployeeRepository(s.DB, time.Second)
		before := faultCount("employee", opEventCounts)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		counts := repo.EventCounts(ctx, 1)
		assert.NotNil(t, counts)
		assert.Empty(t, counts)
		assert.Equal(t, before+1, faultCount("employee", opEventCounts))
	})
}

func TestZeroTimeoutFallsBackToDefault(t *testing.T) {
	testutils.RunWithTestSuite(t, func(s *testutils.BaseTestSuite) {
		assert.Equal(t, DefaultQueryTimeout, NewEmployeeRepository(s.DB, 0).timeout)
		assert.Equal(t, 250*time.Millisecond, NewTeamRepository(s.DB, 250*time.Millisecond).timeout)
	})
}

func TestStatementsBindIdentifiersOnly(t *testing.T) {
	testutils.RunWithTestSuite(t, func(s *testutils.BaseTestSuite) {
		team := NewTeamRepository(s.DB, 0)
		assert.Equal(t, "SELECT team_name AS name, team_id AS id FROM team ORDER BY team_id", team.statements.listNames)
		assert.Equal(t, "SELECT team_name FROM team WHERE team_id = ?", team.statements.resolveName)
		assert.Contains(t, team.statements.notes, "WHERE team_id = ? AND table_name = ?")

		employee := NewEmployeeRepository(s.DB, 0)
		assert.Contains(t, employee.statements.notes, "WHERE employee_id = ? AND table_name = ?")
		assert.Contains(t, employee.statements.eventCounts, "WHERE employee_id = ?")
	})
}

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/AmrrSalem/dsnd-dashboard-project/internal/database/models"
	"github.com/AmrrSalem/dsnd-dashboard-project/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// SubjectRepositoryTestSuite exercises both subject repositories against one store
type SubjectRepositoryTestSuite struct {
	suite.Suite
	open          func(t *testing.T) *testutils.BaseTestSuite
	baseTestSuite *testutils.BaseTestSuite
	employees     *EmployeeRepository
	teams         *TeamRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

func TestSubjectRepositoryTestSuite(t *testing.T) {
	suite.Run(t, &SubjectRepositoryTestSuite{open: testutils.SetupTestSuite})
}

// SetupSuite runs before all tests in the suite
func (suite *SubjectRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = suite.open(suite.T())
	suite.factories = suite.baseTestSuite.Factories
	suite.employees = NewEmployeeRepository(suite.baseTestSuite.DB, suite.baseTestSuite.Config.QueryTimeout)
	suite.teams = NewTeamRepository(suite.baseTestSuite.DB, suite.baseTestSuite.Config.QueryTimeout)
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *SubjectRepositoryTestSuite) TearDownSuite() {
	if suite.baseTestSuite.Config.DatabaseDriver == "sqlite" {
		suite.baseTestSuite.TeardownTestSuite()
	}
}

// SetupTest runs before each test
func (suite *SubjectRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *SubjectRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// seedOrganisation creates two populated teams and an empty one:
//
//	team 1 "Alpha": employee 1 Ada {3 positive, 1 negative}, employee 2 Bob {0, 2}
//	team 2 "Beta":  employee 3 Cy, no events
//	team 3 "Gamma": no members
func (suite *SubjectRepositoryTestSuite) seedOrganisation() {
	alpha := suite.factories.Team.WithName("Alpha")
	beta := suite.factories.Team.WithName("Beta")
	gamma := suite.factories.Team.WithName("Gamma")
	ada := suite.factories.Employee.WithName("Ada Lovelace", alpha.TeamID)
	bob := suite.factories.Employee.WithName("Bob Marley", alpha.TeamID)
	cy := suite.factories.Employee.WithName("Cy Twombly", beta.TeamID)

	events := suite.factories.Event.Many(2, ada.EmployeeID, testutils.Day(time.January, 1), models.EventTypePositive)
	events = append(events,
		suite.factories.Event.Negative(ada.EmployeeID, testutils.Day(time.January, 2)),
		suite.factories.Event.Positive(ada.EmployeeID, testutils.Day(time.January, 3)),
	)
	events = append(events, suite.factories.Event.Many(2, bob.EmployeeID, testutils.Day(time.January, 2), models.EventTypeNegative)...)

	// inserted out of id order on purpose
	suite.Require().NoError(suite.baseTestSuite.Seed(gamma, beta, alpha, cy, bob, ada, events))
}

func (suite *SubjectRepositoryTestSuite) TestSubjectConfiguration() {
	suite.Equal(models.EmployeeSubject, suite.employees.Subject())
	suite.Equal(models.TeamSubject, suite.teams.Subject())
}

func (suite *SubjectRepositoryTestSuite) TestListNamesOrderedByID() {
	suite.seedOrganisation()

	suite.Equal([]models.NameOption{
		{Name: "Ada Lovelace", ID: 1},
		{Name: "Bob Marley", ID: 2},
		{Name: "Cy Twombly", ID: 3},
	}, suite.employees.ListNames(suite.ctx))

	suite.Equal([]models.NameOption{
		{Name: "Alpha", ID: 1},
		{Name: "Beta", ID: 2},
		{Name: "Gamma", ID: 3},
	}, suite.teams.ListNames(suite.ctx))
}

func (suite *SubjectRepositoryTestSuite) TestListNamesEmptyStore() {
	names := suite.employees.ListNames(suite.ctx)
	suite.NotNil(names)
	suite.Empty(names)
}

func (suite *SubjectRepositoryTestSuite) TestResolveName() {
	suite.seedOrganisation()

	suite.Equal("Bob Marley", suite.employees.ResolveName(suite.ctx, 2))
	suite.Equal("Beta", suite.teams.ResolveName(suite.ctx, 2))
	suite.Equal("", suite.employees.ResolveName(suite.ctx, 99))
	suite.Equal("", suite.teams.ResolveName(suite.ctx, -1))
}

func (suite *SubjectRepositoryTestSuite) TestEmployeeEventCountsPerDate() {
	team := suite.factories.Team.Create()
	employee := suite.factories.Employee.InTeam(team.TeamID)
	events := []*models.EmployeeEvent{
		suite.factories.Event.Negative(employee.EmployeeID, testutils.Day(time.January, 2)),
		suite.factories.Event.Positive(employee.EmployeeID, testutils.Day(time.January, 1)),
		suite.factories.Event.Positive(employee.EmployeeID, testutils.Day(time.January, 1)),
	}
	suite.Require().NoError(suite.baseTestSuite.Seed(team, employee, events))

	suite.Equal([]models.EventCount{
		{EventDate: testutils.Day(time.January, 1), PositiveEvents: 2, NegativeEvents: 0},
		{EventDate: testutils.Day(time.January, 2), PositiveEvents: 0, NegativeEvents: 1},
	}, suite.employees.EventCounts(suite.ctx, employee.EmployeeID))
}

func (suite *SubjectRepositoryTestSuite) TestTeamEventCountsSumMembers() {
	suite.seedOrganisation()

	counts := suite.teams.EventCounts(suite.ctx, 1)
	suite.Equal([]models.EventCount{
		{EventDate: testutils.Day(time.January, 1), PositiveEvents: 2, NegativeEvents: 0},
		{EventDate: testutils.Day(time.January, 2), PositiveEvents: 0, NegativeEvents: 3},
		{EventDate: testutils.Day(time.January, 3), PositiveEvents: 1, NegativeEvents: 0},
	}, counts)

	for i := 1; i < len(counts); i++ {
		suite.True(counts[i-1].EventDate.Before(counts[i].EventDate), "dates must be strictly ascending")
	}
}

func (suite *SubjectRepositoryTestSuite) TestEventCountsUnknownOrIdle() {
	suite.seedOrganisation()

	for name, counts := range map[string][]models.EventCount{
		"unknown employee": suite.employees.EventCounts(suite.ctx, 404),
		"idle employee":    suite.employees.EventCounts(suite.ctx, 3),
		"unknown team":     suite.teams.EventCounts(suite.ctx, 404),
		"memberless team":  suite.teams.EventCounts(suite.ctx, 3),
	} {
		suite.NotNil(counts, name)
		suite.Empty(counts, name)
	}
}

func (suite *SubjectRepositoryTestSuite) TestNotesFilteredBySubjectKind() {
	team := suite.factories.Team.Create()
	employee := suite.factories.Employee.InTeam(team.TeamID)
	suite.Require().NoError(suite.baseTestSuite.Seed(
		team,
		employee,
		suite.factories.Note.ForEmployee(employee.EmployeeID, testutils.Day(time.January, 5), "Great sprint"),
		suite.factories.Note.ForTeam(team.TeamID, testutils.Day(time.January, 3), "Offsite planned"),
		suite.factories.Note.ForEmployee(employee.EmployeeID, testutils.Day(time.January, 2), "Missed standup"),
	))
	// both ids are 1; only the discriminator separates the notes
	suite.Require().Equal(team.TeamID, employee.EmployeeID)

	suite.Equal([]models.NoteEntry{
		{NoteDate: testutils.Day(time.January, 2), Note: "Missed standup"},
		{NoteDate: testutils.Day(time.January, 5), Note: "Great sprint"},
	}, suite.employees.Notes(suite.ctx, employee.EmployeeID))

	suite.Equal([]models.NoteEntry{
		{NoteDate: testutils.Day(time.January, 3), Note: "Offsite planned"},
	}, suite.teams.Notes(suite.ctx, team.TeamID))

	notes := suite.teams.Notes(suite.ctx, 2)
	suite.NotNil(notes)
	suite.Empty(notes)
}

func (suite *SubjectRepositoryTestSuite) TestEmployeeModelFeatures() {
	suite.seedOrganisation()

	suite.Equal([]models.FeatureRecord{{PositiveEvents: 3, NegativeEvents: 1}},
		suite.employees.ModelFeatures(suite.ctx, 1))
	suite.Equal([]models.FeatureRecord{{PositiveEvents: 0, NegativeEvents: 0}},
		suite.employees.ModelFeatures(suite.ctx, 3))

	unknown := suite.employees.ModelFeatures(suite.ctx, 404)
	suite.NotNil(unknown)
	suite.Empty(unknown)
}

func (suite *SubjectRepositoryTestSuite) TestTeamModelFeaturesOneRowPerMember() {
	suite.seedOrganisation()

	suite.Equal([]models.FeatureRecord{
		{PositiveEvents: 3, NegativeEvents: 1},
		{PositiveEvents: 0, NegativeEvents: 2},
	}, suite.teams.ModelFeatures(suite.ctx, 1))

	suite.Equal([]models.FeatureRecord{{PositiveEvents: 0, NegativeEvents: 0}},
		suite.teams.ModelFeatures(suite.ctx, 2))

	suite.Empty(suite.teams.ModelFeatures(suite.ctx, 3))
	suite.Empty(suite.teams.ModelFeatures(suite.ctx, 404))
}

func (suite *SubjectRepositoryTestSuite) TestRepositoriesSatisfyContract() {
	var _ SubjectRepositoryInterface = suite.employees
	var _ SubjectRepositoryInterface = suite.teams
}

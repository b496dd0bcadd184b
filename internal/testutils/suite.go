package testutils

import (
	"fmt"
	"testing"
	"time"

	"github.com/AmrrSalem/dsnd-dashboard-project/internal/config"
	"github.com/AmrrSalem/dsnd-dashboard-project/internal/database"
	"github.com/AmrrSalem/dsnd-dashboard-project/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const repositoryTestTimeout = 2 * time.Second

// BaseTestSuite carries a migrated store and the factories used to fill it
type BaseTestSuite struct {
	DB        *gorm.DB
	Config    *config.Config
	Factories *FactorySet
}

// SetupTestSuite opens a private in-memory SQLite store with the dashboard schema.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	t.Helper()

	// shared cache keeps the memory database alive across pooled connections
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Initialize(dsn, &database.Options{
		Driver:       database.DriverSQLite,
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		AutoMigrate:  true,
	})
	if err != nil {
		t.Fatalf("failed to initialize sqlite test store: %v", err)
	}

	return newBaseTestSuite(db, dsn, database.DriverSQLite)
}

func newBaseTestSuite(db *gorm.DB, dsn, driver string) *BaseTestSuite {
	return &BaseTestSuite{
		DB: db,
		Config: &config.Config{
			Environment:    "test",
			Port:           "8080",
			LogLevel:       "debug",
			DatabaseDriver: driver,
			DatabaseURL:    dsn,
			QueryTimeout:   repositoryTestTimeout,
		},
		Factories: NewFactorySet(),
	}
}

// RunWithTestSuite is a convenience wrapper to run a function with a ready suite.
func RunWithTestSuite(t *testing.T, testFunc func(*BaseTestSuite)) {
	s := SetupTestSuite(t)
	defer s.TeardownTestSuite()
	testFunc(s)
}

// ------------------------------
// Suite lifecycle hooks
// ------------------------------

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite closes the store; an in-memory database disappears with it.
func (s *BaseTestSuite) TeardownTestSuite() {
	if s.DB == nil {
		return
	}
	if sqlDB, err := s.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// CleanTestDB removes every row, children first.
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	tables := []string{
		models.Note{}.TableName(),
		models.EmployeeEvent{}.TableName(),
		models.Employee{}.TableName(),
		models.Team{}.TableName(),
	}
	m := s.DB.Migrator()
	for _, t := range tables {
		if m.HasTable(t) {
			s.DB.Exec(`DELETE FROM ` + t)
		}
	}
	s.Factories.Reset()
}

// Seed inserts fixture rows in the given order.
func (s *BaseTestSuite) Seed(rows ...interface{}) error {
	for _, row := range rows {
		if err := s.DB.Create(row).Error; err != nil {
			return fmt.Errorf("seed %T: %w", row, err)
		}
	}
	return nil
}

// BreakStore closes the connection pool so every following query fails.
func (s *BaseTestSuite) BreakStore() {
	if sqlDB, err := s.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

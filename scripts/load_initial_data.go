package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/AmrrSalem/dsnd-dashboard-project/internal/config"
	"github.com/AmrrSalem/dsnd-dashboard-project/internal/database"
	"github.com/AmrrSalem/dsnd-dashboard-project/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type TeamData struct {
	TeamID   int64  `yaml:"team_id"`
	TeamName string `yaml:"team_name"`
}

type EmployeeData struct {
	EmployeeID int64  `yaml:"employee_id"`
	FullName   string `yaml:"full_name"`
	TeamID     int64  `yaml:"team_id"`
}

// EventData describes Count identical events; Count defaults to 1
type EventData struct {
	EmployeeID int64            `yaml:"employee_id"`
	EventDate  models.Date      `yaml:"event_date"`
	EventType  models.EventType `yaml:"event_type"`
	Count      int              `yaml:"count,omitempty"`
}

type NoteData struct {
	Subject  models.SubjectKind `yaml:"subject"`
	ID       int64              `yaml:"id"`
	NoteDate models.Date        `yaml:"note_date"`
	Note     string             `yaml:"note"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type EmployeesFile struct {
	Employees []EmployeeData `yaml:"employees"`
}

type EventsFile struct {
	Events []EventData `yaml:"events"`
}

type NotesFile struct {
	Notes []NoteData `yaml:"notes"`
}

// Dataset is every fixture found under the data directory
type Dataset struct {
	Teams     []TeamData
	Employees []EmployeeData
	Events    []EventData
	Notes     []NoteData
}

func main() {
	log.Println("🚀 Loading employee events from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.WritableDatabaseURL(), cfg.DatabaseDriver, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Employee events loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn, driver string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		Driver:      driver,
		LogLevel:    logger.Silent,
		AutoMigrate: true,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			if err = database.Ping(db); err == nil {
				return db, nil
			}
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	data, err := readDataset(dataDir)
	if err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return fmt.Errorf("invalid fixtures: %w", err)
	}

	teamCreated := 0
	for _, teamData := range data.Teams {
		created, err := createTeam(db, teamData)
		if err != nil {
			return err
		}
		if created {
			teamCreated++
		}
	}
	log.Printf("📋 Teams: %d created, %d total", teamCreated, len(data.Teams))

	employeeCreated := 0
	for _, employeeData := range data.Employees {
		created, err := createEmployee(db, employeeData)
		if err != nil {
			return err
		}
		if created {
			employeeCreated++
		}
	}
	log.Printf("📋 Employees: %d created, %d total", employeeCreated, len(data.Employees))

	eventCreated := 0
	for _, eventData := range data.Events {
		created, err := createEvents(db, eventData)
		if err != nil {
			return err
		}
		eventCreated += created
	}
	log.Printf("📋 Events: %d created", eventCreated)

	noteCreated := 0
	for _, noteData := range data.Notes {
		created, err := createNote(db, noteData)
		if err != nil {
			return err
		}
		if created {
			noteCreated++
		}
	}
	log.Printf("📋 Notes: %d created, %d total", noteCreated, len(data.Notes))

	return nil
}

// readDataset walks dataDir and decodes every YAML file by its name
func readDataset(dataDir string) (*Dataset, error) {
	var data Dataset

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		name := filepath.Base(path)
		switch {
		case strings.Contains(name, "teams"):
			var file TeamsFile
			if err := yaml.Unmarshal(raw, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			data.Teams = append(data.Teams, file.Teams...)
		case strings.Contains(name, "employees"):
			var file EmployeesFile
			if err := yaml.Unmarshal(raw, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			data.Employees = append(data.Employees, file.Employees...)
		case strings.Contains(name, "events"):
			var file EventsFile
			if err := yaml.Unmarshal(raw, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			data.Events = append(data.Events, file.Events...)
		case strings.Contains(name, "notes"):
			var file NotesFile
			if err := yaml.Unmarshal(raw, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			data.Notes = append(data.Notes, file.Notes...)
		}
		return nil
	})

	return &data, err
}

// Validate checks references between fixtures before anything is written
func (d *Dataset) Validate() error {
	teams := make(map[int64]bool, len(d.Teams))
	for _, t := range d.Teams {
		if t.TeamID <= 0 || t.TeamName == "" {
			return fmt.Errorf("team %d: id and name are required", t.TeamID)
		}
		teams[t.TeamID] = true
	}

	employees := make(map[int64]bool, len(d.Employees))
	for _, e := range d.Employees {
		if e.EmployeeID <= 0 || e.FullName == "" {
			return fmt.Errorf("employee %d: id and name are required", e.EmployeeID)
		}
		if !teams[e.TeamID] {
			return fmt.Errorf("employee %d: team %d not found", e.EmployeeID, e.TeamID)
		}
		employees[e.EmployeeID] = true
	}

	for _, ev := range d.Events {
		if !employees[ev.EmployeeID] {
			return fmt.Errorf("event on %s: employee %d not found", ev.EventDate, ev.EmployeeID)
		}
		if !ev.EventType.IsValid() {
			return fmt.Errorf("event on %s: unknown type %q", ev.EventDate, ev.EventType)
		}
		if ev.EventDate.IsZero() {
			return errors.New("event: date is required")
		}
		if ev.Count < 0 {
			return fmt.Errorf("event on %s: negative count", ev.EventDate)
		}
	}

	for _, n := range d.Notes {
		switch n.Subject {
		case models.SubjectEmployee:
			if !employees[n.ID] {
				return fmt.Errorf("note on %s: employee %d not found", n.NoteDate, n.ID)
			}
		case models.SubjectTeam:
			if !teams[n.ID] {
				return fmt.Errorf("note on %s: team %d not found", n.NoteDate, n.ID)
			}
		default:
			return fmt.Errorf("note on %s: unknown subject %q", n.NoteDate, n.Subject)
		}
	}

	return nil
}

func createTeam(db *gorm.DB, teamData TeamData) (bool, error) {
	var team models.Team
	if err := db.Where("team_id = ?", teamData.TeamID).First(&team).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return false, fmt.Errorf("failed to query team: %w", err)
		}
		team = models.Team{TeamID: teamData.TeamID, TeamName: teamData.TeamName}
		if err := db.Create(&team).Error; err != nil {
			return false, fmt.Errorf("failed to create team: %w", err)
		}
		return true, nil
	}
	return false, nil
}

func createEmployee(db *gorm.DB, employeeData EmployeeData) (bool, error) {
	var employee models.Employee
	if err := db.Where("employee_id = ?", employeeData.EmployeeID).First(&employee).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return false, fmt.Errorf("failed to query employee: %w", err)
		}
		employee = models.Employee{
			EmployeeID: employeeData.EmployeeID,
			FullName:   employeeData.FullName,
			TeamID:     employeeData.TeamID,
		}
		if err := db.Create(&employee).Error; err != nil {
			return false, fmt.Errorf("failed to create employee: %w", err)
		}
		return true, nil
	}
	return false, nil
}

// createEvents tops up identical events to the fixture's count and returns how many it inserted
func createEvents(db *gorm.DB, eventData EventData) (int, error) {
	want := eventData.Count
	if want == 0 {
		want = 1
	}

	var existing int64
	if err := db.Model(&models.EmployeeEvent{}).
		Where("employee_id = ? AND event_date = ? AND event_type = ?",
			eventData.EmployeeID, eventData.EventDate, string(eventData.EventType)).
		Count(&existing).Error; err != nil {
		return 0, fmt.Errorf("failed to query events: %w", err)
	}

	missing := want - int(existing)
	if missing <= 0 {
		return 0, nil
	}

	events := make([]models.EmployeeEvent, missing)
	for i := range events {
		events[i] = models.EmployeeEvent{
			EmployeeID: eventData.EmployeeID,
			EventDate:  eventData.EventDate,
			EventType:  eventData.EventType,
		}
	}
	if err := db.Create(&events).Error; err != nil {
		return 0, fmt.Errorf("failed to create events: %w", err)
	}
	return missing, nil
}

func createNote(db *gorm.DB, noteData NoteData) (bool, error) {
	column := "employee_id"
	if noteData.Subject == models.SubjectTeam {
		column = "team_id"
	}

	var note models.Note
	err := db.Where("table_name = ? AND "+column+" = ? AND note_date = ? AND note = ?",
		string(noteData.Subject), noteData.ID, noteData.NoteDate, noteData.Note).First(&note).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query note: %w", err)
	}

	id := noteData.ID
	note = models.Note{Subject: noteData.Subject, NoteDate: noteData.NoteDate, Body: noteData.Note}
	if noteData.Subject == models.SubjectTeam {
		note.TeamID = &id
	} else {
		note.EmployeeID = &id
	}
	if err := db.Create(&note).Error; err != nil {
		return false, fmt.Errorf("failed to create note: %w", err)
	}
	return true, nil
}

package testutils

import (
	"fmt"
	"time"

	"github.com/AmrrSalem/dsnd-dashboard-project/internal/database/models"
)

// FactorySet groups the fixture factories; ids are handed out sequentially from 1
type FactorySet struct {
	Team     *TeamFactory
	Employee *EmployeeFactory
	Event    *EventFactory
	Note     *NoteFactory
}

// NewFactorySet creates a new set of factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Team:     &TeamFactory{},
		Employee: &EmployeeFactory{},
		Event:    &EventFactory{},
		Note:     &NoteFactory{},
	}
}

// Reset restarts every id sequence
func (f *FactorySet) Reset() {
	f.Team.next = 0
	f.Employee.next = 0
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct {
	next int64
}

// Create creates a test Team with a generated name
func (f *TeamFactory) Create() *models.Team {
	f.next++
	return &models.Team{
		TeamID:   f.next,
		TeamName: fmt.Sprintf("Team %d", f.next),
	}
}

// WithName creates a test Team with a custom name
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.TeamName = name
	return team
}

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct {
	next int64
}

// InTeam creates a test Employee belonging to teamID
func (f *EmployeeFactory) InTeam(teamID int64) *models.Employee {
	f.next++
	return &models.Employee{
		EmployeeID: f.next,
		FullName:   fmt.Sprintf("Employee %d", f.next),
		TeamID:     teamID,
	}
}

// WithName creates a test Employee with a custom name
func (f *EmployeeFactory) WithName(name string, teamID int64) *models.Employee {
	employee := f.InTeam(teamID)
	employee.FullName = name
	return employee
}

// EventFactory provides methods to create test EmployeeEvent data
type EventFactory struct{}

// Positive creates a positive event for employeeID on date
func (f *EventFactory) Positive(employeeID int64, date models.Date) *models.EmployeeEvent {
	return &models.EmployeeEvent{EmployeeID: employeeID, EventDate: date, EventType: models.EventTypePositive}
}

// Negative creates a negative event for employeeID on date
func (f *EventFactory) Negative(employeeID int64, date models.Date) *models.EmployeeEvent {
	return &models.EmployeeEvent{EmployeeID: employeeID, EventDate: date, EventType: models.EventTypeNegative}
}

// Many creates n events of one type for employeeID on date
func (f *EventFactory) Many(n int, employeeID int64, date models.Date, eventType models.EventType) []*models.EmployeeEvent {
	events := make([]*models.EmployeeEvent, 0, n)
	for i := 0; i < n; i++ {
		events = append(events, &models.EmployeeEvent{EmployeeID: employeeID, EventDate: date, EventType: eventType})
	}
	return events
}

// NoteFactory provides methods to create test Note data
type NoteFactory struct{}

// ForEmployee creates a note attached to an employee
func (f *NoteFactory) ForEmployee(employeeID int64, date models.Date, text string) *models.Note {
	id := employeeID
	return &models.Note{EmployeeID: &id, Subject: models.SubjectEmployee, NoteDate: date, Body: text}
}

// ForTeam creates a note attached to a team
func (f *NoteFactory) ForTeam(teamID int64, date models.Date, text string) *models.Note {
	id := teamID
	return &models.Note{TeamID: &id, Subject: models.SubjectTeam, NoteDate: date, Body: text}
}

// Day is shorthand for a date in 2024
func Day(month time.Month, day int) models.Date {
	return models.NewDate(2024, month, day)
}

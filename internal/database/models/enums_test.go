package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventTypeIsValid(t *testing.T) {
	assert.True(t, EventTypePositive.IsValid())
	assert.True(t, EventTypeNegative.IsValid())
	assert.False(t, EventType("neutral").IsValid())
	assert.False(t, EventType("").IsValid())
}

func TestParseSubjectKind(t *testing.T) {
	testCases := []struct {
		input string
		kind  SubjectKind
		ok    bool
	}{
		{input: "employee", kind: SubjectEmployee, ok: true},
		{input: "employees", kind: SubjectEmployee, ok: true},
		{input: "Employee", kind: SubjectEmployee, ok: true},
		{input: " Teams ", kind: SubjectTeam, ok: true},
		{input: "team", kind: SubjectTeam, ok: true},
		{input: "departments", ok: false},
		{input: "", ok: false},
		{input: "team'; DROP TABLE notes; --", ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			kind, ok := ParseSubjectKind(tc.input)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.kind, kind)
			}
		})
	}
}

func TestSubjectKindNames(t *testing.T) {
	assert.Equal(t, "employees", SubjectEmployee.Plural())
	assert.Equal(t, "teams", SubjectTeam.Plural())
	assert.Equal(t, "Employee", SubjectEmployee.Title())
	assert.Equal(t, "Team", SubjectTeam.Title())
	assert.Equal(t, "", SubjectKind("").Title())
}

func TestSubjectConfiguration(t *testing.T) {
	assert.Equal(t, "employee", EmployeeSubject.Table)
	assert.Equal(t, "employee_id", EmployeeSubject.IDColumn)
	assert.Equal(t, "team", TeamSubject.Table)
	assert.Equal(t, "team_name", TeamSubject.NameColumn)
	assert.Equal(t, "notes", Note{}.TableName())
	assert.Equal(t, "employee_events", EmployeeEvent{}.TableName())
}

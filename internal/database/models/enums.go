package models

import "strings"

// EventType classifies an employee event
type EventType string

const (
	EventTypePositive EventType = "positive"
	EventTypeNegative EventType = "negative"
)

// SubjectKind is the entity kind a report is about
type SubjectKind string

const (
	SubjectEmployee SubjectKind = "employee"
	SubjectTeam     SubjectKind = "team"
)

// IsValid checks if the EventType is valid
func (e EventType) IsValid() bool {
	switch e {
	case EventTypePositive, EventTypeNegative:
		return true
	}
	return false
}

// IsValid checks if the SubjectKind is valid
func (k SubjectKind) IsValid() bool {
	switch k {
	case SubjectEmployee, SubjectTeam:
		return true
	}
	return false
}

// Plural returns the collection name used in URLs, e.g. "employees"
func (k SubjectKind) Plural() string {
	return string(k) + "s"
}

// Title returns the kind with a capitalised first letter, e.g. "Employee"
func (k SubjectKind) Title() string {
	if k == "" {
		return ""
	}
	s := string(k)
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseSubjectKind accepts singular or plural kind names in any case
func ParseSubjectKind(s string) (SubjectKind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	kind := SubjectKind(strings.TrimSuffix(s, "s"))
	return kind, kind.IsValid()
}

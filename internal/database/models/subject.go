package models

// Subject binds a SubjectKind to its table and column names.
// Values are fixed at construction and are the only identifiers ever placed in query text.
type Subject struct {
	Kind       SubjectKind
	Table      string
	IDColumn   string
	NameColumn string
}

var (
	EmployeeSubject = Subject{
		Kind:       SubjectEmployee,
		Table:      Employee{}.TableName(),
		IDColumn:   "employee_id",
		NameColumn: "full_name",
	}
	TeamSubject = Subject{
		Kind:       SubjectTeam,
		Table:      Team{}.TableName(),
		IDColumn:   "team_id",
		NameColumn: "team_name",
	}
)

package models

// Note is a free-text note attached to an employee or a team.
// Subject (column table_name) says which of EmployeeID or TeamID is set.
type Note struct {
	NoteID     int64       `json:"note_id" gorm:"column:note_id;primaryKey"`
	EmployeeID *int64      `json:"employee_id,omitempty" gorm:"column:employee_id;index"`
	TeamID     *int64      `json:"team_id,omitempty" gorm:"column:team_id;index"`
	Subject    SubjectKind `json:"table_name" gorm:"column:table_name;type:varchar(16);not null"`
	NoteDate   Date        `json:"note_date" gorm:"column:note_date;type:date;not null"`
	Body       string      `json:"note" gorm:"column:note;type:text;not null"`
}

// TableName returns the table name for Note
func (Note) TableName() string {
	return "notes"
}

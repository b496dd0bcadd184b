package models

// EmployeeEvent is an immutable positive or negative event recorded for an employee.
// Several events may share an employee and date; the query layer aggregates them.
type EmployeeEvent struct {
	EventID    int64     `json:"event_id" gorm:"column:event_id;primaryKey"`
	EmployeeID int64     `json:"employee_id" gorm:"column:employee_id;not null;index"`
	EventDate  Date      `json:"event_date" gorm:"column:event_date;type:date;not null;index"`
	EventType  EventType `json:"event_type" gorm:"column:event_type;type:varchar(16);not null"`
}

// TableName returns the table name for EmployeeEvent
func (EmployeeEvent) TableName() string {
	return "employee_events"
}

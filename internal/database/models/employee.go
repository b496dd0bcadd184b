package models

// Employee represents an employee; every employee belongs to exactly one team
type Employee struct {
	EmployeeID int64  `json:"employee_id" gorm:"column:employee_id;primaryKey;autoIncrement:false"`
	FullName   string `json:"full_name" gorm:"column:full_name;not null"`
	TeamID     int64  `json:"team_id" gorm:"column:team_id;not null;index"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employee"
}

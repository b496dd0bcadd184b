package models

// Team represents a team of employees
type Team struct {
	TeamID   int64  `json:"team_id" gorm:"column:team_id;primaryKey;autoIncrement:false"`
	TeamName string `json:"team_name" gorm:"column:team_name;not null"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "team"
}

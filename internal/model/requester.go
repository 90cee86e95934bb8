package model

import "taskdesk/internal/abstraction"

type RequesterEntity struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	EmployeeId string `json:"employee_id"`
	IsAdmin    bool   `json:"is_admin"`
}

// RequesterEntityModel ...
type RequesterEntityModel struct {
	ID int `json:"id" param:"id" form:"id" validate:"number,min=1" gorm:"primaryKey;autoIncrement;"`

	// entity
	RequesterEntity

	abstraction.Entity
}

// TableName ...
func (RequesterEntityModel) TableName() string {
	return "requester"
}

package model

import "taskdesk/internal/abstraction"

type TaskTypeEntity struct {
	Name                 string  `json:"name"`
	EstimatedTimePerUnit float64 `json:"estimated_time_per_unit"`
	Unit                 string  `json:"unit"`
	IsActive             bool    `json:"is_active"`
}

// TaskTypeEntityModel ...
type TaskTypeEntityModel struct {
	ID int `json:"id" param:"id" form:"id" validate:"number,min=1" gorm:"primaryKey;autoIncrement;"`

	// entity
	TaskTypeEntity

	abstraction.Entity
}

// TableName ...
func (TaskTypeEntityModel) TableName() string {
	return "task_type"
}

type TaskTypeCountDataModel struct {
	Count int `json:"count"`
}

package model

import (
	"time"

	"taskdesk/internal/abstraction"
)

type RequestEntity struct {
	TaskTypeId       int        `json:"task_type_id"`
	RequesterName    string     `json:"requester_name"`
	Quantity         int        `json:"quantity"`
	DueDate          time.Time  `json:"due_date"`
	Notes            string     `json:"notes"`
	Status           string     `json:"status"`
	EstimatedMinutes float64    `json:"estimated_minutes"`
	CompletedAt      *time.Time `json:"completed_at"`
}

// RequestEntityModel ...
type RequestEntityModel struct {
	ID int `json:"id" param:"id" form:"id" validate:"number,min=1" gorm:"primaryKey;autoIncrement;"`

	// entity
	RequestEntity

	abstraction.Entity

	TaskType TaskTypeEntityModel `json:"task_type" gorm:"foreignKey:TaskTypeId"`
}

// TableName ...
func (RequestEntityModel) TableName() string {
	return "request"
}

type RequestCountDataModel struct {
	Count int `json:"count"`
}

// CompletionTime is the timestamp the monthly statistics group on.
// Rows written before completed_at existed fall back to updated_at,
// then created_at.
func (m *RequestEntityModel) CompletionTime() time.Time {
	if m.CompletedAt != nil {
		return *m.CompletedAt
	}
	if m.UpdatedAt != nil {
		return *m.UpdatedAt
	}
	return m.CreatedAt
}

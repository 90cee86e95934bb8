package dto

type TaskTypeCreateRequest struct {
	Name                 string `json:"name" form:"name" validate:"required"`
	EstimatedTimeSeconds int    `json:"estimated_time_seconds" form:"estimated_time_seconds" validate:"required,min=1,max=3600"`
	Unit                 string `json:"unit" form:"unit" validate:"required"`
}

type TaskTypeFindByIDRequest struct {
	ID int `param:"id" validate:"required"`
}

type TaskTypeUpdateRequest struct {
	ID                   int     `param:"id" validate:"required"`
	Name                 *string `json:"name" form:"name"`
	EstimatedTimeSeconds *int    `json:"estimated_time_seconds" form:"estimated_time_seconds" validate:"omitempty,min=1,max=3600"`
	Unit                 *string `json:"unit" form:"unit"`
}

type TaskTypeDeactivateRequest struct {
	ID int `param:"id" validate:"required"`
}

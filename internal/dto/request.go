package dto

type RequestCreateRequest struct {
	TaskTypeId    int    `json:"task_type_id" form:"task_type_id" validate:"required,min=1"`
	RequesterName string `json:"requester_name" form:"requester_name" validate:"required"`
	Quantity      int    `json:"quantity" form:"quantity" validate:"required,min=1"`
	DueDate       string `json:"due_date" form:"due_date" validate:"required"`
	Notes         string `json:"notes" form:"notes"`
}

type RequestFindByIDRequest struct {
	ID int `param:"id" validate:"required"`
}

type RequestUpdateRequest struct {
	ID            int     `param:"id" validate:"required"`
	TaskTypeId    *int    `json:"task_type_id" form:"task_type_id"`
	RequesterName *string `json:"requester_name" form:"requester_name"`
	Quantity      *int    `json:"quantity" form:"quantity" validate:"omitempty,min=1"`
	DueDate       *string `json:"due_date" form:"due_date"`
	Notes         *string `json:"notes" form:"notes"`
}

type RequestCompleteRequest struct {
	ID int `param:"id" validate:"required"`
}

package dto

type RequesterCreateRequest struct {
	Name       string `json:"name" form:"name" validate:"required"`
	Department string `json:"department" form:"department" validate:"required"`
	EmployeeId string `json:"employee_id" form:"employee_id" validate:"required"`
	IsAdmin    bool   `json:"is_admin" form:"is_admin"`
}

package repository

import (
	"taskdesk/internal/abstraction"
	"taskdesk/internal/model"

	"gorm.io/gorm"
)

type TaskType interface {
	FindById(ctx *abstraction.Context, id int) (*model.TaskTypeEntityModel, error)
	Find(ctx *abstraction.Context, activeOnly bool) (data []model.TaskTypeEntityModel, err error)
	Create(ctx *abstraction.Context, e *model.TaskTypeEntityModel) *gorm.DB
	Update(ctx *abstraction.Context, e *model.TaskTypeEntityModel) *gorm.DB
	Deactivate(ctx *abstraction.Context, id int) *gorm.DB
	Count(ctx *abstraction.Context, activeOnly bool) (data *int, err error)
}

type taskType struct {
	abstraction.Repository
}

func NewTaskType(db *gorm.DB) *taskType {
	return &taskType{
		Repository: abstraction.Repository{
			Db: db,
		},
	}
}

func (r *taskType) FindById(ctx *abstraction.Context, id int) (*model.TaskTypeEntityModel, error) {
	conn := r.CheckTrx(ctx)

	var data model.TaskTypeEntityModel
	err := conn.
		Where("id = ?", id).
		First(&data).
		Error
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (r *taskType) Find(ctx *abstraction.Context, activeOnly bool) (data []model.TaskTypeEntityModel, err error) {
	conn := r.CheckTrx(ctx)
	if activeOnly {
		conn = conn.Where("is_active = ?", true)
	}
	err = conn.
		Order("name ASC").
		Find(&data).
		Error
	return
}

func (r *taskType) Create(ctx *abstraction.Context, e *model.TaskTypeEntityModel) *gorm.DB {
	return r.CheckTrx(ctx).Create(e)
}

func (r *taskType) Update(ctx *abstraction.Context, e *model.TaskTypeEntityModel) *gorm.DB {
	return r.CheckTrx(ctx).Model(&model.TaskTypeEntityModel{}).
		Where("id = ?", e.ID).
		Updates(e)
}

func (r *taskType) Deactivate(ctx *abstraction.Context, id int) *gorm.DB {
	return r.CheckTrx(ctx).Model(&model.TaskTypeEntityModel{}).
		Where("id = ?", id).
		Update("is_active", false)
}

func (r *taskType) Count(ctx *abstraction.Context, activeOnly bool) (data *int, err error) {
	conn := r.CheckTrx(ctx).
		Table("task_type").
		Select("COUNT(*) AS count")
	if activeOnly {
		conn = conn.Where("is_active = ?", true)
	}

	var count model.TaskTypeCountDataModel
	err = conn.
		Find(&count).
		Error
	data = &count.Count
	return
}

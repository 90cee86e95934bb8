package repository

import (
	"taskdesk/internal/abstraction"
	"taskdesk/internal/model"

	"gorm.io/gorm"
)

type Request interface {
	FindById(ctx *abstraction.Context, id int) (*model.RequestEntityModel, error)
	Find(ctx *abstraction.Context) (data []model.RequestEntityModel, err error)
	Create(ctx *abstraction.Context, e *model.RequestEntityModel) *gorm.DB
	Update(ctx *abstraction.Context, e *model.RequestEntityModel) *gorm.DB
	Count(ctx *abstraction.Context) (data *int, err error)
}

type request struct {
	abstraction.Repository
}

func NewRequest(db *gorm.DB) *request {
	return &request{
		Repository: abstraction.Repository{
			Db: db,
		},
	}
}

func (r *request) FindById(ctx *abstraction.Context, id int) (*model.RequestEntityModel, error) {
	conn := r.CheckTrx(ctx)

	var data model.RequestEntityModel
	err := conn.
		Preload("TaskType").
		Where("id = ?", id).
		First(&data).
		Error
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// Find returns the full snapshot ordered by due date, nearest first. The
// dataset is small enough that every view loads it whole.
func (r *request) Find(ctx *abstraction.Context) (data []model.RequestEntityModel, err error) {
	err = r.CheckTrx(ctx).
		Preload("TaskType").
		Order("due_date ASC").
		Find(&data).
		Error
	return
}

func (r *request) Create(ctx *abstraction.Context, e *model.RequestEntityModel) *gorm.DB {
	return r.CheckTrx(ctx).Create(e)
}

func (r *request) Update(ctx *abstraction.Context, e *model.RequestEntityModel) *gorm.DB {
	return r.CheckTrx(ctx).Model(&model.RequestEntityModel{}).
		Where("id = ?", e.ID).
		Updates(e)
}

func (r *request) Count(ctx *abstraction.Context) (data *int, err error) {
	var count model.RequestCountDataModel
	err = r.CheckTrx(ctx).
		Table("request").
		Select("COUNT(*) AS count").
		Find(&count).
		Error
	data = &count.Count
	return
}

package repository

import (
	"taskdesk/internal/abstraction"
	"taskdesk/internal/model"

	"gorm.io/gorm"
)

type Requester interface {
	Find(ctx *abstraction.Context) (data []model.RequesterEntityModel, err error)
	Create(ctx *abstraction.Context, e *model.RequesterEntityModel) *gorm.DB
}

type requester struct {
	abstraction.Repository
}

func NewRequester(db *gorm.DB) *requester {
	return &requester{
		Repository: abstraction.Repository{
			Db: db,
		},
	}
}

func (r *requester) Find(ctx *abstraction.Context) (data []model.RequesterEntityModel, err error) {
	err = r.CheckTrx(ctx).
		Order("name ASC").
		Find(&data).
		Error
	return
}

func (r *requester) Create(ctx *abstraction.Context, e *model.RequesterEntityModel) *gorm.DB {
	return r.CheckTrx(ctx).Create(e)
}

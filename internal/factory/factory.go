package factory

import (
	"taskdesk/internal/repository"
	"taskdesk/pkg/database"

	"gorm.io/gorm"
)

type Factory struct {
	Db *gorm.DB

	Repository_initiated
}

type Repository_initiated struct {
	TaskTypeRepository  repository.TaskType
	RequestRepository   repository.Request
	RequesterRepository repository.Requester
}

func NewFactory() *Factory {
	f := &Factory{}
	f.SetupDb()
	f.SetupRepository()
	return f
}

func (f *Factory) SetupDb() {
	db, err := database.Connection("MYSQL")
	if err != nil {
		panic("Failed setup db, connection is undefined")
	}
	f.Db = db
}

func (f *Factory) SetupRepository() {
	if f.Db == nil {
		panic("Failed setup repository, db is undefined")
	}

	f.TaskTypeRepository = repository.NewTaskType(f.Db)
	f.RequestRepository = repository.NewRequest(f.Db)
	f.RequesterRepository = repository.NewRequester(f.Db)
}

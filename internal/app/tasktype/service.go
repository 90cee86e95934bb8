package tasktype

import (
	"net/http"
	"strings"

	"taskdesk/internal/abstraction"
	"taskdesk/internal/dto"
	"taskdesk/internal/factory"
	"taskdesk/internal/model"
	"taskdesk/internal/repository"
	"taskdesk/internal/stats"
	"taskdesk/pkg/util/general"
	"taskdesk/pkg/util/response"
	"taskdesk/pkg/util/trxmanager"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx *abstraction.Context, payload *dto.TaskTypeCreateRequest) (map[string]interface{}, error)
	Find(ctx *abstraction.Context) (map[string]interface{}, error)
	FindById(ctx *abstraction.Context, payload *dto.TaskTypeFindByIDRequest) (map[string]interface{}, error)
	Update(ctx *abstraction.Context, payload *dto.TaskTypeUpdateRequest) (map[string]interface{}, error)
	Deactivate(ctx *abstraction.Context, payload *dto.TaskTypeDeactivateRequest) (map[string]interface{}, error)
}

type service struct {
	TaskTypeRepository repository.TaskType

	DB *gorm.DB
}

func NewService(f *factory.Factory) Service {
	return &service{
		TaskTypeRepository: f.TaskTypeRepository,

		DB: f.Db,
	}
}

func (s *service) Create(ctx *abstraction.Context, payload *dto.TaskTypeCreateRequest) (map[string]interface{}, error) {
	if err := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
		modelTaskType := &model.TaskTypeEntityModel{
			TaskTypeEntity: model.TaskTypeEntity{
				Name:                 strings.TrimSpace(payload.Name),
				EstimatedTimePerUnit: stats.SecondsToMinutes(payload.EstimatedTimeSeconds),
				Unit:                 payload.Unit,
				IsActive:             true,
			},
		}
		if err := s.TaskTypeRepository.Create(ctx, modelTaskType).Error; err != nil {
			return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"message": "success create!",
	}, nil
}

func (s *service) Find(ctx *abstraction.Context) (map[string]interface{}, error) {
	data, err := s.TaskTypeRepository.Find(ctx, true)
	if err != nil && err.Error() != "record not found" {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	count, err := s.TaskTypeRepository.Count(ctx, true)
	if err != nil && err.Error() != "record not found" {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}

	var res []map[string]interface{} = nil
	for _, v := range data {
		res = append(res, taskTypeResponse(&v))
	}
	return map[string]interface{}{
		"count": count,
		"data":  res,
	}, nil
}

func (s *service) FindById(ctx *abstraction.Context, payload *dto.TaskTypeFindByIDRequest) (map[string]interface{}, error) {
	data, err := s.TaskTypeRepository.FindById(ctx, payload.ID)
	if err != nil && err.Error() != "record not found" {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	if data == nil {
		return nil, response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "task type not found")
	}
	return map[string]interface{}{
		"data": taskTypeResponse(data),
	}, nil
}

func (s *service) Update(ctx *abstraction.Context, payload *dto.TaskTypeUpdateRequest) (map[string]interface{}, error) {
	if err := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
		taskTypeData, err := s.TaskTypeRepository.FindById(ctx, payload.ID)
		if err != nil && err.Error() != "record not found" {
			return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}
		if taskTypeData == nil {
			return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "task type not found")
		}

		newTaskTypeData := new(model.TaskTypeEntityModel)
		newTaskTypeData.ID = payload.ID
		if payload.Name != nil {
			newTaskTypeData.Name = strings.TrimSpace(*payload.Name)
		}
		if payload.EstimatedTimeSeconds != nil {
			newTaskTypeData.EstimatedTimePerUnit = stats.SecondsToMinutes(*payload.EstimatedTimeSeconds)
		}
		if payload.Unit != nil {
			newTaskTypeData.Unit = *payload.Unit
		}

		if err = s.TaskTypeRepository.Update(ctx, newTaskTypeData).Error; err != nil {
			return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"message": "success update!",
	}, nil
}

func (s *service) Deactivate(ctx *abstraction.Context, payload *dto.TaskTypeDeactivateRequest) (map[string]interface{}, error) {
	if err := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
		taskTypeData, err := s.TaskTypeRepository.FindById(ctx, payload.ID)
		if err != nil && err.Error() != "record not found" {
			return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}
		if taskTypeData == nil {
			return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "task type not found")
		}

		if err = s.TaskTypeRepository.Deactivate(ctx, payload.ID).Error; err != nil {
			return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"message": "success deactivate!",
	}, nil
}

// taskTypeResponse exposes the per-unit time both in stored minutes and in
// the seconds the authoring form edits.
func taskTypeResponse(v *model.TaskTypeEntityModel) map[string]interface{} {
	res := map[string]interface{}{
		"id":                      v.ID,
		"name":                    v.Name,
		"estimated_time_per_unit": v.EstimatedTimePerUnit,
		"estimated_time_seconds":  stats.MinutesToSeconds(v.EstimatedTimePerUnit),
		"unit":                    v.Unit,
		"is_active":               v.IsActive,
		"created_at":              general.FormatDateTime(v.CreatedAt),
	}
	if v.UpdatedAt != nil {
		res["updated_at"] = general.FormatDateTime(*v.UpdatedAt)
	}
	return res
}

package request

import (
	"net/http"
	"time"

	"taskdesk/internal/abstraction"
	"taskdesk/internal/dto"
	"taskdesk/internal/factory"
	"taskdesk/internal/model"
	"taskdesk/internal/repository"
	"taskdesk/internal/stats"
	"taskdesk/pkg/constant"
	"taskdesk/pkg/util/general"
	"taskdesk/pkg/util/response"
	"taskdesk/pkg/util/trxmanager"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx *abstraction.Context, payload *dto.RequestCreateRequest) (map[string]interface{}, error)
	Find(ctx *abstraction.Context) (map[string]interface{}, error)
	FindById(ctx *abstraction.Context, payload *dto.RequestFindByIDRequest) (map[string]interface{}, error)
	Update(ctx *abstraction.Context, payload *dto.RequestUpdateRequest) (map[string]interface{}, error)
	Complete(ctx *abstraction.Context, payload *dto.RequestCompleteRequest) (map[string]interface{}, error)
	Workload(ctx *abstraction.Context) (map[string]interface{}, error)
}

type service struct {
	RequestRepository  repository.Request
	TaskTypeRepository repository.TaskType

	DB *gorm.DB
}

func NewService(f *factory.Factory) Service {
	return &service{
		RequestRepository:  f.RequestRepository,
		TaskTypeRepository: f.TaskTypeRepository,

		DB: f.Db,
	}
}

func (s *service) Create(ctx *abstraction.Context, payload *dto.RequestCreateRequest) (map[string]interface{}, error) {
	dueDate, err := general.ParseDate(payload.DueDate)
	if err != nil {
		return nil, response.ErrorBuilder(http.StatusBadRequest, err, "invalid due_date, expected yyyy-MM-dd")
	}

	if err := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
		taskTypeData, err := s.TaskTypeRepository.FindById(ctx, payload.TaskTypeId)
		if err != nil && err.Error() != "record not found" {
			return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}
		if taskTypeData == nil {
			logrus.Warnf("create request references unknown task type %d, estimate derives to zero", payload.TaskTypeId)
		}

		modelRequest := &model.RequestEntityModel{
			RequestEntity: model.RequestEntity{
				TaskTypeId:       payload.TaskTypeId,
				RequesterName:    payload.RequesterName,
				Quantity:         payload.Quantity,
				DueDate:          dueDate,
				Notes:            payload.Notes,
				Status:           constant.STATUS_PENDING,
				EstimatedMinutes: stats.DeriveEstimatedMinutes(taskTypeData, payload.Quantity),
			},
		}
		if err = s.RequestRepository.Create(ctx, modelRequest).Error; err != nil {
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
	data, err := s.RequestRepository.Find(ctx)
	if err != nil && err.Error() != "record not found" {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	count, err := s.RequestRepository.Count(ctx)
	if err != nil && err.Error() != "record not found" {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}

	now := *general.Now()
	var res []map[string]interface{} = nil
	for i := range data {
		res = append(res, requestResponse(&data[i], now))
	}
	return map[string]interface{}{
		"count": count,
		"data":  res,
	}, nil
}

func (s *service) FindById(ctx *abstraction.Context, payload *dto.RequestFindByIDRequest) (map[string]interface{}, error) {
	data, err := s.RequestRepository.FindById(ctx, payload.ID)
	if err != nil && err.Error() != "record not found" {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	if data == nil {
		return nil, response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "request not found")
	}
	return map[string]interface{}{
		"data": requestResponse(data, *general.Now()),
	}, nil
}

func (s *service) Update(ctx *abstraction.Context, payload *dto.RequestUpdateRequest) (map[string]interface{}, error) {
	if err := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
		requestData, err := s.RequestRepository.FindById(ctx, payload.ID)
		if err != nil && err.Error() != "record not found" {
			return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}
		if requestData == nil {
			return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "request not found")
		}

		newRequestData := new(model.RequestEntityModel)
		newRequestData.ID = payload.ID
		if payload.TaskTypeId != nil {
			newRequestData.TaskTypeId = *payload.TaskTypeId
		}
		if payload.RequesterName != nil {
			newRequestData.RequesterName = *payload.RequesterName
		}
		if payload.Quantity != nil {
			newRequestData.Quantity = *payload.Quantity
		}
		if payload.DueDate != nil {
			dueDate, err := general.ParseDate(*payload.DueDate)
			if err != nil {
				return response.ErrorBuilder(http.StatusBadRequest, err, "invalid due_date, expected yyyy-MM-dd")
			}
			newRequestData.DueDate = dueDate
		}
		if payload.Notes != nil {
			newRequestData.Notes = *payload.Notes
		}

		// touching quantity or the task-type reference re-derives the
		// estimate; an unresolvable task type keeps the stored value
		// instead of zeroing it
		if payload.Quantity != nil || payload.TaskTypeId != nil {
			taskTypeId := requestData.TaskTypeId
			if payload.TaskTypeId != nil {
				taskTypeId = *payload.TaskTypeId
			}
			quantity := requestData.Quantity
			if payload.Quantity != nil {
				quantity = *payload.Quantity
			}

			taskTypeData, err := s.TaskTypeRepository.FindById(ctx, taskTypeId)
			if err != nil && err.Error() != "record not found" {
				return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
			}
			if taskTypeData != nil {
				newRequestData.EstimatedMinutes = stats.DeriveEstimatedMinutes(taskTypeData, quantity)
			} else {
				logrus.Warnf("request %d edit references unknown task type %d, keeping stored estimate", payload.ID, taskTypeId)
			}
		}

		if err = s.RequestRepository.Update(ctx, newRequestData).Error; err != nil {
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

func (s *service) Complete(ctx *abstraction.Context, payload *dto.RequestCompleteRequest) (map[string]interface{}, error) {
	if err := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
		requestData, err := s.RequestRepository.FindById(ctx, payload.ID)
		if err != nil && err.Error() != "record not found" {
			return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}
		if requestData == nil {
			return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "request not found")
		}
		if requestData.Status == constant.STATUS_COMPLETED {
			return response.ErrorBuilder(http.StatusBadRequest, errors.New("bad_request"), "request already completed")
		}

		newRequestData := new(model.RequestEntityModel)
		newRequestData.ID = payload.ID
		newRequestData.Status = constant.STATUS_COMPLETED
		newRequestData.CompletedAt = general.Now()

		if err = s.RequestRepository.Update(ctx, newRequestData).Error; err != nil {
			return response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"message": "success complete!",
	}, nil
}

func (s *service) Workload(ctx *abstraction.Context) (map[string]interface{}, error) {
	data, err := s.RequestRepository.Find(ctx)
	if err != nil && err.Error() != "record not found" {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}

	snapshot := stats.CalculateWorkload(data)
	return map[string]interface{}{
		"data":            snapshot,
		"estimated_label": stats.FormatDuration(snapshot.TotalEstimatedMinutes),
	}, nil
}

func requestResponse(v *model.RequestEntityModel, now time.Time) map[string]interface{} {
	taskTypeName := constant.UNKNOWN_TASK_TYPE
	taskTypeUnit := constant.DEFAULT_UNIT
	if v.TaskType.ID != 0 {
		taskTypeName = v.TaskType.Name
		taskTypeUnit = v.TaskType.Unit
	}

	statusLabel := constant.STATUS_LABEL_PENDING
	if v.Status == constant.STATUS_COMPLETED {
		statusLabel = constant.STATUS_LABEL_COMPLETED
	}

	res := map[string]interface{}{
		"id":             v.ID,
		"requester_name": v.RequesterName,
		"task_type": map[string]interface{}{
			"id":   v.TaskTypeId,
			"name": taskTypeName,
			"unit": taskTypeUnit,
		},
		"quantity":          v.Quantity,
		"due_date":          general.FormatDate(v.DueDate),
		"notes":             v.Notes,
		"status":            v.Status,
		"status_label":      statusLabel,
		"estimated_minutes": v.EstimatedMinutes,
		"estimated_label":   stats.FormatDuration(v.EstimatedMinutes),
		"overdue":           general.IsOverdue(v.DueDate, v.Status, now),
		"created_at":        general.FormatDateTime(v.CreatedAt),
	}
	if v.UpdatedAt != nil {
		res["updated_at"] = general.FormatDateTime(*v.UpdatedAt)
	}
	if v.CompletedAt != nil {
		res["completed_at"] = general.FormatDateTime(*v.CompletedAt)
	}
	return res
}

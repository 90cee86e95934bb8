package requester

import (
	"net/http"
	"strings"

	"taskdesk/internal/abstraction"
	"taskdesk/internal/dto"
	"taskdesk/internal/factory"
	"taskdesk/internal/model"
	"taskdesk/internal/repository"
	"taskdesk/pkg/util/response"
	"taskdesk/pkg/util/trxmanager"

	"gorm.io/gorm"
)

type Service interface {
	Create(ctx *abstraction.Context, payload *dto.RequesterCreateRequest) (map[string]interface{}, error)
	Find(ctx *abstraction.Context) (map[string]interface{}, error)
}

type service struct {
	RequesterRepository repository.Requester

	DB *gorm.DB
}

func NewService(f *factory.Factory) Service {
	return &service{
		RequesterRepository: f.RequesterRepository,

		DB: f.Db,
	}
}

func (s *service) Create(ctx *abstraction.Context, payload *dto.RequesterCreateRequest) (map[string]interface{}, error) {
	if err := trxmanager.New(s.DB).WithTrx(ctx, func(ctx *abstraction.Context) error {
		modelRequester := &model.RequesterEntityModel{
			RequesterEntity: model.RequesterEntity{
				Name:       strings.TrimSpace(payload.Name),
				Department: payload.Department,
				EmployeeId: payload.EmployeeId,
				IsAdmin:    payload.IsAdmin,
			},
		}
		if err := s.RequesterRepository.Create(ctx, modelRequester).Error; err != nil {
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
	data, err := s.RequesterRepository.Find(ctx)
	if err != nil && err.Error() != "record not found" {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}

	var res []map[string]interface{} = nil
	for _, v := range data {
		res = append(res, map[string]interface{}{
			"id":          v.ID,
			"name":        v.Name,
			"department":  v.Department,
			"employee_id": v.EmployeeId,
			"is_admin":    v.IsAdmin,
		})
	}
	return map[string]interface{}{
		"count": len(res),
		"data":  res,
	}, nil
}

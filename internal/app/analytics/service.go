package analytics

import (
	"bytes"
	"fmt"
	"net/http"

	"taskdesk/internal/abstraction"
	"taskdesk/internal/dto"
	"taskdesk/internal/factory"
	"taskdesk/internal/model"
	"taskdesk/internal/repository"
	"taskdesk/internal/stats"
	"taskdesk/pkg/constant"
	"taskdesk/pkg/util/general"
	"taskdesk/pkg/util/response"

	"gorm.io/gorm"
)

type Service interface {
	Monthly(ctx *abstraction.Context) (map[string]interface{}, error)
	Requester(ctx *abstraction.Context) (map[string]interface{}, error)
	RequestType(ctx *abstraction.Context) (map[string]interface{}, error)
	MonthDetail(ctx *abstraction.Context, payload *dto.AnalyticsMonthDetailRequest) (map[string]interface{}, error)
	Export(ctx *abstraction.Context, payload *dto.AnalyticsExportRequest) (string, *bytes.Buffer, string, error)
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

func (s *service) Monthly(ctx *abstraction.Context) (map[string]interface{}, error) {
	requests, err := s.RequestRepository.Find(ctx)
	if err != nil && err.Error() != "record not found" {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}

	monthly := stats.CalculateMonthlyStats(requests)
	var res []map[string]interface{} = nil
	for _, entry := range monthly {
		res = append(res, map[string]interface{}{
			"month":           entry.Month,
			"completed_count": entry.CompletedCount,
			"total_minutes":   entry.TotalMinutes,
			"total_label":     stats.FormatDuration(entry.TotalMinutes),
		})
	}
	return map[string]interface{}{
		"count": len(res),
		"data":  res,
	}, nil
}

func (s *service) Requester(ctx *abstraction.Context) (map[string]interface{}, error) {
	requests, err := s.RequestRepository.Find(ctx)
	if err != nil && err.Error() != "record not found" {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}

	requesterStats := stats.CalculateRequesterStats(requests)
	var res []map[string]interface{} = nil
	for _, entry := range requesterStats {
		completionRate := 0
		if entry.TotalRequests > 0 {
			completionRate = entry.CompletedRequests * 100 / entry.TotalRequests
		}
		res = append(res, map[string]interface{}{
			"requester_name":     entry.RequesterName,
			"total_requests":     entry.TotalRequests,
			"completed_requests": entry.CompletedRequests,
			"total_minutes":      entry.TotalMinutes,
			"total_label":        stats.FormatDuration(entry.TotalMinutes),
			"completion_rate":    completionRate,
		})
	}
	return map[string]interface{}{
		"count": len(res),
		"data":  res,
	}, nil
}

func (s *service) RequestType(ctx *abstraction.Context) (map[string]interface{}, error) {
	requests, err := s.RequestRepository.Find(ctx)
	if err != nil && err.Error() != "record not found" {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	taskTypes, err := s.TaskTypeRepository.Find(ctx, false)
	if err != nil && err.Error() != "record not found" {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}

	names := map[int]string{}
	for i := range taskTypes {
		names[taskTypes[i].ID] = taskTypes[i].Name
	}

	typeStats := stats.CalculateRequestTypeStats(requests)
	var res []map[string]interface{} = nil
	for _, entry := range typeStats {
		name, ok := names[entry.TaskTypeId]
		if !ok {
			name = constant.UNKNOWN_TASK_TYPE
		}
		res = append(res, map[string]interface{}{
			"task_type_id":   entry.TaskTypeId,
			"task_type_name": name,
			"count":          entry.Count,
			"total_minutes":  entry.TotalMinutes,
			"total_label":    stats.FormatDuration(entry.TotalMinutes),
		})
	}
	return map[string]interface{}{
		"count": len(res),
		"data":  res,
	}, nil
}

func (s *service) MonthDetail(ctx *abstraction.Context, payload *dto.AnalyticsMonthDetailRequest) (map[string]interface{}, error) {
	requests, err := s.RequestRepository.Find(ctx)
	if err != nil && err.Error() != "record not found" {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	taskTypes, err := s.TaskTypeRepository.Find(ctx, false)
	if err != nil && err.Error() != "record not found" {
		return nil, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}

	detail := stats.CalculateMonthDetail(requests, taskTypes, payload.Month)

	var rows []map[string]interface{} = nil
	for i := range detail.Requests {
		req := &detail.Requests[i]
		rows = append(rows, map[string]interface{}{
			"id":                req.ID,
			"requester_name":    req.RequesterName,
			"task_type_id":      req.TaskTypeId,
			"quantity":          req.Quantity,
			"estimated_minutes": req.EstimatedMinutes,
			"estimated_label":   stats.FormatDuration(req.EstimatedMinutes),
			"completed_at":      general.FormatDateTime(req.CompletionTime()),
		})
	}
	return map[string]interface{}{
		"month":               payload.Month,
		"requests":            rows,
		"task_type_breakdown": detail.TaskTypeBreakdown,
		"requester_breakdown": detail.RequesterBreakdown,
	}, nil
}

func (s *service) Export(ctx *abstraction.Context, payload *dto.AnalyticsExportRequest) (string, *bytes.Buffer, string, error) {
	requests, err := s.RequestRepository.Find(ctx)
	if err != nil && err.Error() != "record not found" {
		return "", nil, "", response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}
	taskTypes, err := s.TaskTypeRepository.Find(ctx, false)
	if err != nil && err.Error() != "record not found" {
		return "", nil, "", response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}

	rows := exportRows(requests, taskTypes)
	stamp := general.FormatDate(*general.Now())

	var buf *bytes.Buffer
	switch payload.Format {
	case "excel":
		buf, err = buildExcel(rows)
	case "pdf":
		buf, err = buildPdf(rows, stamp)
	default:
		buf, err = buildCsv(rows)
	}
	if err != nil {
		return "", nil, "", response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}

	ext := map[string]string{"csv": "csv", "excel": "xlsx", "pdf": "pdf"}[payload.Format]
	filename := fmt.Sprintf("%s_%s.%s", constant.EXPORT_BASENAME, stamp, ext)
	return filename, buf, payload.Format, nil
}

// exportRows flattens every request into the export column order:
// requester, task type name, quantity, due date, estimated minutes,
// status label, created, updated, notes.
func exportRows(requests []model.RequestEntityModel, taskTypes []model.TaskTypeEntityModel) [][]string {
	names := map[int]string{}
	for i := range taskTypes {
		names[taskTypes[i].ID] = taskTypes[i].Name
	}

	rows := [][]string{exportHeader}
	for i := range requests {
		req := &requests[i]
		taskTypeName, ok := names[req.TaskTypeId]
		if !ok {
			taskTypeName = constant.UNKNOWN_TASK_TYPE
		}
		statusLabel := constant.STATUS_LABEL_PENDING
		if req.Status == constant.STATUS_COMPLETED {
			statusLabel = constant.STATUS_LABEL_COMPLETED
		}
		updatedAt := ""
		if req.UpdatedAt != nil {
			updatedAt = general.FormatDate(*req.UpdatedAt)
		}
		rows = append(rows, []string{
			req.RequesterName,
			taskTypeName,
			fmt.Sprintf("%d", req.Quantity),
			general.FormatDate(req.DueDate),
			fmt.Sprintf("%g", req.EstimatedMinutes),
			statusLabel,
			general.FormatDate(req.CreatedAt),
			updatedAt,
			req.Notes,
		})
	}
	return rows
}

var exportHeader = []string{
	"Requester", "Task Type", "Quantity", "Due Date", "Estimated Minutes",
	"Status", "Created", "Updated", "Notes",
}

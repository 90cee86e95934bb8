package stats

import (
	"sort"

	"taskdesk/internal/model"
	"taskdesk/pkg/constant"
	"taskdesk/pkg/util/general"
)

type MonthlyStats struct {
	Month          string  `json:"month"`
	CompletedCount int     `json:"completed_count"`
	TotalMinutes   float64 `json:"total_minutes"`
}

type RequesterStats struct {
	RequesterName     string  `json:"requester_name"`
	TotalRequests     int     `json:"total_requests"`
	CompletedRequests int     `json:"completed_requests"`
	TotalMinutes      float64 `json:"total_minutes"`
}

type RequestTypeStats struct {
	TaskTypeId   int     `json:"task_type_id"`
	Count        int     `json:"count"`
	TotalMinutes float64 `json:"total_minutes"`
}

type Breakdown struct {
	Count        int     `json:"count"`
	TotalMinutes float64 `json:"total_minutes"`
}

type MonthDetail struct {
	Requests           []model.RequestEntityModel `json:"requests"`
	TaskTypeBreakdown  map[string]Breakdown       `json:"task_type_breakdown"`
	RequesterBreakdown map[string]Breakdown       `json:"requester_breakdown"`
}

// CalculateMonthlyStats produces one entry per calendar month that has at
// least one completed request, keyed on the completion time, most recent
// month first. Pending requests never contribute.
func CalculateMonthlyStats(requests []model.RequestEntityModel) []MonthlyStats {
	monthly := map[string]*MonthlyStats{}
	for i := range requests {
		req := &requests[i]
		if req.Status != constant.STATUS_COMPLETED {
			continue
		}
		key := general.MonthKey(req.CompletionTime())
		entry, ok := monthly[key]
		if !ok {
			entry = &MonthlyStats{Month: key}
			monthly[key] = entry
		}
		entry.CompletedCount++
		entry.TotalMinutes += req.EstimatedMinutes
	}

	result := make([]MonthlyStats, 0, len(monthly))
	for _, entry := range monthly {
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Month > result[j].Month
	})
	return result
}

// CalculateRequesterStats groups every request by requester name. Total
// counts span all statuses; completed counts and minutes only the completed
// ones. Sorted by total requests descending, ties keep encounter order.
func CalculateRequesterStats(requests []model.RequestEntityModel) []RequesterStats {
	byName := map[string]*RequesterStats{}
	order := []string{}
	for i := range requests {
		req := &requests[i]
		entry, ok := byName[req.RequesterName]
		if !ok {
			entry = &RequesterStats{RequesterName: req.RequesterName}
			byName[req.RequesterName] = entry
			order = append(order, req.RequesterName)
		}
		entry.TotalRequests++
		if req.Status == constant.STATUS_COMPLETED {
			entry.CompletedRequests++
			entry.TotalMinutes += req.EstimatedMinutes
		}
	}

	result := make([]RequesterStats, 0, len(order))
	for _, name := range order {
		result = append(result, *byName[name])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalRequests > result[j].TotalRequests
	})
	return result
}

// CalculateRequestTypeStats groups every request by task type reference.
// The count spans all statuses, the minutes only completed requests.
func CalculateRequestTypeStats(requests []model.RequestEntityModel) []RequestTypeStats {
	byType := map[int]*RequestTypeStats{}
	order := []int{}
	for i := range requests {
		req := &requests[i]
		entry, ok := byType[req.TaskTypeId]
		if !ok {
			entry = &RequestTypeStats{TaskTypeId: req.TaskTypeId}
			byType[req.TaskTypeId] = entry
			order = append(order, req.TaskTypeId)
		}
		entry.Count++
		if req.Status == constant.STATUS_COMPLETED {
			entry.TotalMinutes += req.EstimatedMinutes
		}
	}

	result := make([]RequestTypeStats, 0, len(order))
	for _, id := range order {
		result = append(result, *byType[id])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	return result
}

// CalculateMonthDetail filters the completed requests of one month and
// breaks them down by resolved task-type name and by requester. A task type
// reference that does not resolve groups under the unknown-type label
// instead of failing.
func CalculateMonthDetail(requests []model.RequestEntityModel, taskTypes []model.TaskTypeEntityModel, monthKey string) MonthDetail {
	detail := MonthDetail{
		Requests:           []model.RequestEntityModel{},
		TaskTypeBreakdown:  map[string]Breakdown{},
		RequesterBreakdown: map[string]Breakdown{},
	}

	names := map[int]string{}
	for i := range taskTypes {
		names[taskTypes[i].ID] = taskTypes[i].Name
	}

	for i := range requests {
		req := requests[i]
		if req.Status != constant.STATUS_COMPLETED {
			continue
		}
		if general.MonthKey(req.CompletionTime()) != monthKey {
			continue
		}
		detail.Requests = append(detail.Requests, req)

		typeName, ok := names[req.TaskTypeId]
		if !ok {
			typeName = constant.UNKNOWN_TASK_TYPE
		}
		byType := detail.TaskTypeBreakdown[typeName]
		byType.Count++
		byType.TotalMinutes += req.EstimatedMinutes
		detail.TaskTypeBreakdown[typeName] = byType

		byRequester := detail.RequesterBreakdown[req.RequesterName]
		byRequester.Count++
		byRequester.TotalMinutes += req.EstimatedMinutes
		detail.RequesterBreakdown[req.RequesterName] = byRequester
	}

	return detail
}

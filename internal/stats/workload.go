package stats

import (
	"taskdesk/internal/model"
	"taskdesk/pkg/constant"
)

type WorkloadSnapshot struct {
	PendingCount          int     `json:"pending_count"`
	TotalEstimatedMinutes float64 `json:"total_estimated_minutes"`
	TotalEstimatedHours   float64 `json:"total_estimated_hours"`
}

// CalculateWorkload sums the outstanding work over the pending requests.
// An empty snapshot yields all zeroes.
func CalculateWorkload(requests []model.RequestEntityModel) WorkloadSnapshot {
	var snapshot WorkloadSnapshot
	for _, req := range requests {
		if req.Status != constant.STATUS_PENDING {
			continue
		}
		snapshot.PendingCount++
		snapshot.TotalEstimatedMinutes += req.EstimatedMinutes
	}
	snapshot.TotalEstimatedHours = snapshot.TotalEstimatedMinutes / 60
	return snapshot
}

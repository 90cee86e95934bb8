package stats

import (
	"taskdesk/internal/model"
)

// DeriveEstimatedMinutes computes quantity × the task type's per-unit
// minutes. An unresolved task type derives to zero; callers patching an
// existing request are expected to keep the stored value instead of writing
// the zero back.
func DeriveEstimatedMinutes(taskType *model.TaskTypeEntityModel, quantity int) float64 {
	if taskType == nil {
		return 0
	}
	return taskType.EstimatedTimePerUnit * float64(quantity)
}

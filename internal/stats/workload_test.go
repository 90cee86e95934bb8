package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"taskdesk/internal/model"
	"taskdesk/pkg/constant"
)

func TestCalculateWorkload_Empty(t *testing.T) {
	snapshot := CalculateWorkload(nil)

	assert.Equal(t, 0, snapshot.PendingCount)
	assert.Equal(t, 0.0, snapshot.TotalEstimatedMinutes)
	assert.Equal(t, 0.0, snapshot.TotalEstimatedHours)
}

func TestCalculateWorkload_PendingOnly(t *testing.T) {
	requests := []model.RequestEntityModel{
		makeRequest(1, "Tanaka", 1, constant.STATUS_PENDING, 90, date(2024, time.March, 1)),
		makeRequest(2, "Sato", 1, constant.STATUS_PENDING, 30, date(2024, time.March, 2)),
		makeRequest(3, "Sato", 1, constant.STATUS_COMPLETED, 600, date(2024, time.March, 3)),
	}

	snapshot := CalculateWorkload(requests)

	assert.Equal(t, 2, snapshot.PendingCount)
	assert.Equal(t, 120.0, snapshot.TotalEstimatedMinutes)
	assert.Equal(t, 2.0, snapshot.TotalEstimatedHours)
}

package analytics

import (
	"strings"
	"testing"
	"time"

	"taskdesk/internal/abstraction"
	"taskdesk/internal/model"
	"taskdesk/pkg/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportRequest(requester string, taskTypeId int, status string) model.RequestEntityModel {
	updatedAt := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	return model.RequestEntityModel{
		RequestEntity: model.RequestEntity{
			TaskTypeId:       taskTypeId,
			RequesterName:    requester,
			Quantity:         3,
			DueDate:          time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
			Notes:            "rush order",
			Status:           status,
			EstimatedMinutes: 1.5,
		},
		Entity: abstraction.Entity{
			CreatedAt: time.Date(2026, 8, 18, 9, 0, 0, 0, time.UTC),
			UpdatedAt: &updatedAt,
		},
	}
}

func TestExportRowsColumnOrder(t *testing.T) {
	taskTypes := []model.TaskTypeEntityModel{
		{ID: 1, TaskTypeEntity: model.TaskTypeEntity{Name: "Label printing"}},
	}
	requests := []model.RequestEntityModel{
		exportRequest("Suzuki", 1, constant.STATUS_PENDING),
	}

	rows := exportRows(requests, taskTypes)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{
		"Requester", "Task Type", "Quantity", "Due Date", "Estimated Minutes",
		"Status", "Created", "Updated", "Notes",
	}, rows[0])
	assert.Equal(t, []string{
		"Suzuki", "Label printing", "3", "2026-09-15", "1.5",
		"in progress", "2026-08-18", "2026-08-20", "rush order",
	}, rows[1])
}

func TestExportRowsStatusLabels(t *testing.T) {
	taskTypes := []model.TaskTypeEntityModel{
		{ID: 1, TaskTypeEntity: model.TaskTypeEntity{Name: "Label printing"}},
	}
	requests := []model.RequestEntityModel{
		exportRequest("Suzuki", 1, constant.STATUS_PENDING),
		exportRequest("Abe", 1, constant.STATUS_COMPLETED),
	}

	rows := exportRows(requests, taskTypes)
	require.Len(t, rows, 3)
	assert.Equal(t, "in progress", rows[1][5])
	assert.Equal(t, "completed", rows[2][5])
}

func TestExportRowsUnresolvedTaskType(t *testing.T) {
	requests := []model.RequestEntityModel{
		exportRequest("Mori", 9999, constant.STATUS_PENDING),
	}

	rows := exportRows(requests, nil)
	require.Len(t, rows, 2)
	assert.Equal(t, constant.UNKNOWN_TASK_TYPE, rows[1][1])
}

func TestBuildCsvStartsWithBom(t *testing.T) {
	buf, err := buildCsv([][]string{exportHeader})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(buf.String(), "\xEF\xBB\xBF"))
	assert.Contains(t, buf.String(), "Requester,Task Type,Quantity")
}

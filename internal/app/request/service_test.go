package request

import (
	"path/filepath"
	"testing"

	"taskdesk/internal/abstraction"
	"taskdesk/internal/dto"
	"taskdesk/internal/model"
	"taskdesk/internal/repository"
	"taskdesk/pkg/constant"
	"taskdesk/pkg/database"
	"taskdesk/pkg/util/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) (*service, *gorm.DB) {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return &service{
		RequestRepository:  repository.NewRequest(db),
		TaskTypeRepository: repository.NewTaskType(db),
		DB:                 db,
	}, db
}

func createTaskType(t *testing.T, db *gorm.DB, name string, perUnitMinutes float64) *model.TaskTypeEntityModel {
	t.Helper()

	data := &model.TaskTypeEntityModel{
		TaskTypeEntity: model.TaskTypeEntity{
			Name:                 name,
			EstimatedTimePerUnit: perUnitMinutes,
			Unit:                 constant.DEFAULT_UNIT,
			IsActive:             true,
		},
	}
	require.NoError(t, db.Create(data).Error)
	return data
}

func lastRequest(t *testing.T, db *gorm.DB) *model.RequestEntityModel {
	t.Helper()

	var data model.RequestEntityModel
	require.NoError(t, db.Order("id DESC").First(&data).Error)
	return &data
}

func TestRequestCreateDerivesEstimate(t *testing.T) {
	s, db := newTestService(t)
	taskType := createTaskType(t, db, "Label printing", 2)

	_, err := s.Create(&abstraction.Context{}, &dto.RequestCreateRequest{
		TaskTypeId:    taskType.ID,
		RequesterName: "Suzuki",
		Quantity:      12,
		DueDate:       "2026-09-15",
		Notes:         "rush order",
	})
	require.NoError(t, err)

	stored := lastRequest(t, db)
	assert.Equal(t, constant.STATUS_PENDING, stored.Status)
	assert.Equal(t, 24.0, stored.EstimatedMinutes)
	assert.Nil(t, stored.CompletedAt)
}

func TestRequestCreateUnknownTaskType(t *testing.T) {
	s, db := newTestService(t)

	_, err := s.Create(&abstraction.Context{}, &dto.RequestCreateRequest{
		TaskTypeId:    9999,
		RequesterName: "Abe",
		Quantity:      3,
		DueDate:       "2026-09-01",
	})
	require.NoError(t, err)

	stored := lastRequest(t, db)
	assert.Equal(t, 0.0, stored.EstimatedMinutes)
}

func TestRequestCreateRejectsBadDueDate(t *testing.T) {
	s, db := newTestService(t)
	taskType := createTaskType(t, db, "Label printing", 2)

	_, err := s.Create(&abstraction.Context{}, &dto.RequestCreateRequest{
		TaskTypeId:    taskType.ID,
		RequesterName: "Suzuki",
		Quantity:      1,
		DueDate:       "15/09/2026",
	})
	require.Error(t, err)
	metaErr, ok := err.(*response.MetaError)
	require.True(t, ok)
	assert.Equal(t, 400, metaErr.Code)
}

func TestRequestFindCountsRows(t *testing.T) {
	s, db := newTestService(t)
	taskType := createTaskType(t, db, "Label printing", 2)

	for _, requester := range []string{"Suzuki", "Abe"} {
		_, err := s.Create(&abstraction.Context{}, &dto.RequestCreateRequest{
			TaskTypeId:    taskType.ID,
			RequesterName: requester,
			Quantity:      1,
			DueDate:       "2026-09-15",
		})
		require.NoError(t, err)
	}

	res, err := s.Find(&abstraction.Context{})
	require.NoError(t, err)
	assert.Equal(t, 2, *res["count"].(*int))
	assert.Len(t, res["data"], 2)
}

func TestRequestUpdateQuantityRederivesEstimate(t *testing.T) {
	s, db := newTestService(t)
	taskType := createTaskType(t, db, "Label printing", 2)

	_, err := s.Create(&abstraction.Context{}, &dto.RequestCreateRequest{
		TaskTypeId:    taskType.ID,
		RequesterName: "Suzuki",
		Quantity:      5,
		DueDate:       "2026-09-15",
	})
	require.NoError(t, err)
	created := lastRequest(t, db)

	quantity := 20
	_, err = s.Update(&abstraction.Context{}, &dto.RequestUpdateRequest{
		ID:       created.ID,
		Quantity: &quantity,
	})
	require.NoError(t, err)

	stored := lastRequest(t, db)
	assert.Equal(t, 20, stored.Quantity)
	assert.Equal(t, 40.0, stored.EstimatedMinutes)
}

func TestRequestUpdateTaskTypeRederivesWithStoredQuantity(t *testing.T) {
	s, db := newTestService(t)
	slow := createTaskType(t, db, "Banner sewing", 10)
	fast := createTaskType(t, db, "Label printing", 1)

	_, err := s.Create(&abstraction.Context{}, &dto.RequestCreateRequest{
		TaskTypeId:    slow.ID,
		RequesterName: "Mori",
		Quantity:      4,
		DueDate:       "2026-09-15",
	})
	require.NoError(t, err)
	created := lastRequest(t, db)
	require.Equal(t, 40.0, created.EstimatedMinutes)

	_, err = s.Update(&abstraction.Context{}, &dto.RequestUpdateRequest{
		ID:         created.ID,
		TaskTypeId: &fast.ID,
	})
	require.NoError(t, err)

	stored := lastRequest(t, db)
	assert.Equal(t, fast.ID, stored.TaskTypeId)
	assert.Equal(t, 4.0, stored.EstimatedMinutes)
}

func TestRequestUpdateUnknownTaskTypeKeepsEstimate(t *testing.T) {
	s, db := newTestService(t)
	taskType := createTaskType(t, db, "Label printing", 2)

	_, err := s.Create(&abstraction.Context{}, &dto.RequestCreateRequest{
		TaskTypeId:    taskType.ID,
		RequesterName: "Suzuki",
		Quantity:      5,
		DueDate:       "2026-09-15",
	})
	require.NoError(t, err)
	created := lastRequest(t, db)

	missing := 9999
	_, err = s.Update(&abstraction.Context{}, &dto.RequestUpdateRequest{
		ID:         created.ID,
		TaskTypeId: &missing,
	})
	require.NoError(t, err)

	stored := lastRequest(t, db)
	assert.Equal(t, 10.0, stored.EstimatedMinutes)
}

func TestRequestUpdateNotesOnlyKeepsEstimate(t *testing.T) {
	s, db := newTestService(t)
	taskType := createTaskType(t, db, "Label printing", 2)

	_, err := s.Create(&abstraction.Context{}, &dto.RequestCreateRequest{
		TaskTypeId:    taskType.ID,
		RequesterName: "Suzuki",
		Quantity:      5,
		DueDate:       "2026-09-15",
	})
	require.NoError(t, err)
	created := lastRequest(t, db)

	notes := "handle with care"
	_, err = s.Update(&abstraction.Context{}, &dto.RequestUpdateRequest{
		ID:    created.ID,
		Notes: &notes,
	})
	require.NoError(t, err)

	stored := lastRequest(t, db)
	assert.Equal(t, notes, stored.Notes)
	assert.Equal(t, 10.0, stored.EstimatedMinutes)
}

func TestRequestUpdateMissingRequest(t *testing.T) {
	s, _ := newTestService(t)

	notes := "nope"
	_, err := s.Update(&abstraction.Context{}, &dto.RequestUpdateRequest{
		ID:    42,
		Notes: &notes,
	})
	require.Error(t, err)
	metaErr, ok := err.(*response.MetaError)
	require.True(t, ok)
	assert.Equal(t, 400, metaErr.Code)
	assert.Equal(t, "request not found", metaErr.Message)
}

func TestRequestCompleteSetsCompletedAt(t *testing.T) {
	s, db := newTestService(t)
	taskType := createTaskType(t, db, "Label printing", 2)

	_, err := s.Create(&abstraction.Context{}, &dto.RequestCreateRequest{
		TaskTypeId:    taskType.ID,
		RequesterName: "Suzuki",
		Quantity:      5,
		DueDate:       "2026-09-15",
	})
	require.NoError(t, err)
	created := lastRequest(t, db)

	_, err = s.Complete(&abstraction.Context{}, &dto.RequestCompleteRequest{ID: created.ID})
	require.NoError(t, err)

	stored := lastRequest(t, db)
	assert.Equal(t, constant.STATUS_COMPLETED, stored.Status)
	require.NotNil(t, stored.CompletedAt)
}

func TestRequestCompleteTwiceRejected(t *testing.T) {
	s, db := newTestService(t)
	taskType := createTaskType(t, db, "Label printing", 2)

	_, err := s.Create(&abstraction.Context{}, &dto.RequestCreateRequest{
		TaskTypeId:    taskType.ID,
		RequesterName: "Suzuki",
		Quantity:      5,
		DueDate:       "2026-09-15",
	})
	require.NoError(t, err)
	created := lastRequest(t, db)

	_, err = s.Complete(&abstraction.Context{}, &dto.RequestCompleteRequest{ID: created.ID})
	require.NoError(t, err)

	firstCompletion := lastRequest(t, db).CompletedAt
	require.NotNil(t, firstCompletion)

	_, err = s.Complete(&abstraction.Context{}, &dto.RequestCompleteRequest{ID: created.ID})
	require.Error(t, err)
	metaErr, ok := err.(*response.MetaError)
	require.True(t, ok)
	assert.Equal(t, 400, metaErr.Code)
	assert.Equal(t, "request already completed", metaErr.Message)

	// the original completion timestamp must survive the rejected retry
	stored := lastRequest(t, db)
	require.NotNil(t, stored.CompletedAt)
	assert.Equal(t, firstCompletion.Unix(), stored.CompletedAt.Unix())
}

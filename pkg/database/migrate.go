package database

import (
	"taskdesk/internal/model"
	"taskdesk/pkg/constant"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Migrate creates the tables and seeds the two default task types the shop
// starts with when the catalog is empty.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.TaskTypeEntityModel{},
		&model.RequestEntityModel{},
		&model.RequesterEntityModel{},
	); err != nil {
		return err
	}
	return seedTaskTypes(db)
}

func seedTaskTypes(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.TaskTypeEntityModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []model.TaskTypeEntityModel{
		{TaskTypeEntity: model.TaskTypeEntity{
			Name:                 "Iron banner hook inspection",
			EstimatedTimePerUnit: 0.5, // 30 seconds per piece
			Unit:                 constant.DEFAULT_UNIT,
			IsActive:             true,
		}},
		{TaskTypeEntity: model.TaskTypeEntity{
			Name:                 "Banner attachment pipe inspection",
			EstimatedTimePerUnit: 0.17, // roughly 10 seconds per piece
			Unit:                 constant.DEFAULT_UNIT,
			IsActive:             true,
		}},
	}
	if err := db.Create(&defaults).Error; err != nil {
		return err
	}
	logrus.Infof("seeded %d default task types", len(defaults))
	return nil
}

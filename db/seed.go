package db

import (
	"planroster/logger"
	"planroster/models"

	"github.com/jinzhu/gorm"
)

var seedUsers = []string{
	"Nick Morrison",
	"Scott Cooper",
	"Patrick Collins",
	"Dana Whitfield",
}

var seedProcedures = []string{
	"Abdominal Hysterectomy",
	"Appendectomy",
	"Cataract Surgery",
	"Coronary Artery Bypass",
	"Knee Arthroscopy",
	"Tonsillectomy",
}

// Seed fills an empty database with sample users and procedures. Tables that
// already hold rows are left alone.
func Seed(db *gorm.DB, log *logger.Logger) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	var count int
	if err := tx.Model(&models.User{}).Count(&count).Error; err != nil {
		tx.Rollback()
		return err
	}
	if count == 0 {
		for _, name := range seedUsers {
			if err := tx.Create(&models.User{Name: name}).Error; err != nil {
				tx.Rollback()
				return err
			}
		}
		log.Info("seeded users", "count", len(seedUsers))
	}

	if err := tx.Model(&models.Procedure{}).Count(&count).Error; err != nil {
		tx.Rollback()
		return err
	}
	if count == 0 {
		for _, title := range seedProcedures {
			if err := tx.Create(&models.Procedure{Title: title}).Error; err != nil {
				tx.Rollback()
				return err
			}
		}
		log.Info("seeded procedures", "count", len(seedProcedures))
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return err
	}
	return nil
}

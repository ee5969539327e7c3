package db

import (
	"time"

	"github.com/terraincognita07/cyra/internal/models"
	"gorm.io/gorm"
)

type MoodLogRepository struct {
	database *gorm.DB
}

func NewMoodLogRepository(database *gorm.DB) *MoodLogRepository {
	return &MoodLogRepository{database: database}
}

func (repo *MoodLogRepository) ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.MoodLog, error) {
	query := repo.database.Model(&models.MoodLog{}).Where("user_id = ?", userID)
	if fromStart != nil {
		query = query.Where("date >= ?", *fromStart)
	}
	if toEnd != nil {
		query = query.Where("date < ?", *toEnd)
	}

	logs := make([]models.MoodLog, 0)
	if err := query.Order("date ASC, id ASC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *MoodLogRepository) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.MoodLog, bool, error) {
	entry := models.MoodLog{}
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.MoodLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.MoodLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *MoodLogRepository) Create(entry *models.MoodLog) error {
	return repo.database.Create(entry).Error
}

func (repo *MoodLogRepository) Save(entry *models.MoodLog) error {
	return repo.database.Save(entry).Error
}

func (repo *MoodLogRepository) DeleteByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) error {
	return repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Delete(&models.MoodLog{}).Error
}

package db

import (
	"time"

	"github.com/terraincognita07/cyra/internal/models"
	"gorm.io/gorm"
)

type PeriodRepository struct {
	database *gorm.DB
}

func NewPeriodRepository(database *gorm.DB) *PeriodRepository {
	return &PeriodRepository{database: database}
}

func (repo *PeriodRepository) ListByUser(userID uint) ([]models.Period, error) {
	periods := make([]models.Period, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("start_date ASC, id ASC").
		Find(&periods).Error; err != nil {
		return nil, err
	}
	return periods, nil
}

func (repo *PeriodRepository) ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.Period, error) {
	query := repo.database.Model(&models.Period{}).Where("user_id = ?", userID)
	if fromStart != nil {
		query = query.Where("start_date >= ?", *fromStart)
	}
	if toEnd != nil {
		query = query.Where("start_date < ?", *toEnd)
	}

	periods := make([]models.Period, 0)
	if err := query.Order("start_date ASC, id ASC").Find(&periods).Error; err != nil {
		return nil, err
	}
	return periods, nil
}

func (repo *PeriodRepository) FindByID(userID uint, periodID uint) (models.Period, bool, error) {
	period := models.Period{}
	result := repo.database.
		Where("user_id = ? AND id = ?", userID, periodID).
		Limit(1).
		Find(&period)
	if result.Error != nil {
		return models.Period{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Period{}, false, nil
	}
	return period, true, nil
}

func (repo *PeriodRepository) FindByUserAndStartRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.Period, bool, error) {
	period := models.Period{}
	result := repo.database.
		Where("user_id = ? AND start_date >= ? AND start_date < ?", userID, dayStart, dayEnd).
		Limit(1).
		Find(&period)
	if result.Error != nil {
		return models.Period{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Period{}, false, nil
	}
	return period, true, nil
}

func (repo *PeriodRepository) Create(period *models.Period) error {
	return repo.database.Create(period).Error
}

func (repo *PeriodRepository) Save(period *models.Period) error {
	return repo.database.Save(period).Error
}

func (repo *PeriodRepository) Delete(userID uint, periodID uint) error {
	return repo.database.
		Where("user_id = ? AND id = ?", userID, periodID).
		Delete(&models.Period{}).Error
}

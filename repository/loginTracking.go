package repository

import (
	"devpath/models"

	"gorm.io/gorm"
)

type LoginTrackingRepository struct {
	db *gorm.DB
}

func NewLoginTrackingRepository(db *gorm.DB) *LoginTrackingRepository {
	return &LoginTrackingRepository{db: db}
}

func (r *LoginTrackingRepository) Create(entry *models.LoginTracking) error {
	return r.db.Create(entry).Error
}

func (r *LoginTrackingRepository) ListByUser(userID uint, offset, limit int) ([]models.LoginTracking, error) {
	var entries []models.LoginTracking
	err := r.db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("timestamp DESC").
		Offset(offset).Limit(limit).
		Find(&entries).Error
	return entries, err
}

func (r *LoginTrackingRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.LoginTracking{}).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Count(&count).Error
	return count, err
}

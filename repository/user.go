package repository

import (
	"time"

	"devpath/models"

	"gorm.io/gorm"
)

// UserRepository wraps all user persistence. Users are never hard-deleted;
// every read filters soft-deleted rows.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ? AND is_deleted = ?", email, false).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) Save(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&count).Error
	return count, err
}

func (r *UserRepository) CountCreatedSince(t time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("created_at >= ? AND is_deleted = ?", t, false).
		Count(&count).Error
	return count, err
}

// ClearExpiredBlocks lifts login blocks whose window has passed and returns
// how many users were unblocked.
func (r *UserRepository) ClearExpiredBlocks(now time.Time) (int64, error) {
	result := r.db.Model(&models.User{}).
		Where("is_blocked = ? AND blocked_until IS NOT NULL AND blocked_until <= ?", true, now).
		Updates(map[string]interface{}{
			"is_blocked":            false,
			"blocked_until":         nil,
			"failed_login_attempts": 0,
		})
	return result.RowsAffected, result.Error
}

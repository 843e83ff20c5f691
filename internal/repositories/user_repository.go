package repositories

import (
	"errors"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// userRepository is the GORM implementation of UserRepository.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository backed by db.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Save persists a new user. The email unique index rejects duplicates.
func (r *userRepository) Save(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Wrap(apperrors.ErrDuplicateEmail, err)
		}
		return storageErr(err)
	}
	return nil
}

// FindByID retrieves a user by primary key.
func (r *userRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, storageErr(err)
	}
	return &user, nil
}

// FindByEmail retrieves an active user by email.
func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ? AND is_active = ?", email, true).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, storageErr(err)
	}
	return &user, nil
}

// EmailExists reports whether any user, active or not, holds the email.
func (r *userRepository) EmailExists(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, storageErr(err)
	}
	return count > 0, nil
}

// Update persists all fields of an existing user.
func (r *userRepository) Update(user *models.User) error {
	if err := r.db.Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Wrap(apperrors.ErrDuplicateEmail, err)
		}
		return storageErr(err)
	}
	return nil
}

// UpdateRefreshTokenHash stores the SHA-256 hash of the user's current
// refresh token.
func (r *userRepository) UpdateRefreshTokenHash(userID uint, hash string) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).Update("refresh_token_hash", hash)
	if result.Error != nil {
		return storageErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// Delete soft-deletes a user.
func (r *userRepository) Delete(id uint) error {
	result := r.db.Delete(&models.User{}, id)
	if result.Error != nil {
		return storageErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// storageErr wraps an unexpected database error. The repository layer is the
// storage boundary, so anything the store refuses beyond not-found and
// constraint violations is surfaced as STORAGE_UNAVAILABLE.
func storageErr(err error) error {
	return apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
}

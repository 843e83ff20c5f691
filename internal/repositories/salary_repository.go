package repositories

import (
	"errors"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// salaryRepository is the GORM implementation of SalaryRepository.
type salaryRepository struct {
	db *gorm.DB
}

// NewSalaryRepository creates a new SalaryRepository backed by db.
func NewSalaryRepository(db *gorm.DB) SalaryRepository {
	return &salaryRepository{db: db}
}

// Save persists a new salary row. The composite unique index on
// (user_id, month, year) rejects a second row for the same period.
func (r *salaryRepository) Save(salary *models.Salary) error {
	if err := r.db.Create(salary).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Wrap(apperrors.ErrSalaryPeriodConflict, err)
		}
		return storageErr(err)
	}
	return nil
}

// FindByID retrieves a salary owned by userID.
func (r *salaryRepository) FindByID(userID, salaryID uint) (*models.Salary, error) {
	var salary models.Salary
	if err := r.db.Where("id = ? AND user_id = ?", salaryID, userID).First(&salary).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSalaryNotFound
		}
		return nil, storageErr(err)
	}
	return &salary, nil
}

// FindAllByUser returns all salary rows for the user, most recent period first.
func (r *salaryRepository) FindAllByUser(userID uint) ([]models.Salary, error) {
	var salaries []models.Salary
	if err := r.db.Where("user_id = ?", userID).
		Order("year DESC, month DESC").
		Find(&salaries).Error; err != nil {
		return nil, storageErr(err)
	}
	return salaries, nil
}

// FindByUserAndPeriod retrieves the salary for one (user, month, year)
// period. Absence is not an error: it returns (nil, nil).
func (r *salaryRepository) FindByUserAndPeriod(userID uint, month, year int) (*models.Salary, error) {
	var salary models.Salary
	err := r.db.Where("user_id = ? AND month = ? AND year = ?", userID, month, year).First(&salary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageErr(err)
	}
	return &salary, nil
}

// Update persists all fields of an existing salary. Moving the row onto an
// occupied period trips the unique index and reports a conflict.
func (r *salaryRepository) Update(salary *models.Salary) error {
	if err := r.db.Save(salary).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Wrap(apperrors.ErrSalaryPeriodConflict, err)
		}
		return storageErr(err)
	}
	return nil
}

// Delete removes a salary owned by userID.
func (r *salaryRepository) Delete(userID, salaryID uint) error {
	result := r.db.Where("user_id = ?", userID).Delete(&models.Salary{}, salaryID)
	if result.Error != nil {
		return storageErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrSalaryNotFound
	}
	return nil
}

// UpsertByPeriod creates the candidate row or, when a row already exists for
// its (user, month, year) period, overwrites only that row's amount. The id
// and recorded_at of an existing row are preserved. The read-check-then-write
// runs in one store transaction; when a concurrent upsert wins the insert
// race the unique index fires and ErrSalaryPeriodConflict is returned for
// the caller to retry as an update.
func (r *salaryRepository) UpsertByPeriod(candidate *models.Salary) (*models.Salary, error) {
	var result *models.Salary
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Salary
		err := tx.Where("user_id = ? AND month = ? AND year = ?",
			candidate.UserID, candidate.Month, candidate.Year).First(&existing).Error

		switch {
		case err == nil:
			if err := tx.Model(&existing).Update("amount", candidate.Amount).Error; err != nil {
				return storageErr(err)
			}
			existing.Amount = candidate.Amount
			result = &existing
			return nil

		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(candidate).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return apperrors.Wrap(apperrors.ErrSalaryPeriodConflict, err)
				}
				return storageErr(err)
			}
			result = candidate
			return nil

		default:
			return storageErr(err)
		}
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

package models

import (
	"fmt"
	"time"

	apperrors "fintrack/internal/errors"
)

// Accepted year range for salary records. A policy bound, not a systems
// constraint; widen it when the decade runs out.
const (
	MinSalaryYear = 2020
	MaxSalaryYear = 2030
)

// Salary represents the salary recorded for one (user, month, year) period.
// At most one row may exist per period; the table carries a composite unique
// index and UpsertByPeriod relies on it. Salaries are hard-deleted — a
// soft-deleted row would keep its period occupied under the unique index.
type Salary struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_salary_user_period" json:"user_id"`
	Amount     int64     `gorm:"type:bigint;not null" json:"amount"`
	Month      int       `gorm:"not null;uniqueIndex:idx_salary_user_period" json:"month"`
	Year       int       `gorm:"not null;uniqueIndex:idx_salary_user_period" json:"year"`
	RecordedAt time.Time `gorm:"not null" json:"recorded_at"`
}

// Validate checks the salary's business invariants. Call it after
// construction and after any mutation of Amount, Month or Year.
func (s *Salary) Validate() error {
	if s.Amount <= 0 {
		return apperrors.WithMessage(apperrors.ErrValidation, "amount must be greater than zero")
	}
	if s.Month < 1 || s.Month > 12 {
		return apperrors.WithMessage(apperrors.ErrValidation, "month must be between 1 and 12")
	}
	if s.Year < MinSalaryYear || s.Year > MaxSalaryYear {
		return apperrors.WithMessage(apperrors.ErrValidation,
			fmt.Sprintf("year must be between %d and %d", MinSalaryYear, MaxSalaryYear))
	}
	if s.UserID == 0 {
		return apperrors.WithMessage(apperrors.ErrValidation, "user ID is required")
	}
	return nil
}

// PeriodKey returns the natural key of the salary's period, e.g. "2025-09".
func (s *Salary) PeriodKey() string {
	return fmt.Sprintf("%d-%02d", s.Year, s.Month)
}

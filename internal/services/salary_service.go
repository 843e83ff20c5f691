package services

import (
	"errors"
	"time"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
)

// salaryService handles salary use cases.
type salaryService struct {
	salaries repositories.SalaryRepository
	users    repositories.UserRepository
}

// NewSalaryService creates a new SalaryServicer.
func NewSalaryService(salaries repositories.SalaryRepository, users repositories.UserRepository) SalaryServicer {
	return &salaryService{salaries: salaries, users: users}
}

// UpsertSalary records the salary for a (month, year) period, creating the
// row or overwriting the existing row's amount. When a concurrent upsert
// wins the insert race the period conflict is retried exactly once; the
// retry finds the winner's row and updates it.
func (s *salaryService) UpsertSalary(userID uint, amount int64, month, year int) (*models.Salary, error) {
	candidate := &models.Salary{
		UserID:     userID,
		Amount:     amount,
		Month:      month,
		Year:       year,
		RecordedAt: time.Now().UTC(),
	}
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.users.FindByID(userID); err != nil {
		return nil, err
	}

	salary, err := s.salaries.UpsertByPeriod(candidate)
	if err != nil && isPeriodConflict(err) {
		salary, err = s.salaries.UpsertByPeriod(candidate)
	}
	if err != nil {
		return nil, err
	}
	return salary, nil
}

// GetSalary returns the salary for the given period, or nil when no row
// matches. Absence is not an error.
func (s *salaryService) GetSalary(userID uint, month, year int) (*models.Salary, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "month must be between 1 and 12")
	}
	return s.salaries.FindByUserAndPeriod(userID, month, year)
}

// ListSalaries returns all of the user's salary rows, most recent period first.
func (s *salaryService) ListSalaries(userID uint) ([]models.Salary, error) {
	return s.salaries.FindAllByUser(userID)
}

// UpdateSalary applies a partial patch to a salary owned by the user. The
// mutated entity is re-validated, and moving it onto an occupied period
// surfaces the period conflict.
func (s *salaryService) UpdateSalary(userID, salaryID uint, patch repositories.SalaryPatch) (*models.Salary, error) {
	salary, err := s.salaries.FindByID(userID, salaryID)
	if err != nil {
		return nil, err
	}

	if patch.Amount != nil {
		salary.Amount = *patch.Amount
	}
	if patch.Month != nil {
		salary.Month = *patch.Month
	}
	if patch.Year != nil {
		salary.Year = *patch.Year
	}

	if err := salary.Validate(); err != nil {
		return nil, err
	}

	if err := s.salaries.Update(salary); err != nil {
		return nil, err
	}
	return salary, nil
}

// DeleteSalary removes a salary owned by the user.
func (s *salaryService) DeleteSalary(userID, salaryID uint) error {
	return s.salaries.Delete(userID, salaryID)
}

// isPeriodConflict reports whether err carries the salary period conflict code.
func isPeriodConflict(err error) bool {
	var appErr *apperrors.AppError
	return errors.As(err, &appErr) && appErr.Code == apperrors.ErrSalaryPeriodConflict.Code
}

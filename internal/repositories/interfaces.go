// Package repositories defines storage-agnostic contracts for users,
// transactions and salaries, plus their GORM implementations. Every method
// that takes a userID filters by it server-side; ownership is enforced at
// the query boundary, never by post-hoc filtering.
package repositories

import (
	"time"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// PeriodFilter holds independent optional month and year filters. A nil
// field means no filter on that dimension, not "current period".
type PeriodFilter struct {
	Month *int
	Year  *int
}

// TransactionPatch describes a partial update to a transaction. Nil fields
// are left untouched; a non-nil pointer (including a pointer to the empty
// string for Description) sets the field.
type TransactionPatch struct {
	Type        *models.TransactionType
	Amount      *int64
	Description *string
	OccurredAt  *time.Time
}

// SalaryPatch describes a partial update to a salary record.
type SalaryPatch struct {
	Amount *int64
	Month  *int
	Year   *int
}

// UserRepository is the storage contract for users.
type UserRepository interface {
	Save(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	EmailExists(email string) (bool, error)
	Update(user *models.User) error
	UpdateRefreshTokenHash(userID uint, hash string) error
	Delete(id uint) error
}

// TransactionRepository is the storage contract for ledger transactions.
// The aggregate helpers sum only matching rows; no matching rows yields
// zero, not an error.
type TransactionRepository interface {
	Save(transaction *models.Transaction) error
	FindByID(userID, transactionID uint) (*models.Transaction, error)
	FindAllByUser(userID uint, filter PeriodFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	Update(transaction *models.Transaction) error
	Delete(userID, transactionID uint) (*models.Transaction, error)
	SumIncomeByUser(userID uint, filter PeriodFilter) (int64, error)
	SumExpenseByUser(userID uint, filter PeriodFilter) (int64, error)
}

// SalaryRepository is the storage contract for salary records.
//
// UpsertByPeriod looks up the row for (candidate.UserID, candidate.Month,
// candidate.Year): if found, it overwrites only the amount, preserving the
// row's id and recorded_at; if absent, it persists the candidate as a new
// row. The read-check-then-write runs inside a single store transaction and
// a losing concurrent insert surfaces ErrSalaryPeriodConflict.
type SalaryRepository interface {
	Save(salary *models.Salary) error
	FindByID(userID, salaryID uint) (*models.Salary, error)
	FindAllByUser(userID uint) ([]models.Salary, error)
	FindByUserAndPeriod(userID uint, month, year int) (*models.Salary, error)
	Update(salary *models.Salary) error
	Delete(userID, salaryID uint) error
	UpsertByPeriod(candidate *models.Salary) (*models.Salary, error)
}

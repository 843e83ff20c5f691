package services

import (
	"time"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/repositories"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID uint, tokenHash string) error
	GetRefreshTokenHash(userID uint) (string, error)
}

// TransactionServicer defines the contract for ledger transaction use cases.
type TransactionServicer interface {
	CreateTransaction(userID uint, transactionType models.TransactionType, amount int64, description string, occurredAt time.Time) (*models.Transaction, error)
	GetTransactionByID(userID, transactionID uint) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID uint, patch repositories.TransactionPatch) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID uint) (*models.Transaction, error)
	ListTransactions(userID uint, filter repositories.PeriodFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
}

// SalaryServicer defines the contract for salary use cases.
type SalaryServicer interface {
	UpsertSalary(userID uint, amount int64, month, year int) (*models.Salary, error)
	GetSalary(userID uint, month, year int) (*models.Salary, error)
	ListSalaries(userID uint) ([]models.Salary, error)
	UpdateSalary(userID, salaryID uint, patch repositories.SalaryPatch) (*models.Salary, error)
	DeleteSalary(userID, salaryID uint) error
}

// BalanceSummary is the aggregate returned by CalculateBalance. Month and
// Year echo the requested filters and are nil when unfiltered.
type BalanceSummary struct {
	Total                int64 `json:"total"`
	TransactionsSubtotal int64 `json:"transactions_subtotal"`
	SalarySubtotal       int64 `json:"salary_subtotal"`
	Month                *int  `json:"month"`
	Year                 *int  `json:"year"`
}

// BalanceServicer defines the contract for the balance aggregation.
type BalanceServicer interface {
	CalculateBalance(userID uint, filter repositories.PeriodFilter) (*BalanceSummary, error)
}

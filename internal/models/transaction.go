package models

import (
	"time"

	apperrors "fintrack/internal/errors"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// IsValid reports whether t is one of the supported transaction types.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction represents a single income or expense entry in a user's ledger.
// Amounts are stored in integer cents.
type Transaction struct {
	Base
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Amount      int64           `gorm:"type:bigint;not null" json:"amount"`
	Description string          `json:"description"`
	OccurredAt  time.Time       `gorm:"not null;index" json:"occurred_at"`
}

// Validate checks the transaction's business invariants. Call it after
// construction and after any mutation of Type or Amount.
func (t *Transaction) Validate() error {
	if !t.Type.IsValid() {
		return apperrors.WithMessage(apperrors.ErrValidation, "type must be income or expense")
	}
	if t.Amount <= 0 {
		return apperrors.WithMessage(apperrors.ErrValidation, "amount must be greater than zero")
	}
	if t.UserID == 0 {
		return apperrors.WithMessage(apperrors.ErrValidation, "user ID is required")
	}
	return nil
}

// SignedAmount returns the amount with its sign: positive for income,
// negative for expense.
func (t *Transaction) SignedAmount() int64 {
	if t.Type == TransactionTypeExpense {
		return -t.Amount
	}
	return t.Amount
}

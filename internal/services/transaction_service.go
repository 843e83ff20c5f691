package services

import (
	"time"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/repositories"
)

// transactionService handles ledger transaction use cases.
type transactionService struct {
	transactions repositories.TransactionRepository
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(transactions repositories.TransactionRepository) TransactionServicer {
	return &transactionService{transactions: transactions}
}

// CreateTransaction records a new income or expense entry. The boundary
// layer has already shape-checked the input; the business invariants are
// re-checked here regardless.
func (s *transactionService) CreateTransaction(
	userID uint,
	transactionType models.TransactionType,
	amount int64,
	description string,
	occurredAt time.Time,
) (*models.Transaction, error) {
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	transaction := &models.Transaction{
		UserID:      userID,
		Type:        transactionType,
		Amount:      amount,
		Description: description,
		OccurredAt:  occurredAt,
	}
	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	if err := s.transactions.Save(transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}

// GetTransactionByID retrieves a transaction owned by the user.
func (s *transactionService) GetTransactionByID(userID, transactionID uint) (*models.Transaction, error) {
	return s.transactions.FindByID(userID, transactionID)
}

// UpdateTransaction applies a partial patch to a transaction owned by the
// user. Nil patch fields are left untouched, so required fields can never
// be cleared by omission; the mutated entity is re-validated before it is
// persisted.
func (s *transactionService) UpdateTransaction(userID, transactionID uint, patch repositories.TransactionPatch) (*models.Transaction, error) {
	transaction, err := s.transactions.FindByID(userID, transactionID)
	if err != nil {
		return nil, err
	}

	if patch.Type != nil {
		transaction.Type = *patch.Type
	}
	if patch.Amount != nil {
		transaction.Amount = *patch.Amount
	}
	if patch.Description != nil {
		transaction.Description = *patch.Description
	}
	if patch.OccurredAt != nil {
		transaction.OccurredAt = *patch.OccurredAt
	}

	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	if err := s.transactions.Update(transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}

// DeleteTransaction removes a transaction owned by the user and returns the
// deleted row for confirmation.
func (s *transactionService) DeleteTransaction(userID, transactionID uint) (*models.Transaction, error) {
	return s.transactions.Delete(userID, transactionID)
}

// ListTransactions returns a page of the user's transactions, optionally
// filtered by month and/or year. Omitting a dimension means no filter on it.
func (s *transactionService) ListTransactions(userID uint, filter repositories.PeriodFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	if err := validatePeriodFilter(filter); err != nil {
		return nil, err
	}
	return s.transactions.FindAllByUser(userID, filter, page)
}

// validatePeriodFilter bounds-checks the optional month/year dimensions.
func validatePeriodFilter(filter repositories.PeriodFilter) error {
	if filter.Month != nil && (*filter.Month < 1 || *filter.Month > 12) {
		return apperrors.WithMessage(apperrors.ErrValidation, "month must be between 1 and 12")
	}
	if filter.Year != nil && *filter.Year < 0 {
		return apperrors.WithMessage(apperrors.ErrValidation, "year must be positive")
	}
	return nil
}

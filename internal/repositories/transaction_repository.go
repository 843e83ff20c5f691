package repositories

import (
	"errors"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// transactionRepository is the GORM implementation of TransactionRepository.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new TransactionRepository backed by db.
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

// Save persists a new transaction.
func (r *transactionRepository) Save(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return storageErr(err)
	}
	return nil
}

// FindByID retrieves a transaction owned by userID. A row owned by another
// user is indistinguishable from a missing one.
func (r *transactionRepository) FindByID(userID, transactionID uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, storageErr(err)
	}
	return &transaction, nil
}

// FindAllByUser returns a page of the user's transactions, newest first
// with id as the deterministic tiebreaker.
func (r *transactionRepository) FindAllByUser(userID uint, filter PeriodFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := r.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	base = applyPeriodFilter(base, "occurred_at", filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, storageErr(err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("occurred_at DESC, id DESC").
		Find(&transactions).Error; err != nil {
		return nil, storageErr(err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// Update persists all fields of an existing transaction.
func (r *transactionRepository) Update(transaction *models.Transaction) error {
	if err := r.db.Save(transaction).Error; err != nil {
		return storageErr(err)
	}
	return nil
}

// Delete removes a transaction owned by userID and returns the deleted row
// for confirmation. A second delete of the same id reports not-found.
func (r *transactionRepository) Delete(userID, transactionID uint) (*models.Transaction, error) {
	transaction, err := r.FindByID(userID, transactionID)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(transaction).Error; err != nil {
		return nil, storageErr(err)
	}
	return transaction, nil
}

// SumIncomeByUser sums the user's income amounts within the period filter.
func (r *transactionRepository) SumIncomeByUser(userID uint, filter PeriodFilter) (int64, error) {
	return r.sumByType(userID, models.TransactionTypeIncome, filter)
}

// SumExpenseByUser sums the user's expense amounts within the period filter.
func (r *transactionRepository) SumExpenseByUser(userID uint, filter PeriodFilter) (int64, error) {
	return r.sumByType(userID, models.TransactionTypeExpense, filter)
}

func (r *transactionRepository) sumByType(userID uint, txType models.TransactionType, filter PeriodFilter) (int64, error) {
	q := r.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND type = ?", userID, txType)
	q = applyPeriodFilter(q, "occurred_at", filter)

	var total int64
	if err := q.Scan(&total).Error; err != nil {
		return 0, storageErr(err)
	}
	return total, nil
}

// applyPeriodFilter adds month/year conditions on a timestamp column. The
// month and year dimensions are independent; either may be set alone.
// SQLite (tests) has no EXTRACT, hence the dialect switch.
func applyPeriodFilter(q *gorm.DB, column string, filter PeriodFilter) *gorm.DB {
	sqlite := q.Dialector.Name() == "sqlite"
	if filter.Month != nil {
		if sqlite {
			q = q.Where("CAST(strftime('%m', "+column+") AS INTEGER) = ?", *filter.Month)
		} else {
			q = q.Where("EXTRACT(MONTH FROM "+column+") = ?", *filter.Month)
		}
	}
	if filter.Year != nil {
		if sqlite {
			q = q.Where("CAST(strftime('%Y', "+column+") AS INTEGER) = ?", *filter.Year)
		} else {
			q = q.Where("EXTRACT(YEAR FROM "+column+") = ?", *filter.Year)
		}
	}
	return q
}

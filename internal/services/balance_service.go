package services

import (
	"fintrack/internal/repositories"
)

// balanceService computes the period-scoped balance aggregate.
type balanceService struct {
	transactions repositories.TransactionRepository
	salaries     repositories.SalaryRepository
}

// NewBalanceService creates a new BalanceServicer.
func NewBalanceService(transactions repositories.TransactionRepository, salaries repositories.SalaryRepository) BalanceServicer {
	return &balanceService{transactions: transactions, salaries: salaries}
}

// CalculateBalance aggregates the user's ledger over the optional period
// window. An omitted month or year means no filter on that dimension, not
// the current calendar period. The salary subtotal requires a concrete
// period: when either dimension is omitted it is 0, since no salary row
// spans "all periods". The read has no side effects.
func (s *balanceService) CalculateBalance(userID uint, filter repositories.PeriodFilter) (*BalanceSummary, error) {
	if err := validatePeriodFilter(filter); err != nil {
		return nil, err
	}

	income, err := s.transactions.SumIncomeByUser(userID, filter)
	if err != nil {
		return nil, err
	}
	expense, err := s.transactions.SumExpenseByUser(userID, filter)
	if err != nil {
		return nil, err
	}

	var salarySubtotal int64
	if filter.Month != nil && filter.Year != nil {
		salary, err := s.salaries.FindByUserAndPeriod(userID, *filter.Month, *filter.Year)
		if err != nil {
			return nil, err
		}
		if salary != nil {
			salarySubtotal = salary.Amount
		}
	}

	transactionsSubtotal := income - expense
	return &BalanceSummary{
		Total:                transactionsSubtotal + salarySubtotal,
		TransactionsSubtotal: transactionsSubtotal,
		SalarySubtotal:       salarySubtotal,
		Month:                filter.Month,
		Year:                 filter.Year,
	}, nil
}

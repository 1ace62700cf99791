package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/models"
	"expensetracker/internal/validator"
)

// expenseService handles expense persistence.
type expenseService struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

// NewExpenseService creates a new ExpenseServicer. A non-positive
// queryTimeout leaves deadlines to the caller's context.
func NewExpenseService(db *gorm.DB, queryTimeout time.Duration) ExpenseServicer {
	return &expenseService{db: db, queryTimeout: queryTimeout}
}

// CreateExpense records a new expense. The insert and the read-back of the
// stored row run in one transaction so the caller gets exactly what a later
// read returns, or nothing is written.
func (s *expenseService) CreateExpense(ctx context.Context, req models.CreateExpenseRequest) (*models.Expense, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	record := models.NewExpenseRecord(req)
	var stored models.ExpenseRecord
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		return tx.First(&stored, record.ID).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	expense := stored.ToExpense()
	return &expense, nil
}

// GetExpenses lists all expenses ordered by date descending. Expenses sharing
// a date are ordered by id descending, so the most recently recorded comes first.
func (s *expenseService) GetExpenses(ctx context.Context) ([]models.Expense, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var records []models.ExpenseRecord
	if err := s.db.WithContext(ctx).
		Order("date DESC").
		Order("id DESC").
		Find(&records).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	expenses := make([]models.Expense, 0, len(records))
	for _, r := range records {
		expenses = append(expenses, r.ToExpense())
	}
	return expenses, nil
}

func (s *expenseService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}

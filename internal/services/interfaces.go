package services

import (
	"context"

	"expensetracker/internal/models"
)

// ExpenseServicer defines the contract for expense persistence.
type ExpenseServicer interface {
	// CreateExpense validates req, stores it and returns the stored expense.
	CreateExpense(ctx context.Context, req models.CreateExpenseRequest) (*models.Expense, error)
	// GetExpenses returns every expense, newest date first.
	GetExpenses(ctx context.Context) ([]models.Expense, error)
}
